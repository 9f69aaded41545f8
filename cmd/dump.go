/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump [PROFILE] [PATTERN]",
	Short: "List all entries, flat",
	Long: `List every entry in the database, one path per line, optionally
filtered by a case-insensitive substring match.

Examples:
  kpx dump
  kpx dump work
  kpx dump work ssh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := parseInvocation(args)

		pattern := strings.ToLower(strings.Join(in.Tokens, " "))

		sess, drv, err := in.open()
		if err != nil {
			return err
		}

		out, err := drv.List(sess.Database, "", sess.Password, true)
		if err != nil {
			return err
		}

		for _, line := range strings.Split(stripBlankLines(out), "\n") {
			if pattern != "" && !strings.Contains(strings.ToLower(line), pattern) {
				continue
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
