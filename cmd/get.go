/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get [PROFILE] KEY",
	Short: "Print the secret value of an entry",
	Long: `Print the unlocked secret value of a single database entry.

The first token selects a profile when one of that name exists; the rest is
the entry key. A "name__key" token does the same in one argument.

Examples:
  # Entry from the default database
  kpx get Servers/db1

  # Entry from the "work" profile
  kpx get work Servers/db1
  kpx get work__Servers/db1

  # Pin the profile explicitly
  kpx get --profile work Servers/db1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := parseInvocation(args)

		key, err := in.entryKey()
		if err != nil {
			return err
		}

		sess, drv, err := in.open()
		if err != nil {
			return err
		}

		out, err := drv.ShowAttribute(sess.Database, key, "Password", sess.Password)
		if err != nil {
			return err
		}

		fmt.Println(strings.TrimRight(out, "\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
