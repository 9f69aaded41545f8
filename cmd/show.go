/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [PROFILE] KEY",
	Short: "Print the full text of an entry",
	Long: `Print the full entry, protected values revealed, with the backend's
password prompt banner stripped.

Examples:
  kpx show Servers/db1
  kpx show work Servers/db1`,
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

		out, err := drv.Show(sess.Database, key, sess.Password)
		if err != nil {
			return err
		}

		fmt.Println(strings.TrimRight(out, "\n"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
