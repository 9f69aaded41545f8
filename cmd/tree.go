/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/session"
)

// treeCmd represents the tree command
var treeCmd = &cobra.Command{
	Use:   "tree [PROFILE] [GROUP]",
	Short: "List entries hierarchically",
	Long: `List entries in hierarchical form, blank lines removed, optionally
starting at a group.

Examples:
  kpx tree
  kpx tree work
  kpx tree work Servers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := parseInvocation(args)

		group := ""
		if len(in.Tokens) > 0 {
			group = session.NormalizeKey(in.Tokens)
		}

		sess, drv, err := in.open()
		if err != nil {
			return err
		}

		out, err := drv.List(sess.Database, group, sess.Password, false)
		if err != nil {
			return err
		}

		fmt.Println(stripBlankLines(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
