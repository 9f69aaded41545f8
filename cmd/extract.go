/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/session"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [PROFILE] KEY FILE",
	Short: "Write an entry's attachment to stdout",
	Long: `Write the bytes of a named attachment to standard output. The last
token is the attachment name, everything before it the entry key.

Examples:
  kpx extract Servers/db1 id_rsa
  kpx extract work Servers/db1 cert.pem > cert.pem`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := parseInvocation(args)

		key, file, err := session.SplitAttachment(in.Tokens)
		if err != nil {
			return err
		}

		sess, drv, err := in.open()
		if err != nil {
			return err
		}

		data, err := drv.ExportAttachment(sess.Database, key, file, sess.Password)
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
