/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell [PROFILE]",
	Short: "Emit shell exports pinning a profile",
	Long: `Emit shell-sourceable environment assignments that pin a profile for
the calling session. The password is never exported.

Examples:
  eval "$(kpx shell work)"
  kpx get Servers/db1   # now uses the "work" profile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := parseInvocation(args)

		if in.Profile == "" {
			return exitcode.Errorf(exitcode.UnknownCommand,
				"no profile given: pass PROFILE or --profile")
		}
		prof, err := in.Store.Load(in.Profile)
		if err != nil {
			return exitcode.New(exitcode.MissingDatabase, err)
		}

		fmt.Printf("export %s=%s\n", config.EnvProfile, shellQuote(prof.Name))
		if prof.Database != "" {
			fmt.Printf("export %s=%s\n", config.EnvDB, shellQuote(prof.Database))
		}
		fmt.Printf("export %s=%s\n", config.EnvConf, shellQuote(in.Settings.ConfDir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
