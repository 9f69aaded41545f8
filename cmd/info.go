/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/keepass"
)

// passwordMask is the fixed-width mask info prints instead of a password.
const passwordMask = "********"

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Dump the resolved configuration",
	Long: `Dump the configuration as resolved from flags, environment variables,
and the selected profile, for troubleshooting. Passwords are masked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := parseInvocation(args)
		st := in.Settings

		label := color.New(color.Bold).SprintfFunc()
		row := func(name, value string) {
			fmt.Printf("%s %s\n", label("%-12s", name+":"), value)
		}

		row("version", Version)
		row("config dir", st.ConfDir)
		row("profile", orNone(in.Profile))

		db := st.Database
		pass := st.Password
		source := "flags/environment"
		if in.Profile != "" {
			if prof, err := in.Store.Load(in.Profile); err == nil {
				if db == "" {
					db = prof.Database
				}
				if pass == "" && prof.Password != "" {
					pass = prof.Password
					source = prof.Source.String()
				}
			} else {
				row("profile err", err.Error())
			}
		}
		row("database", orNone(db))
		if pass != "" {
			row("password", passwordMask+" ("+source+")")
		} else {
			row("password", "(none)")
		}
		row("keyring", fmt.Sprintf("%v", st.UseKeyring))
		row("prompting", fmt.Sprintf("%v", !st.NoPrompt))
		row("key", orNone(st.Key))
		row("verbosity", fmt.Sprintf("%d", st.Verbosity))

		if tool, err := keepass.Locate(); err == nil {
			row("backend", tool.Path)
		} else {
			row("backend", "(not found)")
		}
		return nil
	},
}

func orNone(v string) string {
	if v == "" {
		return "(none)"
	}
	return v
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
