/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package profile

import (
	"fmt"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/exitcode"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:     "ls [filter]",
	Aliases: []string{"list"},
	Short:   "List profiles",
	Long: `List the profiles found in the configuration directory, sorted by
name. Optionally provide a glob pattern to filter the results.

Examples:
  # List all profiles
  kpx profile ls

  # List profiles matching a pattern
  kpx profile ls "work-*"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filterPattern string
		if len(args) > 0 {
			filterPattern = args[0]
		}

		_, store := openStore()

		var matcher glob.Glob
		if filterPattern != "" {
			var err error
			matcher, err = glob.Compile(filterPattern)
			if err != nil {
				return exitcode.Errorf(exitcode.UnknownCommand,
					"bad filter pattern: %v", err)
			}
		}

		names, err := store.List()
		if err != nil {
			return err
		}

		for _, name := range names {
			if matcher != nil && !matcher.Match(name) {
				continue
			}
			fmt.Println(name)
		}
		return nil
	},
}

func InitLs(profileCmd *cobra.Command) {
	profileCmd.AddCommand(lsCmd)
}
