/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/session"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:     "rm NAME",
	Aliases: []string{"remove"},
	Short:   "Delete a profile",
	Long: `Delete a profile file and its keyring entry.

You will be prompted to confirm deletion unless --force is given; in a
non-interactive context without --force the profile is left alone.

Examples:
  kpx profile rm work
  kpx profile rm work --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := nameArg(args)
		if err != nil {
			return err
		}

		st, store := openStore()

		if !store.Exists(name) {
			return exitcode.Errorf(exitcode.MissingDatabase,
				"profile not found: %s", name)
		}

		if !st.Force {
			if !session.Confirm(fmt.Sprintf("Delete profile %q?", name)) {
				return exitcode.Errorf(exitcode.UnknownCommand,
					"not confirmed, profile kept")
			}
		}

		if err := session.KeyringClear(name); err != nil {
			config.Tracef(1, "keyring clear failed: %v", err)
		}
		if err := store.Remove(name); err != nil {
			return err
		}

		fmt.Printf("Deleted profile %s\n", name)
		return nil
	},
}

func InitRm(profileCmd *cobra.Command) {
	profileCmd.AddCommand(rmCmd)
}
