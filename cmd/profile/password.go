/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package profile

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/profiles"
	"github.com/frostyeti/kpx/session"
)

// passwordCmd represents the password command
var passwordCmd = &cobra.Command{
	Use:     "password NAME",
	Aliases: []string{"pass"},
	Short:   "Update a profile's stored password",
	Long: `Replace the stored password of a profile. With --keyring (the
default) the password goes into the OS keyring and the profile file stays
free of secrets; with --keyring=false it is written into the file.

An empty password clears both stores, so the profile prompts on every use.

Examples:
  kpx profile password work
  kpx profile password work --keyring=false
  kpx profile password work --pass "s3cret"`,
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

		password := st.Password
		if password == "" {
			if st.NoPrompt {
				return exitcode.Errorf(exitcode.Credential,
					"no password given and prompting is disabled")
			}
			password, err = readPassword("New password (empty = always prompt): ")
			if err != nil {
				return exitcode.New(exitcode.Credential, err)
			}
		}

		if password == "" {
			if err := session.KeyringClear(name); err != nil {
				config.Tracef(1, "keyring clear failed: %v", err)
			}
			if err := store.UpdatePassword(name, "", "password unset, will prompt"); err != nil {
				return err
			}
			fmt.Printf("Cleared password for profile %s\n", name)
			return nil
		}

		if err := storePassword(store, st, name, password); err != nil {
			return err
		}
		fmt.Printf("Updated password for profile %s\n", name)
		return nil
	},
}

// storePassword routes a new password to the keyring or the profile file,
// keeping the other store clean.
func storePassword(store *profiles.Store, st config.Settings, name, password string) error {
	if st.UseKeyring {
		if err := session.KeyringSet(name, password); err == nil {
			return store.MarkKeyring(name)
		}
		config.Tracef(1, "keyring unavailable, storing password in profile file")
	}
	if err := session.KeyringClear(name); err != nil {
		config.Tracef(1, "keyring clear failed: %v", err)
	}
	comment := "password updated " + time.Now().Format(time.RFC3339)
	return store.UpdatePassword(name, password, comment)
}

func InitPassword(profileCmd *cobra.Command) {
	profileCmd.AddCommand(passwordCmd)
}
