/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package profile

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/profiles"
	"github.com/frostyeti/kpx/session"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add NAME [DB_PATH]",
	Short: "Create a profile",
	Long: `Create a profile file for NAME. The database path comes from the
argument or --db; without either you are prompted for it. You are then asked
for the database password; leave it empty to be prompted on every use.

Aborting with neither a database path nor a password leaves nothing behind.

Examples:
  kpx profile add work ~/vaults/work.kdbx
  kpx profile add work --db ~/vaults/work.kdbx
  kpx profile add work ~/vaults/work.kdbx --keyring`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := nameArg(args)
		if err != nil {
			return err
		}

		st, store := openStore()

		if store.Exists(name) {
			return exitcode.Errorf(exitcode.UnknownCommand,
				"profile already exists: %s", name)
		}

		dbPath := st.Database
		if len(args) > 1 {
			dbPath = args[1]
		}
		if dbPath == "" && !st.NoPrompt {
			dbPath, err = session.ReadLine("Database path: ")
			if err != nil && !errors.Is(err, session.ErrNotInteractive) {
				return err
			}
		}

		if err := store.Create(name, dbPath); err != nil {
			if errors.Is(err, profiles.ErrExists) {
				return exitcode.New(exitcode.UnknownCommand, err)
			}
			return err
		}

		password := st.Password
		if password == "" && !st.NoPrompt {
			password, err = readPassword("Password (empty = always prompt): ")
			if err != nil && !errors.Is(err, session.ErrNotInteractive) {
				// The profile is still useful with a database path alone;
				// only a path-less one is cleaned up.
				if dbPath == "" {
					store.Remove(name)
				}
				return exitcode.New(exitcode.Credential, err)
			}
		}

		// No database path and no password: nothing worth keeping.
		if dbPath == "" && password == "" {
			store.Remove(name)
			return exitcode.Errorf(exitcode.MissingDatabase,
				"aborted: no database path and no password given")
		}

		if password != "" {
			if err := storePassword(store, st, name, password); err != nil {
				return err
			}
		}

		fmt.Printf("Created profile %s (%s)\n", name, store.Path(name))
		return nil
	},
}

func InitAdd(profileCmd *cobra.Command) {
	profileCmd.AddCommand(addCmd)
}
