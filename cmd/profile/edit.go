/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package profile

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/exitcode"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit NAME",
	Short: "Open a profile file in $EDITOR",
	Long: `Open the profile file in $EDITOR (vi when unset). The file is plain
shell-style assignments; kpx re-reads it on every use.

Examples:
  kpx profile edit work
  EDITOR=nano kpx profile edit work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := nameArg(args)
		if err != nil {
			return err
		}

		_, store := openStore()

		if !store.Exists(name) {
			return exitcode.Errorf(exitcode.MissingDatabase,
				"profile not found: %s", name)
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		edit := exec.Command(editor, store.Path(name))
		edit.Stdin = os.Stdin
		edit.Stdout = os.Stdout
		edit.Stderr = os.Stderr
		return edit.Run()
	},
}

func InitEdit(profileCmd *cobra.Command) {
	profileCmd.AddCommand(editCmd)
}
