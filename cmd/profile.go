/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/cmd/profile"
)

// profileCmd represents the profile command
var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"profiles"},
	Short:   "Manage named database profiles",
	Long: `Manage named profiles: reusable (database path, password) pairs stored
as conf.<name>.env files in the configuration directory.

This command provides subcommands for listing, adding, updating the password
of, removing, showing, and editing profiles.`,
}

func init() {
	rootCmd.AddCommand(profileCmd)

	// Initialize all profile subcommands
	profile.InitLs(profileCmd)
	profile.InitAdd(profileCmd)
	profile.InitPassword(profileCmd)
	profile.InitRm(profileCmd)
	profile.InitShow(profileCmd)
	profile.InitEdit(profileCmd)
}
