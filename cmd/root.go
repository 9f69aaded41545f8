/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
)

// Version is stamped by the release build.
var Version = "0.9.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "kpx",
	Version: Version,
	Short:   "fetch secrets from a KeePass database without a UI",
	Long: `kpx lets shell scripts and automation pipelines read entries from a
KeePass database non-interactively. The heavy lifting is done by
keepassxc-cli; kpx resolves which database and password apply, feeds the
password to the tool, and prints the result.

Profiles pair a database path with an optional password and live as
conf.<name>.env files in the configuration directory.

Environment variables (flags always win):
  KEEPASSX_CLI__PROFILE    default profile name
  KEEPASSX_CLI__KEY        default entry key
  KEEPASSX_CLI__DB         database file path
  KEEPASSX_CLI__PASS       unlock password
  KEEPASSX_CLI__CONF       configuration directory
  KEEPASSX_CLI__KEYRING    consult the OS keyring (true/false)
  KEEPASSX_CLI__NO_PROMPT  never prompt interactively (true/false)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			cmd.Help()
			return exitcode.Errorf(exitcode.MissingCommand, "no command given")
		}
		return exitcode.Errorf(exitcode.UnknownCommand, "unknown command %q", args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "kpx: error: %v\n", err)
		os.Exit(exitcode.Status(err))
	}
}

func init() {
	// Flag-parse failures are usage errors; anything else without a coded
	// status falls back to the internal-fault code in exitcode.Status.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return exitcode.New(exitcode.UnknownCommand, err)
	})

	flags := rootCmd.PersistentFlags()

	flags.StringP("profile", "p", "", "Profile to use")
	flags.StringP("key", "k", "", "Entry key to look up")
	flags.String("db", "", "KeePass database file")
	flags.String("pass", "", "Database password (prefer the keyring or a prompt)")
	flags.Bool("keyring", true, "Consult the OS keyring for the profile password")
	flags.Bool("prompt", true, "Allow interactive password prompts")
	flags.BoolP("force", "f", false, "Skip confirmation prompts")
	flags.CountP("verbose", "v", "Increase diagnostic output (repeatable)")

	if err := config.Bind(flags); err != nil {
		panic(err)
	}
}
