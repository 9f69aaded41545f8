/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package profile

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/profiles"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print a profile file, password masked",
	Long: `Print the contents of a profile file with any stored password
replaced by a mask. Warns when the profile has no database path.

Examples:
  kpx profile show work`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := nameArg(args)
		if err != nil {
			return err
		}

		_, store := openStore()

		data, err := os.ReadFile(store.Path(name))
		if err != nil {
			if os.IsNotExist(err) {
				return exitcode.Errorf(exitcode.MissingDatabase,
					"profile not found: %s", name)
			}
			return err
		}

		for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), profiles.KeyPassword+"=") {
				fmt.Printf("%s='********'\n", profiles.KeyPassword)
				continue
			}
			fmt.Println(line)
		}

		if prof, err := store.Load(name); err == nil && !prof.Complete() {
			fmt.Fprintf(os.Stderr, "Warning: profile %s has no %s, it is incomplete\n",
				name, profiles.KeyDatabase)
		}
		return nil
	},
}

func InitShow(profileCmd *cobra.Command) {
	profileCmd.AddCommand(showCmd)
}
