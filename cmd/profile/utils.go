/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package profile

import (
	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/profiles"
	"github.com/frostyeti/kpx/session"
)

// readPassword is swapped in tests.
var readPassword = session.ReadPassword

// openStore resolves the invocation settings and the profile store.
func openStore() (config.Settings, *profiles.Store) {
	st := config.Resolve()
	return st, profiles.NewStore(st.ConfDir)
}

// nameArg returns the mandatory profile name argument.
func nameArg(args []string) (string, error) {
	if len(args) == 0 {
		return "", exitcode.Errorf(exitcode.UnknownCommand, "profile name required")
	}
	return args[0], nil
}
