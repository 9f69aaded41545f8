/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/keepass"
	"github.com/frostyeti/kpx/profiles"
	"github.com/frostyeti/kpx/session"
)

// invocation bundles everything a query handler needs: the resolved
// settings, the profile store, the selected profile, and the positional
// tokens left after profile selection.
type invocation struct {
	Settings config.Settings
	Store    *profiles.Store
	Profile  string
	Tokens   []string
}

// parseInvocation resolves settings and consumes a leading profile token.
func parseInvocation(args []string) invocation {
	st := config.Resolve()
	store := profiles.NewStore(st.ConfDir)
	prof, tokens := session.SplitProfile(store, st.Profile, args)
	return invocation{Settings: st, Store: store, Profile: prof, Tokens: tokens}
}

// entryKey returns the entry key for the invocation: the --key flag or
// KEEPASSX_CLI__KEY wins, else the remaining tokens joined and normalized.
func (in invocation) entryKey() (string, error) {
	if in.Settings.Key != "" {
		return session.NormalizeKey([]string{in.Settings.Key}), nil
	}
	if len(in.Tokens) == 0 {
		return "", exitcode.Errorf(exitcode.UnknownCommand,
			"no entry key given: pass KEY or --key")
	}
	return session.NormalizeKey(in.Tokens), nil
}

// open resolves credentials and locates the backend tool.
func (in invocation) open() (session.Session, *keepass.Driver, error) {
	sess, err := session.New(in.Store, in.Settings).Session(in.Profile)
	if err != nil {
		return session.Session{}, nil, err
	}
	drv, err := keepass.NewDriver()
	if err != nil {
		return session.Session{}, nil, err
	}
	return sess, drv, nil
}

// shellQuote single-quotes a value for POSIX shell consumption.
func shellQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

// stripBlankLines removes empty lines from multi-line output.
func stripBlankLines(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
