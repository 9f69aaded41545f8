// Package session resolves which database and unlock password apply to one
// invocation. Sources are consulted in a fixed order: explicit flags and
// environment, the selected profile file, the OS keyring, and finally an
// interactive prompt. The database path is checked before any password work
// so the user is never prompted for a database that cannot be opened.
package session

import (
	"errors"
	"os"

	"github.com/99designs/keyring"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/profiles"
)

// Session is the ephemeral record handed to the backend driver. It is built
// once per invocation and never persisted.
type Session struct {
	Profile  string
	Database string
	Password string
}

// Resolver builds Sessions. The keyring and prompt hooks exist so tests can
// run without an OS keyring or a terminal.
type Resolver struct {
	Store    *profiles.Store
	Settings config.Settings

	OpenKeyring  func() (keyring.Keyring, error)
	ReadPassword func(label string) (string, error)
}

// New returns a Resolver wired to the real OS keyring and terminal.
func New(store *profiles.Store, settings config.Settings) *Resolver {
	return &Resolver{
		Store:        store,
		Settings:     settings,
		OpenKeyring:  OpenKeyring,
		ReadPassword: ReadPassword,
	}
}

// Session resolves the database path and unlock password for the named
// profile (may be empty when flags carry everything).
func (r *Resolver) Session(profileName string) (Session, error) {
	var prof profiles.Profile
	if profileName != "" {
		var err error
		prof, err = r.Store.Load(profileName)
		if err != nil {
			if errors.Is(err, profiles.ErrNotFound) {
				return Session{}, exitcode.New(exitcode.MissingDatabase, err)
			}
			return Session{}, err
		}
	}

	db := r.Settings.Database
	if db == "" {
		db = prof.Database
	}
	if db == "" {
		return Session{}, exitcode.Errorf(exitcode.MissingDatabase,
			"no database configured: pass --db, set %s, or select a profile", config.EnvDB)
	}
	if _, err := os.Stat(db); err != nil {
		return Session{}, exitcode.Errorf(exitcode.DatabaseNotFound,
			"database file not found: %s", db)
	}

	pass, err := r.password(profileName, prof)
	if err != nil {
		return Session{}, err
	}

	return Session{Profile: profileName, Database: db, Password: pass}, nil
}

// password walks the fallback chain: explicit flag or environment value,
// profile file, OS keyring, interactive prompt.
func (r *Resolver) password(profileName string, prof profiles.Profile) (string, error) {
	if r.Settings.Password != "" {
		config.Tracef(2, "password source: flag/environment")
		return r.Settings.Password, nil
	}
	if prof.Password != "" {
		config.Tracef(2, "password source: profile file")
		return prof.Password, nil
	}

	if r.Settings.UseKeyring && profileName != "" {
		if kr, err := r.OpenKeyring(); err == nil {
			if item, err := kr.Get(profileName); err == nil {
				config.Tracef(2, "password source: OS keyring")
				return string(item.Data), nil
			}
		} else {
			config.Tracef(1, "keyring unavailable: %v", err)
		}
	}

	if !r.Settings.NoPrompt {
		pass, err := r.ReadPassword("Password: ")
		if err != nil {
			return "", exitcode.Errorf(exitcode.Credential,
				"could not read password: %v", err)
		}
		config.Tracef(2, "password source: prompt")
		return pass, nil
	}

	return "", exitcode.Errorf(exitcode.Credential,
		"no password source: none given and prompting is disabled")
}
