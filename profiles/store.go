// Package profiles persists named (database path, password) pairs as small
// shell-style files in the configuration directory. A profile file is named
// conf.<name>.env and holds KC_DB and optionally KC_PASS assignments; tools
// other than kpx are free to source it.
package profiles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/subosito/gotenv"
)

const (
	filePrefix = "conf."
	fileSuffix = ".env"

	// Assignment keys inside a profile file.
	KeyDatabase = "KC_DB"
	KeyPassword = "KC_PASS"
)

var (
	ErrNotFound = errors.New("profile not found")
	ErrExists   = errors.New("profile already exists")
)

// PasswordSource states where a profile's password lives.
type PasswordSource int

const (
	PasswordUnset     PasswordSource = iota // no stored password, always prompt
	PasswordClearText                       // stored in the profile file
	PasswordKeyring                         // stored in the OS keyring
)

func (s PasswordSource) String() string {
	switch s {
	case PasswordClearText:
		return "clear-text"
	case PasswordKeyring:
		return "keyring"
	default:
		return "unset"
	}
}

// Profile is one persisted record. Identity is the name; names map
// literally onto file names with no normalization.
type Profile struct {
	Name     string
	Database string
	Password string
	Source   PasswordSource
}

// Complete reports whether the profile carries a database path. A file
// without one is considered incomplete.
func (p Profile) Complete() bool { return p.Database != "" }

// Store reads and writes profile files under a single directory.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store { return &Store{Dir: dir} }

// Path returns the file backing the named profile.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, filePrefix+name+fileSuffix)
}

// List returns the sorted names of all profiles present on disk. The
// directory is re-read on every call.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if len(n) <= len(filePrefix)+len(fileSuffix) ||
			!strings.HasPrefix(n, filePrefix) || !strings.HasSuffix(n, fileSuffix) {
			continue
		}
		name := strings.TrimSuffix(strings.TrimPrefix(n, filePrefix), fileSuffix)
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether the named profile file is present.
func (s *Store) Exists(name string) bool {
	if name == "" {
		return false
	}
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Load parses the named profile file. The password source is keyring when
// the file carries a keyring marker comment, clear-text when KC_PASS is
// assigned, unset otherwise.
func (s *Store) Load(name string) (Profile, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Profile{}, err
	}

	env := parseAssignments(string(data))

	p := Profile{
		Name:     name,
		Database: env[KeyDatabase],
	}
	if pass, ok := env[KeyPassword]; ok && pass != "" {
		p.Password = pass
		p.Source = PasswordClearText
	} else if strings.Contains(string(data), keyringMarker) {
		p.Source = PasswordKeyring
	}
	return p, nil
}

// keyringMarker is written by UpdatePassword when the password lives in the
// OS keyring rather than the file.
const keyringMarker = "# password: OS keyring"

// Create writes a fresh profile file. Fails with ErrExists when a file for
// the name is already present.
func (s *Store) Create(name, dbPath string) error {
	if s.Exists(name) {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	if err := os.MkdirAll(s.Dir, 0o700); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# keepassx-cli profile %q\n", name)
	fmt.Fprintf(&b, "# created %s\n", time.Now().Format(time.RFC3339))
	if dbPath != "" {
		fmt.Fprintf(&b, "%s=%s\n", KeyDatabase, quote(dbPath))
	}

	return os.WriteFile(s.Path(name), []byte(b.String()), 0o600)
}

// UpdatePassword drops any existing KC_PASS assignment (and stale password
// comments) and appends a fresh one. An empty password means always prompt;
// comment, when non-empty, is written as a "# ..." line above the
// assignment and must start with "password" so later updates can drop it.
func (s *Store) UpdatePassword(name, password, comment string) error {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}

	var kept []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, KeyPassword+"=") ||
			strings.HasPrefix(trimmed, "# password") {
			continue
		}
		kept = append(kept, line)
	}

	// Drop trailing blank lines so appended content stays tidy.
	for len(kept) > 0 && strings.TrimSpace(kept[len(kept)-1]) == "" {
		kept = kept[:len(kept)-1]
	}

	if comment != "" {
		kept = append(kept, "# "+comment)
	}
	if password != "" {
		kept = append(kept, KeyPassword+"="+quote(password))
	}

	out := strings.Join(kept, "\n") + "\n"
	return os.WriteFile(s.Path(name), []byte(out), 0o600)
}

// MarkKeyring records that the profile's password lives in the OS keyring.
func (s *Store) MarkKeyring(name string) error {
	return s.UpdatePassword(name, "", strings.TrimPrefix(keyringMarker, "# "))
}

// Remove deletes the named profile file.
func (s *Store) Remove(name string) error {
	err := os.Remove(s.Path(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return err
}

// quote single-quotes a value for a shell-sourceable assignment.
func quote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

// unquote inverts quote. Reader and writer must stay symmetric or stored
// passwords with shell metacharacters come back mangled.
func unquote(raw string) string {
	inner := raw[1 : len(raw)-1]
	return strings.ReplaceAll(inner, `'\''`, "'")
}

var assignRe = regexp.MustCompile(`^(?:export\s+)?([A-Za-z_][A-Za-z0-9_]*)=(.*)$`)

// parseAssignments reads the file's KEY=value lines. Values written by
// quote are unquoted by its inverse; anything else (a hand-edited file) is
// handed to gotenv for the usual dotenv semantics.
func parseAssignments(data string) map[string]string {
	vars := map[string]string{}
	for _, line := range strings.Split(data, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m := assignRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		key, raw := m[1], m[2]
		if len(raw) >= 2 && strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'") {
			vars[key] = unquote(raw)
			continue
		}
		for k, v := range gotenv.Parse(strings.NewReader(trimmed)) {
			vars[k] = v
		}
	}
	return vars
}
