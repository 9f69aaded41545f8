package keepass

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
)

// promptBanner is the literal password prompt keepassxc-cli emits before
// reading the password; such lines are stripped from returned output.
const promptBanner = "Enter password to unlock"

// Diagnostics keepassxc-cli prints for the two conditions scripts care
// about. The tool has no structured output mode, so the contract is plain
// string matching, kept in this one place.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgEntryNotFound      = "Could not find entry"
	msgNoAttachment       = "does not have an attachment"
)

// Driver runs one backend operation per call. It holds no state beyond the
// located tool.
type Driver struct {
	Tool Tool
}

// NewDriver locates the backend tool and returns a driver for it.
func NewDriver() (*Driver, error) {
	tool, err := Locate()
	if err != nil {
		return nil, err
	}
	return &Driver{Tool: tool}, nil
}

// Show returns the full text of one entry, protected values revealed.
func (d *Driver) Show(db, key, password string) (string, error) {
	out, err := d.run(password, "show", "-s", db, key)
	return string(out), err
}

// ShowAttribute returns a single attribute of one entry, e.g. "Password".
func (d *Driver) ShowAttribute(db, key, attr, password string) (string, error) {
	out, err := d.run(password, "show", "-s", "-a", attr, db, key)
	return string(out), err
}

// List returns the recursive entry listing, optionally flattened to one
// entry path per line and optionally scoped to a group.
func (d *Driver) List(db, group, password string, flatten bool) (string, error) {
	args := []string{"ls", "-R"}
	if flatten {
		args = append(args, "-f")
	}
	args = append(args, db)
	if group != "" {
		args = append(args, group)
	}
	out, err := d.run(password, args...)
	return string(out), err
}

// ExportAttachment returns the raw bytes of a named attachment on an entry.
func (d *Driver) ExportAttachment(db, key, name, password string) ([]byte, error) {
	return d.run(password, "attachment-export", "--stdout", db, key, name)
}

// run spawns the tool, feeds the password on stdin at its prompt, and
// captures combined output. The password never appears on the command line,
// so it is not visible in process listings.
func (d *Driver) run(password string, args ...string) ([]byte, error) {
	argv := append(append([]string(nil), d.Tool.Args...), args...)
	config.Tracef(1, "exec %s %s", d.Tool.Path, strings.Join(args, " "))

	cmd := exec.Command(d.Tool.Path, argv...)
	cmd.Stdin = strings.NewReader(password + "\n")

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	runErr := cmd.Run()
	out := stripBanner(buf.Bytes())

	if err := classify(out, runErr); err != nil {
		return nil, err
	}
	return out, nil
}

// stripBanner removes password-prompt banner lines from captured output.
func stripBanner(out []byte) []byte {
	lines := bytes.Split(out, []byte("\n"))
	kept := lines[:0]
	for _, line := range lines {
		if bytes.HasPrefix(bytes.TrimSpace(line), []byte(promptBanner)) {
			continue
		}
		kept = append(kept, line)
	}
	return bytes.Join(kept, []byte("\n"))
}

// classify translates a subprocess failure into the documented error
// taxonomy by scanning the captured diagnostics.
func classify(out []byte, runErr error) error {
	if runErr == nil {
		return nil
	}

	text := string(out)
	switch {
	case strings.Contains(text, msgInvalidCredentials):
		return exitcode.Errorf(exitcode.Credential, "invalid credentials")
	case strings.Contains(text, msgEntryNotFound):
		return exitcode.Errorf(exitcode.NotFound, "entry not found")
	case strings.Contains(text, msgNoAttachment):
		return exitcode.Errorf(exitcode.NotFound, "attachment not found")
	default:
		diag := strings.TrimSpace(text)
		if diag == "" {
			diag = runErr.Error()
		}
		return exitcode.Errorf(exitcode.Credential, "backend failed: %s", diag)
	}
}
