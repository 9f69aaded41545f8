// Package keepass drives the external keepassxc-cli executable. The
// database format, decryption, and entry search all belong to that tool;
// this package only locates it, feeds the unlock password over stdin, and
// classifies its textual output.
package keepass

import (
	"os"
	"os/exec"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
)

const (
	// EnvExecutable overrides tool probing with an explicit path.
	EnvExecutable = "KEEPASSXC_CLI_EXE"

	nativeExe  = "keepassxc-cli"
	flatpakExe = "flatpak"
	flatpakApp = "org.keepassxc.KeePassXC"
)

// Tool is a located backend executable. Args carries the fixed prefix
// arguments a wrapper (flatpak) needs before the real ones.
type Tool struct {
	Path string
	Args []string
}

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// Locate probes for the backend: the EnvExecutable override, then a native
// keepassxc-cli on PATH, then the flatpak-packaged application. Failure to
// find any is fatal for the invocation.
func Locate() (Tool, error) {
	if exe := os.Getenv(EnvExecutable); exe != "" {
		config.Tracef(1, "backend tool from %s: %s", EnvExecutable, exe)
		return Tool{Path: exe}, nil
	}

	if path, err := lookPath(nativeExe); err == nil {
		config.Tracef(1, "backend tool: %s", path)
		return Tool{Path: path}, nil
	}

	if path, err := lookPath(flatpakExe); err == nil {
		if exec.Command(path, "info", flatpakApp).Run() == nil {
			config.Tracef(1, "backend tool: flatpak %s", flatpakApp)
			return Tool{
				Path: path,
				Args: []string{"run", "--command=" + nativeExe, flatpakApp},
			}, nil
		}
	}

	return Tool{}, exitcode.Errorf(exitcode.ToolNotFound,
		"%s not found: install KeePassXC or its flatpak", nativeExe)
}
