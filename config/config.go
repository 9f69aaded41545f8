// Package config resolves the per-invocation settings of kpx from command
// line flags and KEEPASSX_CLI__* environment variables. The resolved
// Settings value is built once and passed down; nothing here is persisted.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Environment variables read as flag defaults. Flags always win.
const (
	EnvProfile  = "KEEPASSX_CLI__PROFILE"
	EnvKey      = "KEEPASSX_CLI__KEY"
	EnvDB       = "KEEPASSX_CLI__DB"
	EnvPass     = "KEEPASSX_CLI__PASS"
	EnvConf     = "KEEPASSX_CLI__CONF"
	EnvKeyring  = "KEEPASSX_CLI__KEYRING"
	EnvNoPrompt = "KEEPASSX_CLI__NO_PROMPT"
)

// Settings is the immutable configuration record for one invocation.
type Settings struct {
	Profile    string
	Key        string
	Database   string
	Password   string
	UseKeyring bool
	NoPrompt   bool
	Force      bool
	Verbosity  int
	ConfDir    string
}

var (
	v     *viper.Viper
	flags *pflag.FlagSet
)

// Bind wires the root command's persistent flag set to the environment.
// Called once from the cmd package's init.
func Bind(fs *pflag.FlagSet) error {
	flags = fs
	v = viper.New()

	for flag, env := range map[string]string{
		"profile": EnvProfile,
		"key":     EnvKey,
		"db":      EnvDB,
		"pass":    EnvPass,
		"keyring": EnvKeyring,
	} {
		if err := v.BindEnv(flag, env); err != nil {
			return err
		}
		if err := v.BindPFlag(flag, fs.Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// Resolve builds the Settings record. Precedence per key is
// flag > environment > default.
func Resolve() Settings {
	s := Settings{
		Profile:    v.GetString("profile"),
		Key:        v.GetString("key"),
		Database:   v.GetString("db"),
		Password:   v.GetString("pass"),
		UseKeyring: v.GetBool("keyring"),
		ConfDir:    Dir(),
	}

	// --prompt is a positive flag but the environment variable is the
	// negative KEEPASSX_CLI__NO_PROMPT, so the layering is done by hand.
	prompt, _ := flags.GetBool("prompt")
	s.NoPrompt = !prompt
	if !flags.Changed("prompt") {
		if raw := os.Getenv(EnvNoPrompt); raw != "" {
			if no, err := strconv.ParseBool(raw); err == nil {
				s.NoPrompt = no
			}
		}
	}

	s.Force, _ = flags.GetBool("force")
	s.Verbosity, _ = flags.GetCount("verbose")
	Verbosity = s.Verbosity

	return s
}

// Dir returns the profile configuration directory: KEEPASSX_CLI__CONF if
// set, else ~/.config/keepassx-cli (or %APPDATA%\keepassx-cli on Windows).
func Dir() string {
	if dir := os.Getenv(EnvConf); dir != "" {
		return dir
	}

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		return filepath.Join(appData, "keepassx-cli")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "keepassx-cli")
}
