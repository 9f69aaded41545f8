package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFlags mirrors the root command's persistent flag set.
func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("profile", "p", "", "")
	fs.StringP("key", "k", "", "")
	fs.String("db", "", "")
	fs.String("pass", "", "")
	fs.Bool("keyring", true, "")
	fs.Bool("prompt", true, "")
	fs.BoolP("force", "f", false, "")
	fs.CountP("verbose", "v", "")

	require.NoError(t, Bind(fs))
	return fs
}

func TestEnvAsDefault(t *testing.T) {
	t.Setenv(EnvDB, "/env.kdbx")
	t.Setenv(EnvProfile, "envprof")

	fs := newFlags(t)
	require.NoError(t, fs.Parse(nil))

	s := Resolve()
	assert.Equal(t, "/env.kdbx", s.Database)
	assert.Equal(t, "envprof", s.Profile)
}

func TestFlagOverridesEnv(t *testing.T) {
	t.Setenv(EnvDB, "/env.kdbx")

	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--db", "/flag.kdbx"}))

	s := Resolve()
	assert.Equal(t, "/flag.kdbx", s.Database)
}

func TestKeyringEnvDisables(t *testing.T) {
	t.Setenv(EnvKeyring, "false")

	fs := newFlags(t)
	require.NoError(t, fs.Parse(nil))

	s := Resolve()
	assert.False(t, s.UseKeyring)
}

func TestNoPromptEnv(t *testing.T) {
	t.Setenv(EnvNoPrompt, "true")

	fs := newFlags(t)
	require.NoError(t, fs.Parse(nil))

	s := Resolve()
	assert.True(t, s.NoPrompt)
}

func TestPromptFlagBeatsNoPromptEnv(t *testing.T) {
	t.Setenv(EnvNoPrompt, "true")

	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--prompt"}))

	s := Resolve()
	assert.False(t, s.NoPrompt)
}

func TestVerbosityCount(t *testing.T) {
	fs := newFlags(t)
	require.NoError(t, fs.Parse([]string{"-vv"}))

	s := Resolve()
	assert.Equal(t, 2, s.Verbosity)
}

func TestDirFromEnv(t *testing.T) {
	t.Setenv(EnvConf, "/somewhere/else")
	assert.Equal(t, "/somewhere/else", Dir())
}
