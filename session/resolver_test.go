package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frostyeti/kpx/config"
	"github.com/frostyeti/kpx/exitcode"
	"github.com/frostyeti/kpx/profiles"
)

// testDB creates a file standing in for a database.
func testDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.kdbx")
	require.NoError(t, os.WriteFile(path, []byte("kdbx"), 0o600))
	return path
}

func testResolver(t *testing.T, store *profiles.Store, st config.Settings) *Resolver {
	t.Helper()
	return &Resolver{
		Store:    store,
		Settings: st,
		OpenKeyring: func() (keyring.Keyring, error) {
			return keyring.NewArrayKeyring(nil), nil
		},
		ReadPassword: func(string) (string, error) {
			t.Fatal("unexpected password prompt")
			return "", nil
		},
	}
}

func TestExplicitPasswordWinsOverProfile(t *testing.T) {
	db := testDB(t)
	store := profiles.NewStore(t.TempDir())
	require.NoError(t, store.Create("demo", db))
	require.NoError(t, store.UpdatePassword("demo", "from-profile", ""))

	r := testResolver(t, store, config.Settings{Password: "from-flag"})

	sess, err := r.Session("demo")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", sess.Password)
	assert.Equal(t, db, sess.Database)
}

func TestProfilePasswordUsed(t *testing.T) {
	db := testDB(t)
	store := profiles.NewStore(t.TempDir())
	require.NoError(t, store.Create("demo", db))
	require.NoError(t, store.UpdatePassword("demo", "from-profile", ""))

	r := testResolver(t, store, config.Settings{})

	sess, err := r.Session("demo")
	require.NoError(t, err)
	assert.Equal(t, "from-profile", sess.Password)
}

func TestKeyringConsulted(t *testing.T) {
	db := testDB(t)
	store := profiles.NewStore(t.TempDir())
	require.NoError(t, store.Create("demo", db))

	r := testResolver(t, store, config.Settings{UseKeyring: true})
	r.OpenKeyring = func() (keyring.Keyring, error) {
		return keyring.NewArrayKeyring([]keyring.Item{
			{Key: "demo", Data: []byte("from-keyring")},
		}), nil
	}

	sess, err := r.Session("demo")
	require.NoError(t, err)
	assert.Equal(t, "from-keyring", sess.Password)
}

func TestPromptIsLastResort(t *testing.T) {
	db := testDB(t)
	store := profiles.NewStore(t.TempDir())
	require.NoError(t, store.Create("demo", db))

	r := testResolver(t, store, config.Settings{UseKeyring: true})
	r.ReadPassword = func(string) (string, error) { return "typed", nil }

	sess, err := r.Session("demo")
	require.NoError(t, err)
	assert.Equal(t, "typed", sess.Password)
}

func TestNoSourceAndNoPromptFails(t *testing.T) {
	db := testDB(t)
	store := profiles.NewStore(t.TempDir())
	require.NoError(t, store.Create("demo", db))

	r := testResolver(t, store, config.Settings{NoPrompt: true})

	_, err := r.Session("demo")
	require.Error(t, err)
	assert.Equal(t, exitcode.Credential, exitcode.Status(err))
}

func TestMissingDatabaseConfig(t *testing.T) {
	store := profiles.NewStore(t.TempDir())

	r := testResolver(t, store, config.Settings{Password: "x"})

	_, err := r.Session("")
	require.Error(t, err)
	assert.Equal(t, exitcode.MissingDatabase, exitcode.Status(err))
}

func TestDatabaseCheckPrecedesPrompt(t *testing.T) {
	store := profiles.NewStore(t.TempDir())

	// Prompting is allowed, but the database does not exist; the resolver
	// must fail before ever asking for a password.
	r := testResolver(t, store, config.Settings{
		Database: filepath.Join(t.TempDir(), "missing.kdbx"),
	})

	_, err := r.Session("")
	require.Error(t, err)
	assert.Equal(t, exitcode.DatabaseNotFound, exitcode.Status(err))
}

func TestUnknownProfile(t *testing.T) {
	store := profiles.NewStore(t.TempDir())

	r := testResolver(t, store, config.Settings{})

	_, err := r.Session("ghost")
	require.Error(t, err)
	assert.Equal(t, exitcode.MissingDatabase, exitcode.Status(err))
}
