package profiles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestCreateExistsRemove(t *testing.T) {
	s := newTestStore(t)

	require.False(t, s.Exists("demo"))
	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))
	require.True(t, s.Exists("demo"))

	require.NoError(t, s.Remove("demo"))
	require.False(t, s.Exists("demo"))

	err := s.Remove("demo")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAlreadyExists(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))
	err := s.Create("demo", "/elsewhere.kdbx")
	require.ErrorIs(t, err, ErrExists)
}

func TestCreateWritesDatabasePath(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))

	p, err := s.Load("demo")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.kdbx", p.Database)
	assert.True(t, p.Complete())
	assert.Equal(t, PasswordUnset, p.Source)
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePasswordRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))

	require.NoError(t, s.UpdatePassword("demo", "secret", "password updated today"))

	p, err := s.Load("demo")
	require.NoError(t, err)
	assert.Equal(t, "secret", p.Password)
	assert.Equal(t, PasswordClearText, p.Source)
	assert.Equal(t, "/tmp/test.kdbx", p.Database)
}

func TestUpdatePasswordEmptyClears(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))
	require.NoError(t, s.UpdatePassword("demo", "secret", "password updated"))

	require.NoError(t, s.UpdatePassword("demo", "", "password unset, will prompt"))

	p, err := s.Load("demo")
	require.NoError(t, err)
	assert.Empty(t, p.Password)
	assert.Equal(t, PasswordUnset, p.Source)

	data, err := os.ReadFile(s.Path("demo"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), KeyPassword+"=")
}

func TestUpdatePasswordReplacesNotAppends(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))

	require.NoError(t, s.UpdatePassword("demo", "first", "password updated"))
	require.NoError(t, s.UpdatePassword("demo", "second", "password updated"))

	data, err := os.ReadFile(s.Path("demo"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), KeyPassword+"="))

	p, err := s.Load("demo")
	require.NoError(t, err)
	assert.Equal(t, "second", p.Password)
}

func TestUpdatePasswordHandlesSpaces(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))

	require.NoError(t, s.UpdatePassword("demo", "pa ss word", ""))

	p, err := s.Load("demo")
	require.NoError(t, err)
	assert.Equal(t, "pa ss word", p.Password)
}

func TestUpdatePasswordQuoteRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))

	passwords := []string{
		"it's",
		"'leading",
		"trailing'",
		"''",
		"pa$$ word#1",
		`back\slash`,
	}
	for _, pw := range passwords {
		require.NoError(t, s.UpdatePassword("demo", pw, ""))

		p, err := s.Load("demo")
		require.NoError(t, err)
		assert.Equal(t, pw, p.Password)
	}
}

func TestDatabasePathWithQuoteRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("demo", "/tmp/it's.kdbx"))

	p, err := s.Load("demo")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/it's.kdbx", p.Database)
}

func TestLoadHandEditedValues(t *testing.T) {
	s := newTestStore(t)
	file := "KC_DB=/tmp/plain.kdbx\nKC_PASS=\"doub le\"\n"
	require.NoError(t, os.MkdirAll(s.Dir, 0o700))
	require.NoError(t, os.WriteFile(s.Path("demo"), []byte(file), 0o600))

	p, err := s.Load("demo")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/plain.kdbx", p.Database)
	assert.Equal(t, "doub le", p.Password)
}

func TestMarkKeyring(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("demo", "/tmp/test.kdbx"))
	require.NoError(t, s.UpdatePassword("demo", "secret", "password updated"))

	require.NoError(t, s.MarkKeyring("demo"))

	p, err := s.Load("demo")
	require.NoError(t, err)
	assert.Empty(t, p.Password)
	assert.Equal(t, PasswordKeyring, p.Source)
}

func TestListSortedAndLiteral(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("zeta", "/z.kdbx"))
	require.NoError(t, s.Create("alpha", "/a.kdbx"))

	// Files that do not match the conf.<name>.env shape are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir, "conf.env"), []byte("x"), 0o600))

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestListMissingDirIsEmpty(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestIncompleteProfile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Create("empty", ""))

	p, err := s.Load("empty")
	require.NoError(t, err)
	assert.False(t, p.Complete())
}
