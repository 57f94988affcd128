package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_SetGet(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("accounts", `[]`))
	v, ok, err := s.Get("accounts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, v)
}

func TestSQLite_SetOverwrites(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Set("theme", "light"))

	v, ok, err := s.Get("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestSQLite_Remove(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("session", `{}`))
	require.NoError(t, s.Remove("session"))

	_, ok, err := s.Get("session")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is not an error.
	require.NoError(t, s.Remove("session"))
}

func TestSQLite_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Set("accounts", `[{"id":"x"}]`))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.Get("accounts")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, v)
}

func TestMemory(t *testing.T) {
	s := NewMemory()

	require.NoError(t, s.Set("k", "v"))
	v, ok, err := s.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Remove("k"))
	_, ok, err = s.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)
}
