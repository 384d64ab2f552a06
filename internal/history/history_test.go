package history

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/kurtlawrence/cmdtree/internal/history/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err)

	return NewWithDB(db)
}

func TestStore_Append(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append("print"))
	require.NoError(t, s.Append("echo hello"))

	n, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
}

func TestStore_Recent_NewestFirst(t *testing.T) {
	s := newTestStore(t)

	for _, line := range []string{"print", "echo one", "cancel"} {
		require.NoError(t, s.Append(line))
	}

	lines, err := s.Recent(10)
	require.NoError(t, err)
	require.Equal(t, []string{"cancel", "echo one", "print"}, lines)
}

func TestStore_Recent_DeduplicatesRepeatedLines(t *testing.T) {
	s := newTestStore(t)

	for _, line := range []string{"print", "echo hi", "print", "status"} {
		require.NoError(t, s.Append(line))
	}

	lines, err := s.Recent(10)
	require.NoError(t, err)
	// "print" shows once, at its latest position.
	require.Equal(t, []string{"status", "print", "echo hi"}, lines)
}

func TestStore_Recent_Limit(t *testing.T) {
	s := newTestStore(t)

	for _, line := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Append(line))
	}

	lines, err := s.Recent(2)
	require.NoError(t, err)
	require.Equal(t, []string{"d", "c"}, lines)
}

func TestStore_Recent_Empty(t *testing.T) {
	s := newTestStore(t)

	lines, err := s.Recent(10)
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestStore_RecentEntries(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append("print"))
	require.NoError(t, s.Append("print")) // duplicates kept here

	entries, err := s.RecentEntries(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "print", entries[0].Line)
	require.Equal(t, s.Session(), entries[0].Session)
	require.False(t, entries[0].At.IsZero())
	// Newest first.
	require.Greater(t, entries[0].ID, entries[1].ID)
}

func TestStore_Prune(t *testing.T) {
	s := newTestStore(t)

	for _, line := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, s.Append(line))
	}

	removed, err := s.Prune(2)
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)

	lines, err := s.Recent(10)
	require.NoError(t, err)
	require.Equal(t, []string{"e", "d"}, lines)
}

func TestStore_Prune_KeepAll(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append("a"))

	removed, err := s.Prune(10)
	require.NoError(t, err)
	require.Equal(t, int64(0), removed)
}

func TestStore_Prune_Zero_ClearsHistory(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append("a"))
	require.NoError(t, s.Append("b"))

	removed, err := s.Prune(0)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)

	n, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
}

func TestStore_SessionIsStable(t *testing.T) {
	s := newTestStore(t)

	require.NotEmpty(t, s.Session())
	require.Equal(t, s.Session(), s.Session())
}

func TestStore_SessionsDiffer(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	require.NotEqual(t, a.Session(), b.Session())
}

func TestNew_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := New(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Append("print"))

	n, err := s.Count()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestStore_Close(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)

	require.NoError(t, s.Close())
}
