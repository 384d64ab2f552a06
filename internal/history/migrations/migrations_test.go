package migrations_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/kurtlawrence/cmdtree/internal/history/migrations"
)

func openMemDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoad_SortedAndNonEmpty(t *testing.T) {
	all, err := migrations.Load()
	require.NoError(t, err)
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].Version, all[i-1].Version)
	}
	for _, m := range all {
		require.NotEmpty(t, m.SQL, "migration %d has no SQL", m.Version)
		require.NotEmpty(t, m.Description, "migration %d has no description", m.Version)
	}
}

func TestRun_Idempotent(t *testing.T) {
	db := openMemDB(t)

	require.NoError(t, migrations.Run(db))
	first, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Positive(t, first)

	require.NoError(t, migrations.Run(db))
	second, err := migrations.CurrentVersion(db)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestPending_DrainsAfterRun(t *testing.T) {
	db := openMemDB(t)

	all, err := migrations.Load()
	require.NoError(t, err)

	pending, err := migrations.Pending(db)
	require.NoError(t, err)
	require.Len(t, pending, len(all))

	require.NoError(t, migrations.Run(db))

	pending, err = migrations.Pending(db)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestRun_CreatesHistoryTable(t *testing.T) {
	db := openMemDB(t)

	require.NoError(t, migrations.Run(db))

	for _, table := range []string{"schema_migrations", "history_entries"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}
