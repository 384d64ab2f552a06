// Package testutil holds helpers shared by tests that need a real
// history database.
package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/kurtlawrence/cmdtree/internal/history"
	"github.com/kurtlawrence/cmdtree/internal/history/migrations"
)

// NewTestDB returns an in-memory SQLite database with the full schema
// applied, closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "open in-memory database")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Run(db), "apply migrations")
	return db
}

// NewHistory returns a history store backed by NewTestDB.
func NewHistory(t *testing.T) *history.Store {
	t.Helper()
	return history.NewWithDB(NewTestDB(t))
}

// SeedHistory appends lines to the store in order.
func SeedHistory(t *testing.T, s *history.Store, lines []string) {
	t.Helper()
	for _, line := range lines {
		require.NoError(t, s.Append(line), "seed history line %q", line)
	}
}
