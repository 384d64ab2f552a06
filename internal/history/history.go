// Package history persists the lines submitted to interactive sessions
// in a per-user SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/kurtlawrence/cmdtree/internal/history/migrations"
)

// Entry is one recorded input line.
type Entry struct {
	ID      int64
	Session string
	Line    string
	At      time.Time
}

// Store wraps a SQLite database holding the input history. Each Store
// carries a session ID that tags the lines it appends, so one run of
// the shell can be told apart from another.
type Store struct {
	db      *sql.DB
	path    string
	session string
}

// New opens (or creates) the history database at path and runs any
// pending migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path, session: uuid.New().String()}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, session: uuid.New().String()}
}

// Session returns the ID tagging lines appended by this Store.
func (s *Store) Session() string {
	return s.session
}

// DB returns the underlying database connection.
// Use sparingly - prefer using Store methods.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Append records one submitted line under this Store's session.
func (s *Store) Append(line string) error {
	_, err := s.db.Exec(
		`INSERT INTO history_entries (session_id, line, entered_at)
		 VALUES (?, ?, ?)`,
		s.session,
		line,
		time.Now().Format(time.RFC3339),
	)
	return err
}

// Recent returns distinct lines, most recently used first. Repeated
// lines appear once, at the position of their latest use. A limit of
// zero or less returns everything.
func (s *Store) Recent(limit int) ([]string, error) {
	query := `
		SELECT line FROM history_entries
		GROUP BY line
		ORDER BY MAX(id) DESC
	`

	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string

	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		out = append(out, line)
	}

	return out, rows.Err()
}

// RecentEntries returns full entries, newest first, without
// deduplication. A limit of zero or less returns everything.
func (s *Store) RecentEntries(limit int) ([]Entry, error) {
	query := `
		SELECT id, session_id, line, entered_at
		FROM history_entries
		ORDER BY id DESC
	`

	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Count returns the number of stored entries.
func (s *Store) Count() (int64, error) {
	var n int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM history_entries").Scan(&n)
	return n, err
}

// Prune deletes everything but the newest keep entries and returns the
// number of rows removed. Prune(0) clears the history.
func (s *Store) Prune(keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	result, err := s.db.Exec(`
		DELETE FROM history_entries
		WHERE id NOT IN (
			SELECT id FROM history_entries ORDER BY id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// scanEntry scans a single row into an Entry.
func scanEntry(rows *sql.Rows) (Entry, error) {
	var (
		e  Entry
		ts string
	)

	if err := rows.Scan(&e.ID, &e.Session, &e.Line, &ts); err != nil {
		return Entry{}, err
	}

	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return Entry{}, err
	}

	e.At = t
	return e, nil
}
