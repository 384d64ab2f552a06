package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sort"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// Migration is one schema change, loaded from an embedded SQL file
// named "NN_description.sql".
type Migration struct {
	Version     int
	Description string
	SQL         string
}

const createSchemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version     INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Load returns all embedded migrations sorted by version.
func Load() ([]Migration, error) {
	names, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list embedded sql: %w", err)
	}

	all := make([]Migration, 0, len(names))
	seen := make(map[int]string, len(names))

	for _, name := range names {
		version, description, err := parseName(name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path.Base(name), err)
		}
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate version %d: %s and %s", version, prev, description)
		}
		seen[version] = description

		content, err := sqlFiles.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path.Base(name), err)
		}

		all = append(all, Migration{Version: version, Description: description, SQL: string(content)})
	}

	slices.SortFunc(all, func(a, b Migration) int { return a.Version - b.Version })
	return all, nil
}

// parseName extracts version and description from "NN_description.sql".
func parseName(name string) (int, string, error) {
	base := strings.TrimSuffix(path.Base(name), ".sql")
	num, description, ok := strings.Cut(base, "_")
	if !ok {
		return 0, "", fmt.Errorf("name must look like NN_description.sql")
	}

	version, err := strconv.Atoi(num)
	if err != nil {
		return 0, "", fmt.Errorf("bad version prefix: %w", err)
	}

	return version, description, nil
}

// Run applies every migration newer than the database's current
// version, each inside its own transaction.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %02d_%s: %w", m.Version, m.Description, err)
		}
	}

	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	if err := applyTx(tx, m); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func applyTx(tx *sql.Tx, m Migration) error {
	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}

	_, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	)
	if err != nil {
		return fmt.Errorf("record migration: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest applied migration version,
// creating the schema_migrations table if needed.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(createSchemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("get current version: %w", err)
	}
	return version, nil
}

// Pending returns migrations not yet applied. Load keeps the slice
// sorted, so the pending set is always a tail.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}

	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}

	idx := sort.Search(len(all), func(i int) bool { return all[i].Version > current })
	return all[idx:], nil
}
