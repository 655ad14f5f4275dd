// Package storage provides SQLite-based persistence for the level library.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the level library.
type Store struct {
	db *sql.DB
}

// LevelEntry is a named level stored in the library. Data holds the level
// in the plain-text format (#, ., o, space).
type LevelEntry struct {
	ID        int64
	Name      string
	Data      string
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path. It creates the
// parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_name ON levels(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveLevel stores a level under a name, replacing any existing level with
// the same name.
func (s *Store) SaveLevel(name, data string) error {
	_, err := s.db.Exec(
		`INSERT INTO levels (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		name, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save level %q: %w", name, err)
	}
	return nil
}

// Level retrieves a level by name. Returns nil if no such level exists.
func (s *Store) Level(name string) (*LevelEntry, error) {
	var e LevelEntry
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT id, name, data, updated_at FROM levels WHERE name = ?",
		name,
	).Scan(&e.ID, &e.Name, &e.Data, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level %q: %w", name, err)
	}

	e.UpdatedAt = parseTimestamp(updatedAt)
	return &e, nil
}

// ListLevels retrieves all stored levels ordered by name.
func (s *Store) ListLevels() ([]LevelEntry, error) {
	rows, err := s.db.Query("SELECT id, name, data, updated_at FROM levels ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []LevelEntry
	for rows.Next() {
		var e LevelEntry
		var updatedAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Data, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTimestamp(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DeleteLevel removes a level by name. Deleting a missing level is not an
// error.
func (s *Store) DeleteLevel(name string) error {
	_, err := s.db.Exec("DELETE FROM levels WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level %q: %w", name, err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
