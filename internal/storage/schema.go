// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the fitness table with column constraints matching the record model.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// Column order is part of the file format; keep it stable.
const schema = `
CREATE TABLE IF NOT EXISTS fitness (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL CHECK (length(trim(name)) > 0),
	age INTEGER NOT NULL CHECK (age BETWEEN 1 AND 100),
	weight REAL NOT NULL CHECK (weight >= 1.0),
	date TEXT NOT NULL CHECK (date IS date(date)),
	exercise TEXT NOT NULL CHECK (length(trim(exercise)) > 0),
	duration INTEGER NOT NULL CHECK (duration >= 1),
	calories INTEGER NOT NULL CHECK (calories >= 1)
);
`

// EnsureSchema creates the data directory and the fitness table if absent.
// It is idempotent and leaves an existing table untouched.
func (s *Store) EnsureSchema() error {
	const op = "ensure schema"

	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0750); err != nil {
		return unavailable(op, fmt.Errorf("create data directory: %w", err))
	}

	err := s.withConn(op, func(db *sql.DB) error {
		// WAL mode persists in the file, so it only needs setting once.
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			return fmt.Errorf("set journal mode: %w", err)
		}
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := os.Chmod(s.dbPath, 0600); err != nil && !os.IsNotExist(err) {
		return unavailable(op, fmt.Errorf("set database permissions: %w", err))
	}

	s.logger.Debug("schema ready", "path", s.dbPath)
	return nil
}
