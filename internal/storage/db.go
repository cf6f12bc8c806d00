// ABOUTME: SQLite connection lifecycle for the fitness record store.
// ABOUTME: Uses modernc.org/sqlite (pure Go) with one scoped connection per operation.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "fitness_tracker.db"

// Store is the record store. It holds no open connection between calls;
// every operation acquires its own and releases it before returning.
type Store struct {
	dbPath string
	logger *log.Logger
}

// Open ensures the schema exists at dbPath and returns a Store for it.
func Open(dbPath string) (*Store, error) {
	s := &Store{dbPath: dbPath, logger: log.Default()}
	if err := s.EnsureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// DataDir returns the default data directory following the XDG base directory layout.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitlog")
}

// DefaultDBPath returns the default database path following the XDG base directory layout.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), DBFileName)
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// SetLogger replaces the logger used for per-operation debug output.
func (s *Store) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Close is a no-op kept for the Repository lifecycle; no connection outlives an operation.
func (s *Store) Close() error {
	return nil
}

// connect opens a single-connection handle and applies per-connection pragmas.
func (s *Store) connect() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect %s: %w", s.dbPath, err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return db, nil
}

// withConn runs fn on a freshly acquired connection and always releases it.
func (s *Store) withConn(op string, fn func(db *sql.DB) error) (err error) {
	db, err := s.connect()
	if err != nil {
		s.logger.Debug("connect failed", "op", op, "err", err)
		return unavailable(op, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = unavailable(op, fmt.Errorf("close database: %w", cerr))
		}
	}()

	return wrapErr(op, fn(db))
}
