// ABOUTME: Error taxonomy for the record store.
// ABOUTME: Classifies SQLite failures into unavailable-storage and constraint errors.
package storage

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrStorageUnavailable means the database file could not be opened, created, or written.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrConstraintViolation means a write violated a column constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrNotFound means no record has the requested ID. Only Get returns it;
	// Update and Delete report a missing ID through their changed result.
	ErrNotFound = errors.New("record not found")
)

// StorageError records the store operation that failed and why.
// It matches both its Kind sentinel and the underlying driver error.
type StorageError struct {
	Op   string
	Kind error
	Err  error
}

func (e *StorageError) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() []error {
	if e.Kind == nil {
		return []error{e.Err}
	}
	return []error{e.Kind, e.Err}
}

// wrapErr attaches op and a classified Kind to err. nil stays nil.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Op: op, Kind: classify(err), Err: err}
}

// unavailable wraps err as an ErrStorageUnavailable failure regardless of its code.
func unavailable(op string, err error) error {
	return &StorageError{Op: op, Kind: ErrStorageUnavailable, Err: err}
}

// classify maps a SQLite result code onto the store's error kinds.
func classify(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}

	var se *sqlite.Error
	if !errors.As(err, &se) {
		return nil
	}

	// Extended codes carry the primary code in the low byte.
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		return ErrConstraintViolation
	case sqlite3.SQLITE_BUSY,
		sqlite3.SQLITE_LOCKED,
		sqlite3.SQLITE_CANTOPEN,
		sqlite3.SQLITE_READONLY,
		sqlite3.SQLITE_IOERR,
		sqlite3.SQLITE_FULL,
		sqlite3.SQLITE_PERM,
		sqlite3.SQLITE_NOTADB,
		sqlite3.SQLITE_CORRUPT:
		return ErrStorageUnavailable
	}
	return nil
}
