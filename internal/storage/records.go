// ABOUTME: FitnessRecord CRUD operations for SQLite storage.
// ABOUTME: Each method runs one statement on its own scoped connection.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
)

const selectColumns = `SELECT id, name, age, weight, date, exercise, duration, calories FROM fitness`

// Insert stores a new record and returns the ID the store assigned.
// r.ID is ignored. Callers validate r beforehand; the schema still rejects bad values.
func (s *Store) Insert(r *models.Record) (int64, error) {
	var id int64
	err := s.withConn("insert record", func(db *sql.DB) error {
		query := `
			INSERT INTO fitness (name, age, weight, date, exercise, duration, calories)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`
		result, err := db.Exec(query,
			r.Name,
			r.Age,
			r.Weight,
			r.Date,
			r.Exercise,
			r.Duration,
			r.Calories,
		)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("inserted record", "id", id)
	return id, nil
}

// List returns every stored record in insertion order.
// An empty store yields an empty, non-nil slice.
func (s *Store) List() ([]*models.Record, error) {
	records := []*models.Record{}
	err := s.withConn("list records", func(db *sql.DB) error {
		rows, err := db.Query(selectColumns + ` ORDER BY id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			r, err := scanRecord(rows)
			if err != nil {
				return err
			}
			records = append(records, r)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("listed records", "count", len(records))
	return records, nil
}

// Get retrieves a single record by ID.
func (s *Store) Get(id int64) (*models.Record, error) {
	var r *models.Record
	err := s.withConn("get record", func(db *sql.DB) error {
		var err error
		r, err = scanRecord(db.QueryRow(selectColumns+` WHERE id = ?`, id))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %d", ErrNotFound, id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Update replaces every non-ID field of the record with the given ID.
// A missing ID is not an error: changed is false and nothing is written.
func (s *Store) Update(id int64, r *models.Record) (bool, error) {
	var affected int64
	err := s.withConn("update record", func(db *sql.DB) error {
		query := `
			UPDATE fitness
			SET name = ?, age = ?, weight = ?, date = ?, exercise = ?, duration = ?, calories = ?
			WHERE id = ?
		`
		result, err := db.Exec(query,
			r.Name,
			r.Age,
			r.Weight,
			r.Date,
			r.Exercise,
			r.Duration,
			r.Calories,
			id,
		)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}

	s.logger.Debug("updated record", "id", id, "affected", affected)
	return affected > 0, nil
}

// Delete permanently removes the record with the given ID.
// A missing ID is not an error: changed is false.
func (s *Store) Delete(id int64) (bool, error) {
	var affected int64
	err := s.withConn("delete record", func(db *sql.DB) error {
		result, err := db.Exec("DELETE FROM fitness WHERE id = ?", id)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}

	s.logger.Debug("deleted record", "id", id, "affected", affected)
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRecord scans one row into a Record. Columns written by older
// tools may hold NULLs, which scan as zero values.
func scanRecord(row rowScanner) (*models.Record, error) {
	var r models.Record
	var name, date, exercise sql.NullString
	var age, duration, calories sql.NullInt64
	var weight sql.NullFloat64

	err := row.Scan(&r.ID, &name, &age, &weight, &date, &exercise, &duration, &calories)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan record: %w", err)
	}

	r.Name = name.String
	r.Age = int(age.Int64)
	r.Weight = weight.Float64
	r.Date = date.String
	r.Exercise = exercise.String
	r.Duration = int(duration.Int64)
	r.Calories = int(calories.Int64)

	return &r, nil
}
