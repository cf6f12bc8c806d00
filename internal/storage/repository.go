// ABOUTME: Repository interface for fitness record storage.
// ABOUTME: Defines the contract the CLI, MCP server, and export code depend on.
package storage

import "github.com/harperreed/fitlog/internal/models"

// Repository defines the storage interface for fitness records.
type Repository interface {
	Insert(r *models.Record) (int64, error)
	List() ([]*models.Record, error)
	Get(id int64) (*models.Record, error)
	Update(id int64, r *models.Record) (bool, error)
	Delete(id int64) (bool, error)

	Close() error
}

var _ Repository = (*Store)(nil)
