package directory

import (
	"context"

	"github.com/vigilia/caseta/internal/models"
)

// Repository describes persistence operations for directory entries.
type Repository interface {
	// Insert persists a new entry and returns its assigned identity key.
	Insert(ctx context.Context, e *models.DirectoryEntry) (int64, error)

	// GetAll returns every entry in insertion order.
	GetAll(ctx context.Context) ([]models.DirectoryEntry, error)

	// FindByNormalizedDestination returns the entry whose destination matches
	// the given destination after trimming and lowercasing, or
	// common.ErrNotFound if none exists.
	FindByNormalizedDestination(ctx context.Context, destino string) (*models.DirectoryEntry, error)

	// Replace overwrites every field of the entry with the given id,
	// preserving the identity key.
	Replace(ctx context.Context, id int64, e *models.DirectoryEntry) error

	// DeleteByID removes an entry. Missing ids are a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error

	// Clear removes all entries. Used only during bulk import/restore.
	Clear(ctx context.Context) error
}
