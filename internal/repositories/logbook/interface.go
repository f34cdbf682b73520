package logbook

import (
	"context"

	"github.com/vigilia/caseta/internal/models"
)

// Repository describes persistence operations for shift log notes.
type Repository interface {
	// Insert persists a new note and returns its assigned identity key.
	Insert(ctx context.Context, n *models.LogNote) (int64, error)

	// GetAll returns every note in insertion order.
	GetAll(ctx context.Context) ([]models.LogNote, error)

	// DeleteByID removes a note. Missing ids are a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error

	// Clear removes all notes. Used only during bulk import/restore.
	Clear(ctx context.Context) error
}
