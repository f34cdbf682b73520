package pedestrians

import (
	"context"

	"github.com/vigilia/caseta/internal/models"
)

// Repository describes persistence operations for pedestrian visits.
type Repository interface {
	// Insert persists a new visit and returns its assigned identity key.
	Insert(ctx context.Context, p *models.PedestrianVisit) (int64, error)

	// GetAll returns every visit in insertion order.
	GetAll(ctx context.Context) ([]models.PedestrianVisit, error)

	// DeleteByID removes a visit. Missing ids are a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error

	// Clear removes all visits. Used only during bulk import/restore.
	Clear(ctx context.Context) error
}
