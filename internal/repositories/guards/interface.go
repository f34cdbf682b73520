package guards

import (
	"context"

	"github.com/vigilia/caseta/internal/models"
)

// Repository describes persistence operations for guard accounts.
type Repository interface {
	// Insert persists a new account and returns its assigned identity key.
	Insert(ctx context.Context, g *models.GuardAccount) (int64, error)

	// GetAll returns every account in insertion order.
	GetAll(ctx context.Context) ([]models.GuardAccount, error)

	// GetByUsername returns the account with the given username, or
	// common.ErrNotFound if none exists.
	GetByUsername(ctx context.Context, username string) (*models.GuardAccount, error)

	// DeleteByID removes an account. Missing ids are a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error

	// Clear removes all accounts. Used only during bulk import/restore.
	Clear(ctx context.Context) error
}
