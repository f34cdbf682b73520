// Package store owns the local persistence of the checkpoint: five named
// collections in a single SQLite database file, each keyed by an
// auto-assigned integer identity.
//
// # Overview
//
// Open wires the per-collection repositories, applies the embedded schema
// migrations, and attempts a one-time delete-and-recreate recovery when the
// database cannot be opened. When recovery also fails, Open degrades to a
// null store: the application keeps running, but every persistence call
// returns common.ErrStorageUnavailable.
//
// # Replication
//
// After a successful write to the vehicle, pedestrian or directory
// collections the store invokes the optional replication sink on a detached
// goroutine. The caller never waits for it and never sees its errors; they
// are logged and dropped.
//
// # Concurrency
//
// The deployment model is a single checkpoint terminal: one logical writer.
// Each individual operation is atomic (a single SQL statement), but no
// cross-operation isolation is provided.
package store

import (
	"context"

	"github.com/vigilia/caseta/internal/models"
)

// Store is the persistence contract handed to every collaborator.
type Store interface {
	// Vehicle visits.
	AddVehicleVisit(ctx context.Context, v *models.VehicleVisit) (int64, error)
	VehicleVisits(ctx context.Context) ([]models.VehicleVisit, error)
	DeleteVehicleVisit(ctx context.Context, id int64) error

	// Pedestrian visits.
	AddPedestrianVisit(ctx context.Context, p *models.PedestrianVisit) (int64, error)
	PedestrianVisits(ctx context.Context) ([]models.PedestrianVisit, error)
	DeletePedestrianVisit(ctx context.Context, id int64) error

	// Shift log.
	AddLogNote(ctx context.Context, n *models.LogNote) (int64, error)
	LogNotes(ctx context.Context) ([]models.LogNote, error)
	DeleteLogNote(ctx context.Context, id int64) error

	// Guard accounts.
	AddGuard(ctx context.Context, g *models.GuardAccount) (int64, error)
	Guards(ctx context.Context) ([]models.GuardAccount, error)
	GuardByUsername(ctx context.Context, username string) (*models.GuardAccount, error)
	DeleteGuard(ctx context.Context, id int64) error

	// Resident directory. Replace keeps the identity key; uniqueness per
	// normalized destination is enforced by the upsert resolver above this
	// layer, not here.
	AddDirectoryEntry(ctx context.Context, e *models.DirectoryEntry) (int64, error)
	DirectoryEntries(ctx context.Context) ([]models.DirectoryEntry, error)
	DirectoryEntryByDestination(ctx context.Context, destino string) (*models.DirectoryEntry, error)
	ReplaceDirectoryEntry(ctx context.Context, id int64, e *models.DirectoryEntry) error
	DeleteDirectoryEntry(ctx context.Context, id int64) error

	// Clear empties one named collection (see common.Collections).
	Clear(ctx context.Context, collection string) error

	// ClearAll empties every collection atomically. Used by bulk restore
	// before re-inserting the imported records.
	ClearAll(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
