package store

import (
	"context"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"
)

// NullStore is the degraded mode after a failed open and recovery: the UI
// still renders, but every persistence call fails with
// common.ErrStorageUnavailable.
type NullStore struct{}

// NewNullStore returns a Store that rejects every call.
func NewNullStore() *NullStore { return &NullStore{} }

func (n *NullStore) AddVehicleVisit(ctx context.Context, v *models.VehicleVisit) (int64, error) {
	return 0, common.ErrStorageUnavailable
}

func (n *NullStore) VehicleVisits(ctx context.Context) ([]models.VehicleVisit, error) {
	return nil, common.ErrStorageUnavailable
}

func (n *NullStore) DeleteVehicleVisit(ctx context.Context, id int64) error {
	return common.ErrStorageUnavailable
}

func (n *NullStore) AddPedestrianVisit(ctx context.Context, p *models.PedestrianVisit) (int64, error) {
	return 0, common.ErrStorageUnavailable
}

func (n *NullStore) PedestrianVisits(ctx context.Context) ([]models.PedestrianVisit, error) {
	return nil, common.ErrStorageUnavailable
}

func (n *NullStore) DeletePedestrianVisit(ctx context.Context, id int64) error {
	return common.ErrStorageUnavailable
}

func (n *NullStore) AddLogNote(ctx context.Context, note *models.LogNote) (int64, error) {
	return 0, common.ErrStorageUnavailable
}

func (n *NullStore) LogNotes(ctx context.Context) ([]models.LogNote, error) {
	return nil, common.ErrStorageUnavailable
}

func (n *NullStore) DeleteLogNote(ctx context.Context, id int64) error {
	return common.ErrStorageUnavailable
}

func (n *NullStore) AddGuard(ctx context.Context, g *models.GuardAccount) (int64, error) {
	return 0, common.ErrStorageUnavailable
}

func (n *NullStore) Guards(ctx context.Context) ([]models.GuardAccount, error) {
	return nil, common.ErrStorageUnavailable
}

func (n *NullStore) GuardByUsername(ctx context.Context, username string) (*models.GuardAccount, error) {
	return nil, common.ErrStorageUnavailable
}

func (n *NullStore) DeleteGuard(ctx context.Context, id int64) error {
	return common.ErrStorageUnavailable
}

func (n *NullStore) AddDirectoryEntry(ctx context.Context, e *models.DirectoryEntry) (int64, error) {
	return 0, common.ErrStorageUnavailable
}

func (n *NullStore) DirectoryEntries(ctx context.Context) ([]models.DirectoryEntry, error) {
	return nil, common.ErrStorageUnavailable
}

func (n *NullStore) DirectoryEntryByDestination(ctx context.Context, destino string) (*models.DirectoryEntry, error) {
	return nil, common.ErrStorageUnavailable
}

func (n *NullStore) ReplaceDirectoryEntry(ctx context.Context, id int64, e *models.DirectoryEntry) error {
	return common.ErrStorageUnavailable
}

func (n *NullStore) DeleteDirectoryEntry(ctx context.Context, id int64) error {
	return common.ErrStorageUnavailable
}

func (n *NullStore) Clear(ctx context.Context, collection string) error {
	return common.ErrStorageUnavailable
}

func (n *NullStore) ClearAll(ctx context.Context) error {
	return common.ErrStorageUnavailable
}

func (n *NullStore) Close() error { return nil }
