package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

// DirectoryService is the upsert resolver for the resident directory: at most
// one entry per normalized destination, identity preserved across updates.
type DirectoryService interface {
	// Upsert replaces the entry matching the normalized destination, or
	// inserts a new one. It returns the surviving entry's identity key.
	Upsert(ctx context.Context, destino string, residentes, telefonos []string, indicaciones string) (int64, error)

	// List returns every entry.
	List(ctx context.Context) ([]models.DirectoryEntry, error)

	// Lookup finds the entry for a destination, matching case-insensitively
	// after trimming.
	Lookup(ctx context.Context, destino string) (*models.DirectoryEntry, error)

	// Delete removes an entry by id. Missing ids are a no-op.
	Delete(ctx context.Context, id int64) error
}

type directoryService struct {
	store store.Store
}

// NewDirectoryService returns a DirectoryService over the given store.
func NewDirectoryService(st store.Store) DirectoryService {
	return &directoryService{store: st}
}

// Upsert assumes a single writer (one checkpoint terminal); the lookup and
// the following write are not isolated from other writers.
func (s *directoryService) Upsert(ctx context.Context, destino string, residentes, telefonos []string, indicaciones string) (int64, error) {
	if strings.TrimSpace(destino) == "" {
		return 0, fmt.Errorf("%w: destino is required", common.ErrValidation)
	}
	if len(telefonos) > models.MaxDirectoryPhones {
		telefonos = telefonos[:models.MaxDirectoryPhones]
	}

	entry := &models.DirectoryEntry{
		Destino:      destino,
		Residentes:   residentes,
		Telefonos:    telefonos,
		Indicaciones: indicaciones,
	}

	existing, err := s.store.DirectoryEntryByDestination(ctx, destino)
	switch {
	case err == nil:
		if err := s.store.ReplaceDirectoryEntry(ctx, existing.ID, entry); err != nil {
			return 0, fmt.Errorf("update directory entry: %w", err)
		}
		return existing.ID, nil
	case errors.Is(err, common.ErrNotFound):
		id, err := s.store.AddDirectoryEntry(ctx, entry)
		if err != nil {
			return 0, fmt.Errorf("insert directory entry: %w", err)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("lookup directory entry: %w", err)
	}
}

func (s *directoryService) List(ctx context.Context) ([]models.DirectoryEntry, error) {
	return s.store.DirectoryEntries(ctx)
}

func (s *directoryService) Lookup(ctx context.Context, destino string) (*models.DirectoryEntry, error) {
	return s.store.DirectoryEntryByDestination(ctx, destino)
}

func (s *directoryService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteDirectoryEntry(ctx, id)
}
