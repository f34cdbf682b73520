package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

// LogbookService manages the shift log ("bitácora").
type LogbookService interface {
	// Add stamps date/time and persists the note.
	Add(ctx context.Context, nota string, turno models.Shift) (int64, error)

	// List returns every note.
	List(ctx context.Context) ([]models.LogNote, error)

	// Delete removes a note by id. Missing ids are a no-op.
	Delete(ctx context.Context, id int64) error
}

type logbookService struct {
	store store.Store
}

// NewLogbookService returns a LogbookService over the given store.
func NewLogbookService(st store.Store) LogbookService {
	return &logbookService{store: st}
}

func (s *logbookService) Add(ctx context.Context, nota string, turno models.Shift) (int64, error) {
	if strings.TrimSpace(nota) == "" {
		return 0, fmt.Errorf("%w: nota is required", common.ErrValidation)
	}

	t := now()
	return s.store.AddLogNote(ctx, &models.LogNote{
		Nota:  nota,
		Fecha: t.Format(dateLayout),
		Hora:  t.Format(timeLayout),
		Turno: turno,
	})
}

func (s *logbookService) List(ctx context.Context) ([]models.LogNote, error) {
	return s.store.LogNotes(ctx)
}

func (s *logbookService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteLogNote(ctx, id)
}
