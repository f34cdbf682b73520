package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vigilia/caseta/internal/codes"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

// now is a seam for tests.
var now = time.Now

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// VisitService registers checkpoint visits.
type VisitService interface {
	// RegisterVehicle stamps date/time when absent and persists the visit.
	RegisterVehicle(ctx context.Context, v *models.VehicleVisit) (int64, error)

	// RegisterPedestrian additionally assigns the next visitor code when the
	// visit carries none (a first-time visitor).
	RegisterPedestrian(ctx context.Context, p *models.PedestrianVisit) (int64, error)

	// VehicleHistory and PedestrianHistory return all stored visits with the
	// legacy classification normalized for presentation. The stored records
	// keep whatever value they were written with.
	VehicleHistory(ctx context.Context) ([]models.VehicleVisit, error)
	PedestrianHistory(ctx context.Context) ([]models.PedestrianVisit, error)
}

type visitService struct {
	store store.Store
}

// NewVisitService returns a VisitService over the given store.
func NewVisitService(st store.Store) VisitService {
	return &visitService{store: st}
}

func (s *visitService) RegisterVehicle(ctx context.Context, v *models.VehicleVisit) (int64, error) {
	stampVisit(&v.Fecha, &v.Hora)
	id, err := s.store.AddVehicleVisit(ctx, v)
	if err != nil {
		return 0, fmt.Errorf("register vehicle visit: %w", err)
	}
	return id, nil
}

func (s *visitService) RegisterPedestrian(ctx context.Context, p *models.PedestrianVisit) (int64, error) {
	stampVisit(&p.Fecha, &p.Hora)
	if p.Codigo == "" {
		code, err := codes.Next(ctx, s.store)
		if err != nil {
			return 0, fmt.Errorf("allocate visitor code: %w", err)
		}
		p.Codigo = code
	}
	id, err := s.store.AddPedestrianVisit(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("register pedestrian visit: %w", err)
	}
	return id, nil
}

func (s *visitService) VehicleHistory(ctx context.Context) ([]models.VehicleVisit, error) {
	visits, err := s.store.VehicleVisits(ctx)
	if err != nil {
		return nil, err
	}
	for i := range visits {
		visits[i].Clasificacion = visits[i].Clasificacion.Normalized()
	}
	return visits, nil
}

func (s *visitService) PedestrianHistory(ctx context.Context) ([]models.PedestrianVisit, error) {
	visits, err := s.store.PedestrianVisits(ctx)
	if err != nil {
		return nil, err
	}
	for i := range visits {
		visits[i].Clasificacion = visits[i].Clasificacion.Normalized()
	}
	return visits, nil
}

func stampVisit(fecha, hora *string) {
	t := now()
	if *fecha == "" {
		*fecha = t.Format(dateLayout)
	}
	if *hora == "" {
		*hora = t.Format(timeLayout)
	}
}
