// Package suggest answers autocomplete queries over prior visits: prefix
// filter, most-recent-first ordering, case-insensitive dedup by key, capped
// at five results. Both query paths present the legacy "frecuente"
// classification as "pase directo"; the stored value is never rewritten.
package suggest

import (
	"context"
	"sort"
	"strings"

	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

// MaxResults bounds every suggestion query.
const MaxResults = 5

// VehicleSuggestion prefills the vehicle entry form from the most recent
// visit with a matching plate. Photo fields are empty strings when absent,
// never null, to keep downstream serialization uniform.
type VehicleSuggestion struct {
	Placa         string                `json:"placa"`
	Nombre        string                `json:"nombre"`
	Motivo        string                `json:"motivo"`
	Modelo        string                `json:"modelo"`
	Color         string                `json:"color"`
	Destino       string                `json:"destino"`
	Clasificacion models.Classification `json:"clasificacion"`
	MotivoBloqueo string                `json:"motivoBloqueo"`
	Foto1         string                `json:"foto1"`
	Foto2         string                `json:"foto2"`
	Foto3         string                `json:"foto3"`
}

// PedestrianSuggestion prefills the pedestrian entry form.
type PedestrianSuggestion struct {
	Nombre        string                `json:"nombre"`
	Motivo        string                `json:"motivo"`
	Destino       string                `json:"destino"`
	IDExterno     string                `json:"idExterno"`
	Codigo        string                `json:"codigo"`
	Clasificacion models.Classification `json:"clasificacion"`
	MotivoBloqueo string                `json:"motivoBloqueo"`
	Foto1         string                `json:"foto1"`
	Foto2         string                `json:"foto2"`
}

// Engine runs suggestion queries against the store. It holds no state of its
// own; every query re-reads the store so results always reflect the latest
// writes.
type Engine struct {
	store store.Store
}

// NewEngine returns an Engine bound to the given store.
func NewEngine(st store.Store) *Engine {
	return &Engine{store: st}
}

// VehiclePlates returns up to MaxResults suggestions whose plate starts with
// prefix (case-insensitive), most recent first, one per normalized plate.
func (e *Engine) VehiclePlates(ctx context.Context, prefix string) ([]VehicleSuggestion, error) {
	visits, err := e.store.VehicleVisits(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(prefix)
	var matches []models.VehicleVisit
	for _, v := range visits {
		if strings.HasPrefix(strings.ToLower(v.Placa), needle) {
			matches = append(matches, v)
		}
	}

	sortByRecency(matches, func(v models.VehicleVisit) int64 { return v.ID })

	seen := make(map[string]struct{}, len(matches))
	result := make([]VehicleSuggestion, 0, MaxResults)
	for _, v := range matches {
		key := strings.ToLower(v.Placa)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, VehicleSuggestion{
			Placa:         v.Placa,
			Nombre:        v.Nombre,
			Motivo:        v.Motivo,
			Modelo:        v.Modelo,
			Color:         v.Color,
			Destino:       v.Destino,
			Clasificacion: v.Clasificacion.Normalized(),
			MotivoBloqueo: v.MotivoBloqueo,
			Foto1:         v.Foto1,
			Foto2:         v.Foto2,
			Foto3:         v.Foto3,
		})
		if len(result) == MaxResults {
			break
		}
	}
	return result, nil
}

// Pedestrians returns up to MaxResults suggestions whose name or visitor code
// starts with prefix (case-insensitive; codes compared as strings so leading
// zeros survive), most recent first, one per normalized name.
func (e *Engine) Pedestrians(ctx context.Context, prefix string) ([]PedestrianSuggestion, error) {
	visits, err := e.store.PedestrianVisits(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(prefix)
	var matches []models.PedestrianVisit
	for _, p := range visits {
		if strings.HasPrefix(strings.ToLower(p.Nombre), needle) ||
			strings.HasPrefix(strings.ToLower(p.Codigo), needle) {
			matches = append(matches, p)
		}
	}

	sortByRecency(matches, func(p models.PedestrianVisit) int64 { return p.ID })

	seen := make(map[string]struct{}, len(matches))
	result := make([]PedestrianSuggestion, 0, MaxResults)
	for _, p := range matches {
		key := strings.ToLower(p.Nombre)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, PedestrianSuggestion{
			Nombre:        p.Nombre,
			Motivo:        p.Motivo,
			Destino:       p.Destino,
			IDExterno:     p.IDExterno,
			Codigo:        p.Codigo,
			Clasificacion: p.Clasificacion.Normalized(),
			MotivoBloqueo: p.MotivoBloqueo,
			Foto1:         p.Foto1,
			Foto2:         p.Foto2,
		})
		if len(result) == MaxResults {
			break
		}
	}
	return result, nil
}

// sortByRecency orders records by descending identity key. The stable sort
// keeps insertion order for equal keys, which only matters if keys were ever
// supplied externally.
func sortByRecency[T any](items []T, id func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return id(items[i]) > id(items[j])
	})
}
