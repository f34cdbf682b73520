// Package backup serializes the five store collections to a single JSON
// document and restores them from one.
package backup

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

// Snapshot is the export document: exactly five top-level keys, each an array
// of the corresponding record shape, identity keys included.
type Snapshot struct {
	Vehiculos   []models.VehicleVisit    `json:"vehiculos"`
	Peatones    []models.PedestrianVisit `json:"peatones"`
	Bitacora    []models.LogNote         `json:"bitacora"`
	Guardias    []models.GuardAccount    `json:"guardias"`
	Directorios []models.DirectoryEntry  `json:"directorios"`
}

// Export reads every collection and renders the snapshot document.
func Export(ctx context.Context, st store.Store) ([]byte, error) {
	snap := Snapshot{}

	var err error
	if snap.Vehiculos, err = st.VehicleVisits(ctx); err != nil {
		return nil, fmt.Errorf("export vehiculos: %w", err)
	}
	if snap.Peatones, err = st.PedestrianVisits(ctx); err != nil {
		return nil, fmt.Errorf("export peatones: %w", err)
	}
	if snap.Bitacora, err = st.LogNotes(ctx); err != nil {
		return nil, fmt.Errorf("export bitacora: %w", err)
	}
	if snap.Guardias, err = st.Guards(ctx); err != nil {
		return nil, fmt.Errorf("export guardias: %w", err)
	}
	if snap.Directorios, err = st.DirectoryEntries(ctx); err != nil {
		return nil, fmt.Errorf("export directorios: %w", err)
	}

	// empty collections serialize as [], not null
	if snap.Vehiculos == nil {
		snap.Vehiculos = []models.VehicleVisit{}
	}
	if snap.Peatones == nil {
		snap.Peatones = []models.PedestrianVisit{}
	}
	if snap.Bitacora == nil {
		snap.Bitacora = []models.LogNote{}
	}
	if snap.Guardias == nil {
		snap.Guardias = []models.GuardAccount{}
	}
	if snap.Directorios == nil {
		snap.Directorios = []models.DirectoryEntry{}
	}

	return json.MarshalIndent(snap, "", "  ")
}

// Import restores a snapshot. Identity keys in the document are discarded;
// the store assigns fresh ones. All five collections are cleared atomically
// before any insertion begins, then records are inserted one at a time,
// collection by collection. A partial failure leaves a recognizable
// partially-imported state, never a mix of old and new data.
func Import(ctx context.Context, st store.Store, data []byte) error {
	snap, err := parseSnapshot(data)
	if err != nil {
		return err
	}

	if err := st.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear collections: %w", err)
	}

	for i := range snap.Vehiculos {
		v := snap.Vehiculos[i]
		v.ID = 0
		if _, err := st.AddVehicleVisit(ctx, &v); err != nil {
			return fmt.Errorf("import vehiculo %d: %w", i, err)
		}
	}
	for i := range snap.Peatones {
		p := snap.Peatones[i]
		p.ID = 0
		if _, err := st.AddPedestrianVisit(ctx, &p); err != nil {
			return fmt.Errorf("import peaton %d: %w", i, err)
		}
	}
	for i := range snap.Bitacora {
		n := snap.Bitacora[i]
		n.ID = 0
		if _, err := st.AddLogNote(ctx, &n); err != nil {
			return fmt.Errorf("import nota %d: %w", i, err)
		}
	}
	for i := range snap.Guardias {
		g := snap.Guardias[i]
		g.ID = 0
		if _, err := st.AddGuard(ctx, &g); err != nil {
			return fmt.Errorf("import guardia %d: %w", i, err)
		}
	}
	for i := range snap.Directorios {
		e := snap.Directorios[i]
		e.ID = 0
		if _, err := st.AddDirectoryEntry(ctx, &e); err != nil {
			return fmt.Errorf("import directorio %d: %w", i, err)
		}
	}
	return nil
}

// parseSnapshot validates the document shape before anything is touched:
// it must be a JSON object carrying all five collection arrays.
func parseSnapshot(data []byte) (*Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: not a JSON object: %v", common.ErrImportDataInvalid, err)
	}
	for _, key := range common.Collections {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", common.ErrImportDataInvalid, key)
		}
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrImportDataInvalid, err)
	}
	return snap, nil
}
