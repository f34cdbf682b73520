package codes

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

func openStore(t *testing.T) store.Store {
	t.Helper()
	st := store.Open(context.Background(), filepath.Join(t.TempDir(), "caseta.db"), store.Options{})
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func seedCodes(t *testing.T, st store.Store, codes []string) {
	t.Helper()
	for _, c := range codes {
		_, err := st.AddPedestrianVisit(context.Background(), &models.PedestrianVisit{
			Nombre: "Visitante", Destino: "Casa 1",
			Fecha: "2026-08-30", Hora: "08:00:00", Codigo: c,
		})
		require.NoError(t, err)
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  string
	}{
		{"empty store", nil, "01"},
		{"skips malformed codes", []string{"01", "02", "07", "bad"}, "08"},
		{"only malformed codes", []string{"bad", "x9", ""}, "01"},
		{"crosses two digits", []string{"98", "99"}, "100"},
		{"three digit max not truncated", []string{"123"}, "124"},
		{"duplicate codes tolerated", []string{"03", "03"}, "04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := openStore(t)
			seedCodes(t, st, tt.codes)

			got, err := Next(context.Background(), st)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
