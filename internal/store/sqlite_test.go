package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"
)

type published struct {
	collection string
	record     any
}

type captureSink struct {
	ch   chan published
	fail bool
}

func newCaptureSink() *captureSink {
	return &captureSink{ch: make(chan published, 16)}
}

func (c *captureSink) Publish(ctx context.Context, collection string, record any) error {
	c.ch <- published{collection: collection, record: record}
	if c.fail {
		return common.ErrReplicationFailed
	}
	return nil
}

func (c *captureSink) wait(t *testing.T) published {
	t.Helper()
	select {
	case p := <-c.ch:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for publish")
		return published{}
	}
}

func openTestStore(t *testing.T, opts Options) Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "caseta.db")
	st := Open(context.Background(), path, opts)
	t.Cleanup(func() { _ = st.Close() })
	require.IsType(t, &SQLStore{}, st)
	return st
}

func vehicleFixture(placa string) *models.VehicleVisit {
	return &models.VehicleVisit{
		Placa: placa, Nombre: "Juan Perez", Destino: "Casa 5",
		Fecha: "2026-08-30", Hora: "10:00:00", Accion: models.ActionEntry,
	}
}

func TestOpen_CreatesSchemaAndAssignsFreshIDs(t *testing.T) {
	st := openTestStore(t, Options{})
	ctx := context.Background()

	seen := map[int64]bool{}
	plates := []string{"AAA-111", "BBB-222", "CCC-333"}
	for _, p := range plates {
		id, err := st.AddVehicleVisit(ctx, vehicleFixture(p))
		require.NoError(t, err)
		require.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}

	got, err := st.VehicleVisits(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(plates))
	gotPlates := map[string]bool{}
	for _, v := range got {
		gotPlates[v.Placa] = true
		assert.True(t, seen[v.ID])
	}
	for _, p := range plates {
		assert.True(t, gotPlates[p])
	}
}

func TestAddVehicleVisit_ValidatesInvariants(t *testing.T) {
	st := openTestStore(t, Options{})

	_, err := st.AddVehicleVisit(context.Background(), &models.VehicleVisit{
		Nombre: "Juan", Destino: "Casa 5", Fecha: "2026-08-30", Hora: "10:00:00",
	})
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestDeleteMissingID_NoErrorAcrossCollections(t *testing.T) {
	st := openTestStore(t, Options{})
	ctx := context.Background()

	require.NoError(t, st.DeleteVehicleVisit(ctx, 12345))
	require.NoError(t, st.DeletePedestrianVisit(ctx, 12345))
	require.NoError(t, st.DeleteLogNote(ctx, 12345))
	require.NoError(t, st.DeleteGuard(ctx, 12345))
	require.NoError(t, st.DeleteDirectoryEntry(ctx, 12345))
}

func TestReplication_FiresOnVehiclePedestrianDirectory(t *testing.T) {
	sink := newCaptureSink()
	st := openTestStore(t, Options{Sink: sink})
	ctx := context.Background()

	id, err := st.AddVehicleVisit(ctx, vehicleFixture("ABC-123"))
	require.NoError(t, err)
	p := sink.wait(t)
	assert.Equal(t, common.CollectionVehicles, p.collection)
	v, ok := p.record.(models.VehicleVisit)
	require.True(t, ok)
	assert.Equal(t, id, v.ID) // record carries its assigned id

	_, err = st.AddPedestrianVisit(ctx, &models.PedestrianVisit{
		Nombre: "Maria", Destino: "Casa 1", Fecha: "2026-08-30", Hora: "09:00:00", Codigo: "01",
	})
	require.NoError(t, err)
	assert.Equal(t, common.CollectionPedestrians, sink.wait(t).collection)

	dirID, err := st.AddDirectoryEntry(ctx, &models.DirectoryEntry{Destino: "Casa 1"})
	require.NoError(t, err)
	assert.Equal(t, common.CollectionDirectory, sink.wait(t).collection)

	err = st.ReplaceDirectoryEntry(ctx, dirID, &models.DirectoryEntry{Destino: "Casa 1", Residentes: []string{"Lopez"}})
	require.NoError(t, err)
	assert.Equal(t, common.CollectionDirectory, sink.wait(t).collection)
}

func TestReplication_NotFiredForLogbookAndGuards(t *testing.T) {
	sink := newCaptureSink()
	st := openTestStore(t, Options{Sink: sink})
	ctx := context.Background()

	_, err := st.AddLogNote(ctx, &models.LogNote{Nota: "sin novedad", Fecha: "2026-08-30", Hora: "22:00:00", Turno: models.ShiftNight})
	require.NoError(t, err)
	_, err = st.AddGuard(ctx, &models.GuardAccount{Nombre: "A", Usuario: "a", Contrasena: "x", Rol: models.RoleGuard})
	require.NoError(t, err)

	select {
	case p := <-sink.ch:
		t.Fatalf("unexpected publish to %s", p.collection)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestReplicationFailure_DoesNotFailLocalWrite(t *testing.T) {
	sink := newCaptureSink()
	sink.fail = true
	st := openTestStore(t, Options{Sink: sink})

	id, err := st.AddVehicleVisit(context.Background(), vehicleFixture("ABC-123"))
	require.NoError(t, err)
	assert.Positive(t, id)
	sink.wait(t)
}

func TestClear_ByCollectionName(t *testing.T) {
	st := openTestStore(t, Options{})
	ctx := context.Background()

	_, err := st.AddVehicleVisit(ctx, vehicleFixture("ABC-123"))
	require.NoError(t, err)

	require.NoError(t, st.Clear(ctx, common.CollectionVehicles))
	got, err := st.VehicleVisits(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	err = st.Clear(ctx, "desconocido")
	require.ErrorIs(t, err, common.ErrWriteFailed)
}

func TestClearAll_EmptiesEveryCollection(t *testing.T) {
	st := openTestStore(t, Options{})
	ctx := context.Background()

	_, err := st.AddVehicleVisit(ctx, vehicleFixture("ABC-123"))
	require.NoError(t, err)
	_, err = st.AddLogNote(ctx, &models.LogNote{Nota: "sin novedad", Fecha: "2026-08-30", Hora: "22:00:00", Turno: models.ShiftNight})
	require.NoError(t, err)
	_, err = st.AddDirectoryEntry(ctx, &models.DirectoryEntry{Destino: "Casa 5"})
	require.NoError(t, err)

	require.NoError(t, st.ClearAll(ctx))

	vehicles, err := st.VehicleVisits(ctx)
	require.NoError(t, err)
	assert.Empty(t, vehicles)
	notes, err := st.LogNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
	entries, err := st.DirectoryEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpen_RecoversFromCorruptDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caseta.db")
	require.NoError(t, os.WriteFile(path, []byte("this is not a database"), 0o600))

	st := Open(context.Background(), path, Options{})
	t.Cleanup(func() { _ = st.Close() })
	require.IsType(t, &SQLStore{}, st)

	_, err := st.AddVehicleVisit(context.Background(), vehicleFixture("ABC-123"))
	require.NoError(t, err)
}

func TestOpen_IdempotentOnExistingStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caseta.db")
	ctx := context.Background()

	st := Open(ctx, path, Options{})
	_, err := st.AddVehicleVisit(ctx, vehicleFixture("ABC-123"))
	require.NoError(t, err)
	require.NoError(t, st.Close())

	// reopening at the same schema version keeps existing data
	st2 := Open(ctx, path, Options{})
	t.Cleanup(func() { _ = st2.Close() })
	got, err := st2.VehicleVisits(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ABC-123", got[0].Placa)
}

func TestNullStore_RejectsEverything(t *testing.T) {
	st := NewNullStore()
	ctx := context.Background()

	_, err := st.AddVehicleVisit(ctx, vehicleFixture("ABC-123"))
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
	_, err = st.VehicleVisits(ctx)
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
	_, err = st.Guards(ctx)
	require.ErrorIs(t, err, common.ErrStorageUnavailable)
	require.ErrorIs(t, st.Clear(ctx, common.CollectionLogbook), common.ErrStorageUnavailable)
	require.NoError(t, st.Close())
}
