package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilia/caseta/internal/config"
	"github.com/vigilia/caseta/internal/logging"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	st := store.Open(context.Background(), filepath.Join(t.TempDir(), "caseta.db"), store.Options{})
	t.Cleanup(func() { _ = st.Close() })
	return NewApp(cfg, logging.NewNopLogger(), st)
}

// stubLineInputs replaces getSimpleText with a queue of canned answers and
// getPassword with a fixed password.
func stubLineInputs(t *testing.T, password string, lines ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", nil
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(password), nil }
}

// capturePrintln collects user-facing output.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	var out []string
	printlnFn = func(args ...any) (int, error) {
		out = append(out, fmt.Sprintln(args...))
		return 0, nil
	}
	return &out
}

func joined(out *[]string) string {
	return strings.Join(*out, "")
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	_, err := app.guards.Create(ctx, "Carlos Ruiz", "cruiz", "secreto123", models.RoleAdmin)
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		out := capturePrintln(t)
		stubLineInputs(t, "incorrecta", "cruiz")

		require.NoError(t, app.Login(ctx))
		assert.False(t, app.isLoggedIn())
		assert.Contains(t, joined(out), "incorrectos")
	})

	t.Run("success", func(t *testing.T) {
		out := capturePrintln(t)
		stubLineInputs(t, "secreto123", "cruiz")

		require.NoError(t, app.Login(ctx))
		require.True(t, app.isLoggedIn())
		assert.True(t, app.isAdmin())
		assert.Contains(t, joined(out), "Carlos Ruiz")
	})

	t.Run("logout", func(t *testing.T) {
		require.NoError(t, app.Logout(ctx))
		assert.False(t, app.isLoggedIn())
	})
}

func TestRegisterVehicle_NewVisitor(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	out := capturePrintln(t)

	// placa, nombre, motivo, modelo, color, destino, accion
	stubLineInputs(t, "",
		"XYZ-987", "Pedro Gomez", "visita", "sedan", "rojo", "Casa 12", "entrada")

	require.NoError(t, app.registerVehicle(ctx))
	assert.Contains(t, joined(out), "Registro guardado")

	visits, err := app.visits.VehicleHistory(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, "XYZ-987", visits[0].Placa)
	assert.Equal(t, "Casa 12", visits[0].Destino)
	assert.Equal(t, models.ActionEntry, visits[0].Accion)
	assert.NotEmpty(t, visits[0].Fecha)
}

func TestRegisterVehicle_PrefillFromSuggestion(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	out := capturePrintln(t)

	_, err := app.visits.RegisterVehicle(ctx, &models.VehicleVisit{
		Placa: "ABC-123", Nombre: "Ana Torres", Motivo: "proveedor",
		Modelo: "pickup", Color: "blanco", Destino: "Casa 3",
		Accion: models.ActionEntry,
	})
	require.NoError(t, err)

	// placa prefix, pick suggestion 1, accept every default, accion default
	stubLineInputs(t, "",
		"ABC", "1", "", "", "", "", "", "")

	require.NoError(t, app.registerVehicle(ctx))
	assert.Contains(t, joined(out), "Registro guardado")

	visits, err := app.visits.VehicleHistory(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "ABC-123", visits[1].Placa)
	assert.Equal(t, "Ana Torres", visits[1].Nombre)
	assert.Equal(t, "Casa 3", visits[1].Destino)
}

func TestRegisterPedestrian_KeepsVisitorCode(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	out := capturePrintln(t)

	_, err := app.visits.RegisterPedestrian(ctx, &models.PedestrianVisit{
		Nombre: "Luis Mora", Destino: "Casa 8", Accion: models.ActionEntry,
	})
	require.NoError(t, err)

	// query, pick 1, nombre/motivo/destino/identificacion defaults, accion
	stubLineInputs(t, "",
		"Luis", "1", "", "", "", "", "")

	require.NoError(t, app.registerPedestrian(ctx))
	assert.Contains(t, joined(out), "Registro guardado")

	visits, err := app.visits.PedestrianHistory(ctx)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "01", visits[0].Codigo)
	assert.Equal(t, visits[0].Codigo, visits[1].Codigo, "returning visitor keeps the assigned code")
}

func TestAskAction_BlockedDefaultsToDenied(t *testing.T) {
	app := newTestApp(t)

	stubLineInputs(t, "", "")

	action, err := app.askAction(models.ClassificationBlocked)
	require.NoError(t, err)
	assert.Equal(t, models.ActionDenied, action)
}

func TestUpsertDirectory_TruncatesPhones(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	out := capturePrintln(t)

	stubLineInputs(t, "",
		"Casa 5", "Gomez, Diaz", "555-1, 555-2, 555-3, 555-4", "porton azul")

	require.NoError(t, app.upsertDirectory(ctx))
	assert.Contains(t, joined(out), "Directorio actualizado")

	entry, err := app.directory.Lookup(ctx, "casa 5")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gomez", "Diaz"}, entry.Residentes)
	assert.Len(t, entry.Telefonos, models.MaxDirectoryPhones)
}

func TestImportData_RequiresConfirmation(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	out := capturePrintln(t)

	_, err := app.logbook.Add(ctx, "nota previa", models.ShiftMorning)
	require.NoError(t, err)

	// declined confirmation leaves data untouched
	stubLineInputs(t, "", "n")
	require.NoError(t, app.importData(ctx, []string{"whatever.json"}))
	assert.Contains(t, joined(out), "cancelada")

	notes, err := app.logbook.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestExportData_WritesFile(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	out := capturePrintln(t)

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, app.exportData(ctx, []string{path}))
	assert.Contains(t, joined(out), "Exportado")
	assert.FileExists(t, path)
}
