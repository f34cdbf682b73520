package guards

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE guardias (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  nombre TEXT NOT NULL,
  usuario TEXT NOT NULL,
  contrasena TEXT NOT NULL,
  rol TEXT NOT NULL DEFAULT 'Guardia'
);
`)
	require.NoError(t, err)

	return db
}

func TestInsertAndGetByUsername(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id, err := r.Insert(ctx, &models.GuardAccount{
		Nombre:     "Carlos Ruiz",
		Usuario:    "cruiz",
		Contrasena: "$2a$10$hash",
		Rol:        models.RoleAdmin,
	})
	require.NoError(t, err)

	g, err := r.GetByUsername(ctx, "cruiz")
	require.NoError(t, err)
	assert.Equal(t, id, g.ID)
	assert.Equal(t, "Carlos Ruiz", g.Nombre)
	assert.Equal(t, models.RoleAdmin, g.Rol)
}

func TestGetByUsername_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByUsername(context.Background(), "nadie")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetAllAndDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	id1, err := r.Insert(ctx, &models.GuardAccount{Nombre: "A", Usuario: "a", Contrasena: "x", Rol: models.RoleGuard})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &models.GuardAccount{Nombre: "B", Usuario: "b", Contrasena: "y", Rol: models.RoleGuard})
	require.NoError(t, err)

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NoError(t, r.DeleteByID(ctx, id1))
	require.NoError(t, r.DeleteByID(ctx, 999)) // no-op

	got, err = r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Usuario)
}
