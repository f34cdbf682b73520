package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

func openStore(t *testing.T) store.Store {
	t.Helper()
	st := store.Open(context.Background(), filepath.Join(t.TempDir(), "caseta.db"), store.Options{})
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestLogin(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	gs := NewGuardService(st)
	_, err := gs.Create(ctx, "Carlos Ruiz", "cruiz", "secreto123", models.RoleAdmin)
	require.NoError(t, err)

	as := NewAuthService(st)

	g, err := as.Login(ctx, "cruiz", "secreto123")
	require.NoError(t, err)
	assert.Equal(t, "Carlos Ruiz", g.Nombre)
	assert.Equal(t, models.RoleAdmin, g.Rol)

	_, err = as.Login(ctx, "cruiz", "equivocada")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = as.Login(ctx, "nadie", "secreto123")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = as.Login(ctx, "  ", "")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestGuardCreate_HashesPassword(t *testing.T) {
	st := openStore(t)
	ctx := context.Background()

	gs := NewGuardService(st)
	id, err := gs.Create(ctx, "Ana", "ana", "clave", models.RoleGuard)
	require.NoError(t, err)
	assert.Positive(t, id)

	accounts, err := gs.List(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.NotEqual(t, "clave", accounts[0].Contrasena)
	assert.NotEmpty(t, accounts[0].Contrasena)
}

func TestGuardCreate_Validation(t *testing.T) {
	st := openStore(t)
	gs := NewGuardService(st)
	ctx := context.Background()

	_, err := gs.Create(ctx, "Ana", "", "clave", models.RoleGuard)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = gs.Create(ctx, "Ana", "ana", "", models.RoleGuard)
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = gs.Create(ctx, "Ana", "ana", "clave", models.Role("Gerente"))
	require.ErrorIs(t, err, common.ErrValidation)
}
