package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

// GuardService administers guard accounts (admin-only surface).
type GuardService interface {
	// Create registers an account. The password is bcrypt-hashed before it
	// reaches the store.
	Create(ctx context.Context, nombre, usuario, password string, rol models.Role) (int64, error)

	// List returns every account.
	List(ctx context.Context) ([]models.GuardAccount, error)

	// Delete removes an account by id. Missing ids are a no-op.
	Delete(ctx context.Context, id int64) error
}

type guardService struct {
	store store.Store
}

// NewGuardService returns a GuardService over the given store.
func NewGuardService(st store.Store) GuardService {
	return &guardService{store: st}
}

func (s *guardService) Create(ctx context.Context, nombre, usuario, password string, rol models.Role) (int64, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" {
		return 0, fmt.Errorf("%w: usuario is required", common.ErrValidation)
	}
	if password == "" {
		return 0, fmt.Errorf("%w: contrasena is required", common.ErrValidation)
	}
	if rol != models.RoleGuard && rol != models.RoleAdmin {
		return 0, fmt.Errorf("%w: unknown role %q", common.ErrValidation, rol)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.store.AddGuard(ctx, &models.GuardAccount{
		Nombre:     nombre,
		Usuario:    usuario,
		Contrasena: string(hash),
		Rol:        rol,
	})
}

func (s *guardService) List(ctx context.Context) ([]models.GuardAccount, error) {
	return s.store.Guards(ctx)
}

func (s *guardService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteGuard(ctx, id)
}
