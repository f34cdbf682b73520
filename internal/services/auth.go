// Package services holds the application logic between the CLI and the
// store: login, visit registration, the directory upsert resolver, the shift
// log and guard account administration.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/store"
)

// AuthService authenticates guard accounts.
type AuthService interface {
	// Login verifies the credentials and returns the matching account.
	// Unknown usernames and wrong passwords both map to
	// common.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*models.GuardAccount, error)
}

type authService struct {
	store store.Store
}

// NewAuthService returns an AuthService over the given store.
func NewAuthService(st store.Store) AuthService {
	return &authService{store: st}
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.GuardAccount, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, common.ErrInvalidCredentials
	}

	g, err := s.store.GuardByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(g.Contrasena), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}
	return g, nil
}
