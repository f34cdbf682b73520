package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vigilia/caseta/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// Login prompts for credentials and authenticates against the guard
// accounts. Invalid credentials are reported without revealing whether the
// account exists. On success the signed-in account gates further commands.
func (a *App) Login(ctx context.Context) error {
	usuario, err := getSimpleText(a.reader, "Usuario", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.auth.Login(ctx, usuario, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Usuario o contrasena incorrectos")
			return nil
		}
		a.logger.Error(ctx, "login failed", "error", err)
		return err
	}

	a.current = account
	printlnFn(fmt.Sprintf("Bienvenido, %s (%s)", account.Nombre, account.Rol))
	return nil
}

// Logout drops the signed-in account.
func (a *App) Logout(ctx context.Context) error {
	a.current = nil
	printlnFn("Sesion cerrada")
	return nil
}
