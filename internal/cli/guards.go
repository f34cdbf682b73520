package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vigilia/caseta/internal/models"
)

// addGuard creates a guard account. Only administrators reach this command;
// the gate lives in the command loop.
func (a *App) addGuard(ctx context.Context) error {
	nombre, err := getSimpleText(a.reader, "Nombre", os.Stdout)
	if err != nil {
		return err
	}
	usuario, err := getSimpleText(a.reader, "Usuario", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	rol, err := GetTextDefault(a.reader, "Rol (Guardia/Administrador)", string(models.RoleGuard), os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.guards.Create(ctx, nombre, usuario, string(password), models.Role(rol))
	if err != nil {
		a.logger.Error(ctx, "guard creation failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Cuenta creada (#%d)", id))
	return nil
}

// listGuards shows the accounts without their password hashes.
func (a *App) listGuards(ctx context.Context) error {
	guards, err := a.guards.List(ctx)
	if err != nil {
		a.logger.Error(ctx, "guard list failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Nombre", "Usuario", "Rol"})
	for _, g := range guards {
		t.AppendRow(table.Row{g.ID, g.Nombre, g.Usuario, g.Rol})
	}
	t.Render()
	return nil
}

// deleteGuard removes an account by identity.
func (a *App) deleteGuard(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Uso: guardia-borrar <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Uso: guardia-borrar <id>")
		return nil
	}
	if err := a.guards.Delete(ctx, id); err != nil {
		a.logger.Error(ctx, "guard delete failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn("Cuenta eliminada")
	return nil
}
