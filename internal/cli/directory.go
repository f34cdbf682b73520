package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vigilia/caseta/internal/common"
)

// upsertDirectory creates or replaces the directory entry for a destination.
// Matching is by normalized destination, so "Casa 5" and " casa 5 " address
// the same entry.
func (a *App) upsertDirectory(ctx context.Context) error {
	destino, err := getSimpleText(a.reader, "Destino", os.Stdout)
	if err != nil {
		return err
	}

	existing, err := a.directory.Lookup(ctx, destino)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		a.logger.Error(ctx, "directory lookup failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	var residentesDef, telefonosDef, indicacionesDef string
	if existing != nil {
		residentesDef = strings.Join(existing.Residentes, ", ")
		telefonosDef = strings.Join(existing.Telefonos, ", ")
		indicacionesDef = existing.Indicaciones
	}

	residentes, err := GetTextDefault(a.reader, "Residentes (separados por coma)", residentesDef, os.Stdout)
	if err != nil {
		return err
	}
	telefonos, err := GetTextDefault(a.reader, "Telefonos (separados por coma, maximo 3)", telefonosDef, os.Stdout)
	if err != nil {
		return err
	}
	indicaciones, err := GetTextDefault(a.reader, "Indicaciones", indicacionesDef, os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.directory.Upsert(ctx, destino, splitList(residentes), splitList(telefonos), indicaciones)
	if err != nil {
		a.logger.Error(ctx, "directory upsert failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Directorio actualizado (#%d)", id))
	return nil
}

// listDirectory shows all directory entries.
func (a *App) listDirectory(ctx context.Context) error {
	entries, err := a.directory.List(ctx)
	if err != nil {
		a.logger.Error(ctx, "directory list failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Destino", "Residentes", "Telefonos", "Indicaciones"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.ID, e.Destino,
			strings.Join(e.Residentes, ", "),
			strings.Join(e.Telefonos, ", "),
			e.Indicaciones,
		})
	}
	t.Render()
	return nil
}

// lookupDirectory prints the entry for one destination.
func (a *App) lookupDirectory(ctx context.Context, args []string) error {
	destino := strings.Join(args, " ")
	if destino == "" {
		var err error
		if destino, err = getSimpleText(a.reader, "Destino", os.Stdout); err != nil {
			return err
		}
	}

	entry, err := a.directory.Lookup(ctx, destino)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("Sin registro para", destino)
			return nil
		}
		a.logger.Error(ctx, "directory lookup failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	printlnFn("Destino:", entry.Destino)
	printlnFn("Residentes:", strings.Join(entry.Residentes, ", "))
	printlnFn("Telefonos:", strings.Join(entry.Telefonos, ", "))
	if entry.Indicaciones != "" {
		printlnFn("Indicaciones:", entry.Indicaciones)
	}
	return nil
}

// deleteDirectory removes one entry by identity.
func (a *App) deleteDirectory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Uso: directorio-borrar <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Uso: directorio-borrar <id>")
		return nil
	}
	if err := a.directory.Delete(ctx, id); err != nil {
		a.logger.Error(ctx, "directory delete failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn("Registro eliminado")
	return nil
}
