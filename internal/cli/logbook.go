package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vigilia/caseta/internal/models"
)

// addLogNote records a free-text note on the shift log.
func (a *App) addLogNote(ctx context.Context) error {
	nota, err := GetMultiline(a.reader, "Nota", os.Stdout)
	if err != nil {
		return err
	}

	turno, err := GetTextDefault(a.reader, "Turno (Matutino/Vespertino/Nocturno)", string(models.ShiftMorning), os.Stdout)
	if err != nil {
		return err
	}

	id, err := a.logbook.Add(ctx, nota, models.Shift(turno))
	if err != nil {
		a.logger.Error(ctx, "logbook add failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Nota guardada (#%d)", id))
	return nil
}

// listLogNotes shows the whole shift log in insertion order.
func (a *App) listLogNotes(ctx context.Context) error {
	notes, err := a.logbook.List(ctx)
	if err != nil {
		a.logger.Error(ctx, "logbook list failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Fecha", "Hora", "Turno", "Nota"})
	for _, n := range notes {
		t.AppendRow(table.Row{n.ID, n.Fecha, n.Hora, n.Turno, n.Nota})
	}
	t.Render()
	return nil
}

// deleteLogNote removes one note by identity. Deleting an absent note is not
// an error.
func (a *App) deleteLogNote(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Uso: bitacora-borrar <id>")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		printlnFn("Uso: bitacora-borrar <id>")
		return nil
	}
	if err := a.logbook.Delete(ctx, id); err != nil {
		a.logger.Error(ctx, "logbook delete failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn("Nota eliminada")
	return nil
}
