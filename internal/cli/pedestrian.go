package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/suggest"
)

// registerPedestrian walks the guard through a pedestrian entry. The first
// prompt accepts a name or a visitor code; matches prefill the form, and a
// returning visitor keeps the code already assigned to them. New visitors
// get the next sequential code at save time.
func (a *App) registerPedestrian(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Nombre o codigo", os.Stdout)
	if err != nil {
		return err
	}

	var prefill suggest.PedestrianSuggestion
	matches, err := a.suggester.Pedestrians(ctx, query)
	if err != nil {
		a.logger.Error(ctx, "pedestrian suggestions failed", "error", err)
	} else if len(matches) > 0 {
		pick, err := a.pickPedestrianSuggestion(matches)
		if err != nil {
			return err
		}
		if pick != nil {
			prefill = *pick
			query = pick.Nombre
		}
	}

	if prefill.Clasificacion == models.ClassificationBlocked {
		printlnFn(fmt.Sprintf("AVISO: visitante boletinado. Motivo: %s", prefill.MotivoBloqueo))
	}

	p := &models.PedestrianVisit{
		Codigo:        prefill.Codigo,
		Clasificacion: prefill.Clasificacion,
		MotivoBloqueo: prefill.MotivoBloqueo,
		Foto1:         prefill.Foto1,
		Foto2:         prefill.Foto2,
	}

	nameDefault := prefill.Nombre
	if nameDefault == "" {
		nameDefault = query
	}
	if p.Nombre, err = GetTextDefault(a.reader, "Nombre", nameDefault, os.Stdout); err != nil {
		return err
	}
	if p.Motivo, err = GetTextDefault(a.reader, "Motivo", prefill.Motivo, os.Stdout); err != nil {
		return err
	}
	if p.Destino, err = GetTextDefault(a.reader, "Destino", prefill.Destino, os.Stdout); err != nil {
		return err
	}
	if p.IDExterno, err = GetTextDefault(a.reader, "Identificacion", prefill.IDExterno, os.Stdout); err != nil {
		return err
	}

	if p.Accion, err = a.askAction(prefill.Clasificacion); err != nil {
		return err
	}

	id, err := a.visits.RegisterPedestrian(ctx, p)
	if err != nil {
		a.logger.Error(ctx, "pedestrian registration failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Registro guardado (#%d)", id))
	return nil
}

func (a *App) pickPedestrianSuggestion(matches []suggest.PedestrianSuggestion) (*suggest.PedestrianSuggestion, error) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Codigo", "Nombre", "Destino", "Clasificacion"})
	for i, m := range matches {
		t.AppendRow(table.Row{i + 1, m.Codigo, m.Nombre, m.Destino, m.Clasificacion})
	}
	t.Render()

	choice, err := getSimpleText(a.reader, "Numero para autollenar (Enter para omitir)", os.Stdout)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(matches) {
		return nil, nil
	}
	return &matches[n-1], nil
}

// pedestrianHistory lists every stored pedestrian visit.
func (a *App) pedestrianHistory(ctx context.Context) error {
	visits, err := a.visits.PedestrianHistory(ctx)
	if err != nil {
		a.logger.Error(ctx, "pedestrian history failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Fecha", "Hora", "Codigo", "Nombre", "Destino", "Clasificacion", "Accion"})
	for _, p := range visits {
		t.AppendRow(table.Row{p.ID, p.Fecha, p.Hora, p.Codigo, p.Nombre, p.Destino, p.Clasificacion, p.Accion})
	}
	t.Render()
	return nil
}
