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

// registerVehicle walks the guard through a vehicle entry. Typing the plate
// first lets prior visits prefill the rest of the form.
func (a *App) registerVehicle(ctx context.Context) error {
	placa, err := getSimpleText(a.reader, "Placa", os.Stdout)
	if err != nil {
		return err
	}

	var prefill suggest.VehicleSuggestion
	matches, err := a.suggester.VehiclePlates(ctx, placa)
	if err != nil {
		a.logger.Error(ctx, "plate suggestions failed", "error", err)
	} else if len(matches) > 0 {
		pick, err := a.pickVehicleSuggestion(matches)
		if err != nil {
			return err
		}
		if pick != nil {
			prefill = *pick
			placa = pick.Placa
		}
	}

	if prefill.Clasificacion == models.ClassificationBlocked {
		printlnFn(fmt.Sprintf("AVISO: visitante boletinado. Motivo: %s", prefill.MotivoBloqueo))
	}

	v := &models.VehicleVisit{
		Placa:         placa,
		Clasificacion: prefill.Clasificacion,
		MotivoBloqueo: prefill.MotivoBloqueo,
		Foto1:         prefill.Foto1,
		Foto2:         prefill.Foto2,
		Foto3:         prefill.Foto3,
	}

	if v.Nombre, err = GetTextDefault(a.reader, "Nombre", prefill.Nombre, os.Stdout); err != nil {
		return err
	}
	if v.Motivo, err = GetTextDefault(a.reader, "Motivo", prefill.Motivo, os.Stdout); err != nil {
		return err
	}
	if v.Modelo, err = GetTextDefault(a.reader, "Modelo", prefill.Modelo, os.Stdout); err != nil {
		return err
	}
	if v.Color, err = GetTextDefault(a.reader, "Color", prefill.Color, os.Stdout); err != nil {
		return err
	}
	if v.Destino, err = GetTextDefault(a.reader, "Destino", prefill.Destino, os.Stdout); err != nil {
		return err
	}

	if v.Accion, err = a.askAction(prefill.Clasificacion); err != nil {
		return err
	}

	id, err := a.visits.RegisterVehicle(ctx, v)
	if err != nil {
		a.logger.Error(ctx, "vehicle registration failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Registro guardado (#%d)", id))
	return nil
}

// pickVehicleSuggestion shows the matches and lets the guard pick one by
// number; Enter skips the prefill.
func (a *App) pickVehicleSuggestion(matches []suggest.VehicleSuggestion) (*suggest.VehicleSuggestion, error) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Placa", "Nombre", "Destino", "Clasificacion"})
	for i, m := range matches {
		t.AppendRow(table.Row{i + 1, m.Placa, m.Nombre, m.Destino, m.Clasificacion})
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

// askAction records the gate outcome. Blocked visitors default to denied but
// the guard has the final say.
func (a *App) askAction(c models.Classification) (models.Action, error) {
	def := string(models.ActionEntry)
	if c == models.ClassificationBlocked {
		def = string(models.ActionDenied)
	}
	answer, err := GetTextDefault(a.reader, "Accion (entrada/salida/denegado)", def, os.Stdout)
	if err != nil {
		return "", err
	}
	switch models.Action(answer) {
	case models.ActionEntry, models.ActionExit, models.ActionDenied:
		return models.Action(answer), nil
	default:
		return models.Action(def), nil
	}
}

// vehicleHistory lists every stored vehicle visit, newest last.
func (a *App) vehicleHistory(ctx context.Context) error {
	visits, err := a.visits.VehicleHistory(ctx)
	if err != nil {
		a.logger.Error(ctx, "vehicle history failed", "error", err)
		printlnFn("Error:", err.Error())
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Fecha", "Hora", "Placa", "Nombre", "Destino", "Clasificacion", "Accion"})
	for _, v := range visits {
		t.AppendRow(table.Row{v.ID, v.Fecha, v.Hora, v.Placa, v.Nombre, v.Destino, v.Clasificacion, v.Accion})
	}
	t.Render()
	return nil
}
