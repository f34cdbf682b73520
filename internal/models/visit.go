// Package models defines the records persisted by the caseta store.
//
// JSON tags use the Spanish field names of the checkpoint's data format so
// that backup documents and replication payloads keep the shape older
// deployments already exchange.
package models

import (
	"fmt"
	"strings"

	"github.com/vigilia/caseta/internal/common"
)

// VehicleVisit is one vehicle passing the checkpoint, immutable once stored.
// Photos are data URIs; absent photos are stored as empty strings, never null,
// so downstream serialization stays uniform.
type VehicleVisit struct {
	// ID is the store-assigned identity key. Zero until persisted.
	ID int64 `json:"id"`

	// Placa is the license plate as typed by the guard. It is not
	// case-normalized on write; lookups compare it case-insensitively.
	Placa string `json:"placa"`

	Nombre  string `json:"nombre"`
	Motivo  string `json:"motivo"`
	Modelo  string `json:"modelo"`
	Color   string `json:"color"`
	Destino string `json:"destino"`

	// Fecha is an ISO calendar date (2006-01-02), Hora is HH:MM:SS.
	Fecha string `json:"fecha"`
	Hora  string `json:"hora"`

	Clasificacion Classification `json:"clasificacion"`

	// MotivoBloqueo is set only when Clasificacion is "boletinado".
	MotivoBloqueo string `json:"motivoBloqueo"`

	Foto1 string `json:"foto1"`
	Foto2 string `json:"foto2"`
	Foto3 string `json:"foto3"`

	Accion Action `json:"accion"`
}

// Validate enforces the write-time invariants of a vehicle visit.
func (v *VehicleVisit) Validate() error {
	if strings.TrimSpace(v.Placa) == "" {
		return fmt.Errorf("%w: placa is required", common.ErrValidation)
	}
	if strings.TrimSpace(v.Nombre) == "" {
		return fmt.Errorf("%w: nombre is required", common.ErrValidation)
	}
	if strings.TrimSpace(v.Destino) == "" {
		return fmt.Errorf("%w: destino is required", common.ErrValidation)
	}
	return nil
}

// PedestrianVisit is one pedestrian passing the checkpoint.
//
// Codigo is the visitor's two-digit sequential code. Every visit by the same
// visitor repeats the code, so it is not unique across records.
type PedestrianVisit struct {
	ID int64 `json:"id"`

	Nombre  string `json:"nombre"`
	Motivo  string `json:"motivo"`
	Destino string `json:"destino"`

	// IDExterno is an optional identifier shown by the visitor (INE, badge).
	IDExterno string `json:"idExterno"`

	Fecha string `json:"fecha"`
	Hora  string `json:"hora"`

	// Codigo is zero-padded to at least two digits ("01", "07", "123").
	Codigo string `json:"codigo"`

	Clasificacion Classification `json:"clasificacion"`
	MotivoBloqueo string         `json:"motivoBloqueo"`

	Foto1 string `json:"foto1"`
	Foto2 string `json:"foto2"`

	Accion Action `json:"accion"`
}

// Validate enforces the write-time invariants of a pedestrian visit.
func (p *PedestrianVisit) Validate() error {
	if strings.TrimSpace(p.Nombre) == "" {
		return fmt.Errorf("%w: nombre is required", common.ErrValidation)
	}
	if strings.TrimSpace(p.Destino) == "" {
		return fmt.Errorf("%w: destino is required", common.ErrValidation)
	}
	return nil
}
