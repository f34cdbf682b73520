package models

// Classification marks how a returning visitor should be handled at the gate.
type Classification string

const (
	// ClassificationNone is the default for unremarkable visitors.
	ClassificationNone Classification = ""

	// ClassificationCallAlways requires calling the destination on every visit.
	ClassificationCallAlways Classification = "llamar siempre"

	// ClassificationDirectPass lets a trusted visitor through without a call.
	ClassificationDirectPass Classification = "pase directo"

	// ClassificationBlocked denies access; MotivoBloqueo carries the reason.
	ClassificationBlocked Classification = "boletinado"

	// ClassificationLegacyFrequent is the deprecated spelling of a trusted
	// visitor. It still appears in stored records and is never rewritten;
	// read paths present it as ClassificationDirectPass.
	ClassificationLegacyFrequent Classification = "frecuente"
)

// Normalized maps the legacy "frecuente" value to "pase directo" and returns
// every other value unchanged. Apply it at every read boundary; the stored
// value stays as written.
func (c Classification) Normalized() Classification {
	if c == ClassificationLegacyFrequent {
		return ClassificationDirectPass
	}
	return c
}

// Action records the outcome of a checkpoint visit.
type Action string

const (
	ActionEntry  Action = "entrada"
	ActionExit   Action = "salida"
	ActionDenied Action = "denegado"
)

// Shift labels the guard shift a log note was written on.
type Shift string

const (
	ShiftMorning Shift = "Matutino"
	ShiftEvening Shift = "Vespertino"
	ShiftNight   Shift = "Nocturno"
)

// Role determines which commands an account may run.
type Role string

const (
	RoleGuard Role = "Guardia"
	RoleAdmin Role = "Administrador"
)
