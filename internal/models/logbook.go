package models

// LogNote is one free-text entry in the shift log ("bitácora").
// Notes carry no uniqueness constraint and are deletable by identity.
type LogNote struct {
	ID    int64  `json:"id"`
	Nota  string `json:"nota"`
	Fecha string `json:"fecha"`
	Hora  string `json:"hora"`
	Turno Shift  `json:"turno"`
}
