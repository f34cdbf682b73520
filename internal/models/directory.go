package models

import "strings"

// MaxDirectoryPhones caps how many phone numbers a directory entry keeps.
const MaxDirectoryPhones = 3

// DirectoryEntry maps a destination (house, unit) to its residents and
// contact numbers. Destino is the logical key: at most one entry exists per
// normalized destination, enforced by the upsert resolver rather than by a
// storage constraint.
type DirectoryEntry struct {
	ID         int64    `json:"id"`
	Destino    string   `json:"destino"`
	Residentes []string `json:"residentes"`

	// Telefonos holds up to MaxDirectoryPhones numbers, dialing order.
	Telefonos []string `json:"telefonos"`

	// Indicaciones is optional free text with directions to the unit.
	Indicaciones string `json:"indicaciones"`
}

// NormalizeDestination is the canonical form used to match directory entries:
// surrounding whitespace trimmed, lowercased.
func NormalizeDestination(destino string) string {
	return strings.ToLower(strings.TrimSpace(destino))
}
