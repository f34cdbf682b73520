// Package directory provides the persistence layer for the resident
// directory.
//
// # Overview
//
// Unlike the visit collections, directory entries are replaceable: the upsert
// resolver (internal/services) decides between Insert and Replace so that at
// most one entry exists per normalized destination. The destino index in the
// schema is non-unique; uniqueness lives entirely at the application level.
//
// Resident and phone lists are stored as JSON arrays inside TEXT columns,
// which keeps the schema flat and the lists ordered.
package directory
