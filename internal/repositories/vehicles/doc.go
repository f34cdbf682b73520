// Package vehicles provides the persistence layer for vehicle visits.
//
// # Overview
//
// The package defines a Repository interface for append-and-query operations
// on VehicleVisit records (see internal/models). A SQLite-backed
// implementation (SQLiteRepository) persists data using a dbx.DBTX (either
// *sql.DB or *sql.Tx).
//
// # Data Model
//
// Visits are immutable once inserted: there is no update path, only Insert,
// GetAll, DeleteByID and Clear. The store assigns a monotonically increasing
// integer identity on Insert; GetAll returns records in insertion order.
//
// Typical Usage
//
//	repo := vehicles.NewSQLiteRepository(db)
//	id, _ := repo.Insert(ctx, visit)
//	all, _ := repo.GetAll(ctx)
//	_ = repo.DeleteByID(ctx, id)
//
// See also: internal/models for the VehicleVisit structure.
package vehicles
