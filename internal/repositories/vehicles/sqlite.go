package vehicles

import (
	"context"
	"fmt"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/dbx"
	"github.com/vigilia/caseta/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Insert persists the visit and returns the auto-assigned identity key.
func (r *SQLiteRepository) Insert(ctx context.Context, v *models.VehicleVisit) (int64, error) {
	query := `INSERT INTO vehiculos
			(placa, nombre, motivo, modelo, color, destino, fecha, hora,
			 clasificacion, motivo_bloqueo, foto1, foto2, foto3, accion)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		v.Placa, v.Nombre, v.Motivo, v.Modelo, v.Color, v.Destino, v.Fecha, v.Hora,
		string(v.Clasificacion), v.MotivoBloqueo, v.Foto1, v.Foto2, v.Foto3, string(v.Accion))
	if err != nil {
		return 0, fmt.Errorf("%w: insert vehiculo: %v", common.ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", common.ErrWriteFailed, err)
	}
	return id, nil
}

// GetAll lists all visits ordered by identity key (insertion order).
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.VehicleVisit, error) {
	query := `SELECT id, placa, nombre, motivo, modelo, color, destino, fecha, hora,
			clasificacion, motivo_bloqueo, foto1, foto2, foto3, accion
			FROM vehiculos ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select vehiculos: %w", err)
	}
	defer rows.Close()

	var result []models.VehicleVisit
	for rows.Next() {
		var item models.VehicleVisit
		if err := rows.Scan(&item.ID, &item.Placa, &item.Nombre, &item.Motivo, &item.Modelo,
			&item.Color, &item.Destino, &item.Fecha, &item.Hora, &item.Clasificacion,
			&item.MotivoBloqueo, &item.Foto1, &item.Foto2, &item.Foto3, &item.Accion); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes a visit by id. Deleting a missing id is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vehiculos WHERE id=?`, id); err != nil {
		return fmt.Errorf("%w: delete vehiculo: %v", common.ErrWriteFailed, err)
	}
	return nil
}

// Clear removes every visit.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vehiculos`); err != nil {
		return fmt.Errorf("%w: clear vehiculos: %v", common.ErrWriteFailed, err)
	}
	return nil
}
