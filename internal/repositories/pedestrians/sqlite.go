package pedestrians

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
func (r *SQLiteRepository) Insert(ctx context.Context, p *models.PedestrianVisit) (int64, error) {
	query := `INSERT INTO peatones
			(nombre, motivo, destino, id_externo, fecha, hora, codigo,
			 clasificacion, motivo_bloqueo, foto1, foto2, accion)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		p.Nombre, p.Motivo, p.Destino, p.IDExterno, p.Fecha, p.Hora, p.Codigo,
		string(p.Clasificacion), p.MotivoBloqueo, p.Foto1, p.Foto2, string(p.Accion))
	if err != nil {
		return 0, fmt.Errorf("%w: insert peaton: %v", common.ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", common.ErrWriteFailed, err)
	}
	return id, nil
}

// GetAll lists all visits ordered by identity key (insertion order).
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.PedestrianVisit, error) {
	query := `SELECT id, nombre, motivo, destino, id_externo, fecha, hora, codigo,
			clasificacion, motivo_bloqueo, foto1, foto2, accion
			FROM peatones ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select peatones: %w", err)
	}
	defer rows.Close()

	var result []models.PedestrianVisit
	for rows.Next() {
		var item models.PedestrianVisit
		if err := rows.Scan(&item.ID, &item.Nombre, &item.Motivo, &item.Destino,
			&item.IDExterno, &item.Fecha, &item.Hora, &item.Codigo, &item.Clasificacion,
			&item.MotivoBloqueo, &item.Foto1, &item.Foto2, &item.Accion); err != nil {
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
	if _, err := r.db.ExecContext(ctx, `DELETE FROM peatones WHERE id=?`, id); err != nil {
		return fmt.Errorf("%w: delete peaton: %v", common.ErrWriteFailed, err)
	}
	return nil
}

// Clear removes every visit.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM peatones`); err != nil {
		return fmt.Errorf("%w: clear peatones: %v", common.ErrWriteFailed, err)
	}
	return nil
}
