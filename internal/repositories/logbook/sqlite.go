package logbook

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

// Insert persists the note and returns the auto-assigned identity key.
func (r *SQLiteRepository) Insert(ctx context.Context, n *models.LogNote) (int64, error) {
	query := `INSERT INTO bitacora (nota, fecha, hora, turno) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, n.Nota, n.Fecha, n.Hora, string(n.Turno))
	if err != nil {
		return 0, fmt.Errorf("%w: insert nota: %v", common.ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", common.ErrWriteFailed, err)
	}
	return id, nil
}

// GetAll lists all notes ordered by identity key (insertion order).
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.LogNote, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nota, fecha, hora, turno FROM bitacora ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select bitacora: %w", err)
	}
	defer rows.Close()

	var result []models.LogNote
	for rows.Next() {
		var item models.LogNote
		if err := rows.Scan(&item.ID, &item.Nota, &item.Fecha, &item.Hora, &item.Turno); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes a note by id. Deleting a missing id is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bitacora WHERE id=?`, id); err != nil {
		return fmt.Errorf("%w: delete nota: %v", common.ErrWriteFailed, err)
	}
	return nil
}

// Clear removes every note.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bitacora`); err != nil {
		return fmt.Errorf("%w: clear bitacora: %v", common.ErrWriteFailed, err)
	}
	return nil
}
