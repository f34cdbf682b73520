package guards

import (
	"context"
	"database/sql"
	"errors"
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

// Insert persists the account and returns the auto-assigned identity key.
func (r *SQLiteRepository) Insert(ctx context.Context, g *models.GuardAccount) (int64, error) {
	query := `INSERT INTO guardias (nombre, usuario, contrasena, rol) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, g.Nombre, g.Usuario, g.Contrasena, string(g.Rol))
	if err != nil {
		return 0, fmt.Errorf("%w: insert guardia: %v", common.ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", common.ErrWriteFailed, err)
	}
	return id, nil
}

// GetAll lists all accounts ordered by identity key (insertion order).
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.GuardAccount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, nombre, usuario, contrasena, rol FROM guardias ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select guardias: %w", err)
	}
	defer rows.Close()

	var result []models.GuardAccount
	for rows.Next() {
		var item models.GuardAccount
		if err := rows.Scan(&item.ID, &item.Nombre, &item.Usuario, &item.Contrasena, &item.Rol); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByUsername returns a single account by its login name.
func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.GuardAccount, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, nombre, usuario, contrasena, rol FROM guardias WHERE usuario=?`, username)

	g := &models.GuardAccount{}
	if err := row.Scan(&g.ID, &g.Nombre, &g.Usuario, &g.Contrasena, &g.Rol); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return g, nil
}

// DeleteByID removes an account by id. Deleting a missing id is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM guardias WHERE id=?`, id); err != nil {
		return fmt.Errorf("%w: delete guardia: %v", common.ErrWriteFailed, err)
	}
	return nil
}

// Clear removes every account.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM guardias`); err != nil {
		return fmt.Errorf("%w: clear guardias: %v", common.ErrWriteFailed, err)
	}
	return nil
}
