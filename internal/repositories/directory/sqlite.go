package directory

import (
	"context"
	"encoding/json"
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

func marshalList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanEntry(scan func(dest ...any) error) (*models.DirectoryEntry, error) {
	e := &models.DirectoryEntry{}
	var residentes, telefonos string
	if err := scan(&e.ID, &e.Destino, &residentes, &telefonos, &e.Indicaciones); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(residentes), &e.Residentes); err != nil {
		return nil, fmt.Errorf("decode residentes: %w", err)
	}
	if err := json.Unmarshal([]byte(telefonos), &e.Telefonos); err != nil {
		return nil, fmt.Errorf("decode telefonos: %w", err)
	}
	return e, nil
}

// Insert persists the entry and returns the auto-assigned identity key.
func (r *SQLiteRepository) Insert(ctx context.Context, e *models.DirectoryEntry) (int64, error) {
	residentes, err := marshalList(e.Residentes)
	if err != nil {
		return 0, fmt.Errorf("%w: encode residentes: %v", common.ErrWriteFailed, err)
	}
	telefonos, err := marshalList(e.Telefonos)
	if err != nil {
		return 0, fmt.Errorf("%w: encode telefonos: %v", common.ErrWriteFailed, err)
	}

	query := `INSERT INTO directorios (destino, residentes, telefonos, indicaciones) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, e.Destino, residentes, telefonos, e.Indicaciones)
	if err != nil {
		return 0, fmt.Errorf("%w: insert directorio: %v", common.ErrWriteFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", common.ErrWriteFailed, err)
	}
	return id, nil
}

// GetAll lists all entries ordered by identity key (insertion order).
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.DirectoryEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, destino, residentes, telefonos, indicaciones FROM directorios ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select directorios: %w", err)
	}
	defer rows.Close()

	var result []models.DirectoryEntry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindByNormalizedDestination matches destino case-insensitively after
// trimming surrounding whitespace on both sides of the comparison.
//
// The match runs in Go, not SQL: SQLite's LOWER folds only ASCII, so
// destinations with accented capitals ("PEÑA 1") would never match their
// normalized form and every upsert would insert a duplicate.
func (r *SQLiteRepository) FindByNormalizedDestination(ctx context.Context, destino string) (*models.DirectoryEntry, error) {
	entries, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := models.NormalizeDestination(destino)
	for i := range entries {
		if models.NormalizeDestination(entries[i].Destino) == needle {
			return &entries[i], nil
		}
	}
	return nil, common.ErrNotFound
}

// Replace overwrites the entry with the given id, keeping the identity key.
func (r *SQLiteRepository) Replace(ctx context.Context, id int64, e *models.DirectoryEntry) error {
	residentes, err := marshalList(e.Residentes)
	if err != nil {
		return fmt.Errorf("%w: encode residentes: %v", common.ErrWriteFailed, err)
	}
	telefonos, err := marshalList(e.Telefonos)
	if err != nil {
		return fmt.Errorf("%w: encode telefonos: %v", common.ErrWriteFailed, err)
	}

	query := `UPDATE directorios SET destino=?, residentes=?, telefonos=?, indicaciones=? WHERE id=?`
	if _, err := r.db.ExecContext(ctx, query, e.Destino, residentes, telefonos, e.Indicaciones, id); err != nil {
		return fmt.Errorf("%w: replace directorio: %v", common.ErrWriteFailed, err)
	}
	return nil
}

// DeleteByID removes an entry by id. Deleting a missing id is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM directorios WHERE id=?`, id); err != nil {
		return fmt.Errorf("%w: delete directorio: %v", common.ErrWriteFailed, err)
	}
	return nil
}

// Clear removes every entry.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM directorios`); err != nil {
		return fmt.Errorf("%w: clear directorios: %v", common.ErrWriteFailed, err)
	}
	return nil
}
