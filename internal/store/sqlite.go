package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/vigilia/caseta/internal/common"
	"github.com/vigilia/caseta/internal/dbx"
	"github.com/vigilia/caseta/internal/logging"
	"github.com/vigilia/caseta/internal/migrations"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/replication"
	"github.com/vigilia/caseta/internal/repositories/directory"
	"github.com/vigilia/caseta/internal/repositories/guards"
	"github.com/vigilia/caseta/internal/repositories/logbook"
	"github.com/vigilia/caseta/internal/repositories/pedestrians"
	"github.com/vigilia/caseta/internal/repositories/vehicles"

	_ "modernc.org/sqlite"
)

const publishTimeout = 10 * time.Second

// Options configures Open. Both fields are optional.
type Options struct {
	// Sink receives fire-and-forget copies of vehicle, pedestrian and
	// directory writes. Nil disables replication.
	Sink replication.Sink

	// Logger defaults to a no-op logger.
	Logger logging.Logger
}

// SQLStore is the SQLite-backed Store.
type SQLStore struct {
	db   *sql.DB
	sink replication.Sink
	log  logging.Logger

	vehicles    vehicles.Repository
	pedestrians pedestrians.Repository
	logbook     logbook.Repository
	guards      guards.Repository
	directory   directory.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema migrations. Migrations are
// idempotent; re-running them on an already-upgraded store is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Open opens (or creates) the database at path and returns a ready Store.
//
// It never returns an error: an open failure triggers a one-time
// delete-and-recreate recovery, and if that also fails the returned Store is
// a NullStore that rejects every persistence call with
// common.ErrStorageUnavailable. A failed schema upgrade on an otherwise
// usable database is logged and does not abort opening.
func Open(ctx context.Context, path string, opts Options) Store {
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}

	db, err := openAndMigrate(ctx, path, log)
	if err != nil {
		log.Warn(ctx, "store open failed, recreating database file", "path", path, "error", err.Error())
		_ = os.Remove(path)
		db, err = openAndMigrate(ctx, path, log)
	}
	if err != nil {
		log.Error(ctx, "store unavailable, degrading to null store", "path", path, "error", err.Error())
		return NewNullStore()
	}

	return &SQLStore{
		db:          db,
		sink:        opts.Sink,
		log:         log,
		vehicles:    vehicles.NewSQLiteRepository(db),
		pedestrians: pedestrians.NewSQLiteRepository(db),
		logbook:     logbook.NewSQLiteRepository(db),
		guards:      guards.NewSQLiteRepository(db),
		directory:   directory.NewSQLiteRepository(db),
	}
}

func openAndMigrate(ctx context.Context, path string, log logging.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	// An upgrade failure alone must not abort opening an existing store;
	// but a store without its base tables is unusable and goes through
	// recovery instead.
	if err := RunMigrations(ctx, db); err != nil {
		log.Warn(ctx, "schema upgrade failed, continuing", "error", err.Error())
		if !hasBaseSchema(ctx, db) {
			_ = db.Close()
			return nil, fmt.Errorf("base schema missing after failed upgrade: %w", err)
		}
	}
	return db, nil
}

func hasBaseSchema(ctx context.Context, db *sql.DB) bool {
	var name string
	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name='vehiculos'`).Scan(&name)
	return err == nil
}

// replicate dispatches a publish on a detached goroutine. The local write has
// already succeeded; nothing here may affect its outcome.
func (s *SQLStore) replicate(collection string, record any) {
	if s.sink == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.sink.Publish(ctx, collection, record); err != nil {
			s.log.Warn(ctx, "replication publish failed", "collection", collection, "error", err.Error())
		}
	}()
}

func (s *SQLStore) AddVehicleVisit(ctx context.Context, v *models.VehicleVisit) (int64, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}
	id, err := s.vehicles.Insert(ctx, v)
	if err != nil {
		return 0, err
	}
	stored := *v
	stored.ID = id
	s.replicate(common.CollectionVehicles, stored)
	return id, nil
}

func (s *SQLStore) VehicleVisits(ctx context.Context) ([]models.VehicleVisit, error) {
	return s.vehicles.GetAll(ctx)
}

func (s *SQLStore) DeleteVehicleVisit(ctx context.Context, id int64) error {
	return s.vehicles.DeleteByID(ctx, id)
}

func (s *SQLStore) AddPedestrianVisit(ctx context.Context, p *models.PedestrianVisit) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	id, err := s.pedestrians.Insert(ctx, p)
	if err != nil {
		return 0, err
	}
	stored := *p
	stored.ID = id
	s.replicate(common.CollectionPedestrians, stored)
	return id, nil
}

func (s *SQLStore) PedestrianVisits(ctx context.Context) ([]models.PedestrianVisit, error) {
	return s.pedestrians.GetAll(ctx)
}

func (s *SQLStore) DeletePedestrianVisit(ctx context.Context, id int64) error {
	return s.pedestrians.DeleteByID(ctx, id)
}

func (s *SQLStore) AddLogNote(ctx context.Context, n *models.LogNote) (int64, error) {
	return s.logbook.Insert(ctx, n)
}

func (s *SQLStore) LogNotes(ctx context.Context) ([]models.LogNote, error) {
	return s.logbook.GetAll(ctx)
}

func (s *SQLStore) DeleteLogNote(ctx context.Context, id int64) error {
	return s.logbook.DeleteByID(ctx, id)
}

func (s *SQLStore) AddGuard(ctx context.Context, g *models.GuardAccount) (int64, error) {
	return s.guards.Insert(ctx, g)
}

func (s *SQLStore) Guards(ctx context.Context) ([]models.GuardAccount, error) {
	return s.guards.GetAll(ctx)
}

func (s *SQLStore) GuardByUsername(ctx context.Context, username string) (*models.GuardAccount, error) {
	return s.guards.GetByUsername(ctx, username)
}

func (s *SQLStore) DeleteGuard(ctx context.Context, id int64) error {
	return s.guards.DeleteByID(ctx, id)
}

func (s *SQLStore) AddDirectoryEntry(ctx context.Context, e *models.DirectoryEntry) (int64, error) {
	id, err := s.directory.Insert(ctx, e)
	if err != nil {
		return 0, err
	}
	stored := *e
	stored.ID = id
	s.replicate(common.CollectionDirectory, stored)
	return id, nil
}

func (s *SQLStore) DirectoryEntries(ctx context.Context) ([]models.DirectoryEntry, error) {
	return s.directory.GetAll(ctx)
}

func (s *SQLStore) DirectoryEntryByDestination(ctx context.Context, destino string) (*models.DirectoryEntry, error) {
	return s.directory.FindByNormalizedDestination(ctx, destino)
}

func (s *SQLStore) ReplaceDirectoryEntry(ctx context.Context, id int64, e *models.DirectoryEntry) error {
	if err := s.directory.Replace(ctx, id, e); err != nil {
		return err
	}
	stored := *e
	stored.ID = id
	s.replicate(common.CollectionDirectory, stored)
	return nil
}

func (s *SQLStore) DeleteDirectoryEntry(ctx context.Context, id int64) error {
	return s.directory.DeleteByID(ctx, id)
}

func (s *SQLStore) Clear(ctx context.Context, collection string) error {
	switch collection {
	case common.CollectionVehicles:
		return s.vehicles.Clear(ctx)
	case common.CollectionPedestrians:
		return s.pedestrians.Clear(ctx)
	case common.CollectionLogbook:
		return s.logbook.Clear(ctx)
	case common.CollectionGuards:
		return s.guards.Clear(ctx)
	case common.CollectionDirectory:
		return s.directory.Clear(ctx)
	default:
		return fmt.Errorf("%w: unknown collection %q", common.ErrWriteFailed, collection)
	}
}

// ClearAll empties every collection in one transaction, so an interrupted
// bulk restore never leaves some collections cleared and others not.
func (s *SQLStore) ClearAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repos := []interface{ Clear(context.Context) error }{
			vehicles.NewSQLiteRepository(tx),
			pedestrians.NewSQLiteRepository(tx),
			logbook.NewSQLiteRepository(tx),
			guards.NewSQLiteRepository(tx),
			directory.NewSQLiteRepository(tx),
		}
		for _, r := range repos {
			if err := r.Clear(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
