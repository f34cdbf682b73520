package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/vigilia/caseta/internal/backup"
	"github.com/vigilia/caseta/internal/config"
	"github.com/vigilia/caseta/internal/logging"
	"github.com/vigilia/caseta/internal/models"
	"github.com/vigilia/caseta/internal/services"
	"github.com/vigilia/caseta/internal/store"
	"github.com/vigilia/caseta/internal/suggest"
)

// App is the interactive checkpoint terminal. It wires the domain services
// over one store and tracks the guard currently signed in.
type App struct {
	config    *config.Config
	logger    logging.Logger
	store     store.Store
	auth      services.AuthService
	visits    services.VisitService
	logbook   services.LogbookService
	directory services.DirectoryService
	guards    services.GuardService
	suggester *suggest.Engine
	uploader  *backup.S3Uploader
	current   *models.GuardAccount
	reader    *bufio.Reader
}

// NewApp builds the terminal over an already opened store. The S3 uploader
// is wired only when the configuration names a bucket.
func NewApp(c *config.Config, log logging.Logger, st store.Store) *App {
	app := &App{
		config:    c,
		logger:    log,
		store:     st,
		auth:      services.NewAuthService(st),
		visits:    services.NewVisitService(st),
		logbook:   services.NewLogbookService(st),
		directory: services.NewDirectoryService(st),
		guards:    services.NewGuardService(st),
		suggester: suggest.NewEngine(st),
		reader:    bufio.NewReader(os.Stdin),
	}

	s3cfg := backup.S3Config{
		Region:       c.S3.Region,
		BaseEndpoint: c.S3.Endpoint,
		Bucket:       c.S3.Bucket,
		AccessKey:    c.S3.AccessKey,
		SecretKey:    c.S3.SecretKey,
	}
	if s3cfg.Enabled() {
		app.uploader = backup.NewS3Uploader(s3cfg)
	}

	return app
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) isAdmin() bool {
	return a.current != nil && a.current.Rol == models.RoleAdmin
}
