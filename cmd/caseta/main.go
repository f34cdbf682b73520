package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/vigilia/caseta/internal/buildinfo"
	"github.com/vigilia/caseta/internal/cli"
	"github.com/vigilia/caseta/internal/config"
	"github.com/vigilia/caseta/internal/logging"
	"github.com/vigilia/caseta/internal/replication"
	"github.com/vigilia/caseta/internal/store"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := logging.NewZerologLogger(
		zerolog.New(os.Stdout).Level(lvl).With().
			Str("service", "caseta").
			Timestamp().
			Logger(),
	)

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o700); err != nil {
		logger.Warn(ctx, "could not create data directory", "error", err)
	}

	opts := store.Options{Logger: logger}
	if cfg.ReplicationEndpoint != "" {
		opts.Sink = replication.NewHTTPSink(cfg.ReplicationEndpoint, cfg.ReplicationTimeout)
	}

	st := store.Open(ctx, cfg.DatabasePath, opts)
	defer func() { _ = st.Close() }()

	cli.NewApp(cfg, logger, st).Run(ctx)
}
