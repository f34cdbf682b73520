package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// S3Settings configures the optional snapshot upload target. The feature is
// off unless Bucket is set.
type S3Settings struct {
	Region    string
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
}

// Config holds runtime settings for the caseta terminal.
//
// Fields:
//   - DatabasePath: location of the SQLite database file.
//   - ReplicationEndpoint: base URL of the off-site replication receiver;
//     empty disables replication.
//   - ReplicationTimeout: per-publish deadline for the replication sink.
//   - LogLevel: zerolog level name (debug, info, warn, error).
//   - S3: optional snapshot upload target.
type Config struct {
	DatabasePath        string
	ReplicationEndpoint string
	ReplicationTimeout  time.Duration
	LogLevel            string
	S3                  S3Settings
}

// LoadDefaults populates c with sensible defaults. The database lands in the
// XDG data directory so the binary can run without any configuration at all.
func (c *Config) LoadDefaults() {
	c.DatabasePath = filepath.Join(xdg.DataHome, "caseta", "caseta.db")
	c.ReplicationEndpoint = ""
	c.ReplicationTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
