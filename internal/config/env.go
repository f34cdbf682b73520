package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig is a DTO used exclusively for environment parsing. Variables are
// prefixed CASETA_, e.g. CASETA_DATABASE_PATH or CASETA_S3_BUCKET.
type EnvConfig struct {
	DatabasePath        string        `envconfig:"DATABASE_PATH"`
	ReplicationEndpoint string        `envconfig:"REPLICATION_ENDPOINT"`
	ReplicationTimeout  time.Duration `envconfig:"REPLICATION_TIMEOUT"`
	LogLevel            string        `envconfig:"LOG_LEVEL"`
	S3Region            string        `envconfig:"S3_REGION"`
	S3Endpoint          string        `envconfig:"S3_ENDPOINT"`
	S3Bucket            string        `envconfig:"S3_BUCKET"`
	S3AccessKey         string        `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey         string        `envconfig:"S3_SECRET_KEY"`
}

// parseEnv overlays Config with values from the environment. Only variables
// that are actually set override the current values. Panics on parse errors
// (e.g. an unparseable duration).
func parseEnv(cfg *Config) {
	var ec EnvConfig
	if err := envconfig.Process("CASETA", &ec); err != nil {
		panic(err)
	}

	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
	if ec.ReplicationEndpoint != "" {
		cfg.ReplicationEndpoint = ec.ReplicationEndpoint
	}
	if ec.ReplicationTimeout != 0 {
		cfg.ReplicationTimeout = ec.ReplicationTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.S3Region != "" {
		cfg.S3.Region = ec.S3Region
	}
	if ec.S3Endpoint != "" {
		cfg.S3.Endpoint = ec.S3Endpoint
	}
	if ec.S3Bucket != "" {
		cfg.S3.Bucket = ec.S3Bucket
	}
	if ec.S3AccessKey != "" {
		cfg.S3.AccessKey = ec.S3AccessKey
	}
	if ec.S3SecretKey != "" {
		cfg.S3.SecretKey = ec.S3SecretKey
	}
}
