// Package config loads runtime configuration for the caseta terminal.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the CASETA_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override everything.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-r string   base URL of the off-site replication receiver
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the replication timeout, so values
// can be either strings like "10s" or integer nanoseconds:
//
//	{
//	  "database_path": "/var/lib/caseta/caseta.db",
//	  "replication_endpoint": "https://replica.example/api",
//	  "replication_timeout": "10s",
//	  "log_level": "info",
//	  "s3_bucket": "caseta-backups"
//	}
package config
