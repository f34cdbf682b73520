package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/vigilia/caseta/internal/flagx"
	"github.com/vigilia/caseta/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the replication timeout either as a
// string like "10s" or as integer nanoseconds. After parsing, values are
// copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabasePath        string         `json:"database_path"`
	ReplicationEndpoint string         `json:"replication_endpoint"`
	ReplicationTimeout  timex.Duration `json:"replication_timeout"`
	LogLevel            string         `json:"log_level"`
	S3Region            string         `json:"s3_region"`
	S3Endpoint          string         `json:"s3_endpoint"`
	S3Bucket            string         `json:"s3_bucket"`
	S3AccessKey         string         `json:"s3_access_key"`
	S3SecretKey         string         `json:"s3_secret_key"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is given, no JSON is loaded. Only
// fields present in the document override the current values. Panics on read
// or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.ReplicationEndpoint != "" {
		cfg.ReplicationEndpoint = jc.ReplicationEndpoint
	}
	if jc.ReplicationTimeout.Duration != 0 {
		cfg.ReplicationTimeout = time.Duration(jc.ReplicationTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.S3Region != "" {
		cfg.S3.Region = jc.S3Region
	}
	if jc.S3Endpoint != "" {
		cfg.S3.Endpoint = jc.S3Endpoint
	}
	if jc.S3Bucket != "" {
		cfg.S3.Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3.AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3.SecretKey = jc.S3SecretKey
	}
}
