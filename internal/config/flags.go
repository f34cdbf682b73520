package config

import (
	"flag"
	"os"

	"github.com/vigilia/caseta/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the SQLite database file (default from Config)
//	-r string   base URL of the replication receiver (empty disables)
//	-l string   log level: debug, info, warn, error
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with the -c/-config flags
// consumed by the JSON loader.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the database file")
	fs.StringVar(&cfg.ReplicationEndpoint, "r", cfg.ReplicationEndpoint, "replication receiver base URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
