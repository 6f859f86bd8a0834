package config

import (
	"flag"
	"os"

	"github.com/shipdeck/shipdeck/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   base URL of the backend API
//	-d string   path of the local session database
//	-v          verbose (debug) logging
//
// os.Args is filtered to just these flags so they can coexist with the
// flags owned by the cobra command layer.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-v"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the local session database")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
