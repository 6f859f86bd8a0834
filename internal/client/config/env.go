package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the CLI.
const (
	envBaseURL = "SHIPDECK_API_BASE_URL"
	envDBPath  = "SHIPDECK_DB_PATH"
	envVerbose = "SHIPDECK_VERBOSE"
)

// parseEnv overlays cfg with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables take precedence over it (godotenv does not overwrite).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv(envBaseURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(envDBPath); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv(envVerbose); ok {
		cfg.Verbose = v == "1" || v == "true"
	}
}
