// Package config assembles runtime settings for the shipdeck CLI from
// defaults, environment variables and command-line flags, in that order.
package config

// Config holds runtime settings for the CLI.
//
// Fields:
//   - APIBaseURL: base URL of the carrier-platform backend.
//   - DBPath: path of the local session database.
//   - Verbose: enables debug logging of every HTTP round trip.
type Config struct {
	APIBaseURL string
	DBPath     string
	Verbose    bool
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.DBPath = "shipdeck.db"
	c.Verbose = false
}

// LoadConfig constructs a Config: defaults first, then environment
// variables, then flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
