package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, "shipdeck.db", cfg.DBPath)
	assert.False(t, cfg.Verbose)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("SHIPDECK_API_BASE_URL", "https://api.example.com")
	t.Setenv("SHIPDECK_DB_PATH", "/tmp/s.db")
	t.Setenv("SHIPDECK_VERBOSE", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/s.db", cfg.DBPath)
	assert.True(t, cfg.Verbose)
}

func TestParseEnv_EmptyValueKeepsDefault(t *testing.T) {
	t.Setenv("SHIPDECK_API_BASE_URL", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"shipdeck", "-a", "http://flagged:9000", "-v", "repl"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://flagged:9000", cfg.APIBaseURL)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "shipdeck.db", cfg.DBPath)
}

func TestLoadConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv("SHIPDECK_API_BASE_URL", "http://from-env")

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"shipdeck", "-a", "http://from-flag"}

	cfg := LoadConfig()
	require.Equal(t, "http://from-flag", cfg.APIBaseURL)
}
