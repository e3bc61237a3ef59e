package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndValidate(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9000"
  read_header_timeout: 10s

dataset:
  path: "./testdata/trade.csv"
  delimiter: ";"
  columns:
    volume: "tons"

dashboard:
  default_year: 2015
  default_country: "KEN"

logging:
  level: "debug"
  format: "console"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "./testdata/trade.csv", cfg.Dataset.Path)
	assert.Equal(t, ';', cfg.Dataset.DelimiterRune())
	assert.Equal(t, "tons", cfg.Dataset.Columns.Volume)
	// untouched columns keep their defaults
	assert.Equal(t, "country1", cfg.Dataset.Columns.Origin)
	assert.Equal(t, "longitude2", cfg.Dataset.Columns.DestLon)
	assert.Equal(t, 2015, cfg.Dashboard.DefaultYear)
	assert.Equal(t, "KEN", cfg.Dashboard.DefaultCountry)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":8051", cfg.Server.Addr)
	assert.Equal(t, 2009, cfg.Dashboard.DefaultYear)
	assert.Equal(t, "NGA", cfg.Dashboard.DefaultCountry)
	assert.Equal(t, "Import trade _metric Tons", cfg.Dataset.Columns.Volume)
	assert.Equal(t, "africa", cfg.Presentation.MapScope)
	assert.Equal(t, "orange", cfg.Presentation.BarColor)
	assert.Equal(t, 1200, cfg.Presentation.MapWidth)
	assert.Equal(t, 1000, cfg.Presentation.MapHeight)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Swagger.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TRADE_DASHBOARD_DASHBOARD_DEFAULT_COUNTRY", "GHA")
	t.Setenv("TRADE_DASHBOARD_LOGGING_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "GHA", cfg.Dashboard.DefaultCountry)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Server.Addr = "" }},
		{"empty dataset path", func(c *Config) { c.Dataset.Path = "" }},
		{"multi-char delimiter", func(c *Config) { c.Dataset.Delimiter = ";;" }},
		{"blank column", func(c *Config) { c.Dataset.Columns.DestLat = " " }},
		{"boundaries without property", func(c *Config) {
			c.Boundaries.Path = "world.geojson"
			c.Boundaries.NameProperty = ""
		}},
		{"no default country", func(c *Config) { c.Dashboard.DefaultCountry = "" }},
		{"opacity out of range", func(c *Config) { c.Presentation.LineOpacity = 1.5 }},
		{"zero map size", func(c *Config) { c.Presentation.MapWidth = 0 }},
		{"zero bar size", func(c *Config) { c.Presentation.BarHeight = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "trace" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
