package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"go-trade-dashboard/internal/model"
)

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Dataset      DatasetConfig      `mapstructure:"dataset"`
	Boundaries   BoundariesConfig   `mapstructure:"boundaries"`
	Dashboard    DashboardConfig    `mapstructure:"dashboard"`
	Presentation PresentationConfig `mapstructure:"presentation"`
	Logging      LoggingConfig      `mapstructure:"logging"`
	Metrics      MetricsConfig      `mapstructure:"metrics"`
	Swagger      SwaggerConfig      `mapstructure:"swagger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
}

// DatasetConfig describes the trade-flow input file
type DatasetConfig struct {
	Path          string        `mapstructure:"path"`
	Delimiter     string        `mapstructure:"delimiter"`
	DirectoryPath string        `mapstructure:"directory_path"`
	Columns       model.Columns `mapstructure:"columns"`
}

// BoundariesConfig points at an optional GeoJSON country boundary file
type BoundariesConfig struct {
	Path         string `mapstructure:"path"`
	NameProperty string `mapstructure:"name_property"`
}

// DashboardConfig holds the initial selection
type DashboardConfig struct {
	DefaultYear    int    `mapstructure:"default_year"`
	DefaultCountry string `mapstructure:"default_country"`
}

// PresentationConfig holds styling passed through to the rendering layer
type PresentationConfig struct {
	MapTitle     string  `mapstructure:"map_title"`
	MapScope     string  `mapstructure:"map_scope"`
	Projection   string  `mapstructure:"projection"`
	Colorscale   string  `mapstructure:"colorscale"`
	LineColor    string  `mapstructure:"line_color"`
	LineWidth    float64 `mapstructure:"line_width"`
	LineOpacity  float64 `mapstructure:"line_opacity"`
	OriginColor  string  `mapstructure:"origin_color"`
	MapWidth     int     `mapstructure:"map_width"`
	MapHeight    int     `mapstructure:"map_height"`
	BarTitle     string  `mapstructure:"bar_title"`
	BarSeries    string  `mapstructure:"bar_series"`
	BarColor     string  `mapstructure:"bar_color"`
	BarXAxis     string  `mapstructure:"bar_x_axis"`
	BarYAxis     string  `mapstructure:"bar_y_axis"`
	BarTickAngle int     `mapstructure:"bar_tick_angle"`
	BarWidth     int     `mapstructure:"bar_width"`
	BarHeight    int     `mapstructure:"bar_height"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig toggles the prometheus endpoint
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SwaggerConfig toggles the swagger UI
type SwaggerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load reads configuration from an optional file and environment variables.
// An empty path yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("TRADE_DASHBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8051")
	v.SetDefault("server.read_header_timeout", "5s")

	cols := model.DefaultColumns()
	v.SetDefault("dataset.path", "main/data_with_coordinates.csv")
	v.SetDefault("dataset.delimiter", ",")
	v.SetDefault("dataset.directory_path", "")
	v.SetDefault("dataset.columns.origin", cols.Origin)
	v.SetDefault("dataset.columns.destination", cols.Destination)
	v.SetDefault("dataset.columns.year", cols.Year)
	v.SetDefault("dataset.columns.volume", cols.Volume)
	v.SetDefault("dataset.columns.origin_lat", cols.OriginLat)
	v.SetDefault("dataset.columns.origin_lon", cols.OriginLon)
	v.SetDefault("dataset.columns.dest_lat", cols.DestLat)
	v.SetDefault("dataset.columns.dest_lon", cols.DestLon)

	v.SetDefault("boundaries.path", "")
	v.SetDefault("boundaries.name_property", "NAME")

	v.SetDefault("dashboard.default_year", 2009)
	v.SetDefault("dashboard.default_country", "NGA")

	v.SetDefault("presentation.map_title", "Trade Flows")
	v.SetDefault("presentation.map_scope", "africa")
	v.SetDefault("presentation.projection", "natural earth")
	v.SetDefault("presentation.colorscale", "RdYlGn")
	v.SetDefault("presentation.line_color", "blue")
	v.SetDefault("presentation.line_width", 2.0)
	v.SetDefault("presentation.line_opacity", 0.6)
	v.SetDefault("presentation.origin_color", "red")
	v.SetDefault("presentation.map_width", 1200)
	v.SetDefault("presentation.map_height", 1000)
	v.SetDefault("presentation.bar_title", "Total Import Metric Tons")
	v.SetDefault("presentation.bar_series", "Total Import Metric Tons")
	v.SetDefault("presentation.bar_color", "orange")
	v.SetDefault("presentation.bar_x_axis", "Country Pairs")
	v.SetDefault("presentation.bar_y_axis", "Metric Tons")
	v.SetDefault("presentation.bar_tick_angle", 45)
	v.SetDefault("presentation.bar_width", 1200)
	v.SetDefault("presentation.bar_height", 400)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("swagger.enabled", true)
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	if c.Dataset.Path == "" {
		return fmt.Errorf("dataset.path is required")
	}
	if len([]rune(c.Dataset.Delimiter)) != 1 {
		return fmt.Errorf("dataset.delimiter must be a single character")
	}
	for _, col := range c.Dataset.Columns.Required() {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("dataset.columns must name all eight required columns")
		}
	}

	if c.Boundaries.Path != "" && c.Boundaries.NameProperty == "" {
		return fmt.Errorf("boundaries.name_property is required when boundaries.path is set")
	}

	if c.Dashboard.DefaultCountry == "" {
		return fmt.Errorf("dashboard.default_country is required")
	}

	if c.Presentation.LineOpacity < 0 || c.Presentation.LineOpacity > 1 {
		return fmt.Errorf("presentation.line_opacity must be between 0.0 and 1.0")
	}
	if c.Presentation.MapWidth < 1 || c.Presentation.MapHeight < 1 {
		return fmt.Errorf("presentation map size must be positive")
	}
	if c.Presentation.BarWidth < 1 || c.Presentation.BarHeight < 1 {
		return fmt.Errorf("presentation bar size must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("logging.format must be one of: json, console")
	}

	return nil
}

// DelimiterRune returns the dataset delimiter as a rune
func (d DatasetConfig) DelimiterRune() rune {
	r := []rune(d.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
