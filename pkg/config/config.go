// Package config provides configuration management for cfazone.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Source: url, timeout_sec, cache_hours
//   - Store: backend
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Narrative: provider, model, base_url
//   - Report: indicators, chart_format, chart_width_cm, chart_height_cm,
//     export, dir
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags and environment only):
//   - Narrative.APIKey (read from OPENAI_API_KEY or GEMINI_API_KEY)
//   - Report.Refresh, Report.Output (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use CFAZONE_ prefix with underscores for nesting:
//
//	CFAZONE_STORE_BACKEND=sqlite
//	CFAZONE_NARRATIVE_PROVIDER=openai
//	CFAZONE_LOG_LEVEL=info
//	CFAZONE_JOBS_NUMBER=4
package config

import (
	"runtime"
)

// Config represents the complete cfazone configuration.
type Config struct {
	// Source contains settings of the IMF DataMapper API.
	Source SourceConfig `mapstructure:"source" yaml:"source"`

	// Store selects where fetched observations are kept.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Database contains PostgreSQL connection settings, used only by the
	// 'postgres' store backend.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Narrative contains settings of the text-generation service.
	Narrative NarrativeConfig `mapstructure:"narrative" yaml:"narrative"`

	// Report contains settings of the generated report.
	Report ReportConfig `mapstructure:"report" yaml:"report"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent requests to the data source.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// SourceConfig describes the IMF DataMapper API endpoint.
type SourceConfig struct {
	// URL is the base URL of the DataMapper API (without trailing slash).
	URL string `mapstructure:"url" yaml:"url"`

	// TimeoutSec limits the duration of one HTTP request.
	TimeoutSec int `mapstructure:"timeout_sec" yaml:"timeout_sec"`

	// CacheHours is how long responses of the API are kept in the
	// cache directory.
	CacheHours int `mapstructure:"cache_hours" yaml:"cache_hours"`
}

// StoreConfig selects the storage backend.
type StoreConfig struct {
	// Backend is 'sqlite' (a file in the cache directory) or 'postgres'.
	Backend string `mapstructure:"backend" yaml:"backend"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of records sent in one bulk insert.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// NarrativeConfig contains settings of the narrative generator.
type NarrativeConfig struct {
	// Provider is 'template' (offline), 'openai' or 'gemini'.
	Provider string `mapstructure:"provider" yaml:"provider"`

	// Model is the model name sent to the provider. Empty means the
	// provider's default.
	Model string `mapstructure:"model" yaml:"model"`

	// BaseURL overrides the provider's API endpoint.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// APIKey is never stored in config.yaml, it comes from the environment.
	APIKey string `mapstructure:"-" yaml:"-"`
}

// ReportConfig contains settings of the generated report.
type ReportConfig struct {
	// Indicators is the list of IMF indicator codes to analyze.
	Indicators []string `mapstructure:"indicators" yaml:"indicators"`

	// ChartFormat is 'png' or 'svg'.
	ChartFormat string `mapstructure:"chart_format" yaml:"chart_format"`

	// ChartWidthCM and ChartHeightCM set the chart size in centimeters.
	ChartWidthCM  int `mapstructure:"chart_width_cm"  yaml:"chart_width_cm"`
	ChartHeightCM int `mapstructure:"chart_height_cm" yaml:"chart_height_cm"`

	// Export sets a format for the median tables: 'none', 'csv', 'tsv',
	// 'json' or 'xlsx'.
	Export string `mapstructure:"export" yaml:"export"`

	// Dir is where charts, exports and markdown reports are saved.
	// Empty means ~/.local/share/cfazone/reports.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Refresh forces new download of indicators even if they are stored
	// or cached.
	Refresh bool `mapstructure:"-" yaml:"-"`

	// Output is a path of a markdown file for the report. Empty means the
	// report is rendered to STDOUT.
	Output string `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// DefaultIndicators are analyzed when no indicators are configured.
var DefaultIndicators = []string{
	"NGDP_RPCH",   // Real GDP growth
	"NGDPDPC",     // GDP per capita, current prices
	"PCPIPCH",     // Inflation rate, average consumer prices
	"GGXWDG_NGDP", // General government gross debt
	"BCA_NGDPD",   // Current account balance
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Source: SourceConfig{
			URL:        "https://www.imf.org/external/datamapper/api/v1",
			TimeoutSec: 60,
			CacheHours: 24,
		},
		Store: StoreConfig{
			Backend: "sqlite",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "cfazone",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Narrative: NarrativeConfig{
			Provider: "template",
		},
		Report: ReportConfig{
			Indicators:    append([]string(nil), DefaultIndicators...),
			ChartFormat:   "png",
			ChartWidthCM:  24,
			ChartHeightCM: 14,
			Export:        "none",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// ReportDir returns the directory for report artifacts.
func (c *Config) ReportDir() string {
	if c.Report.Dir != "" {
		return c.Report.Dir
	}
	return ReportDir(c.HomeDir)
}
