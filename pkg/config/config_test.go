package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/cfazone/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "cfazone"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "cfazone"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "cfazone", "logs"),
		},
		{
			msg: "report dir",
			fn:  config.ReportDir,
			res: filepath.Join(tempHome, ".local", "share", "cfazone", "reports"),
		},
		{
			msg: "cohorts file",
			fn:  config.CohortsFilePath,
			res: filepath.Join(tempHome, ".config", "cfazone", "cohorts.yaml"),
		},
		{
			msg: "store file",
			fn:  config.StoreFilePath,
			res: filepath.Join(tempHome, ".cache", "cfazone", "observations.sqlite"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t,
			"https://www.imf.org/external/datamapper/api/v1", cfg.Source.URL)
		assert.Equal(t, 60, cfg.Source.TimeoutSec)
		assert.Equal(t, 24, cfg.Source.CacheHours)
		assert.Equal(t, "sqlite", cfg.Store.Backend)

		// Database defaults
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "cfazone", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10_000, cfg.Database.BatchSize)

		assert.Equal(t, "template", cfg.Narrative.Provider)
		assert.Equal(t, config.DefaultIndicators, cfg.Report.Indicators)
		assert.Equal(t, "png", cfg.Report.ChartFormat)
		assert.Equal(t, "none", cfg.Report.Export)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// JobsNumber defaults to CPU count
		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})

	t.Run("default indicators are not shared", func(t *testing.T) {
		cfg.Report.Indicators[0] = "CHANGED"
		assert.NotEqual(t, "CHANGED", config.DefaultIndicators[0])
	})
}

func TestReportDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/user")})
	assert.Equal(t, config.ReportDir("/home/user"), cfg.ReportDir())

	cfg.Update([]config.Option{config.OptReportDir("/tmp/reports")})
	assert.Equal(t, "/tmp/reports", cfg.ReportDir())
}

func TestOptionSourceURL(t *testing.T) {
	def := "https://www.imf.org/external/datamapper/api/v1"
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid url",
			input:    "http://localhost:8080/api",
			expected: "http://localhost:8080/api",
		},
		{
			name:     "removes trailing slash",
			input:    " https://example.org/api/ ",
			expected: "https://example.org/api",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: def,
		},
		{
			name:     "ignores url without scheme",
			input:    "example.org/api",
			expected: def,
		},
		{
			name:     "ignores non-http scheme",
			input:    "ftp://example.org",
			expected: def,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptSourceURL(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Source.URL)
		})
	}
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid port",
			input:    5433,
			expected: 5433,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5432,
		},
		{
			name:     "ignores negative",
			input:    -100,
			expected: 5432,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabasePort(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionEnums(t *testing.T) {
	tests := []struct {
		name     string
		opt      func(string) config.Option
		get      func(*config.Config) string
		input    string
		expected string
	}{
		{
			name:     "store backend postgres",
			opt:      config.OptStoreBackend,
			get:      func(c *config.Config) string { return c.Store.Backend },
			input:    "Postgres",
			expected: "postgres",
		},
		{
			name:     "store backend invalid",
			opt:      config.OptStoreBackend,
			get:      func(c *config.Config) string { return c.Store.Backend },
			input:    "mysql",
			expected: "sqlite",
		},
		{
			name:     "ssl mode verify-full",
			opt:      config.OptDatabaseSSLMode,
			get:      func(c *config.Config) string { return c.Database.SSLMode },
			input:    "verify-full",
			expected: "verify-full",
		},
		{
			name:     "ssl mode invalid",
			opt:      config.OptDatabaseSSLMode,
			get:      func(c *config.Config) string { return c.Database.SSLMode },
			input:    "invalid",
			expected: "disable",
		},
		{
			name:     "narrative provider gemini",
			opt:      config.OptNarrativeProvider,
			get:      func(c *config.Config) string { return c.Narrative.Provider },
			input:    " GEMINI ",
			expected: "gemini",
		},
		{
			name:     "narrative provider invalid",
			opt:      config.OptNarrativeProvider,
			get:      func(c *config.Config) string { return c.Narrative.Provider },
			input:    "llama",
			expected: "template",
		},
		{
			name:     "chart format svg",
			opt:      config.OptReportChartFormat,
			get:      func(c *config.Config) string { return c.Report.ChartFormat },
			input:    "svg",
			expected: "svg",
		},
		{
			name:     "chart format invalid",
			opt:      config.OptReportChartFormat,
			get:      func(c *config.Config) string { return c.Report.ChartFormat },
			input:    "gif",
			expected: "png",
		},
		{
			name:     "export xlsx",
			opt:      config.OptReportExport,
			get:      func(c *config.Config) string { return c.Report.Export },
			input:    "XLSX",
			expected: "xlsx",
		},
		{
			name:     "export invalid",
			opt:      config.OptReportExport,
			get:      func(c *config.Config) string { return c.Report.Export },
			input:    "pdf",
			expected: "none",
		},
		{
			name:     "log level debug",
			opt:      config.OptLogLevel,
			get:      func(c *config.Config) string { return c.Log.Level },
			input:    "DEBUG",
			expected: "debug",
		},
		{
			name:     "log level invalid",
			opt:      config.OptLogLevel,
			get:      func(c *config.Config) string { return c.Log.Level },
			input:    "trace",
			expected: "info",
		},
		{
			name:     "log format tint",
			opt:      config.OptLogFormat,
			get:      func(c *config.Config) string { return c.Log.Format },
			input:    "tint",
			expected: "tint",
		},
		{
			name:     "log format invalid",
			opt:      config.OptLogFormat,
			get:      func(c *config.Config) string { return c.Log.Format },
			input:    "xml",
			expected: "json",
		},
		{
			name:     "log destination stderr",
			opt:      config.OptLogDestination,
			get:      func(c *config.Config) string { return c.Log.Destination },
			input:    "stderr",
			expected: "stderr",
		},
		{
			name:     "log destination invalid",
			opt:      config.OptLogDestination,
			get:      func(c *config.Config) string { return c.Log.Destination },
			input:    "syslog",
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt(tt.input)})
			assert.Equal(t, tt.expected, tt.get(cfg))
		})
	}
}

func TestOptionInts(t *testing.T) {
	tests := []struct {
		name     string
		opt      func(int) config.Option
		get      func(*config.Config) int
		input    int
		expected int
	}{
		{
			name:     "batch size",
			opt:      config.OptDatabaseBatchSize,
			get:      func(c *config.Config) int { return c.Database.BatchSize },
			input:    500,
			expected: 500,
		},
		{
			name:     "batch size zero",
			opt:      config.OptDatabaseBatchSize,
			get:      func(c *config.Config) int { return c.Database.BatchSize },
			input:    0,
			expected: 10_000,
		},
		{
			name:     "timeout",
			opt:      config.OptSourceTimeoutSec,
			get:      func(c *config.Config) int { return c.Source.TimeoutSec },
			input:    5,
			expected: 5,
		},
		{
			name:     "timeout negative",
			opt:      config.OptSourceTimeoutSec,
			get:      func(c *config.Config) int { return c.Source.TimeoutSec },
			input:    -5,
			expected: 60,
		},
		{
			name:     "cache hours",
			opt:      config.OptSourceCacheHours,
			get:      func(c *config.Config) int { return c.Source.CacheHours },
			input:    1,
			expected: 1,
		},
		{
			name:     "cache hours zero",
			opt:      config.OptSourceCacheHours,
			get:      func(c *config.Config) int { return c.Source.CacheHours },
			input:    0,
			expected: 0,
		},
		{
			name:     "cache hours negative",
			opt:      config.OptSourceCacheHours,
			get:      func(c *config.Config) int { return c.Source.CacheHours },
			input:    -1,
			expected: 24,
		},
		{
			name:     "chart width",
			opt:      config.OptReportChartWidthCM,
			get:      func(c *config.Config) int { return c.Report.ChartWidthCM },
			input:    30,
			expected: 30,
		},
		{
			name:     "chart height zero",
			opt:      config.OptReportChartHeightCM,
			get:      func(c *config.Config) int { return c.Report.ChartHeightCM },
			input:    0,
			expected: 14,
		},
		{
			name:     "jobs number",
			opt:      config.OptJobsNumber,
			get:      func(c *config.Config) int { return c.JobsNumber },
			input:    8,
			expected: 8,
		},
		{
			name:     "jobs number negative",
			opt:      config.OptJobsNumber,
			get:      func(c *config.Config) int { return c.JobsNumber },
			input:    -5,
			expected: runtime.NumCPU(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt(tt.input)})
			assert.Equal(t, tt.expected, tt.get(cfg))
		})
	}
}

func TestOptionReportIndicators(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets indicators",
			input:    []string{"NGDP_RPCH", "PCPIPCH"},
			expected: []string{"NGDP_RPCH", "PCPIPCH"},
		},
		{
			name:     "normalizes and deduplicates",
			input:    []string{" ngdp_rpch", "NGDP_RPCH ", "", "pcpipch"},
			expected: []string{"NGDP_RPCH", "PCPIPCH"},
		},
		{
			name:     "ignores empty slice",
			input:    []string{},
			expected: config.DefaultIndicators,
		},
		{
			name:     "ignores blank codes only",
			input:    []string{" ", ""},
			expected: config.DefaultIndicators,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptReportIndicators(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Report.Indicators)
		})
	}
}

func TestMultipleOptions(t *testing.T) {
	t.Run("applies multiple options in order", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptStoreBackend("postgres"),
			config.OptDatabaseHost("custom.host.com"),
			config.OptDatabaseUser("myuser"),
			config.OptNarrativeProvider("openai"),
			config.OptLogLevel("debug"),
			config.OptJobsNumber(16),
		}

		cfg.Update(opts)

		assert.Equal(t, "postgres", cfg.Store.Backend)
		assert.Equal(t, "custom.host.com", cfg.Database.Host)
		assert.Equal(t, "myuser", cfg.Database.User)
		assert.Equal(t, "openai", cfg.Narrative.Provider)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 16, cfg.JobsNumber)

		// Unchanged fields keep defaults
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "json", cfg.Log.Format)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := config.New()

		opts := []config.Option{
			config.OptNarrativeProvider("openai"),
			config.OptNarrativeProvider("gemini"),
		}

		cfg.Update(opts)

		assert.Equal(t, "gemini", cfg.Narrative.Provider)
	})
}

func TestToOptions(t *testing.T) {
	t.Run("converts config to options correctly", func(t *testing.T) {
		original := config.New()
		opts := []config.Option{
			config.OptSourceURL("http://localhost:9000/api"),
			config.OptSourceTimeoutSec(10),
			config.OptSourceCacheHours(2),
			config.OptStoreBackend("postgres"),
			config.OptDatabaseHost("test.host.com"),
			config.OptDatabasePort(5433),
			config.OptDatabaseUser("testuser"),
			config.OptDatabasePassword("testpass"),
			config.OptDatabaseDatabase("testdb"),
			config.OptDatabaseSSLMode("require"),
			config.OptDatabaseBatchSize(500),
			config.OptNarrativeProvider("gemini"),
			config.OptNarrativeModel("gemini-2.5-flash"),
			config.OptNarrativeBaseURL("https://llm.example.org"),
			config.OptReportIndicators([]string{"PCPIPCH"}),
			config.OptReportChartFormat("svg"),
			config.OptReportChartWidthCM(30),
			config.OptReportChartHeightCM(20),
			config.OptReportExport("csv"),
			config.OptReportDir("/tmp/reports"),
			config.OptLogLevel("debug"),
			config.OptLogFormat("text"),
			config.OptLogDestination("stdout"),
			config.OptJobsNumber(8),
		}
		original.Update(opts)

		newCfg := config.New()
		newCfg.Update(original.ToOptions())

		assert.Equal(t, original.Source, newCfg.Source)
		assert.Equal(t, original.Store, newCfg.Store)
		assert.Equal(t, original.Database, newCfg.Database)
		assert.Equal(t, original.Narrative, newCfg.Narrative)
		assert.Equal(t, original.Report, newCfg.Report)
		assert.Equal(t, original.Log, newCfg.Log)
		assert.Equal(t, original.JobsNumber, newCfg.JobsNumber)
	})

	t.Run("excludes runtime-only fields", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptHomeDir("/custom/home"),
			config.OptNarrativeAPIKey("secret"),
			config.OptReportRefresh(true),
			config.OptReportOutput("report.md"),
		})

		opts := cfg.ToOptions()
		newCfg := config.New()
		newCfg.Update(opts)

		// Runtime fields should remain at defaults in newCfg
		assert.Equal(t, "", newCfg.HomeDir)
		assert.Equal(t, "", newCfg.Narrative.APIKey)
		assert.False(t, newCfg.Report.Refresh)
		assert.Equal(t, "", newCfg.Report.Output)
	})
}
