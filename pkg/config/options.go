package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptSourceURL sets the base URL of the IMF DataMapper API.
func OptSourceURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidURL("Source URL", s) {
			c.Source.URL = s
		}
	}
}

// OptSourceTimeoutSec sets the timeout of one HTTP request in seconds.
func OptSourceTimeoutSec(i int) Option {
	return func(c *Config) {
		if isValidInt("Source Timeout", i) {
			c.Source.TimeoutSec = i
		}
	}
}

// OptSourceCacheHours sets for how many hours API responses are cached.
// Zero disables the cache.
func OptSourceCacheHours(i int) Option {
	return func(c *Config) {
		if i == 0 || isValidInt("Source Cache Hours", i) {
			c.Source.CacheHours = i
		}
	}
}

// OptStoreBackend selects the storage backend.
// Valid values: "sqlite", "postgres".
func OptStoreBackend(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Store.Backend", s) {
			c.Store.Backend = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of records per bulk insert.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptNarrativeProvider selects the narrative generator.
// Valid values: "template", "openai", "gemini".
func OptNarrativeProvider(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Narrative.Provider", s) {
			c.Narrative.Provider = s
		}
	}
}

// OptNarrativeModel sets the model name used by the narrative provider.
func OptNarrativeModel(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Narrative Model", s) {
			c.Narrative.Model = s
		}
	}
}

// OptNarrativeBaseURL overrides the API endpoint of the narrative provider.
func OptNarrativeBaseURL(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "/")
	return func(c *Config) {
		if isValidURL("Narrative Base URL", s) {
			c.Narrative.BaseURL = s
		}
	}
}

// OptNarrativeAPIKey sets the API key of the narrative provider.
// Runtime-only field - not in ToOptions().
func OptNarrativeAPIKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if s != "" {
			c.Narrative.APIKey = s
		}
	}
}

// OptReportIndicators sets IMF indicator codes to analyze.
// Codes are upper-cased and deduplicated, empty codes are ignored.
func OptReportIndicators(ss []string) Option {
	var res []string
	seen := make(map[string]struct{})
	for _, v := range ss {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return func(c *Config) {
		if len(res) > 0 {
			c.Report.Indicators = res
		}
	}
}

// OptReportChartFormat sets the image format of charts.
// Valid values: "png", "svg".
func OptReportChartFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Report.ChartFormat", s) {
			c.Report.ChartFormat = s
		}
	}
}

// OptReportChartWidthCM sets the chart width in centimeters.
func OptReportChartWidthCM(i int) Option {
	return func(c *Config) {
		if isValidInt("Chart Width", i) {
			c.Report.ChartWidthCM = i
		}
	}
}

// OptReportChartHeightCM sets the chart height in centimeters.
func OptReportChartHeightCM(i int) Option {
	return func(c *Config) {
		if isValidInt("Chart Height", i) {
			c.Report.ChartHeightCM = i
		}
	}
}

// OptReportExport sets the export format of median tables.
// Valid values: "none", "csv", "tsv", "json", "xlsx".
func OptReportExport(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Report.Export", s) {
			c.Report.Export = s
		}
	}
}

// OptReportDir sets the directory for report artifacts.
func OptReportDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Directory", s) {
			c.Report.Dir = s
		}
	}
}

// OptReportRefresh forces download of indicators that are already stored.
// Runtime-only field - not in ToOptions().
func OptReportRefresh(b bool) Option {
	return func(c *Config) {
		c.Report.Refresh = b
	}
}

// OptReportOutput sets a markdown file for the report.
// Runtime-only field - not in ToOptions().
func OptReportOutput(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Output", s) {
			c.Report.Output = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent requests to the data source.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
