package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Narrative.APIKey, Report.Refresh,
// Report.Output).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Source.URL
	if s != "" {
		res = append(res, OptSourceURL(s))
	}
	i = c.Source.TimeoutSec
	if i > 0 {
		res = append(res, OptSourceTimeoutSec(i))
	}
	i = c.Source.CacheHours
	if i > 0 {
		res = append(res, OptSourceCacheHours(i))
	}

	s = c.Store.Backend
	if s != "" {
		res = append(res, OptStoreBackend(s))
	}

	s = c.Database.Host
	if s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	i = c.Database.Port
	if i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	s = c.Database.User
	if s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	s = c.Database.Password
	if s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	s = c.Database.Database
	if s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	s = c.Database.SSLMode
	if s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}
	i = c.Database.BatchSize
	if i > 0 {
		res = append(res, OptDatabaseBatchSize(i))
	}

	s = c.Narrative.Provider
	if s != "" {
		res = append(res, OptNarrativeProvider(s))
	}
	s = c.Narrative.Model
	if s != "" {
		res = append(res, OptNarrativeModel(s))
	}
	s = c.Narrative.BaseURL
	if s != "" {
		res = append(res, OptNarrativeBaseURL(s))
	}

	if len(c.Report.Indicators) > 0 {
		res = append(res, OptReportIndicators(c.Report.Indicators))
	}
	s = c.Report.ChartFormat
	if s != "" {
		res = append(res, OptReportChartFormat(s))
	}
	i = c.Report.ChartWidthCM
	if i > 0 {
		res = append(res, OptReportChartWidthCM(i))
	}
	i = c.Report.ChartHeightCM
	if i > 0 {
		res = append(res, OptReportChartHeightCM(i))
	}
	s = c.Report.Export
	if s != "" {
		res = append(res, OptReportExport(s))
	}
	s = c.Report.Dir
	if s != "" {
		res = append(res, OptReportDir(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}

	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidURL(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" ||
		(u.Scheme != "http" && u.Scheme != "https") {
		gn.Warn("<em>%s</em> is not a valid http(s) URL, ignoring '%s'",
			name, s)
		return false
	}
	return true
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Store.Backend": {"sqlite": s, "postgres": s},
		"Database.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Narrative.Provider": {"template": s, "openai": s, "gemini": s},
		"Report.ChartFormat": {"png": s, "svg": s},
		"Report.Export": {"none": s, "csv": s, "tsv": s,
			"json": s, "xlsx": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
