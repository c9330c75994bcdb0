package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "cfazone"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/cfazone by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/cfazone by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/cfazone/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ReportDir returns the default directory for generated reports.
// Returns ~/.local/share/cfazone/reports by default.
func ReportDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "reports")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/cfazone/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CohortsFilePath returns the full path to the cohorts.yaml file with
// country lists.
func CohortsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "cohorts.yaml")
}

// EnvFilePath returns the path of an optional .env file with API keys.
func EnvFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), ".env")
}

// StoreFilePath returns the path of the SQLite store.
// Returns ~/.cache/cfazone/observations.sqlite by default.
func StoreFilePath(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "observations.sqlite")
}

// HTTPCacheDir returns the directory of cached API responses.
// Returns ~/.cache/cfazone/http by default.
func HTTPCacheDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "http")
}
