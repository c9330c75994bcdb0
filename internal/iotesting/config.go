// Package iotesting provides shared test utilities for packages that
// touch the file system or PostgreSQL.
package iotesting

import (
	"os"
	"testing"

	"github.com/gnames/cfazone/pkg/config"
)

// TestDatabaseEnv is the environment variable with the name of the
// PostgreSQL database for tests. PostgreSQL tests are skipped if it is
// empty. This ensures tests never accidentally run against the working
// database.
const TestDatabaseEnv = "CFAZONE_TEST_PG"

// GetTestConfig returns a configuration with home and report directories
// in temporary directories, so tests never touch files in user's home.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    cfg := iotesting.GetTestConfig(t)
//	    // ... use cfg for files and stores
//	}
func GetTestConfig(t *testing.T, opts ...config.Option) *config.Config {
	t.Helper()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptReportDir(t.TempDir()),
		config.OptJobsNumber(2),
	})
	cfg.Update(opts)
	return cfg
}

// GetTestPGConfig returns a configuration for the PostgreSQL store
// or skips the test if TestDatabaseEnv is not set.
func GetTestPGConfig(t *testing.T, opts ...config.Option) *config.Config {
	t.Helper()

	dbName := os.Getenv(TestDatabaseEnv)
	if testing.Short() || dbName == "" {
		t.Skipf("set %s to run PostgreSQL tests", TestDatabaseEnv)
	}

	cfg := GetTestConfig(t, opts...)
	cfg.Update([]config.Option{
		config.OptStoreBackend("postgres"),
		config.OptDatabaseDatabase(dbName),
	})
	return cfg
}
