/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/cfazone/internal/iofs"
	"github.com/gnames/cfazone/internal/iologger"
	app "github.com/gnames/cfazone/pkg"
	"github.com/gnames/cfazone/pkg/config"
	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "cfazone",
		Short:   "Compare economies of CFA franc zone and neighbor countries",
		Long: `cfazone compares economic indicators of African countries that use
the CFA franc with Non-CFA countries of Middle Africa and Western Africa.

Indicators are downloaded from IMF DataMapper API and kept in a local
store. For every indicator cfazone computes yearly medians of both groups,
draws a chart, finds which group had the higher median more often, and
writes a short summary.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (CFAZONE_*)
  3. Config file (~/.config/cfazone/config.yaml)
  4. Built-in defaults

Country lists are in ~/.config/cfazone/cohorts.yaml.
API keys for text generation (OPENAI_API_KEY, GEMINI_API_KEY) can be
kept in ~/.config/cfazone/.env.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "cfazone version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for cfazone")

	rootCmd.PersistentFlags().IntP("jobs", "j", 0,
		"number of concurrent requests to IMF API")

	rootCmd.AddCommand(
		getFetchCmd(),
		getReportCmd(),
		getIndicatorsCmd(),
		getCohortsCmd(),
		getStatsCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureCohortsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// .env is optional
	envPath := config.EnvFilePath(homeDir)
	if err = godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		gn.Warn("Cannot read <em>%s</em>: %s", envPath, err.Error())
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	cfg.Update(apiKeyOptions(cfg.Narrative.Provider))
	cfg.Update(rootFlags(cmd))

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// apiKeyOptions takes the API key of the narrative provider from the
// environment. Keys are never saved to config.yaml.
func apiKeyOptions(provider string) []config.Option {
	var key string
	switch provider {
	case "openai":
		key = os.Getenv("OPENAI_API_KEY")
	case "gemini":
		key = os.Getenv("GEMINI_API_KEY")
		if key == "" {
			key = os.Getenv("GOOGLE_API_KEY")
		}
	}
	if k := os.Getenv("CFAZONE_NARRATIVE_API_KEY"); k != "" {
		key = k
	}
	if key == "" {
		return nil
	}
	return []config.Option{config.OptNarrativeAPIKey(key)}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("CFAZONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Data source configuration
	v.BindEnv("source.url", "CFAZONE_SOURCE_URL")
	v.BindEnv("source.timeout_sec", "CFAZONE_SOURCE_TIMEOUT_SEC")
	v.BindEnv("source.cache_hours", "CFAZONE_SOURCE_CACHE_HOURS")

	// Store configuration
	v.BindEnv("store.backend", "CFAZONE_STORE_BACKEND")

	// Database configuration
	v.BindEnv("database.host", "CFAZONE_DATABASE_HOST")
	v.BindEnv("database.port", "CFAZONE_DATABASE_PORT")
	v.BindEnv("database.user", "CFAZONE_DATABASE_USER")
	v.BindEnv("database.password", "CFAZONE_DATABASE_PASSWORD")
	v.BindEnv("database.database", "CFAZONE_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "CFAZONE_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "CFAZONE_DATABASE_BATCH_SIZE")

	// Narrative configuration
	v.BindEnv("narrative.provider", "CFAZONE_NARRATIVE_PROVIDER")
	v.BindEnv("narrative.model", "CFAZONE_NARRATIVE_MODEL")
	v.BindEnv("narrative.base_url", "CFAZONE_NARRATIVE_BASE_URL")

	// Report configuration
	v.BindEnv("report.indicators", "CFAZONE_REPORT_INDICATORS")
	v.BindEnv("report.chart_format", "CFAZONE_REPORT_CHART_FORMAT")
	v.BindEnv("report.chart_width_cm", "CFAZONE_REPORT_CHART_WIDTH_CM")
	v.BindEnv("report.chart_height_cm", "CFAZONE_REPORT_CHART_HEIGHT_CM")
	v.BindEnv("report.export", "CFAZONE_REPORT_EXPORT")
	v.BindEnv("report.dir", "CFAZONE_REPORT_DIR")

	// Log configuration
	v.BindEnv("log.level", "CFAZONE_LOG_LEVEL")
	v.BindEnv("log.format", "CFAZONE_LOG_FORMAT")
	v.BindEnv("log.destination", "CFAZONE_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "CFAZONE_JOBS_NUMBER")

	v.AutomaticEnv()
}
