// Package iocohort reads country lists from cohorts.yaml.
package iocohort

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/cfazone/pkg/cohort"
	"github.com/gnames/cfazone/pkg/config"
	"gopkg.in/yaml.v3"
)

// Load reads cohorts.yaml from the configuration directory and validates
// it. If the file does not exist, built-in lists are used.
func Load(cfg *config.Config) (*cohort.Membership, error) {
	path := config.CohortsFilePath(cfg.HomeDir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("Cohorts file not found, using built-in lists", "path", path)
		return cohort.Default(), nil
	}

	res, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Info("Loaded country lists", "path", path,
		"countries", len(res.Countries()))
	return res, nil
}

// LoadFile reads and validates country lists from a YAML file.
func LoadFile(path string) (*cohort.Membership, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CohortsConfigError(path,
			fmt.Errorf("failed to read cohorts file: %w", err))
	}
	return Parse(path, data)
}

// Parse validates country lists from YAML content. Path is used only in
// error messages.
func Parse(path string, data []byte) (*cohort.Membership, error) {
	var lists cohort.Lists
	if err := yaml.Unmarshal(data, &lists); err != nil {
		return nil, CohortsConfigError(path,
			fmt.Errorf("failed to parse cohorts file: %w", err))
	}

	res, err := cohort.New(lists)
	if err != nil {
		// validation errors already carry a user message
		return nil, err
	}
	return res, nil
}
