// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`   // Path to resume text file
	OutDir string `json:"out_dir,omitempty"` // Directory for export output

	// Behavior
	Format         string `json:"format,omitempty"`          // Default export format
	UserID         string `json:"user_id,omitempty"`         // User UUID for DB-backed history
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed debug information
	MaxConcurrency int    `json:"max_concurrency,omitempty"` // Parallel workers for batch parsing
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
}

// Export formats accepted by the exporters, CLI, and server.
var ExportFormats = []string{"text", "xml", "json", "enhanced", "csv"}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("config error: 'max_concurrency' must be non-negative")
	}

	if c.Format != "" && !ValidExportFormat(c.Format) {
		return fmt.Errorf("config error: unknown format %q (expected one of %v)", c.Format, ExportFormats)
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// ValidExportFormat reports whether name is one of the accepted formats.
func ValidExportFormat(name string) bool {
	for _, format := range ExportFormats {
		if name == format {
			return true
		}
	}
	return false
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.MaxConcurrency == 0 {
		if defaults.MaxConcurrency > 0 {
			result.MaxConcurrency = defaults.MaxConcurrency
		} else {
			result.MaxConcurrency = 4
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
