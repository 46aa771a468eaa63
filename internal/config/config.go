// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	CatalogDir    string `json:"catalog_dir,omitempty"`    // Directory holding the part catalog CSV files
	HeuristicsDir string `json:"heuristics_dir,omitempty"` // Directory holding design guidance documents

	// Distributor lookup
	MinIntervalSeconds float64 `json:"min_interval_seconds,omitempty"` // Minimum spacing between distributor requests
	TimeoutSeconds     float64 `json:"timeout_seconds,omitempty"`     // Per-attempt HTTP timeout
	MaxAttempts        int     `json:"max_attempts,omitempty"`        // Retry attempts per distributor request
	UseBrowser         bool    `json:"use_browser,omitempty"`         // Render listing pages in a headless browser
	UserAgent          string  `json:"user_agent,omitempty"`          // User-Agent header for distributor requests

	// Behavior
	WebSearch bool `json:"web_search,omitempty"` // Query distributors instead of the local catalog
	Verbose   bool `json:"verbose,omitempty"`    // Print detailed debug information
}

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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.MinIntervalSeconds < 0 {
		return fmt.Errorf("config error: 'min_interval_seconds' must be non-negative")
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("config error: 'max_attempts' must be non-negative")
	}

	// Validate directories exist (if specified)
	if c.CatalogDir != "" {
		if _, err := os.Stat(c.CatalogDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog directory not found: %s", c.CatalogDir)
		}
	}
	if c.HeuristicsDir != "" {
		if _, err := os.Stat(c.HeuristicsDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: heuristics directory not found: %s", c.HeuristicsDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CatalogDir == "" {
		result.CatalogDir = defaults.CatalogDir
	}
	if result.HeuristicsDir == "" {
		result.HeuristicsDir = defaults.HeuristicsDir
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}

	// Numeric fields: use default if zero
	if result.MinIntervalSeconds == 0 {
		result.MinIntervalSeconds = defaults.MinIntervalSeconds
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.MaxAttempts == 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// MinInterval returns the configured request spacing as a duration, or zero
// when unset so the lookup client applies its own default.
func (c *Config) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalSeconds * float64(time.Second))
}

// Timeout returns the configured per-attempt timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds * float64(time.Second))
}
