package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"catalog_dir": "assets/component_data",
		"heuristics_dir": "docs/design_notes",
		"min_interval_seconds": 3,
		"max_attempts": 3,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "assets/component_data", cfg.CatalogDir)
	assert.Equal(t, "docs/design_notes", cfg.HeuristicsDir)
	assert.Equal(t, 3.0, cfg.MinIntervalSeconds)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeValues(t *testing.T) {
	cfg := &Config{
		MinIntervalSeconds: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_interval_seconds")

	cfg = &Config{MaxAttempts: -2}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "max_attempts")
}

func TestValidate_MissingDirectories(t *testing.T) {
	cfg := &Config{CatalogDir: "/nonexistent/catalog"}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog directory not found")

	cfg = &Config{HeuristicsDir: "/nonexistent/docs"}
	err = cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "heuristics directory not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		CatalogDir:         t.TempDir(),
		MinIntervalSeconds: 3,
		TimeoutSeconds:     15,
		MaxAttempts:        3,
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		CatalogDir:         "assets/component_data",
		HeuristicsDir:      "docs/design_notes",
		MinIntervalSeconds: 3,
		MaxAttempts:        3,
	}

	partial := Config{
		CatalogDir:     "custom/catalog",
		TimeoutSeconds: 20,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom/catalog", merged.CatalogDir)
	assert.Equal(t, 20.0, merged.TimeoutSeconds)

	// Default values should fill in empty fields
	assert.Equal(t, "docs/design_notes", merged.HeuristicsDir)
	assert.Equal(t, 3.0, merged.MinIntervalSeconds)
	assert.Equal(t, 3, merged.MaxAttempts)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		CatalogDir: "custom/catalog",
		Verbose:    true,
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "custom/catalog", merged.CatalogDir)
	assert.True(t, merged.Verbose)
}

func TestDurationHelpers(t *testing.T) {
	cfg := Config{MinIntervalSeconds: 2.5, TimeoutSeconds: 15}
	assert.Equal(t, 2500*time.Millisecond, cfg.MinInterval())
	assert.Equal(t, 15*time.Second, cfg.Timeout())

	var zero Config
	assert.Equal(t, time.Duration(0), zero.MinInterval())
}
