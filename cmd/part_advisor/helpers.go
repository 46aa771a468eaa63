package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/powercrux/part-advisor/internal/catalog"
	"github.com/powercrux/part-advisor/internal/config"
	"github.com/powercrux/part-advisor/internal/distributor"
	"github.com/powercrux/part-advisor/internal/recommend"
	"go.uber.org/zap"
)

// envCatalogDir and envHeuristicsDir let deployments relocate the data
// directories without flags.
const (
	envCatalogDir    = "PART_ADVISOR_CATALOG_DIR"
	envHeuristicsDir = "PART_ADVISOR_HEURISTICS_DIR"
)

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
}

// loadSettings merges the optional config file with environment defaults.
func loadSettings() (config.Config, error) {
	defaults := config.Config{
		CatalogDir:    os.Getenv(envCatalogDir),
		HeuristicsDir: os.Getenv(envHeuristicsDir),
	}
	if defaults.HeuristicsDir == "" {
		// shipped design notes, used only when present so Validate stays happy
		if shipped := filepath.Join("assets", "design_heuristics"); dirExists(shipped) {
			defaults.HeuristicsDir = shipped
		}
	}

	if configPath == "" {
		return defaults, nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}
	merged := cfg.MergeWithDefaults(defaults)
	if verbose {
		merged.Verbose = true
	}
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// newLogger builds the process logger. Verbose mode switches to the
// human-readable development encoder at debug level.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.Verbose || verbose {
		return zap.NewDevelopment()
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// newEngine wires the repository, heuristics directory, and distributor
// client into a suggestion engine.
func newEngine(cfg config.Config, logger *zap.Logger) *recommend.Engine {
	repo := catalog.NewRepository(catalog.NewLoader(cfg.CatalogDir, logger), logger)
	dist := distributor.New(distributor.Config{
		MinInterval: cfg.MinInterval(),
		Timeout:     cfg.Timeout(),
		UserAgent:   cfg.UserAgent,
		UseBrowser:  cfg.UseBrowser,
		Policy: distributor.RetryPolicy{
			MaxAttempts: cfg.MaxAttempts,
		},
	}, logger)
	return recommend.NewEngine(repo, cfg.HeuristicsDir, dist, logger)
}
