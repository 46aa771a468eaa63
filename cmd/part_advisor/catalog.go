package main

import (
	"os"

	"github.com/powercrux/part-advisor/internal/catalog"
	"github.com/powercrux/part-advisor/internal/display"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the loaded component catalog",
	Long:  "Load the component catalog and print a summary of each part family, including fallback degradation and skipped rows.",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	repo := catalog.NewRepository(catalog.NewLoader(cfg.CatalogDir, logger), logger)
	display.NewPrinter(os.Stdout).PrintCatalogSummary(repo.Snapshot())
	return nil
}
