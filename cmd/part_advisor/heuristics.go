package main

import (
	"fmt"
	"os"

	"github.com/powercrux/part-advisor/internal/heuristics"
	"github.com/powercrux/part-advisor/internal/types"
	"github.com/spf13/cobra"
)

var heuristicsCmd = &cobra.Command{
	Use:   "heuristics",
	Short: "Analyze design guidance documents",
	Long:  "Scan the heuristics directory for design notes and show the extracted selection criteria and effective margins per component family.",
	RunE:  runHeuristics,
}

var heuristicsKind string

func init() {
	heuristicsCmd.Flags().StringVarP(&heuristicsKind, "kind", "k", "", "Limit to one component family")
	rootCmd.AddCommand(heuristicsCmd)
}

func runHeuristics(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	kinds := []types.ComponentKind{
		types.KindMOSFET, types.KindOutputCapacitor,
		types.KindInputCapacitor, types.KindInductor,
	}
	if heuristicsKind != "" {
		kind, ok := kindFlags[heuristicsKind]
		if !ok {
			return fmt.Errorf("unknown component kind %q", heuristicsKind)
		}
		kinds = []types.ComponentKind{kind}
	}

	for _, kind := range kinds {
		result := heuristics.Analyze(cfg.HeuristicsDir, kind)
		margins := heuristics.DefaultMargins(kind)
		margins.ApplyGuidance(result)

		fmt.Fprintf(os.Stdout, "%s: %d document(s)\n", kind, len(result.DocumentsFound))
		fmt.Fprintf(os.Stdout, "  margins: voltage %.2fx, current %.2fx\n", margins.Voltage, margins.Current)
		for _, tag := range margins.Applied {
			fmt.Fprintf(os.Stdout, "  override: %s\n", tag)
		}
		for _, rec := range result.Recommendations {
			fmt.Fprintf(os.Stdout, "  %s\n", rec)
		}
	}
	return nil
}
