package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/powercrux/part-advisor/internal/display"
	"github.com/powercrux/part-advisor/internal/schemas"
	"github.com/powercrux/part-advisor/internal/types"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Recommend components for a buck converter",
	Long:  "Rank catalog or distributor components for one part family against the given electrical requirements.",
	RunE:  runSuggest,
}

var (
	suggestKind        string
	suggestVoltage     float64
	suggestCurrent     float64
	suggestCapacitance float64
	suggestInductance  float64
	suggestRipple      float64
	suggestFrequency   float64
	suggestWeb         bool
	suggestOutputFile  string
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestKind, "kind", "k", "", "Component family: mosfet, output-capacitor, input-capacitor, inductor")
	suggestCmd.Flags().Float64Var(&suggestVoltage, "voltage", 0, "Maximum voltage requirement (V)")
	suggestCmd.Flags().Float64Var(&suggestCurrent, "current", 0, "Maximum current requirement (A)")
	suggestCmd.Flags().Float64Var(&suggestCapacitance, "capacitance", 0, "Required capacitance (µF)")
	suggestCmd.Flags().Float64Var(&suggestInductance, "inductance", 0, "Required inductance (µH)")
	suggestCmd.Flags().Float64Var(&suggestRipple, "ripple-current", 0, "Input ripple current (A, input capacitors only)")
	suggestCmd.Flags().Float64Var(&suggestFrequency, "frequency", 0, "Switching frequency (Hz)")
	suggestCmd.Flags().BoolVar(&suggestWeb, "web", false, "Query distributor listings instead of the local catalog")
	suggestCmd.Flags().StringVarP(&suggestOutputFile, "out", "o", "", "Write suggestions as JSON to this file")
	_ = suggestCmd.MarkFlagRequired("kind")
	_ = suggestCmd.MarkFlagRequired("frequency")

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cfg.WebSearch {
		suggestWeb = true
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	engine := newEngine(cfg, logger)
	ctx := context.Background()

	mode := types.SourceModeLocal
	if suggestWeb {
		mode = types.SourceModeWeb
	}

	var (
		suggestions []types.Suggestion
		kind        types.ComponentKind
	)
	switch suggestKind {
	case "mosfet":
		kind = types.KindMOSFET
		suggestions, err = engine.SuggestMOSFETs(ctx, types.MOSFETRequirements{
			MaxVoltage: suggestVoltage, MaxCurrent: suggestCurrent, FrequencyHz: suggestFrequency, Mode: mode,
		})
	case "output-capacitor":
		kind = types.KindOutputCapacitor
		suggestions, err = engine.SuggestOutputCapacitors(ctx, types.CapacitorRequirements{
			CapacitanceUF: suggestCapacitance, MaxVoltage: suggestVoltage, FrequencyHz: suggestFrequency, Mode: mode,
		})
	case "input-capacitor":
		kind = types.KindInputCapacitor
		suggestions, err = engine.SuggestInputCapacitors(ctx, types.InputCapacitorRequirements{
			CapacitanceUF: suggestCapacitance, MaxVoltage: suggestVoltage, RippleCurrent: suggestRipple, FrequencyHz: suggestFrequency, Mode: mode,
		})
	case "inductor":
		kind = types.KindInductor
		suggestions, err = engine.SuggestInductors(ctx, types.InductorRequirements{
			InductanceUH: suggestInductance, MaxCurrent: suggestCurrent, FrequencyHz: suggestFrequency, Mode: mode,
		})
	default:
		return fmt.Errorf("unknown component kind %q (want mosfet, output-capacitor, input-capacitor, or inductor)", suggestKind)
	}
	if err != nil {
		return err
	}

	printer := display.NewPrinter(os.Stdout)
	printer.PrintSuggestions(suggestTitle(kind), suggestions)
	if verbose {
		for _, s := range suggestions {
			printer.PrintSuggestionDetail(s)
		}
	}

	if suggestOutputFile != "" {
		return exportSuggestions(kind, suggestions)
	}
	return nil
}

func suggestTitle(kind types.ComponentKind) string {
	switch kind {
	case types.KindMOSFET:
		return "MOSFET Suggestions"
	case types.KindOutputCapacitor:
		return "Output Capacitor Suggestions"
	case types.KindInputCapacitor:
		return "Input Capacitor Suggestions"
	case types.KindInductor:
		return "Inductor Suggestions"
	}
	return "Suggestions"
}

// suggestionExport is the JSON artifact shape; it validates against
// schemas/suggestions.schema.json.
type suggestionExport struct {
	RunID       string             `json:"run_id"`
	Kind        string             `json:"kind"`
	GeneratedAt string             `json:"generated_at"`
	Suggestions []suggestionRecord `json:"suggestions"`
}

type suggestionRecord struct {
	PartNumber        string   `json:"part_number"`
	Manufacturer      string   `json:"manufacturer"`
	Description       string   `json:"description,omitempty"`
	Score             float64  `json:"score"`
	Reason            string   `json:"reason"`
	Source            string   `json:"source"`
	HeuristicsApplied []string `json:"heuristics_applied,omitempty"`
}

func exportSuggestions(kind types.ComponentKind, suggestions []types.Suggestion) error {
	export := suggestionExport{
		RunID:       uuid.New().String(),
		Kind:        string(kind),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Suggestions: []suggestionRecord{},
	}
	for _, s := range suggestions {
		export.Suggestions = append(export.Suggestions, suggestionRecord{
			PartNumber:        s.Component.PartNumber(),
			Manufacturer:      s.Component.Maker(),
			Description:       s.Component.Describe(),
			Score:             s.Score,
			Reason:            s.Reason,
			Source:            string(s.Source),
			HeuristicsApplied: s.HeuristicsApplied,
		})
	}

	jsonBytes, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(suggestOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Validate against schema (if schema file exists)
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "suggestions.schema.json"))
	if schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, suggestOutputFile); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("exported JSON does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", suggestOutputFile)
	return nil
}
