package main

import (
	"context"
	"fmt"
	"os"

	"github.com/powercrux/part-advisor/internal/distributor"
	"github.com/powercrux/part-advisor/internal/types"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search distributor listings for converter components",
	Long:  "Build search terms from a converter operating point and query Mouser and Digikey for each component family.",
	RunE:  runSearch,
}

var (
	searchVin       float64
	searchVout      float64
	searchIout      float64
	searchFrequency float64
	searchKinds     []string
)

func init() {
	searchCmd.Flags().Float64Var(&searchVin, "vin", 12, "Input voltage (V)")
	searchCmd.Flags().Float64Var(&searchVout, "vout", 5, "Output voltage (V)")
	searchCmd.Flags().Float64Var(&searchIout, "iout", 2, "Output current (A)")
	searchCmd.Flags().Float64Var(&searchFrequency, "frequency", 100000, "Switching frequency (Hz)")
	searchCmd.Flags().StringSliceVar(&searchKinds, "kinds", []string{"mosfet", "input-capacitor", "output-capacitor", "inductor"}, "Component families to search")

	rootCmd.AddCommand(searchCmd)
}

var kindFlags = map[string]types.ComponentKind{
	"mosfet":           types.KindMOSFET,
	"output-capacitor": types.KindOutputCapacitor,
	"input-capacitor":  types.KindInputCapacitor,
	"inductor":         types.KindInductor,
}

func runSearch(_ *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	client := distributor.New(distributor.Config{
		MinInterval: cfg.MinInterval(),
		Timeout:     cfg.Timeout(),
		UserAgent:   cfg.UserAgent,
		UseBrowser:  cfg.UseBrowser,
		Policy:      distributor.RetryPolicy{MaxAttempts: cfg.MaxAttempts},
	}, logger)

	terms := distributor.SearchTerms(distributor.CircuitParams{
		Vin: searchVin, Vout: searchVout, Iout: searchIout, Frequency: searchFrequency,
	})

	ctx := context.Background()
	for _, name := range searchKinds {
		kind, ok := kindFlags[name]
		if !ok {
			return fmt.Errorf("unknown component kind %q", name)
		}
		term := terms[kind]
		fmt.Fprintf(os.Stdout, "Searching %s: %q\n", name, term)

		results := client.Search(ctx, term, kind)
		for _, dist := range []string{types.DistributorMouser, types.DistributorDigikey} {
			fmt.Fprintf(os.Stdout, "  %s:\n", dist)
			for _, comp := range results[dist] {
				note := ""
				if comp.FromFallback {
					note = " (fallback)"
				}
				fmt.Fprintf(os.Stdout, "    %-16s %-20s %s%s\n", comp.PartNumber, comp.Manufacturer, comp.Description, note)
			}
		}
	}
	return nil
}
