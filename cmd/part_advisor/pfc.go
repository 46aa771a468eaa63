package main

import (
	"fmt"
	"os"

	"github.com/powercrux/part-advisor/internal/calc"
	"github.com/powercrux/part-advisor/internal/display"
	"github.com/spf13/cobra"
)

var pfcCmd = &cobra.Command{
	Use:   "pfc",
	Short: "Compute PFC front-end component targets",
	Long:  "Compute boost inductance, bulk capacitance, and ripple current for a PFC front-end operating point.",
	RunE:  runPFC,
}

var pfcInputs calc.PFCInputs

func init() {
	pfcCmd.Flags().Float64Var(&pfcInputs.VInMin, "vin-min", 0, "Minimum input voltage (V)")
	pfcCmd.Flags().Float64Var(&pfcInputs.VInMax, "vin-max", 0, "Maximum input voltage (V)")
	pfcCmd.Flags().Float64Var(&pfcInputs.VOutMin, "vout-min", 0, "Minimum output voltage (V)")
	pfcCmd.Flags().Float64Var(&pfcInputs.VOutMax, "vout-max", 0, "Maximum output voltage (V)")
	pfcCmd.Flags().Float64Var(&pfcInputs.POutMax, "pout-max", 0, "Maximum output power (W)")
	pfcCmd.Flags().Float64Var(&pfcInputs.Efficiency, "efficiency", 0.9, "Expected converter efficiency (0-1)")
	pfcCmd.Flags().Float64Var(&pfcInputs.SwitchingFreq, "frequency", 0, "Switching frequency (Hz)")
	pfcCmd.Flags().Float64Var(&pfcInputs.LineFreqMin, "line-frequency", 50, "Minimum line frequency (Hz)")
	pfcCmd.Flags().Float64Var(&pfcInputs.VRippleMax, "vout-ripple", 0, "Maximum output voltage ripple (V)")

	for _, flag := range []string{"vin-min", "vin-max", "vout-min", "vout-max", "pout-max", "frequency", "vout-ripple"} {
		_ = pfcCmd.MarkFlagRequired(flag)
	}

	rootCmd.AddCommand(pfcCmd)
}

func runPFC(_ *cobra.Command, _ []string) error {
	results, err := calc.CalculatePFC(pfcInputs)
	if err != nil {
		return fmt.Errorf("pfc calculation failed: %w", err)
	}

	printer := display.NewPrinter(os.Stdout)
	printer.PrintPFCResults(results)
	return nil
}
