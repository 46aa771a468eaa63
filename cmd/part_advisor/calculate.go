package main

import (
	"fmt"
	"os"

	"github.com/powercrux/part-advisor/internal/calc"
	"github.com/powercrux/part-advisor/internal/display"
	"github.com/spf13/cobra"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute buck converter component targets",
	Long:  "Compute duty cycle, inductance, and capacitance targets for a buck converter operating point.",
	RunE:  runCalculate,
}

var calcInputs calc.BuckInputs

func init() {
	calculateCmd.Flags().Float64Var(&calcInputs.VInMin, "vin-min", 0, "Minimum input voltage (V)")
	calculateCmd.Flags().Float64Var(&calcInputs.VInMax, "vin-max", 0, "Maximum input voltage (V)")
	calculateCmd.Flags().Float64Var(&calcInputs.VOutMin, "vout-min", 0, "Minimum output voltage (V)")
	calculateCmd.Flags().Float64Var(&calcInputs.VOutMax, "vout-max", 0, "Maximum output voltage (V)")
	calculateCmd.Flags().Float64Var(&calcInputs.POutMax, "pout-max", 0, "Maximum output power (W)")
	calculateCmd.Flags().Float64Var(&calcInputs.Efficiency, "efficiency", 0.9, "Expected converter efficiency (0-1)")
	calculateCmd.Flags().Float64Var(&calcInputs.SwitchingFreq, "frequency", 0, "Switching frequency (Hz)")
	calculateCmd.Flags().Float64Var(&calcInputs.VRippleMax, "vout-ripple", 0.05, "Maximum output voltage ripple (V)")
	calculateCmd.Flags().Float64Var(&calcInputs.VInRipple, "vin-ripple", 0.2, "Maximum input voltage ripple (V)")
	calculateCmd.Flags().Float64Var(&calcInputs.IOutRipple, "iout-ripple", 0, "Inductor ripple current (A)")
	calculateCmd.Flags().Float64Var(&calcInputs.VOvershoot, "overshoot", 0.1, "Allowed output overshoot (V)")
	calculateCmd.Flags().Float64Var(&calcInputs.VUndershoot, "undershoot", 0.1, "Allowed output undershoot (V)")
	calculateCmd.Flags().Float64Var(&calcInputs.ILoadStep, "load-step", 1, "Load step current (A)")

	for _, flag := range []string{"vin-min", "vin-max", "vout-min", "vout-max", "pout-max", "frequency", "iout-ripple"} {
		_ = calculateCmd.MarkFlagRequired(flag)
	}

	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(_ *cobra.Command, _ []string) error {
	results, err := calc.CalculateBuck(calcInputs)
	if err != nil {
		return fmt.Errorf("buck calculation failed: %w", err)
	}

	printer := display.NewPrinter(os.Stdout)
	printer.PrintBuckResults(results)

	if verbose {
		fmt.Fprintf(os.Stdout, "Max output current: %.2f A\n", calc.MaxOutputCurrent(calcInputs))
		fmt.Fprintf(os.Stdout, "Input ripple current: %.2f A RMS\n", calc.InputRippleCurrent(calcInputs))
	}
	return nil
}
