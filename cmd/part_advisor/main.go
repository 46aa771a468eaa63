// Package main provides the entry point for the buck converter part advisor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "part_advisor",
	Short: "Buck converter component advisor",
	Long:  "Part Advisor computes buck converter component targets and recommends concrete MOSFETs, capacitors, and inductors from a local catalog or live distributor listings.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
