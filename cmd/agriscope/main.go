// Package main provides the agriscope CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "agriscope",
		Short: "Crop intelligence for farms",
		Long: `Agriscope scores crop suitability from soil, weather, and market data,
and surfaces soil reports and market prices from an Agriscope server.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newLoginCmd(),
		newRecommendCmd(),
		newSoilCmd(),
		newMarketCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
