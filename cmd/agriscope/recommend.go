package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agriscope/agriscope/pkg/render"
	"github.com/agriscope/agriscope/pkg/scoring"
)

func newRecommendCmd() *cobra.Command {
	var (
		location  string
		farmSize  float64
		budget    float64
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Score crop suitability for a location",
		Long:  `Asks the server which crops fit the farm's soil, weather, and market conditions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadCLIConfig()
			if err != nil {
				return err
			}

			loc := firstNonEmpty(location, cfg.Farm.Location)
			if loc == "" {
				return fmt.Errorf("no location given: pass --location or set farm.location in the config")
			}
			size := farmSize
			if size <= 0 {
				size = cfg.Farm.SizeAcres
			}
			spend := budget
			if spend <= 0 {
				spend = cfg.Farm.Budget
			}

			client := newClient(cfg)
			var result scoring.Result
			err = client.do(cmd.Context(), "POST", "/api/v1/recommendations/crops", map[string]any{
				"location":  loc,
				"farm_size": size,
				"budget":    spend,
			}, &result)
			if err != nil {
				return err
			}

			return renderResult(outputFmt, &result)
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "Farm location (default: config farm.location)")
	cmd.Flags().Float64Var(&farmSize, "farm-size", 0, "Farm size in acres (default: config farm.size_acres)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Planting budget (default: config farm.budget)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

func renderResult(outputFmt string, result *scoring.Result) error {
	switch outputFmt {
	case "json":
		return (&render.JSONRenderer{}).Render(os.Stdout, result)
	case "text":
		return (&render.TerminalRenderer{}).Render(os.Stdout, result)
	default:
		return fmt.Errorf("unknown output format %q", outputFmt)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
