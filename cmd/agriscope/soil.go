package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agriscope/agriscope/pkg/render"
	"github.com/agriscope/agriscope/pkg/soil"
)

func newSoilCmd() *cobra.Command {
	var (
		latitude  float64
		longitude float64
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "soil",
		Short: "Fetch and analyze soil data for coordinates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadCLIConfig()
			if err != nil {
				return err
			}

			lat, lng := latitude, longitude
			if lat == 0 && lng == 0 {
				lat, lng = cfg.Farm.Latitude, cfg.Farm.Longitude
			}
			if lat == 0 && lng == 0 {
				return fmt.Errorf("no coordinates given: pass --lat/--lng or set farm.latitude/longitude in the config")
			}

			client := newClient(cfg)

			var lookup struct {
				SoilData json.RawMessage `json:"soil_data"`
			}
			path := fmt.Sprintf("/api/v1/soil/%g/%g", lat, lng)
			if err := client.do(cmd.Context(), "GET", path, nil, &lookup); err != nil {
				return err
			}

			var report soil.Report
			err = client.do(cmd.Context(), "POST", "/api/v1/soil/analyze", map[string]any{
				"soil_data": lookup.SoilData,
			}, &report)
			if err != nil {
				return err
			}

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(&report)
			}
			return (&render.TerminalRenderer{}).RenderSoilReport(os.Stdout, &report)
		},
	}

	cmd.Flags().Float64Var(&latitude, "lat", 0, "Latitude (default: config farm.latitude)")
	cmd.Flags().Float64Var(&longitude, "lng", 0, "Longitude (default: config farm.longitude)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
