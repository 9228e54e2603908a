package main

import (
	"encoding/json"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/agriscope/agriscope/pkg/agronomy"
	"github.com/agriscope/agriscope/pkg/render"
)

func newMarketCmd() *cobra.Command {
	var (
		crop      string
		sortBy    string
		order     string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "market",
		Short: "Show current market prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadCLIConfig()
			if err != nil {
				return err
			}

			query := url.Values{}
			if crop != "" {
				query.Set("crop", crop)
			}
			query.Set("sort", sortBy)
			query.Set("order", order)

			client := newClient(cfg)
			var resp struct {
				Prices []agronomy.MarketQuote `json:"prices"`
				Total  int                    `json:"total"`
			}
			if err := client.do(cmd.Context(), "GET", "/api/v1/market/prices?"+query.Encode(), nil, &resp); err != nil {
				return err
			}

			if outputFmt == "json" {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(resp.Prices)
			}
			return (&render.TerminalRenderer{}).RenderMarketBoard(os.Stdout, resp.Prices)
		},
	}

	cmd.Flags().StringVar(&crop, "crop", "", "Filter by crop name substring")
	cmd.Flags().StringVar(&sortBy, "sort", "crop", "Sort by: crop, price, or change")
	cmd.Flags().StringVar(&order, "order", "asc", "Sort order: asc or desc")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}
