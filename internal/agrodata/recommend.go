package agrodata

import (
	"sort"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// MarketRequest narrows a market recommendation to a farm's situation.
type MarketRequest struct {
	Location string  `json:"location"`
	FarmSize float64 `json:"farm_size"` // acres
	Budget   float64 `json:"budget"`
	Season   string  `json:"season"` // "current" or a seasonality label
}

// MarketPick is one crop scored purely on market conditions.
type MarketPick struct {
	Crop          string               `json:"crop"`
	Score         int                  `json:"score"`
	CurrentPrice  float64              `json:"current_price"`
	Unit          string               `json:"unit"`
	EstimatedCost float64              `json:"estimated_cost"`
	Reasons       []string             `json:"reasons"`
	MarketTrend   agronomy.Trend       `json:"market_trend"`
	DemandLevel   agronomy.DemandLevel `json:"demand_level"`
}

// Defaults applied when a market request omits a field.
const (
	DefaultFarmSize = 1.0
	DefaultBudget   = 10000.0
)

// RecommendCrops scores the board's crops on trend, demand, supply, and
// affordability, and returns the top ten. Crops scoring zero are dropped.
func RecommendCrops(board []agronomy.MarketQuote, req MarketRequest) []MarketPick {
	if req.FarmSize <= 0 {
		req.FarmSize = DefaultFarmSize
	}
	if req.Budget <= 0 {
		req.Budget = DefaultBudget
	}

	var picks []MarketPick
	for _, q := range board {
		if req.Season != "" && req.Season != "current" && string(q.Seasonality) != req.Season {
			continue
		}

		score := 0
		var reasons []string

		switch q.MarketTrend {
		case agronomy.TrendRising:
			score += 30
			reasons = append(reasons, "Price is rising")
		case agronomy.TrendStable:
			score += 20
			reasons = append(reasons, "Price is stable")
		}

		switch q.DemandLevel {
		case agronomy.DemandHigh:
			score += 25
			reasons = append(reasons, "High demand")
		case agronomy.DemandMedium:
			score += 15
			reasons = append(reasons, "Medium demand")
		}

		switch q.SupplyLevel {
		case "low":
			score += 20
			reasons = append(reasons, "Low supply")
		case "medium":
			score += 10
			reasons = append(reasons, "Medium supply")
		}

		// Rough planting cost: ten price units per acre.
		estimatedCost := q.CurrentPrice * (req.FarmSize * 10)
		if estimatedCost <= req.Budget {
			score += 15
			reasons = append(reasons, "Within budget")
		} else if estimatedCost <= req.Budget*1.5 {
			score += 5
			reasons = append(reasons, "Slightly over budget")
		}

		if score > 0 {
			picks = append(picks, MarketPick{
				Crop:          q.Crop,
				Score:         score,
				CurrentPrice:  q.CurrentPrice,
				Unit:          q.Unit,
				EstimatedCost: round2(estimatedCost),
				Reasons:       reasons,
				MarketTrend:   q.MarketTrend,
				DemandLevel:   q.DemandLevel,
			})
		}
	}

	sort.SliceStable(picks, func(i, j int) bool { return picks[i].Score > picks[j].Score })
	if len(picks) > 10 {
		picks = picks[:10]
	}
	return picks
}
