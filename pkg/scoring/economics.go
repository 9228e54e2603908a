package scoring

import (
	"math"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// DefaultPrice is assumed when a crop has no market quote.
const DefaultPrice = 100.0

// EstimateYield projects total yield in kg for a farm, scaled by how
// suitable the conditions are.
func EstimateYield(profile agronomy.CropProfile, farmSize, suitability float64) float64 {
	base := profile.BaseYieldPerAcre
	if base == 0 {
		base = agronomy.FallbackYieldPerAcre
	}
	return round2(base * farmSize * suitability / 100)
}

// EstimateCost projects total growing cost for a farm.
func EstimateCost(profile agronomy.CropProfile, farmSize float64) float64 {
	base := profile.BaseCostPerAcre
	if base == 0 {
		base = agronomy.FallbackCostPerAcre
	}
	return round2(base * farmSize)
}

// Economics fills in the yield, cost, revenue, profit, and margin fields
// of a recommendation from its suitability score and market quote.
func (r *Recommendation) computeEconomics(profile agronomy.CropProfile, farmSize float64) {
	r.EstimatedYield = EstimateYield(profile, farmSize, r.SuitabilityScore)
	r.EstimatedCost = EstimateCost(profile, farmSize)

	price := DefaultPrice
	if r.MarketData != nil {
		price = r.MarketData.CurrentPrice
	}
	r.EstimatedRevenue = r.EstimatedYield * price
	r.EstimatedProfit = r.EstimatedRevenue - r.EstimatedCost
	if r.EstimatedRevenue > 0 {
		r.ProfitMargin = round2(r.EstimatedProfit / r.EstimatedRevenue * 100)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
