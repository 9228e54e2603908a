package scoring

import "github.com/agriscope/agriscope/pkg/agronomy"

// MarketFactor (F5) scores current demand and price trend for the crop.
// A snapshot with no quote for the crop contributes nothing, so market
// data stays optional.
type MarketFactor struct {
	DemandHigh   float64
	DemandMedium float64
	DemandLow    float64
	TrendRising  float64
	TrendStable  float64
}

func (f *MarketFactor) Key() string  { return "market" }
func (f *MarketFactor) Name() string { return "Market conditions" }

func (f *MarketFactor) Evaluate(profile agronomy.CropProfile, env *agronomy.EnvironmentSnapshot) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name()}

	quote := env.Quote(profile.Name)
	if quote == nil {
		return result
	}

	switch quote.DemandLevel {
	case agronomy.DemandHigh:
		result.Points += f.DemandHigh
		result.Notes = append(result.Notes, "High market demand")
	case agronomy.DemandMedium:
		result.Points += f.DemandMedium
		result.Notes = append(result.Notes, "Medium market demand")
	default:
		result.Points += f.DemandLow
		result.Notes = append(result.Notes, "Low market demand")
	}

	switch quote.MarketTrend {
	case agronomy.TrendRising:
		result.Points += f.TrendRising
		result.Notes = append(result.Notes, "Rising prices")
	case agronomy.TrendStable:
		result.Points += f.TrendStable
		result.Notes = append(result.Notes, "Stable prices")
	}

	return result
}
