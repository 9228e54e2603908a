package scoring

import (
	"strings"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// Confidence estimates how reliable a recommendation is. It starts from
// the suitability score and adds bonuses for favorable market conditions
// and for each positive factor finding. Capped at 100.
func Confidence(suitability float64, factors []string, quote *agronomy.MarketQuote) float64 {
	confidence := suitability * 0.6

	if quote != nil {
		switch quote.DemandLevel {
		case agronomy.DemandHigh:
			confidence += 10
		case agronomy.DemandMedium:
			confidence += 5
		}
		if quote.MarketTrend == agronomy.TrendRising {
			confidence += 5
		}
	}

	// Positive findings all start with a capitalized quality word, so a
	// substring match cannot pick up "Suboptimal" or "Less suitable".
	var positive int
	for _, f := range factors {
		if strings.Contains(f, "Optimal") || strings.Contains(f, "Good") || strings.Contains(f, "Suitable") {
			positive++
		}
	}
	confidence += float64(positive) * 2

	if confidence > 100 {
		confidence = 100
	}
	return confidence
}
