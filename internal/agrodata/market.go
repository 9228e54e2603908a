package agrodata

import (
	"time"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

type cropPricing struct {
	name        string
	basePrice   float64
	unit        string
	seasonality agronomy.Season
}

// pricingTable is the traded-crop universe with baseline prices. Order is
// fixed so generated boards list crops consistently.
var pricingTable = []cropPricing{
	{"wheat", 250, "per_quintal", agronomy.SeasonWinter},
	{"rice", 300, "per_quintal", agronomy.SeasonMonsoon},
	{"corn", 200, "per_quintal", agronomy.SeasonSummer},
	{"sugarcane", 350, "per_ton", agronomy.SeasonYearRound},
	{"cotton", 6000, "per_quintal", agronomy.SeasonSummer},
	{"soybean", 400, "per_quintal", agronomy.SeasonMonsoon},
	{"potato", 20, "per_kg", agronomy.SeasonWinter},
	{"tomato", 30, "per_kg", agronomy.SeasonYearRound},
	{"onion", 25, "per_kg", agronomy.SeasonWinter},
	{"chili", 80, "per_kg", agronomy.SeasonYearRound},
	{"mango", 40, "per_kg", agronomy.SeasonSummer},
	{"banana", 25, "per_kg", agronomy.SeasonYearRound},
	{"apple", 60, "per_kg", agronomy.SeasonWinter},
	{"grapes", 50, "per_kg", agronomy.SeasonSummer},
	{"pomegranate", 80, "per_kg", agronomy.SeasonWinter},
}

// TradedCrops returns the crop names carried by the market board, in
// board order.
func TradedCrops() []string {
	names := make([]string, len(pricingTable))
	for i, c := range pricingTable {
		names[i] = c.name
	}
	return names
}

// Traded reports whether the named crop appears on the market board.
func Traded(crop string) bool {
	for _, c := range pricingTable {
		if c.name == crop {
			return true
		}
	}
	return false
}

// SeasonalMultiplier scales a crop's base price by how far the month is
// from its peak season. Winter and summer crops swing 20% either way;
// monsoon crops gain 10% in season; year-round crops are flat.
func SeasonalMultiplier(seasonality agronomy.Season, month time.Month) float64 {
	winter := month == time.December || month == time.January || month == time.February
	summer := month == time.June || month == time.July || month == time.August

	switch seasonality {
	case agronomy.SeasonWinter:
		if winter {
			return 1.2
		}
		if summer {
			return 0.8
		}
		return 1.0
	case agronomy.SeasonSummer:
		if summer {
			return 1.2
		}
		if winter {
			return 0.8
		}
		return 1.0
	case agronomy.SeasonMonsoon:
		if summer || month == time.September {
			return 1.1
		}
		return 1.0
	default:
		return 1.0
	}
}

// MarketBoard generates quotes for every traded crop at the provider's
// current time. Supply level is derived as the inverse of demand.
func (p *Provider) MarketBoard() []agronomy.MarketQuote {
	now := p.now()
	board := make([]agronomy.MarketQuote, 0, len(pricingTable))

	for _, c := range pricingTable {
		multiplier := SeasonalMultiplier(c.seasonality, now.Month())
		fluctuation := p.uniform(0.8, 1.3)
		current := round2(c.basePrice * multiplier * fluctuation)

		change := round2(p.uniform(-0.1, 0.1) * current)
		previous := round2(current - change)

		demandScore := p.uniform(0.3, 1.0)
		demand := agronomy.DemandLow
		if demandScore > 0.8 {
			demand = agronomy.DemandHigh
		} else if demandScore > 0.5 {
			demand = agronomy.DemandMedium
		}

		supply := "medium"
		switch demand {
		case agronomy.DemandHigh:
			supply = "low"
		case agronomy.DemandLow:
			supply = "high"
		}

		trend := agronomy.TrendStable
		if change > 0 {
			trend = agronomy.TrendRising
		} else if change < 0 {
			trend = agronomy.TrendFalling
		}

		board = append(board, agronomy.MarketQuote{
			Crop:               c.name,
			CurrentPrice:       current,
			PreviousPrice:      previous,
			PriceChange:        change,
			PriceChangePercent: round2(change / previous * 100),
			Unit:               c.unit,
			DemandLevel:        demand,
			SupplyLevel:        supply,
			DemandScore:        round2(demandScore),
			MarketTrend:        trend,
			Seasonality:        c.seasonality,
			LastUpdated:        now.Format(time.RFC3339),
		})
	}

	return board
}

// PricePoint is one dated price in a history or forecast series.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// HistoryDays is the length of a generated price history.
const HistoryDays = 30

// PriceHistory generates a 30-day series around the quote's current
// price, oldest first.
func (p *Provider) PriceHistory(q agronomy.MarketQuote) []PricePoint {
	now := p.now()
	points := make([]PricePoint, HistoryDays)
	for i := 0; i < HistoryDays; i++ {
		points[HistoryDays-1-i] = PricePoint{
			Date:  now.AddDate(0, 0, -i).Format("2006-01-02"),
			Price: round2(q.CurrentPrice * p.uniform(0.9, 1.1)),
		}
	}
	return points
}

// PriceForecast projects the next seven days, extending the quote's
// recent change linearly with some noise.
func (p *Provider) PriceForecast(q agronomy.MarketQuote) []PricePoint {
	now := p.now()
	points := make([]PricePoint, 0, 7)
	for i := 1; i <= 7; i++ {
		trendFactor := 1 + (q.PriceChangePercent/100)*(float64(i)/7)
		points = append(points, PricePoint{
			Date:  now.AddDate(0, 0, i).Format("2006-01-02"),
			Price: round2(q.CurrentPrice * trendFactor * p.uniform(0.95, 1.05)),
		})
	}
	return points
}
