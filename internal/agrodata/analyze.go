package agrodata

import (
	"fmt"
	"math"
	"sort"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// SortQuotes orders a board in place by "crop", "price", or "change",
// ascending unless order is "desc". Unknown keys sort by crop name.
func SortQuotes(board []agronomy.MarketQuote, by, order string) {
	desc := order == "desc"
	less := func(a, b agronomy.MarketQuote) bool { return a.Crop < b.Crop }
	switch by {
	case "price":
		less = func(a, b agronomy.MarketQuote) bool { return a.CurrentPrice < b.CurrentPrice }
	case "change":
		less = func(a, b agronomy.MarketQuote) bool { return a.PriceChangePercent < b.PriceChangePercent }
	}
	sort.SliceStable(board, func(i, j int) bool {
		if desc {
			return less(board[j], board[i])
		}
		return less(board[i], board[j])
	})
}

// Volatility is the coefficient of variation of the series prices, as a
// percentage. Series shorter than two points report zero.
func Volatility(points []PricePoint) float64 {
	if len(points) < 2 {
		return 0
	}
	mean := 0.0
	for _, pt := range points {
		mean += pt.Price
	}
	mean /= float64(len(points))

	variance := 0.0
	for _, pt := range points {
		d := pt.Price - mean
		variance += d * d
	}
	variance /= float64(len(points))

	return round2(math.Sqrt(variance) / mean * 100)
}

// PriceAnalysis summarizes a crop's recent price behavior.
type PriceAnalysis struct {
	AvgPrice30d    float64 `json:"avg_price_30d"`
	Volatility     float64 `json:"price_volatility"`
	TrendDirection string  `json:"trend_direction"`
	Recommendation string  `json:"recommendation"`
}

// AnalyzePrices derives the analysis block from a quote and its history.
func AnalyzePrices(q agronomy.MarketQuote, history []PricePoint) PriceAnalysis {
	sum := 0.0
	for _, pt := range history {
		sum += pt.Price
	}
	avg := 0.0
	if len(history) > 0 {
		avg = round2(sum / float64(len(history)))
	}

	direction := "stable"
	if q.PriceChange > 0 {
		direction = "upward"
	} else if q.PriceChange < 0 {
		direction = "downward"
	}

	return PriceAnalysis{
		AvgPrice30d:    avg,
		Volatility:     Volatility(history),
		TrendDirection: direction,
		Recommendation: PriceRecommendation(q),
	}
}

// PriceRecommendation suggests a selling posture from trend and demand.
func PriceRecommendation(q agronomy.MarketQuote) string {
	switch {
	case q.MarketTrend == agronomy.TrendRising && q.DemandLevel == agronomy.DemandHigh:
		return "Consider selling soon - prices are rising with high demand"
	case q.MarketTrend == agronomy.TrendFalling && q.DemandLevel == agronomy.DemandLow:
		return "Consider waiting - prices are falling with low demand"
	case q.DemandLevel == agronomy.DemandHigh:
		return "Good time to sell - high demand in market"
	default:
		return "Monitor market conditions - mixed signals"
	}
}

// MarketSummary counts the board by price direction.
type MarketSummary struct {
	TotalCrops   int    `json:"total_crops"`
	RisingCrops  int    `json:"rising_crops"`
	FallingCrops int    `json:"falling_crops"`
	StableCrops  int    `json:"stable_crops"`
	Sentiment    string `json:"market_sentiment"`
}

// Insight is one observation about the board as a whole.
type Insight struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Impact  string `json:"impact"`
}

// TrendsReport is the whole-board trend analysis.
type TrendsReport struct {
	Summary    MarketSummary         `json:"market_summary"`
	Gainers    []agronomy.MarketQuote `json:"gainers"`
	Losers     []agronomy.MarketQuote `json:"losers"`
	HighDemand []agronomy.MarketQuote `json:"high_demand_crops"`
	Insights   []Insight             `json:"market_insights"`
}

// Trends analyzes a market board: direction counts, sentiment, the five
// biggest movers each way, high-demand crops, and derived insights.
func Trends(board []agronomy.MarketQuote) TrendsReport {
	summary := MarketSummary{TotalCrops: len(board)}
	for _, q := range board {
		if q.PriceChange > 0 {
			summary.RisingCrops++
		} else if q.PriceChange < 0 {
			summary.FallingCrops++
		}
	}
	summary.StableCrops = summary.TotalCrops - summary.RisingCrops - summary.FallingCrops

	summary.Sentiment = "neutral"
	if summary.RisingCrops > summary.FallingCrops {
		summary.Sentiment = "positive"
	} else if summary.FallingCrops > summary.RisingCrops {
		summary.Sentiment = "negative"
	}

	byChange := make([]agronomy.MarketQuote, len(board))
	copy(byChange, board)
	sort.SliceStable(byChange, func(i, j int) bool {
		return byChange[i].PriceChangePercent > byChange[j].PriceChangePercent
	})
	gainers := byChange[:min(5, len(byChange))]

	losers := make([]agronomy.MarketQuote, len(board))
	copy(losers, board)
	sort.SliceStable(losers, func(i, j int) bool {
		return losers[i].PriceChangePercent < losers[j].PriceChangePercent
	})
	losers = losers[:min(5, len(losers))]

	var highDemand []agronomy.MarketQuote
	for _, q := range board {
		if q.DemandLevel == agronomy.DemandHigh {
			highDemand = append(highDemand, q)
		}
	}

	return TrendsReport{
		Summary:    summary,
		Gainers:    gainers,
		Losers:     losers,
		HighDemand: highDemand,
		Insights:   MarketInsights(board),
	}
}

// MarketInsights flags board-wide patterns: dominant sentiment, broad
// high demand, and widespread volatility.
func MarketInsights(board []agronomy.MarketQuote) []Insight {
	var insights []Insight
	if len(board) == 0 {
		return insights
	}

	rising := 0
	highDemand := 0
	volatile := 0
	for _, q := range board {
		if q.PriceChange > 0 {
			rising++
		}
		if q.DemandLevel == agronomy.DemandHigh {
			highDemand++
		}
		if math.Abs(q.PriceChangePercent) > 5 {
			volatile++
		}
	}

	ratio := float64(rising) / float64(len(board))
	if ratio > 0.6 {
		insights = append(insights, Insight{
			Type:    "market_sentiment",
			Message: "Market is showing positive sentiment with majority of crops showing price increases",
			Impact:  "positive",
		})
	} else if ratio < 0.4 {
		insights = append(insights, Insight{
			Type:    "market_sentiment",
			Message: "Market is showing negative sentiment with majority of crops showing price decreases",
			Impact:  "negative",
		})
	}

	if highDemand > 3 {
		insights = append(insights, Insight{
			Type:    "demand_analysis",
			Message: fmt.Sprintf("Multiple crops (%d) showing high demand - good selling opportunity", highDemand),
			Impact:  "positive",
		})
	}

	if volatile > 5 {
		insights = append(insights, Insight{
			Type:    "volatility_warning",
			Message: "High price volatility detected in multiple crops - exercise caution",
			Impact:  "warning",
		})
	}

	return insights
}
