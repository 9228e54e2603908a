package agrodata

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

func testProvider(seed int64) *Provider {
	clock := func() time.Time {
		return time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)
	}
	return New(rand.New(rand.NewSource(seed)), clock)
}

func TestSeasonalMultiplier(t *testing.T) {
	tests := []struct {
		seasonality agronomy.Season
		month       time.Month
		want        float64
	}{
		{agronomy.SeasonWinter, time.January, 1.2},
		{agronomy.SeasonWinter, time.July, 0.8},
		{agronomy.SeasonWinter, time.April, 1.0},
		{agronomy.SeasonSummer, time.July, 1.2},
		{agronomy.SeasonSummer, time.December, 0.8},
		{agronomy.SeasonSummer, time.October, 1.0},
		{agronomy.SeasonMonsoon, time.July, 1.1},
		{agronomy.SeasonMonsoon, time.September, 1.1},
		{agronomy.SeasonMonsoon, time.January, 1.0},
		{agronomy.SeasonYearRound, time.January, 1.0},
		{agronomy.SeasonYearRound, time.July, 1.0},
	}
	for _, tt := range tests {
		got := SeasonalMultiplier(tt.seasonality, tt.month)
		if got != tt.want {
			t.Errorf("SeasonalMultiplier(%s, %s) = %v, want %v", tt.seasonality, tt.month, got, tt.want)
		}
	}
}

func TestTradedCrops(t *testing.T) {
	crops := TradedCrops()
	if len(crops) != 15 {
		t.Fatalf("len(TradedCrops()) = %d, want 15", len(crops))
	}
	if crops[0] != "wheat" || crops[14] != "pomegranate" {
		t.Errorf("crop order = %q ... %q, want wheat ... pomegranate", crops[0], crops[14])
	}
	if !Traded("cotton") {
		t.Error("Traded(cotton) = false, want true")
	}
	if Traded("quinoa") {
		t.Error("Traded(quinoa) = true, want false")
	}
}

func TestMarketBoardInvariants(t *testing.T) {
	p := testProvider(1)
	board := p.MarketBoard()

	if len(board) != 15 {
		t.Fatalf("len(board) = %d, want 15", len(board))
	}
	if board[0].Crop != "wheat" || board[14].Crop != "pomegranate" {
		t.Errorf("board order = %q ... %q, want wheat ... pomegranate", board[0].Crop, board[14].Crop)
	}

	for _, q := range board {
		if q.CurrentPrice <= 0 {
			t.Errorf("%s: CurrentPrice = %v, want > 0", q.Crop, q.CurrentPrice)
		}
		if got := round2(q.CurrentPrice - q.PriceChange); got != q.PreviousPrice {
			t.Errorf("%s: PreviousPrice = %v, want %v", q.Crop, q.PreviousPrice, got)
		}
		if got := round2(q.PriceChange / q.PreviousPrice * 100); got != q.PriceChangePercent {
			t.Errorf("%s: PriceChangePercent = %v, want %v", q.Crop, q.PriceChangePercent, got)
		}

		wantSupply := "medium"
		switch q.DemandLevel {
		case agronomy.DemandHigh:
			wantSupply = "low"
		case agronomy.DemandLow:
			wantSupply = "high"
		}
		if q.SupplyLevel != wantSupply {
			t.Errorf("%s: SupplyLevel = %q with demand %q, want %q", q.Crop, q.SupplyLevel, q.DemandLevel, wantSupply)
		}

		switch {
		case q.PriceChange > 0 && q.MarketTrend != agronomy.TrendRising:
			t.Errorf("%s: trend = %q for positive change", q.Crop, q.MarketTrend)
		case q.PriceChange < 0 && q.MarketTrend != agronomy.TrendFalling:
			t.Errorf("%s: trend = %q for negative change", q.Crop, q.MarketTrend)
		}

		if q.LastUpdated != "2026-01-15T10:30:00Z" {
			t.Errorf("%s: LastUpdated = %q", q.Crop, q.LastUpdated)
		}
	}

	// January: winter crops carry the 1.2 multiplier, so wheat stays
	// within 250*1.2*[0.8,1.3].
	wheat := board[0]
	if wheat.CurrentPrice < 240 || wheat.CurrentPrice > 390 {
		t.Errorf("wheat January price = %v, want within [240, 390]", wheat.CurrentPrice)
	}
}

func TestMarketBoardDeterministic(t *testing.T) {
	a := testProvider(7).MarketBoard()
	b := testProvider(7).MarketBoard()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and clock produced different boards")
	}
}

func TestPriceHistory(t *testing.T) {
	p := testProvider(2)
	q := agronomy.MarketQuote{Crop: "wheat", CurrentPrice: 300}
	history := p.PriceHistory(q)

	if len(history) != 30 {
		t.Fatalf("len(history) = %d, want 30", len(history))
	}
	if history[0].Date != "2025-12-17" {
		t.Errorf("history[0].Date = %q, want 2025-12-17", history[0].Date)
	}
	if history[29].Date != "2026-01-15" {
		t.Errorf("history[29].Date = %q, want 2026-01-15", history[29].Date)
	}
	for _, pt := range history {
		if pt.Price < 270 || pt.Price > 330 {
			t.Errorf("history price %v outside [270, 330]", pt.Price)
		}
	}
}

func TestPriceForecast(t *testing.T) {
	p := testProvider(3)
	q := agronomy.MarketQuote{Crop: "wheat", CurrentPrice: 300, PriceChangePercent: 7}
	forecast := p.PriceForecast(q)

	if len(forecast) != 7 {
		t.Fatalf("len(forecast) = %d, want 7", len(forecast))
	}
	if forecast[0].Date != "2026-01-16" {
		t.Errorf("forecast[0].Date = %q, want 2026-01-16", forecast[0].Date)
	}
	if forecast[6].Date != "2026-01-22" {
		t.Errorf("forecast[6].Date = %q, want 2026-01-22", forecast[6].Date)
	}
	// Day 7 trend factor is 1.07; noise stays within 5% either side.
	last := forecast[6].Price
	if last < 300*1.07*0.95 || last > 300*1.07*1.05 {
		t.Errorf("forecast[6].Price = %v outside trend envelope", last)
	}
}

func TestVolatility(t *testing.T) {
	flat := []PricePoint{{Price: 100}, {Price: 100}, {Price: 100}}
	if got := Volatility(flat); got != 0 {
		t.Errorf("Volatility(flat) = %v, want 0", got)
	}

	split := []PricePoint{{Price: 100}, {Price: 200}}
	if got := Volatility(split); got != 33.33 {
		t.Errorf("Volatility(split) = %v, want 33.33", got)
	}

	if got := Volatility([]PricePoint{{Price: 100}}); got != 0 {
		t.Errorf("Volatility(single) = %v, want 0", got)
	}
}

func TestAnalyzePrices(t *testing.T) {
	q := agronomy.MarketQuote{
		Crop:         "wheat",
		CurrentPrice: 300,
		PriceChange:  4.5,
		MarketTrend:  agronomy.TrendRising,
		DemandLevel:  agronomy.DemandHigh,
	}
	history := []PricePoint{{Price: 10}, {Price: 20}, {Price: 30}}

	a := AnalyzePrices(q, history)
	if a.AvgPrice30d != 20 {
		t.Errorf("AvgPrice30d = %v, want 20", a.AvgPrice30d)
	}
	if a.TrendDirection != "upward" {
		t.Errorf("TrendDirection = %q, want upward", a.TrendDirection)
	}
	if a.Recommendation != "Consider selling soon - prices are rising with high demand" {
		t.Errorf("Recommendation = %q", a.Recommendation)
	}

	q.PriceChange = -2
	if got := AnalyzePrices(q, history).TrendDirection; got != "downward" {
		t.Errorf("TrendDirection = %q, want downward", got)
	}
	q.PriceChange = 0
	if got := AnalyzePrices(q, history).TrendDirection; got != "stable" {
		t.Errorf("TrendDirection = %q, want stable", got)
	}
}

func TestPriceRecommendation(t *testing.T) {
	tests := []struct {
		trend  agronomy.Trend
		demand agronomy.DemandLevel
		want   string
	}{
		{agronomy.TrendRising, agronomy.DemandHigh, "Consider selling soon - prices are rising with high demand"},
		{agronomy.TrendFalling, agronomy.DemandLow, "Consider waiting - prices are falling with low demand"},
		{agronomy.TrendStable, agronomy.DemandHigh, "Good time to sell - high demand in market"},
		{agronomy.TrendFalling, agronomy.DemandMedium, "Monitor market conditions - mixed signals"},
	}
	for _, tt := range tests {
		q := agronomy.MarketQuote{MarketTrend: tt.trend, DemandLevel: tt.demand}
		if got := PriceRecommendation(q); got != tt.want {
			t.Errorf("PriceRecommendation(%s, %s) = %q, want %q", tt.trend, tt.demand, got, tt.want)
		}
	}
}

func TestSortQuotes(t *testing.T) {
	board := func() []agronomy.MarketQuote {
		return []agronomy.MarketQuote{
			{Crop: "rice", CurrentPrice: 300, PriceChangePercent: -2},
			{Crop: "corn", CurrentPrice: 200, PriceChangePercent: 5},
			{Crop: "wheat", CurrentPrice: 250, PriceChangePercent: 1},
		}
	}

	b := board()
	SortQuotes(b, "crop", "asc")
	if b[0].Crop != "corn" || b[2].Crop != "wheat" {
		t.Errorf("sort by crop asc: got %q ... %q", b[0].Crop, b[2].Crop)
	}

	b = board()
	SortQuotes(b, "price", "desc")
	if b[0].Crop != "rice" || b[2].Crop != "corn" {
		t.Errorf("sort by price desc: got %q ... %q", b[0].Crop, b[2].Crop)
	}

	b = board()
	SortQuotes(b, "change", "asc")
	if b[0].Crop != "rice" || b[2].Crop != "corn" {
		t.Errorf("sort by change asc: got %q ... %q", b[0].Crop, b[2].Crop)
	}
}

func TestTrends(t *testing.T) {
	board := []agronomy.MarketQuote{
		{Crop: "wheat", PriceChange: 2, PriceChangePercent: 8, DemandLevel: agronomy.DemandHigh},
		{Crop: "rice", PriceChange: 1, PriceChangePercent: 3, DemandLevel: agronomy.DemandMedium},
		{Crop: "corn", PriceChange: -1, PriceChangePercent: -6, DemandLevel: agronomy.DemandLow},
		{Crop: "potato", PriceChange: 0, PriceChangePercent: 0, DemandLevel: agronomy.DemandHigh},
	}

	r := Trends(board)
	if r.Summary.TotalCrops != 4 || r.Summary.RisingCrops != 2 || r.Summary.FallingCrops != 1 || r.Summary.StableCrops != 1 {
		t.Errorf("summary = %+v", r.Summary)
	}
	if r.Summary.Sentiment != "positive" {
		t.Errorf("Sentiment = %q, want positive", r.Summary.Sentiment)
	}
	if len(r.Gainers) != 4 || r.Gainers[0].Crop != "wheat" || r.Gainers[3].Crop != "corn" {
		t.Errorf("gainers = %v", r.Gainers)
	}
	if r.Losers[0].Crop != "corn" {
		t.Errorf("losers[0] = %q, want corn", r.Losers[0].Crop)
	}
	if len(r.HighDemand) != 2 {
		t.Errorf("len(HighDemand) = %d, want 2", len(r.HighDemand))
	}
}

func TestMarketInsights(t *testing.T) {
	quote := func(change, pct float64, demand agronomy.DemandLevel) agronomy.MarketQuote {
		return agronomy.MarketQuote{PriceChange: change, PriceChangePercent: pct, DemandLevel: demand}
	}

	// 7 of 10 rising, 4 high demand, 6 volatile: all three insights fire.
	var board []agronomy.MarketQuote
	for i := 0; i < 7; i++ {
		board = append(board, quote(1, 6, agronomy.DemandMedium))
	}
	for i := 0; i < 3; i++ {
		board = append(board, quote(-1, -2, agronomy.DemandHigh))
	}
	board[0].DemandLevel = agronomy.DemandHigh
	board[6].PriceChangePercent = 2

	insights := MarketInsights(board)
	if len(insights) != 3 {
		t.Fatalf("len(insights) = %d, want 3: %v", len(insights), insights)
	}
	if insights[0].Type != "market_sentiment" || insights[0].Impact != "positive" {
		t.Errorf("insights[0] = %+v", insights[0])
	}
	if insights[1].Type != "demand_analysis" {
		t.Errorf("insights[1] = %+v", insights[1])
	}
	if insights[1].Message != "Multiple crops (4) showing high demand - good selling opportunity" {
		t.Errorf("insights[1].Message = %q", insights[1].Message)
	}
	if insights[2].Type != "volatility_warning" || insights[2].Impact != "warning" {
		t.Errorf("insights[2] = %+v", insights[2])
	}

	// A balanced board yields no sentiment insight.
	balanced := []agronomy.MarketQuote{
		quote(1, 1, agronomy.DemandLow),
		quote(-1, -1, agronomy.DemandLow),
	}
	if got := MarketInsights(balanced); len(got) != 0 {
		t.Errorf("MarketInsights(balanced) = %v, want none", got)
	}

	if got := MarketInsights(nil); len(got) != 0 {
		t.Errorf("MarketInsights(nil) = %v, want none", got)
	}
}

func TestRecommendCrops(t *testing.T) {
	board := []agronomy.MarketQuote{
		{
			Crop: "wheat", CurrentPrice: 100, Unit: "per_quintal",
			MarketTrend: agronomy.TrendRising, DemandLevel: agronomy.DemandHigh,
			SupplyLevel: "low", Seasonality: agronomy.SeasonWinter,
		},
		{
			Crop: "corn", CurrentPrice: 900, Unit: "per_quintal",
			MarketTrend: agronomy.TrendStable, DemandLevel: agronomy.DemandMedium,
			SupplyLevel: "medium", Seasonality: agronomy.SeasonSummer,
		},
		{
			Crop: "banana", CurrentPrice: 2000, Unit: "per_kg",
			MarketTrend: agronomy.TrendFalling, DemandLevel: agronomy.DemandLow,
			SupplyLevel: "high", Seasonality: agronomy.SeasonYearRound,
		},
	}

	picks := RecommendCrops(board, MarketRequest{FarmSize: 1, Budget: 10000})
	if len(picks) != 2 {
		t.Fatalf("len(picks) = %d, want 2 (banana scores zero)", len(picks))
	}

	// wheat: rising 30 + high demand 25 + low supply 20 + within budget 15.
	if picks[0].Crop != "wheat" || picks[0].Score != 90 {
		t.Errorf("picks[0] = %s/%d, want wheat/90", picks[0].Crop, picks[0].Score)
	}
	if picks[0].EstimatedCost != 1000 {
		t.Errorf("wheat EstimatedCost = %v, want 1000", picks[0].EstimatedCost)
	}
	wantReasons := []string{"Price is rising", "High demand", "Low supply", "Within budget"}
	if !reflect.DeepEqual(picks[0].Reasons, wantReasons) {
		t.Errorf("wheat Reasons = %v, want %v", picks[0].Reasons, wantReasons)
	}

	// corn: stable 20 + medium demand 15 + medium supply 10; cost 9000
	// is within budget for 15 more.
	if picks[1].Crop != "corn" || picks[1].Score != 60 {
		t.Errorf("picks[1] = %s/%d, want corn/60", picks[1].Crop, picks[1].Score)
	}

	// Season filter keeps only matching seasonality.
	winter := RecommendCrops(board, MarketRequest{Season: "winter"})
	if len(winter) != 1 || winter[0].Crop != "wheat" {
		t.Errorf("winter picks = %v, want wheat only", winter)
	}

	// Slightly-over-budget bucket: corn costs 9000 against a 8000 budget.
	tight := RecommendCrops(board[1:2], MarketRequest{FarmSize: 1, Budget: 8000})
	if len(tight) != 1 || tight[0].Score != 50 {
		t.Fatalf("tight picks = %v, want corn/50", tight)
	}
	found := false
	for _, r := range tight[0].Reasons {
		if r == "Slightly over budget" {
			found = true
		}
	}
	if !found {
		t.Errorf("tight Reasons = %v, want Slightly over budget", tight[0].Reasons)
	}
}

func TestRecommendCropsDefaults(t *testing.T) {
	board := []agronomy.MarketQuote{{
		Crop: "potato", CurrentPrice: 500,
		MarketTrend: agronomy.TrendStable, DemandLevel: agronomy.DemandMedium,
		SupplyLevel: "medium", Seasonality: agronomy.SeasonWinter,
	}}

	// Zero-valued request falls back to 1 acre and a 10000 budget, so
	// the 5000 estimated cost lands within budget.
	picks := RecommendCrops(board, MarketRequest{})
	if len(picks) != 1 || picks[0].Score != 60 {
		t.Fatalf("picks = %v, want potato/60", picks)
	}
	if picks[0].EstimatedCost != 5000 {
		t.Errorf("EstimatedCost = %v, want 5000", picks[0].EstimatedCost)
	}
}
