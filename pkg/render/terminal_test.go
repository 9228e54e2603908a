package render_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/agriscope/agriscope/pkg/agronomy"
	"github.com/agriscope/agriscope/pkg/render"
	"github.com/agriscope/agriscope/pkg/scoring"
	"github.com/agriscope/agriscope/pkg/soil"
)

func sampleResult() *scoring.Result {
	return &scoring.Result{
		TotalCropsAnalyzed: 10,
		Recommendations: []scoring.Recommendation{
			{
				Crop:             "wheat",
				SuitabilityScore: 100,
				Confidence:       83,
				EstimatedYield:   6000,
				EstimatedCost:    30000,
				EstimatedRevenue: 1500000,
				EstimatedProfit:  1470000,
				ProfitMargin:     98,
				Factors:          []string{"Optimal soil pH", "Optimal temperature", "Suitable soil type"},
				MarketData: &agronomy.MarketQuote{
					Crop:         "wheat",
					CurrentPrice: 250,
					Unit:         "per_quintal",
					DemandLevel:  agronomy.DemandHigh,
					MarketTrend:  agronomy.TrendRising,
				},
				Recommendation: "Highly recommended crop with 100% suitability and 83% confidence.",
			},
			{
				Crop:             "potato",
				SuitabilityScore: 45,
				Confidence:       40,
				EstimatedYield:   11250,
				EstimatedCost:    35000,
				Factors:          []string{"Suboptimal soil pH"},
			},
		},
	}
}

func TestTerminalRenderer_BasicOutput(t *testing.T) {
	// Set NO_COLOR to avoid ANSI codes in test comparison
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := &render.TerminalRenderer{}
	var buf bytes.Buffer

	err := r.Render(&buf, sampleResult())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	output := buf.String()

	// Check header
	if !strings.Contains(output, "2 suitable crops (of 10 analyzed)") {
		t.Error("expected crop counts in header")
	}

	// Check entries
	if !strings.Contains(output, "wheat") {
		t.Error("expected wheat entry")
	}
	if !strings.Contains(output, "suitability 100.0, confidence 83.0") {
		t.Error("expected wheat scores")
	}
	if !strings.Contains(output, "Optimal soil pH; Optimal temperature; Suitable soil type") {
		t.Error("expected joined factor list")
	}

	// Check economics
	if !strings.Contains(output, "yield 6000.00 kg, cost 30000.00, profit 1470000.00 (98.00% margin)") {
		t.Error("expected economics line")
	}

	// Check market line
	if !strings.Contains(output, "market: rising prices, high demand @ 250.00 per_quintal") {
		t.Error("expected market line")
	}

	// Second entry has no market data, so only one market line
	if strings.Count(output, "market:") != 1 {
		t.Error("expected exactly one market line")
	}
}

func TestTerminalRenderer_Empty(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	r := &render.TerminalRenderer{}
	var buf bytes.Buffer

	result := &scoring.Result{TotalCropsAnalyzed: 10}
	if err := r.Render(&buf, result); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.Contains(buf.String(), "No suitable crops") {
		t.Error("expected 'No suitable crops' message")
	}
}

func TestTerminalRenderer_ColorRespected(t *testing.T) {
	// Without NO_COLOR, output should have ANSI codes
	os.Unsetenv("NO_COLOR")

	r := &render.TerminalRenderer{}
	var buf bytes.Buffer

	if err := r.Render(&buf, sampleResult()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.Contains(buf.String(), "\033[") {
		t.Error("expected ANSI escape codes when NO_COLOR is not set")
	}
}

func TestTerminalRenderer_SoilReport(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	report := &soil.Report{
		QualityScore: 85,
		Summary: soil.Summary{
			OverallStatus: "excellent",
			StatusMessage: "Your soil is in excellent condition for most crops.",
			KeyCharacteristics: soil.KeyCharacteristics{
				PHLevel:   "6.5",
				Fertility: "High",
				SoilType:  "Loamy",
				Drainage:  "Good",
			},
		},
		Analysis: soil.Analysis{
			Recommendations: []soil.Recommendation{
				{
					Type:     "ph_adjustment",
					Priority: "high",
					Message:  "Soil pH is too acidic for most crops",
					Action:   "Apply agricultural lime to raise pH",
				},
			},
		},
	}

	r := &render.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.RenderSoilReport(&buf, report); err != nil {
		t.Fatalf("RenderSoilReport() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Soil quality: excellent — score 85") {
		t.Error("expected quality header")
	}
	if !strings.Contains(output, "Loamy / Good drainage / High fertility / pH 6.5") {
		t.Error("expected characteristics line")
	}
	if !strings.Contains(output, "[high] Soil pH is too acidic for most crops") {
		t.Error("expected recommendation line")
	}
}

func TestTerminalRenderer_MarketBoard(t *testing.T) {
	os.Setenv("NO_COLOR", "1")
	defer os.Unsetenv("NO_COLOR")

	board := []agronomy.MarketQuote{
		{Crop: "wheat", CurrentPrice: 300, Unit: "per_quintal", PriceChangePercent: 4.2, MarketTrend: agronomy.TrendRising, DemandLevel: agronomy.DemandHigh},
		{Crop: "onion", CurrentPrice: 22.5, Unit: "per_kg", PriceChangePercent: -1.8, MarketTrend: agronomy.TrendFalling, DemandLevel: agronomy.DemandLow},
	}

	r := &render.TerminalRenderer{}
	var buf bytes.Buffer
	if err := r.RenderMarketBoard(&buf, board); err != nil {
		t.Fatalf("RenderMarketBoard() error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Market board: 2 crops") {
		t.Error("expected board header")
	}
	if !strings.Contains(output, "+4.20%") {
		t.Error("expected positive change with sign")
	}
	if !strings.Contains(output, "-1.80%") {
		t.Error("expected negative change")
	}
	if !strings.Contains(output, "high demand") {
		t.Error("expected demand level")
	}
}
