package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agriscope/agriscope/pkg/agronomy"
	"github.com/agriscope/agriscope/pkg/scoring"
	"github.com/agriscope/agriscope/pkg/soil"
)

// TerminalRenderer renders results as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func scoreColor(score float64) string {
	if noColor() {
		return ""
	}
	switch {
	case score >= 80:
		return colorGreen
	case score >= 60:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *scoring.Result) error {
	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Agriscope: %d suitable crops (of %d analyzed)",
			len(result.Recommendations), result.TotalCropsAnalyzed)))

	if len(result.Recommendations) == 0 {
		fmt.Fprintln(w, "No suitable crops for these conditions.")
		fmt.Fprintln(w)
		return nil
	}

	for i, rec := range result.Recommendations {
		score := fmt.Sprintf("%.1f", rec.SuitabilityScore)
		fmt.Fprintf(w, "%2d. %s — suitability %s, confidence %.1f\n",
			i+1, bold(rec.Crop), colored(score, scoreColor(rec.SuitabilityScore)), rec.Confidence)

		if len(rec.Factors) > 0 {
			fmt.Fprintf(w, "    %s\n", dim(strings.Join(rec.Factors, "; ")))
		}

		fmt.Fprintf(w, "    yield %.2f kg, cost %.2f, profit %.2f (%.2f%% margin)\n",
			rec.EstimatedYield, rec.EstimatedCost, rec.EstimatedProfit, rec.ProfitMargin)

		if q := rec.MarketData; q != nil {
			fmt.Fprintf(w, "    market: %s prices, %s demand @ %.2f %s\n",
				q.MarketTrend, q.DemandLevel, q.CurrentPrice, q.Unit)
		}

		if rec.Recommendation != "" {
			for _, line := range wrapText(rec.Recommendation, 70) {
				fmt.Fprintf(w, "    %s\n", dim(line))
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

// RenderSoilReport writes a soil analysis report in terminal form.
func (r *TerminalRenderer) RenderSoilReport(w io.Writer, report *soil.Report) error {
	s := report.Summary
	scoreStr := fmt.Sprintf("%.0f", report.QualityScore)
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Soil quality: %s — score %s",
			s.OverallStatus, colored(scoreStr, scoreColor(report.QualityScore)))))

	fmt.Fprintln(w, s.StatusMessage)
	fmt.Fprintln(w)

	kc := s.KeyCharacteristics
	fmt.Fprintf(w, "Type: %s / %s drainage / %s fertility / pH %s\n\n",
		kc.SoilType, kc.Drainage, kc.Fertility, kc.PHLevel)

	if len(report.Analysis.Recommendations) > 0 {
		fmt.Fprintln(w, "Recommendations:")
		for _, rec := range report.Analysis.Recommendations {
			fmt.Fprintf(w, "  • [%s] %s\n", rec.Priority, bold(rec.Message))
			for _, line := range wrapText(rec.Action, 70) {
				fmt.Fprintf(w, "    %s\n", dim(line))
			}
		}
		fmt.Fprintln(w)
	}

	return nil
}

// RenderMarketBoard writes a market quote board in terminal form.
func (r *TerminalRenderer) RenderMarketBoard(w io.Writer, board []agronomy.MarketQuote) error {
	fmt.Fprintf(w, "%s\n\n", bold(fmt.Sprintf("Market board: %d crops", len(board))))

	for _, q := range board {
		trendColor := ""
		sign := ""
		switch q.MarketTrend {
		case agronomy.TrendRising:
			trendColor = colorGreen
			sign = "+"
		case agronomy.TrendFalling:
			trendColor = colorRed
		}
		change := colored(fmt.Sprintf("%s%.2f%%", sign, q.PriceChangePercent), trendColor)
		fmt.Fprintf(w, "  %-12s %10.2f %-12s %s  %s demand\n",
			q.Crop, q.CurrentPrice, q.Unit, change, q.DemandLevel)
	}
	fmt.Fprintln(w)

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
