package scoring_test

import (
	"testing"

	"github.com/agriscope/agriscope/pkg/agronomy"
	"github.com/agriscope/agriscope/pkg/scoring"
)

func wheatProfile(t *testing.T) agronomy.CropProfile {
	t.Helper()
	p, ok := agronomy.ProfileFor("wheat")
	if !ok {
		t.Fatal("wheat profile missing")
	}
	return p
}

func snapshot(soil agronomy.SoilMetrics, weather agronomy.WeatherMetrics, market []agronomy.MarketQuote) *agronomy.EnvironmentSnapshot {
	env := &agronomy.EnvironmentSnapshot{Soil: soil, Weather: weather, Market: market}
	env.Normalize()
	return env
}

func TestPHFactorBuckets(t *testing.T) {
	w := scoring.Defaults()
	f := &scoring.PHFactor{Optimal: w.PHOptimal, Near: w.PHNear, Off: w.PHOff, Tolerance: w.PHTolerance}
	wheat := wheatProfile(t)

	cases := []struct {
		ph     float64
		points float64
		note   string
	}{
		{6.5, 25, "Optimal soil pH"},
		{6.0, 25, "Optimal soil pH"}, // bounds are inclusive
		{7.5, 25, "Optimal soil pH"},
		{5.5, 15, "Good soil pH"}, // exactly at tolerance below the low bound
		{8.0, 15, "Good soil pH"},
		{5.4, 5, "Suboptimal soil pH"},
		{9.0, 5, "Suboptimal soil pH"},
	}
	for _, tc := range cases {
		env := snapshot(agronomy.SoilMetrics{PH: tc.ph}, agronomy.WeatherMetrics{}, nil)
		fr := f.Evaluate(wheat, env)
		if fr.Points != tc.points {
			t.Errorf("pH %.1f: points = %v, want %v", tc.ph, fr.Points, tc.points)
		}
		if len(fr.Notes) != 1 || fr.Notes[0] != tc.note {
			t.Errorf("pH %.1f: notes = %v, want [%s]", tc.ph, fr.Notes, tc.note)
		}
	}
}

func TestTemperatureFactorBuckets(t *testing.T) {
	w := scoring.Defaults()
	f := &scoring.TemperatureFactor{Optimal: w.TempOptimal, Near: w.TempNear, Off: w.TempOff, Tolerance: w.TempTolerance}
	wheat := wheatProfile(t) // optimal 15-25

	cases := []struct {
		temp   float64
		points float64
		note   string
	}{
		{20, 20, "Optimal temperature"},
		{15, 20, "Optimal temperature"},
		{28, 10, "Acceptable temperature"},
		{12, 10, "Acceptable temperature"},
		{35, 0, "Suboptimal temperature"},
	}
	for _, tc := range cases {
		env := snapshot(agronomy.SoilMetrics{}, agronomy.WeatherMetrics{Temperature: tc.temp}, nil)
		fr := f.Evaluate(wheat, env)
		if fr.Points != tc.points {
			t.Errorf("temp %.0f: points = %v, want %v", tc.temp, fr.Points, tc.points)
		}
		if len(fr.Notes) != 1 || fr.Notes[0] != tc.note {
			t.Errorf("temp %.0f: notes = %v, want [%s]", tc.temp, fr.Notes, tc.note)
		}
	}
}

func TestSoilTypeFactorCaseInsensitive(t *testing.T) {
	f := &scoring.SoilTypeFactor{Match: 15, Mismatch: 5}
	wheat := wheatProfile(t) // loamy, clay

	env := snapshot(agronomy.SoilMetrics{SoilType: "Loamy"}, agronomy.WeatherMetrics{}, nil)
	if fr := f.Evaluate(wheat, env); fr.Points != 15 {
		t.Errorf("mixed-case texture should still match, points = %v", fr.Points)
	}

	env = snapshot(agronomy.SoilMetrics{SoilType: "sandy"}, agronomy.WeatherMetrics{}, nil)
	fr := f.Evaluate(wheat, env)
	if fr.Points != 5 || fr.Notes[0] != "Less suitable soil type" {
		t.Errorf("sandy soil for wheat: %v %v", fr.Points, fr.Notes)
	}
}

func TestMoistureFactorBands(t *testing.T) {
	f := &scoring.MoistureFactor{Match: 15, Off: 5}

	rice, _ := agronomy.ProfileFor("rice")     // high
	wheat := wheatProfile(t)                   // medium
	potato, _ := agronomy.ProfileFor("potato") // medium

	// High requirement needs moisture strictly above 0.3.
	env := snapshot(agronomy.SoilMetrics{Moisture: 0.3}, agronomy.WeatherMetrics{}, nil)
	if fr := f.Evaluate(rice, env); fr.Points != 5 {
		t.Errorf("moisture 0.3 should not satisfy high requirement, points = %v", fr.Points)
	}
	env = snapshot(agronomy.SoilMetrics{Moisture: 0.31}, agronomy.WeatherMetrics{}, nil)
	if fr := f.Evaluate(rice, env); fr.Points != 15 {
		t.Errorf("moisture 0.31 should satisfy high requirement, points = %v", fr.Points)
	}

	// Medium requirement band is inclusive on both ends.
	for _, m := range []float64{0.2, 0.3, 0.4} {
		env = snapshot(agronomy.SoilMetrics{Moisture: m}, agronomy.WeatherMetrics{}, nil)
		if fr := f.Evaluate(wheat, env); fr.Points != 15 {
			t.Errorf("moisture %.2f should satisfy medium requirement, points = %v", m, fr.Points)
		}
	}
	env = snapshot(agronomy.SoilMetrics{Moisture: 0.45}, agronomy.WeatherMetrics{}, nil)
	fr := f.Evaluate(potato, env)
	if fr.Points != 5 || fr.Notes[0] != "Moisture may need adjustment" {
		t.Errorf("moisture 0.45 for medium requirement: %v %v", fr.Points, fr.Notes)
	}
}

func TestMarketFactorNoQuote(t *testing.T) {
	w := scoring.Defaults()
	f := &scoring.MarketFactor{
		DemandHigh: w.DemandHigh, DemandMedium: w.DemandMedium, DemandLow: w.DemandLow,
		TrendRising: w.TrendRising, TrendStable: w.TrendStable,
	}
	wheat := wheatProfile(t)

	env := snapshot(agronomy.SoilMetrics{}, agronomy.WeatherMetrics{}, nil)
	fr := f.Evaluate(wheat, env)
	if fr.Points != 0 || len(fr.Notes) != 0 {
		t.Errorf("missing quote must contribute nothing: %v %v", fr.Points, fr.Notes)
	}

	env = snapshot(agronomy.SoilMetrics{}, agronomy.WeatherMetrics{}, []agronomy.MarketQuote{
		{Crop: "wheat", DemandLevel: agronomy.DemandHigh, MarketTrend: agronomy.TrendRising},
	})
	fr = f.Evaluate(wheat, env)
	if fr.Points != 25 {
		t.Errorf("high demand + rising prices = %v, want 25", fr.Points)
	}
	if len(fr.Notes) != 2 || fr.Notes[0] != "High market demand" || fr.Notes[1] != "Rising prices" {
		t.Errorf("notes = %v", fr.Notes)
	}

	// Falling trend contributes demand points only.
	env = snapshot(agronomy.SoilMetrics{}, agronomy.WeatherMetrics{}, []agronomy.MarketQuote{
		{Crop: "wheat", DemandLevel: agronomy.DemandLow, MarketTrend: agronomy.TrendFalling},
	})
	fr = f.Evaluate(wheat, env)
	if fr.Points != 5 || len(fr.Notes) != 1 {
		t.Errorf("low demand + falling = %v %v", fr.Points, fr.Notes)
	}
}
