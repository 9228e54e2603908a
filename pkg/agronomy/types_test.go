package agronomy_test

import (
	"encoding/json"
	"testing"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

func TestProfilesComplete(t *testing.T) {
	profiles := agronomy.Profiles()
	if len(profiles) != 10 {
		t.Fatalf("expected 10 built-in profiles, got %d", len(profiles))
	}
	for _, p := range profiles {
		if p.Name == "" {
			t.Fatal("profile with empty name")
		}
		if p.OptimalPH.Low >= p.OptimalPH.High {
			t.Errorf("%s: inverted pH range %v", p.Name, p.OptimalPH)
		}
		if p.OptimalTemp.Low >= p.OptimalTemp.High {
			t.Errorf("%s: inverted temp range %v", p.Name, p.OptimalTemp)
		}
		if len(p.SoilTypes) == 0 {
			t.Errorf("%s: no compatible soil types", p.Name)
		}
		if p.BaseYieldPerAcre <= 0 || p.BaseCostPerAcre <= 0 {
			t.Errorf("%s: missing base economics", p.Name)
		}
	}
}

func TestProfileOutlookLabels(t *testing.T) {
	cases := []struct {
		crop   string
		yield  string
		demand agronomy.DemandLevel
		profit string
	}{
		{"wheat", "high", agronomy.DemandHigh, "medium"},
		{"rice", "high", agronomy.DemandHigh, "medium"},
		{"corn", "high", agronomy.DemandHigh, "medium"},
		{"sugarcane", "very_high", agronomy.DemandMedium, "high"},
		{"cotton", "medium", agronomy.DemandHigh, "high"},
		{"soybean", "medium", agronomy.DemandHigh, "medium"},
		{"potato", "high", agronomy.DemandHigh, "medium"},
		{"tomato", "high", agronomy.DemandHigh, "high"},
		{"mango", "high", agronomy.DemandHigh, "very_high"},
		{"banana", "very_high", agronomy.DemandHigh, "high"},
	}
	for _, tc := range cases {
		p, ok := agronomy.ProfileFor(tc.crop)
		if !ok {
			t.Fatalf("%s profile missing", tc.crop)
		}
		if p.YieldPotential != tc.yield {
			t.Errorf("%s yield potential = %s, want %s", tc.crop, p.YieldPotential, tc.yield)
		}
		if p.MarketDemand != tc.demand {
			t.Errorf("%s market demand = %s, want %s", tc.crop, p.MarketDemand, tc.demand)
		}
		if p.ProfitMargin != tc.profit {
			t.Errorf("%s profit margin = %s, want %s", tc.crop, p.ProfitMargin, tc.profit)
		}
	}
}

func TestProfileFor(t *testing.T) {
	p, ok := agronomy.ProfileFor("wheat")
	if !ok {
		t.Fatal("wheat profile missing")
	}
	if p.OptimalPH != (agronomy.Range{Low: 6.0, High: 7.5}) {
		t.Errorf("wheat pH range = %v", p.OptimalPH)
	}
	if p.Season != agronomy.SeasonWinter {
		t.Errorf("wheat season = %s", p.Season)
	}
	if p.WaterRequirement != agronomy.WaterMedium {
		t.Errorf("wheat water requirement = %s", p.WaterRequirement)
	}

	if _, ok := agronomy.ProfileFor("quinoa"); ok {
		t.Error("unknown crop should not resolve")
	}
}

func TestRangeBounds(t *testing.T) {
	r := agronomy.Range{Low: 6.0, High: 7.5}
	if !r.Contains(6.0) || !r.Contains(7.5) {
		t.Error("range bounds are inclusive")
	}
	if r.Contains(5.99) || r.Contains(7.51) {
		t.Error("values outside range accepted")
	}
	if !r.Near(5.5, 0.5) {
		t.Error("5.5 is within 0.5 of the lower bound")
	}
	if r.Near(5.4, 0.5) {
		t.Error("5.4 is outside the tolerance band")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	var env agronomy.EnvironmentSnapshot
	env.Normalize()
	if env.Soil.PH != 7.0 {
		t.Errorf("default pH = %v", env.Soil.PH)
	}
	if env.Soil.SoilType != "loamy" {
		t.Errorf("default soil type = %s", env.Soil.SoilType)
	}
	if env.Weather.Temperature != 25 {
		t.Errorf("default temperature = %v", env.Weather.Temperature)
	}
}

func TestNormalizeKeepsZeroMoisture(t *testing.T) {
	env := agronomy.EnvironmentSnapshot{
		Soil: agronomy.SoilMetrics{PH: 6.5, Moisture: 0, SoilType: "sandy"},
	}
	env.Normalize()
	if env.Soil.Moisture != 0 {
		t.Errorf("moisture = %v, want 0 preserved", env.Soil.Moisture)
	}
}

func TestSoilMetricsDecodeMoisture(t *testing.T) {
	cases := []struct {
		name string
		body string
		want float64
	}{
		{"absent", `{"ph": 6.5}`, 0.3},
		{"explicit zero", `{"ph": 6.5, "moisture": 0}`, 0},
		{"explicit value", `{"ph": 6.5, "moisture": 0.45}`, 0.45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m agronomy.SoilMetrics
			if err := json.Unmarshal([]byte(tc.body), &m); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if m.Moisture != tc.want {
				t.Errorf("moisture = %v, want %v", m.Moisture, tc.want)
			}
			if m.PH != 6.5 {
				t.Errorf("ph = %v, want 6.5", m.PH)
			}
		})
	}
}
