package agrodata

import (
	"reflect"
	"testing"
)

func TestSoilSampleRanges(t *testing.T) {
	p := testProvider(6)
	s := p.SoilSample(19.0, 75.0)

	// Baselines: pH 6.5 + 19*0.01 + 75*0.005 = 7.065, moisture
	// 0.3 + 19*0.001 + 75*0.002 = 0.469; both jittered.
	if s.PH < 6.56 || s.PH > 7.57 {
		t.Errorf("PH = %v outside [6.56, 7.57]", s.PH)
	}
	if s.Moisture < 0.369 || s.Moisture > 0.569 {
		t.Errorf("Moisture = %v outside [0.369, 0.569]", s.Moisture)
	}
	if s.OrganicMatter < 2 || s.OrganicMatter > 8 {
		t.Errorf("OrganicMatter = %v outside [2, 8]", s.OrganicMatter)
	}
	if s.Nitrogen < 0.1 || s.Nitrogen > 0.5 {
		t.Errorf("Nitrogen = %v outside [0.1, 0.5]", s.Nitrogen)
	}
	if s.Phosphorus < 10 || s.Phosphorus > 50 {
		t.Errorf("Phosphorus = %v outside [10, 50]", s.Phosphorus)
	}
	if s.Potassium < 100 || s.Potassium > 400 {
		t.Errorf("Potassium = %v outside [100, 400]", s.Potassium)
	}
	if s.Depth < 30 || s.Depth > 150 {
		t.Errorf("Depth = %v outside [30, 150]", s.Depth)
	}

	types := map[string]bool{"Clay": true, "Sandy": true, "Loamy": true, "Silty": true}
	if !types[s.SoilType] {
		t.Errorf("SoilType = %q", s.SoilType)
	}
	ratings := map[string]bool{"Low": true, "Medium": true, "High": true}
	if !ratings[s.FertilityRating] {
		t.Errorf("FertilityRating = %q", s.FertilityRating)
	}
	if s.LastUpdated != "2026-01-15T10:30:00Z" {
		t.Errorf("LastUpdated = %q", s.LastUpdated)
	}
}

func TestSoilSampleMetrics(t *testing.T) {
	s := SoilSample{
		PH:            6.8,
		Moisture:      0.35,
		OrganicMatter: 4.2,
		Nitrogen:      0.3,
		Phosphorus:    25,
		Potassium:     210,
		Calcium:       2400,
		Magnesium:     310,
		SoilType:      "Loamy",
	}
	m := s.Metrics()
	if m.PH != 6.8 || m.Moisture != 0.35 || m.SoilType != "Loamy" {
		t.Errorf("Metrics() = %+v", m)
	}
	if m.Potassium != 210 || m.Magnesium != 310 {
		t.Errorf("Metrics() nutrients = %+v", m)
	}
}

func TestSoilSampleDeterministic(t *testing.T) {
	a := testProvider(8).SoilSample(10, 20)
	b := testProvider(8).SoilSample(10, 20)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different samples")
	}
}
