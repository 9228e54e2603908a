package agrodata

import (
	"time"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// SoilSample is a synthetic field reading for one coordinate pair.
type SoilSample struct {
	PH              float64 `json:"ph"`
	Moisture        float64 `json:"moisture"`
	OrganicMatter   float64 `json:"organic_matter"`
	Nitrogen        float64 `json:"nitrogen"`
	Phosphorus      float64 `json:"phosphorus"`
	Potassium       float64 `json:"potassium"`
	Calcium         float64 `json:"calcium"`
	Magnesium       float64 `json:"magnesium"`
	SoilType        string  `json:"soil_type"`
	Drainage        string  `json:"drainage"`
	Texture         string  `json:"texture"`
	Depth           float64 `json:"depth"`
	FertilityRating string  `json:"fertility_rating"`
	LastUpdated     string  `json:"last_updated"`
}

// Metrics converts the sample into the shared scoring input form.
func (s SoilSample) Metrics() agronomy.SoilMetrics {
	return agronomy.SoilMetrics{
		PH:            s.PH,
		Moisture:      s.Moisture,
		OrganicMatter: s.OrganicMatter,
		Nitrogen:      s.Nitrogen,
		Phosphorus:    s.Phosphorus,
		Potassium:     s.Potassium,
		Calcium:       s.Calcium,
		Magnesium:     s.Magnesium,
		SoilType:      s.SoilType,
	}
}

// SoilSample generates a reading for the given coordinates. The pH and
// moisture baselines shift with latitude and longitude so nearby farms
// get similar soil.
func (p *Provider) SoilSample(latitude, longitude float64) SoilSample {
	basePH := 6.5 + latitude*0.01 + longitude*0.005
	baseMoisture := 0.3 + latitude*0.001 + longitude*0.002

	return SoilSample{
		PH:              round2(basePH + p.uniform(-0.5, 0.5)),
		Moisture:        round3(baseMoisture + p.uniform(-0.1, 0.1)),
		OrganicMatter:   round2(p.uniform(2.0, 8.0)),
		Nitrogen:        round3(p.uniform(0.1, 0.5)),
		Phosphorus:      round1(p.uniform(10, 50)),
		Potassium:       round1(p.uniform(100, 400)),
		Calcium:         round1(p.uniform(1000, 5000)),
		Magnesium:       round1(p.uniform(100, 500)),
		SoilType:        p.pick([]string{"Clay", "Sandy", "Loamy", "Silty"}),
		Drainage:        p.pick([]string{"Poor", "Moderate", "Good", "Excellent"}),
		Texture:         p.pick([]string{"Fine", "Medium", "Coarse"}),
		Depth:           round1(p.uniform(30, 150)),
		FertilityRating: p.pick([]string{"Low", "Medium", "High"}),
		LastUpdated:     p.now().Format(time.RFC3339),
	}
}
