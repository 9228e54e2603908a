package soil

import "github.com/agriscope/agriscope/pkg/agronomy"

// Defaults substituted for absent composition fields before classification.
const (
	defaultClay          = 30.0
	defaultSand          = 40.0
	defaultSilt          = 30.0
	defaultOrganicMatter = 2.0
	defaultNitrogen      = 0.2
	defaultPhosphorus    = 20.0
	defaultPotassium     = 150.0
)

func normalize(m agronomy.SoilMetrics) agronomy.SoilMetrics {
	if m.PH == 0 {
		m.PH = agronomy.DefaultPH
	}
	if m.Moisture == 0 {
		m.Moisture = agronomy.DefaultMoisture
	}
	if m.OrganicMatter == 0 {
		m.OrganicMatter = defaultOrganicMatter
	}
	if m.Nitrogen == 0 {
		m.Nitrogen = defaultNitrogen
	}
	if m.Phosphorus == 0 {
		m.Phosphorus = defaultPhosphorus
	}
	if m.Potassium == 0 {
		m.Potassium = defaultPotassium
	}
	if m.Clay == 0 && m.Sand == 0 && m.Silt == 0 {
		m.Clay, m.Sand, m.Silt = defaultClay, defaultSand, defaultSilt
	}
	return m
}

// ClassifyType buckets the reading by particle composition.
func ClassifyType(m agronomy.SoilMetrics) string {
	m = normalize(m)
	switch {
	case m.Clay >= 40:
		return "Clay"
	case m.Sand >= 70:
		return "Sandy"
	case m.Silt >= 50:
		return "Silty"
	case m.Clay >= 20 && m.Clay <= 40 && m.Sand >= 20 && m.Sand <= 50 && m.Silt >= 20 && m.Silt <= 50:
		return "Loamy"
	default:
		return "Mixed"
	}
}

// ClassifyDrainage rates drainage from sand and clay content.
func ClassifyDrainage(m agronomy.SoilMetrics) string {
	m = normalize(m)
	switch {
	case m.Sand >= 60:
		return "Excellent"
	case m.Sand >= 40:
		return "Good"
	case m.Clay >= 50:
		return "Poor"
	default:
		return "Moderate"
	}
}

// ClassifyTexture buckets the reading by dominant particle size.
func ClassifyTexture(m agronomy.SoilMetrics) string {
	m = normalize(m)
	switch {
	case m.Clay >= 40:
		return "Fine"
	case m.Sand >= 60:
		return "Coarse"
	default:
		return "Medium"
	}
}

// ClassifyFertility rates fertility on a four-point nutrient check.
func ClassifyFertility(m agronomy.SoilMetrics) string {
	m = normalize(m)
	score := 0
	if m.OrganicMatter >= 4.0 {
		score++
	}
	if m.Nitrogen >= 0.3 {
		score++
	}
	if m.Phosphorus >= 30 {
		score++
	}
	if m.Potassium >= 200 {
		score++
	}
	switch {
	case score >= 3:
		return "High"
	case score >= 2:
		return "Medium"
	default:
		return "Low"
	}
}

// NutrientBalance rates the N-P-K profile as a whole.
func NutrientBalance(nitrogen, phosphorus, potassium float64) string {
	score := 0
	if nitrogen >= 0.3 {
		score++
	}
	if phosphorus >= 30 {
		score++
	}
	if potassium >= 200 {
		score++
	}
	switch score {
	case 3:
		return "excellent"
	case 2:
		return "good"
	case 1:
		return "fair"
	default:
		return "poor"
	}
}

// OrganicMatterStatus rates organic matter content.
func OrganicMatterStatus(organicMatter float64) string {
	switch {
	case organicMatter >= 5.0:
		return "excellent"
	case organicMatter >= 3.0:
		return "good"
	case organicMatter >= 2.0:
		return "fair"
	default:
		return "poor"
	}
}
