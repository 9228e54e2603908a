package soil

import "github.com/agriscope/agriscope/pkg/agronomy"

// QualityScore rates the overall reading 0-100. pH contributes up to 25
// points, moisture 20, organic matter 20, and nutrient balance 35.
func QualityScore(m agronomy.SoilMetrics) float64 {
	m = normalize(m)
	var score float64

	switch {
	case m.PH >= 6.0 && m.PH <= 7.5:
		score += 25
	case m.PH >= 5.5 && m.PH <= 8.0:
		score += 15
	case m.PH >= 5.0 && m.PH <= 9.0:
		score += 10
	default:
		score += 5
	}

	switch {
	case m.Moisture >= 0.2 && m.Moisture <= 0.4:
		score += 20
	case m.Moisture >= 0.15 && m.Moisture <= 0.45:
		score += 15
	case m.Moisture >= 0.1 && m.Moisture <= 0.5:
		score += 10
	default:
		score += 5
	}

	switch {
	case m.OrganicMatter >= 5.0:
		score += 20
	case m.OrganicMatter >= 3.0:
		score += 15
	case m.OrganicMatter >= 2.0:
		score += 10
	default:
		score += 5
	}

	nutrients := 0
	if m.Nitrogen >= 0.2 && m.Nitrogen <= 0.5 {
		nutrients++
	}
	if m.Phosphorus >= 20 && m.Phosphorus <= 60 {
		nutrients++
	}
	if m.Potassium >= 150 && m.Potassium <= 400 {
		nutrients++
	}
	switch nutrients {
	case 3:
		score += 35
	case 2:
		score += 25
	case 1:
		score += 15
	default:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}
