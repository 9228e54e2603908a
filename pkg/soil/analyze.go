package soil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// Analyze classifies a soil reading and derives prioritized
// recommendations. All inputs are optional: absent fields take
// documented defaults, so a partial lab report still analyzes.
func Analyze(m agronomy.SoilMetrics) *Report {
	m = normalize(m)

	analysis := Analysis{
		FertilityLevel:      strings.ToLower(ClassifyFertility(m)),
		SoilType:            ClassifyType(m),
		Drainage:            ClassifyDrainage(m),
		Texture:             ClassifyTexture(m),
		NutrientBalance:     NutrientBalance(m.Nitrogen, m.Phosphorus, m.Potassium),
		OrganicMatterStatus: OrganicMatterStatus(m.OrganicMatter),
	}
	if m.PH >= 6.0 && m.PH <= 7.5 {
		analysis.PHStatus = "optimal"
	} else {
		analysis.PHStatus = "needs_adjustment"
	}
	if m.Moisture >= 0.2 && m.Moisture <= 0.4 {
		analysis.MoistureStatus = "adequate"
	} else {
		analysis.MoistureStatus = "needs_attention"
	}

	analysis.Recommendations = recommendations(m, analysis)

	score := QualityScore(m)
	return &Report{
		Analysis:     analysis,
		QualityScore: score,
		Summary:      summarize(analysis, m, score),
	}
}

func recommendations(m agronomy.SoilMetrics, analysis Analysis) []Recommendation {
	var recs []Recommendation

	switch {
	case m.PH < 6.0:
		recs = append(recs, Recommendation{
			Type:     "ph_adjustment",
			Priority: "high",
			Message:  fmt.Sprintf("Soil pH is too acidic (%.1f). Consider adding lime to raise pH.", m.PH),
			Action:   "Apply 2-4 tons of agricultural lime per acre",
			TargetPH: "6.5-7.0",
		})
	case m.PH > 7.5:
		recs = append(recs, Recommendation{
			Type:     "ph_adjustment",
			Priority: "medium",
			Message:  fmt.Sprintf("Soil pH is too alkaline (%.1f). Consider adding sulfur or organic matter.", m.PH),
			Action:   "Apply elemental sulfur or compost to lower pH",
			TargetPH: "6.5-7.0",
		})
	default:
		recs = append(recs, Recommendation{
			Type:     "ph_maintenance",
			Priority: "low",
			Message:  fmt.Sprintf("Soil pH is optimal (%.1f). Maintain current levels.", m.PH),
			Action:   "Continue current pH management practices",
		})
	}

	if m.Nitrogen < 0.2 {
		recs = append(recs, Recommendation{
			Type:        "nutrient_deficiency",
			Priority:    "high",
			Message:     fmt.Sprintf("Low nitrogen levels detected (%.2f%%).", m.Nitrogen),
			Action:      "Apply nitrogen-rich fertilizer (urea, ammonium nitrate) or organic matter",
			TargetRange: "0.3-0.5%",
		})
	} else if m.Nitrogen > 0.5 {
		recs = append(recs, Recommendation{
			Type:     "nutrient_excess",
			Priority: "medium",
			Message:  fmt.Sprintf("High nitrogen levels detected (%.2f%%).", m.Nitrogen),
			Action:   "Reduce nitrogen application and focus on other nutrients",
		})
	}

	if m.Phosphorus < 20 {
		recs = append(recs, Recommendation{
			Type:        "nutrient_deficiency",
			Priority:    "medium",
			Message:     fmt.Sprintf("Low phosphorus levels detected (%s ppm).", trimFloat(m.Phosphorus)),
			Action:      "Apply phosphorus-rich fertilizer (superphosphate, bone meal)",
			TargetRange: "30-50 ppm",
		})
	} else if m.Phosphorus > 60 {
		recs = append(recs, Recommendation{
			Type:     "nutrient_excess",
			Priority: "low",
			Message:  fmt.Sprintf("High phosphorus levels detected (%s ppm).", trimFloat(m.Phosphorus)),
			Action:   "Reduce phosphorus application",
		})
	}

	if m.Potassium < 150 {
		recs = append(recs, Recommendation{
			Type:        "nutrient_deficiency",
			Priority:    "medium",
			Message:     fmt.Sprintf("Low potassium levels detected (%s ppm).", trimFloat(m.Potassium)),
			Action:      "Apply potassium-rich fertilizer (potash, wood ash)",
			TargetRange: "200-300 ppm",
		})
	} else if m.Potassium > 400 {
		recs = append(recs, Recommendation{
			Type:     "nutrient_excess",
			Priority: "low",
			Message:  fmt.Sprintf("High potassium levels detected (%s ppm).", trimFloat(m.Potassium)),
			Action:   "Reduce potassium application",
		})
	}

	if m.OrganicMatter < 2.0 {
		recs = append(recs, Recommendation{
			Type:        "organic_matter",
			Priority:    "high",
			Message:     fmt.Sprintf("Low organic matter content (%.1f%%).", m.OrganicMatter),
			Action:      "Add compost, manure, or cover crops to improve soil structure",
			TargetRange: "3-5%",
		})
	} else if m.OrganicMatter > 8.0 {
		recs = append(recs, Recommendation{
			Type:     "organic_matter",
			Priority: "low",
			Message:  fmt.Sprintf("Very high organic matter content (%.1f%%).", m.OrganicMatter),
			Action:   "Monitor for potential nutrient imbalances",
		})
	}

	if m.Moisture < 0.2 {
		recs = append(recs, Recommendation{
			Type:        "irrigation",
			Priority:    "high",
			Message:     fmt.Sprintf("Soil moisture is low (%.1f%%).", m.Moisture*100),
			Action:      "Increase irrigation frequency or amount",
			TargetRange: "20-40%",
		})
	} else if m.Moisture > 0.4 {
		recs = append(recs, Recommendation{
			Type:        "drainage",
			Priority:    "medium",
			Message:     fmt.Sprintf("Soil moisture is high (%.1f%%).", m.Moisture*100),
			Action:      "Improve drainage or reduce irrigation",
			TargetRange: "20-40%",
		})
	}

	switch analysis.SoilType {
	case "Clay":
		recs = append(recs, Recommendation{
			Type:     "soil_management",
			Priority: "medium",
			Message:  "Clay soil detected. Focus on improving drainage and aeration.",
			Action:   "Add sand or organic matter, avoid over-tilling when wet",
		})
	case "Sandy":
		recs = append(recs, Recommendation{
			Type:     "soil_management",
			Priority: "medium",
			Message:  "Sandy soil detected. Focus on water retention and nutrient holding.",
			Action:   "Add organic matter and use frequent, light irrigation",
		})
	}

	if analysis.Drainage == "Poor" {
		recs = append(recs, Recommendation{
			Type:     "drainage_improvement",
			Priority: "high",
			Message:  "Poor drainage detected. This can lead to root problems.",
			Action:   "Install drainage systems or create raised beds",
		})
	}

	return recs
}

func summarize(analysis Analysis, m agronomy.SoilMetrics, score float64) Summary {
	var status, message string
	switch {
	case score >= 80:
		status = "excellent"
		message = "Your soil is in excellent condition for crop production."
	case score >= 60:
		status = "good"
		message = "Your soil is in good condition with some areas for improvement."
	case score >= 40:
		status = "fair"
		message = "Your soil needs attention to improve crop productivity."
	default:
		status = "poor"
		message = "Your soil requires significant improvement for optimal crop growth."
	}

	var priority []Recommendation
	for _, rec := range analysis.Recommendations {
		if rec.Priority == "high" {
			priority = append(priority, rec)
		}
	}

	return Summary{
		OverallStatus: status,
		StatusMessage: message,
		QualityScore:  score,
		KeyCharacteristics: KeyCharacteristics{
			PHLevel:  fmt.Sprintf("%.1f", m.PH),
			Fertility: analysis.FertilityLevel,
			SoilType: analysis.SoilType,
			Drainage: analysis.Drainage,
		},
		PriorityActions:      priority,
		TotalRecommendations: len(analysis.Recommendations),
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
