package disease

import "fmt"

// Recommendation is one prioritized follow-up derived from a detection.
type Recommendation struct {
	Priority    string   `json:"priority"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
}

// Recommendations derives the follow-up plan for a detection: immediate
// action when the case is moderate or worse, then treatment, prevention,
// and monitoring steps.
func Recommendations(d *Detection) []Recommendation {
	var recs []Recommendation

	if d.DetectedSeverity == severityModerate || d.DetectedSeverity == severitySevere {
		recs = append(recs, Recommendation{
			Priority:    "high",
			Type:        "immediate_action",
			Title:       "Immediate Treatment Required",
			Description: fmt.Sprintf("%s detected with %s severity. Take immediate action to prevent spread.", d.Name, d.DetectedSeverity),
			Actions: []string{
				"Apply recommended treatment immediately",
				"Isolate affected plants if possible",
				"Monitor surrounding plants closely",
				"Consider removing severely infected plants",
			},
		})
	}

	treatPriority := "medium"
	if d.DetectedSeverity == severitySevere {
		treatPriority = "high"
	}
	recs = append(recs, Recommendation{
		Priority:    treatPriority,
		Type:        "treatment",
		Title:       "Treatment Plan",
		Description: fmt.Sprintf("Recommended treatment for %s", d.Name),
		Actions: []string{
			d.Treatment,
			"Follow up with additional applications as needed",
			"Monitor treatment effectiveness",
			"Adjust treatment if no improvement in 7-10 days",
		},
	})

	recs = append(recs, Recommendation{
		Priority:    "medium",
		Type:        "prevention",
		Title:       "Prevention Measures",
		Description: "Steps to prevent future disease outbreaks",
		Actions: []string{
			d.Prevention,
			"Implement regular monitoring schedule",
			"Consider crop rotation for next season",
			"Maintain optimal growing conditions",
		},
	})

	recs = append(recs, Recommendation{
		Priority:    "low",
		Type:        "monitoring",
		Title:       "Ongoing Monitoring",
		Description: "Continue monitoring for disease progression",
		Actions: []string{
			"Check plants every 2-3 days",
			"Take photos to track disease progression",
			"Document treatment effectiveness",
			"Report any new symptoms immediately",
		},
	})

	return recs
}

// PreventionGuide is the static general-purpose prevention reference.
type PreventionGuide struct {
	GeneralPrevention []string `json:"general_prevention"`
	SoilManagement    []string `json:"soil_management"`
	WaterManagement   []string `json:"water_management"`
	ChemicalControl   []string `json:"chemical_control"`
	Monitoring        []string `json:"monitoring"`
}

// Guide returns the general disease prevention guide.
func Guide() PreventionGuide {
	return PreventionGuide{
		GeneralPrevention: []string{
			"Use disease-free seeds and planting material",
			"Practice crop rotation to break disease cycles",
			"Maintain proper plant spacing for good air circulation",
			"Avoid overhead watering to reduce leaf wetness",
			"Remove and destroy infected plant debris",
			"Keep fields clean and weed-free",
			"Monitor plants regularly for early disease signs",
			"Use resistant varieties when available",
		},
		SoilManagement: []string{
			"Maintain proper soil pH for your crops",
			"Ensure good drainage to prevent waterlogging",
			"Add organic matter to improve soil health",
			"Avoid excessive nitrogen fertilization",
			"Practice proper tillage to bury crop residues",
		},
		WaterManagement: []string{
			"Water at the base of plants, not overhead",
			"Water early in the day to allow leaves to dry",
			"Avoid overwatering or underwatering",
			"Use drip irrigation when possible",
			"Monitor soil moisture levels regularly",
		},
		ChemicalControl: []string{
			"Apply fungicides preventively before disease appears",
			"Follow label instructions carefully",
			"Rotate different fungicide classes to prevent resistance",
			"Apply at recommended intervals and rates",
			"Consider organic alternatives when possible",
		},
		Monitoring: []string{
			"Inspect plants weekly during growing season",
			"Look for early symptoms like spots, wilting, or discoloration",
			"Take photos of suspicious symptoms for identification",
			"Keep records of disease occurrences and treatments",
			"Consult with agricultural extension services when needed",
		},
	}
}
