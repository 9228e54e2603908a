package scoring

import (
	"sort"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// Crops that need intensive field labor and specialized harvest equipment.
var laborIntensiveCrops = map[string]bool{
	"sugarcane": true,
	"cotton":    true,
}

// Optimize re-scores an existing recommendation set under operational
// constraints. Adjustments are additive and the result is clamped to
// [0, 100]; recommendations that fall to 20 or below are dropped.
// Unrecognized constraint values are ignored rather than rejected.
func Optimize(recs []Recommendation, constraints Constraints) *OptimizeResult {
	var viable []Recommendation

	for _, rec := range recs {
		var adjustment float64
		var notes []string

		switch constraints.LaborAvailability {
		case "low":
			if laborIntensiveCrops[rec.Crop] {
				adjustment -= 20
				notes = append(notes, "High labor requirement")
			}
		case "high":
			adjustment += 10
			notes = append(notes, "Good labor availability")
		}

		waterReq := rec.GrowingRequirements.WaterRequirement
		switch constraints.WaterAvailability {
		case "low":
			if waterReq == agronomy.WaterHigh {
				adjustment -= 25
				notes = append(notes, "High water requirement")
			}
		case "high":
			if waterReq == agronomy.WaterHigh {
				adjustment += 15
				notes = append(notes, "Good water availability")
			}
		}

		switch constraints.EquipmentAvailable {
		case "basic":
			if laborIntensiveCrops[rec.Crop] {
				adjustment -= 15
				notes = append(notes, "Requires specialized equipment")
			}
		case "advanced":
			adjustment += 10
			notes = append(notes, "Good equipment availability")
		}

		switch constraints.MarketAccess {
		case "poor":
			if rec.MarketData != nil && rec.MarketData.DemandLevel == agronomy.DemandHigh {
				adjustment -= 10
				notes = append(notes, "High demand but poor market access")
			}
		case "good":
			adjustment += 5
			notes = append(notes, "Good market access")
		}

		score := rec.SuitabilityScore + adjustment
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		rec.SuitabilityScore = score
		rec.OptimizedScore = score
		rec.OptimizationAdjustments = notes

		if score > 20 {
			viable = append(viable, rec)
		}
	}

	sort.SliceStable(viable, func(i, j int) bool {
		return viable[i].OptimizedScore > viable[j].OptimizedScore
	})

	return &OptimizeResult{
		Recommendations: viable,
		Constraints:     constraints,
		TotalInput:      len(recs),
		ViableAfter:     len(viable),
	}
}
