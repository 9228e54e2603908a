package scoring

import (
	"fmt"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// MoistureFactor (F4) scores whether current soil moisture matches the
// crop's water requirement. The bands deliberately overlap: a reading of
// 0.25 satisfies both low and medium requirement crops.
type MoistureFactor struct {
	Match float64
	Off   float64
}

func (f *MoistureFactor) Key() string  { return "moisture" }
func (f *MoistureFactor) Name() string { return "Moisture suitability" }

func (f *MoistureFactor) Evaluate(profile agronomy.CropProfile, env *agronomy.EnvironmentSnapshot) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name()}

	m := env.Soil.Moisture
	matched := false
	switch profile.WaterRequirement {
	case agronomy.WaterHigh:
		matched = m > 0.3
	case agronomy.WaterMedium:
		matched = m >= 0.2 && m <= 0.4
	case agronomy.WaterLow:
		matched = m < 0.3
	}

	if matched {
		result.Points = f.Match
		result.Notes = append(result.Notes,
			fmt.Sprintf("Good moisture for %s water requirement", profile.WaterRequirement))
	} else {
		result.Points = f.Off
		result.Notes = append(result.Notes, "Moisture may need adjustment")
	}

	return result
}
