package scoring

import (
	"strings"

	"github.com/agriscope/agriscope/pkg/agronomy"
)

// SoilTypeFactor (F3) scores whether the field's soil texture is one the
// crop grows well in.
type SoilTypeFactor struct {
	Match    float64
	Mismatch float64
}

func (f *SoilTypeFactor) Key() string  { return "soil_type" }
func (f *SoilTypeFactor) Name() string { return "Soil type suitability" }

func (f *SoilTypeFactor) Evaluate(profile agronomy.CropProfile, env *agronomy.EnvironmentSnapshot) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name()}

	texture := strings.ToLower(env.Soil.SoilType)
	if profile.SuitableSoil(texture) {
		result.Points = f.Match
		result.Notes = append(result.Notes, "Suitable soil type")
	} else {
		result.Points = f.Mismatch
		result.Notes = append(result.Notes, "Less suitable soil type")
	}

	return result
}
