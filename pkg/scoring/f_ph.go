package scoring

import "github.com/agriscope/agriscope/pkg/agronomy"

// PHFactor (F1) scores how well the soil pH fits a crop's optimal range.
type PHFactor struct {
	Optimal   float64 // points for pH inside the optimal range
	Near      float64 // points for pH within Tolerance of a range bound
	Off       float64 // points otherwise
	Tolerance float64
}

func (f *PHFactor) Key() string  { return "soil_ph" }
func (f *PHFactor) Name() string { return "Soil pH suitability" }

func (f *PHFactor) Evaluate(profile agronomy.CropProfile, env *agronomy.EnvironmentSnapshot) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name()}

	ph := env.Soil.PH
	switch {
	case profile.OptimalPH.Contains(ph):
		result.Points = f.Optimal
		result.Notes = append(result.Notes, "Optimal soil pH")
	case profile.OptimalPH.Near(ph, f.Tolerance):
		result.Points = f.Near
		result.Notes = append(result.Notes, "Good soil pH")
	default:
		result.Points = f.Off
		result.Notes = append(result.Notes, "Suboptimal soil pH")
	}

	return result
}
