package scoring

import "github.com/agriscope/agriscope/pkg/agronomy"

// TemperatureFactor (F2) scores how well the current temperature fits a
// crop's optimal growing range.
type TemperatureFactor struct {
	Optimal   float64
	Near      float64
	Off       float64
	Tolerance float64 // degrees from a range bound that still scores Near
}

func (f *TemperatureFactor) Key() string  { return "temperature" }
func (f *TemperatureFactor) Name() string { return "Temperature suitability" }

func (f *TemperatureFactor) Evaluate(profile agronomy.CropProfile, env *agronomy.EnvironmentSnapshot) FactorResult {
	result := FactorResult{Key: f.Key(), Name: f.Name()}

	temp := env.Weather.Temperature
	switch {
	case profile.OptimalTemp.Contains(temp):
		result.Points = f.Optimal
		result.Notes = append(result.Notes, "Optimal temperature")
	case profile.OptimalTemp.Near(temp, f.Tolerance):
		result.Points = f.Near
		result.Notes = append(result.Notes, "Acceptable temperature")
	default:
		result.Points = f.Off
		result.Notes = append(result.Notes, "Suboptimal temperature")
	}

	return result
}
