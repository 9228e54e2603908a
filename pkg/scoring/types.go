// Package scoring implements the Agriscope crop suitability scoring engine.
// It evaluates environment snapshots against crop profiles and produces
// explainable, factor-backed recommendations.
package scoring

import "github.com/agriscope/agriscope/pkg/agronomy"

// FactorResult is the output of a single suitability factor.
type FactorResult struct {
	Key    string   `json:"key"`    // machine key: "soil_ph"
	Name   string   `json:"name"`   // human name: "Soil pH suitability"
	Points float64  `json:"points"` // score contribution, additive
	Notes  []string `json:"notes"`  // human-readable findings
}

// Request carries the resolved inputs for one recommendation run.
type Request struct {
	Location    string                  `json:"location"`
	Soil        agronomy.SoilMetrics    `json:"soil_data"`
	Weather     agronomy.WeatherMetrics `json:"weather_data"`
	Market      []agronomy.MarketQuote  `json:"market_data"`
	FarmSize    float64                 `json:"farm_size"` // acres
	Budget      float64                 `json:"budget"`    // 0 disables the budget filter
	Preferences map[string]string       `json:"preferences,omitempty"`
}

// Recommendation is one crop's scored entry in a recommendation set.
// Immutable once computed, except for the optimizer fields which the
// constraint pass fills in.
type Recommendation struct {
	Crop                string                `json:"crop"`
	SuitabilityScore    float64               `json:"suitability_score"`
	Confidence          float64               `json:"confidence"`
	EstimatedYield      float64               `json:"estimated_yield"`
	EstimatedCost       float64               `json:"estimated_cost"`
	EstimatedRevenue    float64               `json:"estimated_revenue"`
	EstimatedProfit     float64               `json:"estimated_profit"`
	ProfitMargin        float64               `json:"profit_margin"`
	Factors             []string              `json:"factors"`
	Breakdown           []FactorResult        `json:"breakdown"`
	MarketData          *agronomy.MarketQuote `json:"market_data"`
	GrowingRequirements agronomy.CropProfile  `json:"growing_requirements"`
	Recommendation      string                `json:"recommendation"`

	// Set by the optimizer pass only.
	OptimizationAdjustments []string `json:"optimization_adjustments,omitempty"`
	OptimizedScore          float64  `json:"optimized_score,omitempty"`
}

// Result is the complete output of a recommendation run.
type Result struct {
	Recommendations    []Recommendation `json:"recommendations"`
	TotalCropsAnalyzed int              `json:"total_crops_analyzed"`
}

// Constraints are the operational limits the optimizer applies on top of
// an existing recommendation set. Empty string means the constraint is
// not specified; unrecognized values are ignored.
type Constraints struct {
	LaborAvailability  string `json:"labor_availability,omitempty"`  // low, medium, high
	WaterAvailability  string `json:"water_availability,omitempty"`  // low, medium, high
	EquipmentAvailable string `json:"equipment_available,omitempty"` // basic, standard, advanced
	MarketAccess       string `json:"market_access,omitempty"`       // poor, average, good
}

// OptimizeResult summarizes a constraint optimization pass.
type OptimizeResult struct {
	Recommendations []Recommendation `json:"optimized_recommendations"`
	Constraints     Constraints      `json:"constraints_applied"`
	TotalInput      int              `json:"total_recommendations"`
	ViableAfter     int              `json:"viable_after_optimization"`
}
