// Package soil implements soil classification, quality scoring, and
// agronomic recommendations from lab or sensor readings.
package soil

// Recommendation is a single prioritized action derived from a reading.
type Recommendation struct {
	Type        string `json:"type"`
	Priority    string `json:"priority"` // high, medium, low
	Message     string `json:"message"`
	Action      string `json:"action"`
	TargetPH    string `json:"target_ph,omitempty"`
	TargetRange string `json:"target_range,omitempty"`
}

// Analysis is the classified view of one soil reading.
type Analysis struct {
	PHStatus            string           `json:"ph_status"`       // optimal, needs_adjustment
	MoistureStatus      string           `json:"moisture_status"` // adequate, needs_attention
	FertilityLevel      string           `json:"fertility_level"` // high, medium, low
	SoilType            string           `json:"soil_type"`       // Clay, Sandy, Silty, Loamy, Mixed
	Drainage            string           `json:"drainage"`        // Poor, Moderate, Good, Excellent
	Texture             string           `json:"texture"`         // Fine, Medium, Coarse
	NutrientBalance     string           `json:"nutrient_balance"`
	OrganicMatterStatus string           `json:"organic_matter_status"`
	Recommendations     []Recommendation `json:"recommendations"`
}

// Summary is the headline view of an analysis for display.
type Summary struct {
	OverallStatus        string             `json:"overall_status"` // excellent, good, fair, poor
	StatusMessage        string             `json:"status_message"`
	QualityScore         float64            `json:"quality_score"`
	KeyCharacteristics   KeyCharacteristics `json:"key_characteristics"`
	PriorityActions      []Recommendation   `json:"priority_actions"`
	TotalRecommendations int                `json:"total_recommendations"`
}

// KeyCharacteristics are the four headline soil properties.
type KeyCharacteristics struct {
	PHLevel  string `json:"ph_level"`
	Fertility string `json:"fertility"`
	SoilType string `json:"soil_type"`
	Drainage string `json:"drainage"`
}

// Report bundles the full output of one analysis run.
type Report struct {
	Analysis     Analysis `json:"analysis"`
	QualityScore float64  `json:"soil_quality_score"`
	Summary      Summary  `json:"summary"`
}
