package scoring

// DefaultWeights holds the default scoring weights for all factors.
type DefaultWeights struct {
	// F1: Soil pH
	PHOptimal   float64
	PHNear      float64
	PHOff       float64
	PHTolerance float64 // distance from a range bound that still scores PHNear

	// F2: Temperature
	TempOptimal   float64
	TempNear      float64
	TempOff       float64
	TempTolerance float64

	// F3: Soil type
	SoilTypeMatch    float64
	SoilTypeMismatch float64

	// F4: Moisture vs water requirement
	MoistureMatch float64
	MoistureOff   float64

	// F5: Market demand and price trend
	DemandHigh   float64
	DemandMedium float64
	DemandLow    float64
	TrendRising  float64
	TrendStable  float64

	// Engine-level limits
	MaxScore       float64
	MinSuitability float64 // recommendations at or below are excluded
	BudgetHeadroom float64 // cost may exceed budget by this multiplier
	TopN           int
}

// Defaults returns the default scoring weights.
func Defaults() DefaultWeights {
	return DefaultWeights{
		// F1
		PHOptimal:   25,
		PHNear:      15,
		PHOff:       5,
		PHTolerance: 0.5,

		// F2
		TempOptimal:   20,
		TempNear:      10,
		TempOff:       0,
		TempTolerance: 3,

		// F3
		SoilTypeMatch:    15,
		SoilTypeMismatch: 5,

		// F4
		MoistureMatch: 15,
		MoistureOff:   5,

		// F5
		DemandHigh:   15,
		DemandMedium: 10,
		DemandLow:    5,
		TrendRising:  10,
		TrendStable:  5,

		MaxScore:       100,
		MinSuitability: 30,
		BudgetHeadroom: 1.2,
		TopN:           10,
	}
}
