package scoring

// DefaultFactors returns the standard set of suitability factors with
// default weights.
func DefaultFactors() []Factor {
	w := Defaults()
	return []Factor{
		&PHFactor{
			Optimal:   w.PHOptimal,
			Near:      w.PHNear,
			Off:       w.PHOff,
			Tolerance: w.PHTolerance,
		},
		&TemperatureFactor{
			Optimal:   w.TempOptimal,
			Near:      w.TempNear,
			Off:       w.TempOff,
			Tolerance: w.TempTolerance,
		},
		&SoilTypeFactor{
			Match:    w.SoilTypeMatch,
			Mismatch: w.SoilTypeMismatch,
		},
		&MoistureFactor{
			Match: w.MoistureMatch,
			Off:   w.MoistureOff,
		},
		&MarketFactor{
			DemandHigh:   w.DemandHigh,
			DemandMedium: w.DemandMedium,
			DemandLow:    w.DemandLow,
			TrendRising:  w.TrendRising,
			TrendStable:  w.TrendStable,
		},
	}
}
