package agronomy

// Profiles returns the built-in crop knowledge base, ordered by rough
// planting prevalence. Callers must not mutate the returned slice.
func Profiles() []CropProfile {
	return builtinProfiles
}

// ProfileFor looks up a crop profile by name. The second return is false
// when the crop is unknown.
func ProfileFor(name string) (CropProfile, bool) {
	for _, p := range builtinProfiles {
		if p.Name == name {
			return p, true
		}
	}
	return CropProfile{}, false
}

var builtinProfiles = []CropProfile{
	{
		Name:             "wheat",
		OptimalPH:        Range{6.0, 7.5},
		OptimalTemp:      Range{15, 25},
		WaterRequirement: WaterMedium,
		SoilTypes:        []string{"loamy", "clay"},
		Season:           SeasonWinter,
		YieldPotential:   "high",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "medium",
		BaseYieldPerAcre: 3000,
		BaseCostPerAcre:  15000,
	},
	{
		Name:             "rice",
		OptimalPH:        Range{5.5, 7.0},
		OptimalTemp:      Range{20, 35},
		WaterRequirement: WaterHigh,
		SoilTypes:        []string{"clay", "silty"},
		Season:           SeasonMonsoon,
		YieldPotential:   "high",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "medium",
		BaseYieldPerAcre: 4000,
		BaseCostPerAcre:  20000,
	},
	{
		Name:             "corn",
		OptimalPH:        Range{6.0, 7.0},
		OptimalTemp:      Range{18, 27},
		WaterRequirement: WaterMedium,
		SoilTypes:        []string{"loamy", "sandy"},
		Season:           SeasonSummer,
		YieldPotential:   "high",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "medium",
		BaseYieldPerAcre: 3500,
		BaseCostPerAcre:  18000,
	},
	{
		Name:             "sugarcane",
		OptimalPH:        Range{6.0, 7.5},
		OptimalTemp:      Range{20, 30},
		WaterRequirement: WaterHigh,
		SoilTypes:        []string{"loamy", "clay"},
		Season:           SeasonYearRound,
		YieldPotential:   "very_high",
		MarketDemand:     DemandMedium,
		ProfitMargin:     "high",
		BaseYieldPerAcre: 80000,
		BaseCostPerAcre:  25000,
	},
	{
		Name:             "cotton",
		OptimalPH:        Range{5.8, 8.0},
		OptimalTemp:      Range{21, 30},
		WaterRequirement: WaterMedium,
		SoilTypes:        []string{"loamy", "sandy"},
		Season:           SeasonSummer,
		YieldPotential:   "medium",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "high",
		BaseYieldPerAcre: 500,
		BaseCostPerAcre:  22000,
	},
	{
		Name:             "soybean",
		OptimalPH:        Range{6.0, 7.0},
		OptimalTemp:      Range{20, 30},
		WaterRequirement: WaterMedium,
		SoilTypes:        []string{"loamy", "sandy"},
		Season:           SeasonMonsoon,
		YieldPotential:   "medium",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "medium",
		BaseYieldPerAcre: 2000,
		BaseCostPerAcre:  16000,
	},
	{
		Name:             "potato",
		OptimalPH:        Range{4.8, 5.5},
		OptimalTemp:      Range{15, 20},
		WaterRequirement: WaterMedium,
		SoilTypes:        []string{"sandy", "loamy"},
		Season:           SeasonWinter,
		YieldPotential:   "high",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "medium",
		BaseYieldPerAcre: 25000,
		BaseCostPerAcre:  30000,
	},
	{
		Name:             "tomato",
		OptimalPH:        Range{6.0, 6.8},
		OptimalTemp:      Range{18, 25},
		WaterRequirement: WaterMedium,
		SoilTypes:        []string{"loamy", "sandy"},
		Season:           SeasonYearRound,
		YieldPotential:   "high",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "high",
		BaseYieldPerAcre: 50000,
		BaseCostPerAcre:  35000,
	},
	{
		Name:             "mango",
		OptimalPH:        Range{5.5, 7.5},
		OptimalTemp:      Range{24, 30},
		WaterRequirement: WaterMedium,
		SoilTypes:        []string{"loamy", "sandy"},
		Season:           SeasonSummer,
		YieldPotential:   "high",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "very_high",
		BaseYieldPerAcre: 8000,
		BaseCostPerAcre:  40000,
	},
	{
		Name:             "banana",
		OptimalPH:        Range{6.0, 7.5},
		OptimalTemp:      Range{26, 30},
		WaterRequirement: WaterHigh,
		SoilTypes:        []string{"loamy", "clay"},
		Season:           SeasonYearRound,
		YieldPotential:   "very_high",
		MarketDemand:     DemandHigh,
		ProfitMargin:     "high",
		BaseYieldPerAcre: 30000,
		BaseCostPerAcre:  25000,
	},
}

// FallbackYieldPerAcre and FallbackCostPerAcre apply to crops with no
// base economics entry, which only happens for profiles added at runtime.
const (
	FallbackYieldPerAcre = 2000.0
	FallbackCostPerAcre  = 20000.0
)
