// Package agronomy defines the core agricultural data model for Agriscope.
// These types are the shared vocabulary across all modules.
package agronomy

import "encoding/json"

// WaterRequirement categorizes how much water a crop needs over a season.
type WaterRequirement string

const (
	WaterLow    WaterRequirement = "low"
	WaterMedium WaterRequirement = "medium"
	WaterHigh   WaterRequirement = "high"
)

// Season identifies the growing season a crop is planted in.
type Season string

const (
	SeasonWinter    Season = "winter"
	SeasonSummer    Season = "summer"
	SeasonMonsoon   Season = "monsoon"
	SeasonYearRound Season = "year_round"
)

// DemandLevel categorizes current market demand for a crop.
type DemandLevel string

const (
	DemandLow    DemandLevel = "low"
	DemandMedium DemandLevel = "medium"
	DemandHigh   DemandLevel = "high"
)

// Trend identifies the direction a crop's price is moving.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// Range is an inclusive numeric interval.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether v falls within the range, bounds included.
func (r Range) Contains(v float64) bool {
	return r.Low <= v && v <= r.High
}

// Near reports whether v is within tolerance of either bound.
func (r Range) Near(v, tolerance float64) bool {
	return abs(v-r.Low) <= tolerance || abs(v-r.High) <= tolerance
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// CropProfile describes a crop's ideal growing conditions and base economics.
// Profiles are immutable reference data loaded once at startup.
type CropProfile struct {
	Name             string           `json:"name"`
	OptimalPH        Range            `json:"optimal_ph"`
	OptimalTemp      Range            `json:"optimal_temp"`
	WaterRequirement WaterRequirement `json:"water_requirement"`
	SoilTypes        []string         `json:"soil_type"` // compatible textures: clay, sandy, loamy, silty
	Season           Season           `json:"season"`
	YieldPotential   string           `json:"yield_potential"`
	MarketDemand     DemandLevel      `json:"market_demand"`
	ProfitMargin     string           `json:"profit_margin"`
	BaseYieldPerAcre float64          `json:"base_yield_per_acre"` // kg
	BaseCostPerAcre  float64          `json:"base_cost_per_acre"`  // currency
}

// SuitableSoil reports whether the given texture label is compatible with
// the crop. Matching is case-insensitive on the caller's side; profiles
// store lowercase labels.
func (p CropProfile) SuitableSoil(texture string) bool {
	for _, t := range p.SoilTypes {
		if t == texture {
			return true
		}
	}
	return false
}

// SoilMetrics is a resolved point-in-time soil reading.
// Absent optional fields are replaced by documented defaults, at decode
// time for moisture and via Normalize for the rest; the scoring core
// never rejects a snapshot for missing data.
type SoilMetrics struct {
	PH            float64 `json:"ph"`
	Moisture      float64 `json:"moisture"` // fraction, 0..1
	OrganicMatter float64 `json:"organic_matter"`
	Nitrogen      float64 `json:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus"`
	Potassium     float64 `json:"potassium"`
	Calcium       float64 `json:"calcium,omitempty"`
	Magnesium     float64 `json:"magnesium,omitempty"`
	Clay          float64 `json:"clay,omitempty"`
	Sand          float64 `json:"sand,omitempty"`
	Silt          float64 `json:"silt,omitempty"`
	SoilType      string  `json:"soil_type"`
}

// UnmarshalJSON fills in the documented moisture default when the key is
// absent. Zero is a valid reading, so absence has to be detected here
// rather than in Normalize.
func (m *SoilMetrics) UnmarshalJSON(data []byte) error {
	type metrics SoilMetrics
	aux := struct {
		*metrics
		Moisture *float64 `json:"moisture"`
	}{metrics: (*metrics)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Moisture != nil {
		m.Moisture = *aux.Moisture
	} else {
		m.Moisture = DefaultMoisture
	}
	return nil
}

// WeatherMetrics is a resolved point-in-time weather reading.
type WeatherMetrics struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	WindSpeed     float64 `json:"wind_speed,omitempty"`
}

// MarketQuote is one crop's entry in a market snapshot.
type MarketQuote struct {
	Crop               string      `json:"crop"`
	CurrentPrice       float64     `json:"current_price"`
	PreviousPrice      float64     `json:"previous_price,omitempty"`
	PriceChange        float64     `json:"price_change,omitempty"`
	PriceChangePercent float64     `json:"price_change_percent,omitempty"`
	Unit               string      `json:"unit,omitempty"`
	DemandLevel        DemandLevel `json:"demand_level"`
	SupplyLevel        string      `json:"supply_level,omitempty"`
	DemandScore        float64     `json:"demand_score,omitempty"`
	MarketTrend        Trend       `json:"market_trend"`
	Seasonality        Season      `json:"seasonality,omitempty"`
	LastUpdated        string      `json:"last_updated,omitempty"`
}

// EnvironmentSnapshot bundles the resolved inputs for one recommendation
// request. It is ephemeral: built per request, never persisted as-is.
type EnvironmentSnapshot struct {
	Location string         `json:"location"`
	Soil     SoilMetrics    `json:"soil"`
	Weather  WeatherMetrics `json:"weather"`
	Market   []MarketQuote  `json:"market"`
}

// Defaults applied when a field is absent.
const (
	DefaultPH          = 7.0
	DefaultMoisture    = 0.3
	DefaultTemperature = 25.0
	DefaultSoilType    = "loamy"
)

// Normalize fills in documented defaults for absent fields. Moisture is
// excluded: zero is a valid reading there, so its default is applied at
// the decode boundary where absence is still observable.
// The core favors degraded-but-available output over rejection.
func (e *EnvironmentSnapshot) Normalize() {
	if e.Soil.PH == 0 {
		e.Soil.PH = DefaultPH
	}
	if e.Soil.SoilType == "" {
		e.Soil.SoilType = DefaultSoilType
	}
	if e.Weather.Temperature == 0 {
		e.Weather.Temperature = DefaultTemperature
	}
}

// Quote returns the market quote for the named crop, or nil if the
// snapshot has no entry for it.
func (e *EnvironmentSnapshot) Quote(crop string) *MarketQuote {
	for i := range e.Market {
		if e.Market[i].Crop == crop {
			return &e.Market[i]
		}
	}
	return nil
}
