package agrodata

import "math"

// Advisory is a prioritized action derived from field conditions.
type Advisory struct {
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Message  string `json:"message"`
	Action   string `json:"action"`
}

// FieldConditions summarizes a location's weather in agronomic terms.
type FieldConditions struct {
	Location          string     `json:"location"`
	GrowingDegreeDays float64    `json:"growing_degree_days"`
	ChillHours        float64    `json:"chill_hours"`
	GrowingCondition  string     `json:"growing_condition"`
	IrrigationNeed    string     `json:"irrigation_need"`
	SoilMoistureIndex float64    `json:"soil_moisture_index"`
	PestRisk          string     `json:"pest_risk"`
	DiseaseRisk       string     `json:"disease_risk"`
	HarvestReadiness  string     `json:"harvest_readiness"`
	Recommendations   []Advisory `json:"recommendations"`
}

// GrowingCondition classifies temperature into a growth phase.
func GrowingCondition(temp float64) string {
	switch {
	case temp < 5:
		return "dormant"
	case temp < 15:
		return "slow_growth"
	case temp < 30:
		return "optimal"
	default:
		return "stress"
	}
}

// IrrigationNeed classifies how much watering recent weather calls for.
func IrrigationNeed(precip, humidity float64) string {
	switch {
	case precip > 5:
		return "none"
	case precip > 2:
		return "light"
	case humidity < 50:
		return "moderate"
	default:
		return "heavy"
	}
}

// AssessConditions derives agronomic indices from a current reading.
// Growing degree days use a base temperature of 10C; chill hours
// accumulate below that base.
func AssessConditions(location string, cur CurrentWeather, soilMoistureIndex float64) FieldConditions {
	gdd := math.Max(0, cur.Temperature-10)
	chill := 0.0
	if cur.Temperature < 10 {
		chill = 10 - cur.Temperature
	}

	growing := GrowingCondition(cur.Temperature)
	irrigation := IrrigationNeed(cur.Precipitation, cur.Humidity)

	pest := "high"
	if cur.Temperature < 20 {
		pest = "low"
	} else if cur.Temperature < 30 {
		pest = "medium"
	}

	disease := "high"
	if cur.Humidity < 60 {
		disease = "low"
	} else if cur.Humidity < 80 {
		disease = "medium"
	}

	harvest := "monitor"
	if cur.Temperature < 15 {
		harvest = "not_ready"
	} else if cur.Temperature > 25 {
		harvest = "ready"
	}

	return FieldConditions{
		Location:          location,
		GrowingDegreeDays: round1(gdd),
		ChillHours:        round1(chill),
		GrowingCondition:  growing,
		IrrigationNeed:    irrigation,
		SoilMoistureIndex: soilMoistureIndex,
		PestRisk:          pest,
		DiseaseRisk:       disease,
		HarvestReadiness:  harvest,
		Recommendations:   FieldAdvisories(cur, growing, irrigation),
	}
}

// FieldConditions assesses a location using its generated weather and a
// sampled soil moisture index.
func (p *Provider) FieldConditions(location string, cur CurrentWeather) FieldConditions {
	return AssessConditions(location, cur, round2(p.uniform(0.2, 0.8)))
}

// FieldAdvisories lists the actions the current conditions call for.
func FieldAdvisories(cur CurrentWeather, growing, irrigation string) []Advisory {
	var out []Advisory

	switch growing {
	case "dormant":
		out = append(out, Advisory{
			Type:     "seasonal",
			Priority: "low",
			Message:  "Crops are in dormant phase due to low temperatures.",
			Action:   "Focus on soil preparation and planning for next season.",
		})
	case "slow_growth":
		out = append(out, Advisory{
			Type:     "growth",
			Priority: "medium",
			Message:  "Slow growth due to cool temperatures.",
			Action:   "Consider using row covers or greenhouses to increase temperature.",
		})
	case "stress":
		out = append(out, Advisory{
			Type:     "heat_stress",
			Priority: "high",
			Message:  "High temperatures may cause heat stress.",
			Action:   "Increase irrigation frequency and provide shade if possible.",
		})
	}

	switch irrigation {
	case "heavy":
		out = append(out, Advisory{
			Type:     "irrigation",
			Priority: "high",
			Message:  "High irrigation need due to low precipitation.",
			Action:   "Schedule regular irrigation sessions.",
		})
	case "none":
		out = append(out, Advisory{
			Type:     "irrigation",
			Priority: "low",
			Message:  "Adequate moisture from recent precipitation.",
			Action:   "Monitor soil moisture and avoid overwatering.",
		})
	}

	if cur.Humidity > 80 {
		out = append(out, Advisory{
			Type:     "disease_prevention",
			Priority: "medium",
			Message:  "High humidity increases disease risk.",
			Action:   "Ensure good air circulation and consider fungicide applications.",
		})
	}

	return out
}
