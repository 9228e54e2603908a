package agrodata

// WeatherAlert is a threshold-triggered warning with a suggested response.
type WeatherAlert struct {
	Type           string `json:"type"`
	Severity       string `json:"severity"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

// WeatherAlerts evaluates the alert thresholds against a current reading.
// Extreme heat and frost are mutually exclusive; rain and wind alerts can
// stack on either.
func WeatherAlerts(temp, precip, wind float64) []WeatherAlert {
	var alerts []WeatherAlert

	if temp > 35 {
		alerts = append(alerts, WeatherAlert{
			Type:           "heat_warning",
			Severity:       "high",
			Message:        "Extreme heat warning. Take precautions for crops and livestock.",
			Recommendation: "Increase irrigation and provide shade if possible.",
		})
	} else if temp < 0 {
		alerts = append(alerts, WeatherAlert{
			Type:           "frost_warning",
			Severity:       "high",
			Message:        "Frost warning. Protect sensitive crops.",
			Recommendation: "Cover crops or use frost protection methods.",
		})
	}

	if precip > 20 {
		alerts = append(alerts, WeatherAlert{
			Type:           "heavy_rain",
			Severity:       "medium",
			Message:        "Heavy rainfall expected. Monitor drainage.",
			Recommendation: "Ensure proper drainage and avoid overwatering.",
		})
	}

	if wind > 20 {
		alerts = append(alerts, WeatherAlert{
			Type:           "high_wind",
			Severity:       "medium",
			Message:        "High wind conditions. Secure loose items.",
			Recommendation: "Check crop supports and greenhouse structures.",
		})
	}

	return alerts
}
