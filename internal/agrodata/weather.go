package agrodata

import "time"

// CurrentWeather is the present reading for a location.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	Conditions    string  `json:"conditions"`
	UVIndex       int     `json:"uv_index"`
	Pressure      float64 `json:"pressure"`
}

// ForecastDay is one day of the weather outlook.
type ForecastDay struct {
	Date             string  `json:"date"`
	DayTemperature   float64 `json:"day_temperature"`
	NightTemperature float64 `json:"night_temperature"`
	Precipitation    float64 `json:"precipitation"`
	Humidity         float64 `json:"humidity"`
	WindSpeed        float64 `json:"wind_speed"`
	Conditions       string  `json:"conditions"`
}

// WeatherReport bundles current conditions, the outlook, and any alerts.
type WeatherReport struct {
	Location    string         `json:"location"`
	Current     CurrentWeather `json:"current"`
	Forecast    []ForecastDay  `json:"forecast"`
	Alerts      []WeatherAlert `json:"alerts"`
	LastUpdated string         `json:"last_updated"`
}

// ForecastDays is the outlook length in a generated report.
const ForecastDays = 7

// seasonalBase returns the base temperature draw and precipitation
// chance for the given month.
func (p *Provider) seasonalBase(month time.Month) (baseTemp, precipChance float64) {
	switch month {
	case time.December, time.January, time.February:
		return p.uniform(5, 20), 0.3
	case time.March, time.April, time.May:
		return p.uniform(15, 25), 0.4
	case time.June, time.July, time.August:
		return p.uniform(25, 35), 0.2
	default:
		return p.uniform(10, 25), 0.35
	}
}

// Weather generates a report for the location. Temperatures follow the
// season of the provider's clock.
func (p *Provider) Weather(location string) WeatherReport {
	now := p.now()
	baseTemp, precipChance := p.seasonalBase(now.Month())

	current := CurrentWeather{
		Temperature: round1(baseTemp + p.uniform(-5, 5)),
		Humidity:    round1(p.uniform(40, 80)),
		WindSpeed:   round1(p.uniform(5, 25)),
		Conditions:  p.pick([]string{"Sunny", "Partly Cloudy", "Cloudy", "Rainy"}),
		UVIndex:     p.rng.Intn(10) + 1,
		Pressure:    round1(p.uniform(1000, 1030)),
	}
	if p.rng.Float64() < precipChance {
		current.Precipitation = round1(p.uniform(0, 10))
	}

	forecast := p.forecastDays(now, baseTemp, precipChance, ForecastDays)

	return WeatherReport{
		Location:    location,
		Current:     current,
		Forecast:    forecast,
		Alerts:      WeatherAlerts(current.Temperature, current.Precipitation, current.WindSpeed),
		LastUpdated: now.Format(time.RFC3339),
	}
}

func (p *Provider) forecastDays(start time.Time, baseTemp, precipChance float64, n int) []ForecastDay {
	forecast := make([]ForecastDay, 0, n)
	for i := 0; i < n; i++ {
		dayTemp := round1(baseTemp + p.uniform(-8, 8))
		day := ForecastDay{
			Date:             start.AddDate(0, 0, i).Format("2006-01-02"),
			DayTemperature:   dayTemp,
			NightTemperature: round1(dayTemp - p.uniform(5, 15)),
			Humidity:         round1(p.uniform(30, 90)),
			WindSpeed:        round1(p.uniform(3, 30)),
			Conditions:       p.pick([]string{"Sunny", "Partly Cloudy", "Cloudy", "Rainy", "Thunderstorm"}),
		}
		if p.rng.Float64() < precipChance {
			day.Precipitation = round1(p.uniform(0, 15))
		}
		forecast = append(forecast, day)
	}
	return forecast
}

// ForecastReport is a standalone multi-day outlook.
type ForecastReport struct {
	Location  string        `json:"location"`
	Days      int           `json:"days"`
	Forecast  []ForecastDay `json:"forecast"`
	Generated string        `json:"generated_at"`
}

// Forecast generates an outlook of the requested length.
func (p *Provider) Forecast(location string, days int) ForecastReport {
	now := p.now()
	baseTemp, precipChance := p.seasonalBase(now.Month())
	return ForecastReport{
		Location:  location,
		Days:      days,
		Forecast:  p.forecastDays(now, baseTemp, precipChance, days),
		Generated: now.Format(time.RFC3339),
	}
}
