package api

import (
	"net/http"
	"strconv"
	"time"
)

func (h *Handler) handleCurrentWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.data.Weather(r.PathValue("location")))
}

func (h *Handler) handleForecast(w http.ResponseWriter, r *http.Request) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 30 {
			writeError(w, http.StatusBadRequest, "Days parameter must be between 1 and 30")
			return
		}
		days = parsed
	}
	writeJSON(w, http.StatusOK, h.data.Forecast(r.PathValue("location"), days))
}

func (h *Handler) handleWeatherAlerts(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")
	report := h.data.Weather(location)

	writeJSON(w, http.StatusOK, map[string]any{
		"location":    location,
		"alerts":      report.Alerts,
		"alert_count": len(report.Alerts),
		"timestamp":   h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleAgriculturalConditions(w http.ResponseWriter, r *http.Request) {
	location := r.PathValue("location")
	report := h.data.Weather(location)
	conditions := h.data.FieldConditions(location, report.Current)
	writeJSON(w, http.StatusOK, conditions)
}
