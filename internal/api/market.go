package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/agriscope/agriscope/internal/agrodata"
	"github.com/agriscope/agriscope/pkg/agronomy"
)

func (h *Handler) handleMarketPrices(w http.ResponseWriter, r *http.Request) {
	board := h.dayBoard()

	// Work on a copy so filtering and sorting never disturb the cached board.
	prices := make([]agronomy.MarketQuote, 0, len(board))
	cropFilter := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("crop")))
	for _, q := range board {
		if cropFilter != "" && !strings.Contains(q.Crop, cropFilter) {
			continue
		}
		prices = append(prices, q)
	}

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = "crop"
	}
	order := r.URL.Query().Get("order")
	if order == "" {
		order = "asc"
	}
	agrodata.SortQuotes(prices, sortBy, order)

	writeJSON(w, http.StatusOK, map[string]any{
		"prices":    prices,
		"total":     len(prices),
		"timestamp": h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleCropPrice(w http.ResponseWriter, r *http.Request) {
	crop := strings.ToLower(strings.TrimSpace(r.PathValue("crop")))
	if !agrodata.Traded(crop) {
		writeError(w, http.StatusNotFound, "Crop not found")
		return
	}

	var quote agronomy.MarketQuote
	for _, q := range h.dayBoard() {
		if q.Crop == crop {
			quote = q
			break
		}
	}

	history := h.data.PriceHistory(quote)
	forecast := h.data.PriceForecast(quote)

	writeJSON(w, http.StatusOK, map[string]any{
		"crop":           crop,
		"current":        quote,
		"price_history":  history,
		"price_forecast": forecast,
		"analysis":       agrodata.AnalyzePrices(quote, history),
		"timestamp":      h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleMarketTrends(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, agrodata.Trends(h.dayBoard()))
}

func (h *Handler) handleMarketRecommendations(w http.ResponseWriter, r *http.Request) {
	var req agrodata.MarketRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	picks := agrodata.RecommendCrops(h.dayBoard(), req)

	writeJSON(w, http.StatusOK, map[string]any{
		"recommendations": picks,
		"total":           len(picks),
		"filters_applied": map[string]any{
			"farm_size": req.FarmSize,
			"budget":    req.Budget,
			"season":    req.Season,
		},
		"timestamp": h.data.Now().UTC().Format(time.RFC3339),
	})
}
