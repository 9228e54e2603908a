package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/agriscope/agriscope/pkg/agronomy"
	"github.com/agriscope/agriscope/pkg/scoring"
)

// dayBoard returns the market board for the current trading day,
// generating and caching it on first use.
func (h *Handler) dayBoard() []agronomy.MarketQuote {
	day := h.data.Now().Format("2006-01-02")
	if board := h.boards.Get(day); board != nil {
		return board
	}
	board := h.data.MarketBoard()
	h.boards.Put(day, board)
	return board
}

func (h *Handler) handleRecommendCrops(w http.ResponseWriter, r *http.Request) {
	// Budget and soil_data shadow the embedded fields so absent keys can
	// be told apart from explicit zeros. Zero is a valid budget (no cost
	// filter) and a valid moisture reading.
	var payload struct {
		scoring.Request
		Budget *float64              `json:"budget"`
		Soil   *agronomy.SoilMetrics `json:"soil_data"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req := payload.Request
	if payload.Soil != nil {
		req.Soil = *payload.Soil
	} else {
		req.Soil.Moisture = agronomy.DefaultMoisture
	}
	if req.Location == "" {
		writeError(w, http.StatusBadRequest, "Location is required")
		return
	}
	if req.FarmSize <= 0 {
		req.FarmSize = 1
	}
	if payload.Budget != nil {
		req.Budget = *payload.Budget
	} else {
		req.Budget = 10000
	}
	if len(req.Market) == 0 {
		req.Market = h.dayBoard()
	}

	result, err := h.engine.Recommend(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate recommendations")
		return
	}

	h.saveRecommendationRun(r, req, result)

	writeJSON(w, http.StatusOK, map[string]any{
		"recommendations":      result.Recommendations,
		"total_crops_analyzed": result.TotalCropsAnalyzed,
		"filters_applied": map[string]any{
			"location":  req.Location,
			"farm_size": req.FarmSize,
			"budget":    req.Budget,
		},
		"timestamp": h.data.Now().UTC().Format(time.RFC3339),
	})
}

// saveRecommendationRun persists the top recommendations for the history
// endpoint. Persistence failures are logged but never fail the request.
func (h *Handler) saveRecommendationRun(r *http.Request, req scoring.Request, result *scoring.Result) {
	top := result.Recommendations
	if len(top) > 10 {
		top = top[:10]
	}
	confidence := 0.0
	if len(top) > 0 {
		confidence = top[0].Confidence
	}

	soilJSON, _ := json.Marshal(req.Soil)
	weatherJSON, _ := json.Marshal(req.Weather)
	marketJSON, _ := json.Marshal(req.Market)
	recsJSON, _ := json.Marshal(top)

	if _, err := h.accounts.SaveRecommendation(r.Context(), requestUserID(r), req.Location, soilJSON, weatherJSON, marketJSON, recsJSON, confidence); err != nil {
		log.Printf("save recommendation: %v", err)
	}
}

func (h *Handler) handleRecommendationHistory(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	records, pagination, err := h.accounts.RecommendationHistory(r.Context(), requestUserID(r), page, perPage)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	type historyEntry struct {
		ID              string          `json:"id"`
		Location        string          `json:"location"`
		Recommendations json.RawMessage `json:"recommendations"`
		ConfidenceScore float64         `json:"confidence_score"`
		CreatedAt       string          `json:"created_at"`
	}
	entries := make([]historyEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, historyEntry{
			ID:              rec.ID,
			Location:        rec.Location,
			Recommendations: rec.Recommendations,
			ConfidenceScore: rec.ConfidenceScore,
			CreatedAt:       rec.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"history":    entries,
		"pagination": pagination,
	})
}

func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recommendations []scoring.Recommendation `json:"recommendations"`
		Constraints     scoring.Constraints      `json:"constraints"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Recommendations) == 0 {
		writeError(w, http.StatusBadRequest, "Recommendations required")
		return
	}

	result := scoring.Optimize(req.Recommendations, req.Constraints)
	writeJSON(w, http.StatusOK, result)
}
