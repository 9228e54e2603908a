package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/agriscope/agriscope/internal/account"
)

type farmPayload struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	SizeAcres float64         `json:"size_acres"`
	SoilData  json.RawMessage `json:"soil_data,omitempty"`
	Latitude  *float64        `json:"latitude"`
	Longitude *float64        `json:"longitude"`
	CreatedAt string          `json:"created_at"`
}

func farmToPayload(f *account.Farm) farmPayload {
	return farmPayload{
		ID:        f.ID,
		Name:      f.Name,
		Location:  f.Location,
		SizeAcres: f.SizeAcres,
		SoilData:  f.SoilData,
		Latitude:  f.Latitude,
		Longitude: f.Longitude,
		CreatedAt: f.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

type plantingPayload struct {
	ID           string   `json:"id"`
	FarmID       string   `json:"farm_id"`
	Crop         string   `json:"crop"`
	PlantingDate *string  `json:"planting_date"`
	HarvestDate  *string  `json:"harvest_date"`
	YieldKg      *float64 `json:"yield_kg"`
	Profit       *float64 `json:"profit"`
	Status       string   `json:"status"`
}

func plantingToPayload(p *account.Planting) plantingPayload {
	formatDate := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.UTC().Format("2006-01-02")
		return &s
	}
	return plantingPayload{
		ID:           p.ID,
		FarmID:       p.FarmID,
		Crop:         p.Crop,
		PlantingDate: formatDate(p.PlantingDate),
		HarvestDate:  formatDate(p.HarvestDate),
		YieldKg:      p.YieldKg,
		Profit:       p.Profit,
		Status:       p.Status,
	}
}

func (h *Handler) handleCreateFarm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string   `json:"name"`
		Location  string   `json:"location"`
		SizeAcres float64  `json:"size_acres"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Farm name required")
		return
	}
	if req.SizeAcres <= 0 {
		writeError(w, http.StatusBadRequest, "Farm size must be positive")
		return
	}

	farm, err := h.accounts.CreateFarm(r.Context(), requestUserID(r), req.Name, req.Location, req.SizeAcres, req.Latitude, req.Longitude)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create farm")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Farm created successfully",
		"farm":    farmToPayload(farm),
	})
}

func (h *Handler) handleListFarms(w http.ResponseWriter, r *http.Request) {
	farms, err := h.accounts.ListFarms(r.Context(), requestUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list farms")
		return
	}

	payloads := make([]farmPayload, 0, len(farms))
	for _, f := range farms {
		payloads = append(payloads, farmToPayload(f))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"farms": payloads,
		"total": len(payloads),
	})
}

func (h *Handler) handleGetFarm(w http.ResponseWriter, r *http.Request) {
	farm, err := h.accounts.GetFarm(r.Context(), requestUserID(r), r.PathValue("farmID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load farm")
		return
	}
	if farm == nil {
		writeError(w, http.StatusNotFound, "Farm not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"farm": farmToPayload(farm)})
}

func (h *Handler) handleUpdateFarm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      *string  `json:"name"`
		Location  *string  `json:"location"`
		SizeAcres *float64 `json:"size_acres"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	farm, err := h.accounts.UpdateFarm(r.Context(), requestUserID(r), r.PathValue("farmID"), account.FarmUpdate{
		Name:      req.Name,
		Location:  req.Location,
		SizeAcres: req.SizeAcres,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update farm")
		return
	}
	if farm == nil {
		writeError(w, http.StatusNotFound, "Farm not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Farm updated successfully",
		"farm":    farmToPayload(farm),
	})
}

func (h *Handler) handleDeleteFarm(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.DeleteFarm(r.Context(), requestUserID(r), r.PathValue("farmID")); err != nil {
		writeError(w, http.StatusNotFound, "Farm not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Farm deleted successfully"})
}

func (h *Handler) handleCreatePlanting(w http.ResponseWriter, r *http.Request) {
	farm, err := h.accounts.GetFarm(r.Context(), requestUserID(r), r.PathValue("farmID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load farm")
		return
	}
	if farm == nil {
		writeError(w, http.StatusNotFound, "Farm not found")
		return
	}

	var req struct {
		Crop         string `json:"crop"`
		PlantingDate string `json:"planting_date"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Crop) == "" {
		writeError(w, http.StatusBadRequest, "Crop name required")
		return
	}

	var plantingDate *time.Time
	if req.PlantingDate != "" {
		t, err := time.Parse("2006-01-02", req.PlantingDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Planting date must be YYYY-MM-DD")
			return
		}
		plantingDate = &t
	}

	planting, err := h.accounts.CreatePlanting(r.Context(), farm.ID, strings.ToLower(strings.TrimSpace(req.Crop)), plantingDate)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create planting")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":  "Planting recorded successfully",
		"planting": plantingToPayload(planting),
	})
}

func (h *Handler) handleListPlantings(w http.ResponseWriter, r *http.Request) {
	farm, err := h.accounts.GetFarm(r.Context(), requestUserID(r), r.PathValue("farmID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load farm")
		return
	}
	if farm == nil {
		writeError(w, http.StatusNotFound, "Farm not found")
		return
	}

	plantings, err := h.accounts.ListPlantings(r.Context(), farm.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list plantings")
		return
	}

	payloads := make([]plantingPayload, 0, len(plantings))
	for _, p := range plantings {
		payloads = append(payloads, plantingToPayload(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"plantings": payloads,
		"total":     len(payloads),
	})
}
