package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/agriscope/agriscope/internal/agrodata"
	"github.com/agriscope/agriscope/pkg/soil"
)

// farmMatchTolerance is how close (in degrees) a farm's stored
// coordinates must be to a soil lookup to receive the sample.
const farmMatchTolerance = 0.01

func (h *Handler) handleSoilData(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.PathValue("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.PathValue("lng"), 64)
	if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		writeError(w, http.StatusBadRequest, "Invalid coordinates")
		return
	}

	sample := h.data.SoilSample(lat, lng)

	// Attach the sample to a matching farm so later recommendation runs
	// can reuse it. Lookup failures never fail the request.
	farm, err := h.accounts.FindFarmNear(r.Context(), requestUserID(r), lat, lng, farmMatchTolerance)
	if err != nil {
		log.Printf("find farm near %.4f,%.4f: %v", lat, lng, err)
	} else if farm != nil {
		sampleJSON, _ := json.Marshal(sample)
		if err := h.accounts.SetFarmSoilData(r.Context(), farm.ID, sampleJSON); err != nil {
			log.Printf("store farm soil data: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"coordinates": map[string]float64{
			"latitude":  lat,
			"longitude": lng,
		},
		"soil_data": sample,
		"source":    "mock_soilgrids_api",
		"timestamp": h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleFarmSoil(w http.ResponseWriter, r *http.Request) {
	farms, err := h.accounts.ListFarms(r.Context(), requestUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list farms")
		return
	}

	type farmSoil struct {
		FarmID   string              `json:"farm_id"`
		FarmName string              `json:"farm_name"`
		Location string              `json:"location"`
		SoilData agrodata.SoilSample `json:"soil_data"`
	}
	entries := make([]farmSoil, 0, len(farms))
	for _, f := range farms {
		if f.Latitude == nil || f.Longitude == nil {
			continue
		}
		entries = append(entries, farmSoil{
			FarmID:   f.ID,
			FarmName: f.Name,
			Location: f.Location,
			SoilData: h.data.SoilSample(*f.Latitude, *f.Longitude),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"farms": entries,
		"total": len(entries),
	})
}

func (h *Handler) handleSoilAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SoilData json.RawMessage `json:"soil_data"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.SoilData) == 0 || string(req.SoilData) == "null" || string(req.SoilData) == "{}" {
		writeError(w, http.StatusBadRequest, "Soil data required")
		return
	}

	var sample agrodata.SoilSample
	if err := json.Unmarshal(req.SoilData, &sample); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid soil data")
		return
	}

	report := soil.Analyze(sample.Metrics())
	writeJSON(w, http.StatusOK, report)
}
