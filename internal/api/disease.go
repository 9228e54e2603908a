package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/agriscope/agriscope/pkg/disease"
)

const maxBatchImages = 10

// confidenceThreshold is reported alongside each detection so clients
// can flag low-confidence results.
const confidenceThreshold = 0.7

type detectRequest struct {
	ImageData string `json:"image_data"`
	CropType  string `json:"crop_type"`
}

// runDetection validates one detect request and runs the detector.
func runDetection(req detectRequest) (*disease.Detection, int, string) {
	if strings.TrimSpace(req.ImageData) == "" {
		return nil, http.StatusBadRequest, "Image data required"
	}
	crop := strings.ToLower(strings.TrimSpace(req.CropType))
	if crop == "" {
		return nil, http.StatusBadRequest, "Crop type required"
	}

	detection, err := disease.Detect(req.ImageData, crop)
	if err != nil {
		var unsupported *disease.ErrUnsupportedCrop
		if errors.As(err, &unsupported) {
			return nil, http.StatusBadRequest, "Unsupported crop type"
		}
		return nil, http.StatusInternalServerError, "Detection failed"
	}
	return detection, 0, ""
}

func (h *Handler) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req detectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	detection, status, msg := runDetection(req)
	if detection == nil {
		if msg == "Unsupported crop type" {
			writeJSON(w, status, map[string]any{
				"error":           msg,
				"supported_crops": disease.SupportedCrops(),
			})
			return
		}
		writeError(w, status, msg)
		return
	}

	recommendations := disease.Recommendations(detection)

	response := map[string]any{
		"detection":       detection,
		"recommendations": recommendations,
		"processing_info": map[string]any{
			"model_version":        "v2.1.0",
			"processing_time":      detection.ImageAnalysis.ProcessingTime,
			"confidence_threshold": confidenceThreshold,
		},
		"timestamp": h.data.Now().UTC().Format(time.RFC3339),
	}

	// Archive the submitted image and report when a user is signed in.
	if userID, ok := h.bearerUserID(r); ok {
		if imageID := h.imagery.SaveDetection(r.Context(), userID, []byte(req.ImageData), response); imageID != "" {
			response["image_id"] = imageID
		}
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleDetectBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Images []detectRequest `json:"images"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Images) == 0 {
		writeError(w, http.StatusBadRequest, "Images required")
		return
	}
	if len(req.Images) > maxBatchImages {
		writeError(w, http.StatusBadRequest, "Maximum 10 images allowed per batch")
		return
	}

	type batchResult struct {
		Index     int                `json:"index"`
		Success   bool               `json:"success"`
		Detection *disease.Detection `json:"detection,omitempty"`
		Error     string             `json:"error,omitempty"`
	}

	results := make([]batchResult, 0, len(req.Images))
	successes := 0
	for i, item := range req.Images {
		detection, _, msg := runDetection(item)
		if detection == nil {
			results = append(results, batchResult{Index: i, Error: msg})
			continue
		}
		successes++
		results = append(results, batchResult{Index: i, Success: true, Detection: detection})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"batch_results":         results,
		"total_images":          len(req.Images),
		"successful_detections": successes,
		"timestamp":             h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleCropDiseases(w http.ResponseWriter, r *http.Request) {
	crop := strings.ToLower(strings.TrimSpace(r.PathValue("crop")))
	catalog, ok := disease.CatalogFor(crop)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"error":           "Crop not found",
			"supported_crops": disease.SupportedCrops(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"crop":           crop,
		"diseases":       catalog.Diseases,
		"total_diseases": len(catalog.Diseases),
	})
}

func (h *Handler) handlePreventionGuide(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"prevention_guide": disease.Guide(),
		"timestamp":        h.data.Now().UTC().Format(time.RFC3339),
	})
}
