package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/agriscope/agriscope/pkg/translate"
)

const maxBatchTexts = 50

func supportedLanguageCodes() []string {
	langs := translate.Languages()
	codes := make([]string, len(langs))
	for i, l := range langs {
		codes[i] = l.Code
	}
	return codes
}

func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text           string `json:"text"`
		SourceLanguage string `json:"source_language"`
		TargetLanguage string `json:"target_language"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}
	if req.SourceLanguage == "" {
		req.SourceLanguage = "en"
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = "en"
	}

	result, err := translate.Translate(req.Text, req.SourceLanguage, req.TargetLanguage)
	if err != nil {
		var unsupported *translate.ErrUnsupportedLanguage
		if errors.As(err, &unsupported) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":               "Unsupported language",
				"supported_languages": supportedLanguageCodes(),
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "Translation failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"original_text":       result.OriginalText,
		"translated_text":     result.TranslatedText,
		"source_language":     result.SourceLanguage,
		"target_language":     result.TargetLanguage,
		"confidence":          result.Confidence,
		"character_count":     result.CharacterCount,
		"translation_service": "mock_translator_v1.0",
		"timestamp":           h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleTranslateBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Texts          []string `json:"texts"`
		SourceLanguage string   `json:"source_language"`
		TargetLanguage string   `json:"target_language"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Texts) == 0 {
		writeError(w, http.StatusBadRequest, "Texts required")
		return
	}
	if len(req.Texts) > maxBatchTexts {
		writeError(w, http.StatusBadRequest, "Maximum 50 texts allowed per batch")
		return
	}
	if req.SourceLanguage == "" {
		req.SourceLanguage = "en"
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = "en"
	}
	if !translate.Supported(req.SourceLanguage) || !translate.Supported(req.TargetLanguage) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":               "Unsupported language",
			"supported_languages": supportedLanguageCodes(),
		})
		return
	}

	type batchResult struct {
		Index       int               `json:"index"`
		Success     bool              `json:"success"`
		Translation *translate.Result `json:"translation,omitempty"`
		Error       string            `json:"error,omitempty"`
	}

	results := make([]batchResult, 0, len(req.Texts))
	successes := 0
	for i, text := range req.Texts {
		if strings.TrimSpace(text) == "" {
			results = append(results, batchResult{Index: i, Error: "Text is required"})
			continue
		}
		result, err := translate.Translate(text, req.SourceLanguage, req.TargetLanguage)
		if err != nil {
			results = append(results, batchResult{Index: i, Error: "Translation failed"})
			continue
		}
		successes++
		results = append(results, batchResult{Index: i, Success: true, Translation: result})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"batch_results":           results,
		"total_texts":             len(req.Texts),
		"successful_translations": successes,
		"source_language":         req.SourceLanguage,
		"target_language":         req.TargetLanguage,
		"timestamp":               h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleLanguages(w http.ResponseWriter, r *http.Request) {
	langs := translate.Languages()
	writeJSON(w, http.StatusOK, map[string]any{
		"supported_languages": langs,
		"total":               len(langs),
	})
}

func (h *Handler) handleDetectLanguage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	result := translate.DetectLanguage(req.Text)
	writeJSON(w, http.StatusOK, map[string]any{
		"text":              result.Text,
		"detected_language": result.Language,
		"language_name":     result.LanguageName,
		"confidence":        result.Confidence,
		"character_count":   result.CharacterCount,
		"detection_service": "mock_detector_v1.0",
		"timestamp":         h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleAgriculturalTerms(w http.ResponseWriter, r *http.Request) {
	lang := r.URL.Query().Get("language")
	if lang == "" {
		lang = "en"
	}

	terms, ok := translate.Terms(lang)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":               "Unsupported language",
			"supported_languages": supportedLanguageCodes(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"language":      lang,
		"language_name": translate.LanguageName(lang),
		"terms":         terms,
		"total_terms":   len(terms),
	})
}

func (h *Handler) handleTranslateRecommendations(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Recommendations []map[string]any `json:"recommendations"`
		TargetLanguage  string           `json:"target_language"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Recommendations) == 0 {
		writeError(w, http.StatusBadRequest, "Recommendations required")
		return
	}
	if req.TargetLanguage == "" {
		req.TargetLanguage = "en"
	}
	if !translate.Supported(req.TargetLanguage) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":               "Unsupported language",
			"supported_languages": supportedLanguageCodes(),
		})
		return
	}

	translateText := func(text string) string {
		result, err := translate.Translate(text, "en", req.TargetLanguage)
		if err != nil {
			return text
		}
		return result.TranslatedText
	}

	translated := make([]map[string]any, 0, len(req.Recommendations))
	for _, rec := range req.Recommendations {
		out := make(map[string]any, len(rec))
		for k, v := range rec {
			out[k] = v
		}
		if crop, ok := out["crop"].(string); ok {
			out["crop"] = translateText(crop)
		}
		if text, ok := out["recommendation"].(string); ok {
			out["recommendation"] = translateText(text)
		}
		if factors, ok := out["factors"].([]any); ok {
			outFactors := make([]any, len(factors))
			for i, f := range factors {
				if s, ok := f.(string); ok {
					outFactors[i] = translateText(s)
				} else {
					outFactors[i] = f
				}
			}
			out["factors"] = outFactors
		}
		translated = append(translated, out)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"original_recommendations":   req.Recommendations,
		"translated_recommendations": translated,
		"target_language":            req.TargetLanguage,
		"timestamp":                  h.data.Now().UTC().Format(time.RFC3339),
	})
}
