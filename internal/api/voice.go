package api

import (
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agriscope/agriscope/pkg/voice"
)

const maxBatchQueries = 10

// sessionStore holds in-memory conversation state. Sessions live for the
// process lifetime; a restart starts everyone over.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*conversation
}

type conversation struct {
	Language  string
	Location  string
	TurnCount int
	StartedAt time.Time
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*conversation)}
}

func (s *sessionStore) start(language, location string, now time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.sessions[id] = &conversation{
		Language:  language,
		Location:  location,
		StartedAt: now,
	}
	return id
}

// turn increments and returns the session's turn counter, or 0 when the
// session does not exist.
func (s *sessionStore) turn(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.sessions[id]
	if !ok {
		return 0
	}
	conv.TurnCount++
	return conv.TurnCount
}

// processingTime simulates model latency, derived from the query so
// repeated requests report the same figure.
func processingTime(query string) float64 {
	return math.Round((0.5+float64(len(query)%100)/100)*100) / 100
}

func (h *Handler) queryMetadata(query, language, location string, match voice.Match) map[string]any {
	if language == "" {
		language = "en"
	}
	return map[string]any{
		"query":           query,
		"detected_intent": match.Intent,
		"confidence":      match.Confidence,
		"language":        language,
		"user_location":   location,
		"processing_time": processingTime(query),
		"timestamp":       h.data.Now().UTC().Format(time.RFC3339),
	}
}

func (h *Handler) handleVoiceQuery(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query        string `json:"query"`
		Language     string `json:"language"`
		UserLocation string `json:"user_location"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "Query text is required")
		return
	}

	match := voice.Classify(req.Query)
	response := voice.Respond(match.Intent)

	writeJSON(w, http.StatusOK, map[string]any{
		"response": response,
		"metadata": h.queryMetadata(req.Query, req.Language, req.UserLocation, match),
	})
}

func (h *Handler) handleVoiceQueryBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Queries      []string `json:"queries"`
		Language     string   `json:"language"`
		UserLocation string   `json:"user_location"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Queries) == 0 {
		writeError(w, http.StatusBadRequest, "Queries required")
		return
	}
	if len(req.Queries) > maxBatchQueries {
		writeError(w, http.StatusBadRequest, "Maximum 10 queries allowed per batch")
		return
	}

	type batchResult struct {
		Index    int             `json:"index"`
		Success  bool            `json:"success"`
		Response *voice.Response `json:"response,omitempty"`
		Intent   string          `json:"detected_intent,omitempty"`
		Error    string          `json:"error,omitempty"`
	}

	results := make([]batchResult, 0, len(req.Queries))
	successes := 0
	for i, query := range req.Queries {
		if strings.TrimSpace(query) == "" {
			results = append(results, batchResult{Index: i, Error: "Query text is required"})
			continue
		}
		match := voice.Classify(query)
		response := voice.Respond(match.Intent)
		successes++
		results = append(results, batchResult{Index: i, Success: true, Response: &response, Intent: match.Intent})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"batch_results":        results,
		"total_queries":        len(req.Queries),
		"successful_responses": successes,
		"timestamp":            h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleVoiceIntents(w http.ResponseWriter, r *http.Request) {
	intents := voice.Intents()
	writeJSON(w, http.StatusOK, map[string]any{
		"supported_intents": intents,
		"total":             len(intents),
	})
}

func (h *Handler) handleStartConversation(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Language     string `json:"language"`
		UserLocation string `json:"user_location"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	sessionID := h.sessions.start(req.Language, req.UserLocation, h.data.Now())

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":        sessionID,
		"greeting":          voice.Greeting,
		"suggested_queries": voice.SuggestedQueries(),
		"timestamp":         h.data.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) handleConversationTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req struct {
		Query string `json:"query"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "Query text is required")
		return
	}

	turn := h.sessions.turn(sessionID)
	if turn == 0 {
		writeError(w, http.StatusNotFound, "Conversation not found")
		return
	}

	match := voice.Classify(req.Query)
	response := voice.Respond(match.Intent)

	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":        sessionID,
		"conversation_turn": turn,
		"response":          response,
		"metadata":          h.queryMetadata(req.Query, "", "", match),
	})
}
