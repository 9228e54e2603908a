// Package api implements the hosted Agriscope REST API.
// It serves authentication, crop recommendations, and the soil, weather,
// market, disease, translation, and voice assistant endpoints.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/agriscope/agriscope/internal/account"
	"github.com/agriscope/agriscope/internal/agrodata"
	"github.com/agriscope/agriscope/internal/auth"
	"github.com/agriscope/agriscope/internal/imagery"
	"github.com/agriscope/agriscope/pkg/scoring"
)

// AccountStore is the slice of account.Service the handlers depend on.
// Tests substitute an in-memory implementation.
type AccountStore interface {
	CreateUser(ctx context.Context, name, email, passwordHash string, location *string, farmSize *float64, preferredLanguage string) (*account.User, error)
	GetUserByEmail(ctx context.Context, email string) (*account.User, error)
	GetUser(ctx context.Context, id string) (*account.User, error)
	UpdateProfile(ctx context.Context, id string, upd account.ProfileUpdate) (*account.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	CreateFarm(ctx context.Context, userID, name, location string, sizeAcres float64, latitude, longitude *float64) (*account.Farm, error)
	GetFarm(ctx context.Context, userID, farmID string) (*account.Farm, error)
	UpdateFarm(ctx context.Context, userID, farmID string, upd account.FarmUpdate) (*account.Farm, error)
	ListFarms(ctx context.Context, userID string) ([]*account.Farm, error)
	FindFarmNear(ctx context.Context, userID string, latitude, longitude, tolerance float64) (*account.Farm, error)
	SetFarmSoilData(ctx context.Context, farmID string, soilData json.RawMessage) error
	DeleteFarm(ctx context.Context, userID, farmID string) error
	CreatePlanting(ctx context.Context, farmID, crop string, plantingDate *time.Time) (*account.Planting, error)
	ListPlantings(ctx context.Context, farmID string) ([]*account.Planting, error)
	SaveRecommendation(ctx context.Context, userID, location string, soil, weather, market, recommendations json.RawMessage, confidence float64) (*account.RecommendationRecord, error)
	RecommendationHistory(ctx context.Context, userID string, page, perPage int) ([]*account.RecommendationRecord, account.Pagination, error)
}

// Handler is the top-level API handler for the hosted Agriscope service.
type Handler struct {
	db       *sql.DB
	accounts AccountStore
	tokens   *auth.Manager
	engine   *scoring.Engine
	data     *agrodata.Provider
	imagery  *imagery.Service
	boards   *BoardCache
	sessions *sessionStore
}

// NewHandler creates a new API handler.
func NewHandler(db *sql.DB, accounts AccountStore, tokens *auth.Manager, engine *scoring.Engine, data *agrodata.Provider, imagerySvc *imagery.Service, boards *BoardCache) *Handler {
	if boards == nil {
		boards = NewBoardCacheFromEnv()
	}
	return &Handler{
		db:       db,
		accounts: accounts,
		tokens:   tokens,
		engine:   engine,
		data:     data,
		imagery:  imagerySvc,
		boards:   boards,
		sessions: newSessionStore(),
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Account endpoints
	mux.HandleFunc("POST /api/v1/auth/register", h.handleRegister)
	mux.HandleFunc("POST /api/v1/auth/login", h.handleLogin)
	mux.HandleFunc("GET /api/v1/auth/profile", h.authed(h.handleGetProfile))
	mux.HandleFunc("PUT /api/v1/auth/profile", h.authed(h.handleUpdateProfile))
	mux.HandleFunc("POST /api/v1/auth/change-password", h.authed(h.handleChangePassword))

	// Farm management (auth-protected)
	mux.HandleFunc("POST /api/v1/farms", h.authed(h.handleCreateFarm))
	mux.HandleFunc("GET /api/v1/farms", h.authed(h.handleListFarms))
	mux.HandleFunc("GET /api/v1/farms/{farmID}", h.authed(h.handleGetFarm))
	mux.HandleFunc("PUT /api/v1/farms/{farmID}", h.authed(h.handleUpdateFarm))
	mux.HandleFunc("DELETE /api/v1/farms/{farmID}", h.authed(h.handleDeleteFarm))
	mux.HandleFunc("POST /api/v1/farms/{farmID}/plantings", h.authed(h.handleCreatePlanting))
	mux.HandleFunc("GET /api/v1/farms/{farmID}/plantings", h.authed(h.handleListPlantings))

	// Recommendation endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/recommendations/crops", h.authed(h.handleRecommendCrops))
	mux.HandleFunc("GET /api/v1/recommendations/history", h.authed(h.handleRecommendationHistory))
	mux.HandleFunc("POST /api/v1/recommendations/optimize", h.authed(h.handleOptimize))

	// Soil endpoints (auth-protected)
	mux.HandleFunc("GET /api/v1/soil/farms", h.authed(h.handleFarmSoil))
	mux.HandleFunc("GET /api/v1/soil/{lat}/{lng}", h.authed(h.handleSoilData))
	mux.HandleFunc("POST /api/v1/soil/analyze", h.authed(h.handleSoilAnalyze))

	// Weather endpoints
	mux.HandleFunc("GET /api/v1/weather/forecast/{location}", h.handleForecast)
	mux.HandleFunc("GET /api/v1/weather/alerts/{location}", h.handleWeatherAlerts)
	mux.HandleFunc("GET /api/v1/weather/agricultural-conditions/{location}", h.handleAgriculturalConditions)
	mux.HandleFunc("GET /api/v1/weather/{location}", h.handleCurrentWeather)

	// Market endpoints
	mux.HandleFunc("GET /api/v1/market/prices", h.handleMarketPrices)
	mux.HandleFunc("GET /api/v1/market/prices/{crop}", h.handleCropPrice)
	mux.HandleFunc("GET /api/v1/market/trends", h.handleMarketTrends)
	mux.HandleFunc("POST /api/v1/market/recommendations", h.handleMarketRecommendations)

	// Disease detection endpoints
	mux.HandleFunc("POST /api/v1/disease/detect", h.handleDetect)
	mux.HandleFunc("POST /api/v1/disease/detect-batch", h.handleDetectBatch)
	mux.HandleFunc("GET /api/v1/disease/diseases/{crop}", h.handleCropDiseases)
	mux.HandleFunc("GET /api/v1/disease/prevention-guide", h.handlePreventionGuide)

	// Translation endpoints
	mux.HandleFunc("POST /api/v1/translate/translate", h.handleTranslate)
	mux.HandleFunc("POST /api/v1/translate/translate-batch", h.handleTranslateBatch)
	mux.HandleFunc("GET /api/v1/translate/languages", h.handleLanguages)
	mux.HandleFunc("POST /api/v1/translate/detect-language", h.handleDetectLanguage)
	mux.HandleFunc("GET /api/v1/translate/agricultural-terms", h.handleAgriculturalTerms)
	mux.HandleFunc("POST /api/v1/translate/translate-recommendations", h.handleTranslateRecommendations)

	// Voice assistant endpoints
	mux.HandleFunc("POST /api/v1/voice/query", h.handleVoiceQuery)
	mux.HandleFunc("POST /api/v1/voice/query-batch", h.handleVoiceQueryBatch)
	mux.HandleFunc("GET /api/v1/voice/intents", h.handleVoiceIntents)
	mux.HandleFunc("POST /api/v1/voice/conversation", h.handleStartConversation)
	mux.HandleFunc("POST /api/v1/voice/conversation/{sessionID}", h.handleConversationTurn)
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
