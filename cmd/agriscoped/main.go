// Command agriscoped is the Agriscope platform service.
// It serves the crop recommendation API plus the soil, weather, market,
// disease, translation, and voice assistant endpoints.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/agriscope/agriscope/internal/account"
	"github.com/agriscope/agriscope/internal/agrodata"
	"github.com/agriscope/agriscope/internal/api"
	"github.com/agriscope/agriscope/internal/auth"
	"github.com/agriscope/agriscope/internal/imagery"
	"github.com/agriscope/agriscope/internal/platform"
	"github.com/agriscope/agriscope/pkg/agronomy"
	"github.com/agriscope/agriscope/pkg/scoring"
)

type config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	TokenTTLHours  int
	StorageBackend string
	StoragePath    string
	S3Bucket       string
	S3Region       string
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string
	GCSBucket      string
}

func loadConfig() config {
	ttl := 24
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			ttl = parsed
		}
	}
	return config{
		Port:           envOrDefault("PORT", "8080"),
		DatabaseURL:    envOrDefault("DATABASE_URL", "postgres://localhost:5432/agriscope?sslmode=disable"),
		JWTSecret:      envOrDefault("JWT_SECRET", "dev-secret-change-me"),
		TokenTTLHours:  ttl,
		StorageBackend: envOrDefault("STORAGE_BACKEND", "local"),
		StoragePath:    envOrDefault("LOCAL_STORAGE_PATH", "/tmp/agriscope-data"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       os.Getenv("S3_REGION"),
		S3Endpoint:     os.Getenv("S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("S3_SECRET_KEY"),
		GCSBucket:      os.Getenv("GCS_BUCKET"),
	}
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	db, err := platform.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := platform.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	storage, err := buildStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}

	accounts := account.NewService(db)
	tokens := auth.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	engine := scoring.NewEngine(scoring.DefaultFactors()...).WithProfiles(agronomy.Profiles())
	provider := agrodata.NewProvider()
	imagerySvc := imagery.NewService(storage)

	handler := api.NewHandler(db, accounts, tokens, engine, provider, imagerySvc, nil)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", healthHandler(db))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: api.CORS(mux),
	}

	// Graceful shutdown
	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("starting agriscoped on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-shutdownCtx.Done()
	log.Println("shutting down...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func buildStorage(ctx context.Context, cfg config) (imagery.StorageClient, error) {
	switch cfg.StorageBackend {
	case "s3":
		return imagery.NewS3Storage(ctx, imagery.S3Config{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
	case "gcs":
		return imagery.NewGCSStorage(ctx, cfg.GCSBucket)
	default:
		return imagery.NewLocalStorage(cfg.StoragePath), nil
	}
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
