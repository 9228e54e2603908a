// Package account manages Agriscope's persistent state: users, their
// farms and plantings, and saved recommendation runs.
package account

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Service provides user and farm management backed by Postgres.
type Service struct {
	db *sql.DB
}

// User is a registered account holder.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	Location          *string
	FarmSize          *float64
	PreferredLanguage string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Farm is one plot of land owned by a user.
type Farm struct {
	ID        string
	UserID    string
	Name      string
	Location  string
	SizeAcres float64
	SoilData  json.RawMessage
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Planting tracks one crop cycle on a farm.
type Planting struct {
	ID           string
	FarmID       string
	Crop         string
	PlantingDate *time.Time
	HarvestDate  *time.Time
	YieldKg      *float64
	Profit       *float64
	Conditions   json.RawMessage
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecommendationRecord is one saved recommendation run.
type RecommendationRecord struct {
	ID              string
	UserID          string
	Location        string
	SoilData        json.RawMessage
	WeatherData     json.RawMessage
	MarketData      json.RawMessage
	Recommendations json.RawMessage
	ConfidenceScore float64
	CreatedAt       time.Time
}

// NewService creates a new account Service.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// CreateUser registers a new user. The password arrives already hashed.
func (s *Service) CreateUser(ctx context.Context, name, email, passwordHash string, location *string, farmSize *float64, preferredLanguage string) (*User, error) {
	if preferredLanguage == "" {
		preferredLanguage = "en"
	}
	u := &User{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash, location, farm_size, preferred_language)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, email, password_hash, location, farm_size, preferred_language, created_at, updated_at`,
		name, email, passwordHash, location, farmSize, preferredLanguage,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Location, &u.FarmSize, &u.PreferredLanguage, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetUserByEmail looks up a user by email address.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, location, farm_size, preferred_language, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Location, &u.FarmSize, &u.PreferredLanguage, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// GetUser looks up a user by ID.
func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	u := &User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, location, farm_size, preferred_language, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Location, &u.FarmSize, &u.PreferredLanguage, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

// ProfileUpdate carries optional field changes for a user profile.
// Nil fields are left unchanged.
type ProfileUpdate struct {
	Name              *string
	Location          *string
	FarmSize          *float64
	PreferredLanguage *string
}

// UpdateProfile applies the non-nil fields of the update and returns the
// refreshed user.
func (s *Service) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*User, error) {
	u := &User{}
	err := s.db.QueryRowContext(ctx,
		`UPDATE users SET
		   name = COALESCE($2, name),
		   location = COALESCE($3, location),
		   farm_size = COALESCE($4, farm_size),
		   preferred_language = COALESCE($5, preferred_language),
		   updated_at = now()
		 WHERE id = $1
		 RETURNING id, name, email, password_hash, location, farm_size, preferred_language, created_at, updated_at`,
		id, upd.Name, upd.Location, upd.FarmSize, upd.PreferredLanguage,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Location, &u.FarmSize, &u.PreferredLanguage, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update profile %s: %w", id, err)
	}
	return u, nil
}

// UpdatePassword replaces a user's password hash.
func (s *Service) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("update password %s: %w", id, sql.ErrNoRows)
	}
	return nil
}

// CreateFarm adds a farm for a user.
func (s *Service) CreateFarm(ctx context.Context, userID, name, location string, sizeAcres float64, latitude, longitude *float64) (*Farm, error) {
	f := &Farm{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO farms (user_id, name, location, size_acres, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, name, location, size_acres, soil_data, latitude, longitude, created_at, updated_at`,
		userID, name, location, sizeAcres, latitude, longitude,
	).Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.SizeAcres, &f.SoilData, &f.Latitude, &f.Longitude, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create farm: %w", err)
	}
	return f, nil
}

// GetFarm fetches a farm owned by the given user.
func (s *Service) GetFarm(ctx context.Context, userID, farmID string) (*Farm, error) {
	f := &Farm{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, location, size_acres, soil_data, latitude, longitude, created_at, updated_at
		 FROM farms WHERE id = $1 AND user_id = $2`,
		farmID, userID,
	).Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.SizeAcres, &f.SoilData, &f.Latitude, &f.Longitude, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get farm %s: %w", farmID, err)
	}
	return f, nil
}

// FarmUpdate carries optional field changes for a farm. Nil fields are
// left unchanged.
type FarmUpdate struct {
	Name      *string
	Location  *string
	SizeAcres *float64
	Latitude  *float64
	Longitude *float64
}

// UpdateFarm applies the non-nil fields of the update to a farm owned by
// the given user and returns the refreshed farm.
func (s *Service) UpdateFarm(ctx context.Context, userID, farmID string, upd FarmUpdate) (*Farm, error) {
	f := &Farm{}
	err := s.db.QueryRowContext(ctx,
		`UPDATE farms SET
		   name = COALESCE($3, name),
		   location = COALESCE($4, location),
		   size_acres = COALESCE($5, size_acres),
		   latitude = COALESCE($6, latitude),
		   longitude = COALESCE($7, longitude),
		   updated_at = now()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, location, size_acres, soil_data, latitude, longitude, created_at, updated_at`,
		farmID, userID, upd.Name, upd.Location, upd.SizeAcres, upd.Latitude, upd.Longitude,
	).Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.SizeAcres, &f.SoilData, &f.Latitude, &f.Longitude, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update farm %s: %w", farmID, err)
	}
	return f, nil
}

// ListFarms returns all farms owned by a user, oldest first.
func (s *Service) ListFarms(ctx context.Context, userID string) ([]*Farm, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, name, location, size_acres, soil_data, latitude, longitude, created_at, updated_at
		 FROM farms WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list farms: %w", err)
	}
	defer rows.Close()

	var farms []*Farm
	for rows.Next() {
		f := &Farm{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.SizeAcres, &f.SoilData, &f.Latitude, &f.Longitude, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan farm: %w", err)
		}
		farms = append(farms, f)
	}
	return farms, rows.Err()
}

// FindFarmNear returns the user's farm whose coordinates fall within
// tolerance degrees of the given point, or nil if none does.
func (s *Service) FindFarmNear(ctx context.Context, userID string, latitude, longitude, tolerance float64) (*Farm, error) {
	f := &Farm{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, location, size_acres, soil_data, latitude, longitude, created_at, updated_at
		 FROM farms
		 WHERE user_id = $1
		   AND latitude BETWEEN $2 AND $3
		   AND longitude BETWEEN $4 AND $5
		 ORDER BY created_at LIMIT 1`,
		userID, latitude-tolerance, latitude+tolerance, longitude-tolerance, longitude+tolerance,
	).Scan(&f.ID, &f.UserID, &f.Name, &f.Location, &f.SizeAcres, &f.SoilData, &f.Latitude, &f.Longitude, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find farm near (%f, %f): %w", latitude, longitude, err)
	}
	return f, nil
}

// SetFarmSoilData stores the latest soil reading on a farm.
func (s *Service) SetFarmSoilData(ctx context.Context, farmID string, soilData json.RawMessage) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE farms SET soil_data = $2, updated_at = now() WHERE id = $1`,
		farmID, soilData,
	)
	if err != nil {
		return fmt.Errorf("set farm soil data %s: %w", farmID, err)
	}
	return nil
}

// DeleteFarm removes a farm and its plantings.
func (s *Service) DeleteFarm(ctx context.Context, userID, farmID string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM farms WHERE id = $1 AND user_id = $2`,
		farmID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete farm %s: %w", farmID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete farm %s: %w", farmID, sql.ErrNoRows)
	}
	return nil
}

// CreatePlanting records a new crop cycle on a farm.
func (s *Service) CreatePlanting(ctx context.Context, farmID, crop string, plantingDate *time.Time) (*Planting, error) {
	p := &Planting{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO plantings (farm_id, crop, planting_date)
		 VALUES ($1, $2, $3)
		 RETURNING id, farm_id, crop, planting_date, harvest_date, yield_kg, profit, conditions, status, created_at, updated_at`,
		farmID, crop, plantingDate,
	).Scan(&p.ID, &p.FarmID, &p.Crop, &p.PlantingDate, &p.HarvestDate, &p.YieldKg, &p.Profit, &p.Conditions, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create planting: %w", err)
	}
	return p, nil
}

// ListPlantings returns all plantings on a farm, newest first.
func (s *Service) ListPlantings(ctx context.Context, farmID string) ([]*Planting, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, farm_id, crop, planting_date, harvest_date, yield_kg, profit, conditions, status, created_at, updated_at
		 FROM plantings WHERE farm_id = $1 ORDER BY created_at DESC`,
		farmID,
	)
	if err != nil {
		return nil, fmt.Errorf("list plantings: %w", err)
	}
	defer rows.Close()

	var plantings []*Planting
	for rows.Next() {
		p := &Planting{}
		if err := rows.Scan(&p.ID, &p.FarmID, &p.Crop, &p.PlantingDate, &p.HarvestDate, &p.YieldKg, &p.Profit, &p.Conditions, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan planting: %w", err)
		}
		plantings = append(plantings, p)
	}
	return plantings, rows.Err()
}

// SaveRecommendation persists one recommendation run for history.
func (s *Service) SaveRecommendation(ctx context.Context, userID, location string, soil, weather, market, recommendations json.RawMessage, confidence float64) (*RecommendationRecord, error) {
	r := &RecommendationRecord{}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO recommendations (user_id, location, soil_data, weather_data, market_data, recommendations, confidence_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, user_id, location, soil_data, weather_data, market_data, recommendations, confidence_score, created_at`,
		userID, location, soil, weather, market, recommendations, confidence,
	).Scan(&r.ID, &r.UserID, &r.Location, &r.SoilData, &r.WeatherData, &r.MarketData, &r.Recommendations, &r.ConfidenceScore, &r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("save recommendation: %w", err)
	}
	return r, nil
}

// Pagination describes one page of a larger result set.
type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// RecommendationHistory returns a page of the user's saved runs, newest
// first. Page numbers start at 1.
func (s *Service) RecommendationHistory(ctx context.Context, userID string, page, perPage int) ([]*RecommendationRecord, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recommendations WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, Pagination{}, fmt.Errorf("count recommendations: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, location, soil_data, weather_data, market_data, recommendations, confidence_score, created_at
		 FROM recommendations WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, perPage, (page-1)*perPage,
	)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	var records []*RecommendationRecord
	for rows.Next() {
		r := &RecommendationRecord{}
		if err := rows.Scan(&r.ID, &r.UserID, &r.Location, &r.SoilData, &r.WeatherData, &r.MarketData, &r.Recommendations, &r.ConfidenceScore, &r.CreatedAt); err != nil {
			return nil, Pagination{}, fmt.Errorf("scan recommendation: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, Pagination{}, err
	}

	pages := (total + perPage - 1) / perPage
	pg := Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
	return records, pg, nil
}
