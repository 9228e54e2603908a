package imagery

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// Service archives detection uploads alongside their analysis reports.
type Service struct {
	storage StorageClient
}

// NewService creates a new imagery Service. A nil storage disables
// archiving; SaveDetection becomes a no-op returning a fresh ID.
func NewService(storage StorageClient) *Service {
	return &Service{storage: storage}
}

// SaveDetection stores the uploaded image bytes and the detection
// report under a new image ID. Storage failures are logged, not fatal:
// detection results still reach the caller.
func (s *Service) SaveDetection(ctx context.Context, userID string, image []byte, report any) string {
	imageID := uuid.New().String()
	if s.storage == nil {
		return imageID
	}

	if err := s.storage.PutImage(ctx, userID, imageID, image); err != nil {
		log.Printf("imagery: store image %s: %v", imageID, err)
		return imageID
	}

	data, err := json.Marshal(report)
	if err != nil {
		log.Printf("imagery: encode report %s: %v", imageID, err)
		return imageID
	}
	if err := s.storage.PutReport(ctx, userID, imageID, data); err != nil {
		log.Printf("imagery: store report %s: %v", imageID, err)
	}
	return imageID
}

// GetReport fetches a stored detection report.
func (s *Service) GetReport(ctx context.Context, userID, imageID string) (json.RawMessage, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("imagery storage not configured")
	}
	data, err := s.storage.GetReport(ctx, userID, imageID)
	if err != nil {
		return nil, fmt.Errorf("get report %s: %w", imageID, err)
	}
	return data, nil
}
