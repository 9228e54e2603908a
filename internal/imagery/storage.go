// Package imagery stores disease-detection uploads and their analysis
// reports in blob storage.
package imagery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for detection images and reports.
type StorageClient interface {
	PutImage(ctx context.Context, userID, imageID string, data []byte) error
	GetImage(ctx context.Context, userID, imageID string) ([]byte, error)
	PutReport(ctx context.Context, userID, imageID string, data []byte) error
	GetReport(ctx context.Context, userID, imageID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(userID, kind, id, ext string) string {
	return filepath.Join(s.BaseDir, userID, kind, id+ext)
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutImage stores an uploaded image.
func (s *LocalStorage) PutImage(ctx context.Context, userID, imageID string, data []byte) error {
	return s.put(s.path(userID, "images", imageID, ".bin"), data)
}

// GetImage retrieves an uploaded image.
func (s *LocalStorage) GetImage(ctx context.Context, userID, imageID string) ([]byte, error) {
	return os.ReadFile(s.path(userID, "images", imageID, ".bin"))
}

// PutReport stores a detection report.
func (s *LocalStorage) PutReport(ctx context.Context, userID, imageID string, data []byte) error {
	return s.put(s.path(userID, "reports", imageID, ".json"), data)
}

// GetReport retrieves a detection report.
func (s *LocalStorage) GetReport(ctx context.Context, userID, imageID string) ([]byte, error) {
	return os.ReadFile(s.path(userID, "reports", imageID, ".json"))
}
