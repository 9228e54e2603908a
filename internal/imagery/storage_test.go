package imagery

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoragePutGetImage(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte("fake-image-bytes")
	if err := s.PutImage(ctx, "user1", "img1", data); err != nil {
		t.Fatalf("PutImage: %v", err)
	}

	got, err := s.GetImage(ctx, "user1", "img1")
	if err != nil {
		t.Fatalf("GetImage: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetImage = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "user1", "images", "img1.bin")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected image at %s: %v", expectedPath, err)
	}
}

func TestLocalStoragePutGetReport(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"disease":"rust"}`)
	if err := s.PutReport(ctx, "user1", "img1", data); err != nil {
		t.Fatalf("PutReport: %v", err)
	}

	got, err := s.GetReport(ctx, "user1", "img1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetReport = %q, want %q", got, data)
	}

	expectedPath := filepath.Join(dir, "user1", "reports", "img1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected report at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetMissing(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	if _, err := s.GetImage(context.Background(), "user1", "nope"); err == nil {
		t.Error("GetImage on missing object: expected error")
	}
}

func TestServiceSaveDetection(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(NewLocalStorage(dir))
	ctx := context.Background()

	report := map[string]string{"disease": "early_blight", "severity": "moderate"}
	imageID := svc.SaveDetection(ctx, "user1", []byte("leaf-photo"), report)
	if imageID == "" {
		t.Fatal("SaveDetection returned empty ID")
	}

	raw, err := svc.GetReport(ctx, "user1", imageID)
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	var got map[string]string
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if got["disease"] != "early_blight" {
		t.Errorf("report disease = %q, want early_blight", got["disease"])
	}
}

func TestServiceNilStorage(t *testing.T) {
	svc := NewService(nil)

	// Archiving is disabled but detection flow must not break.
	imageID := svc.SaveDetection(context.Background(), "user1", []byte("x"), nil)
	if imageID == "" {
		t.Error("SaveDetection with nil storage returned empty ID")
	}
	if _, err := svc.GetReport(context.Background(), "user1", imageID); err == nil {
		t.Error("GetReport with nil storage: expected error")
	}
}
