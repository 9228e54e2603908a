package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.URL != "http://localhost:8080" {
		t.Errorf("expected default URL 'http://localhost:8080', got %q", cfg.Server.URL)
	}
	if cfg.Server.Timeout != 30 {
		t.Errorf("expected default timeout 30, got %d", cfg.Server.Timeout)
	}
	if cfg.Farm.SizeAcres != 1 {
		t.Errorf("expected default farm size 1, got %f", cfg.Farm.SizeAcres)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "non-existent file returns defaults",
			yaml: "", // signal: don't create a file
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.URL != "http://localhost:8080" {
					t.Errorf("expected default URL, got %q", cfg.Server.URL)
				}
				if cfg.Server.Timeout != 30 {
					t.Errorf("expected default timeout 30, got %d", cfg.Server.Timeout)
				}
			},
		},
		{
			name: "valid YAML overrides defaults",
			yaml: `
server:
  url: "https://api.example.com"
  token: "abc123"
  timeout: 10
farm:
  location: "nashik"
  latitude: 19.99
  longitude: 73.78
  size_acres: 4.5
  budget: 60000
`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Server.URL != "https://api.example.com" {
					t.Errorf("expected URL 'https://api.example.com', got %q", cfg.Server.URL)
				}
				if cfg.Server.Token != "abc123" {
					t.Errorf("expected token 'abc123', got %q", cfg.Server.Token)
				}
				if cfg.Server.Timeout != 10 {
					t.Errorf("expected timeout 10, got %d", cfg.Server.Timeout)
				}
				if cfg.Farm.Location != "nashik" {
					t.Errorf("expected location 'nashik', got %q", cfg.Farm.Location)
				}
				if cfg.Farm.SizeAcres != 4.5 {
					t.Errorf("expected size_acres 4.5, got %f", cfg.Farm.SizeAcres)
				}
				if cfg.Farm.Budget != 60000 {
					t.Errorf("expected budget 60000, got %f", cfg.Farm.Budget)
				}
			},
		},
		{
			name:    "invalid YAML returns error",
			yaml:    "{{invalid yaml",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")

			if tc.yaml == "" && tc.name == "non-existent file returns defaults" {
				// Don't create file - test loading non-existent path
				cfg, err := Load(path)
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				tc.check(t, cfg)
				return
			}

			if err := os.WriteFile(path, []byte(tc.yaml), 0o644); err != nil {
				t.Fatalf("write test config: %v", err)
			}

			cfg, err := Load(path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Token = "saved-token"
	cfg.Farm.Location = "pune"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if loaded.Server.Token != "saved-token" {
		t.Errorf("Token = %q, want 'saved-token'", loaded.Server.Token)
	}
	if loaded.Farm.Location != "pune" {
		t.Errorf("Location = %q, want 'pune'", loaded.Farm.Location)
	}
}

func TestFindConfigFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(filepath.Join(root, ".agriscope"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(root, ".agriscope", "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("server:\n  url: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Walks up from the nested directory to the root's config.
	if got := FindConfigFile(nested); got != cfgPath {
		t.Errorf("FindConfigFile = %q, want %q", got, cfgPath)
	}

	empty := t.TempDir()
	if got := FindConfigFile(empty); got != "" {
		t.Errorf("FindConfigFile(empty) = %q, want \"\"", got)
	}
}

func TestDirectoryFunctions(t *testing.T) {
	cache := CacheDir()
	reports := ReportDir()

	if !strings.Contains(cache, "agriscope") {
		t.Errorf("CacheDir should contain 'agriscope', got %q", cache)
	}
	if !strings.HasPrefix(reports, cache) {
		t.Errorf("ReportDir %q should live under CacheDir %q", reports, cache)
	}
}
