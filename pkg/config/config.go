// Package config handles loading and managing Agriscope configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the Agriscope CLI.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Farm   FarmConfig   `yaml:"farm"`
}

// ServerConfig points the CLI at an Agriscope API server.
type ServerConfig struct {
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`   // bearer token from login
	Timeout int    `yaml:"timeout"` // seconds
}

// FarmConfig carries the default farm used when a command does not
// specify one.
type FarmConfig struct {
	Location  string  `yaml:"location"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	SizeAcres float64 `yaml:"size_acres"`
	Budget    float64 `yaml:"budget"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:     "http://localhost:8080",
			Timeout: 30,
		},
		Farm: FarmConfig{
			SizeAcres: 1,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to the given path, creating parent directories
// as needed. Used to persist the token after login.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// FindConfigFile looks for .agriscope/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".agriscope", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// DefaultConfigPath returns ~/.agriscope/config.yaml, the path Save uses
// when the user has no project-local config.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".agriscope", "config.yaml")
}

// CacheDir returns the CLI cache directory.
// Uses ~/.cache/agriscope/ to avoid polluting working directories.
func CacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if HOME isn't available
		home = os.TempDir()
	}
	return filepath.Join(home, ".cache", "agriscope")
}

// ReportDir returns the directory saved recommendation reports go to.
func ReportDir() string {
	return filepath.Join(CacheDir(), "reports")
}
