package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/agriscope/agriscope/pkg/config"
)

// apiClient is a thin JSON client for the Agriscope server.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newClient(cfg *config.Config) *apiClient {
	timeout := time.Duration(cfg.Server.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &apiClient{
		baseURL: cfg.Server.URL,
		token:   cfg.Server.Token,
		http:    &http.Client{Timeout: timeout},
	}
}

// do sends one JSON request and decodes the response into out. Non-2xx
// responses surface the server's error message.
func (c *apiClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("server: %s", apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// loadCLIConfig finds and loads the CLI config, falling back to defaults.
func loadCLIConfig() (*config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	path := config.FindConfigFile(wd)
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
