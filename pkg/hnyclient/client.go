// Package hnyclient provides the main entry point for creating Honeycomb API clients
package hnyclient

import (
	"fmt"
	"strings"

	"github.com/irvingpop/honeycomb-api/internal/client"
	"github.com/irvingpop/honeycomb-api/pkg/honeycomb"
)

// New creates a new Honeycomb API client from config. Credentials are
// validated eagerly; no network I/O happens until the first operation.
func New(config *honeycomb.Config) (honeycomb.Client, error) {
	if config == nil {
		return nil, honeycomb.ErrConfigRequired
	}

	// Normalize into a copy; the caller's config is never modified.
	cfg := *config
	if cfg.BaseURL != "" {
		cfg.BaseURL = normalizeBaseURL(cfg.BaseURL)
	}

	c, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeBaseURL trims trailing slashes and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewWithAPIKey creates a client authenticated with a configuration key.
func NewWithAPIKey(apiKey string) (honeycomb.Client, error) {
	return New(&honeycomb.Config{APIKey: apiKey})
}

// NewWithManagementKey creates a client authenticated with a management key
// pair, as required by the v2 management API.
func NewWithManagementKey(keyID, secret string) (honeycomb.Client, error) {
	return New(&honeycomb.Config{
		ManagementKey:    keyID,
		ManagementSecret: secret,
	})
}
