// Package registry implements the external company-registration lookup as
// an HTTP collaborator. The scraping itself runs elsewhere; this client
// consumes its resolve-by-name API.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"docugen/internal/config"
	"docugen/internal/domain"
	"docugen/internal/port"
)

// Client implements port.CompanyRegistry over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a registry client from config.
func NewClient(cfg *config.RegistryConfig) *Client {
	return NewClientWithEndpoint(cfg, cfg.BaseURL)
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(cfg *config.RegistryConfig, endpoint string) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL: endpoint,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ port.CompanyRegistry = (*Client)(nil)

func (c *Client) Resolve(ctx context.Context, name string) (*domain.CompanyProfile, error) {
	if c.baseURL == "" {
		return nil, domain.ErrRegistryUnavailable
	}

	endpoint := fmt.Sprintf("%s/companies?name=%s", c.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("registry.Resolve: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRegistryUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", domain.ErrCompanyNotFound, name)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrRegistryUnavailable, resp.StatusCode, body)
	}

	var profile domain.CompanyProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("registry.Resolve: decoding response: %w", err)
	}
	return &profile, nil
}
