package openstreetmap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/AjayAntoIsDev/SafeRoute/internal/httputil"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=19.07&lon=72.87&format=json
const (
	baseURL = "https://nominatim.openstreetmap.org/reverse"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return NewClientWithURL(baseURL, logger)
}

func NewClientWithURL(base string, logger *slog.Logger) *Client {
	if base == "" {
		base = baseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    base,
		logger:     logger.With("component", "nominatim-client"),
	}
}

func (c *Client) Lookup(ctx context.Context, latitude, longitude float64) (*LookupAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "json")
	q.Set("accept-language", "en")
	u.RawQuery = q.Encode()

	var apiResp LookupAPIResponse
	if err := httputil.GetJSON(ctx, c.httpClient, u.String(), &apiResp); err != nil {
		c.logger.Warn("nominatim lookup failed", "error", err)
		return nil, err
	}

	return &apiResp, nil
}
