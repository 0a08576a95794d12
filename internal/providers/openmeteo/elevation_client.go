package openmeteo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/AjayAntoIsDev/SafeRoute/internal/httputil"
)

// API Docs: https://open-meteo.com/en/docs/elevation-api
// Sample request: https://api.open-meteo.com/v1/elevation?latitude=19.076&longitude=72.8777
const (
	baseElevationURL = "https://api.open-meteo.com/v1/elevation"
)

type ElevationClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewElevationClient(logger *slog.Logger) *ElevationClient {
	return NewElevationClientWithURL(baseElevationURL, logger)
}

func NewElevationClientWithURL(baseURL string, logger *slog.Logger) *ElevationClient {
	if baseURL == "" {
		baseURL = baseElevationURL
	}
	return &ElevationClient{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "openmeteo-elevation-client"),
	}
}

func (c *ElevationClient) GetElevation(ctx context.Context, latitude, longitude float64) (*ElevationAPIResponse, error) {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	u.RawQuery = q.Encode()

	var apiResp ElevationAPIResponse
	if err := httputil.GetJSON(ctx, c.httpClient, u.String(), &apiResp); err != nil {
		c.logger.Warn("elevation request failed", "error", err)
		return nil, err
	}

	return &apiResp, nil
}
