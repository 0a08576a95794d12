package bigdatacloud

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/AjayAntoIsDev/SafeRoute/internal/httputil"
)

// API Docs: https://www.bigdatacloud.com/free-api/free-reverse-geocode-to-city-api
// Sample request: https://api.bigdatacloud.net/data/reverse-geocode-client?latitude=19.07&longitude=72.87&localityLanguage=en
const (
	baseURL = "https://api.bigdatacloud.net/data/reverse-geocode-client"
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
		logger:     logger.With("component", "bigdatacloud-client"),
	}
}

func (c *Client) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*ReverseGeocodeAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("localityLanguage", "en")
	u.RawQuery = q.Encode()

	var apiResp ReverseGeocodeAPIResponse
	if err := httputil.GetJSON(ctx, c.httpClient, u.String(), &apiResp); err != nil {
		c.logger.Warn("reverse geocode request failed", "error", err)
		return nil, err
	}

	return &apiResp, nil
}
