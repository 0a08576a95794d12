package openweather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/AjayAntoIsDev/SafeRoute/internal/httputil"
)

// API Docs: https://openweathermap.org/current and https://openweathermap.org/forecast5
// Sample request: https://api.openweathermap.org/data/2.5/weather?lat=19.07&lon=72.87&units=metric&appid=KEY
const (
	baseCurrentURL  = "https://api.openweathermap.org/data/2.5/weather"
	baseForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// ErrMissingAPIKey is returned when no API key is configured
var ErrMissingAPIKey = errors.New("openweather API key not configured")

type Client struct {
	httpClient  *http.Client
	currentURL  string
	forecastURL string
	apiKey      string
	logger      *slog.Logger
}

func NewClient(apiKey string, logger *slog.Logger) *Client {
	return NewClientWithURLs(apiKey, baseCurrentURL, baseForecastURL, logger)
}

// NewClientWithURLs creates a client against custom endpoints, empty values keep the defaults
func NewClientWithURLs(apiKey, currentURL, forecastURL string, logger *slog.Logger) *Client {
	if currentURL == "" {
		currentURL = baseCurrentURL
	}
	if forecastURL == "" {
		forecastURL = baseForecastURL
	}
	return &Client{
		httpClient:  &http.Client{},
		currentURL:  currentURL,
		forecastURL: forecastURL,
		apiKey:      apiKey,
		logger:      logger.With("component", "openweather-client"),
	}
}

// HasAPIKey reports whether requests can be made at all
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

func (c *Client) GetCurrent(ctx context.Context, latitude, longitude float64) (*CurrentAPIResponse, error) {
	u, err := c.buildURL(c.currentURL, latitude, longitude)
	if err != nil {
		return nil, err
	}

	var apiResp CurrentAPIResponse
	if err := httputil.GetJSON(ctx, c.httpClient, u, &apiResp); err != nil {
		c.logger.Warn("current weather request failed", "error", err)
		return nil, err
	}
	return &apiResp, nil
}

func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := c.buildURL(c.forecastURL, latitude, longitude)
	if err != nil {
		return nil, err
	}

	var apiResp ForecastAPIResponse
	if err := httputil.GetJSON(ctx, c.httpClient, u, &apiResp); err != nil {
		c.logger.Warn("forecast request failed", "error", err)
		return nil, err
	}
	return &apiResp, nil
}

func (c *Client) buildURL(base string, latitude, longitude float64) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
