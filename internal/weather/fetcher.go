// Package weather turns OpenWeatherMap responses into weather snapshots,
// substituting a fixed fallback snapshot whenever the upstream cannot answer.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/openweather"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/jonboulle/clockwork"
)

// Provider supplies current conditions and the short-range forecast
type Provider interface {
	GetCurrent(ctx context.Context, latitude, longitude float64) (*openweather.CurrentAPIResponse, error)
	GetForecast(ctx context.Context, latitude, longitude float64) (*openweather.ForecastAPIResponse, error)
}

type Fetcher struct {
	provider Provider
	timeout  time.Duration
	clock    clockwork.Clock
	logger   *slog.Logger
}

func NewFetcher(provider Provider, timeout time.Duration, clock clockwork.Clock, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		provider: provider,
		timeout:  timeout,
		clock:    clock,
		logger:   logger.With("component", "weather-fetcher"),
	}
}

// Fetch returns live conditions, or the fallback snapshot if anything fails.
// The fetch runs under its own timeout and ignores cancellation of ctx.
func (f *Fetcher) Fetch(ctx context.Context, latitude, longitude float64) types.WeatherSnapshot {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
	defer cancel()

	snapshot, err := f.fetch(ctx, latitude, longitude)
	if err != nil {
		f.logger.Warn("using fallback weather",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return types.FallbackWeather(f.clock.Now().UTC())
	}
	return snapshot
}

func (f *Fetcher) fetch(ctx context.Context, latitude, longitude float64) (types.WeatherSnapshot, error) {
	current, err := f.provider.GetCurrent(ctx, latitude, longitude)
	if err != nil {
		return types.WeatherSnapshot{}, fmt.Errorf("failed to get current weather: %w", err)
	}

	forecast, err := f.provider.GetForecast(ctx, latitude, longitude)
	if err != nil {
		return types.WeatherSnapshot{}, fmt.Errorf("failed to get forecast: %w", err)
	}

	return mapToSnapshot(current, forecast, f.clock.Now().UTC())
}

func mapToSnapshot(current *openweather.CurrentAPIResponse, forecast *openweather.ForecastAPIResponse, now time.Time) (types.WeatherSnapshot, error) {
	if current == nil {
		return types.WeatherSnapshot{}, fmt.Errorf("current weather response is nil")
	}

	var rain float64
	if current.Rain != nil {
		rain = current.Rain.OneHour
	}

	var description string
	if len(current.Weather) > 0 {
		description = current.Weather[0].Description
	}

	forecastJSON := json.RawMessage(`{"list":[]}`)
	if forecast != nil {
		raw, err := json.Marshal(forecast)
		if err != nil {
			return types.WeatherSnapshot{}, fmt.Errorf("failed to encode forecast: %w", err)
		}
		forecastJSON = raw
	}

	return types.WeatherSnapshot{
		TemperatureC:      current.Main.Temp,
		HumidityPct:       current.Main.Humidity,
		PressureHpa:       current.Main.Pressure,
		WindSpeedMps:      current.Wind.Speed,
		RainfallMmPerHour: rain,
		Description:       description,
		Forecast:          forecastJSON,
		Timestamp:         now,
		Source:            types.SourceLive,
	}, nil
}
