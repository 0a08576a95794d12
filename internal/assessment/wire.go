package assessment

import (
	"fmt"
	"log/slog"

	"github.com/AjayAntoIsDev/SafeRoute/internal/assessor"
	"github.com/AjayAntoIsDev/SafeRoute/internal/config"
	"github.com/AjayAntoIsDev/SafeRoute/internal/llm"
	"github.com/AjayAntoIsDev/SafeRoute/internal/location"
	"github.com/AjayAntoIsDev/SafeRoute/internal/observability"
	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/bigdatacloud"
	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/openmeteo"
	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/openstreetmap"
	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/openweather"
	"github.com/AjayAntoIsDev/SafeRoute/internal/timezone"
	"github.com/AjayAntoIsDev/SafeRoute/internal/weather"

	"github.com/jonboulle/clockwork"
)

// NewServiceFromConfig builds a Service backed by the real upstream clients
func NewServiceFromConfig(cfg *config.Config, recorder observability.Recorder, logger *slog.Logger) (*Service, error) {
	clock := clockwork.NewRealClock()
	providers := cfg.Providers

	weatherClient := openweather.NewClientWithURLs(
		providers.OpenWeather.APIKey,
		providers.OpenWeather.CurrentURL,
		providers.OpenWeather.ForecastURL,
		logger,
	)
	if !weatherClient.HasAPIKey() {
		logger.Warn("no OpenWeatherMap API key configured, weather will use fallback values")
	}

	elevationClient := openmeteo.NewElevationClientWithURL(providers.OpenMeteo.ElevationURL, logger)

	var geocoder location.ReverseGeocoder
	switch providers.Geocoder {
	case config.GeocoderBigDataCloud:
		geocoder = location.NewBigDataCloudGeocoder(bigdatacloud.NewClientWithURL(providers.BigDataCloud.URL, logger))
	case config.GeocoderNominatim:
		geocoder = location.NewNominatimGeocoder(openstreetmap.NewClientWithURL(providers.Nominatim.URL, logger))
	default:
		return nil, fmt.Errorf("unknown geocoder %q", providers.Geocoder)
	}

	llmClient := llm.NewOpenAIClient(llm.Options{
		APIKey:     cfg.LLM.APIKey,
		BaseURL:    cfg.LLM.BaseURL,
		Timeout:    cfg.LLM.Timeout,
		MaxRetries: cfg.LLM.MaxRetries,
	}, logger)
	if cfg.LLM.APIKey == "" {
		logger.Warn("no LLM API key configured, every assessment will be rule-based")
	}

	var zones assessor.ZoneResolver
	if tz, err := timezone.Shared(); err != nil {
		logger.Warn("timezone lookup unavailable, using IST", "error", err)
	} else {
		zones = tz
	}

	riskAssessor := assessor.New(
		llmClient,
		assessor.Settings{
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		},
		zones,
		clock,
		recorder,
		logger,
	)

	return NewService(
		weather.NewFetcher(weatherClient, providers.Timeout, clock, logger),
		location.NewGeographicFetcher(elevationClient, providers.Timeout, logger),
		location.NewPlaceFetcher(geocoder, providers.Timeout, logger),
		riskAssessor,
		clock,
		recorder,
		logger,
	), nil
}
