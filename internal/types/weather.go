package types

import (
	"encoding/json"
	"time"
)

// Data source markers for fetched records
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// WeatherSnapshot holds current conditions at a coordinate
type WeatherSnapshot struct {
	TemperatureC      float64         `json:"temperature"`
	HumidityPct       float64         `json:"humidity"`
	PressureHpa       float64         `json:"pressure"`
	WindSpeedMps      float64         `json:"wind_speed"`
	RainfallMmPerHour float64         `json:"rainfall"`
	Description       string          `json:"weather_description"`
	Forecast          json.RawMessage `json:"forecast_data,omitempty" swaggertype:"object"`
	Timestamp         time.Time       `json:"timestamp"`
	Source            string          `json:"source"`
}

// FallbackWeather returns the fixed snapshot used when live weather is unavailable
func FallbackWeather(now time.Time) WeatherSnapshot {
	return WeatherSnapshot{
		TemperatureC:      25,
		HumidityPct:       60,
		PressureHpa:       1013,
		WindSpeedMps:      5,
		RainfallMmPerHour: 0,
		Description:       "clear sky",
		Forecast:          json.RawMessage(`{"list":[]}`),
		Timestamp:         now,
		Source:            SourceFallback,
	}
}
