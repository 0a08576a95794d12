package assessment

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/AjayAntoIsDev/SafeRoute/internal/config"
	"github.com/AjayAntoIsDev/SafeRoute/internal/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(geocoder string) *config.Config {
	return &config.Config{
		Providers: config.ProvidersConfig{
			Timeout:  time.Second,
			Geocoder: geocoder,
		},
		LLM: config.LLMConfig{
			Model:       "test-model",
			Temperature: 0.2,
			MaxTokens:   100,
			Timeout:     time.Second,
		},
	}
}

func TestNewServiceFromConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, geocoder := range []string{config.GeocoderBigDataCloud, config.GeocoderNominatim} {
		t.Run(geocoder, func(t *testing.T) {
			svc, err := NewServiceFromConfig(testConfig(geocoder), observability.NopRecorder{}, logger)
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}

	t.Run("unknown geocoder", func(t *testing.T) {
		_, err := NewServiceFromConfig(testConfig("mapquest"), observability.NopRecorder{}, logger)
		assert.ErrorContains(t, err, "mapquest")
	})
}
