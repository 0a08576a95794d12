package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Reverse geocoder backends
const (
	GeocoderBigDataCloud = "bigdatacloud"
	GeocoderNominatim    = "nominatim"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Providers ProvidersConfig
	LLM       LLMConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// ProvidersConfig holds upstream data provider settings
type ProvidersConfig struct {
	Timeout      time.Duration // per-fetch budget
	Geocoder     string        // bigdatacloud, nominatim
	OpenWeather  OpenWeatherConfig
	OpenMeteo    OpenMeteoConfig
	BigDataCloud BigDataCloudConfig
	Nominatim    NominatimConfig
}

type OpenWeatherConfig struct {
	APIKey      string
	CurrentURL  string
	ForecastURL string
}

type OpenMeteoConfig struct {
	ElevationURL string
}

type BigDataCloudConfig struct {
	URL string
}

type NominatimConfig struct {
	URL string
}

// LLMConfig holds settings for the OpenAI-compatible chat completion endpoint
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
	MaxRetries  int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.saferoute")

	setDefaults(v)

	// Read from environment variables, e.g. SAFEROUTE_LLM_APIKEY
	v.SetEnvPrefix("SAFEROUTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("providers.timeout", 10*time.Second)
	v.SetDefault("providers.geocoder", GeocoderBigDataCloud)
	v.SetDefault("providers.openweather.apikey", "")
	v.SetDefault("providers.openweather.currenturl", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("providers.openweather.forecasturl", "https://api.openweathermap.org/data/2.5/forecast")
	v.SetDefault("providers.openmeteo.elevationurl", "https://api.open-meteo.com/v1/elevation")
	v.SetDefault("providers.bigdatacloud.url", "https://api.bigdatacloud.net/data/reverse-geocode-client")
	v.SetDefault("providers.nominatim.url", "https://nominatim.openstreetmap.org/reverse")

	v.SetDefault("llm.apikey", "")
	v.SetDefault("llm.baseurl", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.model", "deepseek-r1-distill-llama-70b")
	v.SetDefault("llm.temperature", 0.2)
	v.SetDefault("llm.maxtokens", 2500)
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("llm.maxretries", 2)
}

// Validate checks the configuration for values the service cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if c.Providers.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("providers.timeout must be positive, got %s", c.Providers.Timeout))
	}
	switch c.Providers.Geocoder {
	case GeocoderBigDataCloud, GeocoderNominatim:
	default:
		errs = append(errs, fmt.Errorf("providers.geocoder %q is not one of %s, %s", c.Providers.Geocoder, GeocoderBigDataCloud, GeocoderNominatim))
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		errs = append(errs, fmt.Errorf("llm.temperature must be between 0 and 2, got %v", c.LLM.Temperature))
	}
	if c.LLM.MaxTokens <= 0 {
		errs = append(errs, fmt.Errorf("llm.maxtokens must be positive, got %d", c.LLM.MaxTokens))
	}
	if c.LLM.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("llm.timeout must be positive, got %s", c.LLM.Timeout))
	}
	if c.LLM.MaxRetries < 0 {
		errs = append(errs, fmt.Errorf("llm.maxretries must not be negative, got %d", c.LLM.MaxRetries))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
