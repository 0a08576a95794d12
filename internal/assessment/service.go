// Package assessment orchestrates one risk assessment: it validates the
// coordinates, gathers weather, geography and place data in parallel and
// hands the joined results to the risk assessor.
package assessment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/AjayAntoIsDev/SafeRoute/internal/assessor"
	"github.com/AjayAntoIsDev/SafeRoute/internal/observability"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/jonboulle/clockwork"
)

// ErrInternal is returned when an assessment fails for a reason the caller
// cannot fix. No partial prediction accompanies it.
var ErrInternal = errors.New("internal assessment failure")

// Fetcher names used when reporting fallbacks
const (
	FetcherWeather    = "weather"
	FetcherGeographic = "geographic"
	FetcherLocation   = "location"
)

// WeatherFetcher never fails; it returns a fallback snapshot instead
type WeatherFetcher interface {
	Fetch(ctx context.Context, latitude, longitude float64) types.WeatherSnapshot
}

// GeographicFetcher never fails; it returns a fallback profile instead
type GeographicFetcher interface {
	Fetch(ctx context.Context, latitude, longitude float64) types.GeographicProfile
}

// PlaceFetcher never fails; it returns the unknown location instead
type PlaceFetcher interface {
	Fetch(ctx context.Context, latitude, longitude float64) types.LocationInfo
}

// RiskAssessor turns gathered data into a prediction
type RiskAssessor interface {
	Assess(ctx context.Context, in assessor.Input) types.Prediction
}

// Service runs assessments
type Service struct {
	weather    WeatherFetcher
	geographic GeographicFetcher
	place      PlaceFetcher
	assessor   RiskAssessor
	clock      clockwork.Clock
	recorder   observability.Recorder
	logger     *slog.Logger
}

func NewService(
	weather WeatherFetcher,
	geographic GeographicFetcher,
	place PlaceFetcher,
	riskAssessor RiskAssessor,
	clock clockwork.Clock,
	recorder observability.Recorder,
	logger *slog.Logger,
) *Service {
	if recorder == nil {
		recorder = observability.NopRecorder{}
	}
	return &Service{
		weather:    weather,
		geographic: geographic,
		place:      place,
		assessor:   riskAssessor,
		clock:      clock,
		recorder:   recorder,
		logger:     logger.With("component", "assessment-service"),
	}
}

// Assess produces a prediction for the coordinates. Out-of-bounds
// coordinates are rejected with an error wrapping types.ErrOutOfBounds
// before any upstream call is made.
func (s *Service) Assess(ctx context.Context, coords types.Coords) (*types.Prediction, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	start := s.clock.Now()
	lat, lon := coords.Latitude, coords.Longitude

	var (
		wg            sync.WaitGroup
		weather       types.WeatherSnapshot
		geographic    types.GeographicProfile
		place         types.LocationInfo
		weatherErr    error
		geographicErr error
		placeErr      error
	)

	wg.Add(3)

	go func() {
		defer wg.Done()
		weatherErr = safely(FetcherWeather, func() {
			weather = s.weather.Fetch(ctx, lat, lon)
		})
	}()

	go func() {
		defer wg.Done()
		geographicErr = safely(FetcherGeographic, func() {
			geographic = s.geographic.Fetch(ctx, lat, lon)
		})
	}()

	go func() {
		defer wg.Done()
		placeErr = safely(FetcherLocation, func() {
			place = s.place.Fetch(ctx, lat, lon)
		})
	}()

	wg.Wait()

	if err := errors.Join(weatherErr, geographicErr, placeErr); err != nil {
		s.logger.Error("fetch failed", "error", err, "latitude", lat, "longitude", lon)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.reportFallback(FetcherWeather, weather.Source)
	s.reportFallback(FetcherGeographic, geographic.Source)
	s.reportFallback(FetcherLocation, place.Source)

	var prediction types.Prediction
	err := safely("assessor", func() {
		prediction = s.assessor.Assess(ctx, assessor.Input{
			Coords:   coords,
			Weather:  weather,
			Geo:      geographic,
			Location: place,
		})
	})
	if err != nil {
		s.logger.Error("assessment failed", "error", err, "latitude", lat, "longitude", lon)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	elapsed := s.clock.Since(start)
	s.recorder.AssessmentCompleted(prediction.AnalysisSource, elapsed)
	s.logger.Info("assessment completed",
		"latitude", lat,
		"longitude", lon,
		"location", place.DisplayName(),
		"analysis_source", prediction.AnalysisSource,
		"risk_level", prediction.Analysis.Conclusion.RiskLevel,
		"duration", elapsed,
	)

	return &prediction, nil
}

func (s *Service) reportFallback(fetcher, source string) {
	if source == types.SourceFallback {
		s.recorder.FetchFallback(fetcher)
	}
}

// safely runs fn and converts a panic into an error
func safely(name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", name, r)
		}
	}()
	fn()
	return nil
}
