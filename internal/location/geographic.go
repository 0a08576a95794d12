package location

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AjayAntoIsDev/SafeRoute/internal/geo"
	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/openmeteo"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"
)

// DefaultElevationM is assumed when the elevation provider cannot answer
const DefaultElevationM = 200.0

type GeographicFetcher struct {
	elevationProvider ElevationProvider
	timeout           time.Duration
	logger            *slog.Logger
}

func NewGeographicFetcher(elevationProvider ElevationProvider, timeout time.Duration, logger *slog.Logger) *GeographicFetcher {
	return &GeographicFetcher{
		elevationProvider: elevationProvider,
		timeout:           timeout,
		logger:            logger.With("component", "geographic-fetcher"),
	}
}

// Fetch combines the live elevation with the static lookups. If the
// elevation is unavailable the profile is built around DefaultElevationM.
func (f *GeographicFetcher) Fetch(ctx context.Context, latitude, longitude float64) types.GeographicProfile {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
	defer cancel()

	source := types.SourceLive
	elevation, err := f.elevation(ctx, latitude, longitude)
	if err != nil {
		f.logger.Warn("using fallback elevation",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		elevation = DefaultElevationM
		source = types.SourceFallback
	}

	return buildProfile(latitude, longitude, elevation, source)
}

func (f *GeographicFetcher) elevation(ctx context.Context, latitude, longitude float64) (float64, error) {
	resp, err := f.elevationProvider.GetElevation(ctx, latitude, longitude)
	if err != nil {
		return 0, fmt.Errorf("failed to get elevation: %w", err)
	}
	return translateElevation(resp)
}

// translateElevation extracts the single elevation from an OpenMeteo response
func translateElevation(resp *openmeteo.ElevationAPIResponse) (float64, error) {
	if resp == nil {
		return 0, fmt.Errorf("elevation response is nil")
	}
	if len(resp.Elevation) == 0 {
		return 0, fmt.Errorf("elevation response contains no data")
	}
	return resp.Elevation[0], nil
}

func buildProfile(latitude, longitude, elevation float64, source string) types.GeographicProfile {
	return types.GeographicProfile{
		ElevationM:        elevation,
		Terrain:           geo.ClassifyTerrain(elevation),
		SeismicZone:       geo.SeismicZone(latitude, longitude),
		ClimateZone:       geo.ClimateZoneAt(latitude, longitude),
		CoastalDistanceKm: geo.CoastalDistanceKm(latitude, longitude),
		Source:            source,
	}
}
