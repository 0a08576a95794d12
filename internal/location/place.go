package location

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/bigdatacloud"
	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/openstreetmap"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"
)

type PlaceFetcher struct {
	geocoder ReverseGeocoder
	timeout  time.Duration
	logger   *slog.Logger
}

func NewPlaceFetcher(geocoder ReverseGeocoder, timeout time.Duration, logger *slog.Logger) *PlaceFetcher {
	return &PlaceFetcher{
		geocoder: geocoder,
		timeout:  timeout,
		logger:   logger.With("component", "place-fetcher"),
	}
}

// Fetch reverse geocodes the coordinate, returning types.UnknownLocation on failure
func (f *PlaceFetcher) Fetch(ctx context.Context, latitude, longitude float64) types.LocationInfo {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.timeout)
	defer cancel()

	info, err := f.geocoder.ReverseGeocode(ctx, latitude, longitude)
	if err != nil {
		f.logger.Warn("using fallback location",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return types.UnknownLocation()
	}
	return info
}

type bigDataCloudGeocoder struct {
	provider BigDataCloudProvider
}

// NewBigDataCloudGeocoder adapts the BigDataCloud client to ReverseGeocoder
func NewBigDataCloudGeocoder(provider BigDataCloudProvider) ReverseGeocoder {
	return &bigDataCloudGeocoder{provider: provider}
}

func (g *bigDataCloudGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (types.LocationInfo, error) {
	resp, err := g.provider.ReverseGeocode(ctx, latitude, longitude)
	if err != nil {
		return types.LocationInfo{}, fmt.Errorf("failed to get location: %w", err)
	}
	return translateBigDataCloud(resp)
}

// translateBigDataCloud converts a BigDataCloud response to domain LocationInfo
func translateBigDataCloud(resp *bigdatacloud.ReverseGeocodeAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("reverse geocode response is nil")
	}

	district := ""
	if len(resp.LocalityInfo.Administrative) > 0 {
		district = resp.LocalityInfo.Administrative[0].Name
	}

	return types.LocationInfo{
		City:       orDefault(resp.City, "Unknown"),
		State:      orDefault(resp.PrincipalSubdivision, "Unknown"),
		District:   orDefault(district, "Unknown"),
		Country:    orDefault(resp.CountryName, "India"),
		PostalCode: resp.Postcode,
		Locality:   resp.Locality,
		Source:     types.SourceLive,
	}, nil
}

type nominatimGeocoder struct {
	provider NominatimProvider
}

// NewNominatimGeocoder adapts the OpenStreetMap Nominatim client to ReverseGeocoder
func NewNominatimGeocoder(provider NominatimProvider) ReverseGeocoder {
	return &nominatimGeocoder{provider: provider}
}

func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (types.LocationInfo, error) {
	resp, err := g.provider.Lookup(ctx, latitude, longitude)
	if err != nil {
		return types.LocationInfo{}, fmt.Errorf("failed to get location: %w", err)
	}
	return translateNominatim(resp)
}

// translateNominatim converts an OpenStreetMap reverse lookup response to domain LocationInfo
func translateNominatim(resp *openstreetmap.LookupAPIResponse) (types.LocationInfo, error) {
	if resp == nil {
		return types.LocationInfo{}, fmt.Errorf("lookup response is nil")
	}

	// Prefer the settlement; fall back to the place name for rural points
	city := resp.Address.Settlement()
	if city == "" {
		city = resp.Name
	}

	return types.LocationInfo{
		City:       orDefault(city, "Unknown"),
		State:      orDefault(resp.Address.State, "Unknown"),
		District:   orDefault(resp.Address.District(), "Unknown"),
		Country:    orDefault(resp.Address.Country, "India"),
		PostalCode: resp.Address.Postcode,
		Locality:   resp.Address.Suburb,
		Source:     types.SourceLive,
	}, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
