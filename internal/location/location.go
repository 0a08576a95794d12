// Package location resolves the geographic profile and human-readable place
// for a coordinate. Both fetchers absorb upstream failures and return
// fallback records instead of errors.
package location

import (
	"context"

	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/bigdatacloud"
	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/openmeteo"
	"github.com/AjayAntoIsDev/SafeRoute/internal/providers/openstreetmap"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"
)

// ElevationProvider defines the interface for elevation data providers
type ElevationProvider interface {
	GetElevation(ctx context.Context, latitude, longitude float64) (*openmeteo.ElevationAPIResponse, error)
}

// ReverseGeocoder resolves a coordinate to place names
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (types.LocationInfo, error)
}

// BigDataCloudProvider is the raw BigDataCloud reverse geocoding API
type BigDataCloudProvider interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*bigdatacloud.ReverseGeocodeAPIResponse, error)
}

// NominatimProvider is the raw OpenStreetMap Nominatim reverse lookup API
type NominatimProvider interface {
	Lookup(ctx context.Context, latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}
