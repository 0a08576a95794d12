package types

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Bounding box of the supported region (India), inclusive on every edge.
const (
	MinLatitude  = 6.0
	MaxLatitude  = 37.0
	MinLongitude = 68.0
	MaxLongitude = 97.0
)

var (
	// ErrOutOfBounds is returned for coordinates outside the supported region
	ErrOutOfBounds = errors.New("coordinates outside supported region")
	// ErrInvalidLatitude is returned when latitude is outside [MinLatitude, MaxLatitude]
	ErrInvalidLatitude = fmt.Errorf("%w: latitude must be between %.1f and %.1f", ErrOutOfBounds, MinLatitude, MaxLatitude)
	// ErrInvalidLongitude is returned when longitude is outside [MinLongitude, MaxLongitude]
	ErrInvalidLongitude = fmt.Errorf("%w: longitude must be between %.1f and %.1f", ErrOutOfBounds, MinLongitude, MaxLongitude)
)

type Coords struct {
	Latitude  float64 `json:"latitude" example:"19.076"`
	Longitude float64 `json:"longitude" example:"72.8777"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate reports whether the coordinates fall inside the supported region.
// The returned error always wraps ErrOutOfBounds.
func (c Coords) Validate() error {
	if c.Latitude < MinLatitude || c.Latitude > MaxLatitude || math.IsNaN(c.Latitude) {
		return ErrInvalidLatitude
	}
	if c.Longitude < MinLongitude || c.Longitude > MaxLongitude || math.IsNaN(c.Longitude) {
		return ErrInvalidLongitude
	}
	return nil
}

// Point returns the coordinates as an orb point (longitude first).
func (c Coords) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
