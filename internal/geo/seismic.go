package geo

import "github.com/paulmach/orb"

// DefaultSeismicZone is returned for coordinates not covered by any region
const DefaultSeismicZone = 3

type seismicRegion struct {
	zone  int
	bound orb.Bound
}

// Regions follow IS 1893 zoning. Order matters: the first match wins.
var seismicRegions = []seismicRegion{
	// Zone V
	{5, box(24.0, 37.0, 74.0, 97.0)},
	{5, box(26.0, 29.0, 88.0, 97.0)}, // northeast states
	{5, box(23.0, 26.0, 69.0, 72.0)}, // Kutch

	// Zone IV
	{4, box(28.0, 32.0, 75.0, 80.0)},
	{4, box(30.0, 32.0, 76.0, 78.0)},
	{4, box(23.0, 26.0, 72.0, 75.0)},
	{4, box(11.0, 13.0, 74.0, 78.0)},
	{4, box(8.0, 12.0, 76.0, 78.0)},

	// Zone III
	{3, box(26.0, 30.0, 72.0, 78.0)},
	{3, box(20.0, 26.0, 72.0, 82.0)},
	{3, box(15.0, 20.0, 73.0, 80.0)},
	{3, box(20.0, 25.0, 82.0, 87.0)},
	{3, box(15.0, 20.0, 80.0, 85.0)},

	// Zone II
	{2, box(8.0, 15.0, 75.0, 80.0)},
	{2, box(20.0, 24.0, 78.0, 82.0)},
}

// SeismicZone returns the seismic zone (1-5) for a coordinate
func SeismicZone(latitude, longitude float64) int {
	p := orb.Point{longitude, latitude}
	for _, r := range seismicRegions {
		if r.bound.Contains(p) {
			return r.zone
		}
	}
	return DefaultSeismicZone
}
