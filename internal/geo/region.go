// Package geo holds the static geographic lookups for the supported region:
// seismic zones, climate zones, terrain classes and coastal proximity.
package geo

import "github.com/paulmach/orb"

// box builds an inclusive latitude/longitude rectangle
func box(minLat, maxLat, minLon, maxLon float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}
}

// inAny reports whether p lies inside any of the bounds, edges included
func inAny(p orb.Point, bounds ...orb.Bound) bool {
	for _, b := range bounds {
		if b.Contains(p) {
			return true
		}
	}
	return false
}
