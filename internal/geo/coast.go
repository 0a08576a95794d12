package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// CoastalPoint is a named reference point on the coastline
type CoastalPoint struct {
	Name  string
	Point orb.Point
}

// CoastalReferencePoints are major settlements on the west, east and Gujarat coasts
var CoastalReferencePoints = []CoastalPoint{
	{"Mumbai", orb.Point{72.8777, 19.0760}},
	{"Goa", orb.Point{74.1240, 15.2993}},
	{"Calicut", orb.Point{75.7804, 11.2588}},
	{"Kochi", orb.Point{76.2673, 9.9312}},
	{"Kanyakumari", orb.Point{77.0644, 8.0883}},
	{"Chennai", orb.Point{80.2707, 13.0827}},
	{"Visakhapatnam", orb.Point{83.2185, 17.6868}},
	{"Bhubaneswar", orb.Point{85.8245, 20.2961}},
	{"Kolkata", orb.Point{88.3639, 22.5726}},
	{"Ahmedabad", orb.Point{72.5714, 23.0225}},
	{"Surat", orb.Point{72.8311, 21.1702}},
}

// NearestCoast returns the closest coastal reference point and its
// great-circle distance in kilometers
func NearestCoast(latitude, longitude float64) (CoastalPoint, float64) {
	p := orb.Point{longitude, latitude}

	var nearest CoastalPoint
	minKm := math.Inf(1)
	for _, c := range CoastalReferencePoints {
		km := geo.DistanceHaversine(p, c.Point) / 1000
		if km < minKm {
			minKm = km
			nearest = c
		}
	}
	return nearest, minKm
}

// CoastalDistanceKm returns the distance to the nearest coastal reference point
func CoastalDistanceKm(latitude, longitude float64) float64 {
	_, km := NearestCoast(latitude, longitude)
	return km
}
