package geo

import (
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/paulmach/orb"
)

type climateRule struct {
	zone  types.ClimateZone
	match func(p orb.Point) bool
}

func within(bounds ...orb.Bound) func(orb.Point) bool {
	return func(p orb.Point) bool {
		return inAny(p, bounds...)
	}
}

// Evaluated in order; the first matching rule wins.
var climateRules = []climateRule{
	{types.ClimateTropicalWet, within(box(8.0, 21.0, 72.5, 77.5), box(22.0, 29.0, 88.0, 97.0))},
	{types.ClimateTropicalWetDry, within(box(15.0, 25.0, 75.0, 87.0), box(8.0, 20.0, 77.0, 87.0))},
	{types.ClimateHotSemiArid, within(box(15.0, 25.0, 72.0, 80.0), box(22.0, 28.0, 70.0, 78.0))},
	{types.ClimateHotArid, within(box(24.0, 30.0, 68.0, 75.0))},
	{types.ClimateHumidSubtropical, within(box(24.0, 32.0, 75.0, 88.0))},
	{types.ClimateAlpine, func(p orb.Point) bool { return p.Lat() > 32.0 }},
	{types.ClimateMontane, func(p orb.Point) bool { return p.Lat() > 30.0 }},
	{types.ClimateTropicalCoastal, within(box(8.0, 25.0, 68.0, 74.0), box(8.0, 22.0, 80.0, 87.5))},
	{types.ClimateIslandTropical, within(box(6.0, 14.0, 92.0, 94.0), box(8.0, 12.0, 71.0, 74.0))},
}

// ClimateZoneAt returns the climate zone for a coordinate, defaulting to subtropical
func ClimateZoneAt(latitude, longitude float64) types.ClimateZone {
	p := orb.Point{longitude, latitude}
	for _, r := range climateRules {
		if r.match(p) {
			return r.zone
		}
	}
	return types.ClimateSubtropical
}
