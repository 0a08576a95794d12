// Package risk implements the deterministic rule-based disaster risk engine.
package risk

import (
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"
)

const (
	baseProbability = 10.0
	maxProbability  = 95.0
	maxThreats      = 4
	maxRecommends   = 6
)

// GeneralWeatherThreat is reported when no specific threat applies
const GeneralWeatherThreat = "general_weather"

var (
	baseRecommendations = []string{
		"Monitor official weather alerts",
		"Keep emergency contacts handy",
		"Maintain emergency supply kit",
	}
	elevatedRecommendations = []string{
		"Avoid non-essential travel",
		"Secure outdoor items",
		"Stay updated on evacuation routes",
	}
	severeRecommendations = []string{
		"Consider temporary relocation",
		"Stock emergency supplies for 72 hours",
		"Register with local emergency services",
	}
)

// Result is the overall rule-based verdict for a coordinate
type Result struct {
	Probability     float64
	RiskLevel       types.RiskLevel
	PrimaryThreats  []string
	Recommendations []string
}

// Score runs every rule against the weather and geography
func Score(w types.WeatherSnapshot, g types.GeographicProfile) Result {
	p := Probability(w, g)
	return Result{
		Probability:     p,
		RiskLevel:       LevelFor(p),
		PrimaryThreats:  PrimaryThreats(w, g),
		Recommendations: Recommendations(p),
	}
}

// Probability returns the additive disaster probability, capped at 95
func Probability(w types.WeatherSnapshot, g types.GeographicProfile) float64 {
	p := baseProbability

	switch {
	case w.TemperatureC > 42:
		p += 30
	case w.TemperatureC < 5:
		p += 20
	}

	switch {
	case w.WindSpeedMps > 20:
		p += 25
	case w.WindSpeedMps > 15:
		p += 15
	}

	switch {
	case w.RainfallMmPerHour > 15:
		p += 35
	case w.RainfallMmPerHour > 5:
		p += 15
	}

	if w.PressureHpa < 995 {
		p += 20
	}
	if g.SeismicZone >= 4 {
		p += 15
	}
	if g.Terrain.Mountainous() {
		p += 10
	}

	return min(p, maxProbability)
}

// LevelFor maps a probability to a risk level
func LevelFor(probability float64) types.RiskLevel {
	switch {
	case probability < 25:
		return types.RiskLow
	case probability < 50:
		return types.RiskMedium
	case probability < 75:
		return types.RiskHigh
	default:
		return types.RiskCritical
	}
}

// PrimaryThreats lists up to four active threats in rule order
func PrimaryThreats(w types.WeatherSnapshot, g types.GeographicProfile) []string {
	var threats []string
	add := func(cond bool, threat string) {
		if !cond || len(threats) >= maxThreats {
			return
		}
		for _, t := range threats {
			if t == threat {
				return
			}
		}
		threats = append(threats, threat)
	}

	add(w.TemperatureC > 40, "heat_wave")
	add(w.WindSpeedMps > 15, "high_winds")
	add(w.RainfallMmPerHour > 10, "flooding")
	add(g.SeismicZone >= 4, "earthquake")
	add(g.Terrain == types.TerrainCoastalPlain, "cyclone")
	add(g.Terrain.Mountainous() && w.RainfallMmPerHour > 5, "landslide")

	if len(threats) == 0 {
		return []string{GeneralWeatherThreat}
	}
	return threats
}

// Recommendations returns safety advice scaled to the probability
func Recommendations(probability float64) []string {
	recs := append([]string{}, baseRecommendations...)
	if probability > 40 {
		recs = append(recs, elevatedRecommendations...)
	}
	if probability > 70 {
		recs = append(recs, severeRecommendations...)
	}
	if len(recs) > maxRecommends {
		recs = recs[:maxRecommends]
	}
	return recs
}
