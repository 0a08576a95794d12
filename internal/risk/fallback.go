package risk

import (
	"fmt"

	"github.com/AjayAntoIsDev/SafeRoute/internal/types"
)

// FallbackAnalysis builds a complete six-category analysis from the rules.
// The diagnostic explains why the model output was not used and is carried
// into the conclusion's analysis text.
func FallbackAnalysis(w types.WeatherSnapshot, g types.GeographicProfile, diagnostic string) types.Analysis {
	overall := Score(w, g)

	earthquake := float64(g.SeismicZone * 5)

	landslides := types.ThreatAssessment{
		Probability: 5,
		RiskLevel:   types.RiskLow,
	}
	if g.Terrain.Mountainous() {
		landslides.Probability = 25
		landslides.RiskLevel = types.RiskMedium
	}
	landslides.Recommendations = []string{"Avoid steep slopes during heavy rain", "Monitor soil conditions"}
	landslides.Analysis = fmt.Sprintf("Landslide risk assessment for %s terrain", g.Terrain)

	return types.Analysis{
		Floods: types.ThreatAssessment{
			Probability:     20,
			RiskLevel:       types.RiskMedium,
			Recommendations: []string{"Monitor water levels", "Avoid low-lying areas"},
			Analysis:        "Moderate flood risk based on current conditions",
		},
		Cyclone: types.ThreatAssessment{
			Probability:     15,
			RiskLevel:       types.RiskLow,
			Recommendations: []string{"Monitor weather updates", "Secure loose objects"},
			Analysis:        "Low cyclone risk for current location",
		},
		Earthquakes: types.ThreatAssessment{
			Probability:     earthquake,
			RiskLevel:       overall.RiskLevel,
			Recommendations: []string{"Know evacuation routes", "Secure heavy objects"},
			Analysis:        fmt.Sprintf("Earthquake risk based on seismic zone %d", g.SeismicZone),
		},
		Droughts: types.ThreatAssessment{
			Probability:     10,
			RiskLevel:       types.RiskLow,
			Recommendations: []string{"Conserve water", "Monitor rainfall patterns"},
			Analysis:        "Low drought risk based on current weather",
		},
		Landslides: landslides,
		Conclusion: types.ThreatAssessment{
			Probability:     overall.Probability,
			RiskLevel:       overall.RiskLevel,
			Recommendations: overall.Recommendations,
			Analysis:        "Rule-based analysis: " + diagnostic,
			PrimaryThreats:  overall.PrimaryThreats,
		},
	}
}
