package types

import "strings"

// RiskLevel is the four-step severity scale
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// ParseRiskLevel matches s case-insensitively against the four levels
func ParseRiskLevel(s string) (RiskLevel, bool) {
	for _, l := range []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical} {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, true
		}
	}
	return "", false
}

// Hazard categories that make up an Analysis
const (
	CategoryFloods      = "floods"
	CategoryCyclone     = "cyclone"
	CategoryEarthquakes = "earthquakes"
	CategoryDroughts    = "droughts"
	CategoryLandslides  = "landslides"
	CategoryConclusion  = "conclusion"
)

// Categories lists every key of a serialized Analysis in output order
func Categories() []string {
	return []string{
		CategoryFloods,
		CategoryCyclone,
		CategoryEarthquakes,
		CategoryDroughts,
		CategoryLandslides,
		CategoryConclusion,
	}
}

// ThreatAssessment is the verdict for one hazard category.
// PrimaryThreats is only populated for the conclusion.
type ThreatAssessment struct {
	Probability     float64   `json:"probability" example:"35"`
	RiskLevel       RiskLevel `json:"risk_level" example:"Medium"`
	Recommendations []string  `json:"recommendations"`
	Analysis        string    `json:"analysis"`
	PrimaryThreats  []string  `json:"primary_threats,omitempty"`
}

// Analysis holds one ThreatAssessment per hazard category
type Analysis struct {
	Floods      ThreatAssessment `json:"floods"`
	Cyclone     ThreatAssessment `json:"cyclone"`
	Earthquakes ThreatAssessment `json:"earthquakes"`
	Droughts    ThreatAssessment `json:"droughts"`
	Landslides  ThreatAssessment `json:"landslides"`
	Conclusion  ThreatAssessment `json:"conclusion"`
}

// Analysis sources
const (
	AnalysisSourceLLM       = "llm"
	AnalysisSourceRuleBased = "rule_based"
)

// Prediction is the response for a single coordinate
type Prediction struct {
	GeographicData GeographicProfile `json:"geographic_data"`
	LocationInfo   LocationInfo      `json:"location_info"`
	Analysis       Analysis          `json:"analysis"`

	// AnalysisSource records whether the analysis came from the model or the rules
	AnalysisSource string `json:"-"`
}
