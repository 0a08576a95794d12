package assessor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/AjayAntoIsDev/SafeRoute/internal/types"
)

var (
	// ErrNoJSON is returned when the model output contains no JSON object
	ErrNoJSON = errors.New("no JSON found in response")
	// ErrInvalidJSON is returned when the extracted text does not decode
	ErrInvalidJSON = errors.New("invalid JSON in response")
	// ErrSchema is returned when decoded JSON does not have the analysis shape
	ErrSchema = errors.New("response does not match analysis schema")
)

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
	jsonFence  = "```json"
	fence      = "```"
)

// stripThinking removes a leading reasoning block emitted by reasoning models
func stripThinking(text string) string {
	start := strings.Index(text, thinkOpen)
	end := strings.Index(text, thinkClose)
	if start < 0 || end < start {
		return text
	}
	return text[:start] + text[end+len(thinkClose):]
}

// ExtractJSON pulls the JSON payload out of raw model output. A ```json
// fence wins; otherwise the span from the first '{' to the last '}' is used.
func ExtractJSON(text string) (string, error) {
	text = stripThinking(text)

	if i := strings.Index(text, jsonFence); i >= 0 {
		body := text[i+len(jsonFence):]
		if j := strings.Index(body, fence); j >= 0 {
			body = body[:j]
		}
		return strings.TrimSpace(body), nil
	}

	start := strings.Index(text, "{")
	if start < 0 {
		return "", ErrNoJSON
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", fmt.Errorf("%w: unterminated object", ErrInvalidJSON)
	}
	return text[start : end+1], nil
}

// ParseAnalysis extracts, decodes and validates an analysis from model output.
// Unknown keys are dropped; missing or mistyped required fields are errors.
func ParseAnalysis(text string) (types.Analysis, error) {
	payload, err := ExtractJSON(text)
	if err != nil {
		return types.Analysis{}, err
	}

	var decoded any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return types.Analysis{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	root, ok := decoded.(map[string]any)
	if !ok {
		return types.Analysis{}, fmt.Errorf("%w: top level must be an object", ErrSchema)
	}

	var analysis types.Analysis
	targets := map[string]*types.ThreatAssessment{
		types.CategoryFloods:      &analysis.Floods,
		types.CategoryCyclone:     &analysis.Cyclone,
		types.CategoryEarthquakes: &analysis.Earthquakes,
		types.CategoryDroughts:    &analysis.Droughts,
		types.CategoryLandslides:  &analysis.Landslides,
		types.CategoryConclusion:  &analysis.Conclusion,
	}

	for _, category := range types.Categories() {
		raw, ok := root[category]
		if !ok {
			return types.Analysis{}, fmt.Errorf("%w: missing %q", ErrSchema, category)
		}
		assessment, err := validateAssessment(category, raw, category == types.CategoryConclusion)
		if err != nil {
			return types.Analysis{}, err
		}
		*targets[category] = assessment
	}

	return analysis, nil
}

func validateAssessment(category string, raw any, withThreats bool) (types.ThreatAssessment, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return types.ThreatAssessment{}, fieldError(category, "", "must be an object")
	}

	probability, ok := fields["probability"].(float64)
	if !ok {
		return types.ThreatAssessment{}, fieldError(category, "probability", "must be a number")
	}
	if probability < 0 || probability > 100 {
		return types.ThreatAssessment{}, fieldError(category, "probability", fmt.Sprintf("%v is outside 0-100", probability))
	}

	levelText, _ := fields["risk_level"].(string)
	level, ok := types.ParseRiskLevel(levelText)
	if !ok {
		return types.ThreatAssessment{}, fieldError(category, "risk_level", fmt.Sprintf("%v is not Low, Medium, High or Critical", fields["risk_level"]))
	}

	recommendations, err := stringList(fields["recommendations"])
	if err != nil {
		return types.ThreatAssessment{}, fieldError(category, "recommendations", err.Error())
	}

	analysis, ok := fields["analysis"].(string)
	if !ok {
		return types.ThreatAssessment{}, fieldError(category, "analysis", "must be a string")
	}

	assessment := types.ThreatAssessment{
		Probability:     probability,
		RiskLevel:       level,
		Recommendations: recommendations,
		Analysis:        analysis,
	}

	if withThreats {
		threats, err := stringList(fields["primary_threats"])
		if err != nil {
			return types.ThreatAssessment{}, fieldError(category, "primary_threats", err.Error())
		}
		if len(threats) == 0 {
			return types.ThreatAssessment{}, fieldError(category, "primary_threats", "must name at least one threat")
		}
		assessment.PrimaryThreats = threats
	}

	return assessment, nil
}

func stringList(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, errors.New("must be a list of strings")
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("item %d is not a string", i)
		}
		out = append(out, s)
	}
	return out, nil
}

func fieldError(category, field, reason string) error {
	if field == "" {
		return fmt.Errorf("%w: %s %s", ErrSchema, category, reason)
	}
	return fmt.Errorf("%w: %s.%s %s", ErrSchema, category, field, reason)
}
