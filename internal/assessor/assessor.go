// Package assessor produces a disaster risk analysis from fetched data, asking
// a language model first and falling back to the rule-based engine whenever
// the model cannot be called or its answer cannot be used.
package assessor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/AjayAntoIsDev/SafeRoute/internal/llm"
	"github.com/AjayAntoIsDev/SafeRoute/internal/observability"
	"github.com/AjayAntoIsDev/SafeRoute/internal/risk"
	"github.com/AjayAntoIsDev/SafeRoute/internal/timezone"
	"github.com/AjayAntoIsDev/SafeRoute/internal/types"

	"github.com/jonboulle/clockwork"
)

// Outcome of the model path
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeParseFailure
	OutcomeCallFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeParseFailure:
		return "parse"
	case OutcomeCallFailure:
		return "call"
	default:
		return "unknown"
	}
}

// Input is everything the assessor needs for one coordinate
type Input struct {
	Coords   types.Coords
	Weather  types.WeatherSnapshot
	Geo      types.GeographicProfile
	Location types.LocationInfo
}

// Settings are the model parameters sent with every request
type Settings struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// ZoneResolver finds the local time zone of a coordinate
type ZoneResolver interface {
	Location(latitude, longitude float64) *time.Location
}

// Result is the analysis together with how it was produced
type Result struct {
	Analysis   types.Analysis
	Outcome    Outcome
	Diagnostic string
}

type Assessor struct {
	client   llm.Client
	settings Settings
	zones    ZoneResolver
	clock    clockwork.Clock
	recorder observability.Recorder
	logger   *slog.Logger
}

// New creates an Assessor. A nil client behaves like a missing API key and
// a nil zone resolver means India Standard Time.
func New(
	client llm.Client,
	settings Settings,
	zones ZoneResolver,
	clock clockwork.Clock,
	recorder observability.Recorder,
	logger *slog.Logger,
) *Assessor {
	if recorder == nil {
		recorder = observability.NopRecorder{}
	}
	return &Assessor{
		client:   client,
		settings: settings,
		zones:    zones,
		clock:    clock,
		recorder: recorder,
		logger:   logger.With("component", "risk-assessor"),
	}
}

// Assess always returns a complete prediction.
func (a *Assessor) Assess(ctx context.Context, in Input) types.Prediction {
	result := a.Evaluate(ctx, in)

	source := types.AnalysisSourceLLM
	if result.Outcome != OutcomeSuccess {
		source = types.AnalysisSourceRuleBased
	}

	return types.Prediction{
		GeographicData: in.Geo,
		LocationInfo:   in.Location,
		Analysis:       result.Analysis,
		AnalysisSource: source,
	}
}

// Evaluate runs the model path and substitutes the rule-based analysis on failure
func (a *Assessor) Evaluate(ctx context.Context, in Input) Result {
	raw, err := a.complete(ctx, in)
	if err != nil {
		diagnostic := "LLM analysis failed: " + err.Error()
		if errors.Is(err, llm.ErrMissingAPIKey) {
			diagnostic = err.Error()
		}
		a.logger.Warn("model call failed, using rule-based analysis", "error", err)
		return a.fallback(in, OutcomeCallFailure, diagnostic)
	}

	analysis, err := ParseAnalysis(raw)
	if err != nil {
		a.logger.Warn("model response rejected, using rule-based analysis",
			"error", err,
			"response_bytes", len(raw),
		)
		return a.fallback(in, OutcomeParseFailure, raw)
	}

	return Result{Analysis: analysis, Outcome: OutcomeSuccess}
}

// complete builds the prompt and calls the model. A panic in either is
// returned as an error so the caller still falls back.
func (a *Assessor) complete(ctx context.Context, in Input) (raw string, err error) {
	if a.client == nil {
		return "", llm.ErrMissingAPIKey
	}

	defer func() {
		if r := recover(); r != nil {
			raw, err = "", fmt.Errorf("model call panicked: %v", r)
		}
	}()

	now := a.clock.Now().In(a.location(in.Coords))
	return a.client.Complete(ctx, llm.Request{
		SystemPrompt: SystemPrompt,
		UserPrompt:   BuildPrompt(in, now),
		Model:        a.settings.Model,
		Temperature:  a.settings.Temperature,
		MaxTokens:    a.settings.MaxTokens,
	})
}

func (a *Assessor) location(c types.Coords) *time.Location {
	if a.zones == nil {
		return timezone.IST
	}
	return a.zones.Location(c.Latitude, c.Longitude)
}

func (a *Assessor) fallback(in Input, outcome Outcome, diagnostic string) Result {
	a.recorder.LLMFailure(outcome.String())
	return Result{
		Analysis:   risk.FallbackAnalysis(in.Weather, in.Geo, diagnostic),
		Outcome:    outcome,
		Diagnostic: diagnostic,
	}
}
