package observability

import "time"

// Recorder receives assessment events. Metrics is the production
// implementation; NopRecorder discards everything.
type Recorder interface {
	// FetchFallback is called when a fetcher substitutes its fallback record
	FetchFallback(fetcher string)
	// LLMFailure is called when the model output is not used; stage is call or parse
	LLMFailure(stage string)
	// AssessmentCompleted is called once per successful assessment
	AssessmentCompleted(source string, elapsed time.Duration)
}

// NopRecorder is a Recorder that does nothing
type NopRecorder struct{}

func (NopRecorder) FetchFallback(string)                      {}
func (NopRecorder) LLMFailure(string)                         {}
func (NopRecorder) AssessmentCompleted(string, time.Duration) {}
