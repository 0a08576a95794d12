// Package observability exposes Prometheus metrics for the assessment pipeline.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "saferoute"

// Metrics holds the Prometheus counters and histograms for risk assessments.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec   // labels: source={llm,rule_based}
	AssessmentDuration *prometheus.HistogramVec // labels: source={llm,rule_based}
	FetchFallbacks     *prometheus.CounterVec   // labels: fetcher={weather,geographic,location}
	LLMFailures        *prometheus.CounterVec   // labels: stage={call,parse}
}

func newMetrics() *Metrics {
	return &Metrics{
		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Completed risk assessments by analysis source.",
		}, []string{"source"}),
		AssessmentDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_duration_seconds",
			Help:      "End-to-end duration of a risk assessment.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60},
		}, []string{"source"}),
		FetchFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_fallbacks_total",
			Help:      "Upstream fetches that were replaced with fallback records.",
		}, []string{"fetcher"}),
		LLMFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_failures_total",
			Help:      "Model responses that were discarded in favour of the rule-based analysis.",
		}, []string{"stage"}),
	}
}

// NewMetrics creates and registers all metrics with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.AssessmentsTotal,
		m.AssessmentDuration,
		m.FetchFallbacks,
		m.LLMFailures,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build
// as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func (m *Metrics) FetchFallback(fetcher string) {
	m.FetchFallbacks.WithLabelValues(fetcher).Inc()
}

func (m *Metrics) LLMFailure(stage string) {
	m.LLMFailures.WithLabelValues(stage).Inc()
}

func (m *Metrics) AssessmentCompleted(source string, elapsed time.Duration) {
	m.AssessmentsTotal.WithLabelValues(source).Inc()
	m.AssessmentDuration.WithLabelValues(source).Observe(elapsed.Seconds())
}
