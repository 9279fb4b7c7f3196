// Package observability holds the Prometheus instrumentation for the tool
// server.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "forest_haiku"

// Outcome labels for the request counter.
const (
	OutcomeOK        = "ok"
	OutcomeNoData    = "no_data"
	OutcomeNoRecords = "no_records"
	OutcomeLLMError  = "llm_error"
)

// Metrics holds the counters and histograms for the haiku pipeline. A nil
// *Metrics is valid and records nothing, so wiring instrumentation stays
// optional for tests and embedded use.
type Metrics struct {
	Requests           *prometheus.CounterVec // label: outcome
	Truncations        prometheus.Counter
	GenerationDuration prometheus.Histogram
	PromptTokens       prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Haiku tool invocations by outcome.",
		}, []string{"outcome"}),
		Truncations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "line_truncations_total",
			Help:      "Completions that exceeded three lines and were truncated.",
		}),
		GenerationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Latency of the poetic model call.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		PromptTokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prompt_tokens",
			Help:      "Estimated token count of rendered prompts.",
			Buckets:   []float64{64, 128, 192, 256, 384, 512, 1024},
		}),
	}
}

// NewMetrics creates the pipeline metrics and registers them with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.Requests, m.Truncations, m.GenerationDuration, m.PromptTokens)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can construct
// them repeatedly without "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// CountRequest increments the outcome counter.
func (m *Metrics) CountRequest(outcome string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(outcome).Inc()
}

// CountTruncation increments the line-truncation counter.
func (m *Metrics) CountTruncation() {
	if m == nil {
		return
	}
	m.Truncations.Inc()
}

// ObserveGenerationSeconds records one model-call duration.
func (m *Metrics) ObserveGenerationSeconds(seconds float64) {
	if m == nil {
		return
	}
	m.GenerationDuration.Observe(seconds)
}

// ObservePromptTokens records the estimated size of one rendered prompt.
func (m *Metrics) ObservePromptTokens(tokens int) {
	if m == nil {
		return
	}
	m.PromptTokens.Observe(float64(tokens))
}
