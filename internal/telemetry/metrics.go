package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lifeos/governance/internal/engine"
)

// Metrics holds the service's prometheus collectors on a private registry.
type Metrics struct {
	registry           *prometheus.Registry
	evaluations        *prometheus.CounterVec
	overallScore       prometheus.Histogram
	violations         *prometheus.CounterVec
	transitionWarnings prometheus.Counter
	sideEffectFailures *prometheus.CounterVec
}

// NewMetrics registers the governance collectors plus Go and process
// collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "governance_evaluations_total",
			Help: "Evaluations by verdict and decision type.",
		}, []string{"verdict", "decision_type"}),
		overallScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "governance_overall_score",
			Help:    "Overall capacity score of each evaluation.",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "governance_violations_total",
			Help: "Domain threshold violations by domain and alert level.",
		}, []string{"domain", "level"}),
		transitionWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "governance_transition_warnings_total",
			Help: "Evaluations whose state transition was not allowed.",
		}),
		sideEffectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "governance_side_effect_failures_total",
			Help: "Failed persistence, audit, publish or eval steps after an evaluation.",
		}, []string{"stage"}),
	}
	m.registry.MustRegister(
		m.evaluations,
		m.overallScore,
		m.violations,
		m.transitionWarnings,
		m.sideEffectFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe records one evaluation.
func (m *Metrics) Observe(r engine.Result) {
	m.evaluations.WithLabelValues(r.Verdict.Slug(), string(r.DecisionType.ID)).Inc()
	m.overallScore.Observe(float64(r.OverallScore))
	for _, v := range r.Violations {
		m.violations.WithLabelValues(string(v.Domain), string(v.Level)).Inc()
	}
	if r.TransitionWarning != nil {
		m.transitionWarnings.Inc()
	}
}

// SideEffectFailed counts a failed post-evaluation stage ("store",
// "audit", "publish", "eval").
func (m *Metrics) SideEffectFailed(stage string) {
	m.sideEffectFailures.WithLabelValues(stage).Inc()
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
