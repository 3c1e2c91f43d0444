// Package metrics exposes Prometheus counters for the assessment flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for analysis invocations.
const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "service_unavailable"
	OutcomeUpstream    = "upstream_error"
	OutcomeMalformed   = "malformed_response"
	OutcomeOther       = "other"
)

// Metrics holds the service counters.
type Metrics struct {
	registry *prometheus.Registry

	AnalysisRequests *prometheus.CounterVec
	ProgressSaves    *prometheus.CounterVec
	EngagementEvents *prometheus.CounterVec
}

// New creates and registers the counters on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		AnalysisRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esgcompass_analysis_requests_total",
			Help: "Analysis invocations by outcome.",
		}, []string{"outcome"}),
		ProgressSaves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esgcompass_progress_saves_total",
			Help: "Progress record saves by result.",
		}, []string{"result"}),
		EngagementEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "esgcompass_engagement_events_total",
			Help: "Engagement events by kind.",
		}, []string{"kind"}),
	}

	registry.MustRegister(m.AnalysisRequests, m.ProgressSaves, m.EngagementEvents)
	return m
}

// Handler serves the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
