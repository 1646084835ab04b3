package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PageRenders counts rendered pages by route and view state.
	PageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_viewer_page_renders_total",
			Help: "Total number of rendered pages",
		},
		[]string{"page", "state"},
	)
	// UpstreamRequests counts Mission API calls by endpoint and outcome.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_viewer_upstream_requests_total",
			Help: "Total number of Mission API requests",
		},
		[]string{"endpoint", "outcome"},
	)
	// UpstreamDuration is the latency of Mission API calls.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mission_viewer_upstream_request_duration_seconds",
			Help:    "Mission API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	// DiagnosticsReported counts events handed to the diagnostic sinks.
	DiagnosticsReported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mission_viewer_diagnostics_reported_total",
			Help: "Total number of diagnostic events by sink",
		},
		[]string{"sink"},
	)
)
