// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "content_variations"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "generations_total",
			Help:      "Generate requests by platform and outcome",
		},
		[]string{"platform", "status"},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "generation_duration_seconds",
			Help:      "Time from trigger to published batch",
			Buckets:   []float64{.1, .5, 1, 2, 2.5, 5, 10},
		},
	)

	LookupFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "generator",
			Name:      "lookup_fallbacks_total",
			Help:      "Generations where a lookup table used its default entry",
		},
		[]string{"table"},
	)

	DownloadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "presenter",
			Name:      "downloads_total",
			Help:      "Combined text downloads served",
		},
	)

	CopiesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "presenter",
			Name:      "copies_total",
			Help:      "Single-variation texts served for the clipboard",
		},
	)
)

// NoPlatform labels generate requests rejected before a form was captured.
const NoPlatform = "none"

// RecordGeneration counts a generate request outcome ("started", "completed", "rejected", "lost").
func RecordGeneration(platform, status string) {
	GenerationsTotal.WithLabelValues(platform, status).Inc()
}

// RecordFallbacks counts each table that fell back to its default entry.
func RecordFallbacks(tables []string) {
	for _, t := range tables {
		LookupFallbacksTotal.WithLabelValues(t).Inc()
	}
}
