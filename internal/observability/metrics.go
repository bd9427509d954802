// Package observability provides metrics and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// InquiriesSubmitted counts public inquiry submissions.
	InquiriesSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eduhub_inquiries_submitted_total",
		Help: "Total number of academy-introduction inquiries submitted",
	})

	// InquiryTransitions counts applied status transitions by requested status.
	InquiryTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eduhub_inquiry_transitions_total",
		Help: "Total number of inquiry status transitions applied",
	}, []string{"status"})

	// InquiryTransitionFailures counts rejected transitions by error code.
	InquiryTransitionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eduhub_inquiry_transition_failures_total",
		Help: "Total number of inquiry transitions that failed",
	}, []string{"code"})

	// AcademiesProvisioned counts academies created through inquiry approval.
	AcademiesProvisioned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eduhub_academies_provisioned_total",
		Help: "Total number of academies provisioned from approved inquiries",
	})

	// CacheHits counts cache-aside hits by key prefix.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eduhub_cache_hits_total",
		Help: "Total number of cache hits",
	}, []string{"key"})

	// CacheMisses counts cache-aside misses by key prefix.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eduhub_cache_misses_total",
		Help: "Total number of cache misses",
	}, []string{"key"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "eduhub_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// WebSocketBackpressureDrops counts messages dropped due to backpressure by hub and reason.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eduhub_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"hub", "reason"})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct{}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics() *DatabaseMetrics {
	return &DatabaseMetrics{}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
