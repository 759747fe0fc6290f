// Package metrics provides Prometheus metrics for the accounts API
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accounts_http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "accounts_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Domain metrics
	EntityMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accounts_entity_mutations_total",
			Help: "Total number of successful create, update and delete operations",
		},
		[]string{"entity", "op"},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accounts_validation_failures_total",
			Help: "Total number of submissions rejected by field validation",
		},
		[]string{"entity"},
	)

	ReportsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accounts_reports_generated_total",
			Help: "Total number of reports generated",
		},
		[]string{"kind", "format"},
	)
)

// EntityMetrics records domain metrics for one entity type
type EntityMetrics struct {
	entity string
}

func NewEntityMetrics(entity string) *EntityMetrics {
	return &EntityMetrics{entity: entity}
}

// RecordMutation records a successful write (create, update, delete, or a
// purchase order action such as send)
func (m *EntityMetrics) RecordMutation(op string) {
	EntityMutationsTotal.WithLabelValues(m.entity, op).Inc()
}

func (m *EntityMetrics) RecordValidationFailure() {
	ValidationFailuresTotal.WithLabelValues(m.entity).Inc()
}

// RecordRequest records one served HTTP request
func RecordRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordReport(kind, format string) {
	ReportsGeneratedTotal.WithLabelValues(kind, format).Inc()
}
