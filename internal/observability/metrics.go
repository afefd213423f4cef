package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	httpRequestsTotal   *prometheus.CounterVec
	httpLatencySeconds  *prometheus.HistogramVec
	uniqueVisitorsTotal prometheus.Counter
	visitorLogFailures  prometheus.Counter
	activityLogFailures prometheus.Counter
)

// RegisterMetrics initialises the Prometheus collectors used by the board.
func RegisterMetrics() {
	registerOnce.Do(func() {
		httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "board_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"})

		httpLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "board_latency_seconds",
			Help:    "Latency distribution for HTTP requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		uniqueVisitorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "board_unique_visitors_total",
			Help: "Total number of first-visits-of-the-day recorded.",
		})

		visitorLogFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "board_visitor_log_failures_total",
			Help: "Total number of visitor logging attempts that failed.",
		})

		activityLogFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "board_activity_log_failures_total",
			Help: "Total number of activity log writes that failed.",
		})

		prometheus.MustRegister(
			httpRequestsTotal,
			httpLatencySeconds,
			uniqueVisitorsTotal,
			visitorLogFailures,
			activityLogFailures,
		)
	})
}

// HTTPRequests exposes the request counter.
func HTTPRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return httpRequestsTotal
}

// HTTPLatency exposes the latency histogram.
func HTTPLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return httpLatencySeconds
}

// UniqueVisitors exposes the unique visitor counter.
func UniqueVisitors() prometheus.Counter {
	RegisterMetrics()
	return uniqueVisitorsTotal
}

// VisitorLogFailures exposes the visitor logging failure counter.
func VisitorLogFailures() prometheus.Counter {
	RegisterMetrics()
	return visitorLogFailures
}

// ActivityLogFailures exposes the activity log failure counter.
func ActivityLogFailures() prometheus.Counter {
	RegisterMetrics()
	return activityLogFailures
}
