// Package metrics provides Prometheus metrics collection for the catalog service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuantityUpdatesTotal tracks quantity updates by result.
	QuantityUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_quantity_updates_total",
			Help: "Total number of order quantity updates",
		},
		[]string{"result"},
	)

	// ExportsTotal tracks order exports by channel and status.
	ExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_exports_total",
			Help: "Total number of order exports",
		},
		[]string{"channel", "status"},
	)

	// ExportDuration tracks how long building and delivering an export takes.
	ExportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_export_duration_seconds",
			Help:    "Order export duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
		[]string{"channel"},
	)

	// SessionCacheOperationsTotal tracks session cache operations.
	SessionCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_cache_operations_total",
			Help: "Total number of session cache operations",
		},
		[]string{"operation", "result"},
	)

	// ActiveSessions tracks the number of live order sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_sessions_active",
			Help: "Current number of live order sessions",
		},
	)

	// SessionCapacity tracks the session cache capacity.
	SessionCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "order_sessions_capacity",
			Help: "Maximum number of live order sessions",
		},
	)

	// CircuitBreakerState tracks breaker state by name (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuantityUpdate records the outcome of a quantity update.
func RecordQuantityUpdate(result string) {
	QuantityUpdatesTotal.WithLabelValues(result).Inc()
}

// RecordExport records metrics for an order export.
func RecordExport(channel, status string, duration time.Duration) {
	ExportDuration.WithLabelValues(channel).Observe(duration.Seconds())
	ExportsTotal.WithLabelValues(channel, status).Inc()
}

// RecordSessionCacheOperation records metrics for a session cache operation.
func RecordSessionCacheOperation(operation, result string) {
	SessionCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateActiveSessions sets the live session gauge.
func UpdateActiveSessions(size int) {
	ActiveSessions.Set(float64(size))
}

// UpdateSessionCapacity sets the session capacity gauge.
func UpdateSessionCapacity(capacity int) {
	SessionCapacity.Set(float64(capacity))
}

// UpdateCircuitBreakerState sets the state gauge of breaker name.
func UpdateCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
