package http

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/circuitbreaker"
	"github.com/guttosm/catalog-service/internal/service/cache"
)

// defaultCheckTimeout bounds each readiness check.
const defaultCheckTimeout = 2 * time.Second

// HealthChecker is a dependency probed by the readiness endpoint.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckerFunc adapts a function to HealthChecker.
type HealthCheckerFunc func(ctx context.Context) error

// HealthCheck calls f.
func (f HealthCheckerFunc) HealthCheck(ctx context.Context) error {
	return f(ctx)
}

// SessionStats reports order session cache statistics.
type SessionStats interface {
	SessionMetrics() cache.Metrics
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	mu              sync.RWMutex
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	sessions        SessionStats
	timeout         time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		timeout:         defaultCheckTimeout,
	}
}

// RegisterChecker adds a dependency to the readiness probe.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// RegisterCircuitBreaker registers a circuit breaker for health monitoring.
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.circuitBreakers[name] = cb
}

// SetSessionStats includes session cache statistics in readiness output.
func (h *HealthHandler) SetSessionStats(s SessionStats) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions = s
}

// Register registers health endpoints on the router.
func (h *HealthHandler) Register(router gin.IRoutes) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
//
// @Summary     Liveness probe
// @Description Returns OK if the process is running.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles the readiness probe endpoint.
//
// The export log is optional, so an open circuit breaker is reported but
// only a failing registered checker makes the service not ready.
//
// @Summary     Readiness probe
// @Description Reports dependency health, circuit breaker state and session cache usage.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := http.StatusOK
	checks := make(map[string]interface{}, len(h.checkers)+len(h.circuitBreakers)+1)

	for _, name := range sortedKeys(h.checkers) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		err := h.checkers[name].HealthCheck(ctx)
		cancel()

		if err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
		} else {
			checks[name] = "ok"
		}
	}

	for name, cb := range h.circuitBreakers {
		checks[name+"_circuit"] = cb.GetStats()
	}

	if h.sessions != nil {
		checks["sessions"] = h.sessions.SessionMetrics()
	}

	if len(checks) == 0 {
		checks["service"] = "ok"
	}

	c.JSON(status, gin.H{
		"status": map[bool]string{true: "ok", false: "degraded"}[status == http.StatusOK],
		"checks": checks,
	})
}

func sortedKeys(m map[string]HealthChecker) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
