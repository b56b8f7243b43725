package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter(t *testing.T) {
	svc := newTestOrderService(t)

	tests := []struct {
		name           string
		cfg            func() RouterConfig
		method         string
		path           string
		setupRequest   func(*http.Request)
		expectedStatus int
	}{
		{
			name: "metrics endpoint",
			cfg: func() RouterConfig {
				cfg := DefaultRouterConfig()
				cfg.RateLimit = 0
				return cfg
			},
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name: "health endpoint",
			cfg: func() RouterConfig {
				cfg := DefaultRouterConfig()
				cfg.RateLimit = 0
				return cfg
			},
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name: "swagger behind basic auth",
			cfg: func() RouterConfig {
				cfg := DefaultRouterConfig()
				cfg.RateLimit = 0
				cfg.SwaggerUser = "admin"
				cfg.SwaggerPass = "secret"
				return cfg
			},
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "order routes absent without order service",
			cfg: func() RouterConfig {
				cfg := DefaultRouterConfig()
				cfg.RateLimit = 0
				return cfg
			},
			method:         http.MethodGet,
			path:           "/api/catalog",
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "catalog route",
			cfg: func() RouterConfig {
				cfg := DefaultRouterConfig()
				cfg.RateLimit = 0
				cfg.OrderService = svc
				return cfg
			},
			method:         http.MethodGet,
			path:           "/api/catalog",
			expectedStatus: http.StatusOK,
		},
		{
			name: "cors preflight",
			cfg: func() RouterConfig {
				cfg := DefaultRouterConfig()
				cfg.RateLimit = 0
				cfg.OrderService = svc
				return cfg
			},
			method: http.MethodOptions,
			path:   "/api/catalog",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Origin", "http://localhost:3000")
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(NewHealthHandler(), tt.cfg())

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.setupRequest != nil {
				tt.setupRequest(req)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestNewRouter_NotFound(t *testing.T) {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	router := NewRouter(NewHealthHandler(), cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error)
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), resp.RequestID)
}

func TestNewRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 1
	cfg.RateLimiter = limiter
	cfg.OrderService = newTestOrderService(t)
	router := NewRouter(NewHealthHandler(), cfg)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/conditions", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/conditions", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, dto.ErrCodeRateLimit, decodeError(t, w).Error)
}
