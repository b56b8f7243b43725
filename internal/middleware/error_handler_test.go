package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/i18n"
	"github.com/stretchr/testify/assert"
)

var errGone = errors.New("gone")

func TestErrorHandler(t *testing.T) {
	mappings := []ErrorMapping{
		{Err: errGone, Status: http.StatusNotFound, Code: "order_not_found", MessageKey: i18n.ErrKeyOrderNotFound},
	}

	tests := []struct {
		name           string
		locale         string
		handler        gin.HandlerFunc
		expectedStatus int
		expectedCode   string
		expectedMsg    string
		expectedBody   string
	}{
		{
			name: "unmapped error becomes 500",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
			expectedMsg:    "An unexpected error occurred",
		},
		{
			name: "wrapped sentinel uses mapping",
			handler: func(c *gin.Context) {
				_ = c.Error(fmt.Errorf("lookup: %w", errGone))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "order_not_found",
			expectedMsg:    "Order not found or expired",
		},
		{
			name:   "message is localized",
			locale: "es",
			handler: func(c *gin.Context) {
				_ = c.Error(errGone)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "order_not_found",
			expectedMsg:    "Pedido no encontrado o vencido",
		},
		{
			name: "written response is kept",
			handler: func(c *gin.Context) {
				c.String(http.StatusAccepted, "partial")
				_ = c.Error(errGone)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   "partial",
		},
		{
			name: "does nothing when no errors",
			handler: func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler(mappings...))
			router.GET("/test", tt.handler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.locale != "" {
				req.Header.Set(i18n.AcceptLanguageHeader, tt.locale)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
				return
			}
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.Equal(t, tt.expectedMsg, resp.Message)
			assert.Equal(t, w.Header().Get(RequestIDHeader), resp.RequestID)
		})
	}
}
