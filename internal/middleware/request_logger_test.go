package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		wantLevel string
		wantLog   bool
	}{
		{name: "success logs info", path: "/api/catalog", status: http.StatusOK, wantLevel: "info", wantLog: true},
		{name: "client error logs warn", path: "/api/catalog", status: http.StatusNotFound, wantLevel: "warn", wantLog: true},
		{name: "server error logs error", path: "/api/catalog", status: http.StatusInternalServerError, wantLevel: "error", wantLog: true},
		{name: "skipped path not logged", path: "/healthz", status: http.StatusOK, wantLog: false},
		{name: "skipped path logged on failure", path: "/healthz", status: http.StatusServiceUnavailable, wantLevel: "error", wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter("debug", false, &buf)
			defer logger.Init("info", false)

			router := gin.New()
			router.Use(RequestID(), RequestLogger("/healthz"))
			router.GET(tt.path, func(c *gin.Context) {
				c.Status(tt.status)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			line := strings.TrimSpace(buf.String())
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(line), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "HTTP request", entry["message"])
			assert.Equal(t, tt.path, entry["path"])
			assert.EqualValues(t, tt.status, entry["status_code"])
			assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
		})
	}
}
