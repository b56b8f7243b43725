//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func integrationConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Server: config.ServerConfig{
			RateWindow:     time.Minute,
			RequestTimeout: 10 * time.Second,
			APIKeys:        []string{"integration-key"},
		},
		Catalog: config.CatalogConfig{
			WhatsAppPhone:   "59800000000",
			MinimumPurchase: decimal.NewFromInt(20000),
		},
		Session: config.SessionConfig{Capacity: 10, TTL: time.Hour},
		Database: config.DatabaseConfig{
			URI:                            testutil.GetSharedContainerURI(),
			DatabaseName:                   testutil.SanitizeDBName(t.Name()),
			Enabled:                        true,
			ExportsTTLDays:                 1,
			ExportLogTimeout:               5 * time.Second,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 1,
			CircuitBreakerTimeout:          time.Second,
		},
		Log: config.LogConfig{Level: "error"},
	}
}

func TestInitializeDatabase_Integration(t *testing.T) {
	components := InitializeDatabase(integrationConfig(t).Database)
	require.NotNil(t, components)
	t.Cleanup(func() { _ = components.Close(context.Background()) })

	assert.NotNil(t, components.ExportLog)
	assert.NotNil(t, components.ExportsCircuitBreaker)
	assert.NoError(t, components.DB.HealthCheck(context.Background()))
}

func TestApp_ExportIsRecorded_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	application, err := InitializeApp(integrationConfig(t))
	require.NoError(t, err)
	require.NotNil(t, application.Database)
	t.Cleanup(func() { _ = application.Close(context.Background()) })

	serve := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("X-API-Key", "integration-key")
		w := httptest.NewRecorder()
		application.Router.ServeHTTP(w, req)
		return w
	}

	w := serve(http.MethodPost, "/api/orders", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			OrderID string `json:"order_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	orderID := created.Data.OrderID
	require.NotEmpty(t, orderID)

	w = serve(http.MethodPut, "/api/orders/"+orderID+"/items/1", `{"quantity":"10"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(http.MethodGet, "/api/orders/"+orderID+"/export/whatsapp", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(http.MethodGet, "/api/exports?order_id="+orderID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var listed struct {
		Data struct {
			Total   int64 `json:"total"`
			Exports []struct {
				OrderID string `json:"order_id"`
				Channel string `json:"channel"`
			} `json:"exports"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.Equal(t, int64(1), listed.Data.Total)
	require.Len(t, listed.Data.Exports, 1)
	assert.Equal(t, "whatsapp", listed.Data.Exports[0].Channel)

	w = serve(http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mongodb")
}
