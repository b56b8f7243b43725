//go:build integration

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/catalog-service/internal/circuitbreaker"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/domain/model"
	"github.com/guttosm/catalog-service/internal/middleware"
	"github.com/guttosm/catalog-service/internal/repository"
	"github.com/guttosm/catalog-service/internal/service"
	"github.com/guttosm/catalog-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportLog_Integration(t *testing.T) {
	db, err := repository.NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})

	repo := repository.NewExportsRepositoryWithCircuitBreaker(
		repository.NewExportsRepository(db),
		circuitbreaker.New(circuitbreaker.DefaultConfig()),
	)
	exportLog := service.NewExportLogService(repo)
	svc := newTestOrderService(t, service.WithExportLog(exportLog))

	health := NewHealthHandler()
	health.RegisterChecker("mongodb", db)
	health.RegisterCircuitBreaker("export_log", repo.GetCircuitBreaker())

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.APIKeys = []string{testAPIKey}
	cfg.OrderService = svc
	cfg.ExportLog = exportLog
	router := NewRouter(health, cfg)

	orderID := createOrder(t, router)
	serve(router, http.MethodPut, "/api/orders/"+orderID+"/items/1", `{"quantity": "10"}`)

	w := serve(router, http.MethodGet, "/api/orders/"+orderID+"/export/csv", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = serve(router, http.MethodGet, "/api/orders/"+orderID+"/export/whatsapp", "")
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("lists recorded exports", func(t *testing.T) {
		var resp dto.ExportListResponse
		require.Eventually(t, func() bool {
			w := getExports(router, "?order_id="+orderID, true)
			if w.Code != http.StatusOK {
				return false
			}
			decodeData(t, w, &resp)
			return resp.Total == 2
		}, 5*time.Second, 100*time.Millisecond)

		require.Len(t, resp.Exports, 2)
		byChannel := make(map[model.ExportChannel]model.ExportRecord, 2)
		for _, r := range resp.Exports {
			byChannel[r.Channel] = r
		}
		csv := byChannel[model.ExportChannelCSV]
		assert.Equal(t, "pedido_2024-06-15.csv", csv.Target)
		assert.Equal(t, "12900.00", csv.TotalCost)
		assert.NotEmpty(t, csv.RequestID)
		assert.Equal(t, testPhone, byChannel[model.ExportChannelWhatsApp].Target)
	})

	t.Run("filters by channel", func(t *testing.T) {
		w := getExports(router, "?channel=csv", true)
		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.ExportListResponse
		decodeData(t, w, &resp)
		assert.Equal(t, int64(1), resp.Total)
	})

	t.Run("readiness includes mongodb", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
		req.Header.Set(middleware.RequestIDHeader, "ready-check")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mongodb":"ok"`)
	})
}
