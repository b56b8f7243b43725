package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/catalog"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/export"
	"github.com/guttosm/catalog-service/internal/service"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testPhone = "59800000000"

var fixedNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

type envelope struct {
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
	Timestamp time.Time       `json:"timestamp"`
}

func newTestOrderService(t *testing.T, opts ...service.Option) *service.OrderServiceImpl {
	t.Helper()
	base := []service.Option{
		service.WithExporter(export.NewExporter(
			export.WithPhone(testPhone),
			export.WithClock(func() time.Time { return fixedNow }),
		)),
		service.WithIDGenerator(func() string { return "order-1" }),
	}
	svc := service.NewOrderService(catalog.Default(), append(base, opts...)...)
	t.Cleanup(svc.Close)
	return svc
}

func setupRouter(t *testing.T, opts ...service.Option) (*gin.Engine, *service.OrderServiceImpl) {
	t.Helper()
	svc := newTestOrderService(t, opts...)
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.OrderService = svc
	return NewRouter(NewHealthHandler(), cfg), svc
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, v))
	return env
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}
