package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRouter returns a router whose POST /orders answers with an
// incrementing counter, and the counter itself.
func countingRouter(store *IdempotencyStore, status int) (*gin.Engine, *int) {
	calls := 0
	router := gin.New()
	router.Use(Idempotency(store))
	handler := func(c *gin.Context) {
		calls++
		c.JSON(status, gin.H{"call": calls})
	}
	router.POST("/orders", handler)
	router.GET("/orders", handler)
	return router, &calls
}

func doRequest(router http.Handler, method, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/orders", strings.NewReader(body))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		firstKey      string
		secondKey     string
		firstBody     string
		secondBody    string
		status        int
		expectedCalls int
		replayed      bool
	}{
		{name: "same key is replayed", method: http.MethodPost, firstKey: "k1", secondKey: "k1", status: http.StatusCreated, expectedCalls: 1, replayed: true},
		{name: "no key always runs", method: http.MethodPost, status: http.StatusCreated, expectedCalls: 2},
		{name: "different keys run twice", method: http.MethodPost, firstKey: "k1", secondKey: "k2", status: http.StatusCreated, expectedCalls: 2},
		{name: "different body runs twice", method: http.MethodPost, firstKey: "k1", secondKey: "k1", firstBody: `{"a":1}`, secondBody: `{"a":2}`, status: http.StatusCreated, expectedCalls: 2},
		{name: "safe methods are not stored", method: http.MethodGet, firstKey: "k1", secondKey: "k1", status: http.StatusOK, expectedCalls: 2},
		{name: "failures are not stored", method: http.MethodPost, firstKey: "k1", secondKey: "k1", status: http.StatusInternalServerError, expectedCalls: 2},
		{name: "oversized body is not stored", method: http.MethodPost, firstKey: "k1", secondKey: "k1", firstBody: strings.Repeat("a", maxIdempotencyBodyBytes+1), secondBody: strings.Repeat("a", maxIdempotencyBodyBytes+1), status: http.StatusCreated, expectedCalls: 2},
		{name: "oversized key is ignored", method: http.MethodPost, firstKey: strings.Repeat("x", 256), secondKey: strings.Repeat("x", 256), status: http.StatusCreated, expectedCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewIdempotencyStore(time.Minute)
			t.Cleanup(store.Stop)
			router, calls := countingRouter(store, tt.status)

			first := doRequest(router, tt.method, tt.firstKey, tt.firstBody)
			second := doRequest(router, tt.method, tt.secondKey, tt.secondBody)

			assert.Equal(t, tt.expectedCalls, *calls)
			assert.Equal(t, tt.status, second.Code)
			if tt.replayed {
				assert.Equal(t, "true", second.Header().Get(IdempotencyReplayedHeader))
				assert.Equal(t, first.Body.String(), second.Body.String())
				assert.Equal(t, first.Header().Get("Content-Type"), second.Header().Get("Content-Type"))
			} else {
				assert.Empty(t, second.Header().Get(IdempotencyReplayedHeader))
			}
		})
	}
}

func TestIdempotency_BodyReachesHandler(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	t.Cleanup(store.Stop)

	router := gin.New()
	router.Use(Idempotency(store))
	router.POST("/orders", func(c *gin.Context) {
		var body struct {
			Quantity string `json:"quantity"`
		}
		require.NoError(t, c.ShouldBindJSON(&body))
		c.String(http.StatusOK, body.Quantity)
	})

	w := doRequest(router, http.MethodPost, "k1", `{"quantity":"10"}`)
	assert.Equal(t, "10", w.Body.String())
}

func TestIdempotency_OversizedBodyReachesHandler(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	t.Cleanup(store.Stop)

	router := gin.New()
	router.Use(Idempotency(store))
	router.POST("/orders", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		c.String(http.StatusOK, strconv.Itoa(len(body)))
	})

	size := maxIdempotencyBodyBytes + 10
	w := doRequest(router, http.MethodPost, "k1", strings.Repeat("a", size))
	assert.Equal(t, strconv.Itoa(size), w.Body.String())
	assert.Zero(t, store.Len())
}

func TestIdempotency_Expiry(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	t.Cleanup(store.Stop)

	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	router, calls := countingRouter(store, http.StatusCreated)

	doRequest(router, http.MethodPost, "k1", "")
	now = now.Add(30 * time.Second)
	doRequest(router, http.MethodPost, "k1", "")
	assert.Equal(t, 1, *calls)

	now = now.Add(2 * time.Minute)
	w := doRequest(router, http.MethodPost, "k1", "")
	assert.Equal(t, 2, *calls)
	assert.Contains(t, w.Body.String(), strconv.Itoa(2))
}

func TestIdempotencyStore_Cleanup(t *testing.T) {
	store := NewIdempotencyStore(time.Minute)
	t.Cleanup(store.Stop)

	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.set("a", &storedResponse{status: http.StatusOK})
	now = now.Add(30 * time.Second)
	store.set("b", &storedResponse{status: http.StatusOK})
	require.Equal(t, 2, store.Len())

	now = now.Add(45 * time.Second)
	store.cleanup()
	assert.Equal(t, 1, store.Len())

	_, ok := store.get("b")
	assert.True(t, ok)
}

func TestIdempotency_NilStore(t *testing.T) {
	router, calls := countingRouter(nil, http.StatusCreated)

	doRequest(router, http.MethodPost, "k1", "")
	doRequest(router, http.MethodPost, "k1", "")
	assert.Equal(t, 2, *calls)
}

func TestIdempotencyStore_StopIsIdempotent(t *testing.T) {
	store := NewIdempotencyStore(0)
	assert.Equal(t, DefaultIdempotencyTTL, store.ttl)
	assert.NotPanics(t, func() {
		store.Stop()
		store.Stop()
	})
}
