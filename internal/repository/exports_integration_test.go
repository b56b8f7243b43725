//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/catalog-service/internal/circuitbreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("health check", func(t *testing.T) {
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("exports TTL can be set repeatedly", func(t *testing.T) {
		require.NoError(t, db.SetExportsTTL(ctx, 30))
		require.NoError(t, db.SetExportsTTL(ctx, 60))

		cursor, err := db.Exports.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		var ttl interface{}
		for _, idx := range indexes {
			if idx["name"] == exportsTTLIndex {
				ttl = idx["expireAfterSeconds"]
			}
		}
		assert.EqualValues(t, 60*24*60*60, ttl)
	})

	t.Run("exports TTL can be removed", func(t *testing.T) {
		require.NoError(t, db.SetExportsTTL(ctx, 0))
	})
}

func TestExportsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewExportsRepository(setupTestDB(t))

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	docs := []*ExportDocument{
		{Timestamp: base, OrderID: "a", Channel: "csv", TotalCost: "100.00"},
		{Timestamp: base.Add(time.Minute), OrderID: "a", Channel: "whatsapp", TotalCost: "100.00"},
		{Timestamp: base.Add(2 * time.Minute), OrderID: "b", Channel: "csv", TotalCost: "2798.00"},
	}
	for _, doc := range docs {
		require.NoError(t, repo.Create(ctx, doc))
		assert.False(t, doc.ID.IsZero())
	}

	t.Run("query returns newest first", func(t *testing.T) {
		got, err := repo.Query(ctx, ExportQueryOptions{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "b", got[0].OrderID)
		assert.Equal(t, "csv", got[2].Channel)
	})

	t.Run("query filters by channel and order", func(t *testing.T) {
		got, err := repo.Query(ctx, ExportQueryOptions{Channel: "csv", OrderID: "a"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "100.00", got[0].TotalCost)
	})

	t.Run("query honours limit and skip", func(t *testing.T) {
		got, err := repo.Query(ctx, ExportQueryOptions{Limit: 1, Skip: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "whatsapp", got[0].Channel)
	})

	t.Run("query since", func(t *testing.T) {
		since := base.Add(30 * time.Second)
		got, err := repo.Query(ctx, ExportQueryOptions{Since: &since})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("count ignores limit", func(t *testing.T) {
		n, err := repo.Count(ctx, ExportQueryOptions{OrderID: "a", Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("with circuit breaker", func(t *testing.T) {
		cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
		wrapped := NewExportsRepositoryWithCircuitBreaker(repo, cb)

		require.NoError(t, wrapped.Create(ctx, &ExportDocument{OrderID: "c", Channel: "csv"}))
		n, err := wrapped.Count(ctx, ExportQueryOptions{OrderID: "c"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.True(t, cb.GetStats().IsHealthy)
	})
}
