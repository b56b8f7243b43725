// Package cache defines the storage contract for live order sessions.
package cache

import "github.com/guttosm/catalog-service/internal/order"

// Cache defines the interface for session cache operations.
type Cache interface {
	Get(key string) (*order.Session, bool)
	Set(key string, value *order.Session)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
