// Package service contains the business logic for the catalog service.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/catalog-service/internal/metrics"
	"github.com/guttosm/catalog-service/internal/order"
	"github.com/guttosm/catalog-service/internal/service/cache"
)

// sessionCache provides thread-safe LRU caching of order sessions with an
// idle TTL. Reading a session refreshes its expiry.
// It implements the cache.CacheWithMetrics interface.
type sessionCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[string]*cacheEntry
	head      *cacheEntry
	tail      *cacheEntry
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

// cacheEntry represents a single cached session with expiration tracking.
type cacheEntry struct {
	key       string
	value     *order.Session
	expiresAt time.Time
	prev      *cacheEntry
	next      *cacheEntry
}

// newSessionCache creates a session cache with the given capacity and idle TTL.
// A background goroutine periodically removes expired sessions.
func newSessionCache(capacity int, ttl time.Duration) *sessionCache {
	if capacity <= 0 {
		capacity = 1
	}
	c := &sessionCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[string]*cacheEntry, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup(cleanupInterval(ttl))
	return c
}

func cleanupInterval(ttl time.Duration) time.Duration {
	switch {
	case ttl <= 0:
		return time.Minute
	case ttl < time.Minute:
		return ttl
	default:
		return time.Minute
	}
}

// Stop shuts down the cleanup goroutine. It is safe to call more than once.
func (c *sessionCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *sessionCache) Metrics() cache.Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// Get returns the session for key if present and not expired.
func (c *sessionCache) Get(key string) (*order.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordSessionCacheOperation("get", "miss")
		return nil, false
	}

	if time.Now().After(entry.expiresAt) {
		c.removeEntry(entry)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordSessionCacheOperation("get", "expired")
		metrics.UpdateActiveSessions(len(c.items))
		return nil, false
	}

	entry.expiresAt = time.Now().Add(c.ttl)
	c.moveToFront(entry)

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordSessionCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or replaces a session. When the cache is full the least recently
// used session is evicted.
func (c *sessionCache) Set(key string, value *order.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		return
	}

	entry := &cacheEntry{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	if len(c.items) > c.capacity {
		c.removeTail()
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordSessionCacheOperation("evict", "capacity")
	}
	metrics.RecordSessionCacheOperation("set", "success")
	metrics.UpdateActiveSessions(len(c.items))
}

// Invalidate removes a session.
func (c *sessionCache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordSessionCacheOperation("invalidate", "success")
		metrics.UpdateActiveSessions(len(c.items))
	}
}

// Clear removes all sessions and resets the counters.
func (c *sessionCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*cacheEntry, c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordSessionCacheOperation("clear", "success")
	metrics.UpdateActiveSessions(0)
}

func (c *sessionCache) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired sessions.
func (c *sessionCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
		}
	}
	metrics.UpdateActiveSessions(len(c.items))
}

// removeEntry removes an entry from both the map and the linked list.
func (c *sessionCache) removeEntry(entry *cacheEntry) {
	delete(c.items, entry.key)
	c.remove(entry)
}

func (c *sessionCache) moveToFront(entry *cacheEntry) {
	if entry == c.head {
		return
	}
	c.remove(entry)
	c.addToFront(entry)
}

func (c *sessionCache) addToFront(entry *cacheEntry) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

// remove unlinks an entry without touching the map.
func (c *sessionCache) remove(entry *cacheEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}

// removeTail evicts the least recently used entry.
func (c *sessionCache) removeTail() {
	if c.tail == nil {
		return
	}
	c.removeEntry(c.tail)
}
