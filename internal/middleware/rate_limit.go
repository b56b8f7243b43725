package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/catalog-service/internal/domain/dto"
	"github.com/guttosm/catalog-service/internal/i18n"
)

const defaultNumShards = 16

// clientWindow is the fixed-window counter of one client.
type clientWindow struct {
	remaining int
	resetAt   time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
}

// RateLimiter is a per-client fixed-window limiter. Clients are spread over
// shards by FNV hash to keep lock contention low.
type RateLimiter struct {
	shards   []*limiterShard
	rate     int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows rate requests per client per window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	return NewShardedRateLimiter(rate, window, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(rate int, window time.Duration, numShards int) *RateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	if window <= 0 {
		window = time.Minute
	}

	shards := make([]*limiterShard, numShards)
	for i := range shards {
		shards[i] = &limiterShard{clients: make(map[string]*clientWindow)}
	}

	rl := &RateLimiter{
		shards: shards,
		rate:   rate,
		window: window,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) shard(key string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// allow consumes one request for key.
func (rl *RateLimiter) allow(key string) (ok bool, remaining int, resetIn time.Duration) {
	s := rl.shard(key)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, exists := s.clients[key]
	if !exists || !now.Before(w.resetAt) {
		w = &clientWindow{remaining: rl.rate, resetAt: now.Add(rl.window)}
		s.clients[key] = w
	}

	resetIn = w.resetAt.Sub(now)
	if w.remaining <= 0 {
		return false, 0, resetIn
	}
	w.remaining--
	return true, w.remaining, resetIn
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	limit := strconv.Itoa(rl.rate)

	return func(c *gin.Context) {
		ok, remaining, resetIn := rl.allow(c.ClientIP())

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(resetIn.Seconds()))))
			message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops clients whose window has ended.
func (rl *RateLimiter) cleanup() {
	now := rl.now()
	for _, s := range rl.shards {
		s.mu.Lock()
		for key, w := range s.clients {
			if !now.Before(w.resetAt) {
				delete(s.clients, key)
			}
		}
		s.mu.Unlock()
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Clients returns the number of tracked clients.
func (rl *RateLimiter) Clients() int {
	total := 0
	for _, s := range rl.shards {
		s.mu.Lock()
		total += len(s.clients)
		s.mu.Unlock()
	}
	return total
}
