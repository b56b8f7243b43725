package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// IdempotencyKeyHeader carries the client-chosen retry key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader is set on responses served from the store.
	IdempotencyReplayedHeader = "Idempotency-Replayed"
	// DefaultIdempotencyTTL is how long a response can be replayed.
	DefaultIdempotencyTTL = 5 * time.Minute

	maxIdempotencyKeyLength = 255
	maxIdempotencyBodyBytes = 1 << 20
)

var errIdempotencyBodyTooLarge = errors.New("request body too large for idempotent replay")

// storedResponse is a successful response kept for replay.
type storedResponse struct {
	status      int
	contentType string
	body        []byte
	storedAt    time.Time
}

// IdempotencyStore keeps successful responses keyed by Idempotency-Key.
type IdempotencyStore struct {
	mu       sync.Mutex
	items    map[string]*storedResponse
	ttl      time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIdempotencyStore creates a store whose entries expire after ttl.
// A non-positive ttl uses DefaultIdempotencyTTL.
func NewIdempotencyStore(ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	s := &IdempotencyStore{
		items:  make(map[string]*storedResponse),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	go s.cleanupLoop()
	return s
}

func (s *IdempotencyStore) get(key string) (*storedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(resp.storedAt) > s.ttl {
		delete(s.items, key)
		return nil, false
	}
	return resp, true
}

func (s *IdempotencyStore) set(key string, resp *storedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp.storedAt = s.now()
	s.items[key] = resp
}

// Len returns the number of stored responses, expired ones included.
func (s *IdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *IdempotencyStore) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup()
		case <-s.stopCh:
			return
		}
	}
}

func (s *IdempotencyStore) cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, resp := range s.items {
		if now.Sub(resp.storedAt) > s.ttl {
			delete(s.items, key)
		}
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (s *IdempotencyStore) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
}

// Idempotency replays the stored 2xx response when a POST, PUT or PATCH
// arrives again with the same Idempotency-Key, path and body. Requests
// without the header, or with an oversized one, pass through untouched.
func Idempotency(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || !isUnsafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" || len(key) > maxIdempotencyKeyLength {
			c.Next()
			return
		}

		storeKey, err := idempotencyStoreKey(key, c.Request)
		if err != nil {
			c.Next()
			return
		}

		if resp, ok := store.get(storeKey); ok {
			c.Header(IdempotencyReplayedHeader, "true")
			c.Data(resp.status, resp.contentType, resp.body)
			c.Abort()
			return
		}

		recorder := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		status := recorder.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			store.set(storeKey, &storedResponse{
				status:      status,
				contentType: recorder.Header().Get("Content-Type"),
				body:        recorder.body.Bytes(),
			})
		}
	}
}

func isUnsafeMethod(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

// idempotencyStoreKey hashes the key with the method, path and body and
// restores the body for the handler. Bodies over maxIdempotencyBodyBytes
// are restored unread past the limit and reported as too large.
func idempotencyStoreKey(key string, req *http.Request) (string, error) {
	h := sha256.New()
	h.Write([]byte(key))
	h.Write([]byte{0})
	h.Write([]byte(req.Method))
	h.Write([]byte{0})
	h.Write([]byte(req.URL.Path))
	h.Write([]byte{0})

	if req.Body != nil {
		original := req.Body
		body, err := io.ReadAll(io.LimitReader(original, maxIdempotencyBodyBytes+1))
		if err != nil {
			return "", err
		}
		if len(body) > maxIdempotencyBodyBytes {
			req.Body = readCloser{Reader: io.MultiReader(bytes.NewReader(body), original), Closer: original}
			return "", errIdempotencyBodyTooLarge
		}
		req.Body = readCloser{Reader: bytes.NewReader(body), Closer: original}
		h.Write(body)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// recordingWriter copies the response body as it is written.
type recordingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
