// Package circuitbreaker guards calls to the optional export log store so a
// flapping database cannot slow down order exports.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	// ErrCircuitOpen is returned when calls are being rejected.
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// State is the breaker position.
type State int

const (
	// StateClosed lets calls through.
	StateClosed State = iota
	// StateOpen rejects calls until the cool-down elapses.
	StateOpen
	// StateHalfOpen lets probe calls through after the cool-down.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config holds circuit breaker configuration.
type Config struct {
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold int
	// SuccessThreshold is the number of half-open successes that closes it again.
	SuccessThreshold int
	// Timeout is the cool-down before probing a tripped breaker.
	Timeout time.Duration
	// Name identifies the breaker in logs and health output.
	Name string
	// OnStateChange, when set, is called after every transition.
	OnStateChange func(name string, from, to State)
}

// DefaultConfig returns the export log breaker defaults.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "export-log",
	}
}

// CircuitBreaker is a consecutive-failure breaker.
type CircuitBreaker struct {
	mu          sync.RWMutex
	config      Config
	state       State
	failures    int
	successes   int
	openedAt    time.Time
	lastFailure time.Time
	now         func() time.Time
}

// New creates a closed breaker. Non-positive thresholds fall back to 1.
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 1
	}
	if config.SuccessThreshold <= 0 {
		config.SuccessThreshold = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    time.Now,
	}
}

// Execute runs fn unless the breaker is open. A cancelled context is returned
// as-is without calling fn and does not count as a failure.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cb.allow() {
		return ErrCircuitOpen
	}

	err := fn()
	cb.record(err)
	return err
}

// allow reports whether a call may proceed, moving an expired open breaker
// to half-open.
func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if cb.now().Sub(cb.openedAt) < cb.config.Timeout {
		return false
	}
	cb.successes = 0
	cb.transition(StateHalfOpen)
	return true
}

func (cb *CircuitBreaker) record(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err == nil {
		cb.failures = 0
		if cb.state == StateHalfOpen {
			cb.successes++
			if cb.successes >= cb.config.SuccessThreshold {
				cb.successes = 0
				cb.transition(StateClosed)
			}
		}
		return
	}

	cb.failures++
	cb.lastFailure = cb.now()
	switch cb.state {
	case StateClosed:
		if cb.failures >= cb.config.FailureThreshold {
			cb.trip()
		}
	case StateHalfOpen:
		cb.trip()
	}
}

// trip opens the breaker. Caller holds mu.
func (cb *CircuitBreaker) trip() {
	cb.openedAt = cb.now()
	cb.transition(StateOpen)
	log.Warn().
		Str("circuit_breaker", cb.config.Name).
		Int("failure_count", cb.failures).
		Msg("Circuit breaker opened")
}

// transition changes state and fires the hook. Caller holds mu.
func (cb *CircuitBreaker) transition(to State) {
	from := cb.state
	if from == to {
		return
	}
	cb.state = to
	if to != StateOpen {
		log.Info().
			Str("circuit_breaker", cb.config.Name).
			Str("from", from.String()).
			Str("to", to.String()).
			Msg("Circuit breaker state changed")
	}
	if cb.config.OnStateChange != nil {
		cb.config.OnStateChange(cb.config.Name, from, to)
	}
}

// Reset forces the breaker closed and clears its counters.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.successes = 0
	cb.transition(StateClosed)
}

// Name returns the configured breaker name.
func (cb *CircuitBreaker) Name() string {
	return cb.config.Name
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether calls are currently rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a point-in-time snapshot for health reporting.
type Stats struct {
	State        string    `json:"state"`
	FailureCount int       `json:"failure_count"`
	SuccessCount int       `json:"success_count"`
	LastFailure  time.Time `json:"last_failure,omitempty"`
	IsHealthy    bool      `json:"is_healthy"`
}

// GetStats returns current circuit breaker statistics.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		State:        cb.state.String(),
		FailureCount: cb.failures,
		SuccessCount: cb.successes,
		LastFailure:  cb.lastFailure,
		IsHealthy:    cb.state == StateClosed,
	}
}
