package repository

import (
	"context"
	"errors"

	"github.com/guttosm/catalog-service/internal/circuitbreaker"
)

// ExportsRepositoryWithCircuitBreaker guards an exports repository with a
// circuit breaker. Writes are dropped silently while the breaker is open;
// reads surface circuitbreaker.ErrCircuitOpen.
type ExportsRepositoryWithCircuitBreaker struct {
	repo           ExportsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewExportsRepositoryWithCircuitBreaker wraps repo with cb.
func NewExportsRepositoryWithCircuitBreaker(repo ExportsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ExportsRepositoryWithCircuitBreaker {
	return &ExportsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores an export document.
func (r *ExportsRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *ExportDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves export documents.
func (r *ExportsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts ExportQueryOptions) ([]*ExportDocument, error) {
	var result []*ExportDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count counts export documents.
func (r *ExportsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts ExportQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying breaker for health reporting.
func (r *ExportsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
