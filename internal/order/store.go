package order

import (
	"errors"
	"fmt"
	"sync"

	"github.com/guttosm/catalog-service/internal/domain/model"
)

// ErrUnknownProduct is returned when a quantity is set for a product that is
// not in the catalog.
var ErrUnknownProduct = errors.New("unknown product")

// QuantityStore maps every catalog product ID to its ordered quantity.
// It is safe for concurrent use; the last write wins.
type QuantityStore struct {
	mu         sync.RWMutex
	quantities map[string]int
}

// NewQuantityStore creates a store with a zero quantity for every product.
func NewQuantityStore(products []model.Product) *QuantityStore {
	q := make(map[string]int, len(products))
	for _, p := range products {
		q[p.ID] = 0
	}
	return &QuantityStore{quantities: q}
}

// Set stores a normalized quantity for productID and returns the stored value.
func (s *QuantityStore) Set(productID string, quantity int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quantities[productID]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}

	stored := Normalize(quantity)
	s.quantities[productID] = stored
	return stored, nil
}

// Get returns the quantity for productID.
func (s *QuantityStore) Get(productID string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quantities[productID]
	return q, ok
}

// Snapshot returns a copy of the full quantity map.
func (s *QuantityStore) Snapshot() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.quantities))
	for id, q := range s.quantities {
		out[id] = q
	}
	return out
}

// Reset sets every quantity back to 0.
func (s *QuantityStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.quantities {
		s.quantities[id] = 0
	}
}
