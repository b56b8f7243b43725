package order

import (
	"time"

	"github.com/guttosm/catalog-service/internal/catalog"
	"github.com/guttosm/catalog-service/internal/domain/model"
)

// Session is one user's order: a catalog plus its quantity store.
type Session struct {
	ID        string
	CreatedAt time.Time

	catalog catalog.Source
	store   *QuantityStore
}

// NewSession creates an empty order over src.
func NewSession(id string, src catalog.Source) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		catalog:   src,
		store:     NewQuantityStore(src.Products()),
	}
}

// SetQuantity parses raw, applies the minimum-quantity rule and stores the
// result for productID. It returns the stored quantity.
func (s *Session) SetQuantity(productID, raw string) (int, error) {
	return s.store.Set(productID, ParseQuantity(raw))
}

// View returns the order view for the products matching filter.
func (s *Session) View(filter string) model.OrderView {
	return Aggregate(s.catalog.Products(), s.store.Snapshot(), filter)
}

// Quantities returns a copy of the current quantities.
func (s *Session) Quantities() map[string]int {
	return s.store.Snapshot()
}

// Reset clears every quantity.
func (s *Session) Reset() {
	s.store.Reset()
}
