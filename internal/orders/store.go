// Package orders provides the in-memory order store.
package orders

import (
	"sync"

	"github.com/olprint/backoffice/internal/models"
)

// Filter selects orders by status and inclusive date bounds. A zero Status or
// models.StatusAll matches every status; an empty bound is unbounded.
type Filter struct {
	Status models.OrderStatus
	From   string
	To     string
}

// Matches reports whether o satisfies every predicate of the filter.
func (f Filter) Matches(o models.Order) bool {
	if f.Status != "" && f.Status != models.StatusAll && o.Status != f.Status {
		return false
	}
	if f.From != "" && o.Date < f.From {
		return false
	}
	if f.To != "" && o.Date > f.To {
		return false
	}
	return true
}

// Validate checks the bounds are ISO dates and the status is known.
func (f Filter) Validate() error {
	if f.Status != "" && f.Status != models.StatusAll && !f.Status.Valid() {
		return models.NewInvalidStatusError(string(f.Status))
	}
	for _, d := range []string{f.From, f.To} {
		if d == "" {
			continue
		}
		if _, err := models.ParseDate(d); err != nil {
			return err
		}
	}
	return nil
}

// Store keeps the orders of the session in insertion order.
type Store struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewStore constructs a Store seeded with orders.
func NewStore(orders []models.Order) *Store {
	return &Store{orders: append([]models.Order{}, orders...)}
}

// ListOrders returns the orders matching f.
func (s *Store) ListOrders(f Filter) ([]models.Order, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

// Snapshot returns a copy of every order.
func (s *Store) Snapshot() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]models.Order{}, s.orders...)
}

// GetOrder returns the order with the given id.
func (s *Store) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Order{}, models.NewNotFoundError("order", id)
	}
	return s.orders[i], nil
}

// UpdateStatus replaces the status of an order. Any status may follow any
// other. The updated record is returned so callers can refresh their view.
func (s *Store) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	if !status.Valid() {
		return models.Order{}, models.NewInvalidStatusError(string(status))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Order{}, models.NewNotFoundError("order", id)
	}
	s.orders[i].Status = status
	return s.orders[i], nil
}

// DeleteOrder removes an order. Callers obtain confirmation before calling.
func (s *Store) DeleteOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.NewNotFoundError("order", id)
	}
	s.orders = append(s.orders[:i], s.orders[i+1:]...)
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}
