// Package catalog provides the in-memory product and category store.
package catalog

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/olprint/backoffice/internal/models"
)

// Store keeps the products and categories of the catalog. Products and
// categories keep their insertion order.
type Store struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []string
	newID      func() string
}

// NewStore constructs a Store seeded with the given categories and products.
// Duplicate categories are collapsed.
func NewStore(categories []string, products []models.Product) *Store {
	s := &Store{
		products: make([]models.Product, 0, len(products)),
		newID:    uuid.NewString,
	}
	for _, c := range categories {
		if c = strings.TrimSpace(c); c != "" && !s.hasCategory(c) {
			s.categories = append(s.categories, c)
		}
	}
	s.products = append(s.products, products...)
	return s
}

// ListProducts returns the products whose name or category contains filter,
// case-insensitively. An empty filter returns every product.
func (s *Store) ListProducts(filter string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Snapshot returns a copy of every product.
func (s *Store) Snapshot() []models.Product {
	return s.ListProducts("")
}

// GetProduct returns the product with the given id.
func (s *Store) GetProduct(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, models.NewNotFoundError("product", id)
	}
	return s.products[i], nil
}

// AddProduct validates fields and appends a new product with a fresh id.
// Stock defaults to 0 and description to "". When no category is supplied the
// first category of the set is used.
func (s *Store) AddProduct(fields models.ProductFields) (models.Product, error) {
	if fields.Price == nil {
		return models.Product{}, models.NewValidationError("price", "is required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := fields.Apply(models.Product{})
	if fields.Category == nil && len(s.categories) > 0 {
		p.Category = s.categories[0]
	}
	if err := s.validate(p); err != nil {
		return models.Product{}, err
	}

	p.ID = s.freshID()
	s.products = append(s.products, p)
	return p, nil
}

// UpdateProduct merges the supplied fields over the product with the given id.
func (s *Store) UpdateProduct(id string, fields models.ProductFields) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Product{}, models.NewNotFoundError("product", id)
	}

	p := fields.Apply(s.products[i])
	if err := models.ValidateProduct(p); err != nil {
		return models.Product{}, err
	}
	if fields.Category != nil && !s.hasCategory(p.Category) {
		return models.Product{}, models.NewValidationError("category", "unknown category", p.Category)
	}

	s.products[i] = p
	return p, nil
}

// DeleteProduct removes the product with the given id.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.NewNotFoundError("product", id)
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

// CriticalStock returns the products below models.CriticalStockThreshold.
func (s *Store) CriticalStock() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Product{}
	for _, p := range s.products {
		if p.IsCritical() {
			out = append(out, p)
		}
	}
	return out
}

// ListCategories returns the categories in insertion order.
func (s *Store) ListCategories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string{}, s.categories...)
}

// AddCategory appends name to the category set. Adding an existing name is a no-op.
func (s *Store) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NewValidationError("category", "cannot be empty", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCategory(name) {
		s.categories = append(s.categories, name)
	}
	return nil
}

// DeleteCategory removes name from the category set unless a product still uses it.
func (s *Store) DeleteCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.categories {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.NewNotFoundError("category", name)
	}

	var users []string
	for _, p := range s.products {
		if p.Category == name {
			users = append(users, p.Name)
		}
	}
	if len(users) > 0 {
		return models.NewCategoryInUseError(name, users)
	}

	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)
	return nil
}

// validate must be called with the lock held.
func (s *Store) validate(p models.Product) error {
	if err := models.ValidateProduct(p); err != nil {
		return err
	}
	if !s.hasCategory(p.Category) {
		return models.NewValidationError("category", "unknown category", p.Category)
	}
	return nil
}

func (s *Store) freshID() string {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func (s *Store) indexOf(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) hasCategory(name string) bool {
	for _, c := range s.categories {
		if c == name {
			return true
		}
	}
	return false
}
