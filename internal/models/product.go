package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CriticalStockThreshold is the stock level below which a product is flagged critical.
const CriticalStockThreshold = 10

// Product represents a catalog entry of the print shop
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
}

// IsCritical reports whether the product stock is below CriticalStockThreshold.
func (p Product) IsCritical() bool {
	return p.Stock < CriticalStockThreshold
}

// ProductFields carries the writable fields of a product. Nil fields are left
// untouched on update and take their defaults on create.
type ProductFields struct {
	Name        *string          `json:"name,omitempty"`
	Brand       *string          `json:"brand,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Description *string          `json:"description,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
}

// Apply merges the supplied fields over p and returns the result.
func (f ProductFields) Apply(p Product) Product {
	if f.Name != nil {
		p.Name = strings.TrimSpace(*f.Name)
	}
	if f.Brand != nil {
		p.Brand = *f.Brand
	}
	if f.Category != nil {
		p.Category = *f.Category
	}
	if f.Price != nil {
		p.Price = *f.Price
	}
	if f.Stock != nil {
		p.Stock = *f.Stock
	}
	if f.Description != nil {
		p.Description = *f.Description
	}
	if f.ImageURL != nil {
		p.ImageURL = *f.ImageURL
	}
	return p
}

// ValidateProduct checks the field constraints shared by create and update.
func ValidateProduct(p Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "cannot be empty", p.Name)
	}
	if p.Price.IsNegative() {
		return NewValidationError("price", "must be non-negative", p.Price.String())
	}
	if p.Stock < 0 {
		return NewValidationError("stock", "must be non-negative", p.Stock)
	}
	return nil
}
