package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "product not found: id=p-1", NewNotFoundError("product", "p-1").Error())
	assert.Equal(t, "invalid input: field=price, reason=must be non-negative, value=-1",
		NewValidationError("price", "must be non-negative", -1).Error())
	assert.Equal(t, `category in use: "Toners" is referenced by 2 product(s): a, b`,
		NewCategoryInUseError("Toners", []string{"a", "b"}).Error())
	assert.Equal(t, `invalid order status: "Arquivado"`, NewInvalidStatusError("Arquivado").Error())
}

func TestErrorTypeDiscrimination(t *testing.T) {
	nf := fmt.Errorf("failed to update: %w", NewNotFoundError("order", "ORD-9"))
	ve := NewValidationError("name", "cannot be empty", "")
	ce := NewCategoryInUseError("Papéis", []string{"3"})
	se := NewInvalidStatusError("x")
	cr := NewConfirmationRequiredError("delete order", "ORD-1")

	assert.True(t, IsNotFound(nf))
	assert.True(t, errors.Is(nf, &NotFoundError{}))
	assert.False(t, IsValidation(nf))

	assert.True(t, IsValidation(ve))
	assert.False(t, IsCategoryInUse(ve))

	assert.True(t, IsCategoryInUse(ce))
	assert.False(t, IsNotFound(ce))

	assert.True(t, IsInvalidStatus(se))
	assert.False(t, IsValidation(se))

	assert.True(t, IsConfirmationRequired(cr))
	assert.False(t, IsNotFound(cr))
}
