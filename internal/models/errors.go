// Package models defines the domain records of the back office and their error types.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError is returned when a record with the given ID does not exist
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: id=%s", e.Kind, e.ID)
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// ValidationError is returned when input is rejected before any state changes
type ValidationError struct {
	Field  string
	Reason string
	Value  interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: field=%s, reason=%s, value=%v", e.Field, e.Reason, e.Value)
}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

// CategoryInUseError is returned when deleting a category still referenced by products
type CategoryInUseError struct {
	Category string
	Products []string
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category in use: %q is referenced by %d product(s): %s",
		e.Category, len(e.Products), strings.Join(e.Products, ", "))
}

func (e *CategoryInUseError) Is(target error) bool {
	_, ok := target.(*CategoryInUseError)
	return ok
}

// InvalidStatusError is returned for a value outside the order status enumeration
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid order status: %q", e.Value)
}

func (e *InvalidStatusError) Is(target error) bool {
	_, ok := target.(*InvalidStatusError)
	return ok
}

// ConfirmationRequiredError is returned when a destructive action was not confirmed
type ConfirmationRequiredError struct {
	Action string
	ID     string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("confirmation required: %s id=%s", e.Action, e.ID)
}

func (e *ConfirmationRequiredError) Is(target error) bool {
	_, ok := target.(*ConfirmationRequiredError)
	return ok
}

func NewNotFoundError(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func NewValidationError(field, reason string, value interface{}) error {
	return &ValidationError{Field: field, Reason: reason, Value: value}
}

func NewCategoryInUseError(category string, products []string) error {
	return &CategoryInUseError{Category: category, Products: products}
}

func NewInvalidStatusError(value string) error {
	return &InvalidStatusError{Value: value}
}

func NewConfirmationRequiredError(action, id string) error {
	return &ConfirmationRequiredError{Action: action, ID: id}
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsCategoryInUse checks if an error is a CategoryInUseError
func IsCategoryInUse(err error) bool {
	var ce *CategoryInUseError
	return errors.As(err, &ce)
}

// IsInvalidStatus checks if an error is an InvalidStatusError
func IsInvalidStatus(err error) bool {
	var se *InvalidStatusError
	return errors.As(err, &se)
}

// IsConfirmationRequired checks if an error is a ConfirmationRequiredError
func IsConfirmationRequired(err error) bool {
	var ce *ConfirmationRequiredError
	return errors.As(err, &ce)
}
