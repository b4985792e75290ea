package domain

import "errors"

// Validation errors raised by the domain constructors and mutators.
var (
	// Product
	ErrEmptyName    = errors.New("product name cannot be empty")
	ErrInvalidPrice = errors.New("price must be greater than zero")

	// OrderItem
	ErrNullProduct     = errors.New("order item product cannot be nil")
	ErrNullOrder       = errors.New("order item order cannot be nil")
	ErrInvalidQuantity = errors.New("order item quantity must be greater than zero")

	// Order
	ErrNullUser            = errors.New("order user cannot be nil")
	ErrInvalidDeliveryDate = errors.New("delivery date cannot be before the order date")

	// OrderBatch
	ErrNullOrderArgument = errors.New("order cannot be nil")
)
