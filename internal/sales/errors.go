package sales

import (
	"errors"
	"fmt"
)

// ErrValidation is the umbrella for malformed sale input, rejected before a
// transaction is ever opened.
var ErrValidation = errors.New("invalid sale request")

var (
	// ErrEmptyItems is returned for a sale with no line items.
	ErrEmptyItems = fmt.Errorf("%w: sale must contain at least one item", ErrValidation)
	// ErrInvalidQuantity is returned for a non-positive line quantity.
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	// ErrInvalidUnitPrice is returned for a negative line unit price.
	ErrInvalidUnitPrice = fmt.Errorf("%w: unit price must not be negative", ErrValidation)
	// ErrTotalMismatch is returned when the submitted total does not equal
	// the sum of the line subtotals.
	ErrTotalMismatch = fmt.Errorf("%w: total does not match the sum of line items", ErrValidation)
)

// ErrProductNotFound is returned when a requested product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrSellerNotFound is returned when the seller reference does not exist.
var ErrSellerNotFound = errors.New("seller not found")

// ErrInsufficientStock is the sentinel matched by errors.Is for any
// StockError.
var ErrInsufficientStock = errors.New("insufficient stock")

// StockError identifies the product whose stock could not cover the request.
type StockError struct {
	ProductID uint
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Unwrap lets errors.Is(err, ErrInsufficientStock) match a StockError.
func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}
