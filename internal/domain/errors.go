package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found or is not
	// owned by the caller.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict, e.g. a duplicate
	// email or token.
	ErrAlreadyExists = errors.New("already exists")
)

// UnknownProductError rejects a checkout referencing a product id absent from
// the catalog. The whole request fails before any write.
type UnknownProductError struct {
	ProductID int64
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("product %d does not exist", e.ProductID)
}

// InvalidQuantityError rejects a cart line with a non-positive quantity.
type InvalidQuantityError struct {
	ProductID int64
	Quantity  int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for product %d", e.Quantity, e.ProductID)
}
