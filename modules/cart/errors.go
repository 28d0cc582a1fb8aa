package cart

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity is returned under RejectNonPositive when a mutation
// would leave a line with a quantity below one.
var ErrInvalidQuantity = errors.New("cart: quantity must be positive")

// CartError reports persisted cart data that could not be decoded.
type CartError struct {
	Key string
	Err error
}

func (e *CartError) Error() string {
	return fmt.Sprintf("cart: malformed data under %q: %v", e.Key, e.Err)
}

func (e *CartError) Unwrap() error { return e.Err }

// PricingError reports a variant without any price entry.
type PricingError struct {
	VariantID string
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("cart: variant %q has no price", e.VariantID)
}

// StorageError reports a failed read or write of the durable store.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("cart: storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
