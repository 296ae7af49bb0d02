package apperrors

import (
	"errors"
	"fmt"
)

// NotFoundError covers missing users, products, cart items and orders.
// Cause keeps the underlying failure (e.g. a remote call error) for logs;
// only the message reaches the client.
type NotFoundError struct {
	Resource string
	ID       string
	Cause    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with ID: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Cause }

// NewNotFound builds a NotFoundError for the given resource kind and id.
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewNotFoundCause is like NewNotFound but records the failure that was
// translated into the not-found result.
func NewNotFoundCause(resource, id string, cause error) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id, Cause: cause}
}

// OutOfStockError is returned when a cart add requests more units than the
// product currently has in stock.
type OutOfStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("product %s is out of stock or has insufficient quantity (requested: %d, available: %d)",
		e.ProductName, e.Requested, e.Available)
}

// EmptyCartError is returned when an order is created from an empty cart.
type EmptyCartError struct {
	UserID string
}

func (e *EmptyCartError) Error() string {
	return fmt.Sprintf("cart is empty for user ID: %s", e.UserID)
}

// ConflictError signals a uniqueness violation, e.g. a duplicate email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
