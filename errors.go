package sparsevec

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeInnerProduct is returned when a norm is requested for a vector
	// whose inner product with itself is negative.
	ErrNegativeInnerProduct = errors.New("negative inner product")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// DomainError indicates an operation was evaluated outside its mathematical domain.
//
// The original underlying error can be accessed via errors.Unwrap.
type DomainError struct {
	Op    string
	Value float64
	cause error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: value %g outside domain: %v", e.Op, e.Value, e.cause)
}

func (e *DomainError) Unwrap() error { return e.cause }
