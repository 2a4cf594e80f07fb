package mosp

import (
	"errors"
)

var (
	ErrNilGraph          = errors.New("mosp: graph is nil")
	ErrBadDimension      = errors.New("mosp: number of objectives must be positive")
	ErrSourceNotFound    = errors.New("mosp: source node not in graph")
	ErrDimensionMismatch = errors.New("mosp: edge cost vector has wrong number of objectives")
	ErrNegativeCost      = errors.New("mosp: negative edge cost")
	ErrInvalidCost       = errors.New("mosp: edge cost is not finite")
	ErrBudgetExceeded    = errors.New("mosp: iteration budget exceeded")
	ErrCanceled          = errors.New("mosp: search canceled")
)

// Reports whether err rejected the input before any search was done.
func IsPreconditionError(err error) bool {
	return errors.Is(err, ErrNilGraph) ||
		errors.Is(err, ErrBadDimension) ||
		errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrDimensionMismatch) ||
		errors.Is(err, ErrNegativeCost) ||
		errors.Is(err, ErrInvalidCost)
}
