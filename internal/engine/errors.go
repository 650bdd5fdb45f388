package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry is returned for diagonal or zero-length lines and
	// for rectangles without a positive width and height.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrFieldFull is returned when a BoxField already holds four rectangles.
	ErrFieldFull = errors.New("field is full")

	// ErrNoViablePlacement means the greedy search found no collision-free
	// anchor. Callers receive it wrapped in an *InvariantError.
	ErrNoViablePlacement = errors.New("no viable placement")

	// ErrUnknownStrategy is returned by NewField for an unrecognised strategy.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrNothingToPack is returned when Pack is called without sprites.
	ErrNothingToPack = errors.New("no sprites to pack")
)

// InvariantError reports an internal packing defect, as opposed to bad input.
// The field that produced it still holds every placement committed before the
// failing call.
type InvariantError struct {
	Op     string // operation that detected the violation
	Placed int    // placements committed before the failing call
	Err    error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("packing invariant violated in %s after %d placements: %v", e.Op, e.Placed, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
