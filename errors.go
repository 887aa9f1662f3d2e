package violin

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when a tunable constant is out of range.
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrInvalidDimension indicates a coordinate vector with an unusable
// dimension.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

// ErrInvalidError indicates an initial error estimate that is negative or
// non-finite.
type ErrInvalidError struct {
	Estimate float64
}

func (e *ErrInvalidError) Error() string {
	return fmt.Sprintf("invalid error estimate: %v", e.Estimate)
}
