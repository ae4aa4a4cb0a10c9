package core

import (
	"errors"
	"fmt"
)

// ErrNonOrderableDistance is reported when a hit distance cannot be ordered
// against the others (NaN). It signals corrupted geometry upstream.
var ErrNonOrderableDistance = errors.New("non-orderable hit distance")

// NumericError describes a fatal numeric failure in the render pipeline.
// It is raised with panic from the hot path and recovered by the worker pool.
type NumericError struct {
	Op    string  // Operation that observed the value
	Value float64 // Offending value
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrNonOrderableDistance, e.Value)
}

func (e *NumericError) Unwrap() error {
	return ErrNonOrderableDistance
}
