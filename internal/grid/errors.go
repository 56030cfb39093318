package grid

import "errors"

// Invariant violations on boundary sequences.
var (
	// ErrTooFewBounds indicates a boundary sequence with fewer than two points.
	ErrTooFewBounds = errors.New("grid: boundary sequence needs at least two points")

	// ErrNotIncreasing indicates boundaries that are not strictly increasing.
	ErrNotIncreasing = errors.New("grid: boundaries must be strictly increasing")
)
