package astar

import "errors"

var (
	// ErrInvalidState is returned when an operation is not allowed in the
	// engine's current state. The engine is left untouched.
	ErrInvalidState = errors.New("operation not allowed in current state")

	// ErrDegenerateQuery is returned when start or goal is missing, or both
	// name the same cell. No search is started.
	ErrDegenerateQuery = errors.New("degenerate query")

	// ErrRescaleInconsistency is returned after a rescale that collapsed
	// distinct tracked cells onto one. The rescale has still been applied.
	ErrRescaleInconsistency = errors.New("rescale collapsed distinct cells")

	// ErrInvalidCellSize is returned for a non-positive cell size.
	ErrInvalidCellSize = errors.New("cell size must be positive")
)
