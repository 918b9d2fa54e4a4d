package astar

import (
	"fmt"
	"log/slog"
)

// Options defines engine parameters.
type Options struct {
	Movement Movement
	CellSize int
	Bounds   Bounds

	// Zoom changes the cell size by ZoomStep while staying strictly
	// between MinCellSize and MaxCellSize.
	ZoomStep    int
	MinCellSize int
	MaxCellSize int

	Logger *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns a 700x600 pixel panel with 25 pixel cells and
// cardinal-only movement.
func DefaultOptions() Options {
	return Options{
		CellSize:    25,
		Bounds:      Bounds{Width: 700, Height: 600},
		ZoomStep:    3,
		MinCellSize: 2,
		MaxCellSize: 200,
	}
}

// WithDiagonal enables or disables the four diagonal moves.
func WithDiagonal(enabled bool) Option {
	return func(options *Options) { options.Movement.Diagonal = enabled }
}

// WithEuclidean switches h to straight-line distance.
func WithEuclidean(enabled bool) Option {
	return func(options *Options) { options.Movement.Euclidean = enabled }
}

// WithHeuristic pins h to kind regardless of the movement flags.
func WithHeuristic(kind HeuristicKind) Option {
	return func(options *Options) { options.Movement.Override = kind }
}

// WithCellSize sets the initial cell size in pixels.
func WithCellSize(size int) Option {
	return func(options *Options) { options.CellSize = size }
}

// WithBounds sets the searchable area in pixels.
func WithBounds(width, height int) Option {
	return func(options *Options) { options.Bounds = Bounds{Width: width, Height: height} }
}

// WithZoom sets the zoom step and the exclusive cell size limits.
func WithZoom(step, minSize, maxSize int) Option {
	return func(options *Options) {
		options.ZoomStep = step
		options.MinCellSize = minSize
		options.MaxCellSize = maxSize
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func (o Options) validate() error {
	if o.CellSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCellSize, o.CellSize)
	}
	if o.Bounds.Width <= 0 || o.Bounds.Height <= 0 {
		return fmt.Errorf("bounds must be positive, got %dx%d", o.Bounds.Width, o.Bounds.Height)
	}
	if o.ZoomStep < 0 || o.MinCellSize > o.MaxCellSize {
		return fmt.Errorf("invalid zoom step %d within (%d, %d)", o.ZoomStep, o.MinCellSize, o.MaxCellSize)
	}
	return nil
}
