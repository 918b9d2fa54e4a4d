package astar

import (
	"fmt"
	"math"
	"strings"
)

// HeuristicKind selects the distance estimate used for h.
type HeuristicKind int

const (
	// HeuristicAuto derives the estimate from the movement flags:
	// Euclidean when the Euclidean flag is set, octile with diagonal
	// movement, Manhattan otherwise.
	HeuristicAuto HeuristicKind = iota
	HeuristicManhattan
	HeuristicOctile
	HeuristicEuclidean
)

func (k HeuristicKind) String() string {
	switch k {
	case HeuristicAuto:
		return "auto"
	case HeuristicManhattan:
		return "manhattan"
	case HeuristicOctile:
		return "octile"
	case HeuristicEuclidean:
		return "euclidean"
	}
	return fmt.Sprintf("HeuristicKind(%d)", int(k))
}

// ParseHeuristic maps a config name to a HeuristicKind. The empty string is
// HeuristicAuto.
func ParseHeuristic(name string) (HeuristicKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return HeuristicAuto, nil
	case "manhattan":
		return HeuristicManhattan, nil
	case "octile":
		return HeuristicOctile, nil
	case "euclidean", "trig":
		return HeuristicEuclidean, nil
	}
	return HeuristicAuto, fmt.Errorf("unknown heuristic %q", name)
}

// Move is a single-cell step in cell units with its cost.
type Move struct {
	DX, DY int
	Cost   float64
}

// Diagonal reports whether the move changes both axes.
func (m Move) Diagonal() bool { return m.DX != 0 && m.DY != 0 }

var (
	// N, E, S, W. Expansion order is fixed; search order depends on it.
	cardinalMoves = []Move{
		{DX: 0, DY: -1, Cost: 1},
		{DX: 1, DY: 0, Cost: 1},
		{DX: 0, DY: 1, Cost: 1},
		{DX: -1, DY: 0, Cost: 1},
	}

	// N, E, S, W, then NE, SE, SW, NW.
	allMoves = append(append([]Move(nil), cardinalMoves...),
		Move{DX: 1, DY: -1, Cost: math.Sqrt2},
		Move{DX: 1, DY: 1, Cost: math.Sqrt2},
		Move{DX: -1, DY: 1, Cost: math.Sqrt2},
		Move{DX: -1, DY: -1, Cost: math.Sqrt2},
	)
)

// Movement holds the movement model and heuristic flags.
//
// Every estimate it produces is admissible and consistent for the moves it
// allows: Euclidean <= octile <= true 8-way cost, and Euclidean <= Manhattan
// == true 4-way cost. The one exception is forcing HeuristicOctile onto
// cardinal-only movement, which is still admissible but no longer tight.
type Movement struct {
	Diagonal  bool
	Euclidean bool

	// Override replaces the flag-derived pairing when not HeuristicAuto.
	Override HeuristicKind
}

// Heuristic returns the estimate in effect.
func (m Movement) Heuristic() HeuristicKind {
	switch {
	case m.Override != HeuristicAuto:
		return m.Override
	case m.Euclidean:
		return HeuristicEuclidean
	case m.Diagonal:
		return HeuristicOctile
	default:
		return HeuristicManhattan
	}
}

// Moves returns the legal moves. The slice is shared; do not modify it.
func (m Movement) Moves() []Move {
	if m.Diagonal {
		return allMoves
	}
	return cardinalMoves
}

// Estimate returns h(a, b) in cell units.
func (m Movement) Estimate(a, b Coord, cellSize int) float64 {
	dx := math.Abs(float64(a.X-b.X)) / float64(cellSize)
	dy := math.Abs(float64(a.Y-b.Y)) / float64(cellSize)
	switch m.Heuristic() {
	case HeuristicEuclidean:
		return math.Hypot(dx, dy)
	case HeuristicOctile:
		return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
	default:
		return dx + dy
	}
}

// MoveBetween returns the move that takes a to b in one step, if b is a
// neighbor of a under this movement model.
func (m Movement) MoveBetween(a, b Coord, cellSize int) (Move, bool) {
	for _, move := range m.Moves() {
		if a.Add(move.DX*cellSize, move.DY*cellSize) == b {
			return move, true
		}
	}
	return Move{}, false
}
