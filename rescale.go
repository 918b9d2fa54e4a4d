package astar

import (
	"fmt"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// scaler maps a coordinate from one cell size to another, rounding to the
// nearest pixel with halves away from zero. Quantized coordinates map
// exactly.
type scaler struct {
	from, to int
}

func (s scaler) scale(v int) int {
	return int(math.Round(float64(v) * float64(s.to) / float64(s.from)))
}

func (s scaler) apply(c Coord) Coord {
	return Coord{X: s.scale(c.X), Y: s.scale(c.Y)}
}

// keepLatest returns, in original order, the positions of keys that are
// neither blocked nor repeated by a later key, and how many were dropped
// for sharing a cell with a later key or a blocked one.
func keepLatest(keys []Coord, blocked mapset.Set[Coord]) ([]int, int) {
	seen := mapset.New[Coord]()
	kept := make([]int, 0, len(keys))
	merged := 0
	for i := len(keys) - 1; i >= 0; i-- {
		if seen.Has(keys[i]) || blocked.Has(keys[i]) {
			merged++
			continue
		}
		seen.Put(keys[i])
		kept = append(kept, i)
	}
	slices.Reverse(kept)
	return kept, merged
}

// Rescale moves every tracked coordinate from oldCellSize to newCellSize
// and adopts newCellSize. Start, goal, obstacles, frontier, explored
// nodes, their parent links and the path are all mapped.
//
// When rounding makes distinct cells coincide, one survivor is kept: the
// later entry within a container, the explored node over a frontier node,
// and start or goal over an obstacle. The rescale is still applied and an
// error wrapping ErrRescaleInconsistency reports the merge. A session
// rescaled this way may later reconstruct a path that does not reach the
// start.
func (e *Engine) Rescale(oldCellSize, newCellSize int) error {
	if oldCellSize <= 0 || newCellSize <= 0 {
		return fmt.Errorf("rescale %d -> %d: %w", oldCellSize, newCellSize, ErrInvalidCellSize)
	}
	e.cellSize = newCellSize
	if oldCellSize == newCellSize {
		return nil
	}
	scale := scaler{from: oldCellSize, to: newCellSize}
	merged := 0

	endpoints := mapset.New[Coord]()
	if e.hasStart {
		e.start = scale.apply(e.start)
		endpoints.Put(e.start)
	}
	if e.hasGoal {
		e.goal = scale.apply(e.goal)
		if endpoints.Has(e.goal) {
			merged++
		}
		endpoints.Put(e.goal)
	}

	obstacles := e.obstacles.All()
	for i, c := range obstacles {
		obstacles[i] = scale.apply(c)
	}
	keptObstacles, n := keepLatest(obstacles, endpoints)
	merged += n
	survivors := make([]Coord, 0, len(keptObstacles))
	for _, i := range keptObstacles {
		survivors = append(survivors, obstacles[i])
	}
	e.obstacles.replace(survivors)

	scaleNode := func(n Node) Node {
		n.Coord = scale.apply(n.Coord)
		if n.HasParent {
			n.Parent = scale.apply(n.Parent)
		}
		return n
	}

	closed := e.explored.Nodes()
	closedKeys := make([]Coord, len(closed))
	for i, n := range closed {
		closed[i] = scaleNode(n)
		closedKeys[i] = closed[i].Coord
	}
	keptClosed, n := keepLatest(closedKeys, mapset.New[Coord]())
	merged += n
	e.explored.Clear()
	closedSet := mapset.New[Coord]()
	for _, i := range keptClosed {
		e.explored.Insert(closed[i])
		closedSet.Put(closed[i].Coord)
	}

	open := e.frontier.byInsertion()
	openNodes := make([]Node, len(open))
	openKeys := make([]Coord, len(open))
	for i, item := range open {
		openNodes[i] = scaleNode(item.node)
		openKeys[i] = openNodes[i].Coord
	}
	keptOpen, n := keepLatest(openKeys, closedSet)
	merged += n
	nextSeq := e.frontier.nextSeq
	e.frontier.Clear()
	for _, i := range keptOpen {
		e.frontier.push(openNodes[i], open[i].seq)
	}
	e.frontier.nextSeq = nextSeq

	if e.path != nil {
		for i, c := range e.path {
			e.path[i] = scale.apply(c)
		}
	}
	if e.hasCurrent {
		e.current = scale.apply(e.current)
	}

	e.logger.Debug("grid rescaled", "from", oldCellSize, "to", newCellSize, "state", e.state.String())
	if merged > 0 {
		e.logger.Warn("rescale merged cells",
			"from", oldCellSize,
			"to", newCellSize,
			"merged", merged,
			"session", e.session,
		)
		return fmt.Errorf("rescale %d -> %d merged %d cells: %w", oldCellSize, newCellSize, merged, ErrRescaleInconsistency)
	}
	return nil
}

// SetCellSize rescales everything to size.
func (e *Engine) SetCellSize(size int) error {
	return e.Rescale(e.cellSize, size)
}

// Zoom grows the cells by one zoom step for direction < 0 and shrinks them
// for direction > 0, staying strictly inside the configured limits. A
// zoom past a limit is ignored.
func (e *Engine) Zoom(direction int) error {
	step := e.options.ZoomStep
	size := e.cellSize
	switch {
	case direction < 0 && size+step < e.options.MaxCellSize:
		size += step
	case direction > 0 && size-step > e.options.MinCellSize:
		size -= step
	default:
		return nil
	}
	return e.Rescale(e.cellSize, size)
}
