package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

func TestRescaleQuantizedCellsExactly(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.SetStart(at(0, 0)))
	require.NoError(t, e.SetGoal(at(3, 4)))
	require.NoError(t, e.AddObstacle(at(1, 1)))
	require.NoError(t, e.AddObstacle(at(2, 5)))

	require.NoError(t, e.Rescale(cell, 28))
	assert.Equal(t, 28, e.CellSize())
	goal, _ := e.Goal()
	assert.Equal(t, Coord{84, 112}, goal)
	assert.Equal(t, []Coord{{28, 28}, {56, 140}}, e.Obstacles())

	require.NoError(t, e.Rescale(28, cell))
	start, _ := e.Start()
	goal, _ = e.Goal()
	assert.Equal(t, at(0, 0), start)
	assert.Equal(t, at(3, 4), goal)
	assert.Equal(t, []Coord{at(1, 1), at(2, 5)}, e.Obstacles())
}

func TestRescaleRoundTripKeepsSession(t *testing.T) {
	e := newTestEngine(t, WithDiagonal(true))
	require.NoError(t, e.AddObstacle(at(2, 1)))
	require.NoError(t, e.SetStart(at(0, 0)))
	require.NoError(t, e.SetGoal(at(6, 7)))
	require.NoError(t, e.Setup())
	for range 5 {
		require.Equal(t, Stepping, e.Step())
	}
	open, closed := e.Frontier(), e.Explored()

	require.NoError(t, e.Rescale(cell, 28))
	require.NoError(t, e.Rescale(28, cell))

	assert.Equal(t, open, e.Frontier())
	assert.Equal(t, closed, e.Explored())
	assert.Equal(t, []Coord{at(2, 1)}, e.Obstacles())
}

func TestScalerRoundTripWithinRoundingUnit(t *testing.T) {
	down, up := scaler{from: 10, to: 3}, scaler{from: 3, to: 10}
	unit := 10.0 / 3

	for _, c := range []Coord{{7, 13}, {33, 41}, {58, 92}, {101, 4}, {17, 26}} {
		back := up.apply(down.apply(c))
		assert.InDelta(t, c.X, back.X, unit, "%s", c)
		assert.InDelta(t, c.Y, back.Y, unit, "%s", c)
	}
}

func TestScalerRounding(t *testing.T) {
	s := scaler{from: 100, to: 5}
	assert.Equal(t, 0, s.scale(0))
	assert.Equal(t, 1, s.scale(10), "halves round away from zero")
	assert.Equal(t, 1, s.scale(20))
	assert.Equal(t, 2, s.scale(30))
	assert.Equal(t, -1, s.scale(-10))

	exact := scaler{from: 25, to: 28}
	for k := range 40 {
		assert.Equal(t, 28*k, exact.scale(25*k))
	}
}

// A caller passing a stale old size makes distinct cells round together.
func TestRescaleCollisionIsReported(t *testing.T) {
	e, err := NewEngine(WithCellSize(10), WithBounds(1000, 1000), WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, e.AddObstacle(Coord{10, 0}))
	require.NoError(t, e.AddObstacle(Coord{20, 0}))
	require.NoError(t, e.AddObstacle(Coord{40, 40}))

	err = e.Rescale(100, 5)

	assert.ErrorIs(t, err, ErrRescaleInconsistency)
	assert.Equal(t, 5, e.CellSize(), "rescale still applied")
	assert.Equal(t, []Coord{{1, 0}, {2, 2}}, e.Obstacles())
}

func TestRescaleNeverBlocksEndpoints(t *testing.T) {
	e, err := NewEngine(WithCellSize(10), WithBounds(1000, 1000), WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, e.SetStart(Coord{10, 0}))
	require.NoError(t, e.SetGoal(Coord{50, 50}))
	require.NoError(t, e.AddObstacle(Coord{20, 0}))
	require.NoError(t, e.AddObstacle(Coord{30, 30}))

	err = e.Rescale(100, 5)

	assert.ErrorIs(t, err, ErrRescaleInconsistency)
	start, _ := e.Start()
	assert.Equal(t, Coord{1, 0}, start)
	goal, _ := e.Goal()
	assert.Equal(t, Coord{3, 3}, goal)
	assert.Equal(t, []Coord{{2, 2}}, e.Obstacles())
}

// newCorridor returns an engine over a single row of ten 10px cells, stepped
// three times from (0,0) towards (80,0): explored 0, 10, 20 and frontier 30.
func newCorridor(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(WithCellSize(10), WithBounds(100, 10), WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, e.SetStart(Coord{0, 0}))
	require.NoError(t, e.SetGoal(Coord{80, 0}))
	require.NoError(t, e.Setup())
	for range 3 {
		require.Equal(t, Stepping, e.Step())
	}
	require.Equal(t, []Coord{{0, 0}, {10, 0}, {20, 0}}, coords(e.Explored()))
	require.Equal(t, []Coord{{30, 0}}, coords(e.Frontier()))
	return e
}

func coords(nodes []Node) []Coord {
	out := make([]Coord, len(nodes))
	for i, n := range nodes {
		out[i] = n.Coord
	}
	return out
}

func TestCollapsingRescaleBreaksPathMidSearch(t *testing.T) {
	e := newCorridor(t)

	// 10 and 20 both land on 1; 30 lands on 2 and the goal on 4.
	err := e.Rescale(40, 2)
	require.ErrorIs(t, err, ErrRescaleInconsistency)

	closed := e.Explored()
	require.Equal(t, []Coord{{0, 0}, {1, 0}}, coords(closed))
	assert.Equal(t, 2.0, closed[1].G, "later explored node survives")
	assert.Equal(t, Coord{1, 0}, closed[1].Parent)
	open := e.Frontier()
	require.Equal(t, []Coord{{2, 0}}, coords(open))
	assert.Equal(t, Coord{1, 0}, open[0].Parent)
	goal, _ := e.Goal()
	require.Equal(t, Coord{4, 0}, goal)

	for e.Step() == Stepping {
	}

	require.Equal(t, Completed, e.State())
	path := e.Path()
	assert.Equal(t, []Coord{{1, 0}, {2, 0}, {4, 0}}, path)
	start, _ := e.Start()
	assert.NotEqual(t, start, path[0], "path no longer reaches the start")
}

func TestCollapsingRescaleExploredBeatsFrontier(t *testing.T) {
	e := newCorridor(t)

	// 0 and 10 land on 0; 20 and 30 land on 1.
	err := e.Rescale(50, 2)
	require.ErrorIs(t, err, ErrRescaleInconsistency)

	closed := e.Explored()
	require.Equal(t, []Coord{{0, 0}, {1, 0}}, coords(closed))
	assert.Equal(t, 1.0, closed[0].G)
	assert.Equal(t, 2.0, closed[1].G)
	assert.Zero(t, e.FrontierSize(), "frontier node merged into an explored one")

	assert.Equal(t, NoPathFound, e.Step())
}

func TestRescaleMidSearch(t *testing.T) {
	e := newTestEngine(t, WithDiagonal(true))
	require.NoError(t, e.SetStart(at(0, 0)))
	require.NoError(t, e.SetGoal(at(3, 4)))
	require.NoError(t, e.Setup())
	for range 3 {
		require.Equal(t, Stepping, e.Step())
	}
	before := e.Explored()
	openBefore := e.FrontierSize()

	require.NoError(t, e.Rescale(cell, 2*cell))

	after := e.Explored()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, Coord{before[i].Coord.X * 2, before[i].Coord.Y * 2}, after[i].Coord)
		assert.Equal(t, before[i].G, after[i].G)
		if before[i].HasParent {
			assert.Equal(t, Coord{before[i].Parent.X * 2, before[i].Parent.Y * 2}, after[i].Parent)
		}
	}
	assert.Equal(t, openBefore, e.FrontierSize())
	for _, n := range e.Frontier() {
		assert.Zero(t, n.Coord.X%(2*cell))
		assert.Zero(t, n.Coord.Y%(2*cell))
	}

	for e.Step() == Stepping {
	}
	require.Equal(t, Completed, e.State())
	path := e.Path()
	requireLegalPath(t, e.Movement(), 2*cell, path, Coord{0, 0}, Coord{150, 200})
	assert.Len(t, path, 5)
}

func TestRescaleMapsFinishedPath(t *testing.T) {
	e := newTestEngine(t)
	result := runBetween(t, e, at(0, 0), at(2, 1))
	require.NoError(t, e.SetCellSize(2*cell))

	scaled := e.Path()
	require.Len(t, scaled, len(result.Path))
	for i := range scaled {
		assert.Equal(t, Coord{result.Path[i].X * 2, result.Path[i].Y * 2}, scaled[i])
	}
	goal, _ := e.Goal()
	assert.Equal(t, goal, scaled[len(scaled)-1])
}

func TestRescaleInvalidSize(t *testing.T) {
	e := newTestEngine(t)
	assert.ErrorIs(t, e.SetCellSize(0), ErrInvalidCellSize)
	assert.ErrorIs(t, e.Rescale(-1, 10), ErrInvalidCellSize)
	assert.Equal(t, cell, e.CellSize())
	assert.NoError(t, e.SetCellSize(cell))
}

func TestZoom(t *testing.T) {
	tests := []struct {
		name      string
		cellSize  int
		direction int
		want      int
	}{
		{"grow", 25, -1, 28},
		{"shrink", 25, 1, 22},
		{"no direction", 25, 0, 25},
		{"at max", 197, -1, 197},
		{"just under max", 196, -1, 199},
		{"at min", 5, 1, 5},
		{"just over min", 6, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(WithCellSize(tt.cellSize), WithLogger(quietLogger()))
			require.NoError(t, err)
			require.NoError(t, e.SetStart(Coord{tt.cellSize, tt.cellSize}))

			require.NoError(t, e.Zoom(tt.direction))

			assert.Equal(t, tt.want, e.CellSize())
			start, _ := e.Start()
			assert.Equal(t, Coord{tt.want, tt.want}, start)
		})
	}
}

func TestKeepLatest(t *testing.T) {
	keys := []Coord{{1, 1}, {2, 2}, {1, 1}, {3, 3}}
	blocked := mapset.New[Coord]()
	blocked.Put(Coord{3, 3})
	kept, merged := keepLatest(keys, blocked)
	assert.Equal(t, []int{1, 2}, kept)
	assert.Equal(t, 2, merged)

	kept, merged = keepLatest(nil, mapset.New[Coord]())
	assert.Empty(t, kept)
	assert.Zero(t, merged)
}
