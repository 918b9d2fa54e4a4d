package astar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pdrpinto/gridastar/internal"
)

// State is the engine's position in the search lifecycle.
type State int

const (
	Idle State = iota
	Stepping
	Completed
	NoPathFound
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Stepping:
		return "stepping"
	case Completed:
		return "completed"
	case NoPathFound:
		return "no path"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether s ends a session.
func (s State) Terminal() bool { return s == Completed || s == NoPathFound }

// Result contains the outcome of a run.
type Result struct {
	State    State
	Path     []Coord
	Duration time.Duration
	Expanded int
}

// Found reports whether the run reached the goal.
func (r Result) Found() bool { return r.State == Completed }

// Engine owns one search session over a pixel-space grid.
//
// Edits (start, goal, obstacles, movement flags, cell size) persist across
// sessions. A session starts with Setup or Run, advances with Step and is
// discarded by Reset. The engine is not safe for concurrent use.
type Engine struct {
	options  Options
	movement Movement
	cellSize int
	logger   *slog.Logger

	start, goal       Coord
	hasStart, hasGoal bool
	obstacles         *Obstacles

	frontier *Frontier
	explored *Explored
	path     []Coord
	state    State

	session    string
	steps      int
	current    Coord
	hasCurrent bool
	lastRun    time.Duration
}

// NewEngine creates an idle engine.
func NewEngine(options ...Option) (*Engine, error) {
	engineOptions := DefaultOptions()
	for _, option := range options {
		option(&engineOptions)
	}
	if err := engineOptions.validate(); err != nil {
		return nil, err
	}
	logger := engineOptions.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		options:   engineOptions,
		movement:  engineOptions.Movement,
		cellSize:  engineOptions.CellSize,
		logger:    logger,
		obstacles: NewObstacles(),
		frontier:  NewFrontier(),
		explored:  NewExplored(),
	}, nil
}

// Search runs a one-off search on a fresh engine.
func Search(
	contextObject context.Context,
	start Coord,
	goal Coord,
	obstacles []Coord,
	options ...Option,
) (Result, error) {
	engine, err := NewEngine(options...)
	if err != nil {
		return Result{}, err
	}
	for _, c := range obstacles {
		if err := engine.AddObstacle(c); err != nil {
			return Result{}, err
		}
	}
	if err := engine.SetStart(start); err != nil {
		return Result{}, err
	}
	if err := engine.SetGoal(goal); err != nil {
		return Result{}, err
	}
	return engine.Run(contextObject)
}

// --- Edits ---

func (e *Engine) editable(op string) error {
	if e.state == Stepping {
		return fmt.Errorf("%s while %s: %w", op, e.state, ErrInvalidState)
	}
	return nil
}

// onGrid snaps c to the top-left corner of the cell containing it.
func (e *Engine) onGrid(c Coord) Coord { return Quantize(c.X, c.Y, e.cellSize) }

// SetStart places the start on the cell containing c, removing any
// obstacle there.
func (e *Engine) SetStart(c Coord) error {
	if err := e.editable("set start"); err != nil {
		return err
	}
	c = e.onGrid(c)
	e.obstacles.Remove(c)
	e.start, e.hasStart = c, true
	return nil
}

// SetGoal places the goal on the cell containing c, removing any obstacle
// there.
func (e *Engine) SetGoal(c Coord) error {
	if err := e.editable("set goal"); err != nil {
		return err
	}
	c = e.onGrid(c)
	e.obstacles.Remove(c)
	e.goal, e.hasGoal = c, true
	return nil
}

// ClearStart removes the start.
func (e *Engine) ClearStart() error {
	if err := e.editable("clear start"); err != nil {
		return err
	}
	e.hasStart = false
	return nil
}

// ClearGoal removes the goal.
func (e *Engine) ClearGoal() error {
	if err := e.editable("clear goal"); err != nil {
		return err
	}
	e.hasGoal = false
	return nil
}

// Start returns the start cell, if placed.
func (e *Engine) Start() (Coord, bool) { return e.start, e.hasStart }

// Goal returns the goal cell, if placed.
func (e *Engine) Goal() (Coord, bool) { return e.goal, e.hasGoal }

// AddObstacle blocks the cell containing c. Placing an obstacle on the
// start or goal is silently ignored.
func (e *Engine) AddObstacle(c Coord) error {
	if err := e.editable("add obstacle"); err != nil {
		return err
	}
	c = e.onGrid(c)
	if (e.hasStart && c == e.start) || (e.hasGoal && c == e.goal) {
		return nil
	}
	e.obstacles.Add(c)
	return nil
}

// RemoveObstacle unblocks the cell containing c if it is blocked.
func (e *Engine) RemoveObstacle(c Coord) error {
	if err := e.editable("remove obstacle"); err != nil {
		return err
	}
	e.obstacles.Remove(e.onGrid(c))
	return nil
}

// RemoveObstacleAt unblocks the obstacle at position i of Obstacles().
func (e *Engine) RemoveObstacleAt(i int) error {
	if err := e.editable("remove obstacle"); err != nil {
		return err
	}
	e.obstacles.RemoveAt(i)
	return nil
}

// ObstacleIndex hit-tests a raw pixel position against the obstacles and
// returns the matching index, or -1.
func (e *Engine) ObstacleIndex(pixelX, pixelY int) int {
	c := Quantize(pixelX, pixelY, e.cellSize)
	return e.obstacles.IndexOf(c.X, c.Y)
}

// IsObstacle reports whether the cell containing c is blocked.
func (e *Engine) IsObstacle(c Coord) bool { return e.obstacles.Contains(e.onGrid(c)) }

// ClearObstacles removes every obstacle.
func (e *Engine) ClearObstacles() error {
	if err := e.editable("clear obstacles"); err != nil {
		return err
	}
	e.obstacles.Clear()
	return nil
}

// Obstacles returns the obstacles in insertion order.
func (e *Engine) Obstacles() []Coord { return e.obstacles.All() }

// SetMovement replaces the movement model. A change mid-session applies to
// expansions from the next step on; nodes already queued keep their costs.
func (e *Engine) SetMovement(m Movement) { e.movement = m }

// SetDiagonal toggles the four diagonal moves.
func (e *Engine) SetDiagonal(enabled bool) { e.movement.Diagonal = enabled }

// SetEuclidean toggles the straight-line heuristic.
func (e *Engine) SetEuclidean(enabled bool) { e.movement.Euclidean = enabled }

func (e *Engine) Movement() Movement { return e.movement }

// CellSize is the current cell edge in pixels.
func (e *Engine) CellSize() int { return e.cellSize }

// Bounds is the grid extent in pixels. It does not follow cell size changes.
func (e *Engine) Bounds() Bounds { return e.options.Bounds }

// --- Lifecycle ---

// Setup starts a stepwise session from the placed start to the placed goal.
func (e *Engine) Setup() error {
	if e.state != Idle {
		return fmt.Errorf("setup while %s: %w", e.state, ErrInvalidState)
	}
	switch {
	case !e.hasStart:
		return fmt.Errorf("start not placed: %w", ErrDegenerateQuery)
	case !e.hasGoal:
		return fmt.Errorf("goal not placed: %w", ErrDegenerateQuery)
	case e.start == e.goal:
		return fmt.Errorf("start equals goal %s: %w", e.start, ErrDegenerateQuery)
	}

	e.clearSession()
	e.lastRun = 0
	e.session = uuid.NewString()
	e.frontier.insertRoot(e.start, e.movement.Estimate(e.start, e.goal, e.cellSize))
	e.state = Stepping
	e.logger.Debug("search started",
		"session", e.session,
		"start", e.start.String(),
		"goal", e.goal.String(),
		"heuristic", e.movement.Heuristic().String(),
		"diagonal", e.movement.Diagonal,
	)
	return nil
}

// Step performs one expansion and returns the resulting state. Outside a
// stepping session it does nothing and returns the current state, so a
// timer may call it unconditionally.
func (e *Engine) Step() State {
	if e.state != Stepping {
		return e.state
	}

	current, ok := e.frontier.Pop()
	if !ok {
		e.state = NoPathFound
		e.logger.Debug("search exhausted", "session", e.session, "explored", e.explored.Size())
		return e.state
	}
	e.steps++
	e.explored.Insert(current)
	e.current, e.hasCurrent = current.Coord, true

	if current.Coord == e.goal {
		e.path = e.reconstructPath()
		e.state = Completed
		e.logger.Debug("search completed",
			"session", e.session,
			"cost", current.G,
			"path", len(e.path),
			"explored", e.explored.Size(),
		)
		return e.state
	}

	bounds := e.options.Bounds
	for _, move := range e.movement.Moves() {
		next := current.Coord.Add(move.DX*e.cellSize, move.DY*e.cellSize)
		if !bounds.Contains(next) || e.obstacles.Contains(next) || e.explored.Contains(next) {
			continue
		}
		e.frontier.InsertOrImprove(
			next,
			current.G+move.Cost,
			e.movement.Estimate(next, e.goal, e.cellSize),
			current.Coord,
		)
	}
	return e.state
}

// Run sets up a session and steps it to a terminal state. Not finding a
// path is a successful run with State NoPathFound.
//
// Cancelling ctx aborts the session back to Idle and returns ctx.Err().
func (e *Engine) Run(ctx context.Context) (Result, error) {
	began := time.Now()
	if err := e.Setup(); err != nil {
		return Result{State: e.state}, err
	}
	for e.state == Stepping {
		if err := ctx.Err(); err != nil {
			e.logger.Debug("search cancelled", "session", e.session, "explored", e.explored.Size())
			e.Reset()
			return Result{State: Idle}, err
		}
		e.Step()
	}
	e.lastRun = time.Since(began)
	return Result{
		State:    e.state,
		Path:     e.Path(),
		Duration: e.lastRun,
		Expanded: e.explored.Size(),
	}, nil
}

// Reset discards the session and returns to Idle. Start, goal, obstacles
// and flags are kept.
func (e *Engine) Reset() {
	e.clearSession()
	e.state = Idle
}

func (e *Engine) clearSession() {
	e.frontier.Clear()
	e.explored.Clear()
	e.path = nil
	e.steps = 0
	e.hasCurrent = false
	e.session = ""
}

func (e *Engine) reconstructPath() []Coord {
	parentOf := func(c Coord) (Coord, bool) {
		node, ok := e.explored.Get(c)
		if !ok || !node.HasParent || node.Parent == c {
			return Coord{}, false
		}
		return node.Parent, true
	}
	path, complete := internal.ReconstructPath(parentOf, e.goal, e.start, e.explored.Size())
	if !complete {
		e.logger.Warn("path does not reach start",
			"session", e.session,
			"from", path[0].String(),
			"length", len(path),
		)
	}
	return path
}

// --- Read access ---

func (e *Engine) State() State      { return e.state }
func (e *Engine) IsRunning() bool   { return e.state == Stepping }
func (e *Engine) IsComplete() bool  { return e.state == Completed }
func (e *Engine) IsNoPath() bool    { return e.state == NoPathFound }
func (e *Engine) Session() string   { return e.session }
func (e *Engine) Steps() int        { return e.steps }
func (e *Engine) ExploredSize() int { return e.explored.Size() }
func (e *Engine) FrontierSize() int { return e.frontier.Len() }

// Frontier returns the open nodes in selection order.
func (e *Engine) Frontier() []Node { return e.frontier.Nodes() }

// Explored returns the closed nodes in expansion order.
func (e *Engine) Explored() []Node { return e.explored.Nodes() }

// Path returns a copy of the found path, or nil.
func (e *Engine) Path() []Coord {
	if e.path == nil {
		return nil
	}
	return append([]Coord(nil), e.path...)
}

// LastRunDuration is the wall-clock time of the last completed Run. Setup
// clears it, so it is zero for stepwise sessions.
func (e *Engine) LastRunDuration() time.Duration { return e.lastRun }

// RunTimeMillis is LastRunDuration in whole milliseconds.
func (e *Engine) RunTimeMillis() int64 { return e.lastRun.Milliseconds() }
