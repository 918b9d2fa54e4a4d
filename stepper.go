package astar

import "time"

// Snapshot is a detached copy of everything a renderer draws. It does not
// alias engine storage and stays valid after further steps.
type Snapshot struct {
	Session string
	State   State
	Step    int

	// Current is the most recently expanded cell.
	Current    Coord
	HasCurrent bool

	Start, Goal       Coord
	HasStart, HasGoal bool

	CellSize  int
	Bounds    Bounds
	Movement  Movement
	Obstacles []Coord
	Open      []Node
	Closed    []Node
	Path      []Coord

	// Duration is the last Run's wall-clock time; zero for stepwise sessions.
	Duration time.Duration
}

// Done reports whether the session has ended.
func (s Snapshot) Done() bool { return s.State.Terminal() }

// Found reports whether the session reached the goal.
func (s Snapshot) Found() bool { return s.State == Completed }

// Snapshot copies the engine's drawable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Session:    e.session,
		State:      e.state,
		Step:       e.steps,
		Current:    e.current,
		HasCurrent: e.hasCurrent,
		Start:      e.start,
		Goal:       e.goal,
		HasStart:   e.hasStart,
		HasGoal:    e.hasGoal,
		CellSize:   e.cellSize,
		Bounds:     e.options.Bounds,
		Movement:   e.movement,
		Obstacles:  e.obstacles.All(),
		Open:       e.frontier.Nodes(),
		Closed:     e.explored.Nodes(),
		Path:       e.Path(),
		Duration:   e.lastRun,
	}
}
