package astar

// Explored is the closed set. Entries are final: a coordinate is inserted
// once and never re-expanded, even if a cheaper route to it turns up later.
// Classical A* would reopen such nodes; this engine deliberately does not,
// and that choice is observable in the expansion order.
type Explored struct {
	index map[Coord]int
	order []Node
}

// NewExplored returns an empty closed set.
func NewExplored() *Explored {
	return &Explored{index: make(map[Coord]int)}
}

func (e *Explored) Contains(c Coord) bool {
	_, ok := e.index[c]
	return ok
}

func (e *Explored) Get(c Coord) (Node, bool) {
	i, ok := e.index[c]
	if !ok {
		return Node{}, false
	}
	return e.order[i], true
}

// Insert records n. A second insert of the same coordinate replaces the
// stored node in place.
func (e *Explored) Insert(n Node) {
	if i, ok := e.index[n.Coord]; ok {
		e.order[i] = n
		return
	}
	e.index[n.Coord] = len(e.order)
	e.order = append(e.order, n)
}

func (e *Explored) Size() int { return len(e.order) }

// Nodes returns a copy in insertion order.
func (e *Explored) Nodes() []Node {
	return append([]Node(nil), e.order...)
}

func (e *Explored) Clear() {
	e.index = make(map[Coord]int)
	e.order = nil
}
