package astar

// Obstacles is the ordered set of blocked cells. It is map data: search
// resets leave it alone.
type Obstacles struct {
	cells []Coord
	index map[Coord]int
}

// NewObstacles returns an empty registry.
func NewObstacles() *Obstacles {
	return &Obstacles{index: make(map[Coord]int)}
}

// Add inserts c and reports whether it was new.
func (o *Obstacles) Add(c Coord) bool {
	if _, ok := o.index[c]; ok {
		return false
	}
	o.index[c] = len(o.cells)
	o.cells = append(o.cells, c)
	return true
}

// Remove deletes c if present.
func (o *Obstacles) Remove(c Coord) bool {
	i, ok := o.index[c]
	if !ok {
		return false
	}
	o.RemoveAt(i)
	return true
}

// RemoveAt deletes the entry at position i. Out of range is a no-op.
func (o *Obstacles) RemoveAt(i int) {
	if i < 0 || i >= len(o.cells) {
		return
	}
	delete(o.index, o.cells[i])
	o.cells = append(o.cells[:i], o.cells[i+1:]...)
	for j := i; j < len(o.cells); j++ {
		o.index[o.cells[j]] = j
	}
}

func (o *Obstacles) Contains(c Coord) bool {
	_, ok := o.index[c]
	return ok
}

// IndexOf returns the position of the obstacle at (x, y), or -1.
func (o *Obstacles) IndexOf(x, y int) int {
	if i, ok := o.index[Coord{X: x, Y: y}]; ok {
		return i
	}
	return -1
}

func (o *Obstacles) Len() int { return len(o.cells) }

// All returns a copy in insertion order.
func (o *Obstacles) All() []Coord {
	return append([]Coord(nil), o.cells...)
}

func (o *Obstacles) Clear() {
	o.cells = nil
	o.index = make(map[Coord]int)
}

func (o *Obstacles) replace(cells []Coord) {
	o.Clear()
	for _, c := range cells {
		o.Add(c)
	}
}
