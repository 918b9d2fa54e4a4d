package astar

import (
	"container/heap"
	"slices"
)

// Node is a search node. Parent is the coordinate the node was reached
// from and is only meaningful when HasParent is set; it is a key into the
// explored set, not an owning reference.
type Node struct {
	Coord     Coord
	G         float64
	H         float64
	F         float64
	Parent    Coord
	HasParent bool
}

type frontierItem struct {
	node         Node
	seq          uint64
	indexInQueue int
}

// nodeQueue orders by lowest F, then lowest H, then earliest insertion.
type nodeQueue []*frontierItem

func (queue nodeQueue) Len() int { return len(queue) }
func (queue nodeQueue) Less(i, j int) bool {
	return selectsBefore(queue[i], queue[j])
}
func (queue nodeQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *nodeQueue) Push(x any) {
	item := x.(*frontierItem)
	item.indexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *nodeQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	item.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return item
}

func selectsBefore(a, b *frontierItem) bool {
	if a.node.F != b.node.F {
		return a.node.F < b.node.F
	}
	if a.node.H != b.node.H {
		return a.node.H < b.node.H
	}
	return a.seq < b.seq
}

// Frontier is the open set: an indexed min-heap with O(log n) insert,
// pop and decrease-key. Selection is lowest F first, ties broken by lowest
// H, then by insertion order. Improving a node keeps its original
// insertion position for tie-breaking.
type Frontier struct {
	queue   nodeQueue
	items   map[Coord]*frontierItem
	nextSeq uint64
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{items: make(map[Coord]*frontierItem)}
}

func (f *Frontier) Len() int      { return len(f.queue) }
func (f *Frontier) IsEmpty() bool { return len(f.queue) == 0 }

func (f *Frontier) Contains(c Coord) bool {
	_, ok := f.items[c]
	return ok
}

func (f *Frontier) Get(c Coord) (Node, bool) {
	item, ok := f.items[c]
	if !ok {
		return Node{}, false
	}
	return item.node, true
}

// Peek returns the node Pop would remove.
func (f *Frontier) Peek() (Node, bool) {
	if len(f.queue) == 0 {
		return Node{}, false
	}
	return f.queue[0].node, true
}

// Pop removes and returns the best node.
func (f *Frontier) Pop() (Node, bool) {
	if len(f.queue) == 0 {
		return Node{}, false
	}
	item := heap.Pop(&f.queue).(*frontierItem)
	delete(f.items, item.node.Coord)
	return item.node, true
}

// InsertOrImprove adds c reached from parent at cost g, or lowers the cost
// of an existing entry when g is strictly cheaper. It reports whether the
// frontier changed. The caller must not pass explored coordinates.
func (f *Frontier) InsertOrImprove(c Coord, g, h float64, parent Coord) bool {
	node := Node{Coord: c, G: g, H: h, F: g + h, Parent: parent, HasParent: true}
	if item, ok := f.items[c]; ok {
		if g >= item.node.G {
			return false
		}
		item.node = node
		heap.Fix(&f.queue, item.indexInQueue)
		return true
	}
	f.push(node, f.nextSeq)
	return true
}

// insertRoot adds a parentless node, used for the search origin.
func (f *Frontier) insertRoot(c Coord, h float64) {
	f.push(Node{Coord: c, H: h, F: h}, f.nextSeq)
}

func (f *Frontier) push(node Node, seq uint64) {
	item := &frontierItem{node: node, seq: seq}
	heap.Push(&f.queue, item)
	f.items[node.Coord] = item
	if seq >= f.nextSeq {
		f.nextSeq = seq + 1
	}
}

// Nodes returns a copy of the contents in selection order.
func (f *Frontier) Nodes() []Node {
	ordered := slices.Clone(f.queue)
	slices.SortFunc(ordered, func(a, b *frontierItem) int {
		if selectsBefore(a, b) {
			return -1
		}
		if selectsBefore(b, a) {
			return 1
		}
		return 0
	})
	nodes := make([]Node, len(ordered))
	for i, item := range ordered {
		nodes[i] = item.node
	}
	return nodes
}

// byInsertion returns the live items ordered by insertion sequence.
func (f *Frontier) byInsertion() []*frontierItem {
	ordered := slices.Clone(f.queue)
	slices.SortFunc(ordered, func(a, b *frontierItem) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return ordered
}

// Clear empties the frontier and restarts insertion numbering.
func (f *Frontier) Clear() {
	f.queue = nil
	f.items = make(map[Coord]*frontierItem)
	f.nextSeq = 0
}
