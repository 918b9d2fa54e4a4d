package internal

import "slices"

// ReconstructPath walks parent links back from goal and returns the path in
// start-to-goal order. parent reports the predecessor of a node and false
// for nodes without one.
//
// The walk stops after limit hops so a corrupted chain cannot loop forever.
// The second result is false when the walk ended anywhere other than start;
// the partial path is still returned.
func ReconstructPath[NodeType comparable](
	parent func(NodeType) (NodeType, bool),
	goal NodeType,
	start NodeType,
	limit int,
) ([]NodeType, bool) {
	path := []NodeType{goal}
	current := goal
	for hops := 0; current != start; hops++ {
		if hops >= limit {
			slices.Reverse(path)
			return path, false
		}
		previousNode, exists := parent(current)
		if !exists {
			slices.Reverse(path)
			return path, false
		}
		path = append(path, previousNode)
		current = previousNode
	}
	slices.Reverse(path)
	return path, true
}
