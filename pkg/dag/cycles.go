package dag

// HasCycle reports whether the graph contains a directed cycle. A self-loop
// counts as a cycle.
//
// It runs a depth-first search from every unvisited node, tracking the nodes
// on the current recursion stack, and stops at the first back edge.
func (d *DAG) HasCycle() bool {
	n := len(d.nodes)
	visited := make([]bool, n)
	onStack := make([]bool, n)

	var visit func(idx int) bool
	visit = func(idx int) bool {
		if onStack[idx] {
			return true
		}
		if visited[idx] {
			return false
		}
		visited[idx] = true
		onStack[idx] = true
		for _, child := range d.children[idx] {
			if visit(child) {
				return true
			}
		}
		onStack[idx] = false
		return false
	}

	for idx := range n {
		if visit(idx) {
			return true
		}
	}
	return false
}

// FindCyclePath returns the IDs along one cycle in traversal order. The path
// is open: the last ID has an edge back to the first. For a self-loop the path
// has a single element.
//
// Start nodes are tried in index order and children in edge order, so the
// reported cycle is deterministic. The second result is false when the graph
// is acyclic.
func (d *DAG) FindCyclePath() ([]uint, bool) {
	for start := range d.nodes {
		if path, ok := d.cycleFrom(start); ok {
			return path, true
		}
	}
	return nil, false
}

func (d *DAG) cycleFrom(start int) ([]uint, bool) {
	visited := make([]bool, len(d.nodes))
	var path []int

	var walk func(idx int) ([]uint, bool)
	walk = func(idx int) ([]uint, bool) {
		if visited[idx] {
			for i, p := range path {
				if p == idx {
					return d.ids(path[i:]), true
				}
			}
			return nil, false
		}
		visited[idx] = true
		path = append(path, idx)
		for _, child := range d.children[idx] {
			if cycle, ok := walk(child); ok {
				return cycle, true
			}
		}
		path = path[:len(path)-1]
		return nil, false
	}
	return walk(start)
}
