package dag

// Subgraphs partitions the graph into weakly connected components.
//
// Components are listed in order of their lowest node index. Within a
// component, indices appear in depth-first discovery order, where the
// neighbours of a node are visited in edge order regardless of direction.
func (d *DAG) Subgraphs() [][]int {
	n := len(d.nodes)
	neighbours := make([][]int, n)
	for _, e := range d.edges {
		from, to := d.index[e.From], d.index[e.To]
		neighbours[from] = append(neighbours[from], to)
		neighbours[to] = append(neighbours[to], from)
	}

	visited := make([]bool, n)
	var collect func(idx int, into []int) []int
	collect = func(idx int, into []int) []int {
		if visited[idx] {
			return into
		}
		visited[idx] = true
		into = append(into, idx)
		for _, nb := range neighbours[idx] {
			into = collect(nb, into)
		}
		return into
	}

	var subgraphs [][]int
	for idx := range n {
		if !visited[idx] {
			subgraphs = append(subgraphs, collect(idx, nil))
		}
	}
	return subgraphs
}

// IsSimpleChain reports whether the whole graph is a single path: non-empty,
// connected, and every node has at most one parent and at most one child.
func (d *DAG) IsSimpleChain() bool {
	if len(d.nodes) == 0 {
		return false
	}
	if len(d.Subgraphs()) > 1 {
		return false
	}
	for idx := range d.nodes {
		if len(d.parents[idx]) > 1 || len(d.children[idx]) > 1 {
			return false
		}
	}
	return true
}

// IsChainComponent reports whether every node in indices has at most one
// parent and at most one child. Callers pass a single component, as
// returned by [DAG.Subgraphs].
func (d *DAG) IsChainComponent(indices []int) bool {
	for _, idx := range indices {
		if len(d.parents[idx]) > 1 || len(d.children[idx]) > 1 {
			return false
		}
	}
	return true
}
