package dag

// CalculateLevels assigns every node its longest-path depth: roots get level
// 0 and every edge (u, v) ends with level(v) >= level(u)+1.
//
// The returned slice is indexed by node index and always has NodeCount
// entries. When scope is non-nil only edges with both endpoints in scope are
// relaxed, and only the entries for indices in scope are meaningful.
//
// Levels are computed by repeated relaxation over the edge list until a pass
// changes nothing. A longest path has at most n-1 edges, so acyclic input
// settles within n passes for n nodes in scope. Cyclic input has no fixed
// point; passes are capped at n+1 and the result is then arbitrary.
func (d *DAG) CalculateLevels(scope []int) []int {
	levels := make([]int, len(d.nodes))

	var member []bool
	size := len(d.nodes)
	if scope != nil {
		member = make([]bool, len(d.nodes))
		for _, idx := range scope {
			member[idx] = true
		}
		size = len(scope)
	}

	maxPasses := size + 1
	for pass := 0; pass < maxPasses; pass++ {
		changed := false
		for _, e := range d.edges {
			from, to := d.index[e.From], d.index[e.To]
			if member != nil && (!member[from] || !member[to]) {
				continue
			}
			if l := levels[from] + 1; l > levels[to] {
				levels[to] = l
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return levels
}
