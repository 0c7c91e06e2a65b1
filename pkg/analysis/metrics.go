package analysis

// Metrics summarizes the shape of a dependency graph.
type Metrics struct {
	NodeCount      int `json:"node_count"`
	EdgeCount      int `json:"edge_count"`
	RootCount      int `json:"root_count"`
	LeafCount      int `json:"leaf_count"`
	MaxDepth       int `json:"max_depth"`       // most ancestors of any node
	MaxDescendants int `json:"max_descendants"` // most descendants of any node
}

// ComputeMetrics measures the graph described by ids and deps. EdgeCount is
// the total length of all dependency lists.
//
// MaxDepth and MaxDescendants run one traversal per node, so the cost is
// quadratic in the worst case.
func ComputeMetrics[K comparable](ids []K, deps DepsFunc[K]) Metrics {
	m := Metrics{NodeCount: len(ids)}
	for _, id := range ids {
		m.EdgeCount += len(deps(id))
	}
	m.RootCount = len(FindRoots(ids, deps))
	m.LeafCount = len(FindLeaves(ids, deps))

	rev := dependents(ids, deps)
	for _, id := range ids {
		m.MaxDepth = max(m.MaxDepth, len(bfs(id, deps)))
		m.MaxDescendants = max(m.MaxDescendants, len(bfs(id, func(k K) []K { return rev[k] })))
	}
	return m
}

// AvgDependencies returns the mean number of dependencies per node.
func (m Metrics) AvgDependencies() float64 {
	if m.NodeCount == 0 {
		return 0
	}
	return float64(m.EdgeCount) / float64(m.NodeCount)
}

// Density returns edges divided by the n(n-1) possible directed edges.
func (m Metrics) Density() float64 {
	if m.NodeCount <= 1 {
		return 0
	}
	return float64(m.EdgeCount) / float64(m.NodeCount*(m.NodeCount-1))
}

// IsTree reports whether the graph has one root and exactly n-1 edges.
func (m Metrics) IsTree() bool {
	return m.RootCount == 1 && m.EdgeCount == max(m.NodeCount-1, 0)
}

// IsForest reports whether the edge count equals nodes minus roots, as in a
// collection of disjoint trees.
func (m Metrics) IsForest() bool {
	return m.EdgeCount == max(m.NodeCount-m.RootCount, 0)
}

// IsSparse reports density below 0.1.
func (m Metrics) IsSparse() bool { return m.Density() < 0.1 }

// IsDense reports density above 0.5.
func (m Metrics) IsDense() bool { return m.Density() > 0.5 }
