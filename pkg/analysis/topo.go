package analysis

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

// TopologicalSort orders ids so that every ID comes after its dependencies.
// Among IDs that are ready at the same time, the one earlier in ids comes
// first, so the result is deterministic.
//
// If the dependencies contain a cycle the error is a *[CycleError] carrying
// the loop; errors.Is(err, [ErrCycle]) matches it.
func TopologicalSort[K comparable](ids []K, deps DepsFunc[K]) ([]K, error) {
	if cycle, ok := DetectCycle(ids, deps); ok {
		return nil, &CycleError[K]{Cycle: cycle}
	}

	pos := indexOf(ids)
	g := graph.New(func(id K) K { return id }, graph.Directed())
	for i, id := range ids {
		if pos[id] != i {
			continue
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("add vertex %v: %w", id, err)
		}
	}
	for _, id := range ids {
		for _, d := range deps(id) {
			if _, ok := pos[d]; !ok {
				continue
			}
			err := g.AddEdge(d, id)
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("add edge %v -> %v: %w", d, id, err)
			}
		}
	}

	order, err := graph.StableTopologicalSort(g, func(a, b K) bool {
		return pos[a] < pos[b]
	})
	if err != nil {
		return nil, fmt.Errorf("topological sort: %w", err)
	}
	return order, nil
}

// HasValidOrdering reports whether ids can be topologically sorted.
func HasValidOrdering[K comparable](ids []K, deps DepsFunc[K]) bool {
	return !HasCycle(ids, deps)
}
