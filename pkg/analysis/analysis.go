package analysis

import (
	"github.com/matzehuels/asciidag/pkg/dag"
)

// DepsFunc returns the dependencies of id.
type DepsFunc[K comparable] func(id K) []K

// Dependable is implemented by items that know their own identity and
// dependencies.
type Dependable[K comparable] interface {
	ID() K
	Dependencies() []K
}

// FromItems returns the IDs of items, in order, and a [DepsFunc] backed by
// their Dependencies methods. Unknown IDs have no dependencies.
func FromItems[K comparable, T Dependable[K]](items []T) ([]K, DepsFunc[K]) {
	ids := make([]K, len(items))
	byID := make(map[K]T, len(items))
	for i, item := range items {
		ids[i] = item.ID()
		byID[ids[i]] = item
	}
	return ids, func(id K) []K {
		if item, ok := byID[id]; ok {
			return item.Dependencies()
		}
		return nil
	}
}

// FromDAG returns the node IDs of g in index order and a [DepsFunc] that
// lists each node's parents. Under this reading an edge A → B means "B
// depends on A", so roots are the nodes without dependencies.
func FromDAG(g *dag.DAG) ([]uint, DepsFunc[uint]) {
	nodes := g.Nodes()
	ids := make([]uint, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids, g.ParentIDs
}

// FindRoots returns the IDs with no dependencies, in input order.
func FindRoots[K comparable](ids []K, deps DepsFunc[K]) []K {
	var roots []K
	for _, id := range ids {
		if len(deps(id)) == 0 {
			roots = append(roots, id)
		}
	}
	return roots
}

// FindLeaves returns the IDs nothing else depends on, in input order.
func FindLeaves[K comparable](ids []K, deps DepsFunc[K]) []K {
	depended := make(map[K]bool, len(ids))
	for _, id := range ids {
		for _, d := range deps(id) {
			depended[d] = true
		}
	}
	var leaves []K
	for _, id := range ids {
		if !depended[id] {
			leaves = append(leaves, id)
		}
	}
	return leaves
}

// dependents inverts deps over ids: for every ID, the IDs that depend on it,
// in input order.
func dependents[K comparable](ids []K, deps DepsFunc[K]) map[K][]K {
	out := make(map[K][]K, len(ids))
	for _, id := range ids {
		for _, d := range deps(id) {
			out[d] = append(out[d], id)
		}
	}
	return out
}

func indexOf[K comparable](ids []K) map[K]int {
	pos := make(map[K]int, len(ids))
	for i, id := range ids {
		if _, ok := pos[id]; !ok {
			pos[id] = i
		}
	}
	return pos
}
