package analysis

import (
	"errors"
	"fmt"
)

// ErrCycle is matched by every [CycleError] through errors.Is.
var ErrCycle = errors.New("dependency cycle")

// CycleError reports a cycle that prevents ordering. Cycle lists the IDs
// along the loop; the last one depends on the first.
type CycleError[K comparable] struct {
	Cycle []K
}

func (e *CycleError[K]) Error() string {
	return fmt.Sprintf("%v: %v", ErrCycle, e.Cycle)
}

func (e *CycleError[K]) Unwrap() error { return ErrCycle }

// DetectCycle returns the IDs along one dependency cycle, following
// dependencies from the first ID that reaches one. Each element depends on
// the next, and the last depends on the first. A self-dependency yields a
// single-element cycle.
func DetectCycle[K comparable](ids []K, deps DepsFunc[K]) ([]K, bool) {
	pos := indexOf(ids)
	visited := make([]bool, len(ids))
	onStack := make([]bool, len(ids))
	var path []int

	var visit func(i int) []K
	visit = func(i int) []K {
		if onStack[i] {
			for j, p := range path {
				if p == i {
					cycle := make([]K, 0, len(path)-j)
					for _, q := range path[j:] {
						cycle = append(cycle, ids[q])
					}
					return cycle
				}
			}
		}
		if visited[i] {
			return nil
		}
		visited[i] = true
		onStack[i] = true
		path = append(path, i)
		for _, d := range deps(ids[i]) {
			if j, ok := pos[d]; ok {
				if cycle := visit(j); cycle != nil {
					return cycle
				}
			}
		}
		path = path[:len(path)-1]
		onStack[i] = false
		return nil
	}

	for i := range ids {
		if cycle := visit(i); cycle != nil {
			return cycle, true
		}
	}
	return nil, false
}

// HasCycle reports whether the dependencies of ids contain a cycle.
func HasCycle[K comparable](ids []K, deps DepsFunc[K]) bool {
	_, ok := DetectCycle(ids, deps)
	return ok
}

// DetectCycleOf runs [DetectCycle] over items implementing [Dependable].
func DetectCycleOf[K comparable, T Dependable[K]](items []T) ([]K, bool) {
	ids, deps := FromItems[K](items)
	return DetectCycle(ids, deps)
}
