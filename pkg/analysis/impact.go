package analysis

// Descendants returns every ID that depends on start, directly or
// transitively, in breadth-first order. start itself is not included unless
// it lies on a cycle.
func Descendants[K comparable](ids []K, start K, deps DepsFunc[K]) []K {
	rev := dependents(ids, deps)
	return bfs(start, func(id K) []K { return rev[id] })
}

// Ancestors returns every ID start depends on, directly or transitively, in
// breadth-first order. Only deps is consulted, so ancestors outside any ID
// slice are included.
func Ancestors[K comparable](start K, deps DepsFunc[K]) []K {
	return bfs(start, deps)
}

// BlastRadius returns what start depends on and what depends on start: the
// set of IDs affected by a change to, or a failure of, start.
func BlastRadius[K comparable](ids []K, start K, deps DepsFunc[K]) (ancestors, descendants []K) {
	return Ancestors(start, deps), Descendants(ids, start, deps)
}

func bfs[K comparable](start K, next func(K) []K) []K {
	var out []K
	visited := make(map[K]bool)
	queue := []K{}
	for _, n := range next(start) {
		if !visited[n] {
			visited[n] = true
			queue = append(queue, n)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		for _, n := range next(cur) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return out
}
