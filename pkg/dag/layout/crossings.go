package layout

import (
	"slices"
)

// CountCrossings returns the total number of edge crossings between each pair
// of consecutive levels. Edges that skip a level are not counted, matching
// what the renderer draws.
func CountCrossings(g Graph, levels [][]int) int {
	crossings := 0
	for l := 0; l+1 < len(levels); l++ {
		crossings += CountLayerCrossings(g, levels[l], levels[l+1])
	}
	return crossings
}

// CountLayerCrossings counts edge crossings between two adjacent levels using
// a Fenwick tree (binary indexed tree), in O(E log V) for E edges between the
// levels and V nodes in the lower level.
//
// Two edges (u1,v1) and (u2,v2) cross if and only if:
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// which makes the count the number of inversions in the sequence of target
// positions once edges are sorted by source position.
//
// Returns 0 if either level is empty.
func CountLayerCrossings(g Graph, upper, lower []int) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := PosMap(lower)

	type edge struct{ upper, lower int }
	edges := make([]edge, 0, len(upper)*2)
	for i, idx := range upper {
		for _, child := range g.Children(idx) {
			if pos, ok := lowerPos[child]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		// edges seen so far with target <= e.lower
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for i := e.lower + 1; i < len(fenwick); i += i & (-i) {
			fenwick[i]++
		}
	}
	return crossings
}
