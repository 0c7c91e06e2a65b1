package layout

import (
	"cmp"
	"slices"
)

// ReduceCrossings reorders the nodes of each level in place to reduce edge
// crossings between adjacent levels, using the median heuristic.
//
// Each of the [CrossingPasses] passes sweeps top-down over levels 1..max,
// sorting every level by the median position of each node's parents in the
// level above, then bottom-up over levels max-1..0, sorting by the median
// position of children in the level below. A node without neighbours in the
// adjacent level keeps its current position as its sort key.
//
// Sorting is stable, so nodes with equal keys keep their relative order.
// There is no convergence test: the result is a heuristic and not guaranteed
// to be locally optimal.
func ReduceCrossings(g Graph, levels [][]int) {
	maxLevel := len(levels) - 1
	for range CrossingPasses {
		for l := 1; l <= maxLevel; l++ {
			orderByMedian(levels[l], levels[l-1], g.Parents)
		}
		for l := maxLevel - 1; l >= 0; l-- {
			orderByMedian(levels[l], levels[l+1], g.Children)
		}
	}
}

type keyed struct {
	idx int
	key float64
}

// orderByMedian sorts level by the median position of each node's
// neighbours within adjacent.
func orderByMedian(level, adjacent []int, neighbours func(int) []int) {
	if len(level) < 2 {
		return
	}
	pos := PosMap(adjacent)

	keys := make([]keyed, len(level))
	var positions []int
	for i, idx := range level {
		positions = positions[:0]
		for _, nb := range neighbours(idx) {
			if p, ok := pos[nb]; ok {
				positions = append(positions, p)
			}
		}
		key := float64(i)
		if len(positions) > 0 {
			key = Median(positions)
		}
		keys[i] = keyed{idx: idx, key: key}
	}

	slices.SortStableFunc(keys, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})
	for i, k := range keys {
		level[i] = k.idx
	}
}

// Median returns the median of positions: the middle element for odd counts
// and the mean of the two middle elements for even counts. positions is
// sorted in place and must not be empty.
func Median(positions []int) float64 {
	slices.Sort(positions)
	mid := len(positions) / 2
	if len(positions)%2 == 1 {
		return float64(positions[mid])
	}
	return float64(positions[mid-1]+positions[mid]) / 2
}

// PosMap maps each node index in order to its position.
func PosMap(order []int) map[int]int {
	pos := make(map[int]int, len(order))
	for i, idx := range order {
		if _, seen := pos[idx]; !seen {
			pos[idx] = i
		}
	}
	return pos
}
