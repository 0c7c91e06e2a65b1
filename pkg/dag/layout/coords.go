package layout

import (
	"cmp"
	"slices"
)

// AssignX assigns every node an x-coordinate, in columns from the left edge
// of its level. The result is indexed by node index and has g.NodeCount()
// entries.
//
// Each level is first packed left to right in its current order, with [Gap]
// blank columns between nodes. Then, for [RefinePasses] top-down sweeps over
// levels 1..max, every node with parents moves halfway toward the position
// that centers it under the median of its parents' centers, and the level is
// re-packed with [CompactLevel]. The halfway move damps oscillation between
// sweeps.
//
// Re-packing may reorder a level, so levels is updated in place: on return
// each level is sorted by ascending x.
func AssignX(g Graph, levels [][]int) []int {
	x := make([]int, g.NodeCount())
	for _, level := range levels {
		pack(g, x, level)
	}

	var centers []int
	for range RefinePasses {
		for l := 1; l < len(levels); l++ {
			for _, idx := range levels[l] {
				parents := g.Parents(idx)
				if len(parents) == 0 {
					continue
				}
				centers = centers[:0]
				for _, p := range parents {
					centers = append(centers, x[p]+g.Width(p)/2)
				}
				slices.Sort(centers)
				median := centers[len(centers)/2]
				target := max(0, median-g.Width(idx)/2)
				x[idx] = (x[idx] + target) / 2
			}
			CompactLevel(g, x, levels[l])
		}
	}
	return x
}

// CompactLevel sorts level by the current x-coordinates (stable for equal x)
// and re-packs it from column 0 so that no two nodes overlap. Both x and
// level are updated in place.
func CompactLevel(g Graph, x []int, level []int) {
	if len(level) == 0 {
		return
	}
	slices.SortStableFunc(level, func(a, b int) int {
		return cmp.Compare(x[a], x[b])
	})
	pack(g, x, level)
}

func pack(g Graph, x []int, level []int) {
	col := 0
	for _, idx := range level {
		x[idx] = col
		col += g.Width(idx) + Gap
	}
}
