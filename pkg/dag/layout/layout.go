package layout

import (
	"github.com/matzehuels/asciidag/pkg/dag"
)

const (
	// CrossingPasses is the number of top-down plus bottom-up sweeps run by
	// [ReduceCrossings].
	CrossingPasses = 4
	// RefinePasses is the number of centering sweeps run by [AssignX].
	RefinePasses = 2
	// Gap is the number of blank columns between adjacent nodes on a level.
	Gap = 3
)

// Graph is the read-only view of a graph the layout steps need. It is
// satisfied by *dag.DAG.
type Graph interface {
	NodeCount() int
	Width(idx int) int
	Children(idx int) []int
	Parents(idx int) []int
}

var _ Graph = (*dag.DAG)(nil)

// Layout is the result of the full pipeline for one connected graph.
type Layout struct {
	// Levels holds node indices per level in final left-to-right order.
	Levels [][]int
	// X holds the x-coordinate of every node, indexed by node index.
	X []int
	// LevelWidths holds the rendered width of each level.
	LevelWidths []int
	// Width is the canvas width: the widest level.
	Width int
}

// Compute runs level assignment, crossing reduction, coordinate assignment
// and canvas sizing over the whole graph.
func Compute(g *dag.DAG) *Layout {
	all := make([]int, g.NodeCount())
	for i := range all {
		all[i] = i
	}
	levels := GroupByLevel(g.CalculateLevels(nil), all)

	ReduceCrossings(g, levels)
	x := AssignX(g, levels)
	widths, canvas := CanvasDimensions(g, levels, x)

	return &Layout{
		Levels:      levels,
		X:           x,
		LevelWidths: widths,
		Width:       canvas,
	}
}

// MaxLevel returns the index of the deepest level, or -1 for an empty layout.
func (l *Layout) MaxLevel() int { return len(l.Levels) - 1 }

// Offset returns how far level is shifted right to center it on the canvas.
func (l *Layout) Offset(level int) int {
	return CenterOffset(l.Width, l.LevelWidths[level])
}

// MinX returns the smallest x-coordinate on level, or 0 if it is empty.
func (l *Layout) MinX(level int) int {
	nodes := l.Levels[level]
	if len(nodes) == 0 {
		return 0
	}
	minX := l.X[nodes[0]]
	for _, idx := range nodes[1:] {
		minX = min(minX, l.X[idx])
	}
	return minX
}

// Column returns the canvas column where the node at idx on level starts.
func (l *Layout) Column(level, idx int) int {
	return l.X[idx] - l.MinX(level) + l.Offset(level)
}

// GroupByLevel buckets indices by their level, keeping the order of indices
// within each bucket. levels is indexed by node index, as returned by
// [dag.DAG.CalculateLevels]. The result has one entry per level from 0 to
// the deepest level present in indices.
func GroupByLevel(levels []int, indices []int) [][]int {
	if len(indices) == 0 {
		return nil
	}
	maxLevel := 0
	for _, idx := range indices {
		maxLevel = max(maxLevel, levels[idx])
	}
	grouped := make([][]int, maxLevel+1)
	for _, idx := range indices {
		l := levels[idx]
		grouped[l] = append(grouped[l], idx)
	}
	return grouped
}
