package ascii

import (
	"unicode/utf8"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/dag/layout"
)

// Extent describes the vertical drawing of an acyclic graph as Render prints
// it in vertical mode.
type Extent struct {
	// Rows is the number of node rows, summed over components.
	Rows int
	// Width is the length in columns of the widest node row.
	Width int
	// Crossings counts edge crossings between consecutive node rows.
	Crossings int
}

// MeasureVertical returns the Extent of g's vertical drawing. A connected
// graph is measured on its full layout. A disconnected graph is measured
// component by component: chains on one row, other components packed in
// discovery order without crossing reduction. g must be acyclic.
func MeasureVertical(g *dag.DAG) Extent {
	if g.NodeCount() == 0 {
		return Extent{}
	}
	subgraphs := g.Subgraphs()
	if len(subgraphs) <= 1 {
		l := layout.Compute(g)
		return Extent{
			Rows:      len(l.Levels),
			Width:     l.Width,
			Crossings: layout.CountCrossings(g, l.Levels),
		}
	}

	var e Extent
	for _, sub := range subgraphs {
		if g.IsChainComponent(sub) {
			e.Rows++
			e.Width = max(e.Width, packedWidth(g, sub, utf8.RuneCountInString(chainSeparator)))
			continue
		}
		levels := layout.GroupByLevel(g.CalculateLevels(sub), sub)
		for _, nodes := range levels {
			if len(nodes) > 0 {
				e.Rows++
				e.Width = max(e.Width, packedWidth(g, nodes, len(componentGap)))
			}
		}
		e.Crossings += layout.CountCrossings(g, levels)
	}
	return e
}

// packedWidth is the length of nodes printed left to right with gap columns
// between them.
func packedWidth(g *dag.DAG, nodes []int, gap int) int {
	w := gap * (len(nodes) - 1)
	for _, idx := range nodes {
		w += g.Width(idx)
	}
	return w
}
