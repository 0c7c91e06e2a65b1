package pipeline

import (
	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/render/ascii"
)

// =============================================================================
// Layout Diagnostics
// =============================================================================

// LayoutStats summarizes the vertical text drawing of a graph. It is reported
// by the stats command and /check, and logged at debug level on every render.
// Levels counts node rows over all components, so a disconnected graph
// reports the sum of its components' depths.
type LayoutStats struct {
	Components int  `json:"components"`
	Levels     int  `json:"levels"`
	Width      int  `json:"width"`
	Crossings  int  `json:"crossings"`
	Chain      bool `json:"chain"`
	Cyclic     bool `json:"cyclic"`
}

// DescribeLayout computes [LayoutStats] for g. Levels, width and crossings
// are left at zero for cyclic graphs, which have no layout.
func DescribeLayout(g *dag.DAG) LayoutStats {
	stats := LayoutStats{
		Components: len(g.Subgraphs()),
		Chain:      g.IsSimpleChain(),
		Cyclic:     g.HasCycle(),
	}
	if stats.Cyclic || g.NodeCount() == 0 {
		return stats
	}

	e := ascii.MeasureVertical(g)
	stats.Levels = e.Rows
	stats.Width = e.Width
	stats.Crossings = e.Crossings
	return stats
}
