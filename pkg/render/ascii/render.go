package ascii

import (
	"strings"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/dag/layout"
)

// Render draws g as text. It never fails: empty graphs, cyclic graphs and
// graphs with placeholder nodes all have a defined rendering.
func Render(g *dag.DAG) string {
	var sb strings.Builder
	sb.Grow(g.EstimateSize())
	RenderTo(g, &sb)
	return sb.String()
}

// RenderTo appends the rendering of g to sb. Reusing one builder across calls
// avoids reallocating the output buffer.
//
// The checks run in a fixed order: an empty graph prints [EmptyText]; a graph
// with any cycle prints the cycle report, even if other components are
// acyclic; otherwise the resolved render mode picks horizontal or vertical
// output.
func RenderTo(g *dag.DAG, sb *strings.Builder) {
	if g.NodeCount() == 0 {
		sb.WriteString(EmptyText)
		return
	}
	if g.HasCycle() {
		writeCycle(sb, g)
		return
	}
	if g.ResolveMode() == dag.ModeHorizontal {
		writeHorizontal(sb, g)
		return
	}
	writeVertical(sb, g)
}

// writeCycle prints the cycle report:
//
//	⚠️  CYCLE DETECTED - Not a valid DAG
//
//	Cyclic dependency chain:
//	[A] → [B] ⇄ [A]
//
//	This creates a circular dependency that cannot be laid out.
func writeCycle(sb *strings.Builder, g *dag.DAG) {
	sb.WriteString(CycleHeader)
	sb.WriteString("\n\n")

	path, ok := g.FindCyclePath()
	if !ok {
		sb.WriteString(ComplexCycleText)
		sb.WriteByte('\n')
		return
	}

	sb.WriteString(CycleChainHeader)
	sb.WriteByte('\n')
	for i, id := range path {
		idx, _ := g.Index(id)
		g.WriteNode(sb, idx)
		if i < len(path)-1 {
			sb.WriteString(chainSeparator)
			continue
		}
		first, _ := g.Index(path[0])
		sb.WriteByte(' ')
		sb.WriteRune(CycleArrow)
		sb.WriteByte(' ')
		g.WriteNode(sb, first)
	}
	sb.WriteString("\n\n")
	sb.WriteString(CycleFooter)
	sb.WriteByte('\n')
}

// writeHorizontal prints the whole graph as one chain starting at the first
// root.
func writeHorizontal(sb *strings.Builder, g *dag.DAG) {
	roots := g.Roots()
	if len(roots) == 0 {
		sb.WriteString(NoRootText)
		return
	}
	writeChain(sb, g, roots[0])
}

// writeChain prints start and its first-child descendants joined by arrows,
// followed by a newline. The walk stops at a node without children or when
// it would revisit a node.
func writeChain(sb *strings.Builder, g *dag.DAG, start int) {
	visited := make(map[int]bool)
	cur := start
	for {
		visited[cur] = true
		g.WriteNode(sb, cur)

		children := g.Children(cur)
		if len(children) == 0 {
			break
		}
		sb.WriteString(chainSeparator)
		cur = children[0]
		if visited[cur] {
			break
		}
	}
	sb.WriteByte('\n')
}

// writeVertical prints the layered layout. A disconnected graph is printed
// one component at a time, separated by blank lines.
func writeVertical(sb *strings.Builder, g *dag.DAG) {
	subgraphs := g.Subgraphs()
	if len(subgraphs) > 1 {
		for i, sub := range subgraphs {
			if i > 0 {
				sb.WriteByte('\n')
			}
			writeComponent(sb, g, sub)
		}
		return
	}

	l := layout.Compute(g)
	for level, nodes := range l.Levels {
		if len(nodes) == 0 {
			continue
		}
		shift := l.Offset(level) - l.MinX(level)
		col := 0
		for _, idx := range nodes {
			start := l.X[idx] + shift
			for ; col < start; col++ {
				sb.WriteByte(' ')
			}
			g.WriteNode(sb, idx)
			col += g.Width(idx)
		}
		sb.WriteByte('\n')

		if level < l.MaxLevel() {
			writeConnectors(sb, layoutConnections(g, l, level))
		}
	}
}

// layoutConnections lists the edges from level to level+1 as center columns
// on the canvas.
func layoutConnections(g *dag.DAG, l *layout.Layout, level int) []connection {
	shift := l.Offset(level) - l.MinX(level)
	nextShift := l.Offset(level+1) - l.MinX(level+1)

	next := make(map[int]int, len(l.Levels[level+1]))
	for _, idx := range l.Levels[level+1] {
		next[idx] = l.X[idx] + nextShift + g.Width(idx)/2
	}

	var conns []connection
	for _, idx := range l.Levels[level] {
		from := l.X[idx] + shift + g.Width(idx)/2
		for _, child := range g.Children(idx) {
			if to, ok := next[child]; ok {
				conns = append(conns, connection{from: from, to: to})
			}
		}
	}
	return conns
}

// writeComponent prints one connected component of a disconnected graph.
// Chains are printed horizontally. Other components skip crossing reduction
// and centering: each level is printed left to right in discovery order with
// a fixed gap, and edges use the two-line connector.
func writeComponent(sb *strings.Builder, g *dag.DAG, sub []int) {
	if g.IsChainComponent(sub) {
		for _, idx := range sub {
			if len(g.Parents(idx)) == 0 {
				writeChain(sb, g, idx)
				return
			}
		}
		return
	}

	levels := layout.GroupByLevel(g.CalculateLevels(sub), sub)
	for level, nodes := range levels {
		if len(nodes) == 0 {
			continue
		}
		for i, idx := range nodes {
			if i > 0 {
				sb.WriteString(componentGap)
			}
			g.WriteNode(sb, idx)
		}
		sb.WriteByte('\n')

		if level < len(levels)-1 {
			writeStraightOnly(sb, packedConnections(g, nodes, levels[level+1]))
		}
	}
}

// packedConnections lists the edges between two levels laid out with a
// fixed gap from column 0.
func packedConnections(g *dag.DAG, upper, lower []int) []connection {
	next := make(map[int]int, len(lower))
	col := 0
	for _, idx := range lower {
		next[idx] = col + g.Width(idx)/2
		col += g.Width(idx) + len(componentGap)
	}

	var conns []connection
	col = 0
	for _, idx := range upper {
		from := col + g.Width(idx)/2
		for _, child := range g.Children(idx) {
			if to, ok := next[child]; ok {
				conns = append(conns, connection{from: from, to: to})
			}
		}
		col += g.Width(idx) + len(componentGap)
	}
	return conns
}

func writeStraightOnly(sb *strings.Builder, conns []connection) {
	if len(conns) == 0 {
		return
	}
	writeStraight(sb, conns)
}
