package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/dag/layout"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the node ID to each label, the level when the graph is
	// acyclic, and marks placeholder nodes.
	Detailed bool
	// Ranked pins nodes to the levels and left-to-right order computed by
	// the text layout. Ignored for cyclic graphs.
	Ranked bool
}

// ToDOT converts a DAG to Graphviz DOT format. Nodes and edges are written
// in insertion order. Placeholder nodes are drawn dashed.
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"monospace\", margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	cyclic := g.HasCycle()
	var levels []int
	if opts.Detailed && !cyclic {
		levels = g.CalculateLevels(nil)
	}
	for i, n := range g.Nodes() {
		label := fmtLabel(g, i, opts.Detailed, levels)
		attrs := fmtAttrs(g, n, label)
		fmt.Fprintf(&buf, "  %s [%s];\n", nodeName(n.ID), strings.Join(attrs, ", "))
	}

	if opts.Ranked && !cyclic {
		writeRanks(&buf, g)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %s -> %s;\n", nodeName(e.From), nodeName(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeName(id uint) string {
	return "n" + strconv.FormatUint(uint64(id), 10)
}

// fmtLabel builds a node label. levels is nil for cyclic graphs.
func fmtLabel(g *dag.DAG, idx int, detailed bool, levels []int) string {
	n := g.Node(idx)
	text := n.Label
	if text == "" || g.IsAutoCreated(n.ID) {
		text = g.FormatNode(n.ID)
	}
	if !detailed {
		return text
	}
	parts := []string{text, fmt.Sprintf("id: %d", n.ID)}
	if levels != nil {
		parts = append(parts, fmt.Sprintf("level: %d", levels[idx]))
	}
	if g.IsAutoCreated(n.ID) {
		parts = append(parts, "placeholder")
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(g *dag.DAG, n dag.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Label == "" || g.IsAutoCreated(n.ID) {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// writeRanks emits one rank=same group per level with invisible edges
// holding the text layout's left-to-right order.
func writeRanks(buf *bytes.Buffer, g *dag.DAG) {
	l := layout.Compute(g)
	buf.WriteString("\n")
	for _, level := range l.Levels {
		names := make([]string, len(level))
		for i, idx := range level {
			names[i] = nodeName(g.Node(idx).ID)
		}
		fmt.Fprintf(buf, "  { rank=same; %s; }\n", strings.Join(names, "; "))
		if len(names) > 1 {
			fmt.Fprintf(buf, "  %s [style=invis];\n", strings.Join(names, " -> "))
		}
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the SVG scales from a
// zero-origin viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
