// Package nodelink renders graphs as Graphviz node-link diagrams.
//
// It is the graphical counterpart of the text renderer in [ascii]: the same
// [dag.DAG] becomes DOT source, and optionally SVG.
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Ranked: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// With Ranked set, nodes are pinned to the levels and ordering computed by
// [layout.Compute], so the diagram matches the text output's structure.
// Placeholder nodes (edge endpoints that were never declared) are drawn
// dashed and labelled ⟨id⟩.
//
// SVG rendering runs Graphviz in-process through
// [github.com/goccy/go-graphviz]; no external binaries are needed.
//
// [ascii]: github.com/matzehuels/asciidag/pkg/render/ascii
package nodelink
