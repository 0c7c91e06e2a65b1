// Package dag provides the graph store behind asciidag's text renderer.
//
// # Overview
//
// A [DAG] holds nodes identified by unsigned integer IDs and directed edges
// between them, in insertion order. It is append-only: nodes and edges are
// only ever added, and a node's label may be replaced. Everything the
// renderer derives from it (levels, orderings, coordinates) is recomputed per
// render call and never cached on the store.
//
// # Basic Usage
//
// Build a graph incrementally with [New], [DAG.AddNode] and [DAG.AddEdge], or
// in one call with [FromEdges]:
//
//	g := dag.New()
//	g.AddNode(1, "parse")
//	g.AddNode(2, "check")
//	g.AddEdge(1, 2)
//
// No construction call can fail.
//
// # Placeholder Nodes
//
// An edge that references an unknown ID creates a placeholder node with an
// empty label. Placeholders render as ⟨id⟩ instead of [label] so missing
// definitions stay visible. A later [DAG.AddNode] with the same ID promotes
// the placeholder in place: the index, and therefore the node's position in
// every ordering derived from insertion order, is kept.
//
// # Cycles
//
// Cyclic input is accepted. [DAG.HasCycle] and [DAG.FindCyclePath] detect and
// report a cycle; the renderer uses them to print the loop instead of a
// layout. [DAG.CalculateLevels] bounds its work so it terminates even if it is
// called on a cyclic graph.
//
// # Indices
//
// Most read accessors work on node indices rather than IDs: the index of a
// node is the order in which it was first seen. Indices are dense (0..n-1),
// which lets layout code use slices instead of maps. Use [DAG.Index] to map an
// ID to its index and [DAG.Node] for the reverse.
//
// # Concurrency
//
// A DAG must not be mutated concurrently. Once built, all read accessors are
// safe to call from several goroutines.
//
// # Related Packages
//
// The [layout] subpackage computes the layered coordinates used by vertical
// rendering, and [ascii] turns a DAG into text.
//
// [layout]: github.com/matzehuels/asciidag/pkg/dag/layout
// [ascii]: github.com/matzehuels/asciidag/pkg/render/ascii
package dag
