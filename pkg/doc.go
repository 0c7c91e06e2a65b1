// Package pkg holds the libraries behind asciidag, a renderer that draws
// directed acyclic graphs as Unicode text.
//
// # Overview
//
// The packages are layered; each one only imports those above it:
//
//  1. [errors] - coded errors and input limits shared by everything
//  2. [dag] - the graph store, levels, components and cycle checks
//  3. [dag/layout] - crossing reduction and horizontal placement
//  4. [render/ascii] and [render/nodelink] - text and Graphviz output
//  5. [analysis] - orderings, metrics and impact queries
//  6. [io] - JSON and TOML graph documents
//  7. [cache], [httputil], [observability] - infrastructure
//  8. [pipeline] - load → render orchestration with caching
//
// # Data Flow
//
//	graph file / URL / HTTP body
//	         ↓
//	    [io] (decode, validate)
//	         ↓
//	    [dag] (store, levels, components)
//	         ↓
//	    [dag/layout] (order, coordinates)
//	         ↓
//	    [render/ascii] or [render/nodelink]
//	         ↓
//	    text / DOT / SVG / JSON
//
// # Quick Start
//
//	g := dag.New()
//	g.AddNode(1, "A")
//	g.AddNode(2, "B")
//	g.AddEdge(1, 2)
//	fmt.Print(ascii.Render(g)) // [A] → [B]
//
// [errors]: github.com/matzehuels/asciidag/pkg/errors
// [dag]: github.com/matzehuels/asciidag/pkg/dag
// [dag/layout]: github.com/matzehuels/asciidag/pkg/dag/layout
// [render/ascii]: github.com/matzehuels/asciidag/pkg/render/ascii
// [render/nodelink]: github.com/matzehuels/asciidag/pkg/render/nodelink
// [analysis]: github.com/matzehuels/asciidag/pkg/analysis
// [io]: github.com/matzehuels/asciidag/pkg/io
// [cache]: github.com/matzehuels/asciidag/pkg/cache
// [httputil]: github.com/matzehuels/asciidag/pkg/httputil
// [observability]: github.com/matzehuels/asciidag/pkg/observability
// [pipeline]: github.com/matzehuels/asciidag/pkg/pipeline
package pkg
