// Package ascii renders a [dag.DAG] as Unicode box-drawing text.
//
// # Output
//
// Nodes print as [label], or as ⟨id⟩ for placeholders created by an edge to
// an unknown ID. Simple chains print on one line:
//
//	[A] → [B] → [C]
//
// Everything else prints top to bottom, one level per line, with connector
// lines between levels:
//
//	     [Root]
//	        │
//	   ┌────────┐
//	   ↓        ↓
//	[Left]   [Right]
//	   │        │
//	   └────────┘
//	       ↓
//	    [Merge]
//
// A graph that contains a cycle is never laid out. [Render] prints the
// offending loop instead, closing it with ⇄.
//
// # Stability
//
// The glyphs in glyphs.go and the fixed texts ([EmptyText], [CycleHeader],
// ...) are part of the output format and are relied on by snapshot tests.
// Layout is deterministic: the same sequence of builder calls always renders
// to the same bytes.
//
// [dag.DAG]: github.com/matzehuels/asciidag/pkg/dag.DAG
package ascii
