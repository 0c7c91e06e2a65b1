// Package render groups the output backends for graphs.
//
//   - [ascii]: Unicode text, the primary output. Chains on one line, other
//     graphs in levels with box-drawing connectors.
//   - [nodelink]: Graphviz DOT, and SVG through the embedded Graphviz
//     engine. Level ranks come from the same layout as the text renderer,
//     so both outputs agree on node order.
//
// Both backends are pure functions of the graph; caching and format
// selection live in the pipeline package.
//
// [ascii]: github.com/matzehuels/asciidag/pkg/render/ascii
// [nodelink]: github.com/matzehuels/asciidag/pkg/render/nodelink
package render
