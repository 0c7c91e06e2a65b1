// Package layout computes the layered, character-level layout used by
// vertical rendering.
//
// The pipeline is a compact Sugiyama-style heuristic over the node indices of
// a [dag.DAG]:
//
//  1. Level assignment: [dag.DAG.CalculateLevels], then [GroupByLevel].
//  2. Crossing reduction: [ReduceCrossings] reorders each level by the median
//     position of its neighbours in the adjacent level.
//  3. Coordinate assignment: [AssignX] packs each level left to right and pulls
//     nodes toward the centers of their parents.
//  4. Canvas sizing: [CanvasDimensions] measures each level so the renderer can
//     center narrow levels.
//
// [Compute] runs all four steps and returns a [Layout].
//
// Every step runs a fixed number of passes instead of iterating to
// convergence, so the work is bounded by the input size alone and the output
// is stable across runs. Changing [CrossingPasses] or [RefinePasses] changes
// rendered output.
//
// [CountCrossings] is not part of the pipeline. It reports how many edge
// crossings a layout has, for diagnostics and tests.
package layout
