// Package analysis provides dependency-graph algorithms that work on any
// comparable ID type.
//
// Callers describe their graph with a slice of IDs and a [DepsFunc] that
// lists the dependencies of an ID. Nothing has to be converted into a
// [dag.DAG] first, which makes these helpers usable directly on domain
// structures such as error chains or build targets:
//
//	deps := func(id string) []string { return targets[id].Needs }
//	order, err := analysis.TopologicalSort(ids, deps)
//
// Types that know their own dependencies can implement [Dependable] and use
// [FromItems]. [FromDAG] adapts a [dag.DAG], treating a node's parents as its
// dependencies.
//
// Dependencies that are not in the ID slice are ignored by the traversal
// functions. All functions are deterministic: ties are broken by the order of
// the ID slice and dependency lists.
//
// [dag.DAG]: github.com/matzehuels/asciidag/pkg/dag.DAG
package analysis
