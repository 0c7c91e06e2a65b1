package dag

import (
	"slices"
)

// Node is a vertex in the graph: a caller-chosen numeric ID and a display label.
// An empty label renders the node in placeholder form, the same as a node that
// was auto-created by [DAG.AddEdge].
type Node struct {
	ID    uint
	Label string
}

// Edge is a directed connection From → To. Edges are kept in insertion order
// and duplicates are allowed.
type Edge struct {
	From uint
	To   uint
}

// DAG is an append-only graph store optimized for text rendering. Nodes are
// addressed either by their caller-supplied ID or by their index, which is the
// position at which the node was first seen (explicitly or through an edge).
//
// The zero value is not usable - use [New], [WithMode] or [FromEdges].
// DAG is not safe for concurrent mutation. Rendering only reads the store,
// so a fully built DAG can be rendered from several goroutines at once.
type DAG struct {
	nodes       []Node
	edges       []Edge
	mode        RenderMode
	autoCreated map[uint]struct{}
	index       map[uint]int // ID -> index
	widths      []int        // cached display width per index
	children    [][]int      // index -> child indices, edge order
	parents     [][]int      // index -> parent indices, edge order
}

// New creates an empty DAG that renders in [ModeAuto].
func New() *DAG {
	return WithMode(ModeAuto)
}

// WithMode creates an empty DAG with the given render mode.
func WithMode(mode RenderMode) *DAG {
	return &DAG{
		mode:        mode,
		autoCreated: make(map[uint]struct{}),
		index:       make(map[uint]int),
	}
}

// FromEdges builds a DAG in one call. The result is identical to calling
// [DAG.AddNode] for each node in order, then [DAG.AddEdge] for each edge.
func FromEdges(nodes []Node, edges []Edge) *DAG {
	d := New()
	d.nodes = slices.Grow(d.nodes, len(nodes))
	d.widths = slices.Grow(d.widths, len(nodes))
	for _, n := range nodes {
		d.AddNode(n.ID, n.Label)
	}
	d.edges = slices.Grow(d.edges, len(edges))
	for _, e := range edges {
		d.AddEdge(e.From, e.To)
	}
	return d
}

// AddNode adds a node or updates an existing one.
//
// If id is already known, its label is replaced and, if it was auto-created by
// an edge, it is promoted to a regular node. The node keeps its index, so its
// position among the other nodes does not change. AddNode never fails.
func (d *DAG) AddNode(id uint, label string) {
	if idx, ok := d.index[id]; ok {
		d.nodes[idx].Label = label
		delete(d.autoCreated, id)
		d.widths[idx] = nodeWidth(id, label, false)
		return
	}
	d.appendNode(id, label, false)
}

// AddEdge adds a directed edge from → to. Missing endpoints are created as
// placeholder nodes (see [DAG.IsAutoCreated]), from first. Self-loops and
// duplicate edges are accepted as-is; a self-loop makes the graph cyclic.
func (d *DAG) AddEdge(from, to uint) {
	d.ensureNode(from)
	d.ensureNode(to)
	d.edges = append(d.edges, Edge{From: from, To: to})

	fi, ti := d.index[from], d.index[to]
	d.children[fi] = append(d.children[fi], ti)
	d.parents[ti] = append(d.parents[ti], fi)
}

func (d *DAG) ensureNode(id uint) {
	if _, ok := d.index[id]; !ok {
		d.appendNode(id, "", true)
	}
}

func (d *DAG) appendNode(id uint, label string, auto bool) {
	d.index[id] = len(d.nodes)
	d.nodes = append(d.nodes, Node{ID: id, Label: label})
	if auto {
		d.autoCreated[id] = struct{}{}
	}
	d.widths = append(d.widths, nodeWidth(id, label, auto))
	d.children = append(d.children, nil)
	d.parents = append(d.parents, nil)
}

// SetRenderMode changes how the graph will be rendered.
func (d *DAG) SetRenderMode(mode RenderMode) { d.mode = mode }

// Mode returns the configured render mode, which may be [ModeAuto].
// Use [DAG.ResolveMode] for the mode a render call would actually use.
func (d *DAG) Mode() RenderMode { return d.mode }

// IsAutoCreated reports whether id was created implicitly by an edge and has
// not been given a label with [DAG.AddNode] since.
func (d *DAG) IsAutoCreated(id uint) bool {
	_, ok := d.autoCreated[id]
	return ok
}

// NodeCount returns the number of nodes, including placeholders.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges, including duplicates.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Nodes returns a copy of all nodes in index order.
func (d *DAG) Nodes() []Node { return slices.Clone(d.nodes) }

// Edges returns a copy of all edges in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// Node returns the node stored at idx. It panics if idx is out of range.
func (d *DAG) Node(idx int) Node { return d.nodes[idx] }

// Index returns the index of the node with the given ID.
func (d *DAG) Index(id uint) (int, bool) {
	idx, ok := d.index[id]
	return idx, ok
}

// Width returns the number of terminal columns the node at idx occupies when
// rendered, brackets included.
func (d *DAG) Width(idx int) int { return d.widths[idx] }

// Children returns the child indices of the node at idx in edge order.
// The returned slice must not be modified.
func (d *DAG) Children(idx int) []int { return d.children[idx] }

// Parents returns the parent indices of the node at idx in edge order.
// The returned slice must not be modified.
func (d *DAG) Parents(idx int) []int { return d.parents[idx] }

// ChildIDs returns the IDs of the children of id, or nil if id is unknown.
func (d *DAG) ChildIDs(id uint) []uint {
	idx, ok := d.index[id]
	if !ok {
		return nil
	}
	return d.ids(d.children[idx])
}

// ParentIDs returns the IDs of the parents of id, or nil if id is unknown.
func (d *DAG) ParentIDs(id uint) []uint {
	idx, ok := d.index[id]
	if !ok {
		return nil
	}
	return d.ids(d.parents[idx])
}

func (d *DAG) ids(indices []int) []uint {
	if len(indices) == 0 {
		return nil
	}
	out := make([]uint, len(indices))
	for i, idx := range indices {
		out[i] = d.nodes[idx].ID
	}
	return out
}

// Roots returns the indices of nodes without parents, in index order.
func (d *DAG) Roots() []int {
	var roots []int
	for idx := range d.nodes {
		if len(d.parents[idx]) == 0 {
			roots = append(roots, idx)
		}
	}
	return roots
}

// EstimateSize returns a capacity hint in bytes for the rendered output.
// It is a heuristic, not an upper bound.
func (d *DAG) EstimateSize() int {
	return len(d.nodes)*25 + len(d.edges)*15 + 200
}
