package io

import (
	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
)

// Document is the on-disk form of a graph. The same shape is used for JSON
// files, TOML files and the HTTP request body.
type Document struct {
	Mode  string `json:"mode,omitempty" toml:"mode,omitempty"`
	Nodes []Node `json:"nodes" toml:"nodes"`
	Edges []Edge `json:"edges" toml:"edges"`
}

// Node is a node entry in a [Document].
type Node struct {
	ID    uint   `json:"id" toml:"id"`
	Label string `json:"label,omitempty" toml:"label,omitempty"`
}

// Edge is an edge entry in a [Document].
type Edge struct {
	From uint `json:"from" toml:"from"`
	To   uint `json:"to" toml:"to"`
}

// Validate checks the document against lim and verifies the mode name.
// Edges to undeclared IDs are valid: they produce placeholder nodes.
func (doc *Document) Validate(lim errors.Limits) error {
	if err := lim.ValidateGraphSize(len(doc.Nodes), len(doc.Edges)); err != nil {
		return err
	}
	for _, n := range doc.Nodes {
		if err := lim.ValidateLabel(n.Label); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "node %d: %s", n.ID, errors.UserMessage(err))
		}
	}
	if _, err := dag.ParseRenderMode(doc.Mode); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid mode: %q", doc.Mode)
	}
	return nil
}

// Build replays the document into a new DAG: nodes first, in order, then
// edges, in order.
func (doc *Document) Build() (*dag.DAG, error) {
	mode, err := dag.ParseRenderMode(doc.Mode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMode, err, "invalid mode: %q", doc.Mode)
	}
	g := dag.WithMode(mode)
	for _, n := range doc.Nodes {
		g.AddNode(n.ID, n.Label)
	}
	for _, e := range doc.Edges {
		g.AddEdge(e.From, e.To)
	}
	return g, nil
}

// FromDAG converts g into a document. Placeholder nodes are written without a
// label, so a re-imported document renders identically and keeps every
// node's position.
func FromDAG(g *dag.DAG) *Document {
	doc := &Document{
		Nodes: make([]Node, 0, g.NodeCount()),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	if g.Mode() != dag.ModeAuto {
		doc.Mode = g.Mode().String()
	}
	for _, n := range g.Nodes() {
		nd := Node{ID: n.ID}
		if !g.IsAutoCreated(n.ID) {
			nd.Label = n.Label
		}
		doc.Nodes = append(doc.Nodes, nd)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To})
	}
	return doc
}
