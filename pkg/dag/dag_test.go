package dag

import (
	"errors"
	"slices"
	"testing"
)

func TestAddNode_Promotion(t *testing.T) {
	g := New()
	g.AddNode(1, "Start")
	g.AddEdge(1, 2)

	if !g.IsAutoCreated(2) {
		t.Fatal("IsAutoCreated(2) = false, want true")
	}
	idx, _ := g.Index(2)
	if w := g.Width(idx); w != 3 {
		t.Errorf("Width(placeholder) = %d, want 3", w)
	}

	g.AddNode(2, "Finish")

	if g.IsAutoCreated(2) {
		t.Error("IsAutoCreated(2) after AddNode = true, want false")
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if got, _ := g.Index(2); got != idx {
		t.Errorf("Index(2) = %d after promotion, want %d", got, idx)
	}
	if w := g.Width(idx); w != 8 {
		t.Errorf("Width(promoted) = %d, want 8", w)
	}
	if got := g.FormatNode(2); got != "[Finish]" {
		t.Errorf("FormatNode(2) = %q, want %q", got, "[Finish]")
	}
}

func TestAddNode_Relabel(t *testing.T) {
	g := New()
	g.AddNode(7, "old")
	g.AddNode(7, "renamed")

	if g.NodeCount() != 1 {
		t.Fatalf("NodeCount() = %d, want 1", g.NodeCount())
	}
	if got := g.Node(0).Label; got != "renamed" {
		t.Errorf("Label = %q, want %q", got, "renamed")
	}
}

func TestAddEdge_AutoCreatesBothEndpoints(t *testing.T) {
	g := New()
	g.AddEdge(10, 20)

	if g.NodeCount() != 2 {
		t.Fatalf("NodeCount() = %d, want 2", g.NodeCount())
	}
	for i, id := range []uint{10, 20} {
		idx, ok := g.Index(id)
		if !ok || idx != i {
			t.Errorf("Index(%d) = %d, %v, want %d, true", id, idx, ok, i)
		}
		if !g.IsAutoCreated(id) {
			t.Errorf("IsAutoCreated(%d) = false, want true", id)
		}
	}
	if got := g.FormatNode(10); got != "⟨10⟩" {
		t.Errorf("FormatNode(10) = %q, want %q", got, "⟨10⟩")
	}
}

func TestAddEdge_Adjacency(t *testing.T) {
	g := New()
	g.AddNode(1, "a")
	g.AddNode(2, "b")
	g.AddNode(3, "c")
	g.AddEdge(1, 3)
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)

	if got, want := g.Children(0), []int{2, 1, 1}; !slices.Equal(got, want) {
		t.Errorf("Children(0) = %v, want %v", got, want)
	}
	if got, want := g.Parents(1), []int{0, 0}; !slices.Equal(got, want) {
		t.Errorf("Parents(1) = %v, want %v", got, want)
	}
	if got, want := g.ChildIDs(1), []uint{3, 2, 2}; !slices.Equal(got, want) {
		t.Errorf("ChildIDs(1) = %v, want %v", got, want)
	}
	if got := g.ParentIDs(1); got != nil {
		t.Errorf("ParentIDs(1) = %v, want nil", got)
	}
	if got := g.ChildIDs(99); got != nil {
		t.Errorf("ChildIDs(99) = %v, want nil", got)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
}

func TestFromEdges_MatchesIncremental(t *testing.T) {
	nodes := []Node{{ID: 3, Label: "c"}, {ID: 1, Label: "a"}}
	edges := []Edge{{From: 1, To: 2}, {From: 2, To: 3}, {From: 4, To: 1}}

	batch := FromEdges(nodes, edges)

	inc := New()
	for _, n := range nodes {
		inc.AddNode(n.ID, n.Label)
	}
	for _, e := range edges {
		inc.AddEdge(e.From, e.To)
	}

	if !slices.Equal(batch.Nodes(), inc.Nodes()) {
		t.Errorf("Nodes() = %v, want %v", batch.Nodes(), inc.Nodes())
	}
	if !slices.Equal(batch.Edges(), inc.Edges()) {
		t.Errorf("Edges() = %v, want %v", batch.Edges(), inc.Edges())
	}
	for idx := range batch.NodeCount() {
		if batch.Width(idx) != inc.Width(idx) {
			t.Errorf("Width(%d) = %d, want %d", idx, batch.Width(idx), inc.Width(idx))
		}
	}
	for _, id := range []uint{1, 2, 3, 4} {
		if batch.IsAutoCreated(id) != inc.IsAutoCreated(id) {
			t.Errorf("IsAutoCreated(%d) differs", id)
		}
	}
}

func TestNodeWidth(t *testing.T) {
	tests := []struct {
		name  string
		id    uint
		label string
		auto  bool
		want  int
	}{
		{"ascii label", 1, "Root", false, 6},
		{"unicode label", 1, "héllo", false, 7},
		{"empty label", 12345, "", false, 7},
		{"placeholder", 0, "", true, 3},
		{"placeholder ignores label", 42, "ignored", true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nodeWidth(tt.id, tt.label, tt.auto); got != tt.want {
				t.Errorf("nodeWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWriteNode_EmptyLabel(t *testing.T) {
	g := New()
	g.AddNode(5, "")

	if got := g.FormatNode(5); got != "⟨5⟩" {
		t.Errorf("FormatNode(5) = %q, want %q", got, "⟨5⟩")
	}
	if g.IsAutoCreated(5) {
		t.Error("IsAutoCreated(5) = true, want false")
	}
}

func TestEstimateSize(t *testing.T) {
	g := FromEdges([]Node{{ID: 1, Label: "a"}}, []Edge{{From: 1, To: 2}, {From: 2, To: 3}})
	if got, want := g.EstimateSize(), 3*25+2*15+200; got != want {
		t.Errorf("EstimateSize() = %d, want %d", got, want)
	}
}

func TestRoots(t *testing.T) {
	g := FromEdges(nil, []Edge{{From: 1, To: 2}, {From: 3, To: 2}, {From: 2, To: 4}})
	if got, want := g.Roots(), []int{0, 2}; !slices.Equal(got, want) {
		t.Errorf("Roots() = %v, want %v", got, want)
	}
}

func TestParseRenderMode(t *testing.T) {
	tests := []struct {
		in      string
		want    RenderMode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"Vertical", ModeVertical, false},
		{"h", ModeHorizontal, false},
		{" horizontal ", ModeHorizontal, false},
		{"diagonal", ModeAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRenderMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRenderMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownMode) {
				t.Errorf("error = %v, want ErrUnknownMode", err)
			}
			if got != tt.want {
				t.Errorf("ParseRenderMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveMode(t *testing.T) {
	chain := FromEdges(nil, []Edge{{From: 1, To: 2}, {From: 2, To: 3}})
	fork := FromEdges(nil, []Edge{{From: 1, To: 2}, {From: 1, To: 3}})
	split := FromEdges(nil, []Edge{{From: 1, To: 2}, {From: 3, To: 4}})

	tests := []struct {
		name string
		g    *DAG
		mode RenderMode
		want RenderMode
	}{
		{"chain auto", chain, ModeAuto, ModeHorizontal},
		{"chain forced vertical", chain, ModeVertical, ModeVertical},
		{"fork auto", fork, ModeAuto, ModeVertical},
		{"fork forced horizontal", fork, ModeHorizontal, ModeHorizontal},
		{"two chains auto", split, ModeAuto, ModeVertical},
		{"empty auto", New(), ModeAuto, ModeVertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.g.SetRenderMode(tt.mode)
			if got := tt.g.ResolveMode(); got != tt.want {
				t.Errorf("ResolveMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
