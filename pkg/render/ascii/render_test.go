package ascii

import (
	"strings"
	"testing"

	"github.com/matzehuels/asciidag/pkg/dag"
)

func nodes(labels ...string) []dag.Node {
	out := make([]dag.Node, len(labels))
	for i, l := range labels {
		out[i] = dag.Node{ID: uint(i + 1), Label: l}
	}
	return out
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		nodes []dag.Node
		edges []dag.Edge
		mode  dag.RenderMode
		want  string
	}{
		{
			name: "empty",
			want: "Empty DAG",
		},
		{
			name:  "single node",
			nodes: nodes("Solo"),
			want:  "[Solo]\n",
		},
		{
			name:  "simple chain",
			nodes: nodes("A", "B", "C"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 2, To: 3}},
			want:  "[A] → [B] → [C]\n",
		},
		{
			name:  "missing endpoint",
			nodes: nodes("Start"),
			edges: []dag.Edge{{From: 1, To: 2}},
			want:  "[Start] → ⟨2⟩\n",
		},
		{
			name:  "chain forced vertical",
			nodes: nodes("A", "B"),
			edges: []dag.Edge{{From: 1, To: 2}},
			mode:  dag.ModeVertical,
			want:  lines("[A]", " │", " ↓", "[B]"),
		},
		{
			name:  "diamond",
			nodes: nodes("Root", "Left", "Right", "Merge"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4}},
			want: lines(
				"     [Root]",
				"        │    ",
				"   ┌────────┐",
				"   ↓        ↓",
				"[Left]   [Right]",
				"   │        │",
				"   └────────┘",
				"       ↓     ",
				"    [Merge]",
			),
		},
		{
			name:  "fan out with tee",
			nodes: nodes("R", "A", "B", "C"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 1, To: 4}},
			want: lines(
				"      [R]",
				"       │      ",
				" ┌─────┬─────┐",
				" ↓     ↓     ↓",
				"[A]   [B]   [C]",
			),
		},
		{
			name:  "mixed fan uses straight connectors",
			nodes: nodes("A", "B", "C", "D"),
			edges: []dag.Edge{{From: 1, To: 3}, {From: 2, To: 3}, {From: 1, To: 4}},
			want: lines(
				"[A]   [B]",
				" │     │",
				" ↓     ↓",
				"[D]   [C]",
			),
		},
		{
			name:  "two chains",
			nodes: nodes("A", "B", "C", "D"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 3, To: 4}},
			want:  "[A] → [B]\n\n[C] → [D]\n",
		},
		{
			name:  "disconnected fan and isolated node",
			nodes: nodes("X", "Y", "Z", "W"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}},
			want: lines(
				"[X]",
				" │      ",
				" ↓      ",
				"[Y]   [Z]",
				"",
				"[W]",
			),
		},
		{
			name:  "self loop",
			nodes: nodes("SelfRef"),
			edges: []dag.Edge{{From: 1, To: 1}},
			want: lines(
				CycleHeader,
				"",
				CycleChainHeader,
				"[SelfRef] ⇄ [SelfRef]",
				"",
				CycleFooter,
			),
		},
		{
			name:  "cycle wins over components",
			nodes: nodes("A", "B", "C"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 3, To: 3}},
			want: lines(
				CycleHeader,
				"",
				CycleChainHeader,
				"[C] ⇄ [C]",
				"",
				CycleFooter,
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := dag.FromEdges(tt.nodes, tt.edges)
			g.SetRenderMode(tt.mode)
			if got := Render(g); got != tt.want {
				t.Errorf("Render() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestRender_CycleChain(t *testing.T) {
	g := dag.New()
	g.AddNode(1, "A")
	g.AddNode(2, "B")
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)

	out := Render(g)

	if !strings.Contains(out, "CYCLE DETECTED") {
		t.Errorf("Render() missing cycle marker:\n%s", out)
	}
	if !strings.Contains(out, "circular") {
		t.Errorf("Render() missing loop description:\n%s", out)
	}
	if want := "[A] → [B] → ⟨3⟩ ⇄ [A]"; !strings.Contains(out, want) {
		t.Errorf("Render() missing chain %q:\n%s", want, out)
	}
}

func TestRender_ForcedHorizontalFollowsFirstChild(t *testing.T) {
	g := dag.FromEdges(nodes("A", "B", "C"), []dag.Edge{{From: 1, To: 3}, {From: 1, To: 2}})
	g.SetRenderMode(dag.ModeHorizontal)

	if got, want := Render(g), "[A] → [C]\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Deterministic(t *testing.T) {
	build := func() *dag.DAG {
		g := dag.New()
		for i, l := range []string{"api", "auth", "db", "cache", "queue", "worker", "mail"} {
			g.AddNode(uint(i+1), l)
		}
		for _, e := range [][2]uint{{1, 2}, {1, 4}, {2, 3}, {4, 3}, {1, 5}, {5, 6}, {6, 3}, {6, 7}, {2, 7}} {
			g.AddEdge(e[0], e[1])
		}
		return g
	}

	first := Render(build())
	for range 5 {
		if got := Render(build()); got != first {
			t.Fatalf("Render() not deterministic:\n%s\nvs\n%s", got, first)
		}
	}
}

func TestRender_LeftToRightOrder(t *testing.T) {
	g := dag.FromEdges(nodes("r1", "r2", "a", "b", "c"), []dag.Edge{
		{From: 1, To: 5}, {From: 2, To: 3}, {From: 2, To: 4}, {From: 1, To: 3},
	})

	out := Render(g)
	row := strings.Split(out, "\n")[3]
	for _, pair := range [][2]string{{"[a]", "[b]"}, {"[c]", "[a]"}} {
		l, r := strings.Index(row, pair[0]), strings.Index(row, pair[1])
		if l < 0 || r < 0 || l >= r {
			t.Errorf("row %q: want %s left of %s", row, pair[0], pair[1])
		}
	}
}

func TestRenderTo_ReusesBuilder(t *testing.T) {
	g := dag.FromEdges(nodes("A", "B"), []dag.Edge{{From: 1, To: 2}})

	var sb strings.Builder
	RenderTo(g, &sb)
	RenderTo(g, &sb)

	if got, want := sb.String(), "[A] → [B]\n[A] → [B]\n"; got != want {
		t.Errorf("RenderTo() twice = %q, want %q", got, want)
	}
}

func TestRender_NoCycleMarkerForDAG(t *testing.T) {
	g := dag.FromEdges(nil, []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4}, {From: 1, To: 4}})
	if out := Render(g); strings.Contains(out, "CYCLE") {
		t.Errorf("Render() reported a cycle for a DAG:\n%s", out)
	}
}
