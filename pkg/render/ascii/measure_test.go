package ascii

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/matzehuels/asciidag/pkg/dag"
)

// drawnExtent measures the node rows of a rendered drawing.
func drawnExtent(out string) (rows, width int) {
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if !strings.ContainsAny(line, "[⟨") {
			continue
		}
		rows++
		width = max(width, utf8.RuneCountInString(strings.TrimRight(line, " ")))
	}
	return rows, width
}

func TestMeasureVertical_MatchesRender(t *testing.T) {
	tests := []struct {
		name  string
		nodes []dag.Node
		edges []dag.Edge
	}{
		{
			name:  "diamond",
			nodes: nodes("Root", "Left", "Right", "Merge"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4}},
		},
		{
			name:  "diamond and chain",
			nodes: nodes("Root", "Left", "Right", "Merge", "Producer", "Consumer"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4}, {From: 5, To: 6}},
		},
		{
			name:  "fan, chain and isolated node",
			nodes: nodes("Gateway", "Users", "Orders", "Queue", "Worker", "Cron"),
			edges: []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 4, To: 5}},
		},
		{
			name:  "placeholders",
			nodes: nodes("Start"),
			edges: []dag.Edge{{From: 1, To: 20}, {From: 1, To: 300}, {From: 7, To: 8}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := dag.FromEdges(tt.nodes, tt.edges)
			g.SetRenderMode(dag.ModeVertical)

			e := MeasureVertical(g)
			rows, width := drawnExtent(Render(g))
			if e.Rows != rows || e.Width != width {
				t.Errorf("MeasureVertical() = %d rows, width %d; drawing has %d rows, width %d\n%s",
					e.Rows, e.Width, rows, width, Render(g))
			}
			if e.Crossings != 0 {
				t.Errorf("MeasureVertical().Crossings = %d, want 0", e.Crossings)
			}
		})
	}
}

func TestMeasureVertical_Empty(t *testing.T) {
	if e := MeasureVertical(dag.New()); e != (Extent{}) {
		t.Errorf("MeasureVertical(empty) = %+v, want zero", e)
	}
}
