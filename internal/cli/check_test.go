package cli

import (
	"testing"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
)

func TestCheckCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		content string
		args    []string
		code    errors.Code // empty means success
	}{
		{"acyclic", chainJSON, nil, ""},
		{"cycle", cycleJSON, nil, errors.ErrCodeCycleDetected},
		{"placeholder allowed", placeholderJSON, nil, ""},
		{"placeholder strict", placeholderJSON, []string{"--strict"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeInput(t, "graph.json", tt.content)
			_, err := runCLI(t, append([]string{"check", input}, tt.args...)...)
			if tt.code == "" {
				if err != nil {
					t.Errorf("check error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("check error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestFormatCycle(t *testing.T) {
	g := dag.New()
	g.AddNode(1, "A")
	g.AddNode(2, "B")
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)

	path, ok := g.FindCyclePath()
	if !ok {
		t.Fatal("FindCyclePath() found no cycle")
	}
	if got, want := formatCycle(g, path), "[A] → [B] → [A]"; got != want {
		t.Errorf("formatCycle() = %q, want %q", got, want)
	}
	if got := formatCycle(g, nil); got != "" {
		t.Errorf("formatCycle(nil) = %q, want empty", got)
	}
}

func TestPlaceholderIDs(t *testing.T) {
	g := dag.New()
	g.AddNode(1, "A")
	g.AddEdge(1, 5)
	g.AddEdge(7, 1)

	got := placeholderIDs(g)
	if len(got) != 2 || got[0] != 5 || got[1] != 7 {
		t.Errorf("placeholderIDs() = %v, want [5 7]", got)
	}
}
