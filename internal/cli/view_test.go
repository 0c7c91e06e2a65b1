package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/asciidag/pkg/dag"
)

func chainDAG(n int) *dag.DAG {
	g := dag.New()
	for i := 1; i <= n; i++ {
		g.AddNode(uint(i), string(rune('A'+i-1)))
		if i > 1 {
			g.AddEdge(uint(i-1), uint(i))
		}
	}
	return g
}

func press(m viewModel, key string) viewModel {
	var msg tea.KeyMsg
	switch key {
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(viewModel)
}

func TestViewModelModeCycle(t *testing.T) {
	m := newViewModel(chainDAG(3), "chain.json")
	if len(m.lines) != 1 || m.lines[0] != "[A] → [B] → [C]" {
		t.Fatalf("auto lines = %q, want single horizontal line", m.lines)
	}

	m = press(m, "m")
	if m.mode != dag.ModeVertical {
		t.Fatalf("mode after m = %v, want vertical", m.mode)
	}
	if len(m.lines) != 7 {
		t.Errorf("vertical lines = %d, want 7: %q", len(m.lines), m.lines)
	}

	m = press(m, "m")
	if m.mode != dag.ModeHorizontal {
		t.Errorf("mode after m m = %v, want horizontal", m.mode)
	}
	m = press(m, "m")
	if m.mode != dag.ModeAuto {
		t.Errorf("mode should wrap to auto, got %v", m.mode)
	}
}

func TestViewModelScroll(t *testing.T) {
	g := chainDAG(10)
	g.SetRenderMode(dag.ModeVertical)
	m := newViewModel(g, "chain.json")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = next.(viewModel)

	m = press(m, "up")
	if m.top != 0 {
		t.Errorf("top = %d after scrolling up at the start, want 0", m.top)
	}
	m = press(m, "down")
	m = press(m, "j")
	if m.top != 2 {
		t.Errorf("top = %d, want 2", m.top)
	}
	m = press(m, "G")
	if m.top != m.maxTop() {
		t.Errorf("top = %d after G, want %d", m.top, m.maxTop())
	}
	m = press(m, "down")
	if m.top != m.maxTop() {
		t.Errorf("scrolled past the end: top = %d, max %d", m.top, m.maxTop())
	}

	view := m.View()
	if !strings.Contains(view, "[J]") {
		t.Errorf("bottom of the diagram not visible:\n%s", view)
	}
}

func TestViewModelNodeTable(t *testing.T) {
	g := chainDAG(2)
	g.AddEdge(2, 9)
	m := newViewModel(g, "chain.json")

	m = press(m, "n")
	if !m.showNodes {
		t.Fatal("n should show the node table")
	}
	m = press(m, "down")
	m = press(m, "down")
	m = press(m, "down")
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want clamped to 2", m.cursor)
	}

	view := m.View()
	for _, want := range []string{"ID", "Label", "(placeholder)"} {
		if !strings.Contains(view, want) {
			t.Errorf("node table missing %q:\n%s", want, view)
		}
	}
}

func TestViewModelQuit(t *testing.T) {
	m := newViewModel(chainDAG(2), "chain.json")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestSliceColumns(t *testing.T) {
	tests := []struct {
		line        string
		left, width int
		want        string
	}{
		{"[A] → [B]", 0, 3, "[A]"},
		{"[A] → [B]", 4, 1, "→"},
		{"[A] → [B]", 6, 0, "[B]"},
		{"[A]", 10, 5, ""},
	}
	for _, tt := range tests {
		if got := sliceColumns(tt.line, tt.left, tt.width); got != tt.want {
			t.Errorf("sliceColumns(%q, %d, %d) = %q, want %q", tt.line, tt.left, tt.width, got, tt.want)
		}
	}
}
