package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/asciidag/pkg/dag"
	"github.com/matzehuels/asciidag/pkg/errors"
)

const diamondJSON = `{
  "nodes": [
    {"id": 1, "label": "Root"},
    {"id": 2, "label": "Left"},
    {"id": 3, "label": "Right"},
    {"id": 4, "label": "Merge"}
  ],
  "edges": [
    {"from": 1, "to": 2},
    {"from": 1, "to": 3},
    {"from": 2, "to": 4},
    {"from": 3, "to": 4}
  ]
}`

const chainTOML = `
mode = "vertical"

[[nodes]]
id = 1
label = "A"

[[nodes]]
id = 2
label = "B"

[[edges]]
from = 1
to = 2

[[edges]]
from = 2
to = 7
`

func TestReadJSON(t *testing.T) {
	g, err := ReadJSON(strings.NewReader(diamondJSON))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if g.NodeCount() != 4 || g.EdgeCount() != 4 {
		t.Errorf("counts = %d/%d, want 4/4", g.NodeCount(), g.EdgeCount())
	}
	if got := g.Node(3).Label; got != "Merge" {
		t.Errorf("Node(3).Label = %q, want %q", got, "Merge")
	}
	if g.Mode() != dag.ModeAuto {
		t.Errorf("Mode() = %v, want auto", g.Mode())
	}
}

func TestReadTOML(t *testing.T) {
	g, err := ReadTOML(strings.NewReader(chainTOML))
	if err != nil {
		t.Fatalf("ReadTOML() error = %v", err)
	}
	if g.Mode() != dag.ModeVertical {
		t.Errorf("Mode() = %v, want vertical", g.Mode())
	}
	if g.NodeCount() != 3 {
		t.Fatalf("NodeCount() = %d, want 3", g.NodeCount())
	}
	if !g.IsAutoCreated(7) {
		t.Error("IsAutoCreated(7) = false, want true")
	}
	if got := g.FormatNode(7); got != "⟨7⟩" {
		t.Errorf("FormatNode(7) = %q, want %q", got, "⟨7⟩")
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
		code   errors.Code
	}{
		{"malformed json", `{"nodes": [`, FormatJSON, errors.ErrCodeInvalidFormat},
		{"negative id", `{"nodes": [{"id": -1}]}`, FormatJSON, errors.ErrCodeInvalidFormat},
		{"malformed toml", `[[nodes]`, FormatTOML, errors.ErrCodeInvalidFormat},
		{"bad mode", `{"mode": "diagonal"}`, FormatJSON, errors.ErrCodeInvalidMode},
		{"unknown format", `{}`, Format("yaml"), errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), tt.format)
			if err == nil {
				t.Fatal("Read() error = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("GetCode() = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestDocumentValidate(t *testing.T) {
	lim := errors.Limits{MaxNodes: 2, MaxEdges: 1, MaxLabelLength: 4}
	tests := []struct {
		name string
		doc  Document
		code errors.Code
	}{
		{"ok", Document{Nodes: []Node{{ID: 1, Label: "a"}}, Edges: []Edge{{From: 1, To: 5}}}, ""},
		{"too many nodes", Document{Nodes: []Node{{ID: 1}, {ID: 2}, {ID: 3}}}, errors.ErrCodeTooLarge},
		{"too many edges", Document{Edges: []Edge{{1, 2}, {2, 3}}}, errors.ErrCodeTooLarge},
		{"long label", Document{Nodes: []Node{{ID: 1, Label: "abcde"}}}, errors.ErrCodeInvalidInput},
		{"bad mode", Document{Mode: "sideways"}, errors.ErrCodeInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate(lim)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Validate() code = %v, want %v (err %v)", got, tt.code, err)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			g := dag.WithMode(dag.ModeHorizontal)
			g.AddNode(1, "A")
			g.AddEdge(1, 5)
			g.AddNode(2, "B")
			g.AddEdge(5, 2)

			var buf bytes.Buffer
			if err := Write(g, &buf, f); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			got, err := Read(&buf, f)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}

			if got.Mode() != dag.ModeHorizontal {
				t.Errorf("Mode() = %v, want horizontal", got.Mode())
			}
			if got.NodeCount() != g.NodeCount() || got.EdgeCount() != g.EdgeCount() {
				t.Fatalf("counts = %d/%d, want %d/%d", got.NodeCount(), got.EdgeCount(), g.NodeCount(), g.EdgeCount())
			}
			for i := range g.NodeCount() {
				want := g.FormatNode(g.Node(i).ID)
				if s := got.FormatNode(got.Node(i).ID); s != want {
					t.Errorf("node %d = %q, want %q", i, s, want)
				}
			}
		})
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(jsonPath, []byte(diamondJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "graph.TOML")
	if err := os.WriteFile(tomlPath, []byte(chainTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	if g, err := Import(jsonPath); err != nil || g.NodeCount() != 4 {
		t.Errorf("Import(json) = %v, %v", g, err)
	}
	if g, err := Import(tomlPath); err != nil || g.NodeCount() != 3 {
		t.Errorf("Import(toml) = %v, %v", g, err)
	}

	_, err := Import(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Import(missing) code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}

	_, err = Import(filepath.Join(dir, "graph.yaml"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("Import(yaml) code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnsupported)
	}
}

func TestExport(t *testing.T) {
	g := dag.New()
	g.AddEdge(1, 2)
	path := filepath.Join(t.TempDir(), "out.toml")
	if err := Export(g, path); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	back, err := Import(path)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if back.EdgeCount() != 1 || back.NodeCount() != 2 {
		t.Errorf("counts = %d/%d, want 2/1", back.NodeCount(), back.EdgeCount())
	}
}
