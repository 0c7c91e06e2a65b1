package analysis

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/asciidag/pkg/dag"
)

// depMap builds a DepsFunc from a literal map.
func depMap(m map[string][]string) DepsFunc[string] {
	return func(id string) []string { return m[id] }
}

var diamondDeps = depMap(map[string][]string{
	"app":   {"auth", "cache"},
	"auth":  {"core"},
	"cache": {"core"},
})

var diamondIDs = []string{"app", "auth", "cache", "core"}

func TestFindRootsAndLeaves(t *testing.T) {
	if got, want := FindRoots(diamondIDs, diamondDeps), []string{"core"}; !slices.Equal(got, want) {
		t.Errorf("FindRoots() = %v, want %v", got, want)
	}
	if got, want := FindLeaves(diamondIDs, diamondDeps), []string{"app"}; !slices.Equal(got, want) {
		t.Errorf("FindLeaves() = %v, want %v", got, want)
	}
}

func TestDetectCycle(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		deps map[string][]string
		want []string
	}{
		{"acyclic", diamondIDs, map[string][]string{"app": {"auth"}}, nil},
		{"self", []string{"a"}, map[string][]string{"a": {"a"}}, []string{"a"}},
		{"pair", []string{"a", "b"}, map[string][]string{"a": {"b"}, "b": {"a"}}, []string{"a", "b"}},
		{
			"tail not included",
			[]string{"x", "a", "b", "c"},
			map[string][]string{"x": {"a"}, "a": {"b"}, "b": {"c"}, "c": {"a"}},
			[]string{"a", "b", "c"},
		},
		{"unknown deps ignored", []string{"a"}, map[string][]string{"a": {"zzz"}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectCycle(tt.ids, depMap(tt.deps))
			if ok != (tt.want != nil) {
				t.Fatalf("DetectCycle() ok = %v, want %v", ok, tt.want != nil)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("DetectCycle() = %v, want %v", got, tt.want)
			}
			if HasCycle(tt.ids, depMap(tt.deps)) != ok {
				t.Errorf("HasCycle() disagrees with DetectCycle()")
			}
		})
	}
}

type task struct {
	name  string
	needs []string
}

func (t task) ID() string             { return t.name }
func (t task) Dependencies() []string { return t.needs }

func TestDetectCycleOf(t *testing.T) {
	tasks := []task{
		{name: "build", needs: []string{"test"}},
		{name: "test", needs: []string{"build"}},
	}
	cycle, ok := DetectCycleOf[string](tasks)
	if !ok {
		t.Fatal("DetectCycleOf() found no cycle")
	}
	if want := []string{"build", "test"}; !slices.Equal(cycle, want) {
		t.Errorf("DetectCycleOf() = %v, want %v", cycle, want)
	}
}

func TestTopologicalSort(t *testing.T) {
	got, err := TopologicalSort(diamondIDs, diamondDeps)
	if err != nil {
		t.Fatalf("TopologicalSort() error = %v", err)
	}
	if want := []string{"core", "auth", "cache", "app"}; !slices.Equal(got, want) {
		t.Errorf("TopologicalSort() = %v, want %v", got, want)
	}
}

func TestTopologicalSort_InputOrderBreaksTies(t *testing.T) {
	ids := []string{"zeta", "alpha", "mid"}
	got, err := TopologicalSort(ids, depMap(nil))
	if err != nil {
		t.Fatalf("TopologicalSort() error = %v", err)
	}
	if !slices.Equal(got, ids) {
		t.Errorf("TopologicalSort() = %v, want %v", got, ids)
	}
}

func TestTopologicalSort_DuplicateDependency(t *testing.T) {
	ids := []string{"a", "b"}
	got, err := TopologicalSort(ids, depMap(map[string][]string{"a": {"b", "b"}}))
	if err != nil {
		t.Fatalf("TopologicalSort() error = %v", err)
	}
	if want := []string{"b", "a"}; !slices.Equal(got, want) {
		t.Errorf("TopologicalSort() = %v, want %v", got, want)
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	_, err := TopologicalSort([]string{"a", "b"}, depMap(map[string][]string{"a": {"b"}, "b": {"a"}}))
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("TopologicalSort() error = %v, want ErrCycle", err)
	}
	var ce *CycleError[string]
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not *CycleError[string]", err)
	}
	if want := []string{"a", "b"}; !slices.Equal(ce.Cycle, want) {
		t.Errorf("Cycle = %v, want %v", ce.Cycle, want)
	}
}

func TestDescendantsAndAncestors(t *testing.T) {
	if got, want := Descendants(diamondIDs, "core", diamondDeps), []string{"auth", "cache", "app"}; !slices.Equal(got, want) {
		t.Errorf("Descendants(core) = %v, want %v", got, want)
	}
	if got, want := Ancestors("app", diamondDeps), []string{"auth", "cache", "core"}; !slices.Equal(got, want) {
		t.Errorf("Ancestors(app) = %v, want %v", got, want)
	}
	if got := Descendants(diamondIDs, "app", diamondDeps); got != nil {
		t.Errorf("Descendants(app) = %v, want nil", got)
	}

	anc, desc := BlastRadius(diamondIDs, "auth", diamondDeps)
	if !slices.Equal(anc, []string{"core"}) || !slices.Equal(desc, []string{"app"}) {
		t.Errorf("BlastRadius(auth) = %v, %v, want [core], [app]", anc, desc)
	}
}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics(diamondIDs, diamondDeps)

	want := Metrics{NodeCount: 4, EdgeCount: 4, RootCount: 1, LeafCount: 1, MaxDepth: 3, MaxDescendants: 3}
	if m != want {
		t.Errorf("ComputeMetrics() = %+v, want %+v", m, want)
	}
	if got := m.AvgDependencies(); got != 1 {
		t.Errorf("AvgDependencies() = %v, want 1", got)
	}
	if got, want := m.Density(), 4.0/12.0; got != want {
		t.Errorf("Density() = %v, want %v", got, want)
	}
	if m.IsTree() || m.IsForest() {
		t.Error("diamond reported as tree or forest")
	}
	if m.IsSparse() || m.IsDense() {
		t.Error("diamond reported as sparse or dense")
	}
}

func TestComputeMetrics_Tree(t *testing.T) {
	ids := []string{"root", "a", "b"}
	m := ComputeMetrics(ids, depMap(map[string][]string{"a": {"root"}, "b": {"root"}}))
	if !m.IsTree() || !m.IsForest() {
		t.Errorf("IsTree() = %v, IsForest() = %v, want true, true", m.IsTree(), m.IsForest())
	}
	if empty := ComputeMetrics[string](nil, depMap(nil)); empty.Density() != 0 || empty.AvgDependencies() != 0 {
		t.Errorf("empty metrics = %+v, want zero ratios", empty)
	}
}

func TestFromDAG(t *testing.T) {
	g := dag.FromEdges(nil, []dag.Edge{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 3}})
	ids, deps := FromDAG(g)

	order, err := TopologicalSort(ids, deps)
	if err != nil {
		t.Fatalf("TopologicalSort() error = %v", err)
	}
	if want := []uint{1, 2, 3}; !slices.Equal(order, want) {
		t.Errorf("TopologicalSort(FromDAG) = %v, want %v", order, want)
	}
	if got := FindRoots(ids, deps); !slices.Equal(got, []uint{1}) {
		t.Errorf("FindRoots(FromDAG) = %v, want [1]", got)
	}
}
