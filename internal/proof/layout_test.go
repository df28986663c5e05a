package proof

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/synthetica/internal/olympiad"
)

func step(id string, t olympiad.StepType, deps ...string) olympiad.ReasoningStep {
	return olympiad.ReasoningStep{ID: id, Type: t, Statement: "s " + id, Dependencies: deps}
}

func TestLayout_Empty(t *testing.T) {
	g, err := Layout(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Nodes) != 0 || len(g.Edges) != 0 || g.Depth != 0 {
		t.Errorf("got %+v, want empty graph", g)
	}
}

func TestLayout_Chain(t *testing.T) {
	steps := []olympiad.ReasoningStep{
		step("S1", olympiad.StepHypothesis),
		step("S2", olympiad.StepDeduction, "S1"),
		step("S3", olympiad.StepConclusion, "S2"),
	}
	g, err := Layout(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, want := range []string{"S1", "S2", "S3"} {
		n := g.Nodes[i]
		if n.ID != want || n.Level != i {
			t.Errorf("node %d: got %s@%d, want %s@%d", i, n.ID, n.Level, want, i)
		}
		if n.X != 250 {
			t.Errorf("node %s: got x=%v, want 250", n.ID, n.X)
		}
		if n.Y != float64(i)*YGap {
			t.Errorf("node %s: got y=%v, want %v", n.ID, n.Y, float64(i)*YGap)
		}
	}
	if len(g.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(g.Edges))
	}
	if g.Edges[0] != (Edge{Source: "S1", Target: "S2"}) {
		t.Errorf("edge 0: got %+v", g.Edges[0])
	}
	if g.Nodes[1].Label != "Deduction (S2)" {
		t.Errorf("label: got %q", g.Nodes[1].Label)
	}
}

func TestLayout_LongestPath(t *testing.T) {
	// S4 depends on S1 (level 0) and S3 (level 2) so it must sit at level 3.
	steps := []olympiad.ReasoningStep{
		step("S1", olympiad.StepHypothesis),
		step("S2", olympiad.StepLemma, "S1"),
		step("S3", olympiad.StepDeduction, "S2"),
		step("S4", olympiad.StepConclusion, "S1", "S3"),
	}
	levels, err := Levels(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]int{"S1": 0, "S2": 1, "S3": 2, "S4": 3}
	for id, l := range want {
		if levels[id] != l {
			t.Errorf("level(%s): got %d, want %d", id, levels[id], l)
		}
	}
}

func TestLayout_Siblings(t *testing.T) {
	steps := []olympiad.ReasoningStep{
		step("A", olympiad.StepAxiom),
		step("B", olympiad.StepHypothesis),
		step("C", olympiad.StepDeduction, "A", "B"),
	}
	g, err := Layout(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a, _ := g.Node("A")
	b, _ := g.Node("B")
	c, _ := g.Node("C")
	if a.X != 200 || b.X != 300 {
		t.Errorf("siblings: got A.x=%v B.x=%v, want 200 and 300", a.X, b.X)
	}
	if c.X != 250 || c.Level != 1 {
		t.Errorf("C: got x=%v level=%d", c.X, c.Level)
	}
	rows := g.ByLevel()
	if len(rows) != 2 || len(rows[0]) != 2 || len(rows[1]) != 1 {
		t.Errorf("ByLevel: got %v", rows)
	}
}

func TestLayout_ForwardReference(t *testing.T) {
	// Dependencies may appear later in the trace than the step using them.
	steps := []olympiad.ReasoningStep{
		step("S2", olympiad.StepDeduction, "S1"),
		step("S1", olympiad.StepHypothesis),
	}
	g, err := Layout(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Nodes[0].ID != "S1" || g.Nodes[1].ID != "S2" {
		t.Errorf("got order %s,%s, want S1,S2", g.Nodes[0].ID, g.Nodes[1].ID)
	}
}

func TestLayout_Dangling(t *testing.T) {
	steps := []olympiad.ReasoningStep{
		step("S1", olympiad.StepHypothesis),
		step("S2", olympiad.StepDeduction, "S9"),
		step("S3", olympiad.StepDeduction, "S1", "S8"),
	}
	g, err := Layout(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, _ := g.Node("S2")
	if s2.Level != 0 {
		t.Errorf("S2 with only a missing dependency: got level %d, want 0", s2.Level)
	}
	s3, _ := g.Node("S3")
	if s3.Level != 1 {
		t.Errorf("S3: got level %d, want 1", s3.Level)
	}
	if len(g.Edges) != 1 {
		t.Errorf("got %d edges, want 1", len(g.Edges))
	}
	want := []DanglingRef{{StepID: "S2", Missing: "S9"}, {StepID: "S3", Missing: "S8"}}
	if len(g.Dangling) != len(want) {
		t.Fatalf("got dangling %v, want %v", g.Dangling, want)
	}
	for i := range want {
		if g.Dangling[i] != want[i] {
			t.Errorf("dangling %d: got %+v, want %+v", i, g.Dangling[i], want[i])
		}
	}
}

func TestLayout_Duplicates(t *testing.T) {
	steps := []olympiad.ReasoningStep{
		step("S1", olympiad.StepHypothesis),
		step("S1", olympiad.StepLemma),
		step("S2", olympiad.StepDeduction, "S1", "S1"),
	}
	g, err := Layout(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Errorf("got %d nodes, want 2", len(g.Nodes))
	}
	if n, _ := g.Node("S1"); n.Type != olympiad.StepHypothesis {
		t.Errorf("first occurrence should win, got type %s", n.Type)
	}
	if len(g.Duplicates) != 1 || g.Duplicates[0] != "S1" {
		t.Errorf("got duplicates %v", g.Duplicates)
	}
	if len(g.Edges) != 2 {
		t.Errorf("each dependency reference should produce an edge, got %d", len(g.Edges))
	}
}

func TestLayout_RepeatedReferenceEdges(t *testing.T) {
	steps := []olympiad.ReasoningStep{
		step("S1", olympiad.StepHypothesis),
		step("S2", olympiad.StepDeduction, "S1", "S1", "X"),
	}
	g, err := Layout(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Edge{{Source: "S1", Target: "S2"}, {Source: "S1", Target: "S2"}}
	if len(g.Edges) != len(want) {
		t.Fatalf("got edges %v, want %v", g.Edges, want)
	}
	for i := range want {
		if g.Edges[i] != want[i] {
			t.Errorf("edge %d: got %+v, want %+v", i, g.Edges[i], want[i])
		}
	}
	if len(g.Dangling) != 1 || g.Dangling[0] != (DanglingRef{StepID: "S2", Missing: "X"}) {
		t.Errorf("got dangling %v", g.Dangling)
	}
	if s2, _ := g.Node("S2"); s2.Level != 1 {
		t.Errorf("S2: got level %d, want 1", s2.Level)
	}
}

func TestLayout_Cycle(t *testing.T) {
	tests := []struct {
		name  string
		steps []olympiad.ReasoningStep
	}{
		{"self", []olympiad.ReasoningStep{step("S1", olympiad.StepLemma, "S1")}},
		{"pair", []olympiad.ReasoningStep{
			step("S1", olympiad.StepLemma, "S2"),
			step("S2", olympiad.StepLemma, "S1"),
		}},
		{"behind a root", []olympiad.ReasoningStep{
			step("S0", olympiad.StepHypothesis),
			step("S1", olympiad.StepLemma, "S0", "S3"),
			step("S2", olympiad.StepLemma, "S1"),
			step("S3", olympiad.StepLemma, "S2"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Layout(tt.steps)
			if !errors.Is(err, ErrCyclicDependency) {
				t.Fatalf("got %v, want ErrCyclicDependency", err)
			}
			var ce *CycleError
			if !errors.As(err, &ce) {
				t.Fatalf("got %T, want *CycleError", err)
			}
			if ce.Path[0] != ce.Path[len(ce.Path)-1] {
				t.Errorf("cycle path should be closed, got %v", ce.Path)
			}
		})
	}
}

func TestLayout_Deterministic(t *testing.T) {
	steps := []olympiad.ReasoningStep{
		step("H1", olympiad.StepHypothesis),
		step("H2", olympiad.StepHypothesis),
		step("L1", olympiad.StepLemma, "H1"),
		step("D1", olympiad.StepDeduction, "H2", "L1"),
		step("C", olympiad.StepConclusion, "D1", "H1"),
	}
	first, err := Layout(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		g, _ := Layout(steps)
		for j := range g.Nodes {
			if g.Nodes[j] != first.Nodes[j] {
				t.Fatalf("run %d node %d: got %+v, want %+v", i, j, g.Nodes[j], first.Nodes[j])
			}
		}
	}
}

func TestLayout_EdgesPointUp(t *testing.T) {
	steps := []olympiad.ReasoningStep{
		step("H1", olympiad.StepHypothesis),
		step("L1", olympiad.StepLemma, "H1"),
		step("D1", olympiad.StepDeduction, "L1", "H1"),
		step("C", olympiad.StepConclusion, "D1"),
	}
	g, err := Layout(steps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, e := range g.Edges {
		src, _ := g.Node(e.Source)
		dst, _ := g.Node(e.Target)
		if src.Level >= dst.Level {
			t.Errorf("edge %s->%s: level %d not below %d", e.Source, e.Target, src.Level, dst.Level)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		steps   []olympiad.ReasoningStep
		wantErr []string
	}{
		{"valid", []olympiad.ReasoningStep{
			step("S1", olympiad.StepHypothesis),
			step("S2", olympiad.StepConclusion, "S1"),
		}, nil},
		{"duplicate", []olympiad.ReasoningStep{
			step("S1", olympiad.StepHypothesis),
			step("S1", olympiad.StepHypothesis),
		}, []string{`duplicate step ID: "S1"`}},
		{"dangling", []olympiad.ReasoningStep{
			step("S1", olympiad.StepDeduction, "S7"),
		}, []string{`step "S1" references nonexistent step "S7"`}},
		{"cycle", []olympiad.ReasoningStep{
			step("S1", olympiad.StepHypothesis),
			step("S2", olympiad.StepLemma, "S3"),
			step("S3", olympiad.StepLemma, "S2"),
		}, []string{"cycle detected involving steps: S2, S3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.steps)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err, want)
				}
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	g, err := Layout([]olympiad.ReasoningStep{
		step("S1", olympiad.StepHypothesis),
		step("S2", olympiad.StepConclusion, "S1"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := RenderSVG(g)
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("output should start with <svg, got %q", out[:20])
	}
	for _, want := range []string{"#ec4899", "#22d3ee", "<line", "Hypothesis (S1)"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Count(out, "<circle") != 2 {
		t.Errorf("got %d circles, want 2", strings.Count(out, "<circle"))
	}
}

func TestTypeColor_Default(t *testing.T) {
	if got := TypeColor("Remark"); got != "#64748b" {
		t.Errorf("got %s, want #64748b", got)
	}
}
