package proof

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/synthetica/internal/olympiad"
)

// Layout geometry. Levels are centered within a band of ChartWidth and
// stacked YGap apart; siblings on a level are XGap apart.
const (
	ChartWidth = 500.0
	XGap       = 100.0
	YGap       = 100.0
)

// ErrCyclicDependency matches any *CycleError.
var ErrCyclicDependency = errors.New("cyclic dependency")

// CycleError reports a dependency cycle found while levelling a trace.
// Path starts and ends with the same step ID.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic dependency: %s", strings.Join(e.Path, " -> "))
}

func (e *CycleError) Is(target error) bool { return target == ErrCyclicDependency }

// Node is a positioned reasoning step.
type Node struct {
	ID    string
	X     float64
	Y     float64
	Level int
	Label string
	Type  olympiad.StepType
}

// Edge points from a dependency to the step that uses it.
type Edge struct {
	Source string
	Target string
}

// DanglingRef is a dependency ID that names no step in the trace.
type DanglingRef struct {
	StepID  string
	Missing string
}

// Graph is the laid-out proof structure.
type Graph struct {
	// Nodes are ordered by level, then by position in the trace.
	Nodes []Node
	Edges []Edge

	// Dangling lists references that were skipped. They neither raise the
	// level of the referencing step nor produce an edge.
	Dangling []DanglingRef

	// Duplicates lists step IDs that appeared more than once. Only the
	// first occurrence is laid out.
	Duplicates []string

	// Depth is the number of levels (max level + 1), 0 for an empty graph.
	Depth int
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// ByLevel groups node IDs by level.
func (g *Graph) ByLevel() [][]Node {
	out := make([][]Node, g.Depth)
	for _, n := range g.Nodes {
		out[n.Level] = append(out[n.Level], n)
	}
	return out
}

// Layout assigns every step a level (one plus the highest level among its
// dependencies, zero without any) and a position. It returns a
// *CycleError when the dependencies are not acyclic.
func Layout(steps []olympiad.ReasoningStep) (*Graph, error) {
	lv := newLeveler(steps)
	levels, err := lv.all()
	if err != nil {
		return nil, err
	}

	g := &Graph{Duplicates: lv.duplicates}

	rows := make(map[int][]*olympiad.ReasoningStep)
	for _, s := range lv.order {
		l := levels[s.ID]
		rows[l] = append(rows[l], s)
		if l+1 > g.Depth {
			g.Depth = l + 1
		}
	}

	for level := 0; level < g.Depth; level++ {
		row := rows[level]
		width := float64(len(row)-1) * XGap
		startX := (ChartWidth - width) / 2
		for i, s := range row {
			g.Nodes = append(g.Nodes, Node{
				ID:    s.ID,
				X:     startX + float64(i)*XGap,
				Y:     float64(level) * YGap,
				Level: level,
				Label: fmt.Sprintf("%s (%s)", s.Type, s.ID),
				Type:  s.Type,
			})
		}
	}

	// One edge per reference, in trace order. A dependency listed twice
	// draws twice.
	for _, s := range lv.order {
		for _, dep := range s.Dependencies {
			if _, ok := lv.byID[dep]; !ok {
				g.Dangling = append(g.Dangling, DanglingRef{StepID: s.ID, Missing: dep})
				continue
			}
			g.Edges = append(g.Edges, Edge{Source: dep, Target: s.ID})
		}
	}

	return g, nil
}

// Levels returns the level of every step keyed by ID.
func Levels(steps []olympiad.ReasoningStep) (map[string]int, error) {
	return newLeveler(steps).all()
}

type visitState uint8

const (
	unvisited visitState = iota
	visiting
	visited
)

// leveler computes longest-path levels with memoized depth-first search.
type leveler struct {
	byID       map[string]*olympiad.ReasoningStep
	order      []*olympiad.ReasoningStep
	duplicates []string
	levels     map[string]int
	state      map[string]visitState
	stack      []string
}

func newLeveler(steps []olympiad.ReasoningStep) *leveler {
	lv := &leveler{
		byID:   make(map[string]*olympiad.ReasoningStep, len(steps)),
		levels: make(map[string]int, len(steps)),
		state:  make(map[string]visitState, len(steps)),
	}
	for i := range steps {
		s := &steps[i]
		if _, dup := lv.byID[s.ID]; dup {
			lv.duplicates = append(lv.duplicates, s.ID)
			continue
		}
		lv.byID[s.ID] = s
		lv.order = append(lv.order, s)
	}
	return lv
}

func (lv *leveler) all() (map[string]int, error) {
	for _, s := range lv.order {
		if _, err := lv.level(s.ID); err != nil {
			return nil, err
		}
	}
	return lv.levels, nil
}

func (lv *leveler) level(id string) (int, error) {
	switch lv.state[id] {
	case visited:
		return lv.levels[id], nil
	case visiting:
		return 0, lv.cycleFrom(id)
	}

	lv.state[id] = visiting
	lv.stack = append(lv.stack, id)

	level := 0
	for _, dep := range lv.byID[id].Dependencies {
		if _, ok := lv.byID[dep]; !ok {
			continue
		}
		dl, err := lv.level(dep)
		if err != nil {
			return 0, err
		}
		if dl+1 > level {
			level = dl + 1
		}
	}

	lv.stack = lv.stack[:len(lv.stack)-1]
	lv.state[id] = visited
	lv.levels[id] = level
	return level, nil
}

func (lv *leveler) cycleFrom(id string) error {
	start := 0
	for i, s := range lv.stack {
		if s == id {
			start = i
			break
		}
	}
	path := make([]string, 0, len(lv.stack)-start+1)
	path = append(path, lv.stack[start:]...)
	path = append(path, id)
	return &CycleError{Path: path}
}
