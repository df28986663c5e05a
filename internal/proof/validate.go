package proof

import (
	"fmt"
	"strings"

	"github.com/abhisek/synthetica/internal/olympiad"
)

// Validate performs all structural checks on a reasoning trace. It returns
// a combined error describing every problem found, or nil if the trace is
// a well-formed DAG with unique IDs and no dangling references.
func Validate(steps []olympiad.ReasoningStep) error {
	var errs []string

	idSet := make(map[string]bool, len(steps))
	for _, s := range steps {
		if s.ID == "" {
			errs = append(errs, "step with empty ID")
			continue
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate step ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	for _, s := range steps {
		for _, dep := range s.Dependencies {
			if !idSet[dep] {
				errs = append(errs, fmt.Sprintf("step %q references nonexistent step %q", s.ID, dep))
			}
		}
	}

	// Kahn's algorithm over the known edges.
	inDegree := make(map[string]int, len(steps))
	adj := make(map[string][]string)
	var order []string
	for _, s := range steps {
		if _, seen := inDegree[s.ID]; seen {
			continue
		}
		order = append(order, s.ID)
		inDegree[s.ID] = 0
	}
	counted := make(map[string]bool, len(steps))
	for _, s := range steps {
		if counted[s.ID] {
			continue
		}
		counted[s.ID] = true
		for _, dep := range s.Dependencies {
			if !idSet[dep] {
				continue
			}
			inDegree[s.ID]++
			adj[dep] = append(adj[dep], s.ID)
		}
	}

	var queue []string
	for _, id := range order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range adj[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if visited < len(order) {
		var cycle []string
		for _, id := range order {
			if inDegree[id] > 0 {
				cycle = append(cycle, id)
			}
		}
		errs = append(errs, fmt.Sprintf("cycle detected involving steps: %s", strings.Join(cycle, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("reasoning trace validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
