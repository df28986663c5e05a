// Package graph renders the proof-structure graph of a solution and saves
// its diagrams to disk.
package graph

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/synthetica/internal/diagram"
	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/proof"
	"github.com/abhisek/synthetica/internal/screen"
	"github.com/abhisek/synthetica/internal/ui/components"
	"github.com/abhisek/synthetica/internal/ui/layout"
	"github.com/abhisek/synthetica/internal/ui/theme"
)

// Tab selects what the screen shows.
type Tab int

const (
	TabGraph Tab = iota
	TabDiagram
)

// Screen shows one solution's proof graph or geometric diagram.
type Screen struct {
	strings  *i18n.Strings
	solution olympiad.Solution
	name     string
	svgDir   string
	logger   *zap.Logger

	graph    *proof.Graph
	graphErr error
	diagram  *diagram.Diagram
	diagErr  error

	tab    Tab
	status string
	vp     viewport.Model
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New lays out the solution's trace. name prefixes saved files.
func New(t *i18n.Strings, sol olympiad.Solution, name, svgDir string, logger *zap.Logger) *Screen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Screen{
		strings:  t,
		solution: sol,
		name:     name,
		svgDir:   svgDir,
		logger:   logger,
		vp:       viewport.New(viewport.WithWidth(80), viewport.WithHeight(20)),
	}
	s.graph, s.graphErr = proof.Layout(sol.ReasoningTrace)
	if sol.HasDiagram() {
		s.diagram, s.diagErr = diagram.Parse(sol.GeometricVisualization)
	}
	return s
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return s.strings.VisualizationTitle }

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Graph/Diagram"},
		{Key: "s", Description: "Save graph SVG"},
	}
	if s.solution.HasDiagram() {
		hints = append(hints, layout.KeyHint{Key: "d", Description: "Save diagram"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "tab":
		if s.tab == TabGraph {
			s.tab = TabDiagram
		} else {
			s.tab = TabGraph
		}
		s.vp.GotoTop()
		return s, nil
	case "s":
		s.saveGraph()
		return s, nil
	case "d":
		s.saveDiagram()
		return s, nil
	}
	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *Screen) saveGraph() {
	if s.graph == nil {
		s.status = theme.Invalid.Render("Cannot save: " + s.graphErr.Error())
		return
	}
	path, err := diagram.Save(s.svgDir, s.name+"-proof", proof.RenderSVG(s.graph))
	s.report("proof graph", path, err)
}

func (s *Screen) saveDiagram() {
	if !s.solution.HasDiagram() {
		s.status = theme.Hint.Render("This solution has no geometric diagram.")
		return
	}
	path, err := diagram.Save(s.svgDir, s.name+"-diagram", s.solution.GeometricVisualization)
	s.report("diagram", path, err)
}

func (s *Screen) report(what, path string, err error) {
	if err != nil {
		s.logger.Warn("save svg failed", zap.String("kind", what), zap.Error(err))
		s.status = theme.Invalid.Render(fmt.Sprintf("Saving %s failed: %v", what, err))
		return
	}
	s.logger.Info("saved svg", zap.String("kind", what), zap.String("path", path))
	s.status = theme.Valid.Render(fmt.Sprintf("Saved %s to %s", what, path))
}

func (s *Screen) View(width, height int) string {
	w := components.ContentWidth(width)
	tabs := s.renderTabs()

	var body string
	if s.tab == TabGraph {
		body = RenderGraph(s.graph, s.graphErr, s.strings)
	} else {
		body = s.renderDiagram()
	}

	s.vp.SetWidth(w)
	s.vp.SetHeight(max(height-6, 3))
	s.vp.SetContent(components.Wrap(body, w-2))

	parts := []string{tabs, components.Card(s.solution.MethodName, s.vp.View(), w)}
	if s.status != "" {
		parts = append(parts, s.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *Screen) renderTabs() string {
	graphTab, diagTab := theme.TabInactive, theme.TabInactive
	if s.tab == TabGraph {
		graphTab = theme.TabActive
	} else {
		diagTab = theme.TabActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		graphTab.Render(s.strings.VisualizationTabGraph),
		diagTab.Render(s.strings.VisualizationTabDiagram),
	)
}

func (s *Screen) renderDiagram() string {
	if !s.solution.HasDiagram() {
		return theme.Hint.Render("No geometric diagram for this solution.")
	}
	if s.diagErr != nil {
		return theme.Invalid.Render("Diagram could not be read: " + s.diagErr.Error())
	}
	d := s.diagram
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s x %s", theme.Label.Render("Canvas"), d.Width, d.Height)
	if d.ViewBox != "" {
		fmt.Fprintf(&b, "  (viewBox %s)", d.ViewBox)
	}
	fmt.Fprintf(&b, "\n%s %d   %s %d\n", theme.Label.Render("Points"), d.Points, theme.Label.Render("Lines"), d.Lines)
	if len(d.Labels) > 0 {
		fmt.Fprintf(&b, "%s %s\n", theme.Label.Render("Labels"), strings.Join(d.Labels, ", "))
	}
	b.WriteString(theme.Hint.Render("\nPress d to write the SVG and open it in a browser."))
	return b.String()
}

// RenderGraph draws a laid-out graph as text, one block per level.
func RenderGraph(g *proof.Graph, err error, t *i18n.Strings) string {
	if err != nil {
		var cycle *proof.CycleError
		if errors.As(err, &cycle) {
			return theme.Invalid.Render("The reasoning trace has a cycle: " + strings.Join(cycle.Path, " → "))
		}
		return theme.Invalid.Render(err.Error())
	}
	if g == nil || len(g.Nodes) == 0 {
		return theme.Hint.Render(t.VisualizationAwaiting)
	}

	incoming := make(map[string][]string)
	for _, e := range g.Edges {
		incoming[e.Target] = append(incoming[e.Target], e.Source)
	}

	var b strings.Builder
	for level, nodes := range g.ByLevel() {
		b.WriteString(theme.Label.Render(fmt.Sprintf("Level %d", level)) + "\n")
		for _, n := range nodes {
			fmt.Fprintf(&b, "  ● %s %s", lipgloss.NewStyle().Bold(true).Render(n.ID), theme.StepBadge(n.Type))
			if deps := incoming[n.ID]; len(deps) > 0 {
				fmt.Fprintf(&b, "  ← %s", strings.Join(deps, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(g.Dangling) > 0 {
		b.WriteString("\n" + theme.Hint.Render("Unresolved references:") + "\n")
		for _, d := range g.Dangling {
			fmt.Fprintf(&b, "  %s → %s\n", d.StepID, d.Missing)
		}
	}
	if len(g.Duplicates) > 0 {
		b.WriteString(theme.Hint.Render("Duplicate step IDs: "+strings.Join(g.Duplicates, ", ")) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
