package studio

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/session"
	"github.com/abhisek/synthetica/internal/ui/components"
	"github.com/abhisek/synthetica/internal/ui/layout"
	"github.com/abhisek/synthetica/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	tabs := s.renderTabs()

	if layout.IsWide(width) {
		leftW := width * 2 / 5
		rightW := width - leftW - 1
		left := s.renderInputs(leftW)
		right := s.renderResults(rightW, height-lipgloss.Height(tabs))
		return lipgloss.JoinVertical(lipgloss.Left,
			tabs,
			lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		)
	}

	inputs := s.renderInputs(width)
	rest := height - lipgloss.Height(tabs) - lipgloss.Height(inputs)
	return lipgloss.JoinVertical(lipgloss.Left, tabs, inputs, s.renderResults(width, rest))
}

func (s *Screen) renderTabs() string {
	t := s.text()
	names := map[session.Mode]string{
		session.ModeSolve:     t.ModeSolve,
		session.ModeGenerate:  t.ModeGenerate,
		session.ModeWorkbench: t.ModeWorkbench,
	}
	var parts []string
	for i, m := range session.AllModes() {
		label := fmt.Sprintf("F%d %s", i+1, names[m])
		if m == s.state.Mode {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *Screen) renderInputs(width int) string {
	t := s.text()
	w := components.ContentWidth(width)
	var b strings.Builder

	switch s.state.Mode {
	case session.ModeSolve:
		s.problem.SetWidth(w)
		b.WriteString(theme.Label.Render(t.InputLabel) + "\n")
		b.WriteString(s.problem.View() + "\n\n")
		b.WriteString(s.subjectSelector(t) + "\n")
		b.WriteString(s.difficultySelector(t) + "\n\n")
		b.WriteString(s.button(t.SynthesizeButton, t.SynthesizingButton))
	case session.ModeGenerate:
		s.concepts.SetWidth(w)
		b.WriteString(s.subjectSelector(t) + "\n")
		b.WriteString(s.difficultySelector(t) + "\n\n")
		b.WriteString(s.concepts.View() + "\n\n")
		b.WriteString(s.button(t.GenerateButton, t.GeneratingButton))
	case session.ModeWorkbench:
		s.step.SetWidth(w)
		b.WriteString(theme.Label.Render(t.WorkbenchProblemStatement) + "\n")
		b.WriteString(components.Wrap(s.state.Problem, w) + "\n\n")
		b.WriteString(s.step.View() + "\n\n")
		b.WriteString(s.button(t.WorkbenchAddStepButton, t.WorkbenchVerifyingButton))
	}

	if s.state.Err != nil {
		b.WriteString("\n" + components.ErrorBanner(s.errorTitle(t), s.state.Err.Error(), w))
	}
	return components.Card("", b.String(), w)
}

func (s *Screen) button(label, busy string) string {
	btn := components.NewButton(label, busy, "Ctrl+S")
	btn.Busy = s.state.Loading
	return btn.View(s.spin.View())
}

func (s *Screen) errorTitle(t *i18n.Strings) string {
	switch s.lastOp {
	case session.OpGenerate:
		return t.GenerationFailed
	case session.OpVerify:
		return t.WorkbenchVerifyFailed
	}
	return t.SynthesisFailed
}

func (s *Screen) subjectSelector(t *i18n.Strings) string {
	all := olympiad.AllSubjects()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = t.Subject(v)
	}
	return components.NewSelector(t.DomainLabel, names, slices.Index(all, s.state.Subject)).View("F5")
}

func (s *Screen) difficultySelector(t *i18n.Strings) string {
	all := olympiad.AllDifficulties()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = t.Difficulty(v)
	}
	return components.NewSelector(t.DifficultyLabel, names, slices.Index(all, s.state.Difficulty)).View("F6")
}

func (s *Screen) renderResults(width, height int) string {
	w := components.ContentWidth(width)
	var body, title string
	t := s.text()
	switch s.state.Mode {
	case session.ModeSolve:
		title, body = t.SynthesisOutputTitle, s.renderSynthesis(t, w-2)
	case session.ModeGenerate:
		title, body = t.GeneratedProblemTitle, s.renderGenerated(t, w-2)
	case session.ModeWorkbench:
		title, body = t.WorkbenchTitle, s.renderWorkbench(t, w-2)
	}

	s.results.SetWidth(w)
	s.results.SetHeight(max(height-3, 3))
	s.results.SetContent(body)
	return components.Card(title, s.results.View(), w)
}

func (s *Screen) renderSynthesis(t *i18n.Strings, w int) string {
	st := s.state
	if st.Loading {
		return s.spin.View() + " " + theme.Hint.Render(t.ReasoningTraceGenerating)
	}
	if st.Synthesis == nil {
		return theme.Hint.Render(t.ReasoningTraceAwaiting)
	}

	res := st.Synthesis
	sol, _ := st.CurrentSolution()
	var b strings.Builder

	b.WriteString(theme.Label.Render(t.SolutionMethods) + "\n")
	for i, m := range res.Solutions {
		line := fmt.Sprintf("%d. %s", i+1, m.MethodName)
		if i == st.Selected {
			b.WriteString(theme.Selected.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("  "+line) + "\n")
		}
	}

	elegance := lipgloss.NewStyle().Foreground(theme.EleganceColor(sol.Elegance)).Bold(true).
		Render(t.Elegance(sol.Elegance))
	fmt.Fprintf(&b, "\n%s %s   %s %s   %s %s\n",
		theme.Label.Render(t.SolutionElegance), elegance,
		theme.Label.Render(t.DifficultyLabel), t.Difficulty(res.Difficulty),
		theme.Label.Render(t.StatusSolveTime), formatSolveTime(res.SolveTime),
	)
	fmt.Fprintf(&b, "%s %s\n\n", theme.Label.Render(t.DomainLabel), t.Subject(res.Subject))

	b.WriteString(theme.Title.Render(t.FormalizationTitle) + "\n")
	b.WriteString(components.Wrap(sol.Formalization, w) + "\n\n")

	b.WriteString(theme.Title.Render(t.ReasoningTraceTitle) + "\n")
	b.WriteString(renderSteps(t, sol.ReasoningTrace, w))

	if len(res.Interconnections) > 0 {
		b.WriteString("\n" + theme.Title.Render(t.InterconnectTitle) + "\n")
		for _, ic := range res.Interconnections {
			fmt.Fprintf(&b, "  %s → %s\n", ic.Source, ic.Target)
		}
	}
	if sol.HasDiagram() {
		b.WriteString("\n" + theme.Hint.Render("Ctrl+G: "+t.VisualizationTabGraph+" / "+t.VisualizationTabDiagram))
	}
	return b.String()
}

func formatSolveTime(sec float64) string {
	if sec < 1 {
		return fmt.Sprintf("%.0fms", sec*1000)
	}
	return fmt.Sprintf("%.1fs", sec)
}

func renderSteps(t *i18n.Strings, steps []olympiad.ReasoningStep, w int) string {
	var b strings.Builder
	for _, st := range steps {
		fmt.Fprintf(&b, "%s %s\n", lipgloss.NewStyle().Bold(true).Render(st.ID), theme.StepBadge(st.Type))
		b.WriteString(components.Wrap(st.Statement, w) + "\n")
		if st.Justification != "" {
			b.WriteString(theme.Hint.Render(components.Wrap(t.StepJustification+": "+st.Justification, w)) + "\n")
		}
		if len(st.Dependencies) > 0 {
			b.WriteString(theme.Hint.Render(t.StepDependencies+": "+strings.Join(st.Dependencies, ", ")) + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Screen) renderGenerated(t *i18n.Strings, w int) string {
	st := s.state
	if st.Loading {
		return s.spin.View() + " " + theme.Hint.Render(t.GeneratingButton)
	}
	gp := st.Generated
	if gp == nil {
		return theme.Hint.Render(t.FormalizationAwaiting)
	}
	var b strings.Builder
	b.WriteString(components.Wrap(gp.Problem, w) + "\n\n")
	fmt.Fprintf(&b, "%s %s   %s %s\n\n",
		theme.Label.Render(t.DomainLabel), t.Subject(gp.Subject),
		theme.Label.Render(t.DifficultyLabel), t.Difficulty(gp.Difficulty),
	)
	b.WriteString(theme.ButtonActive.Render("▸ " + t.SolveThisProblemButton + "  [Ctrl+O]"))
	return b.String()
}

func (s *Screen) renderWorkbench(t *i18n.Strings, w int) string {
	st := s.state
	var b strings.Builder

	b.WriteString(theme.Title.Render(t.WorkbenchProofSteps) + "\n")
	if len(st.AcceptedSteps) == 0 {
		b.WriteString(theme.Hint.Render(t.WorkbenchAwaitingInput) + "\n\n")
	} else {
		b.WriteString(renderSteps(t, st.AcceptedSteps, w))
	}

	if st.Loading {
		b.WriteString(s.spin.View() + " " + theme.Hint.Render(t.WorkbenchVerifyingButton))
		return b.String()
	}

	v := st.Verification
	if v == nil {
		return b.String()
	}
	b.WriteString(theme.Title.Render(t.WorkbenchAIFeedback) + "\n")
	if v.IsValid {
		b.WriteString(theme.Valid.Render("✓ ") + components.Wrap(v.Feedback, w-2) + "\n")
	} else {
		b.WriteString(theme.Invalid.Render("✗ ") + components.Wrap(v.Feedback, w-2) + "\n")
	}
	if len(v.Suggestions) > 0 {
		b.WriteString("\n" + theme.Title.Render(t.WorkbenchAISuggestions) + "\n")
		for i, sug := range v.Suggestions {
			if i >= 9 {
				break
			}
			fmt.Fprintf(&b, "%s %s\n", theme.Label.Render(fmt.Sprintf("Alt+%d", i+1)), components.Wrap(sug, w-7))
		}
	}
	return b.String()
}
