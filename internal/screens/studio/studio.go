// Package studio is the main screen: the solve, generate and workbench
// modes over a single session.State.
package studio

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/llm"
	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/router"
	"github.com/abhisek/synthetica/internal/screen"
	"github.com/abhisek/synthetica/internal/screens/classics"
	"github.com/abhisek/synthetica/internal/screens/graph"
	"github.com/abhisek/synthetica/internal/session"
	"github.com/abhisek/synthetica/internal/synth"
	"github.com/abhisek/synthetica/internal/ui/components"
	"github.com/abhisek/synthetica/internal/ui/layout"
)

// Options configures the studio.
type Options struct {
	Client synth.Client
	State  *session.State
	Logger *zap.Logger

	// SVGDir is where the graph screen writes exported SVGs.
	SVGDir string
}

// Screen implements screen.Screen for the studio.
type Screen struct {
	state  *session.State
	client synth.Client
	logger *zap.Logger
	svgDir string

	ctx    context.Context
	cancel context.CancelFunc

	problem  textarea.Model
	concepts components.TextInput
	step     components.TextInput
	spin     spinner.Model
	results  viewport.Model

	// lastOp names the failed call in the error banner.
	lastOp session.Op
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the studio. ctx bounds every call the screen starts.
func New(ctx context.Context, opts Options) *Screen {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.State == nil {
		opts.State = session.New(i18n.DefaultLanguage)
	}
	sessionID := uuid.NewString()

	s := &Screen{
		state:   opts.State,
		client:  opts.Client,
		logger:  opts.Logger.With(zap.String("session_id", sessionID)),
		svgDir:  opts.SVGDir,
		ctx:     llm.WithSessionID(ctx, sessionID),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		results: viewport.New(viewport.WithWidth(80), viewport.WithHeight(10)),
	}

	s.problem = textarea.New()
	s.problem.ShowLineNumbers = false
	s.problem.CharLimit = 4000
	s.problem.SetHeight(4)
	s.problem.SetValue(s.state.Problem)

	s.concepts = components.NewTextInput("", "", 200)
	s.step = components.NewTextInput("", "", 1000)
	s.relabel()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.focus()
}

func (s *Screen) Title() string {
	return s.text().HeaderTitle
}

// State exposes the container the screen drives.
func (s *Screen) State() *session.State { return s.state }

func (s *Screen) text() *i18n.Strings { return s.state.Strings() }

func (s *Screen) KeyHints() []layout.KeyHint {
	t := s.text()
	hints := []layout.KeyHint{{Key: "F1-F3/Tab", Description: "Mode"}}
	switch s.state.Mode {
	case session.ModeSolve:
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+S", Description: t.SynthesizeButton},
			layout.KeyHint{Key: "F5/F6", Description: "Subject/Difficulty"},
			layout.KeyHint{Key: "Ctrl+K", Description: "Classics"},
		)
		if s.state.Synthesis != nil {
			hints = append(hints,
				layout.KeyHint{Key: "Ctrl+N/P", Description: "Method"},
				layout.KeyHint{Key: "Ctrl+G", Description: t.VisualizationTabGraph},
			)
		}
	case session.ModeGenerate:
		hints = append(hints,
			layout.KeyHint{Key: "Ctrl+S", Description: t.GenerateButton},
			layout.KeyHint{Key: "F5/F6", Description: "Subject/Difficulty"},
		)
		if s.state.Generated != nil {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+O", Description: t.SolveThisProblemButton})
		}
	case session.ModeWorkbench:
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: t.WorkbenchAddStepButton})
		if v := s.state.Verification; v != nil && len(v.Suggestions) > 0 {
			hints = append(hints, layout.KeyHint{Key: "Alt+1-9", Description: t.WorkbenchAISuggestions})
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+L", Description: s.state.Language.Next().Name()},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case synthesisDoneMsg:
		s.applied("synthesize", s.state.ApplySynthesis(msg.ticket, msg.result, msg.err), msg.err)
		s.results.GotoTop()
		return s, nil

	case generationDoneMsg:
		s.applied("generate", s.state.ApplyGeneration(msg.ticket, msg.problem, msg.err), msg.err)
		return s, nil

	case verificationDoneMsg:
		s.applied("verify", s.state.ApplyVerification(msg.ticket, msg.verdict, msg.err), msg.err)
		s.step.SetValue(s.state.ProposedStep)
		s.results.GotoBottom()
		return s, nil

	case classics.SelectedMsg:
		s.state.SelectClassic(msg.Problem.Prompt)
		s.problem.SetValue(s.state.Problem)
		s.setMode(session.ModeSolve)
		return s, s.focus()

	case spinner.TickMsg:
		if !s.state.Loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) applied(op string, current bool, err error) {
	switch {
	case !current:
		s.logger.Debug("discarded stale response", zap.String("op", op))
	case err != nil:
		s.logger.Warn("call failed", zap.String("op", op), zap.Error(err))
	default:
		s.logger.Info("call completed", zap.String("op", op))
	}
}

func (s *Screen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	switch key {
	case "f1":
		return s, s.setMode(session.ModeSolve)
	case "f2":
		return s, s.setMode(session.ModeGenerate)
	case "f3":
		return s, s.setMode(session.ModeWorkbench)
	case "tab":
		return s, s.setMode(s.state.Mode.Next())
	case "ctrl+l":
		s.syncInputs()
		s.cancelInFlight()
		s.state.SetLanguage(s.state.Language.Next())
		s.relabel()
		return s, nil
	case "ctrl+s":
		return s, s.submit()
	case "f5":
		s.cycleSubject()
		return s, nil
	case "f6":
		s.cycleDifficulty()
		return s, nil
	case "ctrl+n":
		s.state.SelectSolution(s.state.Selected + 1)
		s.results.GotoTop()
		return s, nil
	case "ctrl+p":
		s.state.SelectSolution(s.state.Selected - 1)
		s.results.GotoTop()
		return s, nil
	case "ctrl+o":
		if s.state.AdoptGenerated() {
			s.problem.SetValue(s.state.Problem)
			return s, s.focus()
		}
		return s, nil
	case "ctrl+g":
		return s, s.openGraph()
	case "ctrl+k":
		if s.state.Loading {
			return s, nil
		}
		s.syncInputs()
		scr := classics.New(s.text())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
	case "esc":
		s.state.DismissError()
		return s, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		s.results, cmd = s.results.Update(msg)
		return s, cmd
	}

	if strings.HasPrefix(key, "alt+") && len(key) == 5 && key[4] >= '1' && key[4] <= '9' {
		s.useSuggestion(int(key[4] - '1'))
		return s, nil
	}

	return s, s.updateFocused(msg)
}

// setMode switches mode, abandoning any call in flight.
func (s *Screen) setMode(m session.Mode) tea.Cmd {
	if m == s.state.Mode {
		return nil
	}
	s.syncInputs()
	s.cancelInFlight()
	s.state.SetMode(m)
	s.step.SetValue(s.state.ProposedStep)
	return s.focus()
}

// focus gives keyboard input to the field of the current mode.
func (s *Screen) focus() tea.Cmd {
	s.problem.Blur()
	s.concepts.Blur()
	s.step.Blur()
	switch s.state.Mode {
	case session.ModeGenerate:
		return s.concepts.Focus()
	case session.ModeWorkbench:
		return s.step.Focus()
	default:
		return s.problem.Focus()
	}
}

func (s *Screen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.state.Mode {
	case session.ModeGenerate:
		s.concepts, cmd = s.concepts.Update(msg)
	case session.ModeWorkbench:
		s.step, cmd = s.step.Update(msg)
	default:
		s.problem, cmd = s.problem.Update(msg)
	}
	s.syncInputs()
	return cmd
}

// syncInputs copies the widget values into the state container.
func (s *Screen) syncInputs() {
	s.state.Problem = s.problem.Value()
	s.state.KeyConcepts = s.concepts.Value()
	s.state.ProposedStep = s.step.Value()
}

func (s *Screen) relabel() {
	t := s.text()
	s.problem.Placeholder = t.InputPlaceholder
	s.concepts.SetLabel(t.GenerateConceptsLabel, t.GenerateConceptsPlaceholder)
	s.step.SetLabel(t.WorkbenchStepInputLabel, t.WorkbenchStepInputPlaceholder)
}

func (s *Screen) cycleSubject() {
	all := olympiad.AllSubjects()
	i := slices.Index(all, s.state.Subject)
	s.state.Subject = all[(i+1)%len(all)]
}

func (s *Screen) cycleDifficulty() {
	all := olympiad.AllDifficulties()
	i := slices.Index(all, s.state.Difficulty)
	s.state.Difficulty = all[(i+1)%len(all)]
}

func (s *Screen) useSuggestion(i int) {
	v := s.state.Verification
	if s.state.Mode != session.ModeWorkbench || v == nil || i >= len(v.Suggestions) {
		return
	}
	s.step.SetValue(v.Suggestions[i])
	s.state.ProposedStep = v.Suggestions[i]
}

// submit runs the primary action of the current mode.
func (s *Screen) submit() tea.Cmd {
	if s.client == nil {
		return nil
	}
	s.syncInputs()

	op := session.OpSynthesize
	switch s.state.Mode {
	case session.ModeGenerate:
		op = session.OpGenerate
	case session.ModeWorkbench:
		op = session.OpVerify
	}

	ticket, err := s.state.Begin(op)
	if err != nil {
		s.logger.Debug("action refused", zap.Stringer("op", op), zap.Error(err))
		return nil
	}
	s.lastOp = op

	st := s.state
	ctx, cancel := s.callContext()
	s.logger.Info("call started", zap.Stringer("op", op),
		zap.String("subject", string(st.Subject)),
		zap.String("difficulty", string(st.Difficulty)),
		zap.String("language", string(st.Language)),
	)

	var call tea.Cmd
	switch op {
	case session.OpSynthesize:
		call = synthesizeCmd(ctx, cancel, s.client, ticket, synth.SynthesizeRequest{
			Problem:    st.Problem,
			Subject:    st.Subject,
			Difficulty: st.Difficulty,
			Language:   st.Language,
		})
	case session.OpGenerate:
		call = generateCmd(ctx, cancel, s.client, ticket, synth.GenerateRequest{
			Subject:     st.Subject,
			Difficulty:  st.Difficulty,
			Language:    st.Language,
			KeyConcepts: st.KeyConcepts,
		})
	case session.OpVerify:
		call = verifyCmd(ctx, cancel, s.client, ticket, synth.VerifyRequest{
			Problem:       st.Problem,
			AcceptedSteps: slices.Clone(st.AcceptedSteps),
			ProposedStep:  st.ProposedStep,
			Language:      st.Language,
		})
	}
	return tea.Batch(call, s.spin.Tick)
}

func (s *Screen) openGraph() tea.Cmd {
	sol, ok := s.state.CurrentSolution()
	if !ok || s.state.Mode != session.ModeSolve {
		return nil
	}
	name := solutionFileName(s.state.Problem, s.state.Selected)
	scr := graph.New(s.text(), sol, name, s.svgDir, s.logger)
	return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
}

// solutionFileName derives a short file stem from the problem statement.
func solutionFileName(problem string, index int) string {
	words := strings.Fields(strings.ToLower(problem))
	if len(words) > 5 {
		words = words[:5]
	}
	stem := strings.Join(words, "-")
	if stem == "" {
		stem = "problem"
	}
	return stem + "-m" + strconv.Itoa(index+1)
}
