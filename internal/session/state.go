package session

import (
	"errors"
	"strings"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
)

var (
	// ErrBusy is returned by Begin while another call is in flight.
	ErrBusy = errors.New("a request is already in progress")

	// ErrEmptyProblem is returned when solving without a problem statement.
	ErrEmptyProblem = errors.New("problem statement is empty")

	// ErrEmptyStep is returned when verifying without a proposed step.
	ErrEmptyStep = errors.New("proposed step is empty")
)

// Ticket identifies one in-flight call. A response is only applied while
// its ticket is current.
type Ticket struct {
	Op  Op
	gen uint64
}

// State is the single in-memory container behind the UI. It is not safe
// for concurrent use; the UI loop owns it and applies call results through
// the Apply methods.
type State struct {
	Mode     Mode
	Language i18n.Language

	// Inputs. Problem survives every reset.
	Problem      string
	Subject      olympiad.Subject
	Difficulty   olympiad.Difficulty
	KeyConcepts  string
	ProposedStep string

	Loading bool
	Err     error

	Synthesis *olympiad.SynthesisResult
	Selected  int

	Generated *olympiad.GeneratedProblem

	AcceptedSteps []olympiad.ReasoningStep
	Verification  *olympiad.VerificationResult

	gen     uint64
	pending Op
}

// New returns a State in solve mode with the preset problem loaded.
func New(lang i18n.Language) *State {
	if !lang.Valid() {
		lang = i18n.DefaultLanguage
	}
	return &State{
		Mode:       ModeSolve,
		Language:   lang,
		Problem:    olympiad.PresetPrompt,
		Subject:    olympiad.SubjectGeometry,
		Difficulty: olympiad.DifficultyIMO,
	}
}

// SetMode switches mode and drops every transient result. Switching to the
// current mode does nothing.
func (s *State) SetMode(m Mode) {
	if m == s.Mode || !m.Valid() {
		return
	}
	s.Mode = m
	s.reset()
}

// SetLanguage switches the display language with the same reset as SetMode.
func (s *State) SetLanguage(l i18n.Language) {
	if l == s.Language || !l.Valid() {
		return
	}
	s.Language = l
	s.reset()
}

// reset clears results, errors and workbench progress and invalidates any
// in-flight ticket. Inputs are kept.
func (s *State) reset() {
	s.Synthesis = nil
	s.Selected = 0
	s.Generated = nil
	s.Err = nil
	s.AcceptedSteps = nil
	s.Verification = nil
	s.Loading = false
	s.gen++
}

// Begin starts op. It refuses while another call is in flight or when the
// input op needs is empty. On success the error and the result slot of op
// are cleared.
func (s *State) Begin(op Op) (Ticket, error) {
	if s.Loading {
		return Ticket{}, ErrBusy
	}
	switch op {
	case OpSynthesize:
		if strings.TrimSpace(s.Problem) == "" {
			return Ticket{}, ErrEmptyProblem
		}
		s.Synthesis = nil
	case OpGenerate:
		s.Generated = nil
		s.Synthesis = nil
	case OpVerify:
		if strings.TrimSpace(s.ProposedStep) == "" {
			return Ticket{}, ErrEmptyStep
		}
		s.Verification = nil
	}

	s.Err = nil
	s.Loading = true
	s.gen++
	s.pending = op
	return Ticket{Op: op, gen: s.gen}, nil
}

// current reports whether t is the ticket of the call in flight.
func (s *State) current(t Ticket) bool {
	return s.Loading && t.gen == s.gen && t.Op == s.pending
}

// finish clears the loading flag and records err.
func (s *State) finish(err error) {
	s.Loading = false
	s.Err = err
}

// ApplySynthesis stores the outcome of a synthesize call. It returns false
// when the ticket is stale and the outcome was discarded.
func (s *State) ApplySynthesis(t Ticket, res *olympiad.SynthesisResult, err error) bool {
	if !s.current(t) {
		return false
	}
	s.finish(err)
	if err != nil || res == nil {
		s.Synthesis = nil
		return true
	}
	s.Synthesis = res
	s.Selected = 0
	if res.Subject.Valid() {
		s.Subject = res.Subject
	}
	return true
}

// ApplyGeneration stores the outcome of a generate call.
func (s *State) ApplyGeneration(t Ticket, gp *olympiad.GeneratedProblem, err error) bool {
	if !s.current(t) {
		return false
	}
	s.finish(err)
	if err != nil {
		s.Generated = nil
		return true
	}
	s.Generated = gp
	return true
}

// ApplyVerification stores the verdict of a verify call and appends the
// formalized step when the verdict accepts it.
func (s *State) ApplyVerification(t Ticket, v *olympiad.VerificationResult, err error) bool {
	if !s.current(t) {
		return false
	}
	s.finish(err)
	if err != nil {
		s.Verification = nil
		return true
	}
	s.Verification = v
	if v.Accepted() {
		s.AcceptedSteps = append(s.AcceptedSteps, *v.FormalizedStep)
		s.ProposedStep = ""
	}
	return true
}

// SelectSolution picks the displayed solution. Out-of-range indexes are
// ignored and reported as false.
func (s *State) SelectSolution(i int) bool {
	if _, ok := s.Synthesis.Solution(i); !ok {
		return false
	}
	s.Selected = i
	return true
}

// CurrentSolution returns the selected solution, if any.
func (s *State) CurrentSolution() (olympiad.Solution, bool) {
	return s.Synthesis.Solution(s.Selected)
}

// AdoptGenerated moves the generated problem into solve mode as the new
// problem statement.
func (s *State) AdoptGenerated() bool {
	gp := s.Generated
	if gp == nil || s.Loading {
		return false
	}
	s.Problem = gp.Problem
	if gp.Subject.Valid() {
		s.Subject = gp.Subject
	}
	if gp.Difficulty.Valid() {
		s.Difficulty = gp.Difficulty
	}
	if s.Mode != ModeSolve {
		s.Mode = ModeSolve
	}
	s.reset()
	return true
}

// SelectClassic loads a classic problem and clears the results it would
// otherwise contradict.
func (s *State) SelectClassic(prompt string) {
	s.Problem = prompt
	s.Synthesis = nil
	s.Selected = 0
	s.Generated = nil
	s.Err = nil
}

// DismissError hides the error banner.
func (s *State) DismissError() {
	s.Err = nil
}

// Strings returns the string table for the active language.
func (s *State) Strings() *i18n.Strings {
	return i18n.For(s.Language)
}
