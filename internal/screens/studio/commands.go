package studio

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/session"
	"github.com/abhisek/synthetica/internal/synth"
)

// synthesisDoneMsg carries the outcome of a synthesize call.
type synthesisDoneMsg struct {
	ticket session.Ticket
	result *olympiad.SynthesisResult
	err    error
}

// generationDoneMsg carries the outcome of a generate call.
type generationDoneMsg struct {
	ticket  session.Ticket
	problem *olympiad.GeneratedProblem
	err     error
}

// verificationDoneMsg carries the verdict of a verify call.
type verificationDoneMsg struct {
	ticket  session.Ticket
	verdict *olympiad.VerificationResult
	err     error
}

// callContext derives a cancellable context for one call and remembers
// its cancel func so a mode or language switch can abandon the call.
func (s *Screen) callContext() (context.Context, context.CancelFunc) {
	s.cancelInFlight()
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	return ctx, cancel
}

func (s *Screen) cancelInFlight() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func synthesizeCmd(ctx context.Context, cancel context.CancelFunc, c synth.Client, t session.Ticket, req synth.SynthesizeRequest) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		res, err := c.Synthesize(ctx, req)
		return synthesisDoneMsg{ticket: t, result: res, err: err}
	}
}

func generateCmd(ctx context.Context, cancel context.CancelFunc, c synth.Client, t session.Ticket, req synth.GenerateRequest) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		gp, err := c.Generate(ctx, req)
		return generationDoneMsg{ticket: t, problem: gp, err: err}
	}
}

func verifyCmd(ctx context.Context, cancel context.CancelFunc, c synth.Client, t session.Ticket, req synth.VerifyRequest) tea.Cmd {
	return func() tea.Msg {
		defer cancel()
		v, err := c.VerifyStep(ctx, req)
		return verificationDoneMsg{ticket: t, verdict: v, err: err}
	}
}
