// Package synth is the typed gateway to the reasoning model: it turns
// synthesize, generate and verify requests into schema-constrained LLM
// calls and decodes the answers into olympiad records.
package synth

import (
	"context"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
)

// Client is the contract between the application and the reasoning model.
// Every call is a single request/response exchange; nothing is retried or
// partially recovered.
type Client interface {
	// Synthesize solves a problem with one or more methods.
	Synthesize(ctx context.Context, req SynthesizeRequest) (*olympiad.SynthesisResult, error)

	// Generate composes a new problem.
	Generate(ctx context.Context, req GenerateRequest) (*olympiad.GeneratedProblem, error)

	// VerifyStep judges a proposed workbench step.
	VerifyStep(ctx context.Context, req VerifyRequest) (*olympiad.VerificationResult, error)
}

// SynthesizeRequest asks for solutions to Problem. Subject and Difficulty
// are the user's own assessment; the model reports its own.
type SynthesizeRequest struct {
	Problem    string
	Subject    olympiad.Subject
	Difficulty olympiad.Difficulty
	Language   i18n.Language
}

// GenerateRequest asks for a new problem.
type GenerateRequest struct {
	Subject    olympiad.Subject
	Difficulty olympiad.Difficulty
	Language   i18n.Language

	// KeyConcepts is free text; empty means no constraint.
	KeyConcepts string
}

// VerifyRequest asks whether ProposedStep follows from AcceptedSteps.
type VerifyRequest struct {
	Problem       string
	AcceptedSteps []olympiad.ReasoningStep
	ProposedStep  string
	Language      i18n.Language
}

// Config tunes the requests LLMClient sends.
type Config struct {
	// MaxTokens is the response budget per call. Synthesis answers carry
	// several traces and an SVG, so this is large.
	MaxTokens int

	// Temperature is passed through to the provider; zero keeps its default.
	Temperature float64

	// MaxPriorProblems is how many generated problems are listed in the
	// next generation prompt. Zero disables the list.
	MaxPriorProblems int
}

// DefaultConfig returns the standard request settings.
func DefaultConfig() Config {
	return Config{MaxTokens: 16384, MaxPriorProblems: 5}
}
