package synth

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/abhisek/synthetica/internal/llm"
	"github.com/abhisek/synthetica/internal/olympiad"
)

// Request purposes recorded with LLM telemetry.
const (
	PurposeSynthesize = "synthesize"
	PurposeGenerate   = "generate"
	PurposeVerify     = "verify"
)

// LLMClient implements Client on top of an llm.Provider. It is safe for
// concurrent use.
type LLMClient struct {
	provider llm.Provider
	config   Config

	mu    sync.Mutex
	prior []string
}

// New creates an LLMClient.
func New(provider llm.Provider, cfg Config) *LLMClient {
	return &LLMClient{provider: provider, config: cfg}
}

var _ Client = (*LLMClient)(nil)

// Synthesize asks the model for solutions to req.Problem.
func (c *LLMClient) Synthesize(ctx context.Context, req SynthesizeRequest) (*olympiad.SynthesisResult, error) {
	ctx = llm.WithPurpose(ctx, PurposeSynthesize)

	var out olympiad.SynthesisResult
	err := c.call(ctx, systemPrompt(synthesisSystemPrompt, req.Language), buildSynthesisMessage(req), SynthesisSchema, &out)
	if err != nil {
		return nil, wrap(OpSynthesis, err)
	}
	if err := checkSynthesis(&out); err != nil {
		return nil, wrap(OpSynthesis, err)
	}
	return &out, nil
}

// Generate asks the model for a new problem.
func (c *LLMClient) Generate(ctx context.Context, req GenerateRequest) (*olympiad.GeneratedProblem, error) {
	ctx = llm.WithPurpose(ctx, PurposeGenerate)

	var out olympiad.GeneratedProblem
	msg := buildGenerationMessage(req, c.priorProblems())
	err := c.call(ctx, systemPrompt(generationSystemPrompt, req.Language), msg, GenerationSchema, &out)
	if err != nil {
		return nil, wrap(OpGeneration, err)
	}
	if out.Problem == "" {
		return nil, wrap(OpGeneration, fmt.Errorf("%w: empty problem text", ErrIncomplete))
	}
	c.remember(out.Problem)
	return &out, nil
}

func (c *LLMClient) priorProblems() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.prior)
}

// remember keeps the last MaxPriorProblems generated problems so the next
// request asks for something different.
func (c *LLMClient) remember(problem string) {
	if c.config.MaxPriorProblems <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if slices.Contains(c.prior, problem) {
		return
	}
	c.prior = append(c.prior, problem)
	if n := len(c.prior) - c.config.MaxPriorProblems; n > 0 {
		c.prior = c.prior[n:]
	}
}

// VerifyStep asks the model to judge req.ProposedStep.
func (c *LLMClient) VerifyStep(ctx context.Context, req VerifyRequest) (*olympiad.VerificationResult, error) {
	ctx = llm.WithPurpose(ctx, PurposeVerify)

	msg, err := buildVerificationMessage(req)
	if err != nil {
		return nil, wrap(OpVerification, err)
	}

	var out olympiad.VerificationResult
	if err := c.call(ctx, systemPrompt(verificationSystemPrompt, req.Language), msg, VerificationSchema, &out); err != nil {
		return nil, wrap(OpVerification, err)
	}
	// A formalized step only counts alongside a positive verdict.
	if !out.IsValid {
		out.FormalizedStep = nil
	}
	return &out, nil
}

func (c *LLMClient) call(ctx context.Context, system, user string, schema *llm.Schema, out any) error {
	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      schema,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	})
	if err != nil {
		return err
	}
	return decode(resp.Content, out)
}

// decode strips a stray markdown fence and unmarshals into out. Providers
// already validated the payload against the schema.
func decode(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(llm.StripCodeFence(raw), out); err != nil {
		return fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return nil
}

// checkSynthesis rejects answers without a usable solution.
func checkSynthesis(r *olympiad.SynthesisResult) error {
	if len(r.Solutions) == 0 {
		return fmt.Errorf("%w: no solutions", ErrIncomplete)
	}
	for i, s := range r.Solutions {
		if len(s.ReasoningTrace) == 0 {
			return fmt.Errorf("%w: solution %d has an empty reasoning trace", ErrIncomplete, i+1)
		}
	}
	return nil
}
