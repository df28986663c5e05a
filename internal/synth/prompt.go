package synth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
)

const synthesisSystemPrompt = `You are Synthetica Mathematica, a problem solver covering every core subject of the International Mathematical Olympiad: Geometry, Number Theory, Algebra and Combinatorics. You receive a problem and return several distinct, rigorous solutions.

Rules:
- Identify the primary subject of the problem (Geometry, Number Theory, Algebra or Combinatorics) and report it in "subject".
- Give at least one solution and preferably two or more that use different methods, e.g. polynomial manipulation and an inequality argument.
- Every solution carries its own methodName, elegance, formalization and reasoningTrace.
- Rate elegance High, Medium or Low. High is short and insightful; Low is a correct but lengthy computation.
- Reasoning steps have unique IDs within their trace and list the IDs they depend on.
- Only when the subject is Geometry, put a self-contained 400x400 SVG diagram of the problem in geometricVisualization: background '#1e293b', lines 'rgba(255, 255, 255, 0.6)', points as small circles filled '#22d3ee', labels in white. No XML declaration or DOCTYPE, only the <svg> element. For every other subject geometricVisualization is "".
- Answer with one JSON object matching the schema. No markdown.

Language: write formalization, statement, justification and interconnection concept names in %[1]s. The step type, methodName, elegance and subject fields are always English.`

const generationSystemPrompt = `You are an olympiad problem setter. Compose a new, interesting and challenging problem matching the requested parameters.

Rules:
- "subject" and "difficulty" must match the request and use the listed enum values.
- Write the "problem" text in %[1]s.
- Answer with one JSON object matching the schema. No markdown.`

const verificationSystemPrompt = `You are the proof assistant of Synthetica Mathematica. A user is building a proof one step at a time. You receive the problem, the steps accepted so far and a proposed next step.

Rules:
- Decide whether the proposed step is logically sound and relevant given the problem and the accepted steps. Set isValid and explain the verdict briefly in feedback.
- When the step is valid, fill formalizedStep: the next sequential id (after S3 comes S4), the right type, a clear formal statement, a justification citing dependencies by ID, and the dependency IDs.
- When the step is invalid, formalizedStep is null.
- Give two or three suggestions: what to prove next after a valid step, or how to repair an invalid one.
- Write feedback, statement, justification and suggestions in %[1]s. The step type is always English.
- Answer with one JSON object matching the schema. No markdown.`

func systemPrompt(template string, lang i18n.Language) string {
	return fmt.Sprintf(template, lang.Name())
}

// buildSynthesisMessage frames the problem with the user's own assessment.
func buildSynthesisMessage(req SynthesizeRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User-Assessed Difficulty: %s\n", req.Difficulty)
	fmt.Fprintf(&b, "Primary Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Problem: %s", req.Problem)
	return b.String()
}

// buildGenerationMessage lists the requested characteristics. The key
// concepts line is left out entirely when none were given.
func buildGenerationMessage(req GenerateRequest, prior []string) string {
	var b strings.Builder
	b.WriteString("Generate a math problem with the following characteristics:\n")
	fmt.Fprintf(&b, "- Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "- Difficulty: %s\n", req.Difficulty)
	if c := strings.TrimSpace(req.KeyConcepts); c != "" {
		fmt.Fprintf(&b, "- Must involve the following key concepts: %s\n", c)
	}
	b.WriteString("- The problem statement should be novel and engaging.")
	if len(prior) > 0 {
		b.WriteString("\n\nDo not repeat any of these recently generated problems:\n")
		b.WriteString(formatPrior(prior))
	}
	return b.String()
}

// formatPrior numbers earlier problems, one per line.
func formatPrior(prior []string) string {
	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildVerificationMessage embeds the accepted steps as indented JSON so
// the model sees the exact IDs it must continue from.
func buildVerificationMessage(req VerifyRequest) (string, error) {
	steps := req.AcceptedSteps
	if steps == nil {
		steps = []olympiad.ReasoningStep{}
	}
	existing, err := json.MarshalIndent(steps, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode accepted steps: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Problem: %q\n\n", req.Problem)
	fmt.Fprintf(&b, "Existing Steps:\n%s\n\n", existing)
	fmt.Fprintf(&b, "Proposed Next Step: %q\n\n", req.ProposedStep)
	b.WriteString("Please evaluate my proposed step.")
	return b.String(), nil
}
