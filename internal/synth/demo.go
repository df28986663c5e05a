package synth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/synthetica/internal/llm"
	"github.com/abhisek/synthetica/internal/olympiad"
)

const demoDiagram = `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400" viewBox="0 0 400 400">` +
	`<rect width="400" height="400" fill="#1e293b"/>` +
	`<polygon points="200,60 70,330 330,330" fill="none" stroke="rgba(255, 255, 255, 0.6)"/>` +
	`<line x1="200" y1="60" x2="200" y2="330" stroke="rgba(255, 255, 255, 0.6)" stroke-dasharray="4"/>` +
	`<circle cx="200" cy="60" r="4" fill="#22d3ee"/><circle cx="70" cy="330" r="4" fill="#22d3ee"/>` +
	`<circle cx="330" cy="330" r="4" fill="#22d3ee"/><circle cx="200" cy="330" r="4" fill="#22d3ee"/>` +
	`<text x="195" y="50" fill="white">A</text><text x="55" y="350" fill="white">B</text>` +
	`<text x="335" y="350" fill="white">C</text><text x="195" y="350" fill="white">M</text></svg>`

var demoSynthesis = olympiad.SynthesisResult{
	Solutions: []olympiad.Solution{
		{
			MethodName:    "Point Reflection",
			Elegance:      olympiad.EleganceHigh,
			Formalization: "M = (B + C)/2  =>  |AM| < (|AB| + |AC|)/2",
			ReasoningTrace: []olympiad.ReasoningStep{
				{ID: "S1", Type: olympiad.StepHypothesis, Statement: "M is the midpoint of BC.", Justification: "Given.", Dependencies: []string{}},
				{ID: "S2", Type: olympiad.StepDeduction, Statement: "Reflect A through M to A'. Then ABA'C is a parallelogram.", Justification: "The diagonals AA' and BC bisect each other (S1).", Dependencies: []string{"S1"}},
				{ID: "S3", Type: olympiad.StepDeduction, Statement: "BA' = AC and AA' = 2AM.", Justification: "Opposite sides of a parallelogram are equal (S2).", Dependencies: []string{"S2"}},
				{ID: "S4", Type: olympiad.StepAxiom, Statement: "AA' < AB + BA' in the non-degenerate triangle ABA'.", Justification: "Strict triangle inequality.", Dependencies: []string{}},
				{ID: "S5", Type: olympiad.StepConclusion, Statement: "2AM < AB + AC, so AM < (AB + AC)/2.", Justification: "Substitute S3 into S4.", Dependencies: []string{"S3", "S4"}},
			},
			GeometricVisualization: demoDiagram,
		},
		{
			MethodName:    "Vector Approach",
			Elegance:      olympiad.EleganceMedium,
			Formalization: "AM = (AB + AC)/2 as vectors; |u + v| <= |u| + |v|",
			ReasoningTrace: []olympiad.ReasoningStep{
				{ID: "S1", Type: olympiad.StepHypothesis, Statement: "Vector AM = (AB + AC)/2.", Justification: "M is the midpoint of BC.", Dependencies: []string{}},
				{ID: "L1", Type: olympiad.StepLemma, Statement: "|u + v| < |u| + |v| for non-parallel u, v.", Justification: "Strict Cauchy-Schwarz.", Dependencies: []string{}},
				{ID: "S2", Type: olympiad.StepConclusion, Statement: "|AM| < (|AB| + |AC|)/2.", Justification: "Apply L1 to S1; AB and AC are not parallel.", Dependencies: []string{"S1", "L1"}},
			},
			GeometricVisualization: demoDiagram,
		},
	},
	Interconnections: []olympiad.Interconnection{
		{Source: "Triangle Inequality", Target: "Median Length"},
		{Source: "Parallelogram", Target: "Point Reflection"},
	},
	Difficulty: olympiad.DifficultyHighSchool,
	SolveTime:  4.2,
	Subject:    olympiad.SubjectGeometry,
}

// DemoResponder answers gateway requests with fixed content so the
// application can run without a model. It is wired to the "mock" provider.
func DemoResponder() llm.Responder {
	return func(req llm.Request) llm.MockResponse {
		var v any
		switch {
		case req.Schema == SynthesisSchema:
			v = demoSynthesis
		case req.Schema == GenerationSchema:
			v = demoGenerated(req)
		case req.Schema == VerificationSchema:
			v = demoVerdict(req)
		default:
			return llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: fmt.Errorf("demo: unsupported request")}}
		}
		b, err := json.Marshal(v)
		if err != nil {
			return llm.MockResponse{Err: err}
		}
		return llm.MockResponse{Content: b}
	}
}

func demoGenerated(req llm.Request) olympiad.GeneratedProblem {
	subject, difficulty := olympiad.SubjectNumberTheory, olympiad.DifficultyIMO
	for _, line := range strings.Split(userText(req), "\n") {
		if v, ok := strings.CutPrefix(line, "- Subject: "); ok {
			if s, err := olympiad.ParseSubject(v); err == nil {
				subject = s
			}
		}
		if v, ok := strings.CutPrefix(line, "- Difficulty: "); ok {
			if d, err := olympiad.ParseDifficulty(v); err == nil {
				difficulty = d
			}
		}
	}
	return olympiad.GeneratedProblem{
		Problem:    "Prove that for every positive integer n, the number n^5 - n is divisible by 30.",
		Subject:    subject,
		Difficulty: difficulty,
	}
}

// demoVerdict accepts any step long enough to say something and numbers it
// after the accepted steps.
func demoVerdict(req llm.Request) olympiad.VerificationResult {
	text := userText(req)
	proposed := ""
	if i := strings.LastIndex(text, "Proposed Next Step: "); i >= 0 {
		proposed = strings.TrimSpace(text[i+len("Proposed Next Step: "):])
		proposed, _, _ = strings.Cut(proposed, "\n")
		proposed = strings.Trim(proposed, `"`)
	}
	if len(strings.Fields(proposed)) < 3 {
		return olympiad.VerificationResult{
			Feedback:    "The step is too short to check. State a complete claim.",
			Suggestions: []string{"Name the objects involved.", "Say which earlier step it follows from."},
		}
	}

	n := strings.Count(text, `"id":`) + 1
	id := fmt.Sprintf("S%d", n)
	deps := []string{}
	if n > 1 {
		deps = append(deps, fmt.Sprintf("S%d", n-1))
	}
	return olympiad.VerificationResult{
		IsValid:  true,
		Feedback: "The step follows from the previous one.",
		FormalizedStep: &olympiad.ReasoningStep{
			ID:            id,
			Type:          olympiad.StepDeduction,
			Statement:     proposed,
			Justification: "Follows from the accepted steps.",
			Dependencies:  deps,
		},
		Suggestions: []string{"Look for an invariant.", "Try a small case.", "Consider the extremal element."},
	}
}

func userText(req llm.Request) string {
	if len(req.Messages) == 0 {
		return ""
	}
	return req.Messages[len(req.Messages)-1].Content
}
