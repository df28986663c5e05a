package synth

import (
	"github.com/abhisek/synthetica/internal/llm"
	"github.com/abhisek/synthetica/internal/olympiad"
)

// stepProperties describes a ReasoningStep. Shared by the synthesis trace
// items and the verifier's formalized step.
func stepProperties() map[string]any {
	return map[string]any{
		"id": map[string]any{
			"type":        "string",
			"description": "Unique identifier of the step within its trace, e.g. 'S1' or 'L2'.",
		},
		"type": map[string]any{
			"type":        "string",
			"enum":        olympiad.StepTypeEnum(),
			"description": "Kind of reasoning step. Always in English.",
		},
		"statement": map[string]any{
			"type":        "string",
			"description": "The logical or mathematical claim made by this step.",
		},
		"justification": map[string]any{
			"type":        "string",
			"description": "Why the step holds, citing earlier steps by ID where needed.",
		},
		"dependencies": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "IDs of the steps this step directly depends on.",
		},
	}
}

var stepRequired = []any{"id", "type", "statement", "justification", "dependencies"}

// SynthesisSchema constrains the answer to a solve request.
var SynthesisSchema = &llm.Schema{
	Name:        "proof-synthesis",
	Description: "One or more solutions to an olympiad problem with reasoning traces",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"solutions": map[string]any{
				"type":        "array",
				"description": "Distinct solutions, preferably using different methods.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"methodName": map[string]any{
							"type":        "string",
							"description": "Name of the method, e.g. 'Synthetic Geometry' or 'Coordinate Bash'. Always in English.",
						},
						"elegance": map[string]any{
							"type":        "string",
							"enum":        olympiad.EleganceEnum(),
							"description": "How concise and insightful the solution is. Always in English.",
						},
						"formalization": map[string]any{
							"type":        "string",
							"description": "Formal statement of the problem in the notation of this method.",
						},
						"reasoningTrace": map[string]any{
							"type":        "array",
							"description": "Step-by-step proof for this method.",
							"items": map[string]any{
								"type":                 "object",
								"properties":           stepProperties(),
								"required":             stepRequired,
								"additionalProperties": false,
							},
						},
						"geometricVisualization": map[string]any{
							"type": "string",
							"description": "For Geometry only: a self-contained 400x400 SVG starting with <svg and ending with </svg>, " +
								"dark background '#1e293b', lines 'rgba(255, 255, 255, 0.6)', points as small circles filled '#22d3ee', white labels. " +
								"Empty string for every other subject.",
						},
					},
					"required":             []any{"methodName", "elegance", "formalization", "reasoningTrace", "geometricVisualization"},
					"additionalProperties": false,
				},
			},
			"interconnections": map[string]any{
				"type":        "array",
				"description": "Knowledge graph of related concepts.",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"source": map[string]any{"type": "string"},
						"target": map[string]any{"type": "string"},
					},
					"required":             []any{"source", "target"},
					"additionalProperties": false,
				},
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        olympiad.DifficultyEnum(),
				"description": "Estimated difficulty of the problem.",
			},
			"solveTime": map[string]any{
				"type":        "number",
				"description": "Plausible time in seconds for an AGI to solve the problem.",
			},
			"subject": map[string]any{
				"type":        "string",
				"enum":        olympiad.SubjectEnum(),
				"description": "Primary subject of the problem. Always in English.",
			},
		},
		"required":             []any{"solutions", "interconnections", "difficulty", "solveTime", "subject"},
		"additionalProperties": false,
	},
}

// GenerationSchema constrains a generated problem.
var GenerationSchema = &llm.Schema{
	Name:        "problem-generation",
	Description: "A newly composed olympiad problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problem": map[string]any{
				"type":        "string",
				"description": "Full text of the generated problem.",
			},
			"subject": map[string]any{
				"type": "string",
				"enum": olympiad.SubjectEnum(),
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": olympiad.DifficultyEnum(),
			},
		},
		"required":             []any{"problem", "subject", "difficulty"},
		"additionalProperties": false,
	},
}

// VerificationSchema constrains the verdict on a proposed step.
// formalizedStep is null when the step is rejected.
var VerificationSchema = &llm.Schema{
	Name:        "step-verification",
	Description: "Verdict, feedback and suggestions for a proposed proof step",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isValid": map[string]any{
				"type":        "boolean",
				"description": "Whether the proposed step is logically correct and relevant.",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Short explanation of why the step is or is not valid.",
			},
			"formalizedStep": map[string]any{
				"type":                 []any{"object", "null"},
				"description":          "The formalized step when valid, otherwise null.",
				"properties":           stepProperties(),
				"required":             stepRequired,
				"additionalProperties": false,
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Two or three next steps to try, or corrections when invalid.",
			},
		},
		"required":             []any{"isValid", "feedback", "formalizedStep", "suggestions"},
		"additionalProperties": false,
	},
}
