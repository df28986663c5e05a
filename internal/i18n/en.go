package i18n

import "github.com/abhisek/synthetica/internal/olympiad"

var en = Strings{
	HeaderTitle:    "Synthetica Mathematica",
	HeaderSubtitle: "IMO-Level Geometry",

	ModeSolve:     "Solve Problem",
	ModeGenerate:  "Generate Problem",
	ModeWorkbench: "Workbench",

	InputLabel:       "Enter a Geometry Problem",
	InputPlaceholder: "e.g., Let M be the midpoint of side BC in a triangle ABC. Prove that AM < (AB + AC) / 2.",
	DomainLabel:      "IMO Subject",
	DifficultyLabel:  "Select Problem Difficulty",

	GenerateConceptsLabel:       "Key Concepts (Optional)",
	GenerateConceptsPlaceholder: "e.g., Triangle Inequality, Circles",

	SynthesizeButton:   "Synthesize & Discover",
	SynthesizingButton: "Synthesizing...",
	GenerateButton:     "Generate Problem",
	GeneratingButton:   "Generating...",

	StatusTitle:     "Performance Metrics",
	StatusSolveTime: "Avg. Solve Time",

	SynthesisFailed:  "Synthesis Failed",
	GenerationFailed: "Problem Generation Failed",

	ClassicProblemsTitle:    "Or, start with a classic problem:",
	ClassicsScreenTitle:     "Classic Problems",
	VisualizationTabGraph:   "Proof Graph",
	VisualizationTabDiagram: "Geometric Diagram",
	VisualizationTitle:      "Proof Structure Graph",
	VisualizationAwaiting:   "Awaiting proof structure...",

	SynthesisOutputTitle: "Synthesis Output",

	FormalizationTitle:        "Formalization",
	FormalizationAwaiting:     "Awaiting output...",
	FormalizationSynthesizing: "Synthesizing formal representation...",

	ReasoningTraceTitle:      "Reasoning Trace",
	ReasoningTraceAwaiting:   "Awaiting reasoning trace...",
	ReasoningTraceGenerating: "Generating logical proof steps...",

	StepJustification: "Justification",
	StepDependencies:  "Depends on",

	GeneratedProblemTitle:  "Generated Problem",
	SolveThisProblemButton: "Solve This Problem",

	SolutionMethods:   "Solution Methods",
	SolutionElegance:  "Elegance",
	InterconnectTitle: "Concept Interconnections",

	WorkbenchTitle:                "Collaborative Proof Workbench",
	WorkbenchProblemStatement:     "Problem Statement",
	WorkbenchProofSteps:           "Proof Steps",
	WorkbenchStepInputLabel:       "Propose Next Step",
	WorkbenchStepInputPlaceholder: `e.g., "Consider point D on AM such that..."`,
	WorkbenchAddStepButton:        "Add & Verify Step",
	WorkbenchVerifyingButton:      "Verifying...",
	WorkbenchAwaitingInput:        "Awaiting your first step...",
	WorkbenchAIFeedback:           "AI Feedback",
	WorkbenchAISuggestions:        "AI Suggestions",
	WorkbenchVerifyFailed:         "Verification Failed",

	EleganceNames: map[olympiad.Elegance]string{
		olympiad.EleganceHigh:   "High",
		olympiad.EleganceMedium: "Medium",
		olympiad.EleganceLow:    "Low",
	},
	SubjectNames: map[olympiad.Subject]string{
		olympiad.SubjectGeometry:      "Geometry",
		olympiad.SubjectNumberTheory:  "Number Theory",
		olympiad.SubjectAlgebra:       "Algebra",
		olympiad.SubjectCombinatorics: "Combinatorics",
	},
	DifficultyNames: map[olympiad.Difficulty]string{
		olympiad.DifficultyHighSchool:     "High School",
		olympiad.DifficultyUndergraduate:  "Undergraduate",
		olympiad.DifficultyIMO:            "IMO Level",
		olympiad.DifficultyGrandChallenge: "Grand Challenge",
	},
}
