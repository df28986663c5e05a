package olympiad

// ReasoningStep is a single node of a reasoning trace.
type ReasoningStep struct {
	// ID is unique within its trace, e.g. "S1" or "L2".
	ID string `json:"id"`

	Type StepType `json:"type"`

	// Statement is the core logical or mathematical claim of the step.
	Statement string `json:"statement"`

	// Justification explains why the step holds, usually by citing the
	// IDs of earlier steps.
	Justification string `json:"justification"`

	// Dependencies lists the IDs of the steps this one directly relies on.
	// Nothing guarantees they exist in the same trace.
	Dependencies []string `json:"dependencies"`
}

// Solution is one method of solving a problem.
type Solution struct {
	MethodName     string          `json:"methodName"`
	Elegance       Elegance        `json:"elegance"`
	Formalization  string          `json:"formalization"`
	ReasoningTrace []ReasoningStep `json:"reasoningTrace"`

	// GeometricVisualization is a self-contained 400x400 SVG document.
	// Empty when the subject is not geometry.
	GeometricVisualization string `json:"geometricVisualization"`
}

// HasDiagram reports whether the solution carries a geometric diagram.
func (s Solution) HasDiagram() bool {
	return s.GeometricVisualization != ""
}

// Interconnection is an edge of the concept knowledge graph.
type Interconnection struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// SynthesisResult is the complete answer to a solve request.
type SynthesisResult struct {
	Solutions        []Solution        `json:"solutions"`
	Interconnections []Interconnection `json:"interconnections"`
	Difficulty       Difficulty        `json:"difficulty"`

	// SolveTime is the model's estimated solve time in seconds.
	SolveTime float64 `json:"solveTime"`

	Subject Subject `json:"subject"`
}

// Solution returns the solution at index i, or false if i is out of range.
func (r *SynthesisResult) Solution(i int) (Solution, bool) {
	if r == nil || i < 0 || i >= len(r.Solutions) {
		return Solution{}, false
	}
	return r.Solutions[i], true
}

// GeneratedProblem is a new problem produced on request.
type GeneratedProblem struct {
	Problem    string     `json:"problem"`
	Subject    Subject    `json:"subject"`
	Difficulty Difficulty `json:"difficulty"`
}

// VerificationResult is the verdict on a proposed workbench step.
type VerificationResult struct {
	IsValid  bool   `json:"isValid"`
	Feedback string `json:"feedback"`

	// FormalizedStep is set only when IsValid is true.
	FormalizedStep *ReasoningStep `json:"formalizedStep"`

	Suggestions []string `json:"suggestions"`
}

// Accepted reports whether the verdict yields a step to append to the
// workbench.
func (v *VerificationResult) Accepted() bool {
	return v != nil && v.IsValid && v.FormalizedStep != nil
}
