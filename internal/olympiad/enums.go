package olympiad

import "fmt"

// Subject is an IMO subject area. Values are always English.
type Subject string

const (
	SubjectGeometry      Subject = "Geometry"
	SubjectNumberTheory  Subject = "Number Theory"
	SubjectAlgebra       Subject = "Algebra"
	SubjectCombinatorics Subject = "Combinatorics"
)

// AllSubjects returns every subject in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectGeometry, SubjectNumberTheory, SubjectAlgebra, SubjectCombinatorics}
}

// Valid reports whether s is a known subject.
func (s Subject) Valid() bool {
	for _, v := range AllSubjects() {
		if s == v {
			return true
		}
	}
	return false
}

// ParseSubject accepts a subject name or a short alias
// ("geo", "nt", "alg", "comb").
func ParseSubject(v string) (Subject, error) {
	switch normalize(v) {
	case "geometry", "geo":
		return SubjectGeometry, nil
	case "numbertheory", "nt":
		return SubjectNumberTheory, nil
	case "algebra", "alg":
		return SubjectAlgebra, nil
	case "combinatorics", "comb":
		return SubjectCombinatorics, nil
	}
	return "", fmt.Errorf("unknown subject %q", v)
}

// Difficulty is a coarse problem difficulty tier. Values are always English.
type Difficulty string

const (
	DifficultyHighSchool     Difficulty = "High School"
	DifficultyUndergraduate  Difficulty = "Undergraduate"
	DifficultyIMO            Difficulty = "IMO Level"
	DifficultyGrandChallenge Difficulty = "Grand Challenge"
)

// AllDifficulties returns every difficulty from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyHighSchool, DifficultyUndergraduate, DifficultyIMO, DifficultyGrandChallenge}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	for _, v := range AllDifficulties() {
		if d == v {
			return true
		}
	}
	return false
}

// ParseDifficulty accepts a difficulty name or a short alias
// ("hs", "ug", "imo", "gc").
func ParseDifficulty(v string) (Difficulty, error) {
	switch normalize(v) {
	case "highschool", "hs":
		return DifficultyHighSchool, nil
	case "undergraduate", "ug":
		return DifficultyUndergraduate, nil
	case "imolevel", "imo":
		return DifficultyIMO, nil
	case "grandchallenge", "gc":
		return DifficultyGrandChallenge, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", v)
}

// Elegance is the model's qualitative rating of a solution.
type Elegance string

const (
	EleganceHigh   Elegance = "High"
	EleganceMedium Elegance = "Medium"
	EleganceLow    Elegance = "Low"
)

// AllElegances returns every elegance tier, best first.
func AllElegances() []Elegance {
	return []Elegance{EleganceHigh, EleganceMedium, EleganceLow}
}

// StepType classifies a reasoning step.
type StepType string

const (
	StepHypothesis StepType = "Hypothesis"
	StepAxiom      StepType = "Axiom"
	StepLemma      StepType = "Lemma"
	StepDeduction  StepType = "Deduction"
	StepConclusion StepType = "Conclusion"
)

// AllStepTypes returns every step type.
func AllStepTypes() []StepType {
	return []StepType{StepHypothesis, StepAxiom, StepLemma, StepDeduction, StepConclusion}
}

// enumStrings converts a typed enum list to the []any form used in JSON
// schema definitions.
func enumStrings[T ~string](vals []T) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// SubjectEnum returns the subjects as JSON schema enum values.
func SubjectEnum() []any { return enumStrings(AllSubjects()) }

// DifficultyEnum returns the difficulties as JSON schema enum values.
func DifficultyEnum() []any { return enumStrings(AllDifficulties()) }

// EleganceEnum returns the elegance tiers as JSON schema enum values.
func EleganceEnum() []any { return enumStrings(AllElegances()) }

// StepTypeEnum returns the step types as JSON schema enum values.
func StepTypeEnum() []any { return enumStrings(AllStepTypes()) }

// normalize lowercases v and drops spaces, dashes and underscores.
func normalize(v string) string {
	out := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == ' ' || c == '-' || c == '_':
			continue
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
