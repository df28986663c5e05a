// Package i18n holds the static UI string tables for every display language.
package i18n

import (
	"fmt"
	"strings"

	"github.com/abhisek/synthetica/internal/olympiad"
)

// Language is a display-language tag.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// DefaultLanguage is used when nothing else is configured.
const DefaultLanguage = English

// AllLanguages returns the supported languages in toggle order.
func AllLanguages() []Language {
	return []Language{English, Hindi}
}

// Name returns the English name of the language. Prompts use it to tell the
// model which language free-text fields must be written in.
func (l Language) Name() string {
	switch l {
	case Hindi:
		return "Hindi"
	default:
		return "English"
	}
}

// Valid reports whether l has a string table.
func (l Language) Valid() bool {
	_, ok := tables[l]
	return ok
}

// Next returns the language after l in toggle order.
func (l Language) Next() Language {
	all := AllLanguages()
	for i, x := range all {
		if x == l {
			return all[(i+1)%len(all)]
		}
	}
	return DefaultLanguage
}

// ParseLanguage accepts a tag ("en", "hi") or an English name.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english", "en-us", "en-gb":
		return English, nil
	case "hi", "hindi", "hi-in":
		return Hindi, nil
	}
	return "", fmt.Errorf("unsupported language %q (want en or hi)", s)
}

// Strings is the dictionary of UI text for one language.
type Strings struct {
	HeaderTitle    string
	HeaderSubtitle string

	ModeSolve     string
	ModeGenerate  string
	ModeWorkbench string

	InputLabel       string
	InputPlaceholder string
	DomainLabel      string
	DifficultyLabel  string

	GenerateConceptsLabel       string
	GenerateConceptsPlaceholder string

	SynthesizeButton   string
	SynthesizingButton string
	GenerateButton     string
	GeneratingButton   string

	StatusTitle     string
	StatusSolveTime string

	SynthesisFailed  string
	GenerationFailed string

	ClassicProblemsTitle    string
	ClassicsScreenTitle     string
	VisualizationTabGraph   string
	VisualizationTabDiagram string
	VisualizationTitle      string
	VisualizationAwaiting   string

	SynthesisOutputTitle string

	FormalizationTitle        string
	FormalizationAwaiting     string
	FormalizationSynthesizing string

	ReasoningTraceTitle      string
	ReasoningTraceAwaiting   string
	ReasoningTraceGenerating string

	StepJustification string
	StepDependencies  string

	GeneratedProblemTitle  string
	SolveThisProblemButton string

	SolutionMethods   string
	SolutionElegance  string
	InterconnectTitle string

	WorkbenchTitle                string
	WorkbenchProblemStatement     string
	WorkbenchProofSteps           string
	WorkbenchStepInputLabel       string
	WorkbenchStepInputPlaceholder string
	WorkbenchAddStepButton        string
	WorkbenchVerifyingButton      string
	WorkbenchAwaitingInput        string
	WorkbenchAIFeedback           string
	WorkbenchAISuggestions        string
	WorkbenchVerifyFailed         string

	EleganceNames   map[olympiad.Elegance]string
	SubjectNames    map[olympiad.Subject]string
	DifficultyNames map[olympiad.Difficulty]string
}

var tables = map[Language]*Strings{
	English: &en,
	Hindi:   &hi,
}

// For returns the table for lang, falling back to English.
func For(lang Language) *Strings {
	if t, ok := tables[lang]; ok {
		return t
	}
	return &en
}

// Subject returns the display name of s, or s itself when untranslated.
func (t *Strings) Subject(s olympiad.Subject) string {
	if n, ok := t.SubjectNames[s]; ok {
		return n
	}
	return string(s)
}

// Difficulty returns the display name of d.
func (t *Strings) Difficulty(d olympiad.Difficulty) string {
	if n, ok := t.DifficultyNames[d]; ok {
		return n
	}
	return string(d)
}

// Elegance returns the display name of e.
func (t *Strings) Elegance(e olympiad.Elegance) string {
	if n, ok := t.EleganceNames[e]; ok {
		return n
	}
	return string(e)
}
