package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/proof"
)

// Color palette: dark slate with a cyan brand accent.
var (
	Primary   = lipgloss.Color("#22D3EE") // Cyan
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	ErrorBanner = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Foreground(Error).
			Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Valid = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Invalid = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Components
var (
	TabActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 2)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)

// StepColor returns the proof-graph colour of a step type.
func StepColor(t olympiad.StepType) color.Color {
	return lipgloss.Color(proof.TypeColor(t))
}

// StepBadge renders a step type in its graph colour.
func StepBadge(t olympiad.StepType) string {
	return lipgloss.NewStyle().Foreground(StepColor(t)).Bold(true).Render(string(t))
}

// EleganceColor maps an elegance tier to a traffic-light colour.
func EleganceColor(e olympiad.Elegance) color.Color {
	switch e {
	case olympiad.EleganceHigh:
		return Success
	case olympiad.EleganceMedium:
		return Accent
	default:
		return Error
	}
}
