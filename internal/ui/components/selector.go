package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthetica/internal/ui/theme"
)

// Selector is a horizontal single-choice list cycled with a key binding.
type Selector struct {
	Label    string
	Options  []string
	Selected int
}

// NewSelector creates a selector with the given options.
func NewSelector(label string, options []string, selected int) Selector {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return Selector{Label: label, Options: options, Selected: selected}
}

// Next advances to the following option, wrapping around.
func (s *Selector) Next() {
	if len(s.Options) == 0 {
		return
	}
	s.Selected = (s.Selected + 1) % len(s.Options)
}

// Prev moves to the previous option, wrapping around.
func (s *Selector) Prev() {
	if len(s.Options) == 0 {
		return
	}
	s.Selected = (s.Selected - 1 + len(s.Options)) % len(s.Options)
}

// View renders the label and all options with the selection highlighted.
func (s Selector) View(key string) string {
	parts := make([]string, len(s.Options))
	for i, opt := range s.Options {
		if i == s.Selected {
			parts[i] = theme.Selected.Render("[" + opt + "]")
		} else {
			parts[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + opt + " ")
		}
	}
	label := theme.Label.Render(s.Label)
	if key != "" {
		label += theme.Hint.Render("  (" + key + ")")
	}
	return label + "\n" + strings.Join(parts, " ")
}
