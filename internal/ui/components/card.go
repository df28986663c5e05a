package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthetica/internal/ui/theme"
)

// ContentWidth returns the inner width for cards inside a column of the
// given width.
func ContentWidth(columnWidth int) int {
	// border (2) + padding (2)
	w := columnWidth - 4
	if w < 20 {
		w = 20
	}
	return w
}

// Card renders body in a bordered box with a title line.
func Card(title, body string, width int) string {
	content := body
	if title != "" {
		content = theme.Title.Render(title) + "\n" + body
	}
	return theme.Card.Width(width).Render(content)
}

// ErrorBanner renders a failure title and message.
func ErrorBanner(title, msg string, width int) string {
	return theme.ErrorBanner.Width(width).Render(
		lipgloss.NewStyle().Bold(true).Render(title) + "\n" + msg,
	)
}

// Wrap wraps text to width.
func Wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
