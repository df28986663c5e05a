// Package screen defines what the router stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthetica/internal/ui/layout"
)

// Screen is one page of the TUI. The app frame draws the header and
// footer; a screen only renders the body it is given room for.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title is the screen's breadcrumb in the header.
	Title() string
}

// KeyHintProvider is implemented by screens whose footer hints depend on
// their state, such as the studio's current mode.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
