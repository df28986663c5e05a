package components

import (
	"github.com/abhisek/synthetica/internal/ui/theme"
)

// Button is the primary action of a screen. While Busy it shows BusyLabel
// and is rendered inactive.
type Button struct {
	Label     string
	BusyLabel string
	Key       string
	Busy      bool
}

// NewButton creates a new button.
func NewButton(label, busyLabel, key string) Button {
	return Button{
		Label:     label,
		BusyLabel: busyLabel,
		Key:       key,
	}
}

// View renders the button, prefixing spin when busy.
func (b Button) View(spin string) string {
	if b.Busy {
		return theme.ButtonInactive.Render(spin + " " + b.BusyLabel)
	}
	label := "▸ " + b.Label
	if b.Key != "" {
		label += "  [" + b.Key + "]"
	}
	return theme.ButtonActive.Render(label)
}
