package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthetica/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a label.
type TextInput struct {
	Model textinput.Model
	Label string
}

// NewTextInput creates a labelled single-line input.
func NewTextInput(label, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, Label: label}
}

// Focus focuses the input.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// SetWidth sets the visible width of the field.
func (t *TextInput) SetWidth(w int) {
	t.Model.SetWidth(w)
}

// SetLabel replaces the label and placeholder, e.g. after a language switch.
func (t *TextInput) SetLabel(label, placeholder string) {
	t.Label = label
	t.Model.Placeholder = placeholder
}

// View renders the label above the input.
func (t TextInput) View() string {
	return theme.Label.Render(t.Label) + "\n" + t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
	t.Model.CursorEnd()
}
