package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthetica/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu. Items can also be chosen with the
// digit keys 1-9.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		return m, m.activate(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < len(m.Items) && !m.Items[i].Disabled {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}

	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		line := fmt.Sprintf("%d. %s", i+1, item.Label)
		switch {
		case item.Disabled:
			s += theme.Hint.Render("    "+line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render("  ▸ "+line) + "\n"
		default:
			s += theme.Unselected.Render("    "+line) + "\n"
		}
		if item.Detail != "" && i == m.Selected {
			s += lipgloss.NewStyle().Foreground(theme.TextDim).PaddingLeft(7).Render(item.Detail) + "\n"
		}
	}
	return s
}
