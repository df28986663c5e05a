// Package classics is the menu of well-known starter problems.
package classics

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/router"
	"github.com/abhisek/synthetica/internal/screen"
	"github.com/abhisek/synthetica/internal/ui/components"
	"github.com/abhisek/synthetica/internal/ui/layout"
	"github.com/abhisek/synthetica/internal/ui/theme"
)

// SelectedMsg is delivered to the previous screen when a problem is picked.
type SelectedMsg struct {
	Problem olympiad.ClassicProblem
}

// Screen lists the classic problems.
type Screen struct {
	strings *i18n.Strings
	menu    components.Menu
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the classics screen.
func New(t *i18n.Strings) *Screen {
	problems := olympiad.ClassicProblems()
	items := make([]components.MenuItem, len(problems))
	for i, p := range problems {
		items[i] = components.MenuItem{
			Label:  p.Name,
			Detail: p.Prompt,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PopScreenMsg{Result: SelectedMsg{Problem: p}}
				}
			},
		}
	}
	return &Screen{strings: t, menu: components.NewMenu(items)}
}

func (s *Screen) Init() tea.Cmd { return nil }

func (s *Screen) Title() string { return s.strings.ClassicsScreenTitle }

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter/1-9", Description: "Load"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	w := components.ContentWidth(min(width, 100))
	body := components.Wrap(s.menu.View(), w)
	card := components.Card(s.strings.ClassicProblemsTitle, body, w)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		card+"\n"+theme.Hint.Render("Loading a problem clears the current results."))
}
