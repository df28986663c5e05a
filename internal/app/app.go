// Package app wires the router, the studio screen and the frame into the
// Bubble Tea program.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/synthetica/internal/router"
	"github.com/abhisek/synthetica/internal/screen"
	"github.com/abhisek/synthetica/internal/screens/studio"
	"github.com/abhisek/synthetica/internal/session"
	"github.com/abhisek/synthetica/internal/synth"
	"github.com/abhisek/synthetica/internal/ui/layout"
)

// Deps are the services the TUI needs.
type Deps struct {
	Client synth.Client
	State  *session.State
	Logger *zap.Logger

	// Model is shown in the header.
	Model  string
	SVGDir string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  *session.State
	model  string
	width  int
	height int
}

// newAppModel creates a new AppModel with the studio screen.
func newAppModel(ctx context.Context, deps Deps) AppModel {
	st := studio.New(ctx, studio.Options{
		Client: deps.Client,
		State:  deps.State,
		Logger: deps.Logger,
		SVGDir: deps.SVGDir,
	})
	return AppModel{
		router: router.New(st),
		state:  st.State(),
		model:  deps.Model,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.frame())
	return v
}

// frame renders header, active screen and footer at the current size.
func (m AppModel) frame() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(m.router.Titles(), layout.HeaderInfo{
		Language: m.state.Language.Name(),
		Model:    m.model,
	}, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(newAppModel(ctx, deps), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
