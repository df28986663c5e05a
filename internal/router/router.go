// Package router keeps the stack of screens the TUI navigates through.
// The studio sits at the bottom; pickers and the proof graph are pushed on
// top and hand their result back when popped.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthetica/internal/screen"
)

// PushScreenMsg asks the router to push a screen.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to pop the top screen. Result, when set, is
// delivered to the screen underneath after the pop.
type PopScreenMsg struct {
	Result tea.Msg
}

type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push adds s on top of the stack and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen and returns a command that delivers result
// to the new top. The root screen is never popped.
func (r *Router) Pop(result tea.Msg) tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	if result == nil {
		return nil
	}
	return func() tea.Msg { return result }
}

func (r *Router) Active() screen.Screen {
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int {
	return len(r.stack)
}

// Titles lists screen titles from the root to the active screen.
func (r *Router) Titles() []string {
	out := make([]string, len(r.stack))
	for i, s := range r.stack {
		out[i] = s.Title()
	}
	return out
}

// Update handles navigation messages and forwards everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop(msg.Result)
	}

	updated, cmd := r.Active().Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

func (r *Router) View(width, height int) string {
	return r.Active().View(width, height)
}
