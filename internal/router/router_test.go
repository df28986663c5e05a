package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/synthetica/internal/screen"
)

// stubScreen records what reached it.
type stubScreen struct {
	title   string
	initRan bool
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

type pickedMsg string

func TestPushRunsInit(t *testing.T) {
	r := New(&stubScreen{title: "Studio"})
	graph := &stubScreen{title: "Proof Graph"}

	r.Update(PushScreenMsg{Screen: graph})

	assert.Equal(t, 2, r.Depth())
	assert.Same(t, graph, r.Active())
	assert.True(t, graph.initRan)
	assert.Equal(t, []string{"Studio", "Proof Graph"}, r.Titles())
}

func TestPopDeliversResultToScreenBelow(t *testing.T) {
	studio := &stubScreen{title: "Studio"}
	r := New(studio)
	r.Push(&stubScreen{title: "Classic Problems"})

	cmd := r.Update(PopScreenMsg{Result: pickedMsg("napoleon")})
	require.NotNil(t, cmd)
	assert.Same(t, studio, r.Active())

	r.Update(cmd())
	assert.Equal(t, []tea.Msg{pickedMsg("napoleon")}, studio.got)
}

func TestPopWithoutResult(t *testing.T) {
	r := New(&stubScreen{title: "Studio"})
	r.Push(&stubScreen{title: "Proof Graph"})

	assert.Nil(t, r.Update(PopScreenMsg{}))
	assert.Equal(t, 1, r.Depth())
}

func TestRootIsNeverPopped(t *testing.T) {
	studio := &stubScreen{title: "Studio"}
	r := New(studio)

	assert.Nil(t, r.Pop(pickedMsg("ignored")))
	assert.Equal(t, 1, r.Depth())
	assert.Same(t, studio, r.Active())
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	studio := &stubScreen{title: "Studio"}
	picker := &stubScreen{title: "Classic Problems"}
	r := New(studio)
	r.Push(picker)

	r.Update(pickedMsg("key"))

	assert.Empty(t, studio.got)
	assert.Equal(t, []tea.Msg{pickedMsg("key")}, picker.got)
	assert.Equal(t, "Classic Problems", r.View(80, 24))
}
