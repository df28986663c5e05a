package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pickedMsg int

func testMenu() Menu {
	pick := func(i int) func() tea.Cmd {
		return func() tea.Cmd { return func() tea.Msg { return pickedMsg(i) } }
	}
	return NewMenu([]MenuItem{
		{Label: "Median", Action: pick(0)},
		{Label: "Ptolemy", Action: pick(1), Disabled: true},
		{Label: "Ceva", Action: pick(2)},
	})
}

func TestMenu_NavigationSkipsDisabled(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Fatalf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterAndDigits(t *testing.T) {
	m := testMenu()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil || cmd() != pickedMsg(0) {
		t.Fatal("enter should activate the selected item")
	}

	m, cmd = m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if cmd == nil || cmd() != pickedMsg(2) || m.Selected != 2 {
		t.Fatal("digit 3 should activate the third item")
	}

	if _, cmd = m.Update(tea.KeyPressMsg{Code: '2', Text: "2"}); cmd != nil {
		t.Fatal("disabled items cannot be activated")
	}
	if _, cmd = m.Update(tea.KeyPressMsg{Code: '9', Text: "9"}); cmd != nil {
		t.Fatal("out-of-range digit should do nothing")
	}
}

func TestSelector_Wraps(t *testing.T) {
	s := NewSelector("Subject", []string{"a", "b", "c"}, 7)
	if s.Selected != 0 {
		t.Fatalf("out-of-range initial selection should clamp to 0, got %d", s.Selected)
	}
	s.Prev()
	if s.Selected != 2 {
		t.Fatalf("Prev from 0 = %d, want 2", s.Selected)
	}
	s.Next()
	if s.Selected != 0 {
		t.Fatalf("Next from 2 = %d, want 0", s.Selected)
	}
	if !strings.Contains(s.View("F5"), "[a]") {
		t.Fatal("selected option should be bracketed")
	}
}

func TestButton_Busy(t *testing.T) {
	b := NewButton("Synthesize", "Synthesizing...", "ctrl+s")
	if !strings.Contains(b.View("*"), "Synthesize") || !strings.Contains(b.View("*"), "ctrl+s") {
		t.Fatal("idle button should show label and key")
	}
	b.Busy = true
	if !strings.Contains(b.View("*"), "Synthesizing...") {
		t.Fatal("busy button should show the busy label")
	}
}
