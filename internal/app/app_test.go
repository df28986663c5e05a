package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/screens/classics"
	"github.com/abhisek/synthetica/internal/session"
)

func testModel() AppModel {
	m := newAppModel(context.Background(), Deps{
		State: session.New(i18n.English),
		Model: "gemini-2.5-flash",
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel)
}

func TestView_HeaderShowsModelAndLanguage(t *testing.T) {
	m := testModel()
	content := m.frame()
	if !strings.Contains(content, "gemini-2.5-flash") {
		t.Error("header should show the model")
	}
	if !strings.Contains(content, "English") {
		t.Error("header should show the language")
	}
}

func TestEscPopsPushedScreen(t *testing.T) {
	m := testModel()
	m.router.Push(classics.New(i18n.For(i18n.English)))
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if !strings.Contains(m.frame(), "Classic Problems") {
		t.Error("header should show the pushed screen in the breadcrumb")
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	m.Update(cmd())
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d after esc, want 1", m.router.Depth())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
