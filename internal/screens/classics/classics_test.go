package classics

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/synthetica/internal/i18n"
	"github.com/abhisek/synthetica/internal/olympiad"
	"github.com/abhisek/synthetica/internal/router"
)

func TestSelectPopsWithProblem(t *testing.T) {
	s := New(i18n.For(i18n.English))

	_, cmd := s.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	pop, ok := cmd().(router.PopScreenMsg)
	if !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	sel, ok := pop.Result.(SelectedMsg)
	if !ok {
		t.Fatalf("expected SelectedMsg result, got %T", pop.Result)
	}
	if want := olympiad.ClassicProblems()[1]; sel.Problem != want {
		t.Errorf("selected %+v, want %+v", sel.Problem, want)
	}
}

func TestTitleFollowsLanguage(t *testing.T) {
	if New(i18n.For(i18n.Hindi)).Title() != i18n.For(i18n.Hindi).ClassicsScreenTitle {
		t.Error("title should come from the active string table")
	}
}
