package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/router"
	sess "github.com/abhisek/daycheck/internal/session"
)

func testSummary(t *testing.T) *sess.Summary {
	t.Helper()
	s := sess.New(questionset.Default())
	for !s.Finished() {
		q := s.CurrentQuestion()
		v := 4
		if q.Category == questionset.Focus && q.ID == 1 {
			v = 5
		}
		var err error
		if s, err = s.SelectAnswer(q.ID, v); err != nil {
			t.Fatalf("select: %v", err)
		}
		if s, err = s.Advance(); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
	return sess.BuildSummary(s, nil)
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func popTarget(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	pop, ok := cmd().(router.PopScreenMsg)
	if !ok {
		t.Fatalf("expected PopScreenMsg")
	}
	return pop.Then
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testSummary(t))
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
	if s.Progress() != 100 {
		t.Errorf("Progress = %d, want 100", s.Progress())
	}
}

func TestResultsScreen_View(t *testing.T) {
	s := New(testSummary(t))
	view := s.View(100, 40)

	for _, want := range []string{
		"All 9 questions answered.",
		"average 4.33 (total 13)",
		"average 4.00 (total 12)",
		"13 / 15 (87%)",
		"12 / 15 (80%)",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_ViewAbsentAverage(t *testing.T) {
	s := New(sess.BuildSummary(sess.New(questionset.Default()), nil))
	view := s.View(100, 40)
	if !strings.Contains(view, "average - (total 0)") {
		t.Error("expected absent averages to render as -")
	}
	if !strings.Contains(view, "0 of 9 questions answered.") {
		t.Error("expected partial completeness line")
	}
}

func TestResultsScreen_NilSummary(t *testing.T) {
	s := New(nil)
	if s.View(80, 24) != "" {
		t.Error("expected empty view for nil summary")
	}
	if s.Progress() != 0 {
		t.Error("expected zero progress for nil summary")
	}
}

func TestResultsScreen_Back(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{press('b'), {Code: tea.KeyEscape}} {
		s := New(testSummary(t))
		_, cmd := s.Update(msg)
		if _, ok := popTarget(t, cmd).(BackMsg); !ok {
			t.Errorf("%s: expected BackMsg", msg.String())
		}
	}
}

func TestResultsScreen_Restart(t *testing.T) {
	for _, msg := range []tea.KeyPressMsg{press('r'), {Code: tea.KeyEnter}} {
		s := New(testSummary(t))
		_, cmd := s.Update(msg)
		if _, ok := popTarget(t, cmd).(RestartMsg); !ok {
			t.Errorf("%s: expected RestartMsg", msg.String())
		}
	}
}

func TestResultsScreen_Quit(t *testing.T) {
	s := New(testSummary(t))
	_, cmd := s.Update(press('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestResultsScreen_IgnoresOtherKeys(t *testing.T) {
	s := New(testSummary(t))
	if _, cmd := s.Update(press('x')); cmd != nil {
		t.Error("expected no command for an unbound key")
	}
	if len(s.KeyBindings()) != 3 {
		t.Errorf("KeyBindings = %d, want 3", len(s.KeyBindings()))
	}
}
