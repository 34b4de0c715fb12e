package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/router"
	"github.com/abhisek/daycheck/internal/screens/question"
	"github.com/abhisek/daycheck/internal/screens/results"
)

func sized() AppModel {
	m := newAppModel(questionset.Default(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

// send delivers msg and every message its command chain produces, the way
// the Bubble Tea runtime would.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	for msg != nil {
		updated, cmd := m.Update(msg)
		m = updated.(AppModel)
		if cmd == nil {
			return m
		}
		msg = cmd()
		if _, quit := msg.(tea.QuitMsg); quit {
			return m
		}
	}
	return m
}

func TestAppModel_EmptyBeforeSize(t *testing.T) {
	m := newAppModel(questionset.Default(), nil)
	assert.Empty(t, m.render())
}

func TestAppModel_TooSmall(t *testing.T) {
	m := newAppModel(questionset.Default(), nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "Terminal too small!")
}

func TestAppModel_FrameShowsHeaderAndFooter(t *testing.T) {
	m := sized()
	content := m.render()

	assert.Contains(t, content, "daycheck")
	assert.Contains(t, content, "0% answered")
	assert.Contains(t, content, "1-5")
	assert.Contains(t, content, "ctrl+c")
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := sized()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestAppModel_FullFlow(t *testing.T) {
	m := sized()

	for i := 0; i < 9; i++ {
		m = send(t, m, tea.KeyPressMsg{Code: '5', Text: "5"})
		m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	}
	require.Equal(t, 2, m.router.Depth())
	_, onResults := m.router.Active().(*results.ResultsScreen)
	require.True(t, onResults)
	assert.True(t, strings.Contains(m.render(), "100% answered"))

	// Back lands on the last question with answers kept.
	m = send(t, m, tea.KeyPressMsg{Code: 'b', Text: "b"})
	require.Equal(t, 1, m.router.Depth())
	qs := m.router.Active().(*question.QuestionScreen)
	assert.True(t, qs.State().IsLast())
	assert.Equal(t, 9, qs.State().AnsweredCount())

	// Finish again and restart.
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 2, m.router.Depth())
	m = send(t, m, tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.Equal(t, 1, m.router.Depth())
	assert.Equal(t, 0, qs.State().Progress())
	assert.Equal(t, 0, qs.State().Index())
}

func TestAppModel_PopAtBottomIsNoop(t *testing.T) {
	m := sized()
	m = send(t, m, router.PopScreenMsg{})
	assert.Equal(t, 1, m.router.Depth())
}
