package question

import (
	"errors"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/router"
	"github.com/abhisek/daycheck/internal/scoring"
	"github.com/abhisek/daycheck/internal/screen"
	"github.com/abhisek/daycheck/internal/screens/results"
	sess "github.com/abhisek/daycheck/internal/session"
	"github.com/abhisek/daycheck/internal/ui/components"
)

// MissingAnswerNotice is shown when advancing without a score.
const MissingAnswerNotice = "Please select a score first."

// QuestionScreen walks the user through the question set. It owns the
// attempt; the results screen reports back through results.BackMsg and
// results.RestartMsg.
type QuestionScreen struct {
	driver *sess.Driver
	memo   *scoring.Memo
	keys   keyMap
	notice string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyMapProvider = (*QuestionScreen)(nil)
var _ screen.ProgressProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen over set. A nil logger disables logging.
func New(set *questionset.Set, logger *zap.Logger) *QuestionScreen {
	return &QuestionScreen{
		driver: sess.NewDriver(set, logger),
		memo:   scoring.NewMemo(set),
		keys:   newKeyMap(),
	}
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionScreen) Title() string {
	return s.driver.State().Set().Title()
}

func (s *QuestionScreen) KeyBindings() []key.Binding {
	next := s.keys.Next
	if s.driver.State().IsLast() {
		next.SetHelp("enter", "see results")
	}
	return []key.Binding{s.keys.Select, s.keys.Left, next, s.keys.Quit}
}

func (s *QuestionScreen) Progress() int {
	return s.driver.State().Progress()
}

// State returns the current attempt state.
func (s *QuestionScreen) State() sess.State {
	return s.driver.State()
}

// Notice returns the message shown under the scale, if any.
func (s *QuestionScreen) Notice() string {
	return s.notice
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return s.handleKey(msg)
	case results.BackMsg:
		s.dispatch(sess.ReturnToQuestionsEvent{})
	case results.RestartMsg:
		s.dispatch(sess.RestartEvent{})
	}
	return s, nil
}

func (s *QuestionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	state := s.driver.State()
	if state.Finished() {
		return s, nil
	}
	q := state.CurrentQuestion()
	current, _ := state.Answer(q.ID)
	picker := components.NewScalePicker(state.Set().Scale(), current)

	switch {
	case key.Matches(msg, s.keys.Select):
		v, err := strconv.Atoi(msg.String())
		if err != nil {
			return s, nil
		}
		s.selectAnswer(q.ID, v)
	case key.Matches(msg, s.keys.Left):
		s.selectAnswer(q.ID, picker.Prev())
	case key.Matches(msg, s.keys.Right):
		s.selectAnswer(q.ID, picker.Next())
	case key.Matches(msg, s.keys.Next):
		return s.advance()
	}
	return s, nil
}

func (s *QuestionScreen) selectAnswer(id, value int) {
	if err := s.dispatch(sess.SelectAnswerEvent{QuestionID: id, Value: value}); err == nil {
		s.notice = ""
	}
}

func (s *QuestionScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.dispatch(sess.AdvanceEvent{}); err != nil {
		return s, nil
	}
	state := s.driver.State()
	if !state.Finished() {
		return s, nil
	}
	summary := sess.BuildSummary(state, s.memo.Score)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: results.New(summary)}
	}
}

// dispatch applies ev and turns a rejection into a notice.
func (s *QuestionScreen) dispatch(ev sess.Event) error {
	err := s.driver.Dispatch(ev)
	switch {
	case err == nil:
		if _, restarted := ev.(sess.RestartEvent); restarted {
			s.notice = ""
		}
	case errors.Is(err, sess.ErrMissingAnswer):
		s.notice = MissingAnswerNotice
	default:
		s.notice = err.Error()
	}
	return err
}
