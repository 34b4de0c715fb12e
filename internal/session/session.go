package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/daycheck/internal/questionset"
)

// SelectAnswer records value for questionID, overwriting any earlier score.
// Selecting the same value twice yields an equal State.
func (s State) SelectAnswer(questionID, value int) (State, error) {
	if s.phase != PhaseAnswering {
		return s, ErrNotAnswering
	}
	if _, ok := s.set.Lookup(questionID); !ok {
		return s, &AnswerError{QuestionID: questionID, Value: value, Reason: "unknown question"}
	}
	if value < questionset.MinScore || value > questionset.MaxScore {
		return s, &AnswerError{
			QuestionID: questionID,
			Value:      value,
			Reason:     fmt.Sprintf("must be between %d and %d", questionset.MinScore, questionset.MaxScore),
		}
	}

	next := s
	next.answers = s.withAnswer(questionID, value)
	return next, nil
}

// Advance moves to the next question, or to results from the last one.
// The current question must have a recorded score.
func (s State) Advance() (State, error) {
	if s.phase != PhaseAnswering {
		return s, ErrNotAnswering
	}
	q := s.CurrentQuestion()
	if _, ok := s.answers[q.ID]; !ok {
		return s, fmt.Errorf("question %d: %w", q.ID, ErrMissingAnswer)
	}

	next := s
	if s.IsLast() {
		next.phase = PhaseResults
	} else {
		next.index++
	}
	return next, nil
}

// Restart clears every answer and starts a new attempt on the first question.
// It is valid in any phase.
func (s State) Restart() State {
	return State{
		set:       s.set,
		phase:     PhaseAnswering,
		attemptID: uuid.New().String(),
	}
}

// ReturnToQuestions leaves results and lands on the last question with the
// answers kept. It does nothing while answering.
func (s State) ReturnToQuestions() State {
	if s.phase != PhaseResults {
		return s
	}
	next := s
	next.phase = PhaseAnswering
	next.index = s.set.Len() - 1
	return next
}

// Event is a user-triggered transition.
type Event interface {
	apply(State) (State, error)
	Name() string
}

// SelectAnswerEvent records a score.
type SelectAnswerEvent struct {
	QuestionID int
	Value      int
}

// AdvanceEvent moves forward.
type AdvanceEvent struct{}

// RestartEvent resets the attempt.
type RestartEvent struct{}

// ReturnToQuestionsEvent goes from results back to the last question.
type ReturnToQuestionsEvent struct{}

func (e SelectAnswerEvent) apply(s State) (State, error) { return s.SelectAnswer(e.QuestionID, e.Value) }
func (AdvanceEvent) apply(s State) (State, error) { return s.Advance() }
func (RestartEvent) apply(s State) (State, error) { return s.Restart(), nil }
func (ReturnToQuestionsEvent) apply(s State) (State, error) {
	return s.ReturnToQuestions(), nil
}

func (SelectAnswerEvent) Name() string { return "select_answer" }
func (AdvanceEvent) Name() string { return "advance" }
func (RestartEvent) Name() string { return "restart" }
func (ReturnToQuestionsEvent) Name() string { return "return_to_questions" }

// Apply runs ev against s. On error the returned State equals s.
func Apply(s State, ev Event) (State, error) {
	return ev.apply(s)
}
