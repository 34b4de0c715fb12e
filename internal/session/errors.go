package session

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAnswer is returned by Advance when the current question has
	// no recorded score.
	ErrMissingAnswer = errors.New("select a score first")

	// ErrInvalidAnswer is returned by SelectAnswer for a value outside the
	// scale or an unknown question id.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrNotAnswering is returned for question-phase operations attempted
	// while results are showing.
	ErrNotAnswering = errors.New("survey is showing results")
)

// AnswerError describes a rejected SelectAnswer call.
type AnswerError struct {
	QuestionID int
	Value      int
	Reason     string
}

func (e *AnswerError) Error() string {
	return fmt.Sprintf("%v: question %d, value %d: %s", ErrInvalidAnswer, e.QuestionID, e.Value, e.Reason)
}

func (e *AnswerError) Unwrap() error { return ErrInvalidAnswer }
