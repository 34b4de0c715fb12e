package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/scoring"
)

// Phase represents the current phase of the survey.
type Phase int

const (
	PhaseAnswering Phase = iota // Showing a question
	PhaseResults                // Showing the scored summary
)

func (p Phase) String() string {
	if p == PhaseResults {
		return "results"
	}
	return "answering"
}

// State is the run-time state of one survey attempt. It is a value: every
// transition returns a new State and leaves the receiver untouched.
type State struct {
	set       *questionset.Set
	index     int
	answers   map[int]int
	phase     Phase
	attemptID string
}

// New creates a fresh attempt positioned on the first question.
func New(set *questionset.Set) State {
	return State{
		set:       set,
		phase:     PhaseAnswering,
		attemptID: uuid.New().String(),
	}
}

// Set returns the question set the attempt runs over.
func (s State) Set() *questionset.Set { return s.set }

// Phase returns the current phase.
func (s State) Phase() Phase { return s.phase }

// Finished reports whether the attempt is showing results.
func (s State) Finished() bool { return s.phase == PhaseResults }

// Index returns the position of the current question.
func (s State) Index() int { return s.index }

// AttemptID identifies this attempt; Restart assigns a new one.
func (s State) AttemptID() string { return s.attemptID }

// CurrentQuestion returns the question at the current position.
func (s State) CurrentQuestion() questionset.Question {
	return s.set.At(s.index)
}

// IsLast reports whether the current question is the final one.
func (s State) IsLast() bool {
	return s.index == s.set.Len()-1
}

// Answer returns the recorded score for id.
func (s State) Answer(id int) (int, bool) {
	v, ok := s.answers[id]
	return v, ok
}

// Answers returns a copy of the recorded answers.
func (s State) Answers() map[int]int {
	out := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// AnsweredCount returns how many questions have a recorded score.
func (s State) AnsweredCount() int { return len(s.answers) }

// Complete reports whether every question has been answered.
func (s State) Complete() bool { return len(s.answers) == s.set.Len() }

// Progress returns the share of answered questions as a whole percent.
func (s State) Progress() int {
	return scoring.Progress(s.set, s.answers)
}

// Aggregates recomputes the per-category scores from the current answers.
func (s State) Aggregates() []scoring.Aggregate {
	return scoring.Score(s.set, s.answers)
}

// withAnswer returns a copy of answers with id set to v.
func (s State) withAnswer(id, v int) map[int]int {
	out := make(map[int]int, len(s.answers)+1)
	for k, old := range s.answers {
		out[k] = old
	}
	out[id] = v
	return out
}
