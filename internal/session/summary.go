package session

import (
	"fmt"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/scoring"
)

// Scorer computes aggregates; scoring.Score and (*scoring.Memo).Score both fit.
type Scorer func(set *questionset.Set, answers map[int]int) []scoring.Aggregate

// Summary holds the data displayed on the results screen.
type Summary struct {
	AttemptID  string
	Title      string
	Answered   int
	Total      int
	Complete   bool
	Progress   int
	Aggregates []scoring.Aggregate
}

// BuildSummary creates a Summary from the current state. A nil scorer means
// scoring.Score.
func BuildSummary(s State, scorer Scorer) *Summary {
	if scorer == nil {
		scorer = scoring.Score
	}
	return &Summary{
		AttemptID:  s.attemptID,
		Title:      s.set.Title(),
		Answered:   len(s.answers),
		Total:      s.set.Len(),
		Complete:   s.Complete(),
		Progress:   s.Progress(),
		Aggregates: scorer(s.set, s.answers),
	}
}

// CompletenessText describes whether every question was answered.
func (s *Summary) CompletenessText() string {
	if s.Complete {
		return fmt.Sprintf("All %d questions answered.", s.Total)
	}
	return fmt.Sprintf("%d of %d questions answered.", s.Answered, s.Total)
}
