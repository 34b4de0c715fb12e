// Package scoring computes per-category aggregates from recorded answers.
// Every function here is a pure recomputation over its inputs.
package scoring

import (
	"fmt"
	"math"

	"github.com/abhisek/daycheck/internal/questionset"
)

// Aggregate is the derived score of one category.
type Aggregate struct {
	Category questionset.Category
	Label    string

	// Sum of the recorded scores in this category.
	Sum int

	// Answered is the number of answered questions in this category.
	Answered int

	// Total is the number of questions in this category.
	Total int

	// MaxPossible is Total times the top of the scale.
	MaxPossible int

	// Percentage is Sum over MaxPossible, rounded to a whole percent.
	Percentage int
}

// Average returns Sum/Answered. ok is false when nothing in the category was
// answered; callers must show that as absent rather than zero.
func (a Aggregate) Average() (avg float64, ok bool) {
	if a.Answered == 0 {
		return 0, false
	}
	return float64(a.Sum) / float64(a.Answered), true
}

// AverageText formats the average to two decimals, or "-" when absent.
func (a Aggregate) AverageText() string {
	avg, ok := a.Average()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.2f", avg)
}

// BarText is the bar caption "sum / max (pct%)".
func (a Aggregate) BarText() string {
	return fmt.Sprintf("%d / %d (%d%%)", a.Sum, a.MaxPossible, a.Percentage)
}

// Score computes one Aggregate per category of set, in the set's category
// order. Answers for ids outside the set are ignored.
func Score(set *questionset.Set, answers map[int]int) []Aggregate {
	cats := set.Categories()
	index := make(map[questionset.Category]int, len(cats))
	out := make([]Aggregate, len(cats))
	for i, c := range cats {
		index[c.ID] = i
		total := set.CountIn(c.ID)
		out[i] = Aggregate{
			Category:    c.ID,
			Label:       set.Label(c.ID),
			Total:       total,
			MaxPossible: total * questionset.MaxScore,
		}
	}

	for _, q := range set.Questions() {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		a := &out[index[q.Category]]
		a.Sum += v
		a.Answered++
	}

	for i := range out {
		if out[i].MaxPossible > 0 {
			out[i].Percentage = Round(float64(out[i].Sum) / float64(out[i].MaxPossible) * 100)
		}
	}
	return out
}

// Progress returns the share of answered questions as a whole percent.
func Progress(set *questionset.Set, answers map[int]int) int {
	if set.Len() == 0 {
		return 0
	}
	answered := 0
	for _, q := range set.Questions() {
		if _, ok := answers[q.ID]; ok {
			answered++
		}
	}
	return Round(float64(answered) / float64(set.Len()) * 100)
}

// Round rounds half up, so 2.5 becomes 3.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
