// Package plain runs the survey as a line-oriented dialogue on any reader
// and writer. It is used when stdin is not a terminal.
package plain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/scoring"
	"github.com/abhisek/daycheck/internal/session"
	"github.com/abhisek/daycheck/internal/ui/components"
)

// Prompts shown after a rejected line.
const (
	MissingAnswerPrompt = "Please select a score first."
	InvalidAnswerPrompt = "Please enter a whole number from 1 to 5."
	UnknownChoicePrompt = "Please answer r, b or q."
)

const barCells = 20

type runner struct {
	out     io.Writer
	scanner *bufio.Scanner
	driver  *session.Driver
	memo    *scoring.Memo
}

// Run answers set from in, writing prompts and results to out. It returns
// when the user quits or in reaches EOF.
func Run(in io.Reader, out io.Writer, set *questionset.Set, logger *zap.Logger) error {
	r := &runner{
		out:     out,
		scanner: bufio.NewScanner(in),
		driver:  session.NewDriver(set, logger),
		memo:    scoring.NewMemo(set),
	}

	fmt.Fprintf(out, "%s\n%d questions · %d-point scale\n", set.Title(), set.Len(), questionset.MaxScore)

	for {
		state := r.driver.State()
		if state.Finished() {
			done, err := r.results(state)
			if done || err != nil {
				return err
			}
			continue
		}

		r.printQuestion(state)
		for {
			line, ok := r.readLine("score [1-5]: ")
			if !ok {
				return r.scanner.Err()
			}
			err := r.answer(state.CurrentQuestion().ID, line)
			if err == nil {
				break
			}
			fmt.Fprintln(out, promptFor(err))
		}
	}
}

func (r *runner) readLine(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		fmt.Fprintln(r.out)
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

// answer records line for question id, then advances. An empty line keeps
// any earlier answer.
func (r *runner) answer(id int, line string) error {
	if line != "" {
		v, err := strconv.Atoi(line)
		if err != nil {
			return fmt.Errorf("%q: %w", line, session.ErrInvalidAnswer)
		}
		if err := r.driver.Dispatch(session.SelectAnswerEvent{QuestionID: id, Value: v}); err != nil {
			return err
		}
	}
	return r.driver.Dispatch(session.AdvanceEvent{})
}

func promptFor(err error) string {
	switch {
	case errors.Is(err, session.ErrMissingAnswer):
		return MissingAnswerPrompt
	case errors.Is(err, session.ErrInvalidAnswer):
		return InvalidAnswerPrompt
	default:
		return err.Error()
	}
}

func (r *runner) printQuestion(state session.State) {
	set := state.Set()
	q := state.CurrentQuestion()

	fmt.Fprintf(r.out, "\n[%d/%d] %s (%s)\n", state.Index()+1, set.Len(), q.Text, set.Label(q.Category))
	for _, p := range set.Scale() {
		fmt.Fprintf(r.out, "  %d) %s\n", p.Value, p.Label)
	}
	if v, ok := state.Answer(q.ID); ok {
		fmt.Fprintf(r.out, "current answer: %d (press enter to keep)\n", v)
	}
}

// results prints the summary and handles the end-of-run choice. done is true
// when the run should stop.
func (r *runner) results(state session.State) (done bool, err error) {
	sum := session.BuildSummary(state, r.memo.Score)
	WriteSummary(r.out, sum)

	for {
		line, ok := r.readLine("[r]estart / [b]ack / [q]uit: ")
		if !ok {
			return true, r.scanner.Err()
		}
		switch strings.ToLower(line) {
		case "r", "restart":
			return false, r.driver.Dispatch(session.RestartEvent{})
		case "b", "back":
			return false, r.driver.Dispatch(session.ReturnToQuestionsEvent{})
		case "q", "quit":
			return true, nil
		}
		fmt.Fprintln(r.out, UnknownChoicePrompt)
	}
}

// WriteSummary prints sum as text: the completeness line, then each
// category's average and an ASCII bar.
func WriteSummary(w io.Writer, sum *session.Summary) {
	fmt.Fprintf(w, "\n%s results\n%s\n\n", sum.Title, sum.CompletenessText())

	width := 0
	for _, a := range sum.Aggregates {
		width = max(width, len(a.Label))
	}
	for _, a := range sum.Aggregates {
		filled := components.NewProgressBar(a.Percentage, barCells).Filled(barCells)
		bar := strings.Repeat("#", filled) + strings.Repeat(".", barCells-filled)
		fmt.Fprintf(w, "%-*s  average %s (total %d)\n", width, a.Label, a.AverageText(), a.Sum)
		fmt.Fprintf(w, "%-*s  [%s] %s\n", width, "", bar, a.BarText())
	}
	fmt.Fprintln(w)
}
