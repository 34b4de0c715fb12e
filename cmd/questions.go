package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/daycheck/internal/questionset"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Validate and print the question set",
	Long: `Print the question set grouped by category.

Uses --questions or DAYCHECK_QUESTIONS when set, the built-in set otherwise.
Exits non-zero if the file is malformed.`,
	RunE: runQuestions,
}

func runQuestions(cmd *cobra.Command, args []string) error {
	cfg := resolveConfig(cmd)
	set, err := loadSet(cfg.QuestionsPath)
	if err != nil {
		return err
	}
	printSet(cmd.OutOrStdout(), set)
	return nil
}

func printSet(w io.Writer, set *questionset.Set) {
	fmt.Fprintf(w, "%s (%d questions)\n", set.Title(), set.Len())

	fmt.Fprintln(w, "\nScale:")
	for _, p := range set.Scale() {
		fmt.Fprintf(w, "  %d  %s\n", p.Value, p.Label)
	}

	for _, c := range set.Categories() {
		fmt.Fprintf(w, "\n%s (%d):\n", c.Label, set.CountIn(c.ID))
		for _, q := range set.Questions() {
			if q.Category != c.ID {
				continue
			}
			fmt.Fprintf(w, "  %3d  %s\n", q.ID, q.Text)
		}
	}
}
