package question

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/ui/components"
	"github.com/abhisek/daycheck/internal/ui/layout"
	"github.com/abhisek/daycheck/internal/ui/theme"
)

func (s *QuestionScreen) View(width, height int) string {
	state := s.driver.State()
	set := state.Set()
	cardWidth := layout.CardWidth(width)

	var b strings.Builder

	// Heading.
	b.WriteString(theme.Title.Foreground(theme.Primary).Render(set.Title()))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("%d questions · %d-point scale", set.Len(), questionset.MaxScore)))
	b.WriteString("\n\n")

	// Progress: position in the set, answered share.
	caption := fmt.Sprintf("%d / %d  %d%%", state.Index()+1, set.Len(), state.Progress())
	b.WriteString(components.NewProgressBar(state.Progress(), cardWidth).WithCaption(caption).View())
	b.WriteString("\n\n")

	q := state.CurrentQuestion()
	b.WriteString(theme.Body.Bold(true).Width(cardWidth).Render(q.Text))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(set.Label(q.Category)))
	b.WriteString("\n\n")

	selected, _ := state.Answer(q.ID)
	b.WriteString(components.NewScalePicker(set.Scale(), selected).View(cardWidth))
	b.WriteString("\n\n")

	if s.notice != "" {
		b.WriteString(theme.Notice.Render(s.notice))
	} else {
		b.WriteString(theme.Hint.Render("Press 1-5 or use ←/→, then enter."))
	}
	b.WriteString("\n\n")

	label := "Next"
	if state.IsLast() {
		label = "See results"
	}
	b.WriteString(lipgloss.PlaceHorizontal(cardWidth, lipgloss.Right,
		components.NewButton(label, selected != 0).View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cardWidth).Render(b.String()))
}
