package results

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/daycheck/internal/router"
	"github.com/abhisek/daycheck/internal/screen"
	sess "github.com/abhisek/daycheck/internal/session"
	"github.com/abhisek/daycheck/internal/ui/components"
	"github.com/abhisek/daycheck/internal/ui/layout"
	"github.com/abhisek/daycheck/internal/ui/theme"
)

// BackMsg is delivered to the question screen when the user goes back.
type BackMsg struct{}

// RestartMsg is delivered to the question screen when the user restarts.
type RestartMsg struct{}

type keyMap struct {
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsScreen displays the per-category outcome of a finished attempt.
type ResultsScreen struct {
	summary *sess.Summary
	keys    keyMap
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyMapProvider = (*ResultsScreen)(nil)
var _ screen.ProgressProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for summary.
func New(summary *sess.Summary) *ResultsScreen {
	return &ResultsScreen{summary: summary, keys: newKeyMap()}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyBindings() []key.Binding {
	return []key.Binding{s.keys.Back, s.keys.Restart, s.keys.Quit}
}

func (s *ResultsScreen) Progress() int {
	if s.summary == nil {
		return 0
	}
	return s.summary.Progress
}

// Summary returns the summary being displayed.
func (s *ResultsScreen) Summary() *sess.Summary {
	return s.summary
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch {
	case key.Matches(kmsg, s.keys.Back):
		return s, popThen(BackMsg{})
	case key.Matches(kmsg, s.keys.Restart):
		return s, popThen(RestartMsg{})
	case key.Matches(kmsg, s.keys.Quit):
		return s, tea.Quit
	}
	return s, nil
}

func popThen(then tea.Msg) tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{Then: then} }
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	cardWidth := layout.CardWidth(width)

	var b strings.Builder

	b.WriteString(theme.Title.Foreground(theme.Primary).Render(sum.Title + " results"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(sum.CompletenessText()))
	b.WriteString("\n\n")

	labelWidth := 0
	for _, a := range sum.Aggregates {
		labelWidth = max(labelWidth, lipgloss.Width(a.Label))
	}
	label := lipgloss.NewStyle().Width(labelWidth + 2).Foreground(theme.Text).Bold(true)

	// Averages.
	b.WriteString(theme.Subtitle.Render("Averages"))
	b.WriteString("\n")
	for _, a := range sum.Aggregates {
		line := label.Render(a.Label) +
			theme.Body.Render(fmt.Sprintf("average %s (total %d)", a.AverageText(), a.Sum))
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Bars.
	b.WriteString(theme.Subtitle.Render("Scores"))
	b.WriteString("\n")
	barWidth := cardWidth - labelWidth - 2
	for _, a := range sum.Aggregates {
		bar := components.NewProgressBar(a.Percentage, barWidth).WithCaption(a.BarText())
		b.WriteString(label.Render(a.Label) + bar.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton("Back", false).View(),
		"  ",
		components.NewButton("Restart", true).View(),
	)
	b.WriteString(buttons)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cardWidth).Render(b.String()))
}
