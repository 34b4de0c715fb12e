package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daycheck/internal/ui/theme"
)

// ProgressBar displays a horizontal bar filled to a whole percent.
type ProgressBar struct {
	Percent int
	Width   int

	// Caption, when set, replaces the default "NN%" suffix.
	Caption     string
	ShowCaption bool
}

// NewProgressBar creates a progress bar of the given total width.
func NewProgressBar(percent, width int) ProgressBar {
	return ProgressBar{
		Percent:     percent,
		Width:       width,
		ShowCaption: true,
	}
}

// WithCaption returns a copy showing caption after the bar.
func (p ProgressBar) WithCaption(caption string) ProgressBar {
	p.Caption = caption
	p.ShowCaption = true
	return p
}

// Filled returns the number of filled cells for a bar of barWidth cells.
func (p ProgressBar) Filled(barWidth int) int {
	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return barWidth * pct / 100
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	caption := ""
	if p.ShowCaption {
		caption = p.Caption
		if caption == "" {
			caption = fmt.Sprintf("%d%%", p.Percent)
		}
		caption = "  " + caption
	}

	barWidth := p.Width - lipgloss.Width(caption)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := p.Filled(barWidth)

	filledStr := lipgloss.NewStyle().
		Background(theme.Primary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.TrackDark).
		Render(strings.Repeat(" ", barWidth-filled))

	return filledStr + emptyStr + lipgloss.NewStyle().Foreground(theme.TextDim).Render(caption)
}
