package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/daycheck/internal/questionset"
	"github.com/abhisek/daycheck/internal/ui/theme"
)

// ScalePicker renders the five scale points side by side. Selected is the
// chosen value, or 0 when nothing is chosen yet.
type ScalePicker struct {
	Points   []questionset.ScalePoint
	Selected int
}

// NewScalePicker creates a picker over points.
func NewScalePicker(points []questionset.ScalePoint, selected int) ScalePicker {
	return ScalePicker{Points: points, Selected: selected}
}

// Next returns the value one step right of the selection, clamped to the
// scale. With nothing selected it starts at the middle point.
func (s ScalePicker) Next() int {
	if s.Selected == 0 {
		return s.middle()
	}
	if s.Selected < questionset.MaxScore {
		return s.Selected + 1
	}
	return s.Selected
}

// Prev returns the value one step left of the selection, clamped.
func (s ScalePicker) Prev() int {
	if s.Selected == 0 {
		return s.middle()
	}
	if s.Selected > questionset.MinScore {
		return s.Selected - 1
	}
	return s.Selected
}

func (s ScalePicker) middle() int {
	return (questionset.MinScore + questionset.MaxScore) / 2
}

// View renders the picker to fit width.
func (s ScalePicker) View(width int) string {
	if len(s.Points) == 0 {
		return ""
	}

	// Each box has two border cells; leave one cell of gap between boxes.
	cell := (width - (len(s.Points) - 1)) / len(s.Points)
	inner := cell - 2
	if inner < 3 {
		inner = 3
	}

	boxes := make([]string, 0, len(s.Points)*2)
	for i, p := range s.Points {
		style := theme.ScaleInactive
		if p.Value == s.Selected {
			style = theme.ScaleActive
		}
		label := p.Label
		if lipgloss.Width(label) > inner {
			label = truncate(label, inner)
		}
		box := style.Width(inner).Render(fmt.Sprintf("%d\n%s", p.Value, label))
		if i > 0 {
			boxes = append(boxes, " ")
		}
		boxes = append(boxes, box)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
