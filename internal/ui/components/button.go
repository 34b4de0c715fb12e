package components

import (
	"github.com/abhisek/daycheck/internal/ui/theme"
)

// Button is a static label styled as a primary or secondary action.
type Button struct {
	Label   string
	Primary bool
}

// NewButton creates a new button.
func NewButton(label string, primary bool) Button {
	return Button{Label: label, Primary: primary}
}

// View renders the button.
func (b Button) View() string {
	if b.Primary {
		return theme.ButtonPrimary.Render(b.Label)
	}
	return theme.ButtonSecondary.Render(b.Label)
}
