package screen

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyMapProvider is an optional interface for screens that publish their
// key bindings to the footer.
type KeyMapProvider interface {
	KeyBindings() []key.Binding
}

// ProgressProvider is an optional interface for screens that report the
// answered share shown in the header.
type ProgressProvider interface {
	Progress() int
}
