package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: one blue point color lights up selections.
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Glow      = lipgloss.Color("#93C5FD") // Light blue
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
	TrackDark = lipgloss.Color("#273449") // Bar track
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Notice = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)
)

// Scale buttons
var (
	ScaleActive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Glow).
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Align(lipgloss.Center)

	ScaleInactive = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Foreground(Text).
			Align(lipgloss.Center)
)

// Buttons
var (
	ButtonPrimary = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonSecondary = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Foreground(Text).
			Padding(0, 2)
)
