package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: muted ink on slate, green/rose reserved for pass/fail.
var (
	Primary = lipgloss.Color("#2563EB") // Blue
	Accent  = lipgloss.Color("#D97706") // Amber
	Pass    = lipgloss.Color("#16A34A") // Green
	Fail    = lipgloss.Color("#E11D48") // Rose
	Text    = lipgloss.Color("#F1F5F9") // Off-white
	TextDim = lipgloss.Color("#94A3B8") // Slate
	BgCard  = lipgloss.Color("#1E293B") // Dark slate
	Border  = lipgloss.Color("#334155") // Slate
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Message = lipgloss.NewStyle().
		Foreground(Accent)

	Error = lipgloss.NewStyle().
		Foreground(Fail).
		Bold(true)
)

var (
	Passed = lipgloss.NewStyle().
		Foreground(Pass).
		Bold(true)

	Failed = lipgloss.NewStyle().
		Foreground(Fail)

	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)
