package tui

import "charm.land/lipgloss/v2"

// Palette for the study session screens.
var (
	colorPrimary = lipgloss.Color("#7C5CFF") // Violet
	colorSuccess = lipgloss.Color("#36D399") // Green
	colorError   = lipgloss.Color("#FF6B6B") // Coral
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorDim     = lipgloss.Color("#94A3B8") // Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	contextStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	correctStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 3)
)
