package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the boot summary
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - borders, title
	SuccessColor = lipgloss.Color("#43BF6D") // Green - subsystem up
	WarningColor = lipgloss.Color("#FFA500") // Orange - subsystem degraded
	MutedColor   = lipgloss.Color("#626262") // Gray - keys
	TextColor    = lipgloss.Color("#FFFFFF") // White - values
)

// Layout constants
const (
	MinTerminalWidth = 48
	MaxContentWidth  = 72
)

var (
	// TitleStyle is for the summary title
	TitleStyle = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)

	// KeyStyle is for field names
	KeyStyle = lipgloss.NewStyle().Foreground(MutedColor).Width(10)

	// ValueStyle is for field values
	ValueStyle = lipgloss.NewStyle().Foreground(TextColor)

	// UpStyle marks a running subsystem
	UpStyle = lipgloss.NewStyle().Foreground(SuccessColor)

	// DegradedStyle marks a subsystem that failed to start
	DegradedStyle = lipgloss.NewStyle().Foreground(WarningColor)
)

// Status markers
const (
	UpMarker       = "✓"
	DegradedMarker = "✗"
)

// BoxStyle returns the bordered container for the summary
func BoxStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2). // Account for border characters
		Padding(0, 1)
}

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
