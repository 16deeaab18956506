package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the focus bar.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Title   lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Title:   lipgloss.Color("#FFEAA7"), // Yellow
}

// Styles contains the lipgloss styles for the focus bar.
type Styles struct {
	Bar     lipgloss.Style
	Focus   lipgloss.Style
	Path    lipgloss.Style
	Message lipgloss.Style
	Error   lipgloss.Style
	Input   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Bar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 2),
		Focus: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Title),
		Path: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Message: lipgloss.NewStyle().
			Foreground(Colors.Success),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error),
		Input: lipgloss.NewStyle().
			Foreground(Colors.Title),
	}
}
