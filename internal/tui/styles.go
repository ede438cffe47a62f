package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorLavender lipgloss.Color = "#b4befe"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPink)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	draggingStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	descStyle     = lipgloss.NewStyle().Foreground(colorSubtext0)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay0)
	okStyle       = lipgloss.NewStyle().Foreground(colorGreen)
	errStyle      = lipgloss.NewStyle().Foreground(colorRed)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
)
