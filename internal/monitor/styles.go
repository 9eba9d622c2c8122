package monitor

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorAccent  = lipgloss.Color("#6BCF7F") // Green for enabled toggles
	colorOff     = lipgloss.Color("#6C757D") // Gray for disabled toggles
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue
	colorValue   = lipgloss.Color("#FFD93D") // Yellow for readouts
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorOff)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorValue)

	onStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	offStyle = lipgloss.NewStyle().
			Foreground(colorOff)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorOff).
			Padding(0, 1)
)
