package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorBase     lipgloss.Color = "#1e1e2e"
)

const (
	colorAccent = colorPink
	colorMuted  = colorOverlay1
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	metaStyle  = lipgloss.NewStyle().Foreground(colorSubtext0)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	captionStyle = lipgloss.NewStyle().Italic(true).Foreground(colorTeal).MarginBottom(1)
	markerStyle  = lipgloss.NewStyle().Foreground(colorText)
	tagStyle     = lipgloss.NewStyle().Foreground(colorBlue)
	coordStyle   = lipgloss.NewStyle().Foreground(colorGreen)
)

// Filled button for the active mode, outlined for the others.
var activeButtonStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorBase).
	Background(colorPeach).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorPeach).
	Padding(0, 1)

var outlineButtonStyle = lipgloss.NewStyle().
	Foreground(colorText).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSurface1).
	Padding(0, 1)
