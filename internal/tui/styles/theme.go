package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/generalelectrix/go-dmx/internal/tui/colors"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Output status styles
	StatusRunningStyle = lipgloss.NewStyle().
				Foreground(colors.Green).
				Bold(true)

	StatusStoppedStyle = lipgloss.NewStyle().
				Foreground(colors.Red).
				Bold(true)

	StatusBlackoutStyle = lipgloss.NewStyle().
				Foreground(colors.Yellow).
				Bold(true)

	// Content area styles
	ContentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colors.Surface1)

	// Channel meter styles
	MeterStyle = lipgloss.NewStyle().
			Foreground(colors.Teal)

	MeterDimStyle = lipgloss.NewStyle().
			Foreground(colors.Surface2)

	// Error styles
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Red).
			Align(lipgloss.Center)

	// Info styles
	InfoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Align(lipgloss.Center)
)

type StatusType int

const (
	StatusRunning StatusType = iota
	StatusStopped
	StatusBlackout
	StatusError
)

func GetStatusStyle(status StatusType) lipgloss.Style {
	switch status {
	case StatusRunning:
		return StatusRunningStyle
	case StatusStopped:
		return StatusStoppedStyle
	case StatusBlackout:
		return StatusBlackoutStyle
	case StatusError:
		return StatusStoppedStyle
	default:
		return StatusStoppedStyle
	}
}
