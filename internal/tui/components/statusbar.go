package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/generalelectrix/go-dmx/internal/tui/colors"
	"github.com/generalelectrix/go-dmx/internal/tui/styles"
)

// OutputInfo describes the current output configuration shown in the bar.
type OutputInfo struct {
	Pattern  string
	Level    uint8
	Fps      int
	Universe int
}

type StatusBar struct {
	portName   string
	status     string
	err        error
	width      int
	outputInfo *OutputInfo
}

func NewStatusBar(portName string) *StatusBar {
	return &StatusBar{
		portName: portName,
		status:   "Starting...",
	}
}

func (sb *StatusBar) SetStatus(status string, err error) {
	sb.status = status
	sb.err = err
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetOutputInfo(info *OutputInfo) {
	sb.outputInfo = info
}

func (sb *StatusBar) SetRunning() {
	sb.status = "Running"
	sb.err = nil
}

func (sb *StatusBar) SetStopped(err error) {
	if err != nil {
		sb.status = fmt.Sprintf("Output failed: %v", err)
		sb.err = err
	} else {
		sb.status = "Stopped"
		sb.err = nil
	}
}

// View renders the full-width status bar: pattern badge, port with an
// output indicator, then refresh info and the frame counter on the right.
func (sb *StatusBar) View(running bool, frames uint64) string {
	terminalWidth := sb.width
	if terminalWidth <= 0 {
		terminalWidth = 80
	}

	// Section 1: Pattern badge
	patternText := "OFF"
	if sb.outputInfo != nil {
		patternText = sb.outputInfo.Pattern
	}
	patternStyle := lipgloss.NewStyle().
		Foreground(colors.Base).
		Background(colors.Mauve).
		Bold(true).
		Padding(0, 1)
	pattern := patternStyle.Render(patternText)

	// Section 2: Port name
	portStyle := lipgloss.NewStyle().
		Foreground(colors.Blue).
		Bold(true).
		Padding(0, 1)
	port := portStyle.Render(sb.portName)

	// Section 3: Single character output indicator
	var outIndicator string
	var outStyle lipgloss.Style

	if sb.err != nil {
		outStyle = lipgloss.NewStyle().Foreground(colors.Red)
		outIndicator = "✗"
	} else if running {
		outStyle = lipgloss.NewStyle().Foreground(colors.Green)
		outIndicator = "●"
	} else {
		outStyle = lipgloss.NewStyle().Foreground(colors.Red)
		outIndicator = "○"
	}
	outputIndicator := outStyle.Render(outIndicator)

	// Section 4: Output details
	var outInfo string
	if sb.outputInfo != nil {
		outInfo = fmt.Sprintf("⚡ %d ch @ %d fps, level %d",
			sb.outputInfo.Universe,
			sb.outputInfo.Fps,
			sb.outputInfo.Level)
	} else {
		outInfo = "⚡ dmx"
	}
	outInfoStyle := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1)
	outputDetails := outInfoStyle.Render(outInfo)

	// Section 5: Frame counter
	frameStyle := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1)
	frameCount := frameStyle.Render(fmt.Sprintf("frame %d", frames))

	dividerStyle := lipgloss.NewStyle().
		Foreground(colors.Surface2).
		Padding(0, 1)
	divider := dividerStyle.Render("│")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, pattern, port, outputIndicator, divider)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, outputDetails, divider, frameCount)

	leftWidth := lipgloss.Width(leftSide)
	rightWidth := lipgloss.Width(rightSide)
	spacerWidth := terminalWidth - leftWidth - rightWidth
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	statusBarStyle := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(terminalWidth)

	content := lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide)
	return statusBarStyle.Render(content)
}

// ErrorLine renders the current error, if any, styled for the content area.
func (sb *StatusBar) ErrorLine() string {
	if sb.err == nil {
		return ""
	}
	return styles.ErrorStyle.Render(sb.status)
}
