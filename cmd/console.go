/*
Copyright © 2025 generalelectrix
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	dmx "github.com/generalelectrix/go-dmx"
	"github.com/generalelectrix/go-dmx/internal/tui/components"
	"github.com/generalelectrix/go-dmx/internal/tui/keys"
	"github.com/generalelectrix/go-dmx/internal/tui/models"
	"github.com/generalelectrix/go-dmx/internal/tui/styles"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// consoleCmd represents the console command
var consoleCmd = &cobra.Command{
	Use:   "console [port]",
	Short: "Interactive DMX output console",
	Long: `Open an interactive console driving live DMX output.

The console streams generated test patterns to a port and shows the
channel levels as they go out. Patterns, output level, and speed are
adjustable live from the keyboard.

When no port is given, a picker lists the available ports. The port
argument accepts the same forms as the send command: a device path, an
Art-Net node IP, or "offline".

Example usage:
  dmxctl console
  dmxctl console /dev/ttyUSB0
  dmxctl console offline --fps 20`,
	Args: cobra.MaximumNArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindWidgetFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		fps, _ := cmd.Flags().GetInt("fps")
		level, _ := cmd.Flags().GetUint8("level")
		artnetWait, _ := cmd.Flags().GetDuration("artnet")
		universe := viper.GetInt("universe")

		if universe < dmx.MinUniverseSize || universe > dmx.MaxUniverseSize {
			fmt.Fprintf(os.Stderr, "Error: universe size must be between %d and %d\n",
				dmx.MinUniverseSize, dmx.MaxUniverseSize)
			os.Exit(1)
		}
		if fps < 1 {
			fmt.Fprintln(os.Stderr, "Error: fps must be at least 1")
			os.Exit(1)
		}

		var port dmx.DmxPort
		var err error
		if len(args) == 1 {
			port, err = openTarget(cmd, args[0])
		} else {
			port, err = pickPort(artnetWait)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if port == nil {
			// Picker dismissed without a selection.
			return
		}

		if err := runConsoleTUI(port, universe, fps, level); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	consoleCmd.Flags().Int("fps", 40, "Frames per second")
	consoleCmd.Flags().Uint8P("level", "l", 255, "Initial peak channel level (0-255)")
	consoleCmd.Flags().DurationP("artnet", "a", 0, "Art-Net discovery wait time for the port picker")
	consoleCmd.Flags().IntP("universe", "u", 512, "Universe size in channels")
	consoleCmd.Flags().Int("break-time", 9, "Widget break time (9-127, units of 10.67us)")
	consoleCmd.Flags().Int("mark-after-break", 1, "Widget mark after break time (1-127, units of 10.67us)")
	consoleCmd.Flags().Int("refresh-rate", 40, "Widget refresh rate (0-40, 0 = as fast as possible)")
	consoleCmd.Flags().Bool("no-direction-control", false, "Skip clearing RTS on the serial line")
}

// pickerModel represents the Bubble Tea model for the port picker
type pickerModel struct {
	picker   *components.Picker
	ports    []dmx.DmxPort
	keys     keys.PickerKeys
	help     help.Model
	selected dmx.DmxPort
}

func pickPort(artnetWait time.Duration) (dmx.DmxPort, error) {
	ports := dmx.ListPorts(artnetWait)
	if len(ports) == 0 {
		return nil, dmx.ErrNoPortsFound
	}

	names := make([]string, len(ports))
	types := make([]string, len(ports))
	for i, port := range ports {
		names[i] = port.String()
		types[i] = portType(port)
	}

	m := pickerModel{
		picker: components.NewPicker(names, types),
		ports:  ports,
		keys:   keys.NewPickerKeys(),
		help:   help.New(),
	}

	final, err := tea.NewProgram(&m).Run()
	if err != nil {
		return nil, err
	}
	return final.(*pickerModel).selected, nil
}

func (m *pickerModel) Init() tea.Cmd {
	return nil
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			idx, err := m.picker.Selected()
			if err == nil {
				m.selected = m.ports[idx]
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *pickerModel) View() string {
	title := styles.TitleStyle.Render("Select DMX output port")
	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.picker.View(),
		m.help.View(m.keys),
	)
}

// frameTickMsg drives the output loop at the configured frame rate.
type frameTickMsg time.Time

func frameTick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// consoleModel represents the Bubble Tea model for the console command
type consoleModel struct {
	*models.ConsoleModel
	meter     *components.Meter
	statusBar *components.StatusBar
	help      help.Model
	keys      keys.ConsoleKeys
	frame     []byte
}

func runConsoleTUI(port dmx.DmxPort, universe, fps int, level uint8) error {
	consoleState := models.NewConsoleModel(port, universe, fps, level)
	m := consoleModel{
		ConsoleModel: consoleState,
		meter:        components.NewMeter(0, 0), // Will be properly sized by WindowSizeMsg
		statusBar:    components.NewStatusBar(port.String()),
		help:         help.New(),
		keys:         keys.NewConsoleKeys(),
	}
	m.refreshStatusInfo()

	p := tea.NewProgram(&m, tea.WithAltScreen())

	// Open the port in the background so a slow open does not block the UI.
	go func() {
		if err := port.Open(); err != nil {
			p.Send(models.OutputStatusMsg{Running: false, Error: err})
			return
		}
		p.Send(models.OutputStatusMsg{Running: true, Error: nil})
	}()

	_, err := p.Run()

	m.Cleanup()
	return err
}

func (m *consoleModel) refreshStatusInfo() {
	m.statusBar.SetOutputInfo(&components.OutputInfo{
		Pattern:  m.Pattern().String(),
		Level:    m.Level(),
		Fps:      m.Fps(),
		Universe: m.Universe(),
	})
}

func (m *consoleModel) Init() tea.Cmd {
	return nil
}

func (m *consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Status bar and help are single lines, plus the content border.
		verticalMarginHeight := 4
		m.meter.SetSize(msg.Width, msg.Height-verticalMarginHeight)
		m.statusBar.SetWidth(msg.Width)
		m.SetReady(true)

	case models.OutputStatusMsg:
		m.SetRunning(msg.Running)
		if msg.Error != nil {
			m.SetError(msg.Error)
			m.statusBar.SetStopped(msg.Error)
			return m, nil
		}
		m.statusBar.SetRunning()
		return m, frameTick(m.Fps())

	case frameTickMsg:
		if !m.IsRunning() {
			return m, nil
		}
		frame, err := m.NextFrame()
		if err != nil {
			m.SetError(err)
			m.SetRunning(false)
			m.statusBar.SetStopped(err)
			return m, nil
		}
		m.frame = append(m.frame[:0], frame...)
		return m, frameTick(m.Fps())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Cleanup()
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPattern):
			m.SetPattern(m.Pattern().Next())

		case key.Matches(msg, m.keys.PrevPattern):
			m.SetPattern(m.Pattern().Prev())

		case key.Matches(msg, m.keys.LevelUp):
			m.AdjustLevel(16)

		case key.Matches(msg, m.keys.LevelDown):
			m.AdjustLevel(-16)

		case key.Matches(msg, m.keys.Faster):
			m.AdjustFps(5)

		case key.Matches(msg, m.keys.Slower):
			m.AdjustFps(-5)

		case key.Matches(msg, m.keys.Blackout):
			if err := m.Blackout(); err != nil {
				m.SetError(err)
				m.statusBar.SetStopped(err)
			}

		case key.Matches(msg, m.keys.Full):
			m.SetLevel(255)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		m.refreshStatusInfo()
	}

	return m, nil
}

func (m *consoleModel) View() string {
	var content string
	if m.IsReady() {
		content = m.meter.View(m.frame)
	} else {
		content = "Initializing..."
	}
	if errLine := m.statusBar.ErrorLine(); errLine != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, errLine, content)
	}

	contentWithBorder := styles.ContentBorderStyle.Render(content)
	statusBar := m.statusBar.View(m.IsRunning(), m.Frames())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		contentWithBorder,
		m.help.View(m.keys),
		statusBar,
	)
}
