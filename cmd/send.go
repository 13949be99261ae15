/*
Copyright © 2025 generalelectrix
*/
package cmd

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	dmx "github.com/generalelectrix/go-dmx"
	"github.com/generalelectrix/go-dmx/internal/patterns"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send <port>",
	Short: "Send test frames to a DMX port",
	Long: `Send a burst of generated DMX frames to an output port.

The port argument selects the output:
- A device path opens an Enttec USB DMX Pro widget: /dev/ttyUSB0
- An IP address targets an Art-Net node: 192.168.1.42
- The literal "offline" discards frames (useful for dry runs)

Frames are generated from a built-in test pattern and streamed at the
requested refresh rate.

Example usage:
  dmxctl send /dev/ttyUSB0
  dmxctl send /dev/ttyUSB0 --pattern strobe --level 128 --frames 400
  dmxctl send 192.168.1.42 --pattern rainbow
  dmxctl send offline --frames 10`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindWidgetFlags(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		target := args[0]

		patternName, _ := cmd.Flags().GetString("pattern")
		level, _ := cmd.Flags().GetUint8("level")
		fps, _ := cmd.Flags().GetInt("fps")
		frames, _ := cmd.Flags().GetInt("frames")
		universe := viper.GetInt("universe")

		pattern, err := patterns.FromName(patternName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if universe < dmx.MinUniverseSize || universe > dmx.MaxUniverseSize {
			fmt.Fprintf(os.Stderr, "Error: universe size must be between %d and %d\n",
				dmx.MinUniverseSize, dmx.MaxUniverseSize)
			os.Exit(1)
		}
		if fps < 1 {
			fmt.Fprintln(os.Stderr, "Error: fps must be at least 1")
			os.Exit(1)
		}

		port, err := openTarget(cmd, target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := sendFrames(port, pattern, universe, frames, fps, level); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringP("pattern", "p", "rainbow",
		fmt.Sprintf("Test pattern: %s", strings.Join(patterns.Names(), ", ")))
	sendCmd.Flags().Uint8P("level", "l", 255, "Peak channel level (0-255)")
	sendCmd.Flags().Int("fps", 40, "Frames per second")
	sendCmd.Flags().IntP("frames", "n", 200, "Number of frames to send")
	sendCmd.Flags().IntP("universe", "u", 512, "Universe size in channels")

	sendCmd.Flags().Int("break-time", 9, "Widget break time (9-127, units of 10.67us)")
	sendCmd.Flags().Int("mark-after-break", 1, "Widget mark after break time (1-127, units of 10.67us)")
	sendCmd.Flags().Int("refresh-rate", 40, "Widget refresh rate (0-40, 0 = as fast as possible)")
	sendCmd.Flags().Bool("no-direction-control", false, "Skip clearing RTS on the serial line")
}

// bindWidgetFlags exposes the widget parameter flags through viper so the
// config file can set defaults. Bound at run time since multiple commands
// share the same keys.
func bindWidgetFlags(cmd *cobra.Command) {
	viper.BindPFlag("universe", cmd.Flags().Lookup("universe"))
	viper.BindPFlag("break-time", cmd.Flags().Lookup("break-time"))
	viper.BindPFlag("mark-after-break", cmd.Flags().Lookup("mark-after-break"))
	viper.BindPFlag("refresh-rate", cmd.Flags().Lookup("refresh-rate"))
}

// openTarget builds the port for a target argument: "offline", an IP
// address, or an Enttec device path.
func openTarget(cmd *cobra.Command, target string) (dmx.DmxPort, error) {
	if strings.EqualFold(target, "offline") {
		return dmx.NewOfflinePort(), nil
	}

	if ip := net.ParseIP(target); ip != nil {
		return dmx.NewArtnetPort(ip, "dmxctl", "dmxctl send target"), nil
	}

	noDirection, _ := cmd.Flags().GetBool("no-direction-control")

	return dmx.NewEnttecPort(target,
		dmx.WithBreakTime(uint8(viper.GetInt("break-time"))),
		dmx.WithMarkAfterBreak(uint8(viper.GetInt("mark-after-break"))),
		dmx.WithRefreshRate(uint8(viper.GetInt("refresh-rate"))),
		dmx.WithDirectionControl(!noDirection),
	)
}

func sendFrames(port dmx.DmxPort, pattern patterns.Pattern, universe, frames, fps int, level uint8) error {
	// Styled output
	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		Bold(true)

	successStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("40")).
		Bold(true)

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	fmt.Printf("%s Opening %s...\n", infoStyle.Render("⚡"), port)

	if err := port.Open(); err != nil {
		return fmt.Errorf("%s %v", errorStyle.Render("✗"), err)
	}
	defer port.Close()

	fmt.Printf("%s Connected successfully\n", successStyle.Render("✓"))
	fmt.Printf("%s Sending %d frames of %q (%d channels @ %d fps)...\n",
		infoStyle.Render("📤"), frames, pattern, universe, fps)

	frame := make([]byte, universe)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for tick := 0; tick < frames; tick++ {
		pattern.Fill(frame, tick, level, fps)
		if err := port.Write(frame); err != nil {
			return fmt.Errorf("%s frame %d: %v", errorStyle.Render("✗"), tick, err)
		}
		<-ticker.C
	}

	fmt.Printf("%s Successfully sent %d frames\n", successStyle.Render("✓"), frames)
	return nil
}
