/*
Copyright © 2025 generalelectrix
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmx "github.com/generalelectrix/go-dmx"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available DMX output ports",
	Long: `List all DMX output ports reachable from this machine.

This command scans for:
- Enttec USB DMX Pro widgets on USB serial devices (ttyUSB*, ttyACM*)
- Art-Net nodes on the local network (with --artnet)
- The built-in offline port, which is always available

Art-Net discovery broadcasts an ArtPoll and waits for replies, so it is
off by default; pass a wait duration to enable it.`,
	Run: func(cmd *cobra.Command, args []string) {
		artnetWait, _ := cmd.Flags().GetDuration("artnet")
		filterType, _ := cmd.Flags().GetString("filter")
		tableFormat, _ := cmd.Flags().GetBool("table")

		ports := dmx.ListPorts(artnetWait)
		filteredPorts := filterPorts(ports, filterType)

		if len(filteredPorts) == 0 {
			if filterType != "" {
				fmt.Printf("No DMX ports found matching filter: %s\n", filterType)
			} else {
				fmt.Println("No DMX ports found")
			}
			return
		}

		if tableFormat {
			renderTable(filteredPorts)
		} else {
			renderSimple(filteredPorts)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().DurationP("artnet", "a", 0, "Art-Net discovery wait time (0 disables discovery)")
	listCmd.Flags().StringP("filter", "f", "", "Filter by port type: enttec, artnet, offline, all")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

// portType returns the classification shown in listings.
func portType(port dmx.DmxPort) string {
	switch port.(type) {
	case *dmx.EnttecPort:
		return "Enttec USB Pro"
	case *dmx.ArtnetPort:
		return "Art-Net"
	case *dmx.OfflinePort:
		return "Offline"
	default:
		return "DMX Port"
	}
}

// portDetail returns the address column for a port, when it has one.
func portDetail(port dmx.DmxPort) string {
	switch p := port.(type) {
	case *dmx.EnttecPort:
		return p.Path()
	case *dmx.ArtnetPort:
		return p.Addr()
	default:
		return ""
	}
}

// filterPorts filters the port list based on the specified filter type
func filterPorts(ports []dmx.DmxPort, filterType string) []dmx.DmxPort {
	if filterType == "" || filterType == "all" {
		return ports
	}

	var filtered []dmx.DmxPort
	for _, port := range ports {
		switch strings.ToLower(filterType) {
		case "enttec":
			if _, ok := port.(*dmx.EnttecPort); ok {
				filtered = append(filtered, port)
			}
		case "artnet":
			if _, ok := port.(*dmx.ArtnetPort); ok {
				filtered = append(filtered, port)
			}
		case "offline":
			if _, ok := port.(*dmx.OfflinePort); ok {
				filtered = append(filtered, port)
			}
		}
	}
	return filtered
}

// renderTable renders the port list in a styled static table format
func renderTable(ports []dmx.DmxPort) {
	fmt.Printf("Found %d DMX port(s):\n\n", len(ports))

	portWidth := 24
	typeWidth := 16
	detailWidth := 30

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		PaddingBottom(1)

	cellStyle := lipgloss.NewStyle().
		PaddingRight(2)

	header := fmt.Sprintf("%-*s %-*s %-*s",
		portWidth, "Port",
		typeWidth, "Type",
		detailWidth, "Address")
	fmt.Println(headerStyle.Render(header))

	for _, port := range ports {
		row := fmt.Sprintf("%-*s %-*s %-*s",
			portWidth, port.String(),
			typeWidth, portType(port),
			detailWidth, portDetail(port))
		fmt.Println(cellStyle.Render(row))
	}
}

// renderSimple renders the port list in simple text format
func renderSimple(ports []dmx.DmxPort) {
	for _, port := range ports {
		fmt.Println(port.String())
	}
}
