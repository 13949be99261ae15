/*
Copyright © 2025 generalelectrix
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	dmx "github.com/generalelectrix/go-dmx"
	"github.com/spf13/cobra"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset <port>",
	Short: "Reset a USB DMX widget",
	Long: `Perform a USB-level reset on a DMX widget. This can recover widgets
that are hung or unresponsive without physically unplugging them.

The device will re-enumerate after reset, which may cause the port path
to change (e.g., /dev/ttyUSB0 might become /dev/ttyUSB1).

Requirements:
- usbreset utility must be installed (from usbutils package)
- Root/sudo permissions required for USB operations

Examples:
  sudo dmxctl reset /dev/ttyUSB0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !dmx.IsUSBResetAvailable() {
			fmt.Fprintln(os.Stderr, "Error: usbreset utility not available")
			fmt.Fprintln(os.Stderr, "Install with: sudo apt-get install usbutils")
			os.Exit(1)
		}

		portPath := args[0]
		fmt.Printf("Resetting USB device: %s\n", portPath)

		if err := dmx.ResetUSBDevice(portPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if errors.Is(err, dmx.ErrUSBInfoMissing) {
				fmt.Fprintln(os.Stderr, "This device does not appear to be a USB device")
			}
			os.Exit(1)
		}

		fmt.Println("USB device reset successfully")
		fmt.Println("Device will re-enumerate (port path may change)")
		fmt.Println("\nUse 'dmxctl list --table' to see updated device list")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
