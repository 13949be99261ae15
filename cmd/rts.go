/*
Copyright © 2025 generalelectrix
*/
package cmd

import (
	"fmt"
	"os"

	dmx "github.com/generalelectrix/go-dmx"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"
)

// rtsCmd represents the rts command
var rtsCmd = &cobra.Command{
	Use:   "rts <port>",
	Short: "Clear the RTS signal on a serial device",
	Long: `Drop the RTS (Request To Send) line on a serial device.

Some RS485 converter boards use RTS to switch between transmit and receive.
Clearing RTS leaves the transceiver in transmit mode, which is what a DMX
output widget needs. This is done automatically when an Enttec port is
opened with direction control enabled; this command applies it by hand to
an already-configured device.

Examples:
  dmxctl rts /dev/ttyUSB0`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := args[0]

		fd, err := dmx.OpenPort(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer unix.Close(fd)

		if err := dmx.ClearRTS(fd); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing RTS: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("RTS cleared on %s\n", portPath)
	},
}

func init() {
	rootCmd.AddCommand(rtsCmd)
}
