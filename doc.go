// Package dmx provides DMX512 output ports for Linux, built around the
// Enttec USB DMX Pro widget and its clones.
//
// The heart of the package is the serial line configurator: the sequence of
// termios operations that turns an ordinary USB serial device node into a
// raw binary pipe suitable for widget traffic. The sequence is
//
//	open -> exclusive claim -> snapshot settings -> raw mode -> apply -> flush
//
// with an optional final step that lowers the RTS line for RS485
// transceivers that use it to select transmit direction.
//
// # Basic Usage
//
// Open a widget on a known device node and send a frame:
//
//	port, err := dmx.NewEnttecPort("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := port.Open(); err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	frame := make([]byte, 512)
//	frame[0] = 255
//	err = port.Write(frame)
//
// # Port Discovery
//
// List every available output, including the always-present offline sink
// and any ArtNet nodes that answer a poll:
//
//	ports := dmx.ListPorts(2 * time.Second)
//	for _, p := range ports {
//	    fmt.Println(p)
//	}
//
// # Widget Parameters
//
// The widget's output timing is configurable at construction or later:
//
//	port, err := dmx.NewEnttecPort("/dev/ttyUSB0",
//	    dmx.WithBreakTime(9),
//	    dmx.WithMarkAfterBreak(1),
//	    dmx.WithRefreshRate(40),
//	)
//	err = port.SetRefreshRate(0) // retransmitted before the next frame
//
// # Using the configurator directly
//
// The termios layer is exposed for callers bringing their own device
// handling:
//
//	fd, err := dmx.OpenPort("/dev/ttyUSB0")
//	prev, err := dmx.ConfigureLine(fd, true)
//	// ... raw io on fd ...
//	dmx.Apply(fd, prev)
//	unix.Close(fd)
//
// # Error Handling
//
// Every configurator failure carries the raw OS error code:
//
//	var openErr *dmx.OpenError
//	if errors.As(err, &openErr) && openErr.Errno == unix.EACCES {
//	    // suggest adding the user to the dialout group
//	}
//
// # Platform Support
//
// The serial transport is Linux-only. The offline and ArtNet ports work
// anywhere.
package dmx
