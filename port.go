package dmx

import (
	"fmt"
	"time"
)

// DmxPort is a single DMX output universe. Implementations are not safe for
// concurrent use; a port belongs to one goroutine at a time.
type DmxPort interface {
	fmt.Stringer

	// Open readies the port for output. Opening an already-open port is a
	// no-op.
	Open() error

	// Close releases the port. The port may be reopened afterwards.
	Close() error

	// Write sends one frame of channel levels. Frames longer than 512
	// channels are truncated; short frames may be padded per the transport's
	// minimum.
	Write(frame []byte) error
}

// Universe size constraints.
const (
	// MinUniverseSize is the fewest channels a transport will put on the
	// wire; shorter frames are zero-padded to keep the time between breaks
	// above the DMX minimum.
	MinUniverseSize = 24

	// MaxUniverseSize is the size of a full DMX universe.
	MaxUniverseSize = 512
)

// ListPorts returns every available output target: the offline port first,
// then one port per attached Enttec-style USB device, then any ArtNet nodes
// that answer a poll within artnetWait. A zero artnetWait skips ArtNet
// discovery. The ports are returned unopened.
//
// Device scan failures are ignored; a machine with no /dev entries still
// gets the offline port.
func ListPorts(artnetWait time.Duration) []DmxPort {
	ports := []DmxPort{NewOfflinePort()}

	devices, err := ListDevices()
	if err == nil {
		for _, dev := range devices {
			port, err := NewEnttecPort(dev)
			if err != nil {
				continue
			}
			ports = append(ports, port)
		}
	}

	if artnetWait > 0 {
		nodes, err := DiscoverArtnetPorts(artnetWait)
		if err == nil {
			for _, node := range nodes {
				ports = append(ports, node)
			}
		}
	}

	return ports
}
