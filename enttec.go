package dmx

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// Widget message framing.
const (
	msgStart = 0x7E
	msgEnd   = 0xE7

	labelSetParameters = 4
	labelSendDMX       = 6

	// Every DMX payload starts with the null start code.
	dmxStartCode = 0
)

// EnttecPort drives an Enttec USB DMX Pro widget (or compatible clone)
// attached as a USB serial device.
type EnttecPort struct {
	mu     sync.Mutex
	path   string
	config Config

	fd       int
	open     bool
	prevLine LineSettings

	// paramsDirty marks that the widget parameters changed and must be
	// retransmitted before the next frame.
	paramsDirty bool

	payload []byte
	out     []byte
}

var _ DmxPort = (*EnttecPort)(nil)

// NewEnttecPort creates a port for the widget at the given device path. The
// port is not opened yet.
func NewEnttecPort(path string, opts ...Option) (*EnttecPort, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	return &EnttecPort{
		path:        path,
		config:      config,
		fd:          -1,
		paramsDirty: true,
	}, nil
}

// Open opens the device node and walks it through the full line setup:
// exclusive claim, raw-mode configuration, flush, and (optionally) lowering
// the RTS direction line. The pre-existing line settings are saved and
// restored when the port is closed. Opening an open port is a no-op.
func (p *EnttecPort) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.open {
		return nil
	}

	fd, err := OpenPort(p.path)
	if err != nil {
		return err
	}

	prev, err := ConfigureLine(fd, p.config.DirectionControl)
	if err != nil {
		sysClose(fd)
		return fmt.Errorf("configure %s: %w", p.path, err)
	}

	p.fd = fd
	p.prevLine = prev
	p.open = true
	p.paramsDirty = true
	return nil
}

// Close drains pending output, restores the line settings saved at open,
// and releases the descriptor (which also drops the exclusive claim).
func (p *EnttecPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return ErrPortClosed
	}

	// Best effort: a wedged widget should not keep the descriptor open.
	_ = DrainOutput(p.fd)
	_ = Apply(p.fd, p.prevLine)

	err := sysClose(p.fd)
	p.fd = -1
	p.open = false
	return err
}

// Write sends one frame of channel levels, padded to the universe minimum
// and truncated at 512 channels. If the widget parameters changed since the
// last frame they are retransmitted first.
func (p *EnttecPort) Write(frame []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.open {
		return ErrPortClosed
	}

	if p.paramsDirty {
		p.out = appendMessage(p.out[:0], labelSetParameters, p.config.paramsPayload())
		if err := p.writeAll(p.out); err != nil {
			return err
		}
		p.paramsDirty = false
	}

	if len(frame) > MaxUniverseSize {
		frame = frame[:MaxUniverseSize]
	}
	p.payload = append(p.payload[:0], dmxStartCode)
	p.payload = append(p.payload, frame...)
	for len(p.payload) < MinUniverseSize+1 {
		p.payload = append(p.payload, 0)
	}

	p.out = appendMessage(p.out[:0], labelSendDMX, p.payload)
	return p.writeAll(p.out)
}

// SetBreakTime updates the widget break time (10.67µs units, 9-127).
func (p *EnttecPort) SetBreakTime(v uint8) error {
	return p.updateConfig(WithBreakTime(v))
}

// SetMarkAfterBreak updates the mark-after-break time (10.67µs units, 1-127).
func (p *EnttecPort) SetMarkAfterBreak(v uint8) error {
	return p.updateConfig(WithMarkAfterBreak(v))
}

// SetRefreshRate updates the output rate in packets per second (0 = fastest).
func (p *EnttecPort) SetRefreshRate(v uint8) error {
	return p.updateConfig(WithRefreshRate(v))
}

func (p *EnttecPort) updateConfig(opt Option) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := opt(&p.config); err != nil {
		return err
	}
	p.paramsDirty = true
	return nil
}

// Path returns the device node this port drives.
func (p *EnttecPort) Path() string {
	return p.path
}

func (p *EnttecPort) String() string {
	return "enttec " + filepath.Base(p.path)
}

// paramsPayload encodes the widget parameters for a SetParameters message:
// user config size (unused), break, mark-after-break, refresh rate.
func (c Config) paramsPayload() []byte {
	return []byte{0, 0, c.BreakTime, c.MarkAfterBreakTime, c.RefreshRate}
}

// appendMessage frames a payload as a widget message into out. Messages are
// the payload plus five bytes of type, length, and framing.
func appendMessage(out []byte, label byte, payload []byte) []byte {
	n := len(payload)
	out = append(out, msgStart, label, byte(n), byte(n>>8))
	out = append(out, payload...)
	return append(out, msgEnd)
}

// writeAll pushes buf to the descriptor, riding out partial writes and the
// EAGAIN the non-blocking descriptor reports while the widget's buffer is
// full.
func (p *EnttecPort) writeAll(buf []byte) error {
	for len(buf) > 0 {
		n, err := sysWrite(p.fd, buf)
		if err == unix.EAGAIN {
			time.Sleep(time.Millisecond)
			continue
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", p.path, err)
		}
		buf = buf[n:]
	}
	return nil
}
