package dmx

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Syscall entry points, swappable so failure paths can be exercised in tests.
var (
	sysOpen            = unix.Open
	sysClose           = unix.Close
	sysWrite           = unix.Write
	sysIoctlSetInt     = unix.IoctlSetInt
	sysIoctlGetInt     = unix.IoctlGetInt
	sysIoctlSetPtrInt  = unix.IoctlSetPointerInt
	sysIoctlGetTermios = unix.IoctlGetTermios
	sysIoctlSetTermios = unix.IoctlSetTermios
)

// LineSettings is an owned snapshot of a tty's termios configuration. It
// holds only inline scalar and array fields, so an ordinary assignment is a
// complete deep copy and no explicit release step exists. A value is obtained
// from a live handle via CurrentSettings and only takes effect when pushed
// back with Apply.
type LineSettings struct {
	t unix.Termios
}

// Clone returns an independently owned copy. Mutating the clone never
// affects the source.
func (s LineSettings) Clone() LineSettings {
	return s
}

// SetRaw overwrites the settings with the raw 8-bit line discipline used by
// Enttec-style USB DMX widgets:
//
//   - 8 data bits, two stop bits (the widget's framing, not the usual 8N1)
//   - modem control lines ignored, receiver enabled
//   - no canonical processing, echo, or signal characters
//   - no output post-processing
//   - reads block for at least one byte, with no inter-byte timeout
//
// The control flags are replaced wholesale; input flags and control
// characters other than VMIN/VTIME keep whatever values the snapshot
// carried.
func (s *LineSettings) SetRaw() {
	s.t.Cflag = unix.CS8 | unix.CSTOPB | unix.CLOCAL | unix.CREAD
	s.t.Lflag &^= unix.ICANON | unix.ECHO | unix.ECHOE | unix.ISIG
	s.t.Oflag &^= unix.OPOST
	s.t.Cc[unix.VMIN] = 1
	s.t.Cc[unix.VTIME] = 0
}

// OpenPort opens a device node write-only, without blocking on carrier and
// without adopting it as the controlling terminal. The caller owns the
// returned descriptor and is responsible for closing it.
func OpenPort(path string) (int, error) {
	fd, err := sysOpen(path, unix.O_WRONLY|unix.O_NOCTTY|unix.O_NONBLOCK, 0)
	if err != nil {
		return -1, &OpenError{Path: path, Errno: asErrno(err)}
	}
	return fd, nil
}

// ClaimExclusive marks the open descriptor so further opens of the same
// device node by other processes fail until this one closes it. The claim is
// advisory: a process that already holds the device is unaffected.
func ClaimExclusive(fd int) error {
	if err := sysIoctlSetInt(fd, unix.TIOCEXCL, 0); err != nil {
		return &ExclusiveAccessError{Errno: asErrno(err)}
	}
	return nil
}

// CurrentSettings queries the live termios state of an open descriptor.
// Mutation always starts from this snapshot so fields SetRaw does not touch
// carry over instead of being zeroed.
func CurrentSettings(fd int) (LineSettings, error) {
	t, err := sysIoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return LineSettings{}, fmt.Errorf("query line settings: %w", err)
	}
	return LineSettings{t: *t}, nil
}

// Apply pushes settings into immediate effect (TCSANOW semantics): the
// kernel neither waits for pending output to drain nor discards pending
// input.
func Apply(fd int, s LineSettings) error {
	if err := sysIoctlSetTermios(fd, unix.TCSETS, &s.t); err != nil {
		return &ApplyError{Errno: asErrno(err)}
	}
	return nil
}

// FlushIO discards unread input and untransmitted output. Called once after
// Apply to drop stale bytes accumulated during the open/configure window.
func FlushIO(fd int) error {
	if err := sysIoctlSetInt(fd, unix.TCFLSH, unix.TCIOFLUSH); err != nil {
		return &FlushError{Errno: asErrno(err)}
	}
	return nil
}

// DrainOutput blocks until everything written to the descriptor has been
// transmitted.
func DrainOutput(fd int) error {
	if err := sysIoctlSetInt(fd, unix.TCSBRK, 1); err != nil {
		return fmt.Errorf("drain output: %w", err)
	}
	return nil
}

// ClearRTS lowers the RTS line, which RS485 transceivers repurpose as the
// transmit/receive direction select. It is a non-atomic read-modify-write of
// the modem-line bitmask; if the read fails the write is never attempted and
// the read's error code is returned. Nothing closes the window between the
// two steps, and some widget variants work fine without this call at all, so
// callers treat it as best-effort.
func ClearRTS(fd int) error {
	bits, err := sysIoctlGetInt(fd, unix.TIOCMGET)
	if err != nil {
		return &DirectionControlError{Phase: ControlRead, Errno: asErrno(err)}
	}
	if err := sysIoctlSetPtrInt(fd, unix.TIOCMSET, bits&^unix.TIOCM_RTS); err != nil {
		return &DirectionControlError{Phase: ControlWrite, Errno: asErrno(err)}
	}
	return nil
}

// ConfigureLine runs the whole configuration sequence on an already-open
// descriptor: claim exclusive access, snapshot the current settings, apply
// the raw policy, and flush stale io. When clearRTS is set the direction
// line is lowered as a final best-effort step; its failure is not reported.
//
// The returned snapshot is the state before configuration, suitable for
// restoring on close. On error the device is left in its last successfully
// reached state; unwinding (typically just closing the descriptor) is the
// caller's job.
func ConfigureLine(fd int, clearRTS bool) (LineSettings, error) {
	if err := ClaimExclusive(fd); err != nil {
		return LineSettings{}, err
	}

	prev, err := CurrentSettings(fd)
	if err != nil {
		return LineSettings{}, err
	}

	raw := prev.Clone()
	raw.SetRaw()

	if err := Apply(fd, raw); err != nil {
		return LineSettings{}, err
	}
	if err := FlushIO(fd); err != nil {
		return LineSettings{}, err
	}

	if clearRTS {
		// Probably not necessary for most widgets.
		_ = ClearRTS(fd)
	}

	return prev, nil
}
