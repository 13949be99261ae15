package dmx

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Predefined error types for robust error handling
var (
	ErrPortClosed      = errors.New("dmx port is not open")
	ErrInvalidConfig   = errors.New("invalid port configuration")
	ErrNoPortsFound    = errors.New("no dmx ports found")
	ErrUSBInfoMissing  = errors.New("USB device information not available")
	ErrUSBResetMissing = errors.New("usbreset utility not available")
)

// OpenError reports a failed open of a serial device node. The raw OS error
// code is preserved in Errno so callers can distinguish not-found from
// permission problems and the like.
type OpenError struct {
	Path  string
	Errno unix.Errno
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s: %v", e.Path, e.Errno)
}

func (e *OpenError) Unwrap() error { return e.Errno }

// ExclusiveAccessError reports a denied TIOCEXCL claim on an open handle.
type ExclusiveAccessError struct {
	Errno unix.Errno
}

func (e *ExclusiveAccessError) Error() string {
	return fmt.Sprintf("claim exclusive access: %v", e.Errno)
}

func (e *ExclusiveAccessError) Unwrap() error { return e.Errno }

// ApplyError reports the kernel rejecting a line settings update.
type ApplyError struct {
	Errno unix.Errno
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply line settings: %v", e.Errno)
}

func (e *ApplyError) Unwrap() error { return e.Errno }

// FlushError reports a failed discard of pending input/output.
type FlushError struct {
	Errno unix.Errno
}

func (e *FlushError) Error() string {
	return fmt.Sprintf("flush pending io: %v", e.Errno)
}

func (e *FlushError) Unwrap() error { return e.Errno }

// ControlPhase identifies which half of the modem-line read-modify-write
// failed.
type ControlPhase int

const (
	ControlRead ControlPhase = iota
	ControlWrite
)

func (p ControlPhase) String() string {
	if p == ControlRead {
		return "read"
	}
	return "write"
}

// DirectionControlError reports a failure while toggling the RTS direction
// line. Phase tells whether the TIOCMGET read or the TIOCMSET write failed;
// when the read fails the write is never attempted.
type DirectionControlError struct {
	Phase ControlPhase
	Errno unix.Errno
}

func (e *DirectionControlError) Error() string {
	return fmt.Sprintf("direction control %s: %v", e.Phase, e.Errno)
}

func (e *DirectionControlError) Unwrap() error { return e.Errno }

// asErrno extracts the raw OS error code from a syscall error.
func asErrno(err error) unix.Errno {
	var errno unix.Errno
	errors.As(err, &errno)
	return errno
}
