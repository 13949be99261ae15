package dmx

import (
	"errors"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// Configure a real pty end to end and read the applied state back.
func TestConfigureLineOnPty(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	fd, err := OpenPort(slave.Name())
	require.NoError(t, err)
	t.Cleanup(func() { unix.Close(fd) })

	prev, err := ConfigureLine(fd, false)
	require.NoError(t, err)

	applied, err := CurrentSettings(fd)
	require.NoError(t, err)

	want := prev.Clone()
	want.SetRaw()
	require.Equal(t, want.t.Cflag, applied.t.Cflag)
	require.Zero(t, applied.t.Lflag&(unix.ICANON|unix.ECHO|unix.ECHOE|unix.ISIG))
	require.Zero(t, applied.t.Oflag&unix.OPOST)
	require.EqualValues(t, 1, applied.t.Cc[unix.VMIN])
	require.EqualValues(t, 0, applied.t.Cc[unix.VTIME])

	// Restoring the snapshot round-trips.
	require.NoError(t, Apply(fd, prev))
	restored, err := CurrentSettings(fd)
	require.NoError(t, err)
	require.Equal(t, prev.t.Lflag, restored.t.Lflag)
}

// A pty has no modem lines, so the direction-control read phase must fail
// and surface the raw error code.
func TestClearRTSOnPty(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	fd, err := OpenPort(slave.Name())
	require.NoError(t, err)
	t.Cleanup(func() { unix.Close(fd) })

	err = ClearRTS(fd)
	require.Error(t, err)

	var dirErr *DirectionControlError
	require.True(t, errors.As(err, &dirErr))
	require.Equal(t, ControlRead, dirErr.Phase)
	require.NotZero(t, dirErr.Errno)
}

func TestEnttecPortOverPty(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	// Direction control is off: a pty has no RTS line, and this test wants
	// the deterministic path.
	port, err := NewEnttecPort(slave.Name(), WithDirectionControl(false))
	require.NoError(t, err)

	require.NoError(t, port.Open())
	t.Cleanup(func() { port.Close() })

	// Opening again is a no-op.
	require.NoError(t, port.Open())

	frame := []byte{255, 128, 0, 64}
	require.NoError(t, port.Write(frame))

	// First write carries the parameters message, then the frame message:
	// 5+5 bytes of params, 5+25 bytes of padded universe.
	received := readExactly(t, master, 40)

	params := received[:10]
	require.Equal(t, []byte{msgStart, labelSetParameters, 5, 0, 0, 0, 9, 1, 40, msgEnd}, params)

	dmxMsg := received[10:]
	require.Equal(t, byte(msgStart), dmxMsg[0])
	require.Equal(t, byte(labelSendDMX), dmxMsg[1])
	require.Equal(t, byte(MinUniverseSize+1), dmxMsg[2])
	require.Equal(t, byte(0), dmxMsg[3])
	require.Equal(t, byte(dmxStartCode), dmxMsg[4])
	require.Equal(t, frame, dmxMsg[5:5+len(frame)])
	require.Equal(t, byte(msgEnd), dmxMsg[len(dmxMsg)-1])

	// Second frame: parameters are no longer dirty, only the frame goes out.
	require.NoError(t, port.Write(frame))
	received = readExactly(t, master, 30)
	require.Equal(t, byte(labelSendDMX), received[1])
}

func TestEnttecPortParamsResentAfterChange(t *testing.T) {
	master, slave, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() { master.Close(); slave.Close() })

	port, err := NewEnttecPort(slave.Name(), WithDirectionControl(false))
	require.NoError(t, err)
	require.NoError(t, port.Open())
	t.Cleanup(func() { port.Close() })

	require.NoError(t, port.Write(nil))
	readExactly(t, master, 40)

	require.NoError(t, port.SetRefreshRate(0))
	require.NoError(t, port.Write(nil))

	received := readExactly(t, master, 40)
	require.Equal(t, []byte{msgStart, labelSetParameters, 5, 0, 0, 0, 9, 1, 0, msgEnd}, received[:10])
}

func TestEnttecPortWriteWhenClosed(t *testing.T) {
	port, err := NewEnttecPort("/dev/ttyUSB0")
	require.NoError(t, err)

	require.ErrorIs(t, port.Write([]byte{1}), ErrPortClosed)
	require.ErrorIs(t, port.Close(), ErrPortClosed)
}

// readExactly reads n bytes from the pty master, failing the test if they
// do not arrive promptly.
func readExactly(t *testing.T, master interface{ Read([]byte) (int, error) }, n int) []byte {
	t.Helper()

	result := make(chan []byte, 1)
	errCh := make(chan error, 1)
	go func() {
		buf := make([]byte, n)
		total := 0
		for total < n {
			m, err := master.Read(buf[total:])
			if err != nil {
				errCh <- err
				return
			}
			total += m
		}
		result <- buf
	}()

	select {
	case buf := <-result:
		return buf
	case err := <-errCh:
		t.Fatalf("read from master failed: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for %d bytes from master", n)
	}
	return nil
}
