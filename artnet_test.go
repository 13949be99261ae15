package dmx

import (
	"net"
	"testing"
	"time"

	"github.com/jsimonetti/go-artnet/packet"
	"github.com/stretchr/testify/require"
)

func TestArtnetPortWrite(t *testing.T) {
	node, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	t.Cleanup(func() { node.Close() })

	port := &ArtnetPort{
		addr:      node.LocalAddr().(*net.UDPAddr),
		shortName: "node",
		longName:  "test node",
	}
	require.NoError(t, port.Open())
	t.Cleanup(func() { port.Close() })

	frame := []byte{10, 20, 30}
	require.NoError(t, port.Write(frame))

	require.NoError(t, node.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 1024)
	n, _, err := node.ReadFromUDP(buf)
	require.NoError(t, err)

	p, err := packet.Unmarshal(buf[:n])
	require.NoError(t, err)

	dmxPacket, ok := p.(*packet.ArtDMXPacket)
	require.True(t, ok, "expected an ArtDMX packet, got %T", p)

	// Three channels pad to the even length ArtNet requires.
	require.EqualValues(t, 4, dmxPacket.Length)
	require.Equal(t, frame, dmxPacket.Data[:3])
	require.EqualValues(t, 1, dmxPacket.Sequence)
}

func TestArtnetPortSequenceSkipsZero(t *testing.T) {
	port := &ArtnetPort{seq: 255}
	require.EqualValues(t, 1, port.nextSequence())
	require.EqualValues(t, 2, port.nextSequence())
}

func TestArtnetPortWriteWhenClosed(t *testing.T) {
	port := NewArtnetPort(net.IPv4(127, 0, 0, 1), "node", "test node")
	require.ErrorIs(t, port.Write([]byte{1}), ErrPortClosed)
	require.ErrorIs(t, port.Close(), ErrPortClosed)
}

func TestNullTerminated(t *testing.T) {
	require.Equal(t, "abc", nullTerminated([]byte{'a', 'b', 'c', 0, 'x'}))
	require.Equal(t, "abc", nullTerminated([]byte("abc")))
	require.Equal(t, "", nullTerminated([]byte{0}))
}
