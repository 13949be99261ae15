package dmx

import (
	"bytes"
	"fmt"
	"net"
	"time"

	"github.com/jsimonetti/go-artnet/packet"
)

// ArtNet nodes listen on a fixed UDP port.
const artnetUDPPort = 6454

// ArtnetPort sends DMX frames to an ArtNet node over UDP.
type ArtnetPort struct {
	addr      *net.UDPAddr
	shortName string
	longName  string

	conn *net.UDPConn
	seq  uint8
}

var _ DmxPort = (*ArtnetPort)(nil)

// NewArtnetPort creates a port targeting the node at ip. The names are
// cosmetic, normally taken from the node's poll reply.
func NewArtnetPort(ip net.IP, shortName, longName string) *ArtnetPort {
	return &ArtnetPort{
		addr:      &net.UDPAddr{IP: ip, Port: artnetUDPPort},
		shortName: shortName,
		longName:  longName,
	}
}

// DiscoverArtnetPorts broadcasts an ArtPoll and collects the nodes that
// reply within wait.
func DiscoverArtnetPorts(wait time.Duration) ([]*ArtnetPort, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{Port: artnetUDPPort})
	if err != nil {
		return nil, fmt.Errorf("bind artnet socket: %w", err)
	}
	defer conn.Close()

	poll, err := packet.NewArtPollPacket().MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshal artnet poll: %w", err)
	}

	broadcast := &net.UDPAddr{IP: net.IPv4bcast, Port: artnetUDPPort}
	if _, err := conn.WriteToUDP(poll, broadcast); err != nil {
		return nil, fmt.Errorf("send artnet poll: %w", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(wait)); err != nil {
		return nil, err
	}

	var ports []*ArtnetPort
	buf := make([]byte, 1024)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			// The deadline expiring ends discovery.
			break
		}

		p, err := packet.Unmarshal(buf[:n])
		if err != nil {
			continue
		}

		if reply, ok := p.(*packet.ArtPollReplyPacket); ok {
			ip := net.IPv4(reply.IPAddress[0], reply.IPAddress[1], reply.IPAddress[2], reply.IPAddress[3])
			ports = append(ports, NewArtnetPort(
				ip,
				nullTerminated(reply.ShortName[:]),
				nullTerminated(reply.LongName[:]),
			))
		}
	}

	return ports, nil
}

// Open binds the sending socket. Opening an open port is a no-op.
func (p *ArtnetPort) Open() error {
	if p.conn != nil {
		return nil
	}

	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return fmt.Errorf("bind artnet socket: %w", err)
	}
	p.conn = conn
	return nil
}

// Close releases the socket.
func (p *ArtnetPort) Close() error {
	if p.conn == nil {
		return ErrPortClosed
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

// Write sends one frame as an ArtDMX packet. ArtNet requires an even data
// length of at least two channels, so frames are padded accordingly and
// truncated at 512 channels.
func (p *ArtnetPort) Write(frame []byte) error {
	if p.conn == nil {
		return ErrPortClosed
	}

	if len(frame) > MaxUniverseSize {
		frame = frame[:MaxUniverseSize]
	}

	length := len(frame)
	if length < 2 {
		length = 2
	}
	if length%2 != 0 {
		length++
	}

	dmx := packet.NewArtDMXPacket()
	dmx.Sequence = p.nextSequence()
	dmx.Length = uint16(length)
	copy(dmx.Data[:], frame)

	b, err := dmx.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal artdmx: %w", err)
	}

	if _, err := p.conn.WriteToUDP(b, p.addr); err != nil {
		return fmt.Errorf("send artdmx to %s: %w", p.addr, err)
	}
	return nil
}

// nextSequence returns the next ArtDMX sequence number, skipping zero which
// nodes interpret as "sequencing disabled".
func (p *ArtnetPort) nextSequence() uint8 {
	p.seq++
	if p.seq == 0 {
		p.seq = 1
	}
	return p.seq
}

// Addr returns the node address frames are sent to.
func (p *ArtnetPort) Addr() string {
	return p.addr.String()
}

func (p *ArtnetPort) String() string {
	return fmt.Sprintf("artnet output %s at %s (%s)", p.shortName, p.addr.IP, p.longName)
}

func nullTerminated(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
