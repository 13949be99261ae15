package dmx

// OfflinePort is a DmxPort that discards every frame. It lets a show run
// with no hardware attached and is always included in port listings.
type OfflinePort struct{}

var _ DmxPort = (*OfflinePort)(nil)

// NewOfflinePort returns the offline sink.
func NewOfflinePort() *OfflinePort {
	return &OfflinePort{}
}

func (*OfflinePort) Open() error  { return nil }
func (*OfflinePort) Close() error { return nil }

func (*OfflinePort) Write(_ []byte) error { return nil }

func (*OfflinePort) String() string { return "offline" }
