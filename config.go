package dmx

// Config holds the tunable parameters of an Enttec-style output port.
//
// The timing fields are sent to the widget itself, not to the serial layer:
// break and mark-after-break are expressed in the widget's 10.67 microsecond
// units, the refresh rate in packets per second.
type Config struct {
	BreakTime          uint8 // 9..127
	MarkAfterBreakTime uint8 // 1..127
	RefreshRate        uint8 // 1..40 pps, or 0 for fastest possible
	DirectionControl   bool  // lower RTS after configuring the line
}

// Option is a functional option for configuring a port
type Option func(*Config) error

// DefaultConfig returns the widget defaults: minimum break and mark times,
// fastest fixed framerate, direction line lowered.
func DefaultConfig() Config {
	return Config{
		BreakTime:          9,
		MarkAfterBreakTime: 1,
		RefreshRate:        40,
		DirectionControl:   true,
	}
}

// WithBreakTime sets the DMX output break time in 10.67µs units (9-127)
func WithBreakTime(v uint8) Option {
	return func(c *Config) error {
		if v < 9 || v > 127 {
			return ErrInvalidConfig
		}
		c.BreakTime = v
		return nil
	}
}

// WithMarkAfterBreak sets the mark-after-break time in 10.67µs units (1-127)
func WithMarkAfterBreak(v uint8) Option {
	return func(c *Config) error {
		if v < 1 || v > 127 {
			return ErrInvalidConfig
		}
		c.MarkAfterBreakTime = v
		return nil
	}
}

// WithRefreshRate sets the output rate in packets per second (1-40), or 0
// for the fastest rate the widget can manage
func WithRefreshRate(v uint8) Option {
	return func(c *Config) error {
		if v > 40 {
			return ErrInvalidConfig
		}
		c.RefreshRate = v
		return nil
	}
}

// WithDirectionControl controls whether the RTS line is lowered after the
// serial line is configured. Some RS485 transceivers need it to select
// transmit; plain USB widgets ignore it.
func WithDirectionControl(enabled bool) Option {
	return func(c *Config) error {
		c.DirectionControl = enabled
		return nil
	}
}
