package models

import (
	"context"
	"sync"

	dmx "github.com/generalelectrix/go-dmx"
	"github.com/generalelectrix/go-dmx/internal/patterns"
)

type OutputStatusMsg struct {
	Running bool
	Error   error
}

// ConsoleModel holds the live output state shared between the TUI update
// loop and the frame writer.
type ConsoleModel struct {
	port     dmx.DmxPort
	portName string

	// Output parameters
	pattern  patterns.Pattern
	level    uint8
	fps      int
	universe int

	// State
	frame   []byte
	tick    int
	frames  uint64
	running bool
	err     error
	ready   bool

	cancel context.CancelFunc
	ctx    context.Context
	mu     sync.RWMutex
}

func NewConsoleModel(port dmx.DmxPort, universe, fps int, level uint8) *ConsoleModel {
	ctx, cancel := context.WithCancel(context.Background())

	return &ConsoleModel{
		port:     port,
		portName: port.String(),
		pattern:  patterns.Rainbow,
		level:    level,
		fps:      fps,
		universe: universe,
		frame:    make([]byte, universe),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (m *ConsoleModel) Port() dmx.DmxPort {
	return m.port
}

func (m *ConsoleModel) PortName() string {
	return m.portName
}

func (m *ConsoleModel) Pattern() patterns.Pattern {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pattern
}

func (m *ConsoleModel) SetPattern(p patterns.Pattern) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pattern = p
}

func (m *ConsoleModel) Level() uint8 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.level
}

func (m *ConsoleModel) SetLevel(level uint8) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = level
}

// AdjustLevel shifts the level by delta, clamping at the byte range.
func (m *ConsoleModel) AdjustLevel(delta int) uint8 {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := int(m.level) + delta
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	m.level = uint8(v)
	return m.level
}

func (m *ConsoleModel) Fps() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fps
}

// AdjustFps shifts the refresh rate by delta, keeping it between 1 and 44.
func (m *ConsoleModel) AdjustFps(delta int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.fps + delta
	if v < 1 {
		v = 1
	}
	if v > 44 {
		v = 44
	}
	m.fps = v
	return m.fps
}

func (m *ConsoleModel) Universe() int {
	return m.universe
}

func (m *ConsoleModel) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.running
}

func (m *ConsoleModel) SetRunning(running bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.running = running
}

func (m *ConsoleModel) Error() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.err
}

func (m *ConsoleModel) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *ConsoleModel) IsReady() bool {
	return m.ready
}

func (m *ConsoleModel) SetReady(ready bool) {
	m.ready = ready
}

func (m *ConsoleModel) Frames() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.frames
}

// NextFrame fills the frame buffer with the current pattern and sends it to
// the port. The returned slice aliases the internal buffer and is only valid
// until the next call.
func (m *ConsoleModel) NextFrame() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.port == nil {
		return m.frame, dmx.ErrPortClosed
	}

	m.pattern.Fill(m.frame, m.tick, m.level, m.fps)
	m.tick++

	if err := m.port.Write(m.frame); err != nil {
		return m.frame, err
	}
	m.frames++
	return m.frame, nil
}

// Blackout zeroes the level and pushes one dark frame immediately.
func (m *ConsoleModel) Blackout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.level = 0
	for i := range m.frame {
		m.frame[i] = 0
	}
	if m.port == nil {
		return dmx.ErrPortClosed
	}
	return m.port.Write(m.frame)
}

func (m *ConsoleModel) Context() context.Context {
	return m.ctx
}

func (m *ConsoleModel) Cleanup() {
	if m.cancel != nil {
		m.cancel()
	}

	m.mu.Lock()
	if m.port != nil {
		m.port.Close()
		m.port = nil
	}
	m.mu.Unlock()
}
