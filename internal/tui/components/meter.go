package components

import (
	"strings"

	"github.com/generalelectrix/go-dmx/internal/tui/styles"
)

// meterGlyphs maps a channel level to a vertical bar character, darkest to
// brightest.
var meterGlyphs = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Meter renders a frame of channel levels as a compact bar display.
type Meter struct {
	width  int
	height int
}

func NewMeter(width, height int) *Meter {
	return &Meter{width: width, height: height}
}

func (m *Meter) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func glyphFor(level byte) rune {
	idx := int(level) * (len(meterGlyphs) - 1) / 255
	return meterGlyphs[idx]
}

// View renders the frame, one glyph per channel, wrapped to the meter width.
// Channels beyond what fits are dropped rather than scrolled.
func (m *Meter) View(frame []byte) string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 8
	}

	var rows []string
	for start := 0; start < len(frame) && len(rows) < height; start += width {
		end := start + width
		if end > len(frame) {
			end = len(frame)
		}
		var row strings.Builder
		for _, level := range frame[start:end] {
			row.WriteRune(glyphFor(level))
		}
		rows = append(rows, styles.MeterStyle.Render(row.String()))
	}
	if len(rows) == 0 {
		rows = append(rows, styles.MeterDimStyle.Render("no output"))
	}
	return strings.Join(rows, "\n")
}
