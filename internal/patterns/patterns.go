// Package patterns generates simple DMX test frames: flat levels, ramps,
// a rolling RGB rainbow, and a strobe. They exist to verify an output chain
// end to end, not to look good on stage.
package patterns

import (
	"fmt"
	"math"
	"strings"
)

// Pattern selects one of the built-in frame generators.
type Pattern int

const (
	Same Pattern = iota
	Rising
	Rainbow
	Strobe
)

var names = []string{"same", "rising", "rainbow", "strobe"}

func (p Pattern) String() string {
	if p < Same || p > Strobe {
		return "unknown"
	}
	return names[p]
}

// Names lists the accepted pattern names.
func Names() []string {
	return append([]string(nil), names...)
}

// FromName parses a pattern name.
func FromName(name string) (Pattern, error) {
	for i, n := range names {
		if strings.EqualFold(name, n) {
			return Pattern(i), nil
		}
	}
	return Same, fmt.Errorf("unknown pattern %q (valid: %s)", name, strings.Join(names, ", "))
}

// Next cycles forward through the patterns.
func (p Pattern) Next() Pattern {
	return (p + 1) % Pattern(len(names))
}

// Prev cycles backward through the patterns.
func (p Pattern) Prev() Pattern {
	return (p + Pattern(len(names)) - 1) % Pattern(len(names))
}

// Fill writes one frame of the pattern into frame. tick advances the
// animation, level scales the output amplitude, and period is the tick count
// of one full cycle for the patterns that have one.
func (p Pattern) Fill(frame []byte, tick int, level uint8, period int) {
	if period < 1 {
		period = 1
	}

	switch p {
	case Same:
		for i := range frame {
			frame[i] = level
		}
	case Rising:
		v := byte(int(level) * (tick % 256) / 255)
		for i := range frame {
			frame[i] = v
		}
	case Rainbow:
		arg := 2 * math.Pi * float64(tick) / float64(period)
		for i := range frame {
			phase := arg + 2*math.Pi*float64(i%3)/3
			frame[i] = byte((math.Sin(phase) + 1) / 2 * float64(level))
		}
	case Strobe:
		v := level * byte(tick%2)
		for i := range frame {
			frame[i] = v
		}
	}
}
