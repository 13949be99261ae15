package patterns

import "testing"

func TestFromName(t *testing.T) {
	tests := []struct {
		name    string
		want    Pattern
		wantErr bool
	}{
		{"same", Same, false},
		{"RAINBOW", Rainbow, false},
		{"strobe", Strobe, false},
		{"disco", Same, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("FromName(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestCycle(t *testing.T) {
	p := Same
	for i := 0; i < len(Names()); i++ {
		p = p.Next()
	}
	if p != Same {
		t.Errorf("cycling through all patterns should wrap, ended at %v", p)
	}
	if Same.Prev() != Strobe {
		t.Errorf("Prev from the first pattern should wrap to the last")
	}
}

func TestFillSame(t *testing.T) {
	frame := make([]byte, 8)
	Same.Fill(frame, 0, 200, 1)
	for i, v := range frame {
		if v != 200 {
			t.Fatalf("frame[%d] = %d, want 200", i, v)
		}
	}
}

func TestFillStrobeAlternates(t *testing.T) {
	frame := make([]byte, 4)

	Strobe.Fill(frame, 0, 255, 1)
	if frame[0] != 0 {
		t.Errorf("even tick should be dark, got %d", frame[0])
	}

	Strobe.Fill(frame, 1, 255, 1)
	if frame[0] != 255 {
		t.Errorf("odd tick should be bright, got %d", frame[0])
	}
}

func TestFillRainbowStaysWithinLevel(t *testing.T) {
	frame := make([]byte, 512)
	for tick := 0; tick < 100; tick++ {
		Rainbow.Fill(frame, tick, 100, 40)
		for i, v := range frame {
			if v > 100 {
				t.Fatalf("tick %d frame[%d] = %d exceeds level 100", tick, i, v)
			}
		}
	}
}

func TestFillRainbowPhasesByThree(t *testing.T) {
	frame := make([]byte, 6)
	Rainbow.Fill(frame, 7, 255, 40)
	if frame[0] != frame[3] || frame[1] != frame[4] || frame[2] != frame[5] {
		t.Error("rainbow should repeat with a period of three channels")
	}
}
