package dmx

import "testing"

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.BreakTime != 9 {
		t.Errorf("Expected BreakTime 9, got %d", config.BreakTime)
	}

	if config.MarkAfterBreakTime != 1 {
		t.Errorf("Expected MarkAfterBreakTime 1, got %d", config.MarkAfterBreakTime)
	}

	if config.RefreshRate != 40 {
		t.Errorf("Expected RefreshRate 40, got %d", config.RefreshRate)
	}

	if !config.DirectionControl {
		t.Error("Expected DirectionControl enabled by default")
	}
}

func TestFunctionalOptions(t *testing.T) {
	config := DefaultConfig()

	if err := WithBreakTime(100)(&config); err != nil {
		t.Errorf("WithBreakTime failed: %v", err)
	}
	if config.BreakTime != 100 {
		t.Errorf("Expected BreakTime 100, got %d", config.BreakTime)
	}

	if err := WithMarkAfterBreak(12)(&config); err != nil {
		t.Errorf("WithMarkAfterBreak failed: %v", err)
	}
	if config.MarkAfterBreakTime != 12 {
		t.Errorf("Expected MarkAfterBreakTime 12, got %d", config.MarkAfterBreakTime)
	}

	if err := WithRefreshRate(0)(&config); err != nil {
		t.Errorf("WithRefreshRate failed: %v", err)
	}
	if config.RefreshRate != 0 {
		t.Errorf("Expected RefreshRate 0 (fastest), got %d", config.RefreshRate)
	}

	if err := WithDirectionControl(false)(&config); err != nil {
		t.Errorf("WithDirectionControl failed: %v", err)
	}
	if config.DirectionControl {
		t.Error("Expected DirectionControl disabled")
	}
}

func TestInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"break time below widget minimum", WithBreakTime(8)},
		{"break time above range", WithBreakTime(128)},
		{"mark after break zero", WithMarkAfterBreak(0)},
		{"mark after break above range", WithMarkAfterBreak(200)},
		{"refresh rate above range", WithRefreshRate(41)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := tt.opt(&config)
			if err == nil {
				t.Error("Expected error for invalid option")
			}
			if err != ErrInvalidConfig {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestNewEnttecPortRejectsInvalidOptions(t *testing.T) {
	_, err := NewEnttecPort("/dev/ttyUSB0", WithBreakTime(5))
	if err != ErrInvalidConfig {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}
