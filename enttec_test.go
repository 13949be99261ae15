package dmx

import (
	"bytes"
	"testing"
)

func TestAppendMessage(t *testing.T) {
	tests := []struct {
		name    string
		label   byte
		payload []byte
		want    []byte
	}{
		{
			name:    "empty payload",
			label:   labelSendDMX,
			payload: nil,
			want:    []byte{0x7E, 6, 0, 0, 0xE7},
		},
		{
			name:    "parameters",
			label:   labelSetParameters,
			payload: []byte{0, 0, 9, 1, 40},
			want:    []byte{0x7E, 4, 5, 0, 0, 0, 9, 1, 40, 0xE7},
		},
		{
			name:    "length over one byte",
			label:   labelSendDMX,
			payload: make([]byte, 513),
			want:    append(append([]byte{0x7E, 6, 0x01, 0x02}, make([]byte, 513)...), 0xE7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := appendMessage(nil, tt.label, tt.payload)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("appendMessage() = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestAppendMessageReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	got := appendMessage(buf, labelSendDMX, []byte{1, 2, 3})
	if &got[0] != &buf[:1][0] {
		t.Error("message was not built into the provided buffer")
	}
}

func TestParamsPayload(t *testing.T) {
	c := Config{BreakTime: 12, MarkAfterBreakTime: 3, RefreshRate: 30}
	want := []byte{0, 0, 12, 3, 30}
	if got := c.paramsPayload(); !bytes.Equal(got, want) {
		t.Errorf("paramsPayload() = %v, want %v", got, want)
	}
}

func TestWriteFramePaddingAndTruncation(t *testing.T) {
	tests := []struct {
		name        string
		frame       []byte
		wantPayload int // including the DMX start code
	}{
		{"nil frame pads to minimum", nil, MinUniverseSize + 1},
		{"short frame pads to minimum", make([]byte, 10), MinUniverseSize + 1},
		{"exact minimum", make([]byte, MinUniverseSize), MinUniverseSize + 1},
		{"mid-size passes through", make([]byte, 300), 301},
		{"full universe", make([]byte, MaxUniverseSize), MaxUniverseSize + 1},
		{"oversized truncates", make([]byte, 600), MaxUniverseSize + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreSyscalls(t)

			var messages [][]byte
			sysWrite = func(fd int, b []byte) (int, error) {
				messages = append(messages, append([]byte(nil), b...))
				return len(b), nil
			}

			port, err := NewEnttecPort("/dev/ttyUSB0-sim")
			if err != nil {
				t.Fatal(err)
			}
			port.fd = 9
			port.open = true
			port.paramsDirty = false

			if err := port.Write(tt.frame); err != nil {
				t.Fatalf("Write failed: %v", err)
			}

			if len(messages) != 1 {
				t.Fatalf("got %d messages, want 1", len(messages))
			}
			msg := messages[0]
			if got := len(msg) - 5; got != tt.wantPayload {
				t.Errorf("payload length = %d, want %d", got, tt.wantPayload)
			}
			if msg[4] != dmxStartCode {
				t.Errorf("payload starts with %#x, want DMX start code", msg[4])
			}
		})
	}
}

func TestWriteResendsParamsWhenDirty(t *testing.T) {
	restoreSyscalls(t)

	var messages [][]byte
	sysWrite = func(fd int, b []byte) (int, error) {
		messages = append(messages, append([]byte(nil), b...))
		return len(b), nil
	}

	port, err := NewEnttecPort("/dev/ttyUSB0-sim")
	if err != nil {
		t.Fatal(err)
	}
	port.fd = 9
	port.open = true

	if err := port.Write(nil); err != nil {
		t.Fatal(err)
	}
	if len(messages) != 2 {
		t.Fatalf("first write sent %d messages, want params + frame", len(messages))
	}
	if messages[0][1] != labelSetParameters {
		t.Errorf("first message label = %d, want SetParameters", messages[0][1])
	}

	messages = nil
	if err := port.Write(nil); err != nil {
		t.Fatal(err)
	}
	if len(messages) != 1 || messages[0][1] != labelSendDMX {
		t.Errorf("second write should carry only the frame, got %d messages", len(messages))
	}

	if err := port.SetBreakTime(20); err != nil {
		t.Fatal(err)
	}
	messages = nil
	if err := port.Write(nil); err != nil {
		t.Fatal(err)
	}
	if len(messages) != 2 {
		t.Fatalf("write after parameter change sent %d messages, want params + frame", len(messages))
	}
	if messages[0][6] != 20 {
		t.Errorf("break time on the wire = %d, want 20", messages[0][6])
	}
}

func TestEnttecPortString(t *testing.T) {
	port, err := NewEnttecPort("/dev/ttyUSB1")
	if err != nil {
		t.Fatal(err)
	}
	if got := port.String(); got != "enttec ttyUSB1" {
		t.Errorf("String() = %q", got)
	}
}
