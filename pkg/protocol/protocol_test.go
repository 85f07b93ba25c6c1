package protocol

import (
	"codeberg.org/miketth/hyprtint/pkg/hyprtint"
	"errors"
	"testing"
)

func TestRegisterMessage(t *testing.T) {
	code := RegisterMessage(MessageName)
	if code < 0xC000 || code > 0xFFFF {
		t.Fatalf("code 0x%x outside application range", code)
	}
	if code != LayoutChanged {
		t.Fatalf("RegisterMessage is not stable: 0x%x != 0x%x", code, LayoutChanged)
	}
	if RegisterMessage("SOMETHING_ELSE") == code {
		t.Fatal("distinct names collide")
	}
}

func TestPackLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout hyprtint.LayoutID
		want   uint64
	}{
		{name: "two letters", layout: "us", want: 0x7375},
		{name: "three letters", layout: "ENU", want: 0x554e45},
		{name: "eight letters", layout: "abcdefgh", want: 0x6867666564636261},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PackLayout(tt.layout)
			if err != nil {
				t.Fatalf("PackLayout(%q): %v", tt.layout, err)
			}
			if got != tt.want {
				t.Fatalf("PackLayout(%q) = 0x%x, want 0x%x", tt.layout, got, tt.want)
			}
			if back := UnpackLayout(got); back != tt.layout {
				t.Fatalf("UnpackLayout(0x%x) = %q, want %q", got, back, tt.layout)
			}
		})
	}
}

func TestPackLayoutRejects(t *testing.T) {
	for _, layout := range []hyprtint.LayoutID{"", "toolonglayout", "a b", "r\x00u", "ü"} {
		if _, err := PackLayout(layout); !errors.Is(err, ErrUnpackable) {
			t.Fatalf("PackLayout(%q) error = %v, want ErrUnpackable", layout, err)
		}
	}
}

func TestUnpackLayoutStopsAtZero(t *testing.T) {
	if got := UnpackLayout(0); got != "" {
		t.Fatalf("UnpackLayout(0) = %q, want empty", got)
	}
	if got := UnpackLayout(0x6800007375); got != "us" {
		t.Fatalf("UnpackLayout = %q, want us", got)
	}
}

func TestEventBinary(t *testing.T) {
	ev, err := NewLayoutEvent("RUS")
	if err != nil {
		t.Fatalf("NewLayoutEvent: %v", err)
	}

	data, err := ev.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(data) != 12 {
		t.Fatalf("encoded %d bytes, want 12", len(data))
	}

	var got Event
	if err := got.UnmarshalBinary(data); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got != ev {
		t.Fatalf("decoded %+v, want %+v", got, ev)
	}
	if got.Layout() != "RUS" {
		t.Fatalf("Layout() = %q, want RUS", got.Layout())
	}

	if err := got.UnmarshalBinary(data[:7]); !errors.Is(err, ErrMalformed) {
		t.Fatalf("short datagram error = %v, want ErrMalformed", err)
	}
}
