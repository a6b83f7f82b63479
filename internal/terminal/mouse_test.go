package terminal

import (
	"bytes"
	"testing"
)

func TestEncodeMouseDisabledByDefault(t *testing.T) {
	s := NewScreen(10, 10)
	if b := s.EncodeMouse(MouseEvent{Type: MousePress, Button: MouseLeft, Pos: Coord{X: 1, Y: 1}}); b != nil {
		t.Errorf("expected nil with no mouse mode enabled, got %q", b)
	}
}

func TestEncodeMouseLegacyX10(t *testing.T) {
	s := NewScreen(10, 10)
	s.WriteString("\x1b[?1000h")
	got := s.EncodeMouse(MouseEvent{Type: MousePress, Button: MouseLeft, Pos: Coord{X: 0, Y: 0}})
	want := []byte{0x1b, '[', 'M', 32, 33, 33}
	if !bytes.Equal(got, want) {
		t.Errorf("legacy encode = %v, want %v", got, want)
	}
}

func TestEncodeMouseSGR(t *testing.T) {
	s := NewScreen(10, 10)
	s.WriteString("\x1b[?1000h\x1b[?1006h")
	got := s.EncodeMouse(MouseEvent{Type: MousePress, Button: MouseLeft, Pos: Coord{X: 0, Y: 0}})
	if string(got) != "\x1b[<0;1;1M" {
		t.Errorf("SGR encode = %q, want %q", got, "\x1b[<0;1;1M")
	}
	got = s.EncodeMouse(MouseEvent{Type: MouseRelease, Button: MouseLeft, Pos: Coord{X: 0, Y: 0}})
	if string(got) != "\x1b[<0;1;1m" {
		t.Errorf("SGR release encode = %q, want %q", got, "\x1b[<0;1;1m")
	}
}

func TestMouseModesMutuallyExclusive(t *testing.T) {
	s := NewScreen(10, 10)
	s.WriteString("\x1b[?1002h")
	if !s.modes.MouseMotionReport || s.modes.MouseButtonReport {
		t.Fatal("expected only motion reporting enabled")
	}
	s.WriteString("\x1b[?1000h")
	if !s.modes.MouseButtonReport || s.modes.MouseMotionReport {
		t.Error("expected enabling 1000 to disable 1002")
	}
}

func TestEncodeMouseMotionRequiresMode1002(t *testing.T) {
	s := NewScreen(10, 10)
	s.WriteString("\x1b[?1000h")
	if b := s.EncodeMouse(MouseEvent{Type: MouseMotion, Button: MouseNone, Pos: Coord{X: 2, Y: 2}}); b != nil {
		t.Errorf("expected nil motion report under mode 1000 alone, got %q", b)
	}
}

func TestEncodeMouseLegacyX10DropsOutOfRange(t *testing.T) {
	s := NewScreen(300, 300)
	s.WriteString("\x1b[?1000h")
	if got := s.EncodeMouse(MouseEvent{Type: MousePress, Button: MouseLeft, Pos: Coord{X: 223, Y: 0}}); got != nil {
		t.Errorf("expected nil when X >= 223, got %v", got)
	}
	if got := s.EncodeMouse(MouseEvent{Type: MousePress, Button: MouseLeft, Pos: Coord{X: 0, Y: 223}}); got != nil {
		t.Errorf("expected nil when Y >= 223, got %v", got)
	}
	if got := s.EncodeMouse(MouseEvent{Type: MousePress, Button: MouseLeft, Pos: Coord{X: 222, Y: 222}}); got == nil {
		t.Error("expected a report at the 222,222 boundary, got nil")
	}
}

func TestEncodeMouseMotionSuppressesRepeatedCell(t *testing.T) {
	s := NewScreen(10, 10)
	s.WriteString("\x1b[?1002h")
	first := s.EncodeMouse(MouseEvent{Type: MouseMotion, Button: MouseNone, Pos: Coord{X: 3, Y: 3}})
	if first == nil {
		t.Fatal("expected a report for the first motion event")
	}
	repeat := s.EncodeMouse(MouseEvent{Type: MouseMotion, Button: MouseNone, Pos: Coord{X: 3, Y: 3}})
	if repeat != nil {
		t.Errorf("expected nil for a repeated motion report to the same cell, got %v", repeat)
	}
	moved := s.EncodeMouse(MouseEvent{Type: MouseMotion, Button: MouseNone, Pos: Coord{X: 4, Y: 3}})
	if moved == nil {
		t.Error("expected a report once the motion event moves to a new cell")
	}
}
