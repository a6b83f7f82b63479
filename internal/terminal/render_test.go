package terminal

import (
	"strings"
	"testing"
)

func TestPlainTextTrimsTrailingSpace(t *testing.T) {
	s := NewScreen(1, 10)
	s.WriteString("hi")
	if got := s.PlainTextRow(0); got != "hi" {
		t.Errorf("PlainTextRow = %q, want %q", got, "hi")
	}
}

func TestRenderAppliesSGRForStyledRuns(t *testing.T) {
	s := NewScreen(1, 3)
	s.WriteString("\x1b[1mX\x1b[0mY")
	out := s.Render()
	if !strings.Contains(out, "\x1b[0;1m") {
		t.Errorf("expected a bold SGR sequence in output, got %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Errorf("expected trailing reset, got %q", out)
	}
}

func TestRenderRegionClampsToBuffer(t *testing.T) {
	s := NewScreen(2, 2)
	s.WriteString("ab\r\ncd")
	out := s.RenderRegion(0, 0, 10, 10)
	plain := stripSGR(out)
	if plain != "ab\ncd" {
		t.Errorf("RenderRegion clamped = %q, want %q", plain, "ab\ncd")
	}
}

func stripSGR(s string) string {
	var b strings.Builder
	inEsc := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == 0x1b {
			inEsc = true
			continue
		}
		if inEsc {
			if c == 'm' {
				inEsc = false
			}
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
