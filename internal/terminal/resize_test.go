package terminal

import "testing"

func TestResizeGrow(t *testing.T) {
	s := NewScreen(3, 5)
	s.WriteString("ab")
	s.Resize(5, 8)
	if s.Rows() != 5 || s.Cols() != 8 {
		t.Fatalf("dims = %dx%d, want 5x8", s.Rows(), s.Cols())
	}
	if got := s.PlainTextRow(0); got != "ab" {
		t.Errorf("row 0 after grow = %q, want %q", got, "ab")
	}
}

func TestResizeShrinkSlidesCursorIntoView(t *testing.T) {
	s := NewScreen(5, 5)
	s.WriteString("1\r\n2\r\n3\r\n4\r\n5")
	pos, _ := s.Cursor()
	if pos.Y != 4 {
		t.Fatalf("setup: cursor.Y = %d, want 4", pos.Y)
	}
	s.Resize(2, 5)
	pos, _ = s.Cursor()
	if pos.Y != 1 {
		t.Errorf("cursor.Y after shrink = %d, want 1 (clamped to new bottom row)", pos.Y)
	}
	if got := s.PlainTextRow(1); got != "5" {
		t.Errorf("bottom row after slide = %q, want %q", got, "5")
	}
}

func TestResizeWidthPreservesContent(t *testing.T) {
	s := NewScreen(2, 5)
	s.WriteString("hello")
	s.Resize(2, 3)
	if got := s.PlainTextRow(0); got != "hel" {
		t.Errorf("row after narrowing = %q, want %q", got, "hel")
	}
	s.Resize(2, 10)
	if got := s.PlainTextRow(0); got != "hel" {
		t.Errorf("row after widening = %q, want %q", got, "hel")
	}
}

func TestResizeIgnoresNonPositive(t *testing.T) {
	s := NewScreen(4, 4)
	s.Resize(0, 10)
	if s.Rows() != 4 || s.Cols() != 4 {
		t.Error("expected resize with zero rows to be a no-op")
	}
}
