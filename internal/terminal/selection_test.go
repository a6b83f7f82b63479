package terminal

import "testing"

func TestSelectionLinearClip(t *testing.T) {
	s := NewScreen(2, 5)
	s.WriteString("hello\r\nworld")
	s.SelStart(SelLinear, Coord{X: 1, Y: 0})
	s.SelUpdate(Coord{X: 2, Y: 1})
	if got := s.sel.Clip(); got != "ello\rwor" {
		t.Errorf("clip = %q, want %q", got, "ello\rwor")
	}
}

func TestSelectionRectangularClip(t *testing.T) {
	s := NewScreen(2, 5)
	s.WriteString("hello\r\nworld")
	s.SelStart(SelRectangular, Coord{X: 1, Y: 0})
	s.SelUpdate(Coord{X: 3, Y: 1})
	if got := s.sel.Clip(); got != "ell\rorl" {
		t.Errorf("clip = %q, want %q", got, "ell\rorl")
	}
}

func TestSelectedReportsInsideOutside(t *testing.T) {
	s := NewScreen(2, 5)
	s.SelStart(SelLinear, Coord{X: 1, Y: 0})
	s.SelUpdate(Coord{X: 3, Y: 0})
	if !s.Selected(2, 0) {
		t.Error("expected (2,0) selected")
	}
	if s.Selected(0, 0) {
		t.Error("expected (0,0) not selected")
	}
	if s.Selected(1, 1) {
		t.Error("expected (1,1) not selected")
	}
}

func TestSelStopClears(t *testing.T) {
	s := NewScreen(2, 5)
	s.SelStart(SelLinear, Coord{X: 0, Y: 0})
	s.SelUpdate(Coord{X: 1, Y: 0})
	s.SelStop()
	if s.Selected(0, 0) {
		t.Error("expected selection cleared")
	}
}

func TestSelWordExpandsToWordBoundaries(t *testing.T) {
	s := NewScreen(1, 20)
	s.WriteString("foo bar.baz qux")
	s.SelWord(Coord{X: 5, Y: 0}) // inside "bar"
	if got := s.sel.Clip(); got != "bar" {
		t.Errorf("word clip = %q, want %q", got, "bar")
	}
}

func TestWriteInvalidatesSelection(t *testing.T) {
	s := NewScreen(1, 10)
	s.WriteString("hello")
	s.SelStart(SelLinear, Coord{X: 0, Y: 0})
	s.SelUpdate(Coord{X: 4, Y: 0})
	s.WriteString("\x1b[1Gx")
	if s.Selected(0, 0) {
		t.Error("expected selection invalidated by write into selected row")
	}
}
