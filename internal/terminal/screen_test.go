package terminal

import "testing"

func TestNewScreenDimensions(t *testing.T) {
	s := NewScreen(24, 80)
	if s.Rows() != 24 {
		t.Errorf("Rows() = %d, want 24", s.Rows())
	}
	if s.Cols() != 80 {
		t.Errorf("Cols() = %d, want 80", s.Cols())
	}
}

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(3, 4)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if r := s.CellAt(x, y).Rune; r != ' ' {
				t.Errorf("CellAt(%d,%d) = %q, want ' '", x, y, r)
			}
		}
	}
}

func TestCursorStartsAtOrigin(t *testing.T) {
	s := NewScreen(24, 80)
	pos, hidden := s.Cursor()
	if pos != (Coord{}) || hidden {
		t.Errorf("Cursor() = (%v,%v), want ({0 0}, false)", pos, hidden)
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)
	cases := []Coord{{X: -1, Y: 0}, {X: 99, Y: 0}, {X: 0, Y: 99}}
	for _, c := range cases {
		if r := s.CellAt(c.X, c.Y).Rune; r != ' ' {
			t.Errorf("CellAt(%d,%d) = %q, want ' '", c.X, c.Y, r)
		}
	}
}

func TestWriteSimpleText(t *testing.T) {
	s := NewScreen(3, 10)
	s.Write([]byte("Hello"))

	pos, _ := s.Cursor()
	if pos != (Coord{X: 5, Y: 0}) {
		t.Errorf("Cursor after Hello = %v, want {5 0}", pos)
	}
	for i, ch := range "Hello" {
		if got := s.CellAt(i, 0).Rune; got != ch {
			t.Errorf("CellAt(%d,0) = %q, want %q", i, got, ch)
		}
	}
}

func TestDeferredWrap(t *testing.T) {
	s := NewScreen(2, 5)
	s.Write([]byte("12345"))
	pos, _ := s.Cursor()
	if pos.X != 4 || pos.Y != 0 {
		t.Fatalf("cursor after filling row = %v, want {4 0}", pos)
	}
	s.Write([]byte("6"))
	pos, _ = s.Cursor()
	if pos != (Coord{X: 1, Y: 1}) {
		t.Errorf("cursor after wrap char = %v, want {1 1}", pos)
	}
	if s.CellAt(0, 1).Rune != '6' {
		t.Errorf("CellAt(0,1) = %q, want '6'", s.CellAt(0, 1).Rune)
	}
}

func TestNewlineScrollsAtBottom(t *testing.T) {
	s := NewScreen(2, 5)
	s.Write([]byte("a\r\nb\r\nc"))
	if got := s.PlainTextRow(0); got != "b" {
		t.Errorf("row 0 = %q, want %q", got, "b")
	}
	if got := s.PlainTextRow(1); got != "c" {
		t.Errorf("row 1 = %q, want %q", got, "c")
	}
}

func TestUTF8Multibyte(t *testing.T) {
	s := NewScreen(1, 10)
	s.WriteString("héllo")
	if got := s.PlainTextRow(0); got != "héllo" {
		t.Errorf("row = %q, want %q", got, "héllo")
	}
}

func TestUTF8SplitAcrossWrites(t *testing.T) {
	s := NewScreen(1, 10)
	b := []byte("é") // 2-byte UTF-8
	s.Write(b[:1])
	s.Write(b[1:])
	if got := s.CellAt(0, 0).Rune; got != 'é' {
		t.Errorf("CellAt(0,0) = %q, want 'é'", got)
	}
}

func TestDECALN(t *testing.T) {
	s := NewScreen(2, 3)
	s.WriteString("\x1b#8")
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if r := s.CellAt(x, y).Rune; r != 'E' {
				t.Errorf("CellAt(%d,%d) = %q, want 'E'", x, y, r)
			}
		}
	}
}

func TestResetRIS(t *testing.T) {
	s := NewScreen(2, 5)
	s.WriteString("hi\x1b[1m")
	s.WriteString("\x1bc")
	pos, _ := s.Cursor()
	if pos != (Coord{}) {
		t.Errorf("cursor after RIS = %v, want origin", pos)
	}
	if r := s.CellAt(0, 0).Rune; r != ' ' {
		t.Errorf("CellAt(0,0) after RIS = %q, want blank", r)
	}
}

func TestAltScreenSwap(t *testing.T) {
	s := NewScreen(2, 5)
	s.WriteString("main")
	s.WriteString("\x1b[?1049h")
	if !s.AltScreen() {
		t.Fatal("expected alt screen active")
	}
	if r := s.CellAt(0, 0).Rune; r != ' ' {
		t.Errorf("alt screen should start blank, got %q", r)
	}
	s.WriteString("\x1b[?1049l")
	if s.AltScreen() {
		t.Fatal("expected primary screen restored")
	}
	if r := s.CellAt(0, 0).Rune; r != 'm' {
		t.Errorf("primary screen content lost: CellAt(0,0) = %q, want 'm'", r)
	}
}

func TestMode1048SavesAndRestoresCursorOnly(t *testing.T) {
	s := NewScreen(5, 20)
	s.WriteString("\x1b[3;4H") // move cursor to row 3, col 4
	s.WriteString("\x1b[?1048h")
	s.WriteString("\x1b[1;1H") // move away
	s.WriteString("\x1b[?1048l")

	pos, _ := s.Cursor()
	if pos != (Coord{X: 3, Y: 2}) {
		t.Errorf("cursor after 1048 restore = %v, want {3 2}", pos)
	}
	if s.AltScreen() {
		t.Error("mode 1048 must not touch the alternate screen")
	}
}
