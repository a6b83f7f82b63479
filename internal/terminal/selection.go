package terminal

import "strings"

// SelType identifies the shape of a selection.
type SelType int

const (
	SelNone SelType = iota
	SelLinear
	SelRectangular
)

// Selection is a region tracked in screen coordinates. P1
// precedes P2 in reading order for a Linear selection; for Rectangular,
// P1.X<=P2.X and P1.Y<=P2.Y independently. Clip is the UTF-8 snapshot
// rebuilt whenever the selection becomes stable.
type Selection struct {
	Type SelType
	P1   Coord
	P2   Coord
	clip string
}

// Clip returns the last-built clipboard string, or "" if there is none.
func (sel Selection) Clip() string { return sel.clip }

// notWord mirrors the original's not_word table: characters that never
// belong to a "word" for sel_word purposes even though they are neither
// zero nor whitespace.
const notWord = "*.!?;=&#$%^[](){}<>"

func isWordChar(r rune) bool {
	return r != 0 && r != ' ' && r != '\t' && !strings.ContainsRune(notWord, r)
}

// SelStart begins a new selection anchored at pos.
func (s *Screen) SelStart(typ SelType, pos Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = Selection{Type: typ, P1: pos, P2: pos}
}

// SelUpdate sets the selection's end point, normalizes P1/P2, and rebuilds
// the clip. For Linear, p1/p2 are ordered by (row, then column); for
// Rectangular, independently by axis.
func (s *Screen) SelUpdate(end Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sel.Type == SelNone {
		return
	}
	s.sel.P2 = end

	switch s.sel.Type {
	case SelLinear:
		if s.sel.P1.Y > s.sel.P2.Y || (s.sel.P1.Y == s.sel.P2.Y && s.sel.P1.X > s.sel.P2.X) {
			s.sel.P1, s.sel.P2 = s.sel.P2, s.sel.P1
		}
	case SelRectangular:
		if s.sel.P1.X > s.sel.P2.X {
			s.sel.P1.X, s.sel.P2.X = s.sel.P2.X, s.sel.P1.X
		}
		if s.sel.P1.Y > s.sel.P2.Y {
			s.sel.P1.Y, s.sel.P2.Y = s.sel.P2.Y, s.sel.P1.Y
		}
	}
	s.selRebuildClip()
}

// SelWord expands the selection from pos left and right while the
// neighboring cell's character is in the word class.
func (s *Screen) SelWord(pos Coord) {
	s.mu.Lock()
	start := pos
	for start.X > 0 && isWordChar(s.cellAtLocked(start.X-1, start.Y).Rune) {
		start.X--
	}
	for pos.X < s.size.X-1 && isWordChar(s.cellAtLocked(pos.X+1, pos.Y).Rune) {
		pos.X++
	}
	s.mu.Unlock()

	s.SelStart(SelLinear, start)
	s.SelUpdate(pos)
}

// SelLine sets the selection to the entire row containing pos.
func (s *Screen) SelLine(pos Coord) {
	start := Coord{X: 0, Y: pos.Y}
	end := Coord{X: s.size.X - 1, Y: pos.Y}
	s.SelStart(SelLinear, start)
	s.SelUpdate(end)
}

// SelStop clears the selection.
func (s *Screen) SelStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel = Selection{}
}

// Selected reports whether (x,y) lies inside the current selection.
func (s *Screen) Selected(x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLocked(x, y)
}

func (s *Screen) selectedLocked(x, y int) bool {
	sel := s.sel
	switch sel.Type {
	case SelNone:
		return false
	case SelLinear:
		if y < sel.P1.Y || y > sel.P2.Y {
			return false
		}
		if y == sel.P1.Y && x < sel.P1.X {
			return false
		}
		if y == sel.P2.Y && x > sel.P2.X {
			return false
		}
		return true
	case SelRectangular:
		return sel.P1.Y <= y && y <= sel.P2.Y && sel.P1.X <= x && x <= sel.P2.X
	}
	return false
}

// selRebuildClip walks the selected rows and produces a UTF-8 clip string,
// trimming trailing blank (rune==0) cells per row and joining rows with
// \r except after the last.
func (s *Screen) selRebuildClip() {
	sel := s.sel
	if sel.Type == SelNone {
		s.sel.clip = ""
		return
	}

	var out []byte
	for y := sel.P1.Y; y <= sel.P2.Y; y++ {
		first, last := 0, s.size.X-1
		if sel.Type == SelRectangular || y == sel.P1.Y {
			first = sel.P1.X
		}
		if sel.Type == SelRectangular || y == sel.P2.Y {
			last = sel.P2.X
		}
		if last > s.size.X-1 {
			last = s.size.X - 1
		}

		row := s.display[y]
		for last > first && row[last].Rune == 0 {
			last--
		}
		for x := first; x <= last; x++ {
			r := row[x].Rune
			if r == 0 {
				r = ' '
			}
			out = encodeRune(out, r)
		}
		if y < sel.P2.Y {
			out = append(out, '\r')
		}
	}
	s.sel.clip = string(out)
}

// selScroll adjusts (or drops) the selection when the region [orig,bot]
// scrolls by n rows. Grounded in original_source/term.c's selscroll,
// skipping the dead branch after its unconditional early return: this
// implements only the reachable semantics — clamp endpoints that cross
// the region edge, drop the selection if it escapes the region entirely.
func (s *Screen) selScroll(orig, n int) {
	sel := &s.sel
	if sel.Type == SelNone {
		return
	}

	inRegion := (orig <= sel.P1.Y && sel.P1.Y <= s.bot) || (orig <= sel.P2.Y && sel.P2.Y <= s.bot)
	if !inRegion {
		return
	}

	sel.P1.Y += n
	sel.P2.Y += n
	if sel.P1.Y > s.bot || sel.P2.Y < s.top {
		*sel = Selection{}
		return
	}

	switch sel.Type {
	case SelLinear:
		if sel.P1.Y < s.top {
			sel.P1.Y = s.top
			sel.P1.X = 0
		}
		if sel.P2.Y > s.bot {
			sel.P2.Y = s.bot
			sel.P2.X = s.size.X - 1
		}
	case SelRectangular:
		if sel.P1.Y < s.top {
			sel.P1.Y = s.top
		}
		if sel.P2.Y > s.bot {
			sel.P2.Y = s.bot
		}
	}
}

// selInvalidateRow clears the selection if row y is part of it — any
// write into a selected row invalidates the selection.
func (s *Screen) selInvalidateRow(y int) {
	if s.sel.Type == SelNone {
		return
	}
	if y >= s.sel.P1.Y && y <= s.sel.P2.Y {
		s.sel = Selection{}
	}
}
