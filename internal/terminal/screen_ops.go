package terminal

// vt100Gfx is the 62-entry DEC Special Graphics translation table (teacher
// name: the 'vt100-0' rxvt line-drawing table), applied when the active
// G-set is designated '0'. Indexed by ASCII 0x41..0x7e; entries for bytes
// the table doesn't remap are identical to the source byte. Grounded in
// original_source/term.h's gfx[] array.
var vt100Gfx = [...]rune{
	0x41: 'A', 0x42: 'B', 0x43: 'C', 0x44: 'D', 0x45: 'E', 0x46: 'F', 0x47: 'G',
	0x48: 'H', 0x49: 'I', 0x4a: 'J', 0x4b: 'K', 0x4c: 'L', 0x4d: 'M', 0x4e: 'N',
	0x4f: 'O', 0x50: 'P', 0x51: 'Q', 0x52: 'R', 0x53: 'S', 0x54: 'T', 0x55: 'U',
	0x56: 'V', 0x57: 'W', 0x58: 'X', 0x59: 'Y', 0x5a: 'Z',
	0x5b: '[', 0x5c: '\\', 0x5d: ']', 0x5e: '^', 0x5f: '_',
	0x60: '◆', // `  diamond
	0x61: '▒', // a  checkerboard
	0x62: '␉', // b  HT symbol
	0x63: '␌', // c  FF symbol
	0x64: '␍', // d  CR symbol
	0x65: '␊', // e  LF symbol
	0x66: '°', // f  degree
	0x67: '±', // g  plus/minus
	0x68: '␤', // h  NL symbol
	0x69: '␋', // i  VT symbol
	0x6a: '┘', // j  bottom-right corner
	0x6b: '┐', // k  top-right corner
	0x6c: '┌', // l  top-left corner
	0x6d: '└', // m  bottom-left corner
	0x6e: '┼', // n  crossing lines
	0x6f: '⎺', // o  scan line 1
	0x70: '⎻', // p  scan line 3
	0x71: '─', // q  horizontal line
	0x72: '⎼', // r  scan line 7
	0x73: '⎽', // s  scan line 9
	0x74: '├', // t  left T
	0x75: '┤', // u  right T
	0x76: '┴', // v  bottom T
	0x77: '┬', // w  top T
	0x78: '│', // x  vertical line
	0x79: '≤', // y  less-or-equal
	0x7a: '≥', // z  greater-or-equal
	0x7b: 'π', // {  pi
	0x7c: '≠', // |  not-equal
	0x7d: '£', // }  pound sterling
	0x7e: '·', // ~  bullet
}

func translateGfx(r rune) rune {
	if r >= 0x41 && r <= 0x7e && vt100Gfx[r] != 0 {
		return vt100Gfx[r]
	}
	return r
}

// putChar writes r at the cursor, honoring deferred wrap, insert mode,
// and the active charset, then advances the cursor. Grounded in original_source/term.c's tputc.
func (s *Screen) putChar(r rune) {
	if s.parser.charset == '0' {
		r = translateGfx(r)
	}

	if s.cur.WrapNext {
		if s.modes.AutoWrap {
			s.newlineWrap()
		}
		s.cur.WrapNext = false
	}

	if s.modes.Insert {
		s.insertChars(1)
	}

	x, y := s.cur.Pos.X, s.cur.Pos.Y
	if x >= 0 && x < s.size.X && y >= 0 && y < s.size.Y {
		s.display[y][x] = Glyph{Rune: r, Style: s.cur.Attr.Style}
		s.markDirty(y)
		s.selInvalidateRow(y)
	}

	if s.cur.Pos.X == s.size.X-1 {
		s.cur.WrapNext = true
	} else {
		s.cur.Pos.X++
	}
}

// newlineWrap is the wrap-specific half of newline: advance a row
// (scrolling the region if at its bottom) and return to column 0, so the
// deferred character lands at the start of the next row.
func (s *Screen) newlineWrap() {
	if s.cur.Pos.Y == s.bot {
		s.scrollUp(1)
	} else if s.cur.Pos.Y < s.size.Y-1 {
		s.cur.Pos.Y++
	}
	s.cur.Pos.X = 0
}

// newline moves the cursor down one row, scrolling the region if at its
// bottom edge; if first is true it also returns to column 0 (NEL / LF
// with LNM set).
func (s *Screen) newline(first bool) {
	if s.cur.Pos.Y == s.bot {
		s.scrollUp(1)
	} else if s.cur.Pos.Y < s.size.Y-1 {
		s.cur.Pos.Y++
	}
	if first {
		s.cur.Pos.X = 0
	}
	s.cur.WrapNext = false
}

// reverseIndex moves the cursor up one row, scrolling down if at the
// region's top edge.
func (s *Screen) reverseIndex() {
	if s.cur.Pos.Y == s.top {
		s.scrollDown(1)
	} else if s.cur.Pos.Y > 0 {
		s.cur.Pos.Y--
	}
	s.cur.WrapNext = false
}

// moveCursor moves the cursor by a relative offset, clamped to the
// screen (or the scroll region, if origin mode is set).
func (s *Screen) moveCursor(dx, dy int) {
	s.moveCursorTo(s.cur.Pos.X+dx, s.cur.Pos.Y+dy)
}

// moveCursorTo moves the cursor to an absolute position, clamped either
// to the full screen or to the scroll region under DECOM (origin mode).
// Grounded in tmoveto/tmoveato.
func (s *Screen) moveCursorTo(x, y int) {
	minY, maxY := 0, s.size.Y-1
	if s.cur.Origin {
		minY, maxY = s.top, s.bot
	}
	if y < minY {
		y = minY
	}
	if y > maxY {
		y = maxY
	}
	if x < 0 {
		x = 0
	}
	if x > s.size.X-1 {
		x = s.size.X - 1
	}
	s.cur.Pos = Coord{X: x, Y: y}
	s.cur.WrapNext = false
}

// moveCursorAbsolute handles CUP/HVP, whose Y is always screen-relative
// unless DECOM is set, in which case it is region-relative.
func (s *Screen) moveCursorAbsolute(x, y int) {
	if s.cur.Origin {
		y += s.top
	}
	s.moveCursorTo(x, y)
}

// scrollUp scrolls [top,bot] up by n rows: the top n rows are discarded
// and n blank rows appear at the bottom. Implemented as a slice-header
// rotation, never a cell copy, so cost is O(n) headers regardless of
// column count.
func (s *Screen) scrollUp(n int) {
	s.scrollRegion(s.top, s.bot, n)
}

// scrollDown scrolls [top,bot] down by n rows.
func (s *Screen) scrollDown(n int) {
	s.scrollRegion(s.top, s.bot, -n)
}

// scrollRegion rotates rows [top,bot] of the active buffer by n (positive
// = content moves up, revealing new blank rows at bot; negative = content
// moves down). Grounded in original_source/term.c's tscrollup/tscrolldown.
func (s *Screen) scrollRegion(top, bot, n int) {
	if n == 0 || top >= bot {
		return
	}
	region := bot - top + 1
	up := n > 0
	if n > region {
		n = region
	}
	if n < -region {
		n = -region
	}
	abs := n
	if !up {
		abs = -n
	}

	buf := s.display[top : bot+1]
	freed := make([]Row, abs)
	for i := range freed {
		freed[i] = newRow(s.size.X, blank)
	}
	if up {
		copy(buf, buf[abs:])
		copy(buf[region-abs:], freed)
	} else {
		copy(buf[abs:], buf[:region-abs])
		copy(buf[:abs], freed)
	}

	if up {
		s.selScroll(top, -abs)
	} else {
		s.selScroll(top, abs)
	}
	s.markDirtyRange(top, bot)
}

// eraseDisplay implements ED: 0 = cursor..end, 1 = start..cursor, 2/3 =
// whole screen (3 additionally would drop scrollback, which this core
// does not retain).
func (s *Screen) eraseDisplay(mode int) {
	switch mode {
	case 0:
		s.eraseLine(0)
		s.clearRows(s.cur.Pos.Y+1, s.size.Y-1)
	case 1:
		s.eraseLine(1)
		s.clearRows(0, s.cur.Pos.Y-1)
	case 2, 3:
		s.clearRows(0, s.size.Y-1)
	}
}

func (s *Screen) clearRows(top, bot int) {
	for y := top; y <= bot; y++ {
		if y < 0 || y >= s.size.Y {
			continue
		}
		s.display[y] = newRow(s.size.X, blank)
		s.markDirty(y)
		s.selInvalidateRow(y)
	}
}

// eraseLine implements EL on the cursor's row: 0 = cursor..end, 1 =
// start..cursor, 2 = whole line.
func (s *Screen) eraseLine(mode int) {
	y := s.cur.Pos.Y
	if y < 0 || y >= s.size.Y {
		return
	}
	row := s.display[y]
	first, last := 0, s.size.X-1
	switch mode {
	case 0:
		first = s.cur.Pos.X
	case 1:
		last = s.cur.Pos.X
	case 2:
	default:
		return
	}
	for x := first; x <= last && x < len(row); x++ {
		row[x] = blank
	}
	s.markDirty(y)
	s.selInvalidateRow(y)
}

// insertLines implements IL: n blank lines pushed in at the cursor row,
// rows at the bottom of the scroll region fall off.
func (s *Screen) insertLines(n int) {
	if s.cur.Pos.Y < s.top || s.cur.Pos.Y > s.bot {
		return
	}
	saveTop := s.top
	s.top = s.cur.Pos.Y
	s.scrollDown(n)
	s.top = saveTop
}

// deleteLines implements DL: n lines removed at the cursor row, the rows
// below it (down to the scroll region's bottom) slide up, and blank rows
// fill in at the bottom of the region.
func (s *Screen) deleteLines(n int) {
	if s.cur.Pos.Y < s.top || s.cur.Pos.Y > s.bot {
		return
	}
	saveTop := s.top
	s.top = s.cur.Pos.Y
	s.scrollUp(n)
	s.top = saveTop
}

// insertChars implements ICH: n blank cells inserted at the cursor,
// trailing cells on the row shift right and fall off the edge.
func (s *Screen) insertChars(n int) {
	y := s.cur.Pos.Y
	row := s.display[y]
	x := s.cur.Pos.X
	if n > len(row)-x {
		n = len(row) - x
	}
	copy(row[x+n:], row[x:len(row)-n])
	for i := x; i < x+n; i++ {
		row[i] = blank
	}
	s.markDirty(y)
	s.selInvalidateRow(y)
}

// deleteChars implements DCH: n cells removed at the cursor, trailing
// cells shift left and blanks fill in at the row's end.
func (s *Screen) deleteChars(n int) {
	y := s.cur.Pos.Y
	row := s.display[y]
	x := s.cur.Pos.X
	if n > len(row)-x {
		n = len(row) - x
	}
	copy(row[x:], row[x+n:])
	for i := len(row) - n; i < len(row); i++ {
		row[i] = blank
	}
	s.markDirty(y)
	s.selInvalidateRow(y)
}

// putTab advances the cursor to the nth next tab stop (or the last
// column if none remain).
func (s *Screen) putTab(n int) {
	x := s.cur.Pos.X
	for ; n > 0; n-- {
		x++
		for x < s.size.X-1 && !s.tabs[x] {
			x++
		}
	}
	if x > s.size.X-1 {
		x = s.size.X - 1
	}
	s.cur.Pos.X = x
}

// backTab implements CBT: move to the nth previous tab stop.
func (s *Screen) backTab(n int) {
	x := s.cur.Pos.X
	for ; n > 0; n-- {
		x--
		for x > 0 && !s.tabs[x] {
			x--
		}
	}
	if x < 0 {
		x = 0
	}
	s.cur.Pos.X = x
}

func (s *Screen) setTabStop() {
	if s.cur.Pos.X >= 0 && s.cur.Pos.X < len(s.tabs) {
		s.tabs[s.cur.Pos.X] = true
	}
}

// clearTabStop implements TBC: mode 0 clears the stop at the cursor,
// mode 3 clears all stops.
func (s *Screen) clearTabStop(mode int) {
	switch mode {
	case 0:
		if s.cur.Pos.X >= 0 && s.cur.Pos.X < len(s.tabs) {
			s.tabs[s.cur.Pos.X] = false
		}
	case 3:
		for i := range s.tabs {
			s.tabs[i] = false
		}
	}
}

// decaln implements DECALN (ESC # 8): fill the screen with 'E' for the
// screen-alignment test pattern.
func (s *Screen) decaln() {
	for y := 0; y < s.size.Y; y++ {
		row := newRow(s.size.X, Glyph{Rune: 'E'})
		s.display[y] = row
	}
	s.markAllDirty()
}

// saveCursor / restoreCursor implement DECSC/DECRC (also used by CSI s/u).
func (s *Screen) saveCursor() { s.saved = s.cur }

func (s *Screen) restoreCursor() {
	s.cur = s.saved
	s.clampCursor()
}

func (s *Screen) clampCursor() {
	if s.cur.Pos.X < 0 {
		s.cur.Pos.X = 0
	}
	if s.cur.Pos.X > s.size.X-1 {
		s.cur.Pos.X = s.size.X - 1
	}
	if s.cur.Pos.Y < 0 {
		s.cur.Pos.Y = 0
	}
	if s.cur.Pos.Y > s.size.Y-1 {
		s.cur.Pos.Y = s.size.Y - 1
	}
}
