package terminal

// csiArg returns the i'th CSI argument, or def if it was never supplied
// or was supplied as 0 (matching VT102's "0 means default" convention for
// every parameter except a handful dispatched specially below).
func (s *Screen) csiArg(i, def int) int {
	if i >= s.parser.csiN || !s.parser.csiSet[i] {
		return def
	}
	if s.parser.csiArgs[i] == 0 {
		return def
	}
	return s.parser.csiArgs[i]
}

// csiArgRaw returns the i'th argument's literal value (0 if never set),
// for dispatch sites where 0 is a meaningful distinct value (e.g. ED/EL
// mode, SGR parameters).
func (s *Screen) csiArgRaw(i int) int {
	if i >= s.parser.csiN {
		return 0
	}
	return s.parser.csiArgs[i]
}

// dispatchCSI handles a completed CSI sequence given its final byte.
// Grounded in original_source/term.c's tcsidispatch / csihandle.
func (s *Screen) dispatchCSI(final byte) {
	priv := s.parser.csiPriv

	switch final {
	case 'A': // CUU
		s.moveCursor(0, -s.csiArg(0, 1))
	case 'B', 'e': // CUD / VPR
		s.moveCursor(0, s.csiArg(0, 1))
	case 'C', 'a': // CUF / HPR
		s.moveCursor(s.csiArg(0, 1), 0)
	case 'D': // CUB
		s.moveCursor(-s.csiArg(0, 1), 0)
	case 'E': // CNL
		s.moveCursorTo(0, s.cur.Pos.Y+s.csiArg(0, 1))
	case 'F': // CPL
		s.moveCursorTo(0, s.cur.Pos.Y-s.csiArg(0, 1))
	case 'G', '`': // CHA / HPA
		s.moveCursorAbsolute(s.csiArg(0, 1)-1, s.relativeY())
	case 'd': // VPA
		s.moveCursorAbsolute(s.cur.Pos.X, s.csiArg(0, 1)-1)
	case 'H', 'f': // CUP / HVP
		s.moveCursorAbsolute(s.csiArg(1, 1)-1, s.csiArg(0, 1)-1)
	case 'I': // CHT
		s.putTab(s.csiArg(0, 1))
	case 'Z': // CBT
		s.backTab(s.csiArg(0, 1))
	case 'J': // ED
		s.eraseDisplay(s.csiArgRaw(0))
	case 'K': // EL
		s.eraseLine(s.csiArgRaw(0))
	case 'L': // IL
		s.insertLines(s.csiArg(0, 1))
	case 'M': // DL
		s.deleteLines(s.csiArg(0, 1))
	case 'P': // DCH
		s.deleteChars(s.csiArg(0, 1))
	case '@': // ICH
		s.insertChars(s.csiArg(0, 1))
	case 'X': // ECH
		s.eraseChars(s.csiArg(0, 1))
	case 'S': // SU
		s.scrollUp(s.csiArg(0, 1))
	case 'T': // SD
		s.scrollDown(s.csiArg(0, 1))
	case 'g': // TBC
		s.clearTabStop(s.csiArgRaw(0))
	case 'r': // DECSTBM
		s.setScrollRegion(s.csiArg(0, 1), s.csiArg(1, s.size.Y))
	case 's': // save cursor (ANSI.SYS form; DECSLRM margins are not modeled)
		s.saveCursor()
	case 'u':
		s.restoreCursor()
	case 'n': // DSR
		s.deviceStatusReport(s.csiArgRaw(0))
	case 'c': // DA / DA2
		s.deviceAttributes(priv)
	case 'm': // SGR
		s.handleSGR()
	case 'h': // SM / DECSET
		s.setMode(priv, true)
	case 'l': // RM / DECRST
		s.setMode(priv, false)
	case 't':
		// Window manipulation (resize/raise/iconify): meaningless without a
		// real window, so it's a no-op here.
	default:
		logProtocolNoise("unknown CSI final byte %q", final)
	}
}

func (s *Screen) relativeY() int {
	if s.cur.Origin {
		return s.cur.Pos.Y - s.top
	}
	return s.cur.Pos.Y
}

// eraseChars implements ECH: blank n cells starting at the cursor without
// shifting anything (unlike DCH).
func (s *Screen) eraseChars(n int) {
	y := s.cur.Pos.Y
	row := s.display[y]
	x := s.cur.Pos.X
	end := x + n
	if end > len(row) {
		end = len(row)
	}
	for i := x; i < end; i++ {
		row[i] = blank
	}
	s.markDirty(y)
	s.selInvalidateRow(y)
}

// setScrollRegion implements DECSTBM: top/bot are 1-indexed inclusive.
// An invalid region (top>=bot) is ignored per DEC semantics; the cursor
// is homed afterward per original_source/term.c's callers of tsetscroll.
func (s *Screen) setScrollRegion(top, bot int) {
	if bot > s.size.Y {
		bot = s.size.Y
	}
	top--
	bot--
	if top < 0 {
		top = 0
	}
	if bot >= s.size.Y {
		bot = s.size.Y - 1
	}
	if top >= bot {
		return
	}
	s.top, s.bot = top, bot
	s.moveCursorAbsolute(0, 0)
}

// deviceStatusReport answers DSR; 6 (cursor position report) and 5
// (status OK) are the two forms this core models.
func (s *Screen) deviceStatusReport(mode int) {
	switch mode {
	case 5:
		s.reply("\x1b[0n")
	case 6:
		s.reply(csiReport(s.relativeY()+1, s.cur.Pos.X+1))
	}
}

func csiReport(row, col int) string {
	return "\x1b[" + itoa(row) + ";" + itoa(col) + "R"
}

// deviceAttributes answers DA (plain) / DA2 (priv '>'); the primary DA
// reply matches original_source/term.h's VT102ID. Per original_source/
// term.c, the primary-DA reply only fires when the argument is 0 (absent
// or explicit 0); any other argument is silently ignored.
func (s *Screen) deviceAttributes(priv byte) {
	if priv == '>' {
		s.reply("\x1b[>0;0;0c")
		return
	}
	if s.csiArgRaw(0) == 0 {
		s.reply("\x1b[?6c")
	}
}

// reply queues bytes to be written back to the child process. The core
// itself owns no transport; Session installs a non-nil replyW.
func (s *Screen) reply(str string) {
	if s.replyW != nil {
		s.replyW.Write([]byte(str))
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
