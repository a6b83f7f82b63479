package terminal

// setMode applies SM/RM (priv==0) or DECSET/DECRST (priv=='?') for every
// argument in the CSI sequence. Grounded in original_source/term.c's
// tsetmode.
func (s *Screen) setMode(priv byte, set bool) {
	for i := 0; i < s.parser.csiN; i++ {
		mode := s.parser.csiArgRawN(i)
		if priv == '?' {
			s.setPrivateMode(mode, set)
		} else {
			s.setANSIMode(mode, set)
		}
	}
}

func (s *Screen) setANSIMode(mode int, set bool) {
	switch mode {
	case 2: // KAM
		s.modes.KeyboardLock = set
	case 4: // IRM
		s.modes.Insert = set
	case 12: // SRM (stored inverted: echo)
		s.modes.EchoOff = set
	case 20: // LNM
		s.modes.CRLF = set
	}
}

func (s *Screen) setPrivateMode(mode int, set bool) {
	switch mode {
	case 1: // DECCKM
		s.modes.AppCursor = set
	case 5: // DECSCNM
		s.modes.ReverseVideo = set
	case 6: // DECOM
		s.cur.Origin = set
		s.moveCursorAbsolute(0, 0)
	case 7: // DECAWM
		s.modes.AutoWrap = set
	case 25: // DECTCEM (stored inverted: hidden)
		s.modes.CursorHidden = !set
	case 1000: // X10/VT200 mouse button reporting
		s.modes.MouseButtonReport = set
		if set {
			s.modes.MouseMotionReport = false
		}
	case 1002: // button-event motion reporting
		s.modes.MouseMotionReport = set
		if set {
			s.modes.MouseButtonReport = false
		}
	case 1006: // SGR mouse encoding
		s.modes.MouseSGR = set
	case 1049: // alternate screen + save/restore cursor
		if set {
			s.saveCursor()
			if !s.altScreen {
				s.swapScreen()
			}
			s.eraseDisplay(2)
		} else {
			if s.altScreen {
				s.swapScreen()
			}
			s.restoreCursor()
		}
	case 47, 1047: // alternate screen only
		if set != s.altScreen {
			s.swapScreen()
		}
	case 1048: // save/restore cursor only, independent of 1047/1049
		if set {
			s.saveCursor()
		} else {
			s.restoreCursor()
		}
	case 2004:
		s.modes.BracketedPaste = set
	}
}
