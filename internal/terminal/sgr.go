package terminal

// handleSGR applies the accumulated CSI arguments as SGR parameters to
// the cursor's style template. Bounds-checks 38/48
// extended-color forms against the argument count before indexing,
// resolving Open Question #1: a truncated 38/48 sequence is ignored
// rather than reading past the end of the argument list.
func (s *Screen) handleSGR() {
	n := s.parser.csiN
	if n == 0 {
		s.cur.Attr.Style = Style(0).WithFG(s.defaultFG).WithBG(s.defaultBG)
		return
	}

	i := 0
	for i < n {
		p := s.parser.csiArgRawN(i)
		switch {
		case p == 0:
			s.cur.Attr.Style = Style(0).WithFG(s.defaultFG).WithBG(s.defaultBG)
		case p == 1:
			s.cur.Attr.Style = s.cur.Attr.Style.WithBold(true)
		case p == 3:
			s.cur.Attr.Style = s.cur.Attr.Style.WithItalic(true)
		case p == 4:
			s.cur.Attr.Style = s.cur.Attr.Style.WithUnderline(true)
		case p == 5 || p == 6:
			s.cur.Attr.Style = s.cur.Attr.Style.WithBlink(true)
		case p == 7:
			s.cur.Attr.Style = s.cur.Attr.Style.WithReverse(true)
		case p == 22:
			s.cur.Attr.Style = s.cur.Attr.Style.WithBold(false)
		case p == 23:
			s.cur.Attr.Style = s.cur.Attr.Style.WithItalic(false)
		case p == 24:
			s.cur.Attr.Style = s.cur.Attr.Style.WithUnderline(false)
		case p == 25:
			s.cur.Attr.Style = s.cur.Attr.Style.WithBlink(false)
		case p == 27:
			s.cur.Attr.Style = s.cur.Attr.Style.WithReverse(false)
		case p >= 30 && p <= 37:
			s.cur.Attr.Style = s.cur.Attr.Style.WithFG(p - 30)
		case p == 38:
			if consumed, ok := s.extendedColor(i); ok {
				s.cur.Attr.Style = s.cur.Attr.Style.WithFG(consumed)
			}
			i += s.extendedColorWidth(i)
		case p == 39:
			s.cur.Attr.Style = s.cur.Attr.Style.WithFG(s.defaultFG)
		case p >= 40 && p <= 47:
			s.cur.Attr.Style = s.cur.Attr.Style.WithBG(p - 40)
		case p == 48:
			if consumed, ok := s.extendedColor(i); ok {
				s.cur.Attr.Style = s.cur.Attr.Style.WithBG(consumed)
			}
			i += s.extendedColorWidth(i)
		case p == 49:
			s.cur.Attr.Style = s.cur.Attr.Style.WithBG(s.defaultBG)
		case p >= 90 && p <= 97:
			s.cur.Attr.Style = s.cur.Attr.Style.WithFG(p - 90 + 8)
		case p >= 100 && p <= 107:
			s.cur.Attr.Style = s.cur.Attr.Style.WithBG(p - 100 + 8)
		default:
			logProtocolNoise("unknown SGR parameter %d", p)
		}
		i++
	}
}

// extendedColorWidth returns how many extra argument slots (beyond the
// 38/48 selector itself) the mode byte at i+1 consumes: 2 for the
// indexed form (5;idx), 4 for truecolor (2;r;g;b). Returns 0 if the
// sequence is truncated before the mode byte.
func (s *Screen) extendedColorWidth(i int) int {
	if i+1 >= s.parser.csiN {
		return 0
	}
	switch s.parser.csiArgRawN(i + 1) {
	case 5:
		return 2
	case 2:
		return 4
	default:
		return 0
	}
}

// extendedColor resolves a 38/48-prefixed color selector starting at i
// (pointing at the 38/48 itself) into a packed palette index. Returns
// ok=false if the argument list is too short to complete the form,
// leaving the prior color untouched (Open Question #1).
func (s *Screen) extendedColor(i int) (int, bool) {
	n := s.parser.csiN
	if i+1 >= n {
		return 0, false
	}
	switch s.parser.csiArgRawN(i + 1) {
	case 5:
		if i+2 >= n {
			return 0, false
		}
		return s.parser.csiArgRawN(i + 2), true
	case 2:
		if i+4 >= n {
			return 0, false
		}
		r := s.parser.csiArgRawN(i + 2)
		g := s.parser.csiArgRawN(i + 3)
		b := s.parser.csiArgRawN(i + 4)
		return packTruecolor(r, g, b), true
	default:
		return 0, false
	}
}

// packTruecolor folds a 24-bit color into the style's 12-bit field by
// reducing each channel to 4 bits and offsetting the result past the
// 256-entry palette. 256 + 16*16*16 exceeds what 12 bits can hold, so
// indices above 4095 (the brightest red values) are clamped to 4095 and
// collide; exact truecolor rendering is not preserved by this encoding.
func packTruecolor(r, g, b int) int {
	const base = 256
	idx := base + (r>>4)*16*16 + (g>>4)*16 + (b >> 4)
	if idx > styleFGMask {
		idx = styleFGMask
	}
	return idx
}

// csiArgRawN is like csiArgRaw but bounds-checks i against maxEscArgs
// rather than csiN, returning 0 outside [0, maxEscArgs). Callers (SGR's
// multi-argument 38/48 forms, mode setting) compare i with csiN themselves.
func (p *parserState) csiArgRawN(i int) int {
	if i < 0 || i >= maxEscArgs {
		return 0
	}
	return int(p.csiArgs[i])
}
