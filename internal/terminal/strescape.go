package terminal

import "strconv"

// dispatchStr handles a completed OSC/DCS/PM/APC payload. Grounded in
// original_source/term.c's strhandle; only OSC carries interpreted
// semantics here (title, color) — DCS/PM/APC are logged and dropped,
// since no component in this core answers them.
func (s *Screen) dispatchStr() {
	payload := string(s.parser.strBuf)
	switch s.parser.str {
	case strOSC:
		s.handleOSC(payload)
	default:
		logProtocolNoise("unhandled string escape %q: %q", byte(s.parser.str), payload)
	}
}

// handleOSC dispatches on the numeric OSC selector. Grounded in
// original_source/term.c's strhandle OSC branch, extended to cover
// 4/104 (palette color) in addition to the title forms the original
// supports.
func (s *Screen) handleOSC(payload string) {
	sel, rest, ok := splitOnce(payload, ';')
	if !ok && sel != "104" { // a bare "104" is a reset-all with no arguments
		return
	}
	switch sel {
	case "0", "1", "2":
		title := rest
		s.host.SetTitle(&title)
	case "4":
		s.handleColorOSC(rest, false)
	case "104":
		s.handlePaletteReset(rest)
	case "10", "11", "12":
		// Foreground/background/cursor color query-or-set: this core has
		// no default-color query responder wired (no component answers
		// "what's the current foreground"), so only a plain set is
		// attempted; an OSC 10/11 query ("?") is silently dropped.
		if rest != "?" {
			name := rest
			s.host.SetColorName(colorSlotForOSC(sel), &name)
		}
	default:
		logProtocolNoise("unhandled OSC %s;%s", sel, rest)
	}
}

func colorSlotForOSC(sel string) int {
	switch sel {
	case "10":
		return -1 // foreground
	case "11":
		return -2 // background
	case "12":
		return -3 // cursor color
	}
	return 0
}

// handleColorOSC parses one or more "index;name" pairs from an OSC 4
// payload (xterm allows chaining several assignments in one sequence).
func (s *Screen) handleColorOSC(rest string, reset bool) {
	for rest != "" {
		var idxStr, name string
		var more bool
		idxStr, rest, more = splitOnce(rest, ';')
		if !more {
			return
		}
		name, rest, _ = splitOnce(rest, ';')

		idx, err := strconv.Atoi(idxStr)
		if err != nil {
			continue
		}
		if reset || name == "?" {
			if !s.host.SetColorName(idx, nil) {
				logProtocolNoise("color reset failed for index %d", idx)
			}
			continue
		}
		n := name
		if !s.host.SetColorName(idx, &n) {
			logProtocolNoise("color set failed for index %d = %q", idx, n)
		}
	}
}

// handlePaletteReset implements OSC 104 (reset one or all palette
// entries; an empty payload means "reset everything").
func (s *Screen) handlePaletteReset(rest string) {
	if rest == "" {
		for i := 0; i < 256; i++ {
			s.host.SetColorName(i, nil)
		}
		return
	}
	for rest != "" {
		var idxStr string
		var more bool
		idxStr, rest, more = splitOnce(rest, ';')
		idx, err := strconv.Atoi(idxStr)
		if err == nil {
			s.host.SetColorName(idx, nil)
		}
		if !more {
			return
		}
	}
}

// splitOnce splits s on the first occurrence of sep, reporting whether
// sep was found. If not found, rest is "" and ok is false.
func splitOnce(s string, sep byte) (before, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
