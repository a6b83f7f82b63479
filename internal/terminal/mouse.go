package terminal

// MouseButton identifies which button a mouse event reports, using the
// xterm numbering.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseNone // motion-only event, no button held
	MouseWheelUp
	MouseWheelDown
)

// MouseEventType distinguishes press/release/motion so the encoder can
// pick the right bit pattern.
type MouseEventType int

const (
	MousePress MouseEventType = iota
	MouseRelease
	MouseMotion
)

// MouseEvent is a single client-side mouse action to forward to the
// child process, in 0-based screen coordinates.
type MouseEvent struct {
	Type    MouseEventType
	Button  MouseButton
	Pos     Coord
	Shift   bool
	Meta    bool
	Control bool
}

// EncodeMouse renders ev per the terminal's current mouse mode, or nil if
// no mouse mode is enabled, or if ev is a motion event but motion
// reporting (mode 1002) isn't on.
func (s *Screen) EncodeMouse(ev MouseEvent) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.modes.MouseButtonReport && !s.modes.MouseMotionReport {
		return nil
	}
	if ev.Type == MouseMotion && !s.modes.MouseMotionReport {
		return nil
	}

	// Motion reports repeat only when the cell actually changes, matching
	// original_source/term.c's term_mousereport (MotionNotify branch).
	if ev.Type == MouseMotion {
		if s.haveMousePos && s.lastMousePos == ev.Pos {
			return nil
		}
		s.lastMousePos = ev.Pos
		s.haveMousePos = true
	} else if ev.Type == MousePress {
		s.lastMousePos = ev.Pos
		s.haveMousePos = true
	}

	code := mouseButtonCode(ev)
	if ev.Shift {
		code |= 4
	}
	if ev.Meta {
		code |= 8
	}
	if ev.Control {
		code |= 16
	}
	if ev.Type == MouseMotion {
		code |= 32
	}

	col, row := ev.Pos.X+1, ev.Pos.Y+1

	if s.modes.MouseSGR {
		final := byte('M')
		if ev.Type == MouseRelease {
			final = 'm'
		}
		return []byte("\x1b[<" + itoa(code) + ";" + itoa(col) + ";" + itoa(row) + string(final))
	}

	// Legacy X10 encoding: single bytes, coordinates offset by 32+1. A
	// position at or beyond 223 can't be represented in one byte and is
	// dropped entirely rather than clamped, matching original_source/
	// term.c's term_mousereport ("else return;").
	if ev.Pos.X >= 223 || ev.Pos.Y >= 223 {
		return nil
	}
	if ev.Type == MouseRelease {
		code = 3
	}
	return []byte{0x1b, '[', 'M', byte(32 + code), byte(32 + col), byte(32 + row)}
}

func mouseButtonCode(ev MouseEvent) int {
	switch ev.Button {
	case MouseLeft:
		return 0
	case MouseMiddle:
		return 1
	case MouseRight:
		return 2
	case MouseWheelUp:
		return 64
	case MouseWheelDown:
		return 65
	default:
		return 3
	}
}
