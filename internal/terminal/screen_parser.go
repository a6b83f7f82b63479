package terminal

// parserMode is the top-level state of the escape-sequence automaton, a
// tagged union so each string-escape kind (OSC, DCS, PM, APC) keeps its
// own terminator rule without extra fields. Grounded in
// original_source/term.h's escape_state bitmask, flattened into
// mutually exclusive states since Go switches read better than bit
// tests here.
type parserMode int

const (
	modeGround parserMode = iota
	modeEscape            // just saw ESC
	modeAltCharset        // ESC ( or ESC ) : next byte designates G0/G1
	modeTest              // ESC # : next byte selects a DEC test
	modeCSI               // ESC [ ... accumulating params/intermediates
	modeStr               // OSC/DCS/PM/APC payload, accumulating until ST/BEL
)

// strKind identifies which string-escape is being accumulated.
type strKind byte

const (
	strOSC strKind = ']'
	strDCS strKind = 'P'
	strPM  strKind = '^'
	strAPC strKind = '_'
)

// parserState holds the automaton's working state across Write calls —
// a byte stream may split a sequence across arbitrarily many reads.
type parserState struct {
	mode parserMode

	utf8 utf8Decoder

	csiPriv  byte // '?', '>', '=', or 0
	csiInter []byte
	csiArgs  [maxEscArgs]int
	csiSet   [maxEscArgs]bool // true once an explicit digit has been seen
	csiN     int              // number of args touched (including the current one)

	str    strKind
	strBuf []byte
	sawEsc bool // mid string-escape, last byte was ESC (watching for ST)

	// charset is the G0 designation; 'B' = ASCII, '0' = line-drawing. G1-G3
	// (ESC ), ESC *, ESC +) and SO/SI switching are deliberately ignored,
	// matching original_source/term.c's tcontrolcode and tdeftran: "the
	// rest is incompatible history st should not support."
	charset        byte
	altCharsetSkip bool // true mid ESC ) / * / + : designator byte is consumed but dropped
}

// Write feeds raw child-process bytes into the parser, mutating the
// screen. It is the terminal core's single entry point.
func (s *Screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logW != nil {
		s.logW.Write(p)
	}
	for _, b := range p {
		s.processByte(b)
	}
	return len(p), nil
}

// WriteString is a convenience wrapper for Write.
func (s *Screen) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

func (s *Screen) processByte(b byte) {
	switch s.parser.mode {
	case modeGround:
		s.processGround(b)
	case modeEscape:
		s.processEscape(b)
	case modeAltCharset:
		s.processAltCharset(b)
	case modeTest:
		s.processTest(b)
	case modeCSI:
		s.processCSI(b)
	case modeStr:
		s.processStr(b)
	}
}

// processGround handles bytes outside any escape sequence: C0 controls,
// ESC introduction, and printable text (routed through the incremental
// UTF-8 decoder so a multi-byte rune split across Write calls still
// assembles correctly).
func (s *Screen) processGround(b byte) {
	r, ok := s.parser.utf8.feed(b)
	if !ok {
		return
	}

	if r < 0x20 || r == 0x7f {
		s.control(byte(r))
		return
	}
	s.putChar(r)
}

func (s *Screen) control(b byte) {
	switch b {
	case 0x07: // BEL
		s.host.SetUrgent(true)
	case 0x08: // BS
		s.moveCursor(-1, 0)
	case 0x09: // HT
		s.putTab(1)
	case 0x0a, 0x0b, 0x0c: // LF, VT, FF
		s.newline(s.modes.CRLF)
	case 0x0d: // CR
		s.cur.Pos.X = 0
		s.cur.WrapNext = false
	case 0x0e, 0x0f: // SO/SI: charset switching is deliberately unsupported
	case 0x1b:
		s.parser.mode = modeEscape
	default:
		// Other C0 controls (NUL, ENQ, SUB, CAN, etc.) are no-ops.
	}
}

// processEscape handles the byte immediately following ESC.
func (s *Screen) processEscape(b byte) {
	s.parser.mode = modeGround
	switch b {
	case '[':
		s.resetCSI()
		s.parser.mode = modeCSI
	case ']':
		s.resetStr(strOSC)
	case 'P':
		s.resetStr(strDCS)
	case '^':
		s.resetStr(strPM)
	case '_':
		s.resetStr(strAPC)
	case '(': // designate G0
		s.parser.mode = modeAltCharset
		s.parser.altCharsetSkip = false
	case ')', '*', '+': // G1/G2/G3: designator byte consumed, designation ignored
		s.parser.mode = modeAltCharset
		s.parser.altCharsetSkip = true
	case '#':
		s.parser.mode = modeTest
	case '7': // DECSC
		s.saved = s.cur
	case '8': // DECRC
		s.cur = s.saved
	case 'D': // IND
		s.newline(false)
	case 'E': // NEL
		s.newline(true)
	case 'H': // HTS
		s.setTabStop()
	case 'M': // RI
		s.reverseIndex()
	case 'c': // RIS
		s.reset()
	case '=': // DECKPAM
		s.modes.AppKeypad = true
	case '>': // DECKPNM
		s.modes.AppKeypad = false
	case '\\': // ST with no string escape active: no-op
	default:
		// Unrecognized ESC final byte: logged as protocol noise and dropped.
		logProtocolNoise("unknown ESC sequence %q", b)
	}
}

func (s *Screen) processAltCharset(b byte) {
	if !s.parser.altCharsetSkip {
		s.parser.charset = b
	}
	s.parser.mode = modeGround
}

// processTest handles ESC # <c>; only DECALN (8) is implemented, matching
// the original's tcontrolcode handling of the single DEC test it supports.
func (s *Screen) processTest(b byte) {
	s.parser.mode = modeGround
	if b == '8' {
		s.decaln()
	}
}

func (s *Screen) resetCSI() {
	s.parser.csiPriv = 0
	s.parser.csiInter = s.parser.csiInter[:0]
	s.parser.csiArgs = [maxEscArgs]int{}
	s.parser.csiSet = [maxEscArgs]bool{}
	s.parser.csiN = 0
}

func (s *Screen) resetStr(kind strKind) {
	s.parser.mode = modeStr
	s.parser.str = kind
	s.parser.strBuf = s.parser.strBuf[:0]
	s.parser.sawEsc = false
}

// processCSI accumulates parameter/intermediate bytes and dispatches on
// the final byte (0x40-0x7e), bounding both the argument count and the
// intermediate-byte buffer
func (s *Screen) processCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		if s.parser.csiN == 0 {
			s.parser.csiN = 1
		}
		i := s.parser.csiN - 1
		if i < maxEscArgs {
			s.parser.csiArgs[i] = s.parser.csiArgs[i]*10 + int(b-'0')
			s.parser.csiSet[i] = true
		}
	case b == ';':
		if s.parser.csiN == 0 {
			s.parser.csiN = 1 // an empty leading argument still counts
		}
		if s.parser.csiN < maxEscArgs {
			s.parser.csiN++
		}
	case b == '?' || b == '>' || b == '=':
		s.parser.csiPriv = b
	case b >= 0x20 && b <= 0x2f:
		if len(s.parser.csiInter) < maxEscBytes {
			s.parser.csiInter = append(s.parser.csiInter, b)
		}
	case b >= 0x40 && b <= 0x7e:
		s.dispatchCSI(b)
		s.parser.mode = modeGround
	default:
		// Stray byte (e.g. a C0 control arriving mid-sequence): original
		// xterm-family behavior is to abort the sequence.
		s.parser.mode = modeGround
	}
}

// processStr accumulates an OSC/DCS/PM/APC payload. Both BEL and the
// two-byte ST (ESC \) terminate it; other ESC bytes mid-string reset the
// watch-for-ST flag (matching how a real host never emits ESC for any
// other reason inside these strings).
func (s *Screen) processStr(b byte) {
	if s.parser.sawEsc {
		s.parser.sawEsc = false
		if b == '\\' {
			s.dispatchStr()
			s.parser.mode = modeGround
			return
		}
		// Not a valid ST: the ESC is discarded and b is handled below as
		// ordinary payload.
	}
	switch b {
	case 0x07:
		s.dispatchStr()
		s.parser.mode = modeGround
	case 0x1b:
		s.parser.sawEsc = true
	default:
		if len(s.parser.strBuf) < maxEscBytes {
			s.parser.strBuf = append(s.parser.strBuf, b)
		}
	}
}
