package terminal

import (
	"log"
	"sync"
)

// maxEscArgs and maxEscBytes bound the CSI/string-escape accumulators,
// grounded in original_source/term.h's ESC_ARG_SIZ=16, rounded up to a
// 640-byte floor for string-escape payloads.
const (
	maxEscArgs  = 16
	maxEscBytes = 640
)

// Screen is a VT102/xterm-compatible virtual terminal: two swappable
// character grids (primary + alternate), cursor and mode state, tab
// stops, a selection, and the byte-oriented escape-sequence parser that
// drives all of it. All exported methods are safe for concurrent use —
// a PTY reader goroutine can call Write while a render loop reads cells.
type Screen struct {
	mu sync.Mutex

	size Coord // {cols, rows}

	// display is the currently visible buffer (primary or alternate,
	// whichever swapScreen last selected); other is the buffer not
	// currently shown. Swapping exchanges these two slice headers in O(1)
	// rather than copying cell contents.
	display   []Row
	other     []Row
	altScreen bool

	dirty []bool
	tabs  []bool

	cur   Cursor
	saved Cursor

	top, bot int // scroll region, 0-indexed inclusive

	modes Modes
	sel   Selection

	// lastMousePos and haveMousePos track the last reported motion-event
	// cell so a repeated motion report to the same cell can be suppressed.
	lastMousePos Coord
	haveMousePos bool

	defaultFG, defaultBG int

	parser parserState

	host Host

	// logW, when non-nil, receives a copy of every byte read from the
	// child before it is fed to the parser.
	logW writer

	// replyW, when non-nil, receives bytes the core writes back to the
	// child (DSR/DA replies). Session installs the PTY's write side here.
	replyW writer
}

type writer interface {
	Write([]byte) (int, error)
}

// NewScreen allocates a Screen of the given (rows, cols) with a NopHost.
// Use NewScreenWithHost to receive title/bell/color notifications.
func NewScreen(rows, cols int) *Screen {
	return NewScreenWithHost(rows, cols, NopHost{})
}

// NewScreenWithHost allocates a Screen wired to host for OSC/BEL/color
// notifications.
func NewScreenWithHost(rows, cols int, host Host) *Screen {
	if host == nil {
		host = NopHost{}
	}
	s := &Screen{host: host}
	s.size = Coord{X: cols, Y: rows}
	s.reset()
	return s
}

// SetLogWriter installs w as the raw-byte tee target; nil disables it.
func (s *Screen) SetLogWriter(w writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logW = w
}

// SetReplyWriter installs w as the target for bytes the core writes back
// to the child process (DSR/DA query replies).
func (s *Screen) SetReplyWriter(w writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replyW = w
}

// reset implements RIS (ESC c): full state reset, both buffers cleared,
// cursor home, tab stops every 8 columns, scroll region full height.
// Grounded in original_source/term.c's treset().
func (s *Screen) reset() {
	s.display = makeBuffer(s.size.X, s.size.Y)
	s.other = makeBuffer(s.size.X, s.size.Y)
	s.dirty = make([]bool, s.size.Y)
	s.tabs = make([]bool, s.size.X)
	for x := 8; x < s.size.X; x += 8 {
		s.tabs[x] = true
	}

	s.cur = Cursor{Attr: Glyph{Rune: ' ', Style: Style(0).WithFG(s.defaultFG).WithBG(s.defaultBG)}}
	s.saved = s.cur
	s.top, s.bot = 0, s.size.Y-1
	s.modes = defaultModes()
	s.altScreen = false
	s.sel = Selection{}
	s.parser = parserState{}
}

// Reset performs a full reset (RIS) and notifies the host that the title
// should be restored to its default.
func (s *Screen) Reset() {
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	s.host.SetTitle(nil)
}

func makeBuffer(cols, rows int) []Row {
	b := make([]Row, rows)
	for y := range b {
		b[y] = newRow(cols, blank)
	}
	return b
}

// Rows returns the current row count.
func (s *Screen) Rows() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size.Y
}

// Cols returns the current column count.
func (s *Screen) Cols() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size.X
}

// CellAt returns the glyph at (x,y) on the active buffer. Out-of-bounds
// coordinates return a blank glyph.
func (s *Screen) CellAt(x, y int) Glyph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cellAtLocked(x, y)
}

func (s *Screen) cellAtLocked(x, y int) Glyph {
	if x < 0 || y < 0 || x >= s.size.X || y >= s.size.Y {
		return blank
	}
	return s.display[y][x]
}

// Cursor returns the current cursor position and whether DECTCEM has
// hidden it.
func (s *Screen) Cursor() (pos Coord, hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Pos, s.modes.CursorHidden
}

// AltScreen reports whether the alternate buffer is currently displayed.
func (s *Screen) AltScreen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.altScreen
}

func (s *Screen) markDirty(y int) {
	if y >= 0 && y < len(s.dirty) {
		s.dirty[y] = true
	}
}

func (s *Screen) markDirtyRange(top, bot int) {
	if bot > s.size.Y-1 {
		bot = s.size.Y - 1
	}
	for y := top; y <= bot; y++ {
		s.markDirty(y)
	}
}

func (s *Screen) markAllDirty() { s.markDirtyRange(0, s.size.Y-1) }

// DirtyRows returns the indices of rows touched since the last ClearDirty,
// satisfying the host's render-tick contract.
func (s *Screen) DirtyRows() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []int
	for y, d := range s.dirty {
		if d {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearDirty marks every row clean.
func (s *Screen) ClearDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for y := range s.dirty {
		s.dirty[y] = false
	}
}

// swapScreen exchanges the primary/alternate buffer handles, toggles
// altScreen, marks everything dirty, and clears the selection. Grounded
// in original_source/term.c's tswapscreen.
func (s *Screen) swapScreen() {
	s.display, s.other = s.other, s.display
	s.altScreen = !s.altScreen
	s.sel = Selection{}
	s.markAllDirty()
}

func logProtocolNoise(format string, args ...interface{}) {
	log.Printf("erresc: "+format, args...)
}
