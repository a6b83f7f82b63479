// Package terminal provides VT102 terminal emulation and PTY session
// management.
//
// Session is cross-platform: it uses github.com/aymanbagabas/go-pty,
// which wraps Unix PTYs and Windows ConPTY behind a single interface, so
// the same binary runs a real shell on Linux, macOS, and Windows.
package terminal

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	gopty "github.com/aymanbagabas/go-pty"
	"github.com/google/uuid"
)

// SessionStatus represents the current lifecycle state of a session.
type SessionStatus int

const (
	StatusRunning SessionStatus = iota
	StatusExited
	StatusError
)

// sessionHost adapts a Session's title bookkeeping onto the Host
// interface Screen expects, so OSC title/color/bell events update
// Session fields without Screen knowing about Session at all.
type sessionHost struct {
	s *Session
}

func (h sessionHost) SetTitle(title *string) {
	h.s.mu.Lock()
	if title == nil {
		h.s.title = ""
	} else {
		h.s.title = *title
	}
	h.s.mu.Unlock()
}

func (h sessionHost) SetColorName(index int, name *string) bool {
	h.s.mu.Lock()
	if h.s.Colors == nil {
		h.s.Colors = make(map[int]string)
	}
	if name == nil {
		delete(h.s.Colors, index)
	} else {
		h.s.Colors[index] = *name
	}
	h.s.mu.Unlock()
	return true
}

func (h sessionHost) SetUrgent(on bool) {
	if !on {
		return
	}
	h.s.mu.Lock()
	h.s.Bell = true
	h.s.mu.Unlock()
}

// Session wraps a PTY-backed child process and its virtual Screen. It
// manages the full lifecycle: start, read loop, resize, close.
type Session struct {
	mu sync.Mutex

	ID     string // uuid.NewString(), stable for the session's lifetime
	Screen *Screen
	Status SessionStatus
	title  string

	// Colors tracks palette overrides applied via OSC 4/104, keyed by
	// palette index, so a host UI can reflect a child's custom theme.
	Colors map[int]string

	// Bell latches true on BEL until a caller calls AckBell.
	Bell bool

	p   gopty.Pty
	cmd *gopty.Cmd

	done chan struct{}

	// OutputCh receives a non-blocking signal each time new data lands on
	// Screen, so a render loop can select on it instead of polling.
	OutputCh chan struct{}

	ExitCode int

	// LastOutputAt records when the PTY last produced output.
	LastOutputAt time.Time
}

// NewSession creates a Session with the given screen dimensions but does
// not start a process. Call Start to spawn the child.
func NewSession(rows, cols int) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Status:   StatusRunning,
		OutputCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	s.Screen = NewScreenWithHost(rows, cols, sessionHost{s: s})
	return s
}

// Start launches argv inside a new PTY. An empty argv uses the user's
// default shell. dir sets the working directory; env appends to the
// inherited environment.
func (s *Session) Start(argv []string, dir string, env []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(argv) == 0 {
		argv = defaultShell()
	}

	fullEnv := append(os.Environ(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
	)
	fullEnv = append(fullEnv, env...)

	cols := s.Screen.Cols()
	rows := s.Screen.Rows()

	p, err := gopty.New()
	if err != nil {
		s.Status = StatusError
		return err
	}
	if err := p.Resize(cols, rows); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	cmd := p.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = fullEnv

	if err := cmd.Start(); err != nil {
		p.Close()
		s.Status = StatusError
		return err
	}

	s.p = p
	s.cmd = cmd
	s.Screen.SetReplyWriter(p)

	go s.readLoop()
	go s.waitLoop()

	return nil
}

// readLoop continuously reads PTY output and feeds it to Screen.
func (s *Session) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.p.Read(buf)
		if n > 0 {
			s.Screen.Write(buf[:n])
			s.mu.Lock()
			s.LastOutputAt = time.Now()
			s.mu.Unlock()
			select {
			case s.OutputCh <- struct{}{}:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

// waitLoop waits for the child to exit and records its status.
func (s *Session) waitLoop() {
	err := s.cmd.Wait()
	s.mu.Lock()
	if err != nil {
		if s.cmd.ProcessState != nil {
			s.ExitCode = s.cmd.ProcessState.ExitCode()
		} else {
			s.ExitCode = 1
		}
	}
	s.Status = StatusExited
	s.mu.Unlock()
	close(s.done)
}

// Write sends raw bytes to the PTY (keyboard input, pasted text, mouse
// reports encoded via Screen.EncodeMouse).
func (s *Session) Write(p []byte) (int, error) {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty == nil {
		return 0, io.ErrClosedPipe
	}
	return pty.Write(p)
}

// Resize updates both the PTY's and the Screen's dimensions.
func (s *Session) Resize(rows, cols int) {
	s.Screen.Resize(rows, cols)
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		_ = pty.Resize(cols, rows)
	}
}

// Close terminates the session: kills the child and closes the PTY, then
// waits for the wait-loop goroutine to observe the exit.
func (s *Session) Close() {
	s.mu.Lock()
	cmd := s.cmd
	pty := s.p
	s.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
	if pty != nil {
		pty.Close()
	}
	if s.done != nil {
		<-s.done
	}
}

// Done returns a channel closed when the child process exits.
func (s *Session) Done() <-chan struct{} { return s.done }

// IsRunning reports whether the child process is still alive.
func (s *Session) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Status == StatusRunning
}

// WindowTitle returns the title most recently set via OSC 0/1/2.
func (s *Session) WindowTitle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// AckBell clears the latched bell flag, returning its previous value.
func (s *Session) AckBell() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.Bell
	s.Bell = false
	return v
}

// EnableKittyKeyboard sends the kitty keyboard protocol enable sequence
// (CSI > 1 u), so the child reports Shift+Enter and other modified keys
// as distinct CSI u escapes instead of plain control characters.
func (s *Session) EnableKittyKeyboard() {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		pty.Write([]byte("\x1b[>1u"))
	}
}

// DisableKittyKeyboard pops the kitty keyboard protocol flags (CSI < 1 u).
func (s *Session) DisableKittyKeyboard() {
	s.mu.Lock()
	pty := s.p
	s.mu.Unlock()
	if pty != nil {
		pty.Write([]byte("\x1b[<1u"))
	}
}

// defaultShell returns the default shell command for the current OS.
func defaultShell() []string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return []string{comspec}
		}
		return []string{"cmd.exe"}
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return []string{shell}
	}
	return []string{"/bin/bash"}
}
