// Package app contains the Bubbletea model that hosts a single terminal
// session: it reads PTY output into the terminal core, turns key and mouse
// events into core calls, and renders the screen with lipgloss.
package app

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrick-goecommerce/multiterminal/internal/config"
	"github.com/patrick-goecommerce/multiterminal/internal/terminal"
	"github.com/patrick-goecommerce/multiterminal/internal/ui"
)

// ---------------------------------------------------------------------------
// Bubbletea messages
// ---------------------------------------------------------------------------

// tickMsg fires periodically to poll for output, bell, and title changes.
type tickMsg time.Time

// ---------------------------------------------------------------------------
// Model – the top-level Bubbletea model
// ---------------------------------------------------------------------------

// Model is the root application model, hosting exactly one terminal.Session.
type Model struct {
	cfg  config.Config
	sess *terminal.Session

	width  int
	height int

	title     string
	bell      bool
	bellUntil time.Time

	showHelp  bool
	quitting  bool
	lastCtrlC time.Time

	// passthrough: when true, all key events except Ctrl+G go to the
	// terminal instead of being handled by the app. Toggled with Ctrl+G.
	passthrough bool

	// logFile is the open handle backing cfg.LogFile's raw PTY tee, if any.
	logFile *os.File
}

// New creates the initial Model and spawns the shell session.
func New(cfg config.Config) Model {
	dir := cfg.DefaultDir
	if dir == "" {
		dir, _ = os.Getwd()
	}

	ui.SetTheme(cfg.Palette)

	sess := terminal.NewSession(24, 80)

	m := Model{
		cfg:  cfg,
		sess: sess,
	}

	if cfg.LogFile != "" {
		if f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			m.logFile = f
			sess.Screen.SetLogWriter(f)
		}
	}

	shell := cfg.DefaultShell
	var argv []string
	if shell != "" {
		argv = []string{shell}
	}
	_ = sess.Start(argv, dir, nil)

	return m
}

// Close releases resources held by the model, such as an open log file.
// Callers should invoke it after the Bubbletea program exits.
func (m Model) Close() {
	if m.logFile != nil {
		m.logFile.Close()
	}
}

// Init is the Bubbletea initialiser. We start a periodic tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.frameInterval()))
}

func (m Model) frameInterval() time.Duration {
	rate := m.cfg.FrameRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

// Update processes incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeSession()
		return m, nil

	case tickMsg:
		m.pollSession()
		if !m.sess.IsRunning() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.frameInterval())

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View renders the entire UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if m.width == 0 || m.height == 0 {
		return "Initialising…"
	}

	if m.showHelp {
		help := ShortcutHelp()
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help)
	}

	return m.renderNormal()
}
