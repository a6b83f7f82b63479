package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/patrick-goecommerce/multiterminal/internal/terminal"
)

// handleKey routes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.passthrough {
		if isKey(msg, tea.KeyCtrlG) {
			m.passthrough = false
			return m, nil
		}
		m.sendKeyToTerminal(msg)
		return m, nil
	}

	// Quit: double Ctrl+C
	if isKey(msg, tea.KeyCtrlC) {
		if time.Since(m.lastCtrlC) < 500*time.Millisecond {
			m.quitting = true
			m.sess.Close()
			return m, tea.Quit
		}
		m.lastCtrlC = time.Now()
		m.sendKeyToTerminal(msg)
		return m, nil
	}

	// Shift+Enter → send kitty CSI u sequence to the child PTY. Many
	// terminals report Alt+Enter when Shift+Enter is pressed; Bubbletea v1
	// surfaces this as KeyEnter with Alt=true.
	if isKey(msg, tea.KeyEnter) && msg.Alt {
		m.sess.Write([]byte("\x1b[13;2u"))
		return m, nil
	}

	// Passthrough toggle
	if isKey(msg, tea.KeyCtrlG) {
		m.passthrough = true
		return m, nil
	}

	// Help
	if isRune(msg, '?') {
		m.showHelp = true
		return m, nil
	}

	m.sendKeyToTerminal(msg)
	return m, nil
}

// sendKeyToTerminal forwards a key event to the hosted terminal session.
func (m *Model) sendKeyToTerminal(msg tea.KeyMsg) {
	if m.sess == nil || !m.sess.IsRunning() {
		return
	}
	data := keyToBytes(msg)
	if len(data) > 0 {
		m.sess.Write(data)
	}
}

// handleMouse forwards a mouse event to the hosted terminal session, encoded
// according to whichever mouse-reporting mode the session has negotiated.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.sess == nil || !m.sess.IsRunning() {
		return m, nil
	}

	ev := terminal.MouseEvent{
		Pos:     terminal.Coord{X: msg.X, Y: msg.Y},
		Shift:   msg.Shift,
		Meta:    msg.Alt,
		Control: msg.Ctrl,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		ev.Type = terminal.MousePress
	case tea.MouseActionRelease:
		ev.Type = terminal.MouseRelease
	case tea.MouseActionMotion:
		ev.Type = terminal.MouseMotion
	default:
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = terminal.MouseLeft
	case tea.MouseButtonMiddle:
		ev.Button = terminal.MouseMiddle
	case tea.MouseButtonRight:
		ev.Button = terminal.MouseRight
	case tea.MouseButtonWheelUp:
		ev.Button = terminal.MouseWheelUp
	case tea.MouseButtonWheelDown:
		ev.Button = terminal.MouseWheelDown
	default:
		ev.Button = terminal.MouseNone
	}

	if data := m.sess.Screen.EncodeMouse(ev); data != nil {
		m.sess.Write(data)
	}
	return m, nil
}
