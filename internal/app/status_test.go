package app

import (
	"testing"

	"github.com/patrick-goecommerce/multiterminal/internal/config"
	"github.com/patrick-goecommerce/multiterminal/internal/terminal"
)

func TestResizeSessionAccountsForChrome(t *testing.T) {
	m := Model{cfg: config.DefaultConfig(), sess: terminal.NewSession(24, 80)}
	m.width = 82
	m.height = 30

	m.resizeSession()

	// height: -1 footer, -2 border, -1 title = -4; width: -2 border.
	if got, want := m.sess.Screen.Rows(), 26; got != want {
		t.Errorf("Screen.Rows() = %d, want %d", got, want)
	}
	if got, want := m.sess.Screen.Cols(), 80; got != want {
		t.Errorf("Screen.Cols() = %d, want %d", got, want)
	}
}

func TestResizeSessionClampsToMinimum(t *testing.T) {
	m := Model{cfg: config.DefaultConfig(), sess: terminal.NewSession(24, 80)}
	m.width = 1
	m.height = 1

	m.resizeSession() // must not panic on a degenerate window size

	if m.sess.Screen.Rows() < 1 || m.sess.Screen.Cols() < 1 {
		t.Errorf("expected dimensions clamped to at least 1, got %dx%d",
			m.sess.Screen.Rows(), m.sess.Screen.Cols())
	}
}

func TestPollSessionLatchesBellForOneSecond(t *testing.T) {
	m := Model{cfg: config.DefaultConfig(), sess: terminal.NewSession(5, 20)}
	m.sess.Screen.WriteString("\x07")

	m.pollSession()

	if !m.bell {
		t.Error("expected bell latched immediately after a BEL")
	}
}
