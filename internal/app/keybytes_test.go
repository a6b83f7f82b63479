package app

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyToBytesRunes(t *testing.T) {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")}
	got := keyToBytes(msg)
	if !bytes.Equal(got, []byte("hi")) {
		t.Errorf("keyToBytes(runes) = %q, want %q", got, "hi")
	}
}

func TestKeyToBytesControlAndArrows(t *testing.T) {
	cases := []struct {
		typ  tea.KeyType
		want []byte
	}{
		{tea.KeyEnter, []byte{'\r'}},
		{tea.KeyBackspace, []byte{0x7f}},
		{tea.KeyEsc, []byte{0x1b}},
		{tea.KeyCtrlC, []byte{0x03}},
		{tea.KeyUp, []byte{0x1b, '[', 'A'}},
		{tea.KeyDown, []byte{0x1b, '[', 'B'}},
		{tea.KeyDelete, []byte{0x1b, '[', '3', '~'}},
	}
	for _, c := range cases {
		got := keyToBytes(tea.KeyMsg{Type: c.typ})
		if !bytes.Equal(got, c.want) {
			t.Errorf("keyToBytes(%v) = %v, want %v", c.typ, got, c.want)
		}
	}
}

func TestKeyToBytesUnknownYieldsNil(t *testing.T) {
	got := keyToBytes(tea.KeyMsg{Type: tea.KeyInsert})
	if got != nil {
		t.Errorf("keyToBytes(unmapped) = %v, want nil", got)
	}
}
