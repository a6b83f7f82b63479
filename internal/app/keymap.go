package app

import tea "github.com/charmbracelet/bubbletea"

// ---------------------------------------------------------------------------
// Key‐binding helpers
// ---------------------------------------------------------------------------

// isKey checks whether a tea.KeyMsg matches a given key type (e.g. tea.KeyCtrlG).
func isKey(msg tea.KeyMsg, k tea.KeyType) bool {
	return msg.Type == k
}

// isRune checks whether a tea.KeyMsg is a specific rune.
func isRune(msg tea.KeyMsg, r rune) bool {
	return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == r
}

// ---------------------------------------------------------------------------
// Shortcut help text (shown in the help overlay)
// ---------------------------------------------------------------------------

// ShortcutHelp returns the full help text displayed when the user presses '?'.
func ShortcutHelp() string {
	return `
╔════════════════════════════════════════════════════════════╗
║                        vt – Shortcuts                       ║
╠════════════════════════════════════════════════════════════╣
║                                                              ║
║  Ctrl+G         Passthrough mode (all keys to terminal)     ║
║  Alt+Enter      Shift+Enter (kitty CSI u newline)           ║
║  ?              Show/hide this help                        ║
║  Ctrl+C (×2)    Quit                                        ║
║                                                              ║
║  Mouse reporting follows the child program's negotiated     ║
║  mode (X10 legacy or SGR 1006); the pane border flashes     ║
║  amber on an unacknowledged bell.                           ║
║                                                              ║
║  Palette: set "palette" in ~/.vtrc.yaml                     ║
║    Available: dark, light, dracula, nord, solarized         ║
║                                                              ║
╚════════════════════════════════════════════════════════════╝`
}
