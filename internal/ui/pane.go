package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/patrick-goecommerce/multiterminal/internal/terminal"
)

// PaneInfo holds the display metadata for the hosted terminal pane.
type PaneInfo struct {
	Session *terminal.Session
	Title   string // OSC-set window title, falls back to a static label
	Bell    bool   // true when an unacknowledged BEL is pending
}

// RenderPane draws the terminal pane with its border and title bar, sized
// to fit width×height (outer dimensions, border included).
func RenderPane(p PaneInfo, width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}

	border := PaneBorderFocused
	if p.Bell {
		border = PaneBorderBell
	}

	innerW := width - 2
	innerH := height - 3 // -2 border, -1 title

	if innerW < 1 || innerH < 1 {
		return border.Width(width).Height(height).Render("")
	}

	title := buildPaneTitle(p)
	titleLine := lipgloss.NewStyle().Width(innerW).MaxWidth(innerW).Render(title)

	content := renderScreenContent(p.Session, innerW, innerH)

	body := titleLine + "\n" + content
	return border.Width(width).Height(height).Render(body)
}

// buildPaneTitle creates the title string shown at the top of the pane.
func buildPaneTitle(p PaneInfo) string {
	var statusDot string
	if p.Session != nil && p.Session.IsRunning() {
		statusDot = PaneStatusRunning.Render("●")
	} else {
		statusDot = PaneStatusExited.Render("●")
	}

	title := p.Title
	if title == "" {
		title = "vt"
	}

	var bellTag string
	if p.Bell {
		bellTag = " " + lipgloss.NewStyle().Foreground(ColorWarning).Render("BEL")
	}

	return statusDot + " " + PaneTitleStyle.Render(title) + bellTag
}

// renderScreenContent extracts the visible portion of the terminal screen
// buffer and returns it as a string, constrained to w×h.
func renderScreenContent(sess *terminal.Session, w, h int) string {
	if sess == nil {
		return strings.Repeat("\n", h-1)
	}

	screenRows := sess.Screen.Rows()
	screenCols := sess.Screen.Cols()

	startRow := 0
	endRow := startRow + h - 1
	if endRow >= screenRows {
		endRow = screenRows - 1
	}

	endCol := screenCols - 1
	if endCol >= w {
		endCol = w - 1
	}

	return sess.Screen.RenderRegion(startRow, 0, endRow, endCol)
}
