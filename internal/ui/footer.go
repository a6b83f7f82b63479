package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FooterData holds the information displayed in the global status footer.
type FooterData struct {
	Title     string // OSC window title of the session
	Running   bool   // whether the child process is still alive
	ThemeName string // active palette name
}

// RenderFooter draws the status bar at the bottom of the screen: title,
// running state, active palette, and a quick shortcut hint.
func RenderFooter(d FooterData, width int) string {
	var sections []string

	if d.Title != "" {
		sections = append(sections,
			FooterKeyStyle.Render("title:")+FooterValStyle.Render(" "+d.Title))
	}

	status := "running"
	if !d.Running {
		status = "exited"
	}
	sections = append(sections, FooterKeyStyle.Render("status:")+FooterValStyle.Render(" "+status))

	if d.ThemeName != "" {
		sections = append(sections, FooterDimStyle.Render(d.ThemeName))
	}

	shortcuts := FooterDimStyle.Render("Ctrl+G:passthrough  ?:help  Ctrl+C ×2:quit")

	left := strings.Join(sections, FooterSepStyle.Render(""))
	right := shortcuts

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	gap := width - leftWidth - rightWidth - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return FooterStyle.Width(width).Render(line)
}
