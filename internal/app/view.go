package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/patrick-goecommerce/multiterminal/internal/ui"
)

// renderNormal draws the standard layout: the terminal pane plus the footer.
func (m Model) renderNormal() string {
	footer := ui.RenderFooter(m.footerData(), m.width)

	paneH := m.height - 1
	if paneH < 1 {
		paneH = 1
	}

	pane := ui.RenderPane(ui.PaneInfo{
		Session: m.sess,
		Title:   m.title,
		Bell:    m.bell,
	}, m.width, paneH)

	return lipgloss.JoinVertical(lipgloss.Left, pane, footer)
}

// footerData assembles the data needed to render the footer.
func (m Model) footerData() ui.FooterData {
	d := ui.FooterData{
		Title:     m.title,
		ThemeName: ui.ActiveTheme.Name,
	}
	if m.sess != nil {
		d.Running = m.sess.IsRunning()
	}
	return d
}
