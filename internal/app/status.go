package app

import "time"

// resizeSession recalculates the terminal's dimensions from the window size,
// accounting for the pane border (2 cols, 2 rows) and title/footer rows.
func (m *Model) resizeSession() {
	if m.sess == nil {
		return
	}

	contentH := m.height - 1 // footer row
	if contentH < 3 {
		contentH = 3
	}
	contentW := m.width
	if contentW < 4 {
		contentW = 4
	}

	innerW := contentW - 2
	innerH := contentH - 3 // -2 border, -1 title
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	m.sess.Resize(innerH, innerW)
}

// pollSession refreshes the cached title/bell state shown in the pane
// border and footer, and acknowledges the latched bell after one tick so
// the flash is visible but not permanent.
func (m *Model) pollSession() {
	if m.sess == nil {
		return
	}
	m.title = m.sess.WindowTitle()
	if m.sess.AckBell() {
		m.bellUntil = time.Now().Add(time.Second)
	}
	m.bell = time.Now().Before(m.bellUntil)
}
