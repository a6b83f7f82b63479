package terminal

import (
	"strconv"
	"strings"
)

// Render produces an ANSI string representation of the entire visible
// buffer, selection highlighting included, suitable for embedding inside
// a host terminal.
func (s *Screen) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderRegionLocked(0, 0, s.size.Y-1, s.size.X-1)
}

// RenderRegion renders a sub-rectangle of the buffer (0-indexed,
// inclusive bounds), clamped to the buffer's actual extent.
func (s *Screen) RenderRegion(startRow, startCol, endRow, endCol int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderRegionLocked(startRow, startCol, endRow, endCol)
}

func (s *Screen) renderRegionLocked(startRow, startCol, endRow, endCol int) string {
	var b strings.Builder
	b.Grow((endRow - startRow + 1) * (endCol - startCol + 16))

	prev := Style(0)
	first := true
	for y := startRow; y <= endRow && y < s.size.Y; y++ {
		if !first {
			b.WriteByte('\n')
			b.WriteString("\x1b[0m")
			prev = Style(0)
		}
		first = false
		row := s.display[y]
		for x := startCol; x <= endCol && x < s.size.X; x++ {
			g := row[x]
			style := g.Style
			if s.selectedLocked(x, y) {
				style = style.WithReverse(!style.Reverse())
			}
			if style != prev {
				b.WriteString(sgrSequence(style))
				prev = style
			}
			r := g.Rune
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
	}
	b.WriteString("\x1b[0m")
	return b.String()
}

// sgrSequence renders style as the SGR escape sequence that reproduces it.
func sgrSequence(style Style) string {
	var parts []string
	if style.Bold() {
		parts = append(parts, "1")
	}
	if style.Italic() {
		parts = append(parts, "3")
	}
	if style.Underline() {
		parts = append(parts, "4")
	}
	if style.Blink() {
		parts = append(parts, "5")
	}
	if style.Reverse() {
		parts = append(parts, "7")
	}
	if fg := style.FG(); fg != 0 {
		parts = append(parts, colorParts(fg, true)...)
	}
	if bg := style.BG(); bg != 0 {
		parts = append(parts, colorParts(bg, false)...)
	}
	if len(parts) == 0 {
		return "\x1b[0m"
	}
	return "\x1b[0;" + strings.Join(parts, ";") + "m"
}

func colorParts(idx int, fg bool) []string {
	base := 30
	if !fg {
		base = 40
	}
	switch {
	case idx < 8:
		return []string{strconv.Itoa(base + idx)}
	case idx < 16:
		if fg {
			return []string{strconv.Itoa(90 + idx - 8)}
		}
		return []string{strconv.Itoa(100 + idx - 8)}
	case idx < 256:
		return []string{strconv.Itoa(base + 8), "5", strconv.Itoa(idx)}
	default:
		// Packed truecolor (see sgr.go's packTruecolor): unpack the
		// reduced 4-bit-per-channel encoding back to 0-255 per channel.
		v := idx - 256
		r := (v / (16 * 16)) & 0xf
		g := (v / 16) & 0xf
		bl := v & 0xf
		return []string{strconv.Itoa(base + 8), "2", strconv.Itoa(r * 17), strconv.Itoa(g * 17), strconv.Itoa(bl * 17)}
	}
}

// PlainTextRow returns row y's content with no ANSI styling, trailing
// spaces trimmed — used for pattern matching against terminal output.
func (s *Screen) PlainTextRow(y int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if y < 0 || y >= s.size.Y {
		return ""
	}
	return plainTextOf(s.display[y])
}

// PlainText returns the full buffer as plain text, rows joined by \n.
func (s *Screen) PlainText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	for y := 0; y < s.size.Y; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(plainTextOf(s.display[y]))
	}
	return b.String()
}

func plainTextOf(row Row) string {
	var b strings.Builder
	for _, g := range row {
		r := g.Rune
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}
