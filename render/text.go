package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s from (x, y) clipped to maxWidth cells and returns the cells used
func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) int {
	used := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if used+w > maxWidth {
			break
		}
		s.SetContent(x+used, y, r, nil, style)
		used += w
	}
	return used
}

// fill paints a rectangle with spaces
func fill(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ' ', nil, style)
		}
	}
}

// wrap splits text into lines no wider than width cells, breaking on spaces when possible
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if ww > width {
			if lineWidth > 0 {
				flush()
			}
			for _, part := range strings.Split(runewidth.Wrap(word, width), "\n") {
				line.WriteString(part)
				lineWidth = runewidth.StringWidth(part)
				flush()
			}
			continue
		}
		switch {
		case lineWidth == 0:
		case lineWidth+1+ww > width:
			flush()
		default:
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += ww
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}
