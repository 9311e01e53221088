package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	minFrameWidth = 25
	maxFrameWidth = 50
)

// frameWidth clamps the card frame to something readable regardless of
// the terminal size.
func frameWidth(termWidth int) int {
	w := termWidth
	if w > maxFrameWidth {
		w = maxFrameWidth
	}
	if w < minFrameWidth {
		w = minFrameWidth
	}
	return w
}

var frameStyle = lipgloss.NewStyle().
	Padding(1, 1).
	Align(lipgloss.Center).
	Border(lipgloss.RoundedBorder(), true).
	BorderForeground(lipgloss.Color("#C89A3A"))

// frame renders texts centered inside a bordered card, one blank line
// between texts. Texts are wrapped to the frame's inner width before
// styling so wide runes cannot break the border.
func frame(texts []string, termWidth int) string {
	width := frameWidth(termWidth)
	inner := width - 4
	var lines []string
	for i, text := range texts {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, wrapText(text, inner)...)
	}
	return frameStyle.Width(width).Render(strings.Join(lines, "\n"))
}
