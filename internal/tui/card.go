package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/polaroid/internal/imgterm"
	"github.com/charmbracelet/lipgloss"
)

// renderCard draws a polaroid: white paper, square picture, handwritten
// caption. opacity fades the whole card in from the page colour; a lifted
// card gets an accent border. Always cardH lines of cardW cells.
func renderCard(m *Model, index int, opacity float64, lifted bool) []string {
	p := m.photos[index]
	paperColor := blend(m.styles.bg, m.styles.paper, opacity)
	paper := lipgloss.NewStyle().Background(paperColor)
	edge := paper.Render(" ")

	var pic []string
	switch {
	case m.thumbs[p.ID] != nil:
		pic = m.thumbs[p.ID].Lines(opacity, m.styles.bg)
	case m.missing[p.ID]:
		pic = imgterm.Placeholder(picCols, picRows, string(blend(m.styles.bg, m.styles.text, opacity)), string(paperColor))
	default:
		pic = loadingPicture(paper)
	}

	lines := make([]string, 0, paperH)
	lines = append(lines, paper.Width(paperW).Render(""))
	for _, row := range pic {
		lines = append(lines, edge+row+edge)
	}
	lines = append(lines, paper.Width(paperW).Render(""))

	caption := paper.
		Foreground(blend(m.styles.bg, m.styles.text, opacity)).
		Italic(true).
		Width(paperW).
		Align(lipgloss.Center).
		Render(truncate(p.Caption, paperW-2))
	lines = append(lines, caption)
	lines = append(lines, paper.Width(paperW).Render(""))

	frame := m.styles.cardRest
	if lifted {
		frame = m.styles.cardLifted
	}
	return strings.Split(frame.Render(strings.Join(lines, "\n")), "\n")
}

// loadingPicture is the blank square shown until the thumbnail arrives.
func loadingPicture(paper lipgloss.Style) []string {
	fill := paper.Foreground(colorDim).Width(picCols).Align(lipgloss.Center)
	out := make([]string, picRows)
	for i := range out {
		text := ""
		if i == picRows/2 {
			text = "···"
		}
		out[i] = fill.Render(text)
	}
	return out
}
