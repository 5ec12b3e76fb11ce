package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/polaroid/internal/imgterm"
	"github.com/charmbracelet/lipgloss"
)

// closeButton is drawn in the frame's top-right corner.
const closeButton = " ✕ "

// lbRect is the lightbox frame in screen coordinates.
type lbRect struct {
	x, y, w, h int
	picCols    int
	picRows    int
}

// contains reports whether (x, y) falls inside the frame.
func (r lbRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// onClose reports whether (x, y) is on the close button.
func (r lbRect) onClose(x, y int) bool {
	n := lipgloss.Width(closeButton)
	return y == r.y && x >= r.x+r.w-n && x < r.x+r.w
}

// lightboxBounds is the largest picture box the lightbox may use: most of
// the screen, leaving room for the frame and the hint line.
func lightboxBounds(width, height int) (cols, rows int) {
	return max(width-8, 4), max(height*80/100-2, 2)
}

// lightboxRect sizes the frame around the loaded picture, or around a
// square placeholder while it loads.
func lightboxRect(m *Model) lbRect {
	maxCols, maxRows := lightboxBounds(m.width, m.height)

	cols := min(maxCols, maxRows*2)
	rows := cols / 2
	if sel, ok := m.lightbox.Selected(); ok && m.full != nil && m.fullID == sel.ID {
		cols, rows = m.full.Size()
	}

	r := lbRect{w: cols + 2, h: rows + 2, picCols: cols, picRows: rows}
	r.x = max(0, (m.width-r.w)/2)
	r.y = max(0, (m.height-r.h)/2)
	return r
}

// renderLightbox draws the selected photo over a black backdrop:
//
//	┌──────────────── ✕ ┐
//	│     picture       │
//	│    Memory #12     │
func renderLightbox(m *Model) string {
	sel, ok := m.lightbox.Selected()
	if !ok {
		return ""
	}
	st := m.styles
	r := lightboxRect(m)

	paper := lipgloss.NewStyle().Background(lipgloss.Color(st.paper.Hex()))
	backdrop := lipgloss.NewStyle().Background(colorBackdrop)
	edge := paper.Render(" ")

	var pic []string
	switch {
	case m.full != nil && m.fullID == sel.ID:
		pic = m.full.Lines(1, st.paper)
	case m.fullErr != nil && m.fullID == sel.ID:
		pic = imgterm.Placeholder(r.picCols, r.picRows, string(colorDim), st.paper.Hex())
	default:
		pic = make([]string, r.picRows)
		fill := paper.Foreground(colorDim).Width(r.picCols).Align(lipgloss.Center)
		for i := range pic {
			text := ""
			if i == r.picRows/2 {
				text = "···"
			}
			pic[i] = fill.Render(text)
		}
	}

	frame := make([]string, 0, r.h)
	closeW := lipgloss.Width(closeButton)
	frame = append(frame, paper.Width(r.w-closeW).Render("")+st.lbClose.Render(closeButton))
	for _, row := range pic {
		frame = append(frame, edge+row+edge)
	}
	frame = append(frame, paper.Width(r.w).Align(lipgloss.Center).Render(
		st.lbCaption.Render(sel.Caption)))

	lines := make([]string, m.height)
	blankRow := backdrop.Width(m.width).Render("")
	for y := range lines {
		fy := y - r.y
		switch {
		case fy >= 0 && fy < len(frame):
			lines[y] = backdrop.Render(blanks(r.x)) + frame[fy] +
				backdrop.Render(blanks(m.width-r.x-r.w))
		case fy == len(frame)+1:
			lines[y] = backdrop.Width(m.width).Align(lipgloss.Center).Render(
				st.lbHint.Render("click outside or press esc to close · n/p to browse"))
		default:
			lines[y] = blankRow
		}
	}
	return strings.Join(lines, "\n")
}
