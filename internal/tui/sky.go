package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/polaroid/internal/decor"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// skyRows is the height of the decoration strip under the header.
const skyRows = 5

// minHeightForSky hides the strip on short terminals.
const minHeightForSky = 36

// cell is one terminal cell of the sky. Wide glyphs occupy two cells; the
// second one is marked as a continuation.
type cell struct {
	text  string
	style lipgloss.Style
	cont  bool
	set   bool
}

// canvas is a fixed-size grid the decorations are dropped onto. Later
// drops never overwrite earlier ones.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, cells: make([]cell, w*h)}
}

// put places text at (x, y) if it fits and the cells are free.
func (c *canvas) put(x, y int, text string, style lipgloss.Style) bool {
	width := runewidth.StringWidth(text)
	if width == 0 || y < 0 || y >= c.h || x < 0 || x+width > c.w {
		return false
	}
	for i := 0; i < width; i++ {
		if c.cells[y*c.w+x+i].set {
			return false
		}
	}
	c.cells[y*c.w+x] = cell{text: text, style: style, set: true}
	for i := 1; i < width; i++ {
		c.cells[y*c.w+x+i] = cell{cont: true, set: true}
	}
	return true
}

// render flattens the canvas into lines.
func (c *canvas) render() string {
	lines := make([]string, c.h)
	var sb strings.Builder
	for y := 0; y < c.h; y++ {
		sb.Reset()
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			switch {
			case cl.cont:
			case cl.set:
				sb.WriteString(cl.style.Render(cl.text))
			default:
				sb.WriteByte(' ')
			}
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// pct maps a percentage onto [0, n).
func pct(v float64, n int) int {
	return clamp(int(v/100*float64(n)), 0, n-1)
}

// renderSky draws the decoration scene at the current animation time:
// balloons bob, confetti falls through, glyphs float in place.
func renderSky(m *Model, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cv := newCanvas(width, height)
	s := m.scene

	balloon := lipgloss.NewStyle().Foreground(blend(m.styles.bg, m.styles.balloon, 0.6))
	for _, b := range s.Balloons {
		// Balloons live in the top half of the page; the strip is all of it.
		y := pct(b.TopPct*2, height) - round(b.BounceAt(m.elapsed))
		cv.put(pct(b.LeftPct, width), clamp(y, 0, height-1), b.Symbol, balloon)
	}

	for _, c := range s.Confetti {
		p, ok := c.FallAt(m.elapsed)
		if !ok || p.TopPct < 0 || p.TopPct >= 100 {
			continue
		}
		cv.put(pct(p.LeftPct, width), pct(p.TopPct, height), confettiSymbol(c), lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)))
	}

	glyph := lipgloss.NewStyle().Foreground(blend(m.styles.bg, m.styles.glyph, 0.7))
	for _, g := range s.Glyphs {
		cv.put(pct(g.LeftPct, width), pct(g.TopPct, height), g.Symbol, glyph)
	}

	return cv.render()
}

// confettiSymbol picks a dot size for a confetti piece.
func confettiSymbol(c decor.Confetti) string {
	if c.SizePx < 10 {
		return "•"
	}
	return "●"
}
