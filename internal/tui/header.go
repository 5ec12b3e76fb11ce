package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/polaroid/internal/motion"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// headerRows is the fixed height of renderHeader's output.
const headerRows = 8

// footerRows is the fixed height of renderFooter's output.
const footerRows = 2

// renderHeader produces the title block:
//
//	▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄▄
//	      Our Ghibli Journey 🌿
//	      ▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔▔
//	    🎂
//	       Happy Birthday, Love ❤️
//	                             🎉
//	  Memories we've made together...
//	▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀
func renderHeader(m *Model) string {
	st := m.styles
	th := m.theme
	w := m.width

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(w, lipgloss.Center, s)
	}

	var lines []string
	lines = append(lines, gradientBar(w, st.headerFrom, st.headerVia, st.headerTo, "▄"))

	title := truncate(th.Title, w-2)
	lines = append(lines, center(st.headerTitle.Render(title)))
	lines = append(lines, center(st.headerUnder.Render(
		strings.Repeat("▔", runewidth.StringWidth(title)))))

	lines = append(lines, renderBanner(m)...)

	lines = append(lines, center(st.headerSubtitle.Render(truncate(th.Subtitle, w-2))))
	lines = append(lines, gradientBar(w, st.headerFrom, st.headerVia, st.headerTo, "▀"))

	return strings.Join(lines, "\n")
}

// renderBanner draws the white card with the pulsing gradient greeting,
// three lines tall. The pulse widens the card's padding.
func renderBanner(m *Model) []string {
	st := m.styles
	th := m.theme

	text := truncate(th.Banner, max(m.width-12, 4))
	pulse := motion.Pulse(m.elapsed, 2, 0.05)
	pad := 3 + round((pulse-1)/0.05*2)

	greeting := gradientText(text, st.accent, st.accentTo, true, lipgloss.Color(st.paper.Hex()))
	boxW := runewidth.StringWidth(text) + 2*pad

	top := st.bannerBox.Width(boxW).Render(th.CornerGlyphs[0])
	mid := st.bannerBox.Render(blanks(pad)) + greeting + st.bannerBox.Render(blanks(pad))
	bottom := st.bannerBox.Width(boxW).Align(lipgloss.Right).Render(th.CornerGlyphs[1])

	out := make([]string, 0, 3)
	for _, l := range []string{top, mid, bottom} {
		out = append(out, lipgloss.PlaceHorizontal(m.width, lipgloss.Center, l))
	}
	return out
}

// renderFooter produces the theme's footer line and a status bar with
// keyboard hints.
func renderFooter(m *Model) string {
	st := m.styles

	credit := lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		st.footerLine.Render(truncate(m.theme.Footer, m.width-2)))

	left := st.status.Render(m.statusLine())

	hints := keys.boardHints()
	if m.lightbox.IsOpen() {
		hints = keys.lightboxHints()
	}
	right := m.help.ShortHelpView(hints)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + strings.Repeat(" ", gap) + right

	return credit + "\n" + lipgloss.NewStyle().MaxWidth(m.width).Render(bar)
}

// statusLine summarises loading progress and the hovered photo.
func (m Model) statusLine() string {
	loaded := len(m.thumbs) + len(m.missing)
	if loaded < len(m.photos) {
		return fmt.Sprintf("%s %d/%d", m.theme.Loading, loaded, len(m.photos))
	}
	if m.hovered >= 0 && m.hovered < len(m.photos) {
		return m.photos[m.hovered].Caption
	}
	return fmt.Sprintf("%d photos", len(m.photos))
}
