package tui

import (
	"github.com/Mr-Dark-debug/polaroid/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ────────────────────────────────────────────────────────────
// Palette
// ────────────────────────────────────────────────────────────
//
// Every colour comes from the active theme. No ad-hoc colour literals
// anywhere else except the lightbox backdrop, which is black in every
// theme.

type palette struct {
	bg         colorful.Color
	headerFrom colorful.Color
	headerVia  colorful.Color
	headerTo   colorful.Color
	title      colorful.Color
	text       colorful.Color
	accent     colorful.Color
	accentTo   colorful.Color
	accentSoft colorful.Color
	string     colorful.Color
	bulb       colorful.Color
	glyph      colorful.Color
	balloon    colorful.Color
	paper      colorful.Color
}

const (
	colorBackdrop = lipgloss.Color("#000000")
	colorCloseFg  = lipgloss.Color("#1f2937")
	colorDim      = lipgloss.Color("#6b7280")
)

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

type styles struct {
	palette

	// Header
	headerTitle    lipgloss.Style
	headerUnder    lipgloss.Style
	headerSubtitle lipgloss.Style
	bannerBox      lipgloss.Style

	// Board
	stringLine lipgloss.Style
	cardLifted lipgloss.Style
	cardRest   lipgloss.Style

	// Lightbox
	lbClose   lipgloss.Style
	lbCaption lipgloss.Style
	lbHint    lipgloss.Style

	// Footer
	footerLine lipgloss.Style
	status     lipgloss.Style
	hintKey    lipgloss.Style
	hintDesc   lipgloss.Style

	loading lipgloss.Style
}

func newStyles(th theme.Theme) styles {
	p := th.Palette
	pal := palette{
		bg:         hexColor(p.Background),
		headerFrom: hexColor(p.HeaderFrom),
		headerVia:  hexColor(p.HeaderVia),
		headerTo:   hexColor(p.HeaderTo),
		title:      hexColor(p.Title),
		text:       hexColor(p.Text),
		accent:     hexColor(p.Accent),
		accentTo:   hexColor(p.AccentTo),
		accentSoft: hexColor(p.AccentSoft),
		string:     hexColor(p.String),
		bulb:       hexColor(p.Bulb),
		glyph:      hexColor(p.Glyph),
		balloon:    hexColor(p.Balloon),
		paper:      hexColor(p.Paper),
	}

	return styles{
		palette: pal,

		headerTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Title)).
			Bold(true),

		headerUnder: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.AccentSoft)),

		headerSubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Italic(true),

		bannerBox: lipgloss.NewStyle().
			Background(lipgloss.Color(p.Paper)),

		stringLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.String)),

		cardLifted: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Accent)),

		cardRest: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()),

		lbClose: lipgloss.NewStyle().
			Foreground(colorCloseFg).
			Background(lipgloss.Color(p.Paper)).
			Bold(true),

		lbCaption: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Title)).
			Background(lipgloss.Color(p.Paper)).
			Padding(0, 2),

		lbHint: lipgloss.NewStyle().
			Foreground(colorDim).
			Background(colorBackdrop),

		footerLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),

		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Padding(0, 1),

		hintKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Title)).
			Bold(true),

		hintDesc: lipgloss.NewStyle().
			Foreground(colorDim),

		loading: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Italic(true),
	}
}
