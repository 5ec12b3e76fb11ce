package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ────────────────────────────────────────────────────────────
// Colour helpers
// ────────────────────────────────────────────────────────────

// hexColor parses a #rrggbb string. Themes are validated on load, so a
// parse failure only yields black.
func hexColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// blend mixes from towards to by t in [0, 1] and returns a lipgloss colour.
func blend(from, to colorful.Color, t float64) lipgloss.Color {
	return lipgloss.Color(from.BlendRgb(to, clampFloat(t, 0, 1)).Clamped().Hex())
}

// gradientText colours each rune of s along a from→to gradient, on bg.
func gradientText(s string, from, to colorful.Color, bold bool, bg lipgloss.TerminalColor) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(from.BlendLuv(to, t).Clamped().Hex())).
			Background(bg).
			Bold(bold).
			Render(string(r)))
	}
	return sb.String()
}

// gradientBar is a full-width strip of half blocks shading from → via → to.
func gradientBar(width int, from, via, to colorful.Color, block string) string {
	if width <= 0 {
		return ""
	}

	var sb strings.Builder
	for x := 0; x < width; x++ {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		var c colorful.Color
		if t < 0.5 {
			c = from.BlendLuv(via, t*2)
		} else {
			c = via.BlendLuv(to, (t-0.5)*2)
		}
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Clamped().Hex())).
			Render(block))
	}
	return sb.String()
}

// ────────────────────────────────────────────────────────────
// Numeric helpers
// ────────────────────────────────────────────────────────────

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

func clampFloat(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// round rounds half away from zero.
func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// blanks returns n spaces.
func blanks(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
