// Package export renders a gallery as a single static HTML page: the same
// strings, polaroids, decorations and lightbox as the terminal view, for a
// browser.
package export

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Mr-Dark-debug/polaroid/internal/decor"
	"github.com/Mr-Dark-debug/polaroid/internal/layout"
	"github.com/Mr-Dark-debug/polaroid/internal/motion"
	"github.com/Mr-Dark-debug/polaroid/internal/photo"
	"github.com/Mr-Dark-debug/polaroid/internal/theme"
	"github.com/Mr-Dark-debug/polaroid/pkg/cssunit"
)

//go:embed templates/page.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

// pulsePeriod is one full grow-and-shrink cycle of the banner pulse.
const pulsePeriod = 2 * time.Second

// Page is everything a rendition needs.
type Page struct {
	Theme     theme.Theme
	Photos    photo.Set
	Scene     decor.Scene
	GroupSize int
	SpacingPx int
	Bulbs     int
}

// ────────────────────────────────────────────────────────────
// View model
// ────────────────────────────────────────────────────────────
//
// Every CSS value is preformatted so the template only places strings.

type pageView struct {
	Theme    theme.Theme
	Pulse    string
	Strings  []stringView
	Confetti []confettiView
	Glyphs   []glyphView
	Balloons []balloonView
}

type stringView struct {
	Index int
	Bulbs []string
	Cards []cardView
}

type cardView struct {
	ID        int
	Src       string
	Alt       string
	Caption   string
	Rotation  string
	MarginTop string
	Delay     string
}

type confettiView struct {
	Size, Left, Duration, Delay, Color string
}

type glyphView struct {
	Symbol, Size, Left, Top, Rotation, Opacity string
}

type balloonView struct {
	Symbol, Size, Left, Top, Duration, Opacity string
}

// Render writes the page to w.
func Render(w io.Writer, p Page) error {
	view, err := buildView(p)
	if err != nil {
		return err
	}
	if err := pageTemplate.ExecuteTemplate(w, "page.html.tmpl", view); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

func buildView(p Page) (pageView, error) {
	if p.GroupSize == 0 {
		p.GroupSize = layout.DefaultGroupSize
	}
	if p.SpacingPx == 0 {
		p.SpacingPx = layout.DefaultSpacingPx
	}
	if p.Bulbs == 0 {
		p.Bulbs = layout.DefaultBulbs
	}

	placements, err := layout.Assign(p.Photos, p.GroupSize, p.SpacingPx)
	if err != nil {
		return pageView{}, fmt.Errorf("laying out photos: %w", err)
	}

	var bulbs []string
	for _, pct := range layout.BulbPercents(p.Bulbs) {
		bulbs = append(bulbs, cssunit.Percent(pct))
	}

	view := pageView{
		Theme:   p.Theme,
		Pulse:   cssunit.Duration(pulsePeriod),
		Strings: make([]stringView, layout.GroupCount(len(p.Photos), p.GroupSize)),
	}
	for i := range view.Strings {
		view.Strings[i] = stringView{Index: i, Bulbs: bulbs}
	}

	for _, pl := range placements {
		view.Strings[pl.Group].Cards = append(view.Strings[pl.Group].Cards, cardView{
			ID:        pl.Photo.ID,
			Src:       pl.Photo.Path,
			Alt:       pl.Photo.Alt,
			Caption:   pl.Photo.Caption,
			Rotation:  cssunit.Deg(float64(pl.Photo.RotationDegrees)),
			MarginTop: cssunit.Px(float64(pl.OffsetPx)),
			Delay:     cssunit.Seconds(motion.CardEntrance(pl.Position).Delay),
		})
	}

	for _, c := range p.Scene.Confetti {
		view.Confetti = append(view.Confetti, confettiView{
			Size:     cssunit.Px(c.SizePx),
			Left:     cssunit.Percent(c.LeftPct),
			Duration: cssunit.Seconds(c.Duration),
			Delay:    cssunit.Seconds(c.Delay),
			Color:    c.Color,
		})
	}
	for _, g := range p.Scene.Glyphs {
		view.Glyphs = append(view.Glyphs, glyphView{
			Symbol:   g.Symbol,
			Size:     cssunit.Px(g.SizePx),
			Left:     cssunit.Percent(g.LeftPct),
			Top:      cssunit.Percent(g.TopPct),
			Rotation: cssunit.Deg(g.Rotation),
			Opacity:  fmt.Sprint(g.Opacity),
		})
	}
	for _, b := range p.Scene.Balloons {
		view.Balloons = append(view.Balloons, balloonView{
			Symbol:   b.Symbol,
			Size:     cssunit.Px(b.SizePx),
			Left:     cssunit.Percent(b.LeftPct),
			Top:      cssunit.Percent(b.TopPct),
			Duration: cssunit.Seconds(b.Duration),
			Opacity:  fmt.Sprint(b.Opacity),
		})
	}
	return view, nil
}
