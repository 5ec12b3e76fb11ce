// Package decor generates the ambient decorations floating around the
// gallery: falling confetti, scattered glyphs and bobbing balloons.
//
// Scenes are random on every run and carry no state beyond their
// generation parameters. Positions are expressed in percent of the
// surface, sizes in px, timings in seconds.
package decor

import (
	"math"
	"math/rand/v2"

	"github.com/Mr-Dark-debug/polaroid/internal/theme"
)

// Counts of each decoration kind.
type Counts struct {
	Confetti int
	Glyphs   int
	Balloons int
}

// DefaultCounts is 100 confetti pieces, 30 glyphs and 15 balloons.
func DefaultCounts() Counts {
	return Counts{Confetti: 100, Glyphs: 30, Balloons: 15}
}

// Confetti is a falling dot.
type Confetti struct {
	SizePx   float64
	LeftPct  float64
	Duration float64
	Delay    float64
	Color    string
}

// Glyph is a static floating symbol.
type Glyph struct {
	Symbol   string
	SizePx   float64
	LeftPct  float64
	TopPct   float64
	Rotation float64
	Opacity  float64
}

// Balloon bounces in place.
type Balloon struct {
	Symbol   string
	SizePx   float64
	LeftPct  float64
	TopPct   float64
	Duration float64
	Opacity  float64
}

// Scene is one generated set of decorations.
type Scene struct {
	Confetti []Confetti
	Glyphs   []Glyph
	Balloons []Balloon
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// Generate builds a scene coloured by th.
func Generate(rng *rand.Rand, th theme.Theme, counts Counts) Scene {
	var s Scene

	palette := th.Palette.Confetti
	s.Confetti = make([]Confetti, counts.Confetti)
	for i := range s.Confetti {
		c := Confetti{
			SizePx:   uniform(rng, 5, 15),
			LeftPct:  uniform(rng, 0, 100),
			Duration: uniform(rng, 2, 5),
			Delay:    uniform(rng, 0, 5),
		}
		if len(palette) > 0 {
			c.Color = palette[rng.IntN(len(palette))]
		}
		s.Confetti[i] = c
	}

	s.Glyphs = make([]Glyph, counts.Glyphs)
	for i := range s.Glyphs {
		g := Glyph{
			SizePx:   uniform(rng, 10, 40),
			LeftPct:  uniform(rng, 0, 100),
			TopPct:   uniform(rng, 0, 100),
			Rotation: uniform(rng, 0, 360),
			Opacity:  0.7,
		}
		if rng.Float64() > 0.5 {
			g.Symbol = th.Glyphs[0]
		} else {
			g.Symbol = th.Glyphs[1]
		}
		s.Glyphs[i] = g
	}

	s.Balloons = make([]Balloon, counts.Balloons)
	for i := range s.Balloons {
		s.Balloons[i] = Balloon{
			Symbol:   th.BalloonGlyph,
			SizePx:   uniform(rng, 20, 60),
			LeftPct:  uniform(rng, 0, 100),
			TopPct:   uniform(rng, 0, 50),
			Duration: uniform(rng, 2, 5),
			Opacity:  0.6,
		}
	}

	return s
}

// Point is an animated position in percent of the surface.
type Point struct {
	LeftPct float64
	TopPct  float64
}

// FallAt returns where a confetti piece is t seconds into the scene. Before
// its delay elapses it has not appeared yet (ok is false). The piece falls
// linearly from -100% to +100% of the surface height, then loops.
func (c Confetti) FallAt(t float64) (Point, bool) {
	if t < c.Delay || c.Duration <= 0 {
		return Point{}, false
	}
	phase := math.Mod(t-c.Delay, c.Duration) / c.Duration
	return Point{LeftPct: c.LeftPct, TopPct: -100 + 200*phase}, true
}

// BounceAt returns the balloon's vertical lift in [0, 1] at t seconds:
// 0 is the resting position, 1 the top of the bounce.
func (b Balloon) BounceAt(t float64) float64 {
	if b.Duration <= 0 {
		return 0
	}
	phase := math.Mod(t, b.Duration) / b.Duration
	return math.Abs(math.Sin(math.Pi * phase))
}
