package decor

import (
	"slices"
	"testing"

	"github.com/Mr-Dark-debug/polaroid/internal/photo"
	"github.com/Mr-Dark-debug/polaroid/internal/theme"
)

func TestGenerateCountsAndRanges(t *testing.T) {
	th := theme.Default()
	s := Generate(photo.NewRand(11), th, DefaultCounts())

	if len(s.Confetti) != 100 || len(s.Glyphs) != 30 || len(s.Balloons) != 15 {
		t.Fatalf("unexpected counts: %d confetti, %d glyphs, %d balloons",
			len(s.Confetti), len(s.Glyphs), len(s.Balloons))
	}

	for i, c := range s.Confetti {
		if c.SizePx < 5 || c.SizePx >= 15 {
			t.Errorf("confetti %d size %.2f", i, c.SizePx)
		}
		if c.Duration < 2 || c.Duration >= 5 || c.Delay < 0 || c.Delay >= 5 {
			t.Errorf("confetti %d timing %.2f/%.2f", i, c.Duration, c.Delay)
		}
		if !slices.Contains(th.Palette.Confetti, c.Color) {
			t.Errorf("confetti %d colour %s not in palette", i, c.Color)
		}
	}

	for i, g := range s.Glyphs {
		if g.Symbol != th.Glyphs[0] && g.Symbol != th.Glyphs[1] {
			t.Errorf("glyph %d symbol %q", i, g.Symbol)
		}
		if g.SizePx < 10 || g.SizePx >= 40 || g.Rotation < 0 || g.Rotation >= 360 {
			t.Errorf("glyph %d size/rotation %.2f/%.2f", i, g.SizePx, g.Rotation)
		}
	}

	for i, b := range s.Balloons {
		if b.TopPct < 0 || b.TopPct >= 50 {
			t.Errorf("balloon %d top %.2f", i, b.TopPct)
		}
		if b.Symbol != th.BalloonGlyph {
			t.Errorf("balloon %d symbol %q", i, b.Symbol)
		}
	}
}

func TestGenerateZeroCounts(t *testing.T) {
	s := Generate(photo.NewRand(1), theme.Default(), Counts{})
	if len(s.Confetti)+len(s.Glyphs)+len(s.Balloons) != 0 {
		t.Error("expected an empty scene")
	}
}

func TestFallAt(t *testing.T) {
	c := Confetti{LeftPct: 40, Duration: 4, Delay: 1}

	if _, ok := c.FallAt(0.5); ok {
		t.Error("confetti should not be visible before its delay")
	}

	p, ok := c.FallAt(1)
	if !ok || p.TopPct != -100 || p.LeftPct != 40 {
		t.Errorf("at start: %+v %v", p, ok)
	}

	p, _ = c.FallAt(3)
	if p.TopPct != 0 {
		t.Errorf("halfway: top %.2f, want 0", p.TopPct)
	}

	// Loops after one duration.
	p, _ = c.FallAt(5)
	if p.TopPct != -100 {
		t.Errorf("after loop: top %.2f, want -100", p.TopPct)
	}
}

func TestBounceAt(t *testing.T) {
	b := Balloon{Duration: 2}
	if got := b.BounceAt(0); got != 0 {
		t.Errorf("BounceAt(0) = %.2f", got)
	}
	if got := b.BounceAt(1); got < 0.999 {
		t.Errorf("BounceAt(mid) = %.2f, want 1", got)
	}
	if got := (Balloon{}).BounceAt(1); got != 0 {
		t.Errorf("zero duration bounce = %.2f", got)
	}
}
