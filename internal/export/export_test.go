package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Mr-Dark-debug/polaroid/internal/decor"
	"github.com/Mr-Dark-debug/polaroid/internal/photo"
	"github.com/Mr-Dark-debug/polaroid/internal/theme"
)

func testPage(t *testing.T) Page {
	t.Helper()
	th := theme.Default()
	rng := photo.NewRand(42)
	return Page{
		Theme:  th,
		Photos: photo.Generate(photo.DefaultCount, rng, photo.Options{Dir: "images", Ext: "png", AltPrefix: th.AltPrefix}),
		Scene:  decor.Generate(rng, th, decor.DefaultCounts()),
	}
}

func render(t *testing.T, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Render(&buf, p); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestRender_Structure(t *testing.T) {
	p := testPage(t)
	out := render(t, p)

	tests := []struct {
		name   string
		needle string
		want   int
	}{
		{"strings", `class="string"`, 17},
		{"polaroids", `<figure class="polaroid"`, 100},
		{"bulbs", `class="bulb"`, 17 * 12},
		{"confetti", `class="confetti"`, 100},
		{"glyphs", `class="glyph"`, 30},
		{"balloons", `class="balloon"`, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strings.Count(out, tt.needle); got != tt.want {
				t.Errorf("count(%s) = %d, want %d", tt.needle, got, tt.want)
			}
		})
	}

	if strings.Contains(out, "ZgotmplZ") {
		t.Error("output contains a value rejected by the template escaper")
	}
}

func TestRender_Content(t *testing.T) {
	p := testPage(t)
	out := render(t, p)

	for _, want := range []string{
		p.Theme.Title,
		p.Theme.Footer,
		`src="images/1.png"`,
		`alt="` + p.Theme.AltPrefix + ` 1"`,
		"Memory #100",
		"top: 0%",
		"top: 8.3%",
		"document.body.style.overflow = 'hidden'",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRender_PhotoStyles(t *testing.T) {
	p := testPage(t)
	out := render(t, p)

	// Third photo on the first string: position 2, delay 0.2s.
	ph := p.Photos[2]
	view, err := buildView(p)
	if err != nil {
		t.Fatalf("buildView() error = %v", err)
	}
	card := view.Strings[0].Cards[2]
	if card.ID != ph.ID {
		t.Fatalf("card ID = %d, want %d", card.ID, ph.ID)
	}
	if card.Delay != "0.2s" {
		t.Errorf("Delay = %q, want 0.2s", card.Delay)
	}
	style := "transform: rotate(" + card.Rotation + "); margin-top: " + card.MarginTop + "; animation-delay: 0.2s"
	if !strings.Contains(out, style) {
		t.Errorf("output missing style %q", style)
	}
}

func TestRender_InvalidGroupSize(t *testing.T) {
	p := testPage(t)
	p.GroupSize = -1
	if err := Render(&bytes.Buffer{}, p); err == nil {
		t.Error("Render() with a negative group size should fail")
	}
}

func TestRender_BannerPulse(t *testing.T) {
	out := render(t, testPage(t))

	for _, want := range []string{
		"animation: pulse 2s ease-in-out infinite;",
		"@keyframes pulse { 0%, 100% { transform: scale(1); } 50% { transform: scale(1.05); } }",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "pulse 2s ease-in-out infinite alternate") {
		t.Error("alternating a 2s pulse doubles the cycle to 4s")
	}
}
