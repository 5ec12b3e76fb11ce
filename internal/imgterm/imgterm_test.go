package imgterm

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFit(t *testing.T) {
	tests := []struct {
		name               string
		w, h, maxC, maxR   int
		wantCols, wantRows int
	}{
		{"square into wide box", 100, 100, 80, 20, 40, 20},
		{"wide into square box", 200, 100, 20, 20, 20, 5},
		{"degenerate", 0, 10, 10, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := Fit(tt.w, tt.h, tt.maxC, tt.maxR)
			if c != tt.wantCols || r != tt.wantRows {
				t.Errorf("Fit = %dx%d, want %dx%d", c, r, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestCoverSize(t *testing.T) {
	pic := Cover(solid(64, 48, color.White), 12, 6, color.White)
	cols, rows := pic.Size()
	if cols != 12 || rows != 6 {
		t.Fatalf("Cover size %dx%d, want 12x6", cols, rows)
	}

	lines := pic.Lines(1, colorful.Color{R: 1, G: 1, B: 1})
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 12 {
			t.Errorf("line %d width %d, want 12", i, w)
		}
	}
}

func TestContainKeepsAspect(t *testing.T) {
	pic := Contain(solid(100, 50, color.Black), 40, 40, color.White)
	cols, rows := pic.Size()
	if cols != 40 || rows != 10 {
		t.Errorf("Contain size %dx%d, want 40x10", cols, rows)
	}
}

func TestLinesCachedPerFadeStep(t *testing.T) {
	pic := Cover(solid(8, 8, color.Black), 4, 2, color.White)
	bg := colorful.Color{R: 1, G: 1, B: 1}

	a := pic.Lines(0.5, bg)
	b := pic.Lines(0.52, bg)
	if &a[0] != &b[0] {
		t.Error("expected nearby opacities to share a cached rendering")
	}
	if len(pic.cache) != 1 {
		t.Errorf("expected 1 cache entry, got %d", len(pic.cache))
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solid(4, 4, color.RGBA{R: 255, A: 255})); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}

	if _, err := Load(filepath.Join(dir, "2.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPlaceholder(t *testing.T) {
	lines := Placeholder(12, 5, "#000000", "#ffffff")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "missing") {
		t.Errorf("middle line should carry the label: %q", lines[2])
	}
	if Placeholder(0, 3, "#000000", "#ffffff") != nil {
		t.Error("expected nil for zero width")
	}
}
