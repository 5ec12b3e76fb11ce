// Package imgterm turns image files into terminal art.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block: the foreground paints the top pixel, the background the
// bottom one. Cells are roughly twice as tall as wide, so the pixels come
// out close to square.
package imgterm

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const halfBlock = "▀"

// fadeSteps is how many opacity levels are cached per picture.
const fadeSteps = 5

// Picture is a scaled image ready to be drawn at a fixed cell size.
type Picture struct {
	cols, rows int
	pixels     []colorful.Color // cols × rows*2, row-major
	cache      map[int][]string
}

// Load decodes an image file.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}

// Cover scales img to exactly cols×rows cells, cropping the longer side
// around the centre.
func Cover(img image.Image, cols, rows int, paper color.Color) *Picture {
	if cols <= 0 || rows <= 0 {
		return &Picture{}
	}
	w, h := cols, rows*2
	src := img.Bounds()

	// Largest centred crop with the target aspect ratio.
	cw, ch := src.Dx(), src.Dy()
	if cw*h > ch*w {
		cw = ch * w / h
	} else {
		ch = cw * h / w
	}
	x0 := src.Min.X + (src.Dx()-cw)/2
	y0 := src.Min.Y + (src.Dy()-ch)/2
	crop := image.Rect(x0, y0, x0+cw, y0+ch)

	return scale(img, crop, w, h, paper)
}

// Contain scales img to fit inside maxCols×maxRows cells, keeping its
// aspect ratio.
func Contain(img image.Image, maxCols, maxRows int, paper color.Color) *Picture {
	cols, rows := Fit(img.Bounds().Dx(), img.Bounds().Dy(), maxCols, maxRows)
	if cols == 0 || rows == 0 {
		return &Picture{}
	}
	return scale(img, img.Bounds(), cols, rows*2, paper)
}

// Fit returns the cell size of a srcW×srcH image scaled into the box.
func Fit(srcW, srcH, maxCols, maxRows int) (cols, rows int) {
	if srcW <= 0 || srcH <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	maxH := maxRows * 2
	if srcW*maxH > srcH*maxCols {
		cols = maxCols
		rows = (srcH * maxCols / srcW) / 2
	} else {
		rows = maxRows
		cols = srcW * maxH / srcH
	}
	return max(cols, 1), max(rows, 1)
}

func scale(img image.Image, from image.Rectangle, w, h int, paper color.Color) *Picture {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// Transparent areas show the polaroid paper.
	draw.Draw(dst, dst.Bounds(), image.NewUniform(paper), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, from, draw.Over, nil)

	p := &Picture{cols: w, rows: h / 2, pixels: make([]colorful.Color, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c, _ := colorful.MakeColor(dst.At(x, y))
			p.pixels[y*w+x] = c
		}
	}
	return p
}

// Size returns the picture's size in cells.
func (p *Picture) Size() (cols, rows int) {
	return p.cols, p.rows
}

// Lines renders the picture faded towards bg by opacity in [0, 1].
func (p *Picture) Lines(opacity float64, bg colorful.Color) []string {
	step := int(opacity*float64(fadeSteps-1) + 0.5)
	step = max(0, min(fadeSteps-1, step))
	if lines, ok := p.cache[step]; ok {
		return lines
	}

	alpha := float64(step) / float64(fadeSteps-1)
	lines := make([]string, p.rows)
	var sb strings.Builder
	for r := 0; r < p.rows; r++ {
		sb.Reset()
		for c := 0; c < p.cols; c++ {
			top := bg.BlendRgb(p.pixels[(2*r)*p.cols+c], alpha)
			bottom := bg.BlendRgb(p.pixels[(2*r+1)*p.cols+c], alpha)
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render(halfBlock))
		}
		lines[r] = sb.String()
	}

	if p.cache == nil {
		p.cache = make(map[int][]string, fadeSteps)
	}
	p.cache[step] = lines
	return lines
}

// Placeholder draws the broken-image box shown when a file is missing.
func Placeholder(cols, rows int, fg, bg string) []string {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg))

	label := "✕"
	if cols >= 9 {
		label = "✕ missing"
	}

	lines := make([]string, rows)
	for r := range lines {
		text := ""
		if r == rows/2 {
			text = label
		}
		lines[r] = style.Width(cols).Align(lipgloss.Center).Render(text)
	}
	return lines
}
