package tui

import (
	"image/color"

	"github.com/Mr-Dark-debug/polaroid/internal/imgterm"
	"github.com/Mr-Dark-debug/polaroid/internal/photo"

	tea "github.com/charmbracelet/bubbletea"
)

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

// thumbLoadedMsg carries one decoded thumbnail. Thumbnails load one after
// another so the strings fill in progressively.
type thumbLoadedMsg struct {
	index int
	id    int
	pic   *imgterm.Picture
	err   error
}

// fullLoadedMsg carries the lightbox rendition of a photo.
type fullLoadedMsg struct {
	id         int
	cols, rows int
	pic        *imgterm.Picture
	err        error
}

// ────────────────────────────────────────────────────────────
// Commands
// ────────────────────────────────────────────────────────────

func loadThumb(photos photo.Set, index int, paper color.Color) tea.Cmd {
	if index < 0 || index >= len(photos) {
		return nil
	}
	p := photos[index]
	return func() tea.Msg {
		img, err := imgterm.Load(p.Path)
		if err != nil {
			return thumbLoadedMsg{index: index, id: p.ID, err: err}
		}
		return thumbLoadedMsg{index: index, id: p.ID, pic: imgterm.Cover(img, picCols, picRows, paper)}
	}
}

// loadFull decodes a photo for the lightbox, fitted into cols×rows cells.
func loadFull(p photo.Photo, cols, rows int, paper color.Color) tea.Cmd {
	return func() tea.Msg {
		img, err := imgterm.Load(p.Path)
		if err != nil {
			return fullLoadedMsg{id: p.ID, cols: cols, rows: rows, err: err}
		}
		return fullLoadedMsg{id: p.ID, cols: cols, rows: rows, pic: imgterm.Contain(img, cols, rows, paper)}
	}
}
