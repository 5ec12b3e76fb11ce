// Package lightbox tracks which photo is open in the full-screen overlay.
//
// The controller owns the only interactive state of the gallery: the
// current selection and the scroll lock held while a photo is open.
package lightbox

import "github.com/Mr-Dark-debug/polaroid/internal/photo"

// ScrollLock suppresses page scrolling while held.
type ScrollLock interface {
	Lock()
	Unlock()
}

// Controller is the selection state machine: none, or one open photo.
// The lock is acquired when the first photo opens and released on close.
type Controller struct {
	photos   photo.Set
	lock     ScrollLock
	selected *photo.Photo
}

// New creates a controller over the given photo set. lock may be nil.
func New(photos photo.Set, lock ScrollLock) *Controller {
	return &Controller{photos: photos, lock: lock}
}

// Open selects p. Opening while another photo is open replaces it.
func (c *Controller) Open(p photo.Photo) {
	if c.selected == nil && c.lock != nil {
		c.lock.Lock()
	}
	c.selected = &p
}

// Close clears the selection. Closing with nothing open is a no-op.
func (c *Controller) Close() {
	if c.selected == nil {
		return
	}
	c.selected = nil
	if c.lock != nil {
		c.lock.Unlock()
	}
}

// Selected returns the open photo, if any.
func (c *Controller) Selected() (photo.Photo, bool) {
	if c.selected == nil {
		return photo.Photo{}, false
	}
	return *c.selected, true
}

// IsOpen reports whether a photo is open.
func (c *Controller) IsOpen() bool {
	return c.selected != nil
}

// Next replaces the selection with the following photo, wrapping around.
func (c *Controller) Next() {
	c.step(1)
}

// Prev replaces the selection with the preceding photo, wrapping around.
func (c *Controller) Prev() {
	c.step(-1)
}

func (c *Controller) step(delta int) {
	if c.selected == nil || len(c.photos) == 0 {
		return
	}
	n := len(c.photos)
	idx := ((c.selected.ID-1+delta)%n + n) % n
	if p, ok := c.photos.ByID(idx + 1); ok {
		c.Open(p)
	}
}

// FlagLock is a ScrollLock backed by a boolean. The zero value is unlocked.
type FlagLock struct {
	locked bool
}

func (l *FlagLock) Lock()   { l.locked = true }
func (l *FlagLock) Unlock() { l.locked = false }

// Locked reports whether scrolling is currently suppressed.
func (l *FlagLock) Locked() bool { return l.locked }
