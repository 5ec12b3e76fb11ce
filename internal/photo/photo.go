// Package photo generates the in-memory photo set shown by the gallery.
//
// A set is generated once per run. IDs, paths and captions are derived
// from the index; rotation and vertical jitter are cosmetic and drawn
// uniformly from the supplied random source.
package photo

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
)

const (
	// DefaultCount is the number of photos hung on the strings.
	DefaultCount = 100

	MinRotation = -5
	MaxRotation = 5

	MinJitterPx = 0
	MaxJitterPx = 15
)

// Photo is a single polaroid. It is immutable once generated.
type Photo struct {
	ID              int    `json:"id"`
	Path            string `json:"path"`
	Caption         string `json:"caption"`
	Alt             string `json:"alt"`
	RotationDegrees int    `json:"rotation_degrees"`
	VerticalJitter  int    `json:"vertical_jitter_px"`
}

// Options controls how paths and alt texts are derived from an ID.
type Options struct {
	// Dir is the directory holding <id>.<Ext> image files.
	Dir string
	// Ext is the image file extension without the dot.
	Ext string
	// AltPrefix is prepended to the ID to build the alt text.
	AltPrefix string
}

// DefaultOptions matches the layout of the bundled image directory.
func DefaultOptions() Options {
	return Options{
		Dir:       "images",
		Ext:       "png",
		AltPrefix: "Ghibli moment",
	}
}

// Set is an ordered photo set with IDs 1..len.
type Set []Photo

// Generate produces n photos with IDs 1..n. The random source decides
// rotation and jitter; pass an explicitly seeded source for reproducible
// sets.
func Generate(n int, rng *rand.Rand, opts Options) Set {
	if n < 0 {
		n = 0
	}
	if opts.Ext == "" {
		opts.Ext = "png"
	}

	set := make(Set, n)
	for i := range set {
		id := i + 1
		set[i] = Photo{
			ID:              id,
			Path:            filepath.Join(opts.Dir, fmt.Sprintf("%d.%s", id, opts.Ext)),
			Caption:         Caption(id),
			Alt:             fmt.Sprintf("%s %d", opts.AltPrefix, id),
			RotationDegrees: MinRotation + rng.IntN(MaxRotation-MinRotation+1),
			VerticalJitter:  MinJitterPx + rng.IntN(MaxJitterPx-MinJitterPx+1),
		}
	}
	return set
}

// Caption is the handwritten label under a polaroid.
func Caption(id int) string {
	return fmt.Sprintf("Memory #%d", id)
}

// ByID returns the photo with the given ID.
func (s Set) ByID(id int) (Photo, bool) {
	// IDs are dense and ordered, so the index is id-1.
	if id < 1 || id > len(s) || s[id-1].ID != id {
		return Photo{}, false
	}
	return s[id-1], true
}

// NewRand returns a random source for Generate. A zero seed means
// "different on every run".
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
