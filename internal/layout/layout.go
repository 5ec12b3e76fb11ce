// Package layout hangs photos on vertical strings.
//
// The photo list is cut into consecutive groups ("strings"). Within a
// string, the photo at position i sits jitter(i) + i×spacing below the
// top. Everything here is pure: no state, no rendering.
package layout

import (
	"fmt"

	"github.com/Mr-Dark-debug/polaroid/internal/photo"
)

const (
	// DefaultGroupSize is the number of photos per string.
	DefaultGroupSize = 6
	// DefaultSpacingPx is the vertical distance between photos on a string.
	DefaultSpacingPx = 120
	// DefaultBulbs is the number of light bulbs drawn along each string.
	DefaultBulbs = 12

	// Grid breakpoints, in the caller's width unit.
	MediumBreakpoint = 768
	LargeBreakpoint  = 1024
)

// Placement is where a photo hangs.
type Placement struct {
	Photo    photo.Photo
	Group    int // string index
	Position int // index within the string
	OffsetPx int // jitter + Position*spacing
}

// StringIndex returns the string a photo ID belongs to.
func StringIndex(id, groupSize int) int {
	if groupSize < 1 {
		return 0
	}
	return (id - 1) / groupSize
}

// GroupCount is ceil(total/groupSize).
func GroupCount(total, groupSize int) int {
	if total <= 0 || groupSize < 1 {
		return 0
	}
	return (total + groupSize - 1) / groupSize
}

// Group cuts the photos into consecutive strings of groupSize.
// The last string holds the remainder.
func Group(photos []photo.Photo, groupSize int) ([][]photo.Photo, error) {
	if groupSize < 1 {
		return nil, fmt.Errorf("group size must be positive, got %d", groupSize)
	}

	groups := make([][]photo.Photo, 0, GroupCount(len(photos), groupSize))
	for start := 0; start < len(photos); start += groupSize {
		end := min(start+groupSize, len(photos))
		groups = append(groups, photos[start:end])
	}
	return groups, nil
}

// Assign places every photo on its string.
func Assign(photos []photo.Photo, groupSize, spacing int) ([]Placement, error) {
	if spacing < 0 {
		return nil, fmt.Errorf("spacing must not be negative, got %d", spacing)
	}
	groups, err := Group(photos, groupSize)
	if err != nil {
		return nil, fmt.Errorf("assigning placements: %w", err)
	}

	out := make([]Placement, 0, len(photos))
	for g, group := range groups {
		for i, p := range group {
			out = append(out, Placement{
				Photo:    p,
				Group:    g,
				Position: i,
				OffsetPx: p.VerticalJitter + i*spacing,
			})
		}
	}
	return out, nil
}

// Bulbs returns the offsets of count evenly spaced bulbs along a string of
// the given length. The first bulb sits at the top; spacing is length/count.
func Bulbs(count, length int) []int {
	if count <= 0 || length <= 0 {
		return nil
	}
	offsets := make([]int, count)
	for i := range offsets {
		offsets[i] = i * length / count
	}
	return offsets
}

// BulbPercents returns bulb offsets as percentages of the string height,
// rounded to one decimal (12 bulbs -> 0, 8.3, 16.7, ...).
func BulbPercents(count int) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	for i := range out {
		pct := float64(i) * 100 / float64(count)
		out[i] = float64(int(pct*10+0.5)) / 10
	}
	return out
}

// Columns returns the responsive grid column count for a width:
// one column below the medium breakpoint, two below large, three above.
func Columns(width, medium, large int) int {
	switch {
	case width < medium:
		return 1
	case width < large:
		return 2
	default:
		return 3
	}
}
