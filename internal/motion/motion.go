// Package motion computes the gallery's animations: the entrance fade and
// slide of each polaroid, the hover spring and the banner pulse.
//
// Nothing here draws. Callers advance time and read values.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FPS is the frame rate animations are stepped at.
const FPS = 60

// Frame is the duration of one animation step.
const Frame = time.Second / FPS

// Entrance is a fade-in plus slide-up starting after Delay seconds.
type Entrance struct {
	Delay    float64
	Duration float64
	// Distance is the slide length; the card starts Distance below rest.
	Distance float64
}

// CardEntrance returns the entrance of the card at a string position:
// 0.5s long, staggered by 0.1s per position, sliding 20px.
func CardEntrance(position int) Entrance {
	return Entrance{
		Delay:    float64(position) * 0.1,
		Duration: 0.5,
		Distance: 20,
	}
}

// At returns opacity in [0, 1] and the remaining slide offset at t seconds.
func (e Entrance) At(t float64) (opacity, offset float64) {
	p := e.progress(t)
	eased := easeOut(p)
	return eased, e.Distance * (1 - eased)
}

// Done reports whether the entrance has finished at t.
func (e Entrance) Done(t float64) bool {
	return e.progress(t) >= 1
}

func (e Entrance) progress(t float64) float64 {
	if e.Duration <= 0 {
		return 1
	}
	return clamp01((t - e.Delay) / e.Duration)
}

func easeOut(p float64) float64 {
	return 1 - (1-p)*(1-p)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Hover scales and straightens a card while it is hovered.
// Zero value is not usable; use NewHover.
type Hover struct {
	spring harmonica.Spring

	scale, scaleVel float64
	tilt, tiltVel   float64
}

// HoverScale is the scale a hovered card springs to.
const HoverScale = 1.05

// NewHover returns a resting hover animation for a card with the given
// rotation.
func NewHover(rotation float64) Hover {
	return Hover{
		spring: harmonica.NewSpring(harmonica.FPS(FPS), 8.0, 0.6),
		scale:  1,
		tilt:   rotation,
	}
}

// Step advances one frame. A hovered card heads to HoverScale and zero
// rotation; otherwise back to 1 and its own rotation.
func (h *Hover) Step(hovered bool, rotation float64) {
	scaleTarget, tiltTarget := 1.0, rotation
	if hovered {
		scaleTarget, tiltTarget = HoverScale, 0
	}
	h.scale, h.scaleVel = h.spring.Update(h.scale, h.scaleVel, scaleTarget)
	h.tilt, h.tiltVel = h.spring.Update(h.tilt, h.tiltVel, tiltTarget)
}

// Scale is the current scale factor.
func (h Hover) Scale() float64 { return h.scale }

// Tilt is the current rotation in degrees.
func (h Hover) Tilt() float64 { return h.tilt }

// Lifted reports whether the card is past the midpoint of its hover scale.
func (h Hover) Lifted() bool {
	return h.scale > 1+(HoverScale-1)/2
}

// Settled reports whether the spring has come to rest at the given target.
func (h Hover) Settled(hovered bool, rotation float64) bool {
	scaleTarget, tiltTarget := 1.0, rotation
	if hovered {
		scaleTarget, tiltTarget = HoverScale, 0
	}
	const eps = 1e-3
	return math.Abs(h.scale-scaleTarget) < eps && math.Abs(h.scaleVel) < eps &&
		math.Abs(h.tilt-tiltTarget) < eps*100 && math.Abs(h.tiltVel) < eps*100
}

// Pulse is a scale that goes 1 → 1+amp → 1 over period seconds and
// repeats.
func Pulse(t, period, amp float64) float64 {
	if period <= 0 {
		return 1
	}
	return 1 + amp*math.Abs(math.Sin(math.Pi*t/period))
}
