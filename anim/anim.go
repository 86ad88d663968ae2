// Package anim provides frame-driven tweens for widget motion.
//
// Gio has no animation clock of its own: a widget samples its animation with
// the frame time (gtx.Now) and requests another frame while it is running.
package anim

import (
	"math"
	"time"
)

// Curve maps linear progress in [0,1] to eased progress.
type Curve func(t float32) float32

// Linear applies no easing.
func Linear(t float32) float32 {
	return t
}

// EaseOut starts quickly and decelerates, as a released surface does.
var EaseOut = CubicBezier(0, 0, 0.2, 1)

// EaseInOut accelerates then decelerates.
var EaseInOut = CubicBezier(0.4, 0, 0.2, 1)

// CubicBezier returns an easing curve matching CSS cubic-bezier() with control
// points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float32) Curve {
	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// Newton-Raphson for the parameter whose x is t, falling back to
		// bisection if the derivative flattens out.
		u := t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if abs(x) < 1e-6 {
				return bezier(y1, y2, u)
			}
			dx := bezierSlope(x1, x2, u)
			if abs(dx) < 1e-6 {
				break
			}
			u -= x / dx
		}
		lo, hi := float32(0), float32(1)
		u = t
		for i := 0; i < 20; i++ {
			x := bezier(x1, x2, u)
			if abs(x-t) < 1e-6 {
				break
			}
			if x > t {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(p1, p2, u float32) float32 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float32) float32 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}

func abs(f float32) float32 {
	return float32(math.Abs(float64(f)))
}

// Snap tweens a single value toward a target. Only one tween is in flight at
// a time: Begin replaces whatever was running.
//
// The zero value is idle. A Snap with no Duration jumps straight to its
// target on the next sample.
type Snap struct {
	// Duration of each tween.
	Duration time.Duration
	// Curve eases progress. Defaults to EaseOut.
	Curve Curve

	from, to float32
	current  float32
	// start is stamped by the first sample after Begin, so tweens can be
	// requested outside of layout.
	start  time.Time
	active bool
}

// Begin tweening from the given value toward target, replacing any tween in
// flight.
func (s *Snap) Begin(from, target float32) {
	s.from, s.to, s.current = from, target, from
	s.start = time.Time{}
	s.active = true
}

// Stop the tween where it is.
func (s *Snap) Stop() {
	s.active = false
}

// Jump stops any tween and rests at v.
func (s *Snap) Jump(v float32) {
	s.from, s.to, s.current = v, v, v
	s.active = false
}

// Active reports whether a tween is in flight.
func (s *Snap) Active() bool {
	return s.active
}

// Current returns the most recently sampled value.
func (s *Snap) Current() float32 {
	return s.current
}

// Target returns the value the tween is heading toward.
func (s *Snap) Target() float32 {
	return s.to
}

// Sample the tween at now. The returned flag is true while the tween is still
// running after this sample.
func (s *Snap) Sample(now time.Time) (float32, bool) {
	if !s.active {
		return s.current, false
	}
	if s.start.IsZero() {
		s.start = now
	}
	elapsed := now.Sub(s.start)
	if s.Duration <= 0 || elapsed >= s.Duration {
		s.current = s.to
		s.active = false
		return s.current, false
	}
	curve := s.Curve
	if curve == nil {
		curve = EaseOut
	}
	progress := curve(float32(elapsed) / float32(s.Duration))
	s.current = s.from + (s.to-s.from)*progress
	return s.current, true
}
