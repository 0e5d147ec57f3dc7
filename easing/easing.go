// Package easing implements the curves used to shape the progress of a
// timing animation. Every curve maps a normalized time t in [0, 1] to a
// progress value that starts at 0 and ends at 1; some (Elastic, Back)
// overshoot in between.
//
// Curves are plain functions and compose with [In], [Out] and [InOut]:
//
//	easing.InOut(easing.Ease)    // the default timing curve
//	easing.Out(easing.Poly(4))
//	easing.Bezier(0.25, 0.1, 0.25, 1)
//
// Curves from github.com/tanema/gween/ease can be used via [FromTween], and
// configuration files refer to curves by name through [ByName].
package easing

import (
	"math"

	"github.com/fogleman/ease"
)

// Func maps a normalized time t to normalized progress.
type Func func(t float64) float64

// easeIn is the CSS "ease-in" curve; the default timing curve is InOut(Ease).
var easeIn = Bezier(0.42, 0, 1, 1)

// Step0 jumps to 1 as soon as t is positive.
func Step0(t float64) float64 {
	if t > 0 {
		return 1
	}
	return 0
}

// Step1 stays at 0 until t reaches 1.
func Step1(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 0
}

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// Ease is a gentle acceleration, equivalent to cubic-bezier(0.42, 0, 1, 1).
func Ease(t float64) float64 {
	return easeIn(t)
}

// Quad is t².
func Quad(t float64) float64 {
	return ease.InQuad(t)
}

// Cubic is t³.
func Cubic(t float64) float64 {
	return ease.InCubic(t)
}

// Poly returns a curve raising t to the power n.
func Poly(n float64) Func {
	return func(t float64) float64 {
		return math.Pow(t, n)
	}
}

// Sin is a sinusoidal acceleration.
func Sin(t float64) float64 {
	return ease.InSine(t)
}

// Circle is a circular acceleration.
func Circle(t float64) float64 {
	return ease.InCirc(t)
}

// Exp is an exponential acceleration.
func Exp(t float64) float64 {
	return math.Pow(2, 10*(t-1))
}

// Elastic returns a spring-like curve. A bounciness of 1 overshoots a little
// once, 0 does not overshoot, and N > 1 overshoots about N times.
func Elastic(bounciness float64) Func {
	p := bounciness * math.Pi
	return func(t float64) float64 {
		return 1 - math.Pow(math.Cos(t*math.Pi/2), 3)*math.Cos(t*p)
	}
}

// DefaultBackOvershoot is the overshoot used by Back when s is zero.
const DefaultBackOvershoot = 1.70158

// Back returns a curve that pulls back slightly before moving forward.
// A zero s selects DefaultBackOvershoot.
func Back(s float64) Func {
	if s == 0 {
		s = DefaultBackOvershoot
	}
	return func(t float64) float64 {
		return t * t * ((s+1)*t - s)
	}
}

// Bounce is a bouncing arrival.
func Bounce(t float64) float64 {
	switch {
	case t < 1/2.75:
		return 7.5625 * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	}
	t -= 2.625 / 2.75
	return 7.5625*t*t + 0.984375
}

// In runs a curve forwards. It exists for symmetry with Out and InOut.
func In(f Func) Func {
	return f
}

// Out runs a curve backwards.
func Out(f Func) Func {
	return func(t float64) float64 {
		return 1 - f(1-t)
	}
}

// InOut makes a curve symmetrical: the first half runs f forwards at double
// speed and the second half runs it backwards.
func InOut(f Func) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return f(t*2) / 2
		}
		return 1 - f((1-t)*2)/2
	}
}
