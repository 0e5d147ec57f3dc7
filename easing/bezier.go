package easing

import "math"

const (
	newtonIterations         = 4
	newtonMinSlope           = 0.001
	subdivisionPrecision     = 0.0000001
	subdivisionMaxIterations = 10

	splineTableSize = 11
	sampleStepSize  = 1.0 / (splineTableSize - 1.0)
)

// Bezier returns the cubic-bezier curve through (0, 0), (x1, y1), (x2, y2),
// (1, 1), as used by CSS transitions. The curve is solved for t with
// Newton-Raphson iteration, falling back to binary subdivision where the
// slope is too flat.
// Panics if x1 or x2 lies outside [0, 1].
func Bezier(x1, y1, x2, y2 float64) Func {
	if x1 < 0 || x1 > 1 || x2 < 0 || x2 > 1 {
		panic("easing: bezier x values must be in [0, 1]")
	}
	if x1 == y1 && x2 == y2 {
		return Linear
	}

	var samples [splineTableSize]float64
	for i := range samples {
		samples[i] = bezierAt(float64(i)*sampleStepSize, x1, x2)
	}

	tForX := func(x float64) float64 {
		intervalStart := 0.0
		cur := 1
		last := splineTableSize - 1
		for ; cur != last && samples[cur] <= x; cur++ {
			intervalStart += sampleStepSize
		}
		cur--

		dist := (x - samples[cur]) / (samples[cur+1] - samples[cur])
		guess := intervalStart + dist*sampleStepSize

		slope := bezierSlope(guess, x1, x2)
		switch {
		case slope >= newtonMinSlope:
			return newtonRaphson(x, guess, x1, x2)
		case slope == 0:
			return guess
		default:
			return binarySubdivide(x, intervalStart, intervalStart+sampleStepSize, x1, x2)
		}
	}

	return func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		return bezierAt(tForX(t), y1, y2)
	}
}

func bezierA(a1, a2 float64) float64 { return 1 - 3*a2 + 3*a1 }
func bezierB(a1, a2 float64) float64 { return 3*a2 - 6*a1 }
func bezierC(a1 float64) float64     { return 3 * a1 }

// bezierAt evaluates one coordinate of the curve at parameter t.
func bezierAt(t, a1, a2 float64) float64 {
	return ((bezierA(a1, a2)*t+bezierB(a1, a2))*t + bezierC(a1)) * t
}

// bezierSlope is dx/dt (or dy/dt) at parameter t.
func bezierSlope(t, a1, a2 float64) float64 {
	return 3*bezierA(a1, a2)*t*t + 2*bezierB(a1, a2)*t + bezierC(a1)
}

func binarySubdivide(x, a, b, x1, x2 float64) float64 {
	var t, cur float64
	for i := 0; ; i++ {
		t = a + (b-a)/2
		cur = bezierAt(t, x1, x2) - x
		if cur > 0 {
			b = t
		} else {
			a = t
		}
		if math.Abs(cur) <= subdivisionPrecision || i+1 >= subdivisionMaxIterations {
			return t
		}
	}
}

func newtonRaphson(x, guess, x1, x2 float64) float64 {
	for i := 0; i < newtonIterations; i++ {
		slope := bezierSlope(guess, x1, x2)
		if slope == 0 {
			return guess
		}
		guess -= (bezierAt(guess, x1, x2) - x) / slope
	}
	return guess
}
