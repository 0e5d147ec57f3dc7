package animated

import (
	"fmt"
	"math"
	"time"
)

// Defaults for each spring parameter group.
const (
	DefaultStiffness  = 100.0
	DefaultDamping    = 10.0
	DefaultMass       = 1.0
	DefaultTension    = 40.0
	DefaultFriction   = 7.0
	DefaultBounciness = 8.0
	DefaultSpeed      = 12.0

	// DefaultRestThreshold applies to both rest thresholds when they are zero.
	DefaultRestThreshold = 0.001
)

// SpringConfig configures a SpringAnimation. The physics is given by at most
// one of three groups: Stiffness/Damping/Mass, Tension/Friction or
// Bounciness/Speed. Unset fields in the chosen group take their defaults;
// with no group set, Tension/Friction defaults are used.
type SpringConfig struct {
	ToValue float64 `yaml:"toValue"`

	// Velocity is the initial velocity in units per second. Nil carries over
	// the value's tracked velocity.
	Velocity *float64 `yaml:"velocity"`

	// OvershootClamping ends the spring as soon as it crosses ToValue.
	OvershootClamping bool `yaml:"overshootClamping"`

	// Zero selects DefaultRestThreshold.
	RestDisplacementThreshold float64 `yaml:"restDisplacementThreshold"`
	RestSpeedThreshold        float64 `yaml:"restSpeedThreshold"`

	Delay time.Duration `yaml:"delay"`

	Stiffness *float64 `yaml:"stiffness"`
	Damping   *float64 `yaml:"damping"`
	Mass      *float64 `yaml:"mass"`

	Tension  *float64 `yaml:"tension"`
	Friction *float64 `yaml:"friction"`

	Bounciness *float64 `yaml:"bounciness"`
	Speed      *float64 `yaml:"speed"`
}

// Float returns a pointer to v, for the optional SpringConfig fields.
func Float(v float64) *float64 {
	return &v
}

// SpringParams are the resolved physical constants of a spring.
type SpringParams struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// DampingRatio returns ζ = c / (2√(km)). Below 1 the spring oscillates.
func (p SpringParams) DampingRatio() float64 {
	return p.Damping / (2 * math.Sqrt(p.Stiffness*p.Mass))
}

// AngularFrequency returns the undamped angular frequency √(k/m) in radians
// per second.
func (p SpringParams) AngularFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// Params resolves the configured parameter group into stiffness, damping
// and mass. It fails with ErrConflictingSpringParams when fields from more
// than one group are set and with ErrNonPositiveSpring when a resolved
// constant is not strictly positive.
func (c SpringConfig) Params() (SpringParams, error) {
	physical := c.Stiffness != nil || c.Damping != nil || c.Mass != nil
	origami := c.Tension != nil || c.Friction != nil
	bouncy := c.Bounciness != nil || c.Speed != nil

	groups := 0
	for _, set := range []bool{physical, origami, bouncy} {
		if set {
			groups++
		}
	}
	if groups > 1 {
		return SpringParams{}, ErrConflictingSpringParams
	}

	var p SpringParams
	switch {
	case physical:
		p = SpringParams{
			Stiffness: orDefault(c.Stiffness, DefaultStiffness),
			Damping:   orDefault(c.Damping, DefaultDamping),
			Mass:      orDefault(c.Mass, DefaultMass),
		}
	case bouncy:
		p = FromBouncinessAndSpeed(orDefault(c.Bounciness, DefaultBounciness), orDefault(c.Speed, DefaultSpeed))
	default:
		p = FromOrigamiTensionAndFriction(orDefault(c.Tension, DefaultTension), orDefault(c.Friction, DefaultFriction))
	}

	if !(p.Stiffness > 0 && p.Damping > 0 && p.Mass > 0) {
		return SpringParams{}, fmt.Errorf("%w: got stiffness=%g damping=%g mass=%g",
			ErrNonPositiveSpring, p.Stiffness, p.Damping, p.Mass)
	}
	return p, nil
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// --- Origami conversions ---

func stiffnessFromOrigami(tension float64) float64 {
	return (tension-30)*3.62 + 194
}

func dampingFromOrigami(friction float64) float64 {
	return (friction-8)*3 + 25
}

// FromOrigamiTensionAndFriction converts Origami tension and friction into
// spring constants with unit mass.
func FromOrigamiTensionAndFriction(tension, friction float64) SpringParams {
	return SpringParams{
		Stiffness: stiffnessFromOrigami(tension),
		Damping:   dampingFromOrigami(friction),
		Mass:      1,
	}
}

// FromBouncinessAndSpeed converts Origami bounciness and speed into spring
// constants with unit mass.
func FromBouncinessAndSpeed(bounciness, speed float64) SpringParams {
	normalize := func(value, start, end float64) float64 {
		return (value - start) / (end - start)
	}
	project := func(n, start, end float64) float64 {
		return start + n*(end-start)
	}
	quadOut := func(t, start, end float64) float64 {
		t = 2*t - t*t
		return t*end + (1-t)*start
	}

	b := project(normalize(bounciness/1.7, 0, 20), 0, 0.8)
	s := normalize(speed/1.7, 0, 20)
	tension := project(s, 0.5, 200)
	friction := quadOut(b, noBounceFriction(tension), 0.01)

	return SpringParams{
		Stiffness: stiffnessFromOrigami(tension),
		Damping:   dampingFromOrigami(friction),
		Mass:      1,
	}
}

// noBounceFriction is the friction that just avoids bouncing at tension,
// fitted piecewise by cubics.
func noBounceFriction(tension float64) float64 {
	cubic := func(x, a, b, c, d float64) float64 {
		return a*x*x*x + b*x*x + c*x + d
	}
	switch {
	case tension <= 18:
		return cubic(tension, 0.0007, -0.031, 0.64, 1.28)
	case tension <= 44:
		return cubic(tension, 0.000044, -0.006, 0.36, 2)
	}
	return cubic(tension, 0.00000045, -0.000332, 0.1078, 5.84)
}
