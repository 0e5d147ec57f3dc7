package animated

import "math"

// SpringAnimation moves a value with a damped harmonic oscillator, solved in
// closed form each frame. Springs supersede: starting one stops whatever was
// running on the value and carries over its velocity.
type SpringAnimation struct {
	animationState

	params            SpringParams
	target            float64
	overshootClamping bool
	restDisplacement  float64
	restSpeed         float64
	delay             float64 // ms

	hasVelocity     bool
	initialVelocity float64 // units per second

	// Positions are relative to target; the oscillator settles at toValue (0).
	fromValue     float64
	toValue       float64
	startPosition float64
	lastPosition  float64
	lastVelocity  float64
	currentValue  float64

	lastTime  float64 // ms
	frameTime float64 // seconds since the spring began moving
}

// NewSpringAnimation validates cfg and creates a spring animation.
func NewSpringAnimation(cfg SpringConfig) (*SpringAnimation, error) {
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}
	a := &SpringAnimation{
		params:            params,
		target:            cfg.ToValue,
		overshootClamping: cfg.OvershootClamping,
		restDisplacement:  cfg.RestDisplacementThreshold,
		restSpeed:         cfg.RestSpeedThreshold,
		delay:             millis(cfg.Delay),
	}
	if a.restDisplacement == 0 {
		a.restDisplacement = DefaultRestThreshold
	}
	if a.restSpeed == 0 {
		a.restSpeed = DefaultRestThreshold
	}
	if cfg.Velocity != nil {
		a.hasVelocity = true
		a.initialVelocity = *cfg.Velocity
		a.lastVelocity = *cfg.Velocity
	}
	return a, nil
}

// Params returns the resolved spring constants.
func (a *SpringAnimation) Params() SpringParams { return a.params }

// Policy reports Supersede.
func (a *SpringAnimation) Policy() Policy { return Supersede }

// Start rebases the value onto the target. Without an explicit velocity the
// spring starts with the value's tracked velocity.
func (a *SpringAnimation) Start(v *Value, onEnd EndCallback) {
	a.begin(onEnd)

	current := v.Float() - v.offset
	v.model = a.target
	a.fromValue = current - a.target
	a.toValue = 0

	if !a.hasVelocity {
		vel := 0.0
		if v.hasVel {
			vel = v.velocity * 1000
		}
		a.initialVelocity = vel
		a.lastVelocity = vel
	}

	a.startPosition = a.fromValue
	a.lastPosition = a.fromValue
	a.currentValue = a.fromValue

	a.lastTime = v.manager.now() + a.delay
	a.frameTime = 0
}

// InitialVelocity returns the starting velocity in units per second. Only
// meaningful after Start.
func (a *SpringAnimation) InitialVelocity() float64 { return a.initialVelocity }

// Step advances the oscillator to timestamp and stops the animation once it
// is at rest.
func (a *SpringAnimation) Step(timestamp float64) {
	if !a.active {
		logger().Warn("animated: attempted to step an animation which hasn't started")
		return
	}
	position, finished := a.nextFrame(timestamp)
	a.currentValue = position
	if finished {
		a.Stop(true)
	}
}

// Value returns the spring's contribution at the last stepped time.
// Panics with ErrUninitialized before Start.
func (a *SpringAnimation) Value() float64 {
	a.mustBeActive()
	return a.currentValue
}

// Velocity returns the velocity computed on the last frame in units per
// second.
func (a *SpringAnimation) Velocity() float64 { return a.lastVelocity }

func (a *SpringAnimation) nextFrame(now float64) (float64, bool) {
	if now <= a.lastTime {
		return a.startPosition, false
	}

	a.frameTime += (now - a.lastTime) / 1000

	c, m, k := a.params.Damping, a.params.Mass, a.params.Stiffness
	v0 := -a.initialVelocity

	zeta := c / (2 * math.Sqrt(k*m))
	omega0 := math.Sqrt(k / m)
	omega1 := omega0 * math.Sqrt(1-zeta*zeta)
	x0 := a.toValue - a.startPosition

	t := a.frameTime
	var position, velocity float64
	if zeta < 1 {
		// Underdamped.
		envelope := math.Exp(-zeta * omega0 * t)
		sin, cos := math.Sin(omega1*t), math.Cos(omega1*t)
		amp := (v0 + zeta*omega0*x0) / omega1
		position = a.toValue - envelope*(amp*sin+x0*cos)
		velocity = zeta*omega0*envelope*(sin*amp+x0*cos) -
			envelope*(cos*(v0+zeta*omega0*x0)-omega1*x0*sin)
	} else {
		// Critically damped and overdamped.
		envelope := math.Exp(-omega0 * t)
		position = a.toValue - envelope*(x0+(v0+omega0*x0)*t)
		velocity = envelope * (v0*(t*omega0-1) + t*x0*(omega0*omega0))
	}

	a.lastTime = now
	a.lastPosition = position
	a.lastVelocity = velocity

	overshooting := false
	if a.overshootClamping && k != 0 {
		if a.startPosition < a.toValue {
			overshooting = position > a.toValue
		} else {
			overshooting = position < a.toValue
		}
	}
	resting := math.Abs(velocity) <= a.restSpeed
	if k != 0 {
		resting = resting && math.Abs(a.toValue-position) <= a.restDisplacement
	}

	if overshooting || resting {
		if k != 0 {
			a.lastPosition = a.toValue
			a.lastVelocity = 0
			position = a.toValue
		}
		return position, true
	}
	return position, false
}
