package animated

import (
	"time"

	"github.com/phanxgames/animated/easing"
)

// DefaultTimingDuration is used when TimingConfig.Duration is zero.
const DefaultTimingDuration = 500 * time.Millisecond

var defaultTimingEasing = easing.InOut(easing.Ease)

// TimingConfig configures a TimingAnimation.
type TimingConfig struct {
	ToValue float64

	// Easing shapes the progress. Nil selects easing.InOut(easing.Ease).
	Easing easing.Func

	// Duration of the transition. Zero selects DefaultTimingDuration; a
	// negative duration jumps to ToValue on the first frame after Delay.
	Duration time.Duration

	// Delay before the transition begins.
	Delay time.Duration
}

// TimingAnimation moves a value to a target along an easing curve over a
// fixed duration. Timing animations coexist: starting one on a value that is
// already animating blends the two.
type TimingAnimation struct {
	animationState

	target   float64
	duration float64 // ms
	delay    float64 // ms
	easing   easing.Func

	// Relative to target: the output runs from fromValue to toValue (0).
	fromValue float64
	toValue   float64

	startTime   float64
	currentTime float64
}

// NewTimingAnimation creates a timing animation from cfg.
func NewTimingAnimation(cfg TimingConfig) *TimingAnimation {
	a := &TimingAnimation{
		target: cfg.ToValue,
		easing: cfg.Easing,
		delay:  millis(cfg.Delay),
	}
	if a.easing == nil {
		a.easing = defaultTimingEasing
	}
	switch {
	case cfg.Duration == 0:
		a.duration = millis(DefaultTimingDuration)
	case cfg.Duration > 0:
		a.duration = millis(cfg.Duration)
	}
	return a
}

// Policy reports Coexist.
func (a *TimingAnimation) Policy() Policy { return Coexist }

// Start moves the value's model to the target and begins easing the
// difference away.
func (a *TimingAnimation) Start(v *Value, onEnd EndCallback) {
	a.begin(onEnd)

	from := v.model
	v.model = a.target
	a.fromValue = from - a.target
	a.toValue = 0

	a.currentTime = v.manager.now()
	a.startTime = a.currentTime + a.delay
}

// Step records the frame time and ends the animation once the duration has
// elapsed.
func (a *TimingAnimation) Step(timestamp float64) {
	if !a.active {
		logger().Warn("animated: attempted to step an animation which hasn't started")
		return
	}
	a.currentTime = timestamp
	if !a.ended && timestamp >= a.startTime+a.duration {
		a.Stop(true)
	}
}

// Value returns the eased contribution at the last stepped time.
// Panics with ErrUninitialized before Start.
func (a *TimingAnimation) Value() float64 {
	a.mustBeActive()
	elapsed := a.currentTime - a.startTime
	if elapsed < 0 || (elapsed == 0 && a.duration > 0) {
		return a.fromValue
	}
	frac := 1.0
	if a.duration > 0 {
		frac = min(elapsed/a.duration, 1)
	}
	return a.fromValue + a.easing(frac)*(a.toValue-a.fromValue)
}
