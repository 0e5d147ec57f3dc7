package animated

import (
	"time"

	"github.com/phanxgames/animated/easing"
)

// CompositeAnimation is anything that can be started with an end callback:
// a single animation bound to a value, or a combination of others.
type CompositeAnimation interface {
	Start(onEnd EndCallback)
}

// CompositeFunc adapts a function to CompositeAnimation.
type CompositeFunc func(onEnd EndCallback)

// Start calls f(onEnd).
func (f CompositeFunc) Start(onEnd EndCallback) { f(onEnd) }

var finishedNow = CompositeFunc(func(onEnd EndCallback) {
	onEnd.call(EndResult{Finished: true})
})

// Timing returns a composite running a timing animation on v. Every Start
// creates a fresh animation.
func Timing(v *Value, cfg TimingConfig) CompositeAnimation {
	return CompositeFunc(func(onEnd EndCallback) {
		v.Animate(NewTimingAnimation(cfg), onEnd)
	})
}

// Spring returns a composite running a spring animation on v. The spring
// parameters are validated here, before anything is started.
func Spring(v *Value, cfg SpringConfig) (CompositeAnimation, error) {
	if _, err := cfg.Params(); err != nil {
		return nil, err
	}
	return CompositeFunc(func(onEnd EndCallback) {
		a, err := NewSpringAnimation(cfg)
		if err != nil {
			// Params validated above.
			panic(err)
		}
		v.Animate(a, onEnd)
	}), nil
}

// TimingXY animates both axes of v towards to in parallel.
func TimingXY(v *ValueXY, to XY, cfg TimingConfig) CompositeAnimation {
	cx, cy := cfg, cfg
	cx.ToValue, cy.ToValue = to.X, to.Y
	return Parallel(Timing(v.X, cx), Timing(v.Y, cy))
}

// SpringXY animates both axes of v towards to in parallel. A non-nil
// velocity sets each axis' initial velocity in units per second.
func SpringXY(v *ValueXY, to XY, velocity *XY, cfg SpringConfig) (CompositeAnimation, error) {
	cx, cy := cfg, cfg
	cx.ToValue, cy.ToValue = to.X, to.Y
	if velocity != nil {
		cx.Velocity, cy.Velocity = Float(velocity.X), Float(velocity.Y)
	}
	ax, err := Spring(v.X, cx)
	if err != nil {
		return nil, err
	}
	ay, err := Spring(v.Y, cy)
	if err != nil {
		return nil, err
	}
	return Parallel(ax, ay), nil
}

// start treats a nil composite as one that finishes immediately.
func start(a CompositeAnimation, onEnd EndCallback) {
	if a == nil {
		onEnd.call(EndResult{Finished: true})
		return
	}
	a.Start(onEnd)
}

// Sequence starts the animations one after another. If one is interrupted
// the rest are skipped and onEnd receives Finished false. Nil entries count
// as finished.
func Sequence(anims ...CompositeAnimation) CompositeAnimation {
	return CompositeFunc(func(onEnd EndCallback) {
		if len(anims) == 0 {
			onEnd.call(EndResult{Finished: true})
			return
		}
		current := 0
		var next EndCallback
		next = func(r EndResult) {
			if !r.Finished {
				onEnd.call(r)
				return
			}
			current++
			if current == len(anims) {
				onEnd.call(r)
				return
			}
			start(anims[current], next)
		}
		start(anims[0], next)
	})
}

// Parallel starts the animations together and ends when all of them have
// ended. onEnd receives Finished true only if every animation finished. Nil
// entries count as finished.
func Parallel(anims ...CompositeAnimation) CompositeAnimation {
	return CompositeFunc(func(onEnd EndCallback) {
		if len(anims) == 0 {
			onEnd.call(EndResult{Finished: true})
			return
		}
		remaining := len(anims)
		finished := true
		done := func(r EndResult) {
			remaining--
			finished = finished && r.Finished
			if remaining == 0 {
				onEnd.call(EndResult{Finished: finished})
			}
		}
		for _, a := range anims {
			start(a, done)
		}
	})
}

// Delay returns a composite that finishes after d. It runs as a timing
// animation on a hidden value of this manager. A non-positive d finishes
// immediately.
func (m *Manager) Delay(d time.Duration) CompositeAnimation {
	if d <= 0 {
		return finishedNow
	}
	return CompositeFunc(func(onEnd EndCallback) {
		m.NewValue(0).Animate(NewTimingAnimation(TimingConfig{
			Duration: d,
			Easing:   easing.Linear,
		}), onEnd)
	})
}

// Delay is Default().Delay(d).
func Delay(d time.Duration) CompositeAnimation {
	return Default().Delay(d)
}

// Stagger starts the animations in parallel, the i-th one delayed by
// i*interval.
func (m *Manager) Stagger(interval time.Duration, anims ...CompositeAnimation) CompositeAnimation {
	seqs := make([]CompositeAnimation, len(anims))
	for i, a := range anims {
		seqs[i] = Sequence(m.Delay(interval*time.Duration(i)), a)
	}
	return Parallel(seqs...)
}

// Stagger is Default().Stagger(interval, anims...).
func Stagger(interval time.Duration, anims ...CompositeAnimation) CompositeAnimation {
	return Default().Stagger(interval, anims...)
}
