package animated

import "github.com/phanxgames/animated/interpolation"

// Value is a scalar node. Its value is offset + model plus the sum of the
// outputs of every running animation.
//
// Create values through a Manager (or NewValue for the default one). A value
// registers with its manager while it has children or running animations.
type Value struct {
	children

	manager *Manager

	model  float64
	offset float64

	animations []Animation

	// Velocity tracking, in units per millisecond.
	tracking  bool
	prevValue float64
	prevTime  float64
	velocity  float64
	hasVel    bool

	registered bool // owned by manager
}

// NewValue creates a Value bound to this manager.
func (m *Manager) NewValue(v float64) *Value {
	val := &Value{manager: m, model: v}
	val.owner = val
	return val
}

// NewValue creates a Value bound to the default manager.
func NewValue(v float64) *Value {
	return Default().NewValue(v)
}

// Kind reports KindValue.
func (v *Value) Kind() NodeKind { return KindValue }

// Value returns the current value as a float64.
func (v *Value) Value() any { return v.Float() }

// AnimatedValue is the same as Value.
func (v *Value) AnimatedValue() any { return v.Float() }

// Float returns offset + model + the sum of every running animation's output.
func (v *Value) Float() float64 {
	sum := v.offset + v.model
	for _, a := range v.animations {
		sum += a.Value()
	}
	return sum
}

// Model returns the base value without offset or animation contributions.
func (v *Value) Model() float64 { return v.model }

// Offset returns the current offset.
func (v *Value) Offset() float64 { return v.offset }

// Manager returns the manager this value is bound to.
func (v *Value) Manager() *Manager { return v.manager }

// Velocity returns the tracked velocity in units per millisecond. ok is false
// until two frames have been stepped with running animations.
func (v *Value) Velocity() (velocity float64, ok bool) {
	return v.velocity, v.hasVel
}

// Animating reports whether any animation is running on the value.
func (v *Value) Animating() bool { return len(v.animations) > 0 }

// SetValue stops every running animation, sets the model and flushes.
func (v *Value) SetValue(value float64) {
	v.StopAnimations(nil)
	v.model = value
	v.Flush()
}

// SetOffset sets an offset applied on top of the model and any animations.
// It does not flush.
func (v *Value) SetOffset(offset float64) {
	v.offset = offset
}

// FlattenOffset merges the offset into the model. The value is unchanged.
func (v *Value) FlattenOffset() {
	v.model += v.offset
	v.offset = 0
}

// ExtractOffset moves the model into the offset. The value is unchanged.
func (v *Value) ExtractOffset() {
	v.offset += v.model
	v.model = 0
}

// Animate starts a on this value and requests a frame. onEnd may be nil.
// Depending on the animation's Policy the animations already running either
// keep running alongside it or are stopped with Finished false.
func (v *Value) Animate(a Animation, onEnd EndCallback) {
	prev := v.animations
	a.Start(v, onEnd)
	switch a.Policy() {
	case Supersede:
		v.animations = []Animation{a}
		for _, p := range prev {
			p.Stop(false)
		}
	default:
		v.animations = append(v.animations, a)
	}
	v.manager.track(v)
	v.manager.RequestTick()
}

// StopAnimations stops every running animation with Finished false and calls
// cb, if non-nil, with the resulting value. The value keeps the position it
// had when it was stopped.
func (v *Value) StopAnimations(cb func(value float64)) {
	if len(v.animations) > 0 {
		current := v.Float()
		anims := v.animations
		v.animations = nil
		v.model = current - v.offset
		for _, a := range anims {
			a.Stop(false)
		}
	}
	if cb != nil {
		cb(v.Float())
	}
}

// Flush notifies every Props downstream of this value.
func (v *Value) Flush() {
	flush(v)
}

// Interpolate returns a derived node mapping this value through cfg.
func (v *Value) Interpolate(cfg interpolation.Config) (*Interpolation, error) {
	return Interpolate(v, cfg)
}

// step advances every running animation to timestamp and drops those that
// ended. It reports whether any animation was running.
func (v *Value) step(timestamp float64) bool {
	if len(v.animations) == 0 {
		v.resetTracking()
		return false
	}

	// End callbacks may replace v.animations; range keeps the old slice.
	for _, a := range v.animations {
		a.Step(timestamp)
	}
	kept := v.animations[:0]
	for _, a := range v.animations {
		if !a.Ended() {
			kept = append(kept, a)
		}
	}
	clear(v.animations[len(kept):])
	v.animations = kept

	next := v.Float()
	if v.tracking && timestamp != v.prevTime {
		v.velocity = (next - v.prevValue) / (timestamp - v.prevTime)
		v.hasVel = true
	}
	v.tracking = true
	v.prevValue, v.prevTime = next, timestamp
	return true
}

func (v *Value) resetTracking() {
	v.tracking, v.hasVel = false, false
	v.velocity = 0
}

func (v *Value) attach() {
	v.manager.track(v)
	v.Flush()
}

func (v *Value) detach() {
	v.StopAnimations(nil)
	v.manager.untrack(v)
}
