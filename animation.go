package animated

import "fmt"

// EndResult is passed to an EndCallback when an animation stops.
// Finished is false when the animation was interrupted.
type EndResult struct {
	Finished bool
}

// EndCallback is called exactly once when an animation stops.
type EndCallback func(EndResult)

func (cb EndCallback) call(r EndResult) {
	if cb != nil {
		cb(r)
	}
}

// Policy decides what happens to the animations already running on a value
// when a new one starts.
type Policy uint8

const (
	// Coexist keeps the running animations; the outputs add up.
	Coexist Policy = iota
	// Supersede stops the running animations with Finished false.
	Supersede
)

func (p Policy) String() string {
	switch p {
	case Coexist:
		return "coexist"
	case Supersede:
		return "supersede"
	}
	return fmt.Sprintf("Policy(%d)", p)
}

// Animation drives one Value. An animation is bound to the value it is
// started on and cannot be reused.
//
// Start rebases the value: it may move the value's model and must then
// report an output that keeps the value continuous. Step advances the
// animation to a frame timestamp in milliseconds and calls Stop(true) on the
// final frame. Value reports the animation's additive contribution.
type Animation interface {
	Start(v *Value, onEnd EndCallback)
	Step(timestamp float64)
	Value() float64
	Stop(finished bool)
	Ended() bool
	Policy() Policy
}

// animationState tracks the constructed, active and ended states shared by
// the built-in animations.
type animationState struct {
	active bool
	ended  bool
	onEnd  EndCallback
}

func (s *animationState) begin(onEnd EndCallback) {
	if s.active {
		panic("animated: animation already started")
	}
	s.active = true
	s.onEnd = onEnd
}

func (s *animationState) mustBeActive() {
	if !s.active {
		panic(ErrUninitialized)
	}
}

// Stop ends the animation and fires the end callback. Later calls are no-ops.
func (s *animationState) Stop(finished bool) {
	if s.ended {
		return
	}
	s.ended = true
	cb := s.onEnd
	s.onEnd = nil
	cb.call(EndResult{Finished: finished})
}

// Ended reports whether the animation has stopped.
func (s *animationState) Ended() bool {
	return s.ended
}

// Active reports whether the animation has been started.
func (s *animationState) Active() bool {
	return s.active
}
