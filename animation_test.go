package animated

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/phanxgames/animated/easing"
)

// --- Timing ---

func TestTimingReachesEndpoints(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(20)
	var result *EndResult
	a := NewTimingAnimation(TimingConfig{ToValue: 100, Duration: time.Second})
	v.Animate(a, func(r EndResult) { result = &r })

	if got := v.Float(); got != 20 {
		t.Errorf("value at start = %v, want 20", got)
	}
	s.Advance(999)
	if result != nil {
		t.Fatal("animation ended before its duration")
	}
	s.Advance(1)
	if result == nil || !result.Finished {
		t.Fatalf("end result = %v, want Finished true", result)
	}
	if got := v.Float(); math.Abs(got-100) > tol {
		t.Errorf("value at end = %v, want 100", got)
	}
	if got := a.Value(); math.Abs(got) > tol {
		t.Errorf("animation output at end = %v, want 0", got)
	}
}

func TestTimingIsMonotonic(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	v.Animate(NewTimingAnimation(TimingConfig{ToValue: 1, Duration: 500 * time.Millisecond, Easing: easing.Quad}), nil)

	prev := v.Float()
	for v.Animating() {
		s.Advance(16)
		got := v.Float()
		if got <= prev {
			t.Fatalf("value at %v = %v, not above %v", s.Now(), got, prev)
		}
		prev = got
	}
	if prev != 1 {
		t.Errorf("final value = %v, want 1", prev)
	}
}

func TestTimingDefaults(t *testing.T) {
	a := NewTimingAnimation(TimingConfig{ToValue: 1})
	if a.duration != 500 {
		t.Errorf("duration = %v ms, want 500", a.duration)
	}
	if a.easing == nil {
		t.Error("default easing should be set")
	}
	if a.Policy() != Coexist {
		t.Errorf("Policy = %v, want coexist", a.Policy())
	}
}

func TestTimingDelay(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	v.Animate(NewTimingAnimation(TimingConfig{
		ToValue:  10,
		Duration: 100 * time.Millisecond,
		Delay:    200 * time.Millisecond,
		Easing:   easing.Linear,
	}), nil)

	s.Advance(150)
	if got := v.Float(); got != 0 {
		t.Errorf("value during delay = %v, want 0", got)
	}
	s.Advance(100)
	if got := v.Float(); math.Abs(got-5) > tol {
		t.Errorf("value halfway = %v, want 5", got)
	}
}

func TestTimingNegativeDurationJumps(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	v.Animate(NewTimingAnimation(TimingConfig{ToValue: 7, Duration: -1}), nil)
	if got := v.Float(); got != 7 {
		t.Errorf("value = %v, want 7", got)
	}
	s.Advance(1)
	if v.Animating() {
		t.Error("animation should end on the first frame")
	}
}

func TestTimingAnimationsCoexist(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	var first *EndResult
	v.Animate(NewTimingAnimation(TimingConfig{ToValue: 10, Duration: time.Second, Easing: easing.Linear}),
		func(r EndResult) { first = &r })
	s.Advance(500)
	v.Animate(NewTimingAnimation(TimingConfig{ToValue: 20, Duration: time.Second, Easing: easing.Linear}), nil)

	if first != nil {
		t.Fatal("a timing animation must not stop the ones already running")
	}
	// 20 (model) - 5 (first, halfway to its own target) - 10 (second, at start).
	if got := v.Float(); math.Abs(got-5) > tol {
		t.Errorf("value = %v, want 5", got)
	}
	s.RunUntilIdle(16, 1000)
	if first == nil || !first.Finished {
		t.Errorf("first end result = %v, want Finished true", first)
	}
	if got := v.Float(); got != 20 {
		t.Errorf("final value = %v, want 20", got)
	}
}

// --- Animation state ---

func TestValueBeforeStartPanics(t *testing.T) {
	for name, a := range map[string]Animation{
		"timing": NewTimingAnimation(TimingConfig{}),
		"spring": mustSpring(t, SpringConfig{}),
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, ErrUninitialized) {
					t.Errorf("recover() = %v, want ErrUninitialized", err)
				}
			}()
			a.Value()
		})
	}
}

func TestStartTwicePanics(t *testing.T) {
	m, _ := newTestManager()
	a := NewTimingAnimation(TimingConfig{})
	m.NewValue(0).Animate(a, nil)
	defer func() {
		if recover() == nil {
			t.Error("expected panic when reusing an animation")
		}
	}()
	m.NewValue(0).Animate(a, nil)
}

func TestEndCallbackFiresOnce(t *testing.T) {
	m, _ := newTestManager()
	calls := 0
	a := NewTimingAnimation(TimingConfig{})
	m.NewValue(0).Animate(a, func(EndResult) { calls++ })
	a.Stop(false)
	a.Stop(true)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

// --- Spring ---

func mustSpring(t *testing.T, cfg SpringConfig) *SpringAnimation {
	t.Helper()
	a, err := NewSpringAnimation(cfg)
	if err != nil {
		t.Fatalf("NewSpringAnimation: %v", err)
	}
	return a
}

func TestSpringSettles(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	var result *EndResult
	v.Animate(mustSpring(t, SpringConfig{
		ToValue:   1,
		Stiffness: Float(100),
		Damping:   Float(10),
		Mass:      Float(1),
	}), func(r EndResult) { result = &r })

	frames := s.RunUntilIdle(16, 1000)
	if frames >= 1000 {
		t.Fatal("spring did not settle within 1000 frames")
	}
	if result == nil || !result.Finished {
		t.Fatalf("end result = %v, want Finished true", result)
	}
	if got := v.Float(); math.Abs(got-1) > DefaultRestThreshold {
		t.Errorf("final value = %v, want 1", got)
	}
}

func TestSpringMatchesHarmonica(t *testing.T) {
	// k=100, c=10, m=1: ω0 = 10 rad/s, ζ = 0.5.
	dt := harmonica.FPS(60)
	ref := harmonica.NewSpring(dt, 10, 0.5)

	m, s := newTestManager()
	v := m.NewValue(0)
	v.Animate(mustSpring(t, SpringConfig{ToValue: 1, Stiffness: Float(100), Damping: Float(10)}), nil)

	pos, vel := 0.0, 0.0
	for i := 0; i < 60 && v.Animating(); i++ {
		s.Advance(dt * 1000)
		pos, vel = ref.Update(pos, vel, 1)
		if !v.Animating() {
			break
		}
		if got := v.Float(); math.Abs(got-pos) > 1e-6 {
			t.Fatalf("frame %d: value = %v, harmonica = %v", i, got, pos)
		}
	}
}

func TestSpringCarriesOverVelocity(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	var events []string
	v.Animate(mustSpring(t, SpringConfig{ToValue: 100}), func(r EndResult) {
		if r.Finished {
			events = append(events, "first:finished")
		} else {
			events = append(events, "first:interrupted")
		}
	})
	s.RunFrames(5, 16)

	vel, ok := v.Velocity()
	if !ok || vel == 0 {
		t.Fatalf("Velocity() = %v, %v; want a moving value", vel, ok)
	}
	before := v.Float()

	second := mustSpring(t, SpringConfig{ToValue: 0})
	v.Animate(second, nil)

	if len(events) != 1 || events[0] != "first:interrupted" {
		t.Errorf("events = %v, want [first:interrupted]", events)
	}
	if got, want := second.InitialVelocity(), vel*1000; got != want {
		t.Errorf("InitialVelocity = %v, want %v", got, want)
	}
	if got := v.Float(); math.Abs(got-before) > tol {
		t.Errorf("value jumped from %v to %v on interruption", before, got)
	}
}

func TestSpringExplicitVelocityWins(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	v.Animate(mustSpring(t, SpringConfig{ToValue: 100}), nil)
	s.RunFrames(5, 16)

	second := mustSpring(t, SpringConfig{ToValue: 0, Velocity: Float(-3)})
	v.Animate(second, nil)
	if got := second.InitialVelocity(); got != -3 {
		t.Errorf("InitialVelocity = %v, want -3", got)
	}
}

func TestSpringRespectsOffset(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	v.SetOffset(50)
	v.Animate(mustSpring(t, SpringConfig{ToValue: 10}), nil)
	if got := v.Float(); got != 50 {
		t.Errorf("value at start = %v, want 50", got)
	}
	s.RunUntilIdle(16, 2000)
	if got := v.Float(); math.Abs(got-60) > DefaultRestThreshold {
		t.Errorf("final value = %v, want 60", got)
	}
}

func TestSpringOvershootClamping(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	v.Animate(mustSpring(t, SpringConfig{
		ToValue:           1,
		Stiffness:         Float(200),
		Damping:           Float(2),
		OvershootClamping: true,
	}), nil)

	for v.Animating() {
		s.Advance(16)
		if got := v.Float(); got > 1 {
			t.Fatalf("value overshot to %v", got)
		}
	}
	if got := v.Float(); got != 1 {
		t.Errorf("final value = %v, want 1", got)
	}
}

func TestSpringDelay(t *testing.T) {
	m, s := newTestManager()
	v := m.NewValue(0)
	v.Animate(mustSpring(t, SpringConfig{ToValue: 1, Delay: 100 * time.Millisecond}), nil)
	s.Advance(50)
	if got := v.Float(); got != 0 {
		t.Errorf("value during delay = %v, want 0", got)
	}
	s.Advance(100)
	if got := v.Float(); got == 0 {
		t.Error("spring should move once the delay has passed")
	}
}

// --- Spring parameters ---

func TestSpringParamGroups(t *testing.T) {
	tests := []struct {
		name string
		cfg  SpringConfig
		want SpringParams
	}{
		{"defaults", SpringConfig{}, SpringParams{Stiffness: 230.2, Damping: 22, Mass: 1}},
		{"physical defaults", SpringConfig{Mass: Float(2)}, SpringParams{Stiffness: 100, Damping: 10, Mass: 2}},
		{"origami", SpringConfig{Tension: Float(30), Friction: Float(8)}, SpringParams{Stiffness: 194, Damping: 25, Mass: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.Params()
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(got.Stiffness-tt.want.Stiffness) > 1e-9 ||
				math.Abs(got.Damping-tt.want.Damping) > 1e-9 ||
				got.Mass != tt.want.Mass {
				t.Errorf("Params() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBouncinessAndSpeed(t *testing.T) {
	p, err := SpringConfig{Bounciness: Float(DefaultBounciness)}.Params()
	if err != nil {
		t.Fatal(err)
	}
	want := FromBouncinessAndSpeed(DefaultBounciness, DefaultSpeed)
	if p != want {
		t.Errorf("Params() = %+v, want %+v", p, want)
	}
	if p.Stiffness <= 0 || p.Damping <= 0 || p.Mass != 1 {
		t.Errorf("FromBouncinessAndSpeed(8, 12) = %+v", p)
	}
	// More bounciness means less damping.
	if q := FromBouncinessAndSpeed(16, DefaultSpeed); q.Damping >= p.Damping {
		t.Errorf("damping at bounciness 16 = %v, want below %v", q.Damping, p.Damping)
	}
}

func TestSpringParamErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  SpringConfig
		want error
	}{
		{"stiffness and tension", SpringConfig{Stiffness: Float(1), Tension: Float(1)}, ErrConflictingSpringParams},
		{"mass and speed", SpringConfig{Mass: Float(1), Speed: Float(1)}, ErrConflictingSpringParams},
		{"friction and bounciness", SpringConfig{Friction: Float(1), Bounciness: Float(1)}, ErrConflictingSpringParams},
		{"zero stiffness", SpringConfig{Stiffness: Float(0)}, ErrNonPositiveSpring},
		{"negative mass", SpringConfig{Mass: Float(-1)}, ErrNonPositiveSpring},
		{"low friction", SpringConfig{Friction: Float(-1)}, ErrNonPositiveSpring},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSpringAnimation(tt.cfg); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSpringParamsDerived(t *testing.T) {
	p := SpringParams{Stiffness: 100, Damping: 10, Mass: 1}
	if got := p.DampingRatio(); math.Abs(got-0.5) > tol {
		t.Errorf("DampingRatio = %v, want 0.5", got)
	}
	if got := p.AngularFrequency(); math.Abs(got-10) > tol {
		t.Errorf("AngularFrequency = %v, want 10", got)
	}
}
