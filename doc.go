// Package animated is an animation engine: a graph of time-varying values
// that are driven by timing and spring animations and observed by
// consumers which are notified once per frame while anything changes.
//
// # Quick start
//
// Every value belongs to a [Manager], which steps running animations on the
// frames of a [Scheduler]:
//
//	loop := animated.NewLoop(60)
//	m := animated.NewManager(loop)
//
//	x := m.NewValue(0)
//	props := animated.NewProps(map[string]any{"x": x}, func() {
//		// called once per frame while x changes
//	})
//	defer props.Detach()
//
//	loop.Post(func() {
//		animated.Timing(x, animated.TimingConfig{ToValue: 100}).Start(nil)
//	})
//	loop.Run(ctx)
//
// Tests use [ManualScheduler], a synthetic clock advanced by hand. Ebitengine
// games use the Driver from the ebitenloop subpackage, which fires frames
// from the game's Update.
//
// # Graph
//
// Every node implements [Node]. [Value] and [ValueXY] hold state,
// [Interpolation] derives a value from a parent, and [Transform], [Style]
// and [Props] aggregate nodes and static values into the shape a renderer
// consumes. A node holds upstream resources only while it has children:
// adding its first child attaches it and removing its last child detaches
// it. Values are registered with their manager while attached or animating.
//
// # Animations
//
// [TimingAnimation] eases towards a target over a fixed duration;
// [SpringAnimation] integrates a damped oscillator and carries over the
// velocity of whatever it interrupts. Single animations and their
// combinations share the [CompositeAnimation] contract:
//
//	a, _ := animated.Spring(x, animated.SpringConfig{ToValue: 1})
//	animated.Sequence(
//		m.Delay(200*time.Millisecond),
//		animated.Parallel(a, animated.Timing(y, animated.TimingConfig{ToValue: 1})),
//	).Start(func(r animated.EndResult) { ... })
//
// Easing curves live in the easing subpackage, and the range mapping behind
// [Interpolate] in the interpolation subpackage. Named configurations can be
// loaded from YAML with [LoadPresets].
//
// # Logging and debug mode
//
// Graph warnings are written to the logger set with [SetLogger], which
// defaults to [slog.Default]. [Manager.SetDebugMode] adds per-frame stats at
// debug level.
package animated
