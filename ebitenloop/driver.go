// Package ebitenloop runs animations from an Ebitengine game loop.
//
// A [Driver] is an animated.Scheduler whose clock advances one tick per call
// to Update. Frames requested by the manager fire at the end of the tick that
// follows the request, so everything in the graph is touched only from the
// game goroutine:
//
//	d := ebitenloop.NewDriver()
//	m := animated.NewManager(d)
//	g := &ebitenloop.Game{Driver: d, DrawFunc: draw}
//	ebiten.RunGame(g)
package ebitenloop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// fallbackTPS is used when ebiten reports a non-positive TPS, as it does
// under ebiten.SyncWithFPS.
const fallbackTPS = 60

// Driver is a tick-driven animated.Scheduler.
type Driver struct {
	now     float64 // ms
	ticks   int64
	tps     func() int
	pending []func(float64)
	firing  []func(float64)
}

// NewDriver returns a driver whose tick length follows ebiten.TPS.
func NewDriver() *Driver {
	return &Driver{tps: ebiten.TPS}
}

// Now returns the driver clock in milliseconds: the sum of the tick lengths
// seen so far.
func (d *Driver) Now() float64 { return d.now }

// Ticks returns the number of Update calls so far.
func (d *Driver) Ticks() int64 { return d.ticks }

// RequestFrame queues fn for the next Update.
func (d *Driver) RequestFrame(fn func(float64)) {
	d.pending = append(d.pending, fn)
}

// Pending returns the number of frame callbacks waiting for the next Update.
func (d *Driver) Pending() int { return len(d.pending) }

// TickDuration returns the length of one tick in milliseconds at the current
// TPS.
func (d *Driver) TickDuration() float64 {
	tps := d.tps()
	if tps <= 0 {
		tps = fallbackTPS
	}
	return 1000 / float64(tps)
}

// Update advances the clock by one tick and fires the pending frames. Call it
// once from ebiten.Game.Update. Frames requested while firing wait for the
// next tick.
func (d *Driver) Update() {
	d.ticks++
	d.now += d.TickDuration()

	// Swap buffers so callbacks can request the next frame.
	d.firing, d.pending = d.pending, d.firing[:0]
	for i, fn := range d.firing {
		fn(d.now)
		d.firing[i] = nil
	}
	d.firing = d.firing[:0]
}
