package animated

import (
	"sync"
	"time"
)

// Manager owns the values that are observed or animating and drives them
// from its Scheduler. All graph mutation, stepping and flushing happens on
// the goroutine the scheduler fires frames on.
type Manager struct {
	scheduler Scheduler
	values    []*Value
	ticking   bool
	stopped   bool
	debug     bool

	// Per-frame scratch buffers.
	stepBuf  []*Value
	flushBuf []*Value
}

// NewManager creates a manager that requests frames from s.
func NewManager(s Scheduler) *Manager {
	if s == nil {
		panic("animated: nil scheduler")
	}
	return &Manager{scheduler: s}
}

var (
	defaultOnce    sync.Once
	defaultLoop    *Loop
	defaultManager *Manager
)

// Default returns the process-wide manager used by NewValue, NewValueXY,
// Delay and Stagger. It is driven by DefaultLoop, which the caller must Run.
func Default() *Manager {
	defaultOnce.Do(func() {
		defaultLoop = NewLoop(DefaultFPS)
		defaultManager = NewManager(defaultLoop)
	})
	return defaultManager
}

// DefaultLoop returns the loop driving the default manager.
func DefaultLoop() *Loop {
	Default()
	return defaultLoop
}

// Scheduler returns the scheduler frames are requested from.
func (m *Manager) Scheduler() Scheduler { return m.scheduler }

// NumValues returns the number of values the manager currently steps.
func (m *Manager) NumValues() int { return len(m.values) }

// Ticking reports whether a frame has been requested and not yet run.
func (m *Manager) Ticking() bool { return m.ticking }

// RequestTick schedules one frame. Calls made while a frame is already
// pending are no-ops.
func (m *Manager) RequestTick() {
	if m.ticking || m.stopped {
		return
	}
	m.ticking = true
	m.scheduler.RequestFrame(m.frame)
}

// Stop halts the frame loop. Pending frames run as no-ops and no new frames
// are requested until Resume.
func (m *Manager) Stop() {
	m.stopped = true
}

// Resume restarts the frame loop after Stop.
func (m *Manager) Resume() {
	if !m.stopped {
		return
	}
	m.stopped = false
	for _, v := range m.values {
		if v.Animating() {
			m.RequestTick()
			return
		}
	}
}

// Stopped reports whether Stop has been called without a later Resume.
func (m *Manager) Stopped() bool { return m.stopped }

// SetDebugMode enables or disables debug mode. When enabled, child count
// warnings are logged and per-frame stats are logged at debug level.
func (m *Manager) SetDebugMode(enabled bool) {
	m.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Manager debug flag so that node
// operations (which lack a Manager pointer) can check it cheaply.
var globalDebug bool

func (m *Manager) now() float64 {
	return m.scheduler.Now()
}

func (m *Manager) track(v *Value) {
	if v.registered {
		return
	}
	v.registered = true
	m.values = append(m.values, v)
}

func (m *Manager) untrack(v *Value) {
	if !v.registered {
		return
	}
	v.registered = false
	v.resetTracking()
	for i, w := range m.values {
		if w == v {
			copy(m.values[i:], m.values[i+1:])
			m.values[len(m.values)-1] = nil
			m.values = m.values[:len(m.values)-1]
			return
		}
	}
}

// frame steps every tracked value, then flushes the ones that were animating
// and asks for another frame if there were any.
func (m *Manager) frame(timestamp float64) {
	m.ticking = false
	if m.stopped {
		return
	}

	var stats debugStats
	var t0 time.Time
	if m.debug {
		t0 = time.Now()
	}

	// Values tracked during this frame are stepped on the next one.
	m.stepBuf = append(m.stepBuf[:0], m.values...)
	m.flushBuf = m.flushBuf[:0]
	for _, v := range m.stepBuf {
		if v.step(timestamp) {
			m.flushBuf = append(m.flushBuf, v)
		}
	}

	var t1 time.Time
	if m.debug {
		t1 = time.Now()
		stats.stepTime = t1.Sub(t0)
		stats.stepped = len(m.stepBuf)
		stats.flushed = len(m.flushBuf)
	}

	for _, v := range m.flushBuf {
		v.Flush()
	}

	// Unobserved values are only kept while they animate.
	for _, v := range m.stepBuf {
		if !v.attached() && !v.Animating() {
			m.untrack(v)
		}
	}

	if m.debug {
		stats.flushTime = time.Since(t1)
		stats.tracked = len(m.values)
		m.debugLog(timestamp, stats)
	}

	flushed := len(m.flushBuf)
	clear(m.stepBuf)
	clear(m.flushBuf)

	if flushed > 0 {
		m.RequestTick()
	}
}
