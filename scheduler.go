package animated

import (
	"context"
	"sync"
	"time"
)

// Scheduler is the frame source a Manager runs on. Now and every frame
// callback use the same clock, in milliseconds.
type Scheduler interface {
	// Now returns the current time in milliseconds.
	Now() float64

	// RequestFrame arranges for fn to be called once, on the next frame, with
	// that frame's timestamp.
	RequestFrame(fn func(timestamp float64))
}

// DefaultFPS is the frame rate of the default loop.
const DefaultFPS = 60

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// --- ManualScheduler ---

// ManualScheduler is a synthetic clock. Frames only fire when the caller
// advances it, which makes animation runs deterministic.
type ManualScheduler struct {
	now      float64
	pending  []func(float64)
	requests int
}

// NewManualScheduler creates a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Now returns the synthetic time in milliseconds.
func (s *ManualScheduler) Now() float64 { return s.now }

// RequestFrame queues fn for the next Advance.
func (s *ManualScheduler) RequestFrame(fn func(float64)) {
	s.pending = append(s.pending, fn)
	s.requests++
}

// Requests returns the total number of frames requested so far.
func (s *ManualScheduler) Requests() int { return s.requests }

// Pending returns the number of frame callbacks waiting for the next Advance.
func (s *ManualScheduler) Pending() int { return len(s.pending) }

// Advance moves the clock forward by dt milliseconds and fires the callbacks
// that were pending. Callbacks requested while firing wait for the next
// Advance. It returns the number of callbacks fired.
func (s *ManualScheduler) Advance(dt float64) int {
	s.now += dt
	fire := s.pending
	s.pending = nil
	for _, fn := range fire {
		fn(s.now)
	}
	return len(fire)
}

// RunFrames advances the clock n times by dt.
func (s *ManualScheduler) RunFrames(n int, dt float64) {
	for range n {
		s.Advance(dt)
	}
}

// RunUntilIdle advances the clock by dt until no frame is pending or
// maxFrames frames have run. It returns the number of frames run.
func (s *ManualScheduler) RunUntilIdle(dt float64, maxFrames int) int {
	frames := 0
	for frames < maxFrames && len(s.pending) > 0 {
		s.Advance(dt)
		frames++
	}
	return frames
}

// --- Loop ---

// Loop is a real-time Scheduler. Frames fire on the goroutine running Run,
// at most fps times per second and only while requested. Code that touches
// the animation graph from other goroutines must go through Post.
type Loop struct {
	interval time.Duration
	start    time.Time
	wake     chan struct{}

	mu      sync.Mutex
	pending []func(float64)
	work    []func()
}

// NewLoop creates a loop ticking at fps frames per second.
func NewLoop(fps int) *Loop {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Loop{
		interval: time.Second / time.Duration(fps),
		start:    time.Now(),
		wake:     make(chan struct{}, 1),
	}
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration { return l.interval }

// Now returns the milliseconds elapsed since the loop was created.
func (l *Loop) Now() float64 {
	return millis(time.Since(l.start))
}

// RequestFrame queues fn for the next tick.
func (l *Loop) RequestFrame(fn func(float64)) {
	l.mu.Lock()
	l.pending = append(l.pending, fn)
	l.mu.Unlock()
}

// Post queues fn to run on the loop goroutine before the next frame.
// It is safe to call from any goroutine.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.work = append(l.work, fn)
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run fires frames and posted work until ctx is done, returning ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			l.runWork()
		case <-ticker.C:
			l.runWork()
			l.runFrame()
		}
	}
}

func (l *Loop) runWork() {
	l.mu.Lock()
	work := l.work
	l.work = nil
	l.mu.Unlock()
	for _, fn := range work {
		fn()
	}
}

func (l *Loop) runFrame() {
	l.mu.Lock()
	fire := l.pending
	l.pending = nil
	l.mu.Unlock()
	if len(fire) == 0 {
		return
	}
	now := l.Now()
	for _, fn := range fire {
		fn(now)
	}
}
