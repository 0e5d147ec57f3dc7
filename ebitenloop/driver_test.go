package ebitenloop

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/animated"
	"github.com/phanxgames/animated/easing"
)

func newFixedDriver(tps int) *Driver {
	return &Driver{tps: func() int { return tps }}
}

func TestDriverClock(t *testing.T) {
	d := newFixedDriver(50)
	for i := 0; i < 5; i++ {
		d.Update()
	}
	if d.Ticks() != 5 {
		t.Errorf("Ticks() = %d, want 5", d.Ticks())
	}
	if got := d.Now(); math.Abs(got-100) > 1e-9 {
		t.Errorf("Now() = %v, want 100", got)
	}
}

func TestDriverFallbackTPS(t *testing.T) {
	d := newFixedDriver(ebiten.SyncWithFPS)
	if got, want := d.TickDuration(), 1000.0/fallbackTPS; got != want {
		t.Errorf("TickDuration() = %v, want %v", got, want)
	}
}

func TestDriverDefersNestedRequests(t *testing.T) {
	d := newFixedDriver(100)
	var fired []float64
	d.RequestFrame(func(ts float64) {
		fired = append(fired, ts)
		d.RequestFrame(func(ts float64) { fired = append(fired, ts) })
	})

	d.Update()
	if len(fired) != 1 || d.Pending() != 1 {
		t.Fatalf("after one tick: fired = %v, pending = %d", fired, d.Pending())
	}
	d.Update()
	if len(fired) != 2 || fired[0] != 10 || fired[1] != 20 {
		t.Errorf("fired = %v, want [10 20]", fired)
	}
}

func TestDriverRunsAnimation(t *testing.T) {
	d := newFixedDriver(60)
	m := animated.NewManager(d)
	v := m.NewValue(0)

	var result *animated.EndResult
	animated.Timing(v, animated.TimingConfig{
		ToValue:  1,
		Duration: 500 * time.Millisecond,
		Easing:   easing.Linear,
	}).Start(func(r animated.EndResult) { result = &r })

	g := &Game{Driver: d}
	for i := 0; i < 60 && d.Pending() > 0; i++ {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if result == nil || !result.Finished {
		t.Fatalf("end result = %v, want Finished true", result)
	}
	if v.Float() != 1 {
		t.Errorf("value = %v, want 1", v.Float())
	}
}

func TestGameUpdateError(t *testing.T) {
	errQuit := errors.New("quit")
	d := newFixedDriver(60)
	g := &Game{Driver: d, UpdateFunc: func() error { return errQuit }}

	if err := g.Update(); !errors.Is(err, errQuit) {
		t.Errorf("Update() = %v, want %v", err, errQuit)
	}
	if d.Ticks() != 0 {
		t.Error("driver should not tick when UpdateFunc fails")
	}
}

func TestGameLayout(t *testing.T) {
	g := &Game{}
	if w, h := g.Layout(800, 600); w != 800 || h != 600 {
		t.Errorf("Layout = %d,%d, want 800,600", w, h)
	}
	g.Width, g.Height = 320, 240
	if w, h := g.Layout(800, 600); w != 320 || h != 240 {
		t.Errorf("Layout = %d,%d, want 320,240", w, h)
	}
}

func TestStatsText(t *testing.T) {
	m := animated.NewManager(newFixedDriver(60))
	animated.NewProps(map[string]any{"x": m.NewValue(0)}, nil)
	if got := statsText(m); !strings.Contains(got, "Values: 1") {
		t.Errorf("statsText = %q, want it to count tracked values", got)
	}
}
