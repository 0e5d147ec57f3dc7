package animated

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const presetsYAML = `
springs:
  wobbly:
    stiffness: 180
    damping: 12
  gentle:
    tension: 40
    friction: 7
    overshootClamping: true
timings:
  fadeIn:
    duration: 300ms
    delay: 50ms
    easing: outCubic
  plain:
    duration: 1s
`

func TestLoadPresets(t *testing.T) {
	p, err := LoadPresets(strings.NewReader(presetsYAML))
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}

	wobbly, err := p.SpringConfig("wobbly", 5)
	if err != nil {
		t.Fatal(err)
	}
	want := SpringConfig{ToValue: 5, Stiffness: Float(180), Damping: Float(12)}
	if diff := cmp.Diff(want, wobbly); diff != "" {
		t.Errorf("wobbly mismatch (-want +got):\n%s", diff)
	}

	gentle, err := p.SpringConfig("gentle", 0)
	if err != nil {
		t.Fatal(err)
	}
	if !gentle.OvershootClamping {
		t.Error("gentle should clamp overshoot")
	}
	params, err := gentle.Params()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(FromOrigamiTensionAndFriction(40, 7), params); diff != "" {
		t.Errorf("gentle params mismatch (-want +got):\n%s", diff)
	}

	fade, err := p.TimingConfig("fadeIn", 1)
	if err != nil {
		t.Fatal(err)
	}
	wantTiming := TimingConfig{ToValue: 1, Duration: 300 * time.Millisecond, Delay: 50 * time.Millisecond}
	if diff := cmp.Diff(wantTiming, fade, cmpopts.IgnoreFields(TimingConfig{}, "Easing")); diff != "" {
		t.Errorf("fadeIn mismatch (-want +got):\n%s", diff)
	}
	if fade.Easing == nil || math.Abs(fade.Easing(0.5)-0.875) > 1e-6 {
		t.Error("fadeIn should ease with outCubic")
	}

	plain, err := p.TimingConfig("plain", 1)
	if err != nil {
		t.Fatal(err)
	}
	if plain.Easing != nil {
		t.Error("a preset without easing should leave the default")
	}
}

func TestLoadPresetsEmpty(t *testing.T) {
	p, err := LoadPresets(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadPresets: %v", err)
	}
	if _, err := p.TimingConfig("missing", 0); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("error = %v, want ErrUnknownPreset", err)
	}
	if _, err := p.Spring("missing", NewManager(NewManualScheduler()).NewValue(0), 0); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("error = %v, want ErrUnknownPreset", err)
	}
}

func TestLoadPresetsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"conflicting groups", "springs:\n  bad:\n    tension: 40\n    stiffness: 100\n", ErrConflictingSpringParams},
		{"zero mass", "springs:\n  bad:\n    mass: 0\n", ErrNonPositiveSpring},
		{"unknown easing", "timings:\n  bad:\n    easing: wiggle\n", nil},
		{"malformed duration", "timings:\n  bad:\n    duration: soon\n", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadPresets(strings.NewReader(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestPresetsDriveAnimations(t *testing.T) {
	p, err := LoadPresets(strings.NewReader(presetsYAML))
	if err != nil {
		t.Fatal(err)
	}
	m, s := newTestManager()
	a, b := m.NewValue(0), m.NewValue(0)

	spring, err := p.Spring("wobbly", a, 10)
	if err != nil {
		t.Fatal(err)
	}
	timing, err := p.Timing("fadeIn", b, 1)
	if err != nil {
		t.Fatal(err)
	}
	var result *EndResult
	Parallel(spring, timing).Start(func(r EndResult) { result = &r })
	s.RunUntilIdle(16, 1000)

	if result == nil || !result.Finished {
		t.Fatalf("end result = %v, want Finished true", result)
	}
	if a.Float() != 10 || b.Float() != 1 {
		t.Errorf("values = %v, %v; want 10, 1", a.Float(), b.Float())
	}
}
