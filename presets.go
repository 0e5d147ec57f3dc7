package animated

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/phanxgames/animated/easing"
)

// ErrUnknownPreset is returned when a preset name is not defined.
var ErrUnknownPreset = errors.New("animated: unknown preset")

// TimingPreset is the YAML form of a TimingConfig without its target.
type TimingPreset struct {
	Duration time.Duration `yaml:"duration"`
	Delay    time.Duration `yaml:"delay"`

	// Easing names a curve known to easing.ByName. Empty selects the
	// default timing curve.
	Easing string `yaml:"easing"`
}

// Presets holds named spring and timing configurations, typically loaded
// from a YAML file:
//
//	springs:
//	  wobbly:
//	    stiffness: 180
//	    damping: 12
//	  gentle:
//	    tension: 40
//	    friction: 7
//	timings:
//	  fadeIn:
//	    duration: 300ms
//	    easing: outCubic
type Presets struct {
	Springs map[string]SpringConfig `yaml:"springs"`
	Timings map[string]TimingPreset `yaml:"timings"`
}

// LoadPresets decodes presets from r and validates every entry.
func LoadPresets(r io.Reader) (*Presets, error) {
	p := new(Presets)
	if err := yaml.NewDecoder(r).Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("animated: decoding presets: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate resolves every spring's parameters and every timing's easing.
func (p *Presets) Validate() error {
	for name, cfg := range p.Springs {
		if _, err := cfg.Params(); err != nil {
			return fmt.Errorf("animated: spring preset %q: %w", name, err)
		}
	}
	for name, t := range p.Timings {
		if t.Easing == "" {
			continue
		}
		if _, ok := easing.ByName(t.Easing); !ok {
			return fmt.Errorf("animated: timing preset %q: unknown easing %q", name, t.Easing)
		}
	}
	return nil
}

// SpringConfig returns the named spring configuration aimed at to.
func (p *Presets) SpringConfig(name string, to float64) (SpringConfig, error) {
	cfg, ok := p.Springs[name]
	if !ok {
		return SpringConfig{}, fmt.Errorf("%w: spring %q", ErrUnknownPreset, name)
	}
	cfg.ToValue = to
	return cfg, nil
}

// TimingConfig returns the named timing configuration aimed at to.
func (p *Presets) TimingConfig(name string, to float64) (TimingConfig, error) {
	t, ok := p.Timings[name]
	if !ok {
		return TimingConfig{}, fmt.Errorf("%w: timing %q", ErrUnknownPreset, name)
	}
	cfg := TimingConfig{ToValue: to, Duration: t.Duration, Delay: t.Delay}
	if t.Easing != "" {
		fn, ok := easing.ByName(t.Easing)
		if !ok {
			return TimingConfig{}, fmt.Errorf("animated: timing preset %q: unknown easing %q", name, t.Easing)
		}
		cfg.Easing = fn
	}
	return cfg, nil
}

// Spring returns a spring composite on v using the named preset.
func (p *Presets) Spring(name string, v *Value, to float64) (CompositeAnimation, error) {
	cfg, err := p.SpringConfig(name, to)
	if err != nil {
		return nil, err
	}
	return Spring(v, cfg)
}

// Timing returns a timing composite on v using the named preset.
func (p *Presets) Timing(name string, v *Value, to float64) (CompositeAnimation, error) {
	cfg, err := p.TimingConfig(name, to)
	if err != nil {
		return nil, err
	}
	return Timing(v, cfg), nil
}
