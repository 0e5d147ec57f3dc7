// Package interpolation maps a scalar input through an ordered set of range
// segments onto a numeric or string output.
//
// Inputs below the first breakpoint or above the last one are handled by the
// configured extrapolation policy. Within a segment the optional easing curve
// shapes the normalized fraction before the outputs are blended linearly.
//
//	fn, err := interpolation.New(interpolation.Config{
//		InputRange:  []float64{0, 1},
//		OutputRange: []float64{0, 100},
//		Extrapolate: interpolation.Clamp,
//	})
//	fn(0.5) // 50.0
//
// String outputs are blended number by number, so "0deg" to "90deg" and
// colours such as "#ff0000" to "rgba(0, 0, 255, 0.5)" both work.
package interpolation

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/phanxgames/animated/easing"
)

// ErrInvalidConfig is returned by New for malformed ranges.
var ErrInvalidConfig = errors.New("interpolation: invalid config")

// Extrapolate selects how inputs outside the input range are mapped.
type Extrapolate uint8

const (
	ExtrapolateUnset Extrapolate = iota // inherit from Config.Extrapolate, then Extend
	Extend                              // continue the nearest segment linearly
	Clamp                               // pin to the nearest breakpoint
	Identity                            // return the input unchanged
)

var extrapolateNames = [...]string{"", "extend", "clamp", "identity"}

func (e Extrapolate) String() string {
	if int(e) < len(extrapolateNames) {
		return extrapolateNames[e]
	}
	return fmt.Sprintf("Extrapolate(%d)", e)
}

// ParseExtrapolate converts "extend", "clamp" or "identity" into an
// Extrapolate. The empty string yields ExtrapolateUnset.
func ParseExtrapolate(s string) (Extrapolate, error) {
	for i, name := range extrapolateNames {
		if strings.EqualFold(s, name) {
			return Extrapolate(i), nil
		}
	}
	return ExtrapolateUnset, fmt.Errorf("%w: unknown extrapolation %q", ErrInvalidConfig, s)
}

// UnmarshalYAML lets configuration files spell the policy by name.
func (e *Extrapolate) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseExtrapolate(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// Config describes an interpolation. Exactly one of OutputRange and
// OutputStrings must be set, with the same length as InputRange.
type Config struct {
	// InputRange holds strictly increasing breakpoints. The first may be
	// -Inf and the last +Inf.
	InputRange []float64

	OutputRange   []float64
	OutputStrings []string

	// Easing shapes the fraction within each segment. Nil means linear.
	Easing easing.Func

	Extrapolate      Extrapolate
	ExtrapolateLeft  Extrapolate
	ExtrapolateRight Extrapolate

	// ColorSpace selects how colour outputs are blended. Only used when every
	// output string is a single colour.
	ColorSpace ColorSpace
}

// Func maps an input onto the configured output. The result is a float64
// for numeric outputs and a string for string outputs.
type Func func(input float64) any

// New validates cfg and returns its mapping function.
func New(cfg Config) (Func, error) {
	in := cfg.InputRange
	if len(in) < 2 {
		return nil, fmt.Errorf("%w: input range needs at least 2 breakpoints, got %d", ErrInvalidConfig, len(in))
	}
	for i := 1; i < len(in); i++ {
		if !(in[i] > in[i-1]) {
			return nil, fmt.Errorf("%w: input range must be strictly increasing, got %v", ErrInvalidConfig, in)
		}
	}
	for i, v := range in {
		if math.IsNaN(v) || (math.IsInf(v, -1) && i != 0) || (math.IsInf(v, 1) && i != len(in)-1) {
			return nil, fmt.Errorf("%w: invalid breakpoint %v at %d", ErrInvalidConfig, v, i)
		}
	}

	numeric, str := len(cfg.OutputRange) > 0, len(cfg.OutputStrings) > 0
	switch {
	case numeric && str:
		return nil, fmt.Errorf("%w: set either OutputRange or OutputStrings, not both", ErrInvalidConfig)
	case !numeric && !str:
		return nil, fmt.Errorf("%w: output range is empty", ErrInvalidConfig)
	}

	s := segments{
		in:    in,
		ease:  cfg.Easing,
		left:  resolve(cfg.ExtrapolateLeft, cfg.Extrapolate),
		right: resolve(cfg.ExtrapolateRight, cfg.Extrapolate),
	}
	if s.ease == nil {
		s.ease = easing.Linear
	}

	if numeric {
		if len(cfg.OutputRange) != len(in) {
			return nil, fmt.Errorf("%w: input range has %d breakpoints but output range has %d",
				ErrInvalidConfig, len(in), len(cfg.OutputRange))
		}
		out := cfg.OutputRange
		return func(input float64) any {
			return s.mapNumber(input, out)
		}, nil
	}

	if len(cfg.OutputStrings) != len(in) {
		return nil, fmt.Errorf("%w: input range has %d breakpoints but output range has %d",
			ErrInvalidConfig, len(in), len(cfg.OutputStrings))
	}
	return newStringFunc(s, cfg.OutputStrings, cfg.ColorSpace)
}

func resolve(side, both Extrapolate) Extrapolate {
	if side != ExtrapolateUnset {
		return side
	}
	if both != ExtrapolateUnset {
		return both
	}
	return Extend
}

// segments carries the input breakpoints and the policies shared by every
// output channel of one interpolation.
type segments struct {
	in          []float64
	ease        easing.Func
	left, right Extrapolate
}

// find returns the index of the segment [in[i], in[i+1]] that covers input.
// Inputs outside the range map to the first or last segment.
func (s *segments) find(input float64) int {
	return sort.Search(len(s.in)-2, func(j int) bool {
		return s.in[j+1] >= input
	})
}

func (s *segments) mapNumber(input float64, out []float64) float64 {
	i := s.find(input)
	return s.interpolate(input, s.in[i], s.in[i+1], out[i], out[i+1])
}

func (s *segments) interpolate(input, inMin, inMax, outMin, outMax float64) float64 {
	result := input

	if result < inMin {
		switch s.left {
		case Identity:
			return result
		case Clamp:
			result = inMin
		}
	}
	if result > inMax {
		switch s.right {
		case Identity:
			return result
		case Clamp:
			result = inMax
		}
	}

	if outMin == outMax {
		return outMin
	}
	if inMin == inMax {
		if input <= inMin {
			return outMin
		}
		return outMax
	}

	switch {
	case math.IsInf(inMin, -1):
		result = -result
	case math.IsInf(inMax, 1):
		result = result - inMin
	default:
		result = (result - inMin) / (inMax - inMin)
	}

	result = s.ease(result)

	switch {
	case math.IsInf(outMin, -1):
		result = -result
	case math.IsInf(outMax, 1):
		result = result + outMin
	default:
		result = result*(outMax-outMin) + outMin
	}
	return result
}
