package interpolation

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorSpace selects how colour outputs are blended between breakpoints.
type ColorSpace uint8

const (
	RGB ColorSpace = iota // per channel, like any other number in a string
	HSV
	Lab
	Luv
	HCL
)

var colorSpaceNames = [...]string{"rgb", "hsv", "lab", "luv", "hcl"}

func (c ColorSpace) String() string {
	if int(c) < len(colorSpaceNames) {
		return colorSpaceNames[c]
	}
	return fmt.Sprintf("ColorSpace(%d)", c)
}

// ParseColorSpace converts a name such as "hcl" into a ColorSpace. The empty
// string yields RGB.
func ParseColorSpace(s string) (ColorSpace, error) {
	if s == "" {
		return RGB, nil
	}
	for i, name := range colorSpaceNames {
		if strings.EqualFold(s, name) {
			return ColorSpace(i), nil
		}
	}
	return RGB, fmt.Errorf("%w: unknown colour space %q", ErrInvalidConfig, s)
}

var (
	numberPattern = regexp.MustCompile(`[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	colorPattern  = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b|rgba?\([^)]*\)`)
)

func newStringFunc(s segments, outputs []string, space ColorSpace) (Func, error) {
	normalized := make([]string, len(outputs))
	for i, out := range outputs {
		n, err := normalizeColors(out)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}

	if space != RGB {
		colors := make([]rgba, len(normalized))
		for i, out := range normalized {
			c, ok := parseRGBA(out)
			if !ok {
				return nil, fmt.Errorf("%w: colour space %s needs colour outputs, got %q",
					ErrInvalidConfig, space, outputs[i])
			}
			colors[i] = c
		}
		return func(input float64) any {
			return s.mapColor(input, colors, space)
		}, nil
	}

	// channels[j][i] is the j-th number of output i.
	pattern := normalized[0]
	count := len(numberPattern.FindAllString(pattern, -1))
	channels := make([][]float64, count)
	for j := range channels {
		channels[j] = make([]float64, len(normalized))
	}
	for i, out := range normalized {
		nums := numberPattern.FindAllString(out, -1)
		if len(nums) != count {
			return nil, fmt.Errorf("%w: output %q has %d numbers, want %d like %q",
				ErrInvalidConfig, outputs[i], len(nums), count, outputs[0])
		}
		for j, num := range nums {
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: output %q: %v", ErrInvalidConfig, outputs[i], err)
			}
			channels[j][i] = v
		}
	}

	// rgba() channels are integers on the wire; alpha is not.
	round := strings.HasPrefix(pattern, "rgb")

	return func(input float64) any {
		j := 0
		return numberPattern.ReplaceAllStringFunc(pattern, func(string) string {
			v := s.mapNumber(input, channels[j])
			if round && j < 3 {
				v = math.Round(v)
			}
			j++
			return formatNumber(v)
		})
	}, nil
}

// mapColor blends neighbouring colours in a perceptual space. The fraction is
// clamped to the segment, as colours past either end are not meaningful.
func (s *segments) mapColor(input float64, colors []rgba, space ColorSpace) string {
	i := s.find(input)
	t := s.interpolate(input, s.in[i], s.in[i+1], 0, 1)
	t = math.Max(0, math.Min(1, t))

	c1, c2 := colors[i].color, colors[i+1].color
	var c colorful.Color
	switch space {
	case HSV:
		c = c1.BlendHsv(c2, t)
	case Lab:
		c = c1.BlendLab(c2, t)
	case Luv:
		c = c1.BlendLuv(c2, t)
	case HCL:
		c = c1.BlendHcl(c2, t)
	default:
		c = c1.BlendRgb(c2, t)
	}
	a := colors[i].alpha + (colors[i+1].alpha-colors[i].alpha)*t
	return formatRGBA(c.Clamped(), a)
}

type rgba struct {
	color colorful.Color
	alpha float64
}

// normalizeColors rewrites every colour in s as "rgba(r, g, b, a)" so that
// outputs mixing hex and functional notation share one number pattern.
func normalizeColors(s string) (string, error) {
	var err error
	out := colorPattern.ReplaceAllStringFunc(s, func(m string) string {
		c, ok := parseColor(m)
		if !ok {
			err = fmt.Errorf("%w: invalid colour %q", ErrInvalidConfig, m)
			return m
		}
		return formatRGBA(c.color.Clamped(), c.alpha)
	})
	return out, err
}

// parseRGBA accepts a string consisting of exactly one normalized colour.
func parseRGBA(s string) (rgba, bool) {
	if !strings.HasPrefix(s, "rgba(") || !strings.HasSuffix(s, ")") {
		return rgba{}, false
	}
	return parseColor(s)
}

func parseColor(s string) (rgba, bool) {
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	nums := numberPattern.FindAllString(s, -1)
	if len(nums) != 3 && len(nums) != 4 {
		return rgba{}, false
	}
	var v [4]float64
	v[3] = 1
	for i, num := range nums {
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return rgba{}, false
		}
		v[i] = f
	}
	return rgba{
		color: colorful.Color{R: v[0] / 255, G: v[1] / 255, B: v[2] / 255},
		alpha: v[3],
	}, true
}

// parseHex handles #rgb and #rrggbb through colorful.Hex and peels the alpha
// digit(s) off #rgba and #rrggbbaa first.
func parseHex(s string) (rgba, bool) {
	alpha := 1.0
	switch len(s) {
	case 4, 7:
	case 5:
		a, err := strconv.ParseUint(s[4:], 16, 8)
		if err != nil {
			return rgba{}, false
		}
		alpha = float64(a) / 15
		s = s[:4]
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return rgba{}, false
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return rgba{}, false
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return rgba{}, false
	}
	return rgba{color: c, alpha: alpha}, true
}

func formatRGBA(c colorful.Color, alpha float64) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatNumber(alpha))
}

func formatNumber(v float64) string {
	if v == 0 {
		// Avoid "-0".
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
