package easing

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// FromTween adapts a gween easing function, which maps elapsed time onto a
// begin/change/duration span, to a normalized curve.
func FromTween(fn ease.TweenFunc) Func {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// registry holds the curves addressable by name from configuration files.
// Keys are lower case.
var registry = map[string]Func{
	"step0":     Step0,
	"step1":     Step1,
	"linear":    Linear,
	"ease":      Ease,
	"easein":    In(Ease),
	"easeout":   Out(Ease),
	"easeinout": InOut(Ease),
	"quad":      Quad,
	"cubic":     Cubic,
	"sin":       Sin,
	"circle":    Circle,
	"exp":       Exp,
	"elastic":   Elastic(1),
	"back":      Back(0),
	"bounce":    Bounce,

	"inquad":       FromTween(ease.InQuad),
	"outquad":      FromTween(ease.OutQuad),
	"inoutquad":    FromTween(ease.InOutQuad),
	"outinquad":    FromTween(ease.OutInQuad),
	"incubic":      FromTween(ease.InCubic),
	"outcubic":     FromTween(ease.OutCubic),
	"inoutcubic":   FromTween(ease.InOutCubic),
	"outincubic":   FromTween(ease.OutInCubic),
	"inquart":      FromTween(ease.InQuart),
	"outquart":     FromTween(ease.OutQuart),
	"inoutquart":   FromTween(ease.InOutQuart),
	"outinquart":   FromTween(ease.OutInQuart),
	"inquint":      FromTween(ease.InQuint),
	"outquint":     FromTween(ease.OutQuint),
	"inoutquint":   FromTween(ease.InOutQuint),
	"outinquint":   FromTween(ease.OutInQuint),
	"insine":       FromTween(ease.InSine),
	"outsine":      FromTween(ease.OutSine),
	"inoutsine":    FromTween(ease.InOutSine),
	"outinsine":    FromTween(ease.OutInSine),
	"inexpo":       FromTween(ease.InExpo),
	"outexpo":      FromTween(ease.OutExpo),
	"inoutexpo":    FromTween(ease.InOutExpo),
	"outinexpo":    FromTween(ease.OutInExpo),
	"incirc":       FromTween(ease.InCirc),
	"outcirc":      FromTween(ease.OutCirc),
	"inoutcirc":    FromTween(ease.InOutCirc),
	"outincirc":    FromTween(ease.OutInCirc),
	"inelastic":    FromTween(ease.InElastic),
	"outelastic":   FromTween(ease.OutElastic),
	"inoutelastic": FromTween(ease.InOutElastic),
	"outinelastic": FromTween(ease.OutInElastic),
	"inback":       FromTween(ease.InBack),
	"outback":      FromTween(ease.OutBack),
	"inoutback":    FromTween(ease.InOutBack),
	"outinback":    FromTween(ease.OutInBack),
	"inbounce":     FromTween(ease.InBounce),
	"outbounce":    FromTween(ease.OutBounce),
	"inoutbounce":  FromTween(ease.InOutBounce),
	"outinbounce":  FromTween(ease.OutInBounce),
}

// ByName looks up a curve by name. Names are case-insensitive and may use
// dashes or underscores as separators, so "outCubic", "out-cubic" and
// "OUT_CUBIC" all resolve to the same curve.
func ByName(name string) (Func, bool) {
	key := strings.ToLower(name)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	fn, ok := registry[key]
	return fn, ok
}

// Names returns the registered curve names in no particular order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
