package reveal

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing names follow the GSAP vocabulary the page was designed with:
// "power2.out", "back.out(1.7)", "sine.inOut", "none". The powerN family
// maps onto the polynomial curves (power1 = quad ... power4 = quint). A
// parameter suffix such as "(1.7)" is accepted and ignored; gween's back
// curves use the standard 1.70158 overshoot.
var easings = map[string]ease.TweenFunc{
	"none":   ease.Linear,
	"linear": ease.Linear,

	"power1.in": ease.InQuad, "power1.out": ease.OutQuad, "power1.inout": ease.InOutQuad,
	"power2.in": ease.InCubic, "power2.out": ease.OutCubic, "power2.inout": ease.InOutCubic,
	"power3.in": ease.InQuart, "power3.out": ease.OutQuart, "power3.inout": ease.InOutQuart,
	"power4.in": ease.InQuint, "power4.out": ease.OutQuint, "power4.inout": ease.InOutQuint,

	"quad.in": ease.InQuad, "quad.out": ease.OutQuad, "quad.inout": ease.InOutQuad,
	"cubic.in": ease.InCubic, "cubic.out": ease.OutCubic, "cubic.inout": ease.InOutCubic,
	"quart.in": ease.InQuart, "quart.out": ease.OutQuart, "quart.inout": ease.InOutQuart,
	"quint.in": ease.InQuint, "quint.out": ease.OutQuint, "quint.inout": ease.InOutQuint,
	"sine.in": ease.InSine, "sine.out": ease.OutSine, "sine.inout": ease.InOutSine,
	"expo.in": ease.InExpo, "expo.out": ease.OutExpo, "expo.inout": ease.InOutExpo,
	"circ.in": ease.InCirc, "circ.out": ease.OutCirc, "circ.inout": ease.InOutCirc,
	"back.in": ease.InBack, "back.out": ease.OutBack, "back.inout": ease.InOutBack,
	"elastic.in": ease.InElastic, "elastic.out": ease.OutElastic, "elastic.inout": ease.InOutElastic,
	"bounce.in": ease.InBounce, "bounce.out": ease.OutBounce, "bounce.inout": ease.InOutBounce,
}

// LookupEase resolves an easing name. A bare family name ("power2") means its
// ".out" variant.
func LookupEase(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if i := strings.IndexByte(key, '('); i >= 0 {
		key = key[:i]
	}
	if fn, ok := easings[key]; ok {
		return fn, true
	}
	if fn, ok := easings[key+".out"]; ok {
		return fn, true
	}
	return nil, false
}

// Ease resolves an easing name, falling back to linear for unknown names.
func Ease(name string) ease.TweenFunc {
	if fn, ok := LookupEase(name); ok {
		return fn
	}
	return ease.Linear
}

// Progress evaluates fn as a normalized curve: linear progress t in [0, 1] in,
// eased progress out.
func Progress(fn ease.TweenFunc, t float64) float64 {
	if fn == nil {
		fn = ease.Linear
	}
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return float64(fn(float32(t), 0, 1, 1))
}

// Mirror returns the eased progress of the reverse run at linear time t:
// 1 - fn(1 - t). A reversed tween walks back along the forward path, so the
// value it shows after reversing for t of its duration is the forward value
// at 1 - t.
func Mirror(fn ease.TweenFunc, t float64) float64 {
	return 1 - Progress(fn, 1-t)
}
