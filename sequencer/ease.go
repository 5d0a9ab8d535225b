package sequencer

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEase is used when a tween names no curve
const DefaultEase = "power1.out"

var easeTable = map[string]ease.TweenFunc{
	"none":         ease.Linear,
	"linear":       ease.Linear,
	"power1.in":    ease.InQuad,
	"power1.out":   ease.OutQuad,
	"power1.inout": ease.InOutQuad,
	"power2.in":    ease.InCubic,
	"power2.out":   ease.OutCubic,
	"power2.inout": ease.InOutCubic,
	"power3.in":    ease.InQuart,
	"power3.out":   ease.OutQuart,
	"power3.inout": ease.InOutQuart,
	"power4.in":    ease.InQuint,
	"power4.out":   ease.OutQuint,
	"power4.inout": ease.InOutQuint,
	"sine.in":      ease.InSine,
	"sine.out":     ease.OutSine,
	"sine.inout":   ease.InOutSine,
	"expo.in":      ease.InExpo,
	"expo.out":     ease.OutExpo,
	"expo.inout":   ease.InOutExpo,
	"circ.in":      ease.InCirc,
	"circ.out":     ease.OutCirc,
	"circ.inout":   ease.InOutCirc,
	"back.in":      ease.InBack,
	"back.out":     ease.OutBack,
	"back.inout":   ease.InOutBack,
	"bounce.out":   ease.OutBounce,
	"elastic.out":  ease.OutElastic,

	// Plain curve names used by the parallax and wipe timelines
	"incubic":    ease.InCubic,
	"outcubic":   ease.OutCubic,
	"inoutcubic": ease.InOutCubic,
	"inoutsine":  ease.InOutSine,
	"inoutquad":  ease.InOutQuad,
	"outquart":   ease.OutQuart,
}

// EaseByName resolves a curve name such as "power2.inOut". Unknown names
// fall back to DefaultEase and report false.
func EaseByName(name string) (ease.TweenFunc, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return easeTable[DefaultEase], true
	}
	if fn, ok := easeTable[key]; ok {
		return fn, true
	}
	return easeTable[DefaultEase], false
}
