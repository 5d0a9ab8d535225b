package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives a looping decorative value such as the footer glow
var Tween = donburi.NewComponentType[gween.Sequence]()
