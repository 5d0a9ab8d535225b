package components

import (
	"github.com/automoto/coffeeon/responsive"
	"github.com/yohamta/donburi"
)

// ViewportData is the singleton describing the window in CSS pixels
type ViewportData struct {
	Width  int
	Height int
	// DPR is the effective device pixel ratio, already capped by the profile
	DPR float64

	Resolver *responsive.Resolver
	// Observed is the last width handed to the resolver
	Observed int
}

// BackingSize returns the pixel size of the drawing surface
func (v ViewportData) BackingSize() (int, int) {
	return int(float64(v.Width)*v.DPR + 0.5), int(float64(v.Height)*v.DPR + 0.5)
}

var Viewport = donburi.NewComponentType[ViewportData]()
