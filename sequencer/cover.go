package sequencer

import "math"

// Placement is where a frame lands on the canvas
type Placement struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// CoverFit scales an iw×ih image to fill a cw×ch canvas with no gaps and
// centers it. Overflow on one axis is cropped equally on both sides.
func CoverFit(cw, ch, iw, ih float64) Placement {
	if iw <= 0 || ih <= 0 || cw <= 0 || ch <= 0 {
		return Placement{}
	}
	scale := math.Max(cw/iw, ch/ih)
	w, h := iw*scale, ih*scale
	return Placement{
		Scale:   scale,
		OffsetX: (cw - w) / 2,
		OffsetY: (ch - h) / 2,
		Width:   w,
		Height:  h,
	}
}

// BackingSize returns the canvas backing-store size and the effective
// device pixel ratio for a CSS-pixel size.
func BackingSize(cssW, cssH int, dpr, maxDPR float64) (int, int, float64) {
	if dpr <= 0 {
		dpr = 1
	}
	if maxDPR > 0 && dpr > maxDPR {
		dpr = maxDPR
	}
	return int(math.Round(float64(cssW) * dpr)), int(math.Round(float64(cssH) * dpr)), dpr
}
