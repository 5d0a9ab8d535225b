package sequencer

import (
	"image"
	"math"
	"time"
)

// Inset is a rectangular clip given as fractions of the box cut from each
// edge, as in a CSS inset() clip path.
type Inset struct {
	Top, Right, Bottom, Left float64
}

// Clip returns the part of r left visible by the inset. Fractions are
// clamped to [0,1]; an inset that crosses itself leaves an empty rect.
func (in Inset) Clip(r image.Rectangle) image.Rectangle {
	w, h := float64(r.Dx()), float64(r.Dy())
	x0 := r.Min.X + int(math.Round(w*Clamp01(in.Left)))
	x1 := r.Max.X - int(math.Round(w*Clamp01(in.Right)))
	y0 := r.Min.Y + int(math.Round(h*Clamp01(in.Top)))
	y1 := r.Max.Y - int(math.Round(h*Clamp01(in.Bottom)))
	if x1 <= x0 || y1 <= y0 {
		return image.Rectangle{}
	}
	return image.Rect(x0, y0, x1, y1)
}

// ClipAway hides a layer toward its left edge as v runs 0 to 1
func ClipAway(v float64) Inset { return Inset{Right: v} }

// ClipInFromRight reveals a layer from its right edge as v runs 0 to 1
func ClipInFromRight(v float64) Inset { return Inset{Left: 1 - v} }

// ClipInUpward reveals a layer from its bottom edge as v runs 0 to 1
func ClipInUpward(v float64) Inset { return Inset{Top: 1 - v} }

// Stagger returns the linear progress of the index-th element of a
// staggered group elapsed into the group, where each element starts gap
// after the previous one and runs for dur.
func Stagger(elapsed time.Duration, index int, gap, dur time.Duration) float64 {
	start := time.Duration(index) * gap
	if elapsed <= start {
		return 0
	}
	if dur <= 0 {
		return 1
	}
	return Clamp01(float64(elapsed-start) / float64(dur))
}
