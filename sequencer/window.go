package sequencer

// Window is the sub-range of overall progress in which a timeline is active.
type Window struct {
	Start float64
	End   float64
}

// WindowFromFrames builds a window from frame indices of an n-frame sequence.
func WindowFromFrames(startIdx, endIdx, n int) Window {
	if n <= 1 {
		return Window{Start: 0, End: 1}
	}
	last := float64(n - 1)
	return Window{Start: float64(startIdx) / last, End: float64(endIdx) / last}
}

// Local maps overall progress into the window: 0 before Start, 1 after End.
func (w Window) Local(p float64) float64 {
	span := w.End - w.Start
	if span <= 0 {
		if p >= w.End {
			return 1
		}
		return 0
	}
	return Clamp01((p - w.Start) / span)
}

// Contains reports whether p lies inside the window
func (w Window) Contains(p float64) bool {
	return p >= w.Start && p <= w.End
}

// Clamp01 clamps x into [0,1]
func Clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
