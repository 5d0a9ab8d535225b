package sequencer

import "math"

// Cursor is the playback position into the frame sequence. Target is set
// from mapped progress; Current eases toward it every tick.
type Cursor struct {
	Current float64
	Target  float64
}

// SetTarget sets the target frame, clamped to [0, frames-1]
func (c *Cursor) SetTarget(target float64, frames int) {
	c.Target = clampFrame(target, frames)
}

// Step applies one tick of exponential smoothing. Once the remaining
// distance falls below epsilon the cursor snaps to the target so it never
// oscillates. It returns true while the cursor is still moving.
func (c *Cursor) Step(easing, epsilon float64) bool {
	if easing <= 0 || easing > 1 {
		easing = 1
	}
	delta := c.Target - c.Current
	if math.Abs(delta) < epsilon {
		c.Current = c.Target
		return false
	}
	c.Current += delta * easing
	if math.Abs(c.Target-c.Current) < epsilon {
		c.Current = c.Target
	}
	return true
}

// Settled reports whether Current has reached Target
func (c *Cursor) Settled(epsilon float64) bool {
	return math.Abs(c.Target-c.Current) < epsilon
}

// Frame returns round(Current) clamped to [0, frames-1]
func (c *Cursor) Frame(frames int) int {
	return int(clampFrame(math.Round(c.Current), frames))
}

func clampFrame(v float64, frames int) float64 {
	if frames <= 0 || v < 0 {
		return 0
	}
	if last := float64(frames - 1); v > last {
		return last
	}
	return v
}
