package sequencer

// Playback owns the cursor for one frame sequence and decides, tick by
// tick, whether a redraw is needed.
type Playback struct {
	Cursor

	frames    int
	easing    float64
	epsilon   float64
	lastDrawn int
	pending   bool
}

// NewPlayback creates playback state for an n-frame sequence
func NewPlayback(frames int, easing, epsilon float64) *Playback {
	return &Playback{frames: frames, easing: easing, epsilon: epsilon, lastDrawn: -1, pending: true}
}

// Configure swaps tuning after a breakpoint change and forces a redraw.
// The cursor is rescaled so the same progress maps to the same place.
func (pb *Playback) Configure(frames int, easing float64) {
	if frames != pb.frames && pb.frames > 1 && frames > 1 {
		ratio := float64(frames-1) / float64(pb.frames-1)
		pb.Current *= ratio
		pb.Target *= ratio
	}
	pb.frames = frames
	pb.easing = easing
	pb.Invalidate()
}

// Frames returns the sequence length
func (pb *Playback) Frames() int { return pb.frames }

// Invalidate forces the next Tick to draw
func (pb *Playback) Invalidate() {
	pb.lastDrawn = -1
	pb.pending = true
}

// Retarget sets the target frame, scheduling a tick if it moved
func (pb *Playback) Retarget(target int) {
	before := pb.Target
	pb.SetTarget(float64(target), pb.frames)
	if pb.Target != before {
		pb.pending = true
	}
}

// Pending reports whether a tick is scheduled
func (pb *Playback) Pending() bool { return pb.pending }

// Tick eases the cursor and returns the frame to show and whether it must
// be drawn. When the frame is unchanged and the cursor has settled, nothing
// is drawn and no further tick is scheduled.
func (pb *Playback) Tick() (frame int, draw bool) {
	if !pb.pending {
		return pb.lastDrawn, false
	}
	pb.Step(pb.easing, pb.epsilon)
	frame = pb.Frame(pb.frames)
	settled := pb.Settled(pb.epsilon)
	if frame == pb.lastDrawn && settled {
		pb.pending = false
		return frame, false
	}
	return frame, true
}

// MarkDrawn records the frame actually put on the canvas
func (pb *Playback) MarkDrawn(frame int) { pb.lastDrawn = frame }

// LastDrawn returns the last frame put on the canvas, -1 if none
func (pb *Playback) LastDrawn() int { return pb.lastDrawn }
