package messages

// ProgressUpdate carries overall scroll progress between a controller and
// the showcase displays.
type ProgressUpdate struct {
	Progress float64 `json:"progress"`
	Seq      uint64  `json:"seq,omitempty"` // Assigned by the relay; increases per accepted update
}

// Clamped returns the update with Progress limited to [0,1]
func (u ProgressUpdate) Clamped() ProgressUpdate {
	switch {
	case u.Progress < 0:
		u.Progress = 0
	case u.Progress > 1:
		u.Progress = 1
	}
	return u
}
