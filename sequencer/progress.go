package sequencer

import (
	"math"
	"sync"
)

// ProgressSource is anything that produces overall scroll progress in [0,1]
// and notifies subscribers when it changes.
type ProgressSource interface {
	CurrentProgress() float64
	// OnChange registers fn and returns a function that unregisters it.
	OnChange(fn func(p float64)) (unsubscribe func())
}

type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(float64)
}

func (l *listeners) add(fn func(float64)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func(float64))
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	return func() {
		l.mu.Lock()
		delete(l.fns, id)
		l.mu.Unlock()
	}
}

func (l *listeners) notify(p float64) {
	l.mu.Lock()
	fns := make([]func(float64), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn(p)
	}
}

// ScrollSource converts wheel, key and drag input over a virtual scroll
// distance into smoothed progress. Raw input moves the target offset; Tick
// eases the visible offset toward it.
type ScrollSource struct {
	distance  float64
	smoothing float64
	epsilon   float64

	mu       sync.RWMutex
	target   float64
	offset   float64
	progress float64

	subs listeners
}

// NewScrollSource creates a source over distance pixels of scroll. A
// smoothing of 1 disables easing.
func NewScrollSource(distance, smoothing, epsilon float64) *ScrollSource {
	if distance <= 0 {
		distance = 1
	}
	if smoothing <= 0 || smoothing > 1 {
		smoothing = 1
	}
	return &ScrollSource{distance: distance, smoothing: smoothing, epsilon: epsilon}
}

// Distance returns the virtual scroll length in pixels
func (s *ScrollSource) Distance() float64 { return s.distance }

// SetSmoothing changes the per-tick easing factor
func (s *ScrollSource) SetSmoothing(f float64) {
	if f <= 0 || f > 1 {
		f = 1
	}
	s.mu.Lock()
	s.smoothing = f
	s.mu.Unlock()
}

// ScrubLerp converts a scrub lag in seconds into a per-tick easing factor
// at tps ticks per second. After lag seconds 95% of a jump is covered.
func ScrubLerp(lag float64, tps int) float64 {
	if lag <= 0 || tps <= 0 {
		return 1
	}
	return 1 - math.Pow(0.05, 1/(lag*float64(tps)))
}

// ScrollBy moves the target offset by dy pixels
func (s *ScrollSource) ScrollBy(dy float64) {
	s.mu.Lock()
	s.target = math.Max(0, math.Min(s.distance, s.target+dy))
	s.mu.Unlock()
}

// ScrollTo jumps the target offset to progress p
func (s *ScrollSource) ScrollTo(p float64) {
	s.mu.Lock()
	s.target = Clamp01(p) * s.distance
	s.mu.Unlock()
}

// Jump sets both target and visible offset to p and notifies at once
func (s *ScrollSource) Jump(p float64) {
	s.mu.Lock()
	s.target = Clamp01(p) * s.distance
	s.offset = s.target
	changed := s.progress != s.offset/s.distance
	s.progress = s.offset / s.distance
	p = s.progress
	s.mu.Unlock()
	if changed {
		s.subs.notify(p)
	}
}

// Tick advances smoothing one step and notifies subscribers if progress
// changed. It returns true while the offset is still moving.
func (s *ScrollSource) Tick() bool {
	s.mu.Lock()
	delta := s.target - s.offset
	moving := true
	if math.Abs(delta) <= s.epsilon {
		s.offset = s.target
		moving = false
	} else {
		s.offset += delta * s.smoothing
	}
	p := Clamp01(s.offset / s.distance)
	changed := p != s.progress
	s.progress = p
	s.mu.Unlock()
	if changed {
		s.subs.notify(p)
	}
	return moving
}

// CurrentProgress returns the smoothed progress
func (s *ScrollSource) CurrentProgress() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress
}

// TargetProgress returns the unsmoothed progress input is heading to
func (s *ScrollSource) TargetProgress() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target / s.distance
}

// OnChange implements ProgressSource
func (s *ScrollSource) OnChange(fn func(float64)) func() {
	return s.subs.add(fn)
}

// StaticSource is a ProgressSource fixed at a value until Set is called
type StaticSource struct {
	mu   sync.RWMutex
	p    float64
	subs listeners
}

// Set changes the value and notifies subscribers
func (s *StaticSource) Set(p float64) {
	p = Clamp01(p)
	s.mu.Lock()
	changed := s.p != p
	s.p = p
	s.mu.Unlock()
	if changed {
		s.subs.notify(p)
	}
}

// CurrentProgress implements ProgressSource
func (s *StaticSource) CurrentProgress() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p
}

// OnChange implements ProgressSource
func (s *StaticSource) OnChange(fn func(float64)) func() {
	return s.subs.add(fn)
}
