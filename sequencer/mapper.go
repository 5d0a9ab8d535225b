package sequencer

import "math"

// Snapshot is everything the Mapper derives from one progress value.
type Snapshot struct {
	Progress    float64
	TargetFrame int
	Local       map[string]float64
}

// Mapper translates overall progress into a target frame and per-window
// local progress. It holds only static configuration.
type Mapper struct {
	frames  int
	names   []string
	windows map[string]Window
}

// NewMapper creates a mapper for an n-frame sequence
func NewMapper(frames int) *Mapper {
	return &Mapper{
		frames:  frames,
		windows: make(map[string]Window),
	}
}

// Register adds or replaces a named window
func (m *Mapper) Register(name string, w Window) {
	if _, ok := m.windows[name]; !ok {
		m.names = append(m.names, name)
	}
	m.windows[name] = w
}

// Frames returns the sequence length
func (m *Mapper) Frames() int { return m.frames }

// Window returns a registered window
func (m *Mapper) Window(name string) (Window, bool) {
	w, ok := m.windows[name]
	return w, ok
}

// Names returns window names in registration order
func (m *Mapper) Names() []string { return m.names }

// TargetFrame returns round(p*(N-1)) clamped to [0, N-1]
func (m *Mapper) TargetFrame(p float64) int {
	if m.frames <= 0 {
		return 0
	}
	idx := int(math.Round(Clamp01(p) * float64(m.frames-1)))
	if idx < 0 {
		return 0
	}
	if idx > m.frames-1 {
		return m.frames - 1
	}
	return idx
}

// LocalProgress returns the named window's local progress at p
func (m *Mapper) LocalProgress(name string, p float64) float64 {
	w, ok := m.windows[name]
	if !ok {
		return 0
	}
	return w.Local(Clamp01(p))
}

// Map evaluates every output at p
func (m *Mapper) Map(p float64) Snapshot {
	p = Clamp01(p)
	s := Snapshot{
		Progress:    p,
		TargetFrame: m.TargetFrame(p),
		Local:       make(map[string]float64, len(m.windows)),
	}
	for name, w := range m.windows {
		s.Local[name] = w.Local(p)
	}
	return s
}
