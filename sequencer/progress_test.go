package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollSourceSmoothsTowardTarget(t *testing.T) {
	s := NewScrollSource(4000, 0.5, 0.5)
	var seen []float64
	unsub := s.OnChange(func(p float64) { seen = append(seen, p) })

	s.ScrollBy(2000)
	assert.Equal(t, 0.0, s.CurrentProgress())
	assert.Equal(t, 0.5, s.TargetProgress())

	for i := 0; i < 100 && s.Tick(); i++ {
	}
	assert.Equal(t, 0.5, s.CurrentProgress())
	require.NotEmpty(t, seen)
	for i := 1; i < len(seen); i++ {
		assert.Greater(t, seen[i], seen[i-1])
	}

	unsub()
	n := len(seen)
	s.Jump(1)
	assert.Len(t, seen, n, "unsubscribed listener is not called")
	assert.Equal(t, 1.0, s.CurrentProgress())
}

func TestScrollSourceClamps(t *testing.T) {
	s := NewScrollSource(1000, 1, 0)
	s.ScrollBy(-50)
	s.Tick()
	assert.Equal(t, 0.0, s.CurrentProgress())
	s.ScrollBy(5000)
	s.Tick()
	assert.Equal(t, 1.0, s.CurrentProgress())
}

func TestStaticSourceNotifiesOnChangeOnly(t *testing.T) {
	var src StaticSource
	calls := 0
	src.OnChange(func(float64) { calls++ })
	src.Set(0.3)
	src.Set(0.3)
	src.Set(2)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1.0, src.CurrentProgress())

	var _ ProgressSource = &src
	var _ ProgressSource = NewScrollSource(1, 1, 0)
}

func TestScrubLerp(t *testing.T) {
	f := ScrubLerp(0.5, 60)
	remaining := 1.0
	for i := 0; i < 30; i++ {
		remaining *= 1 - f
	}
	assert.InDelta(t, 0.05, remaining, 1e-9)
	assert.Equal(t, 1.0, ScrubLerp(0, 60))
}

func TestSetSmoothingTakesEffect(t *testing.T) {
	s := NewScrollSource(1000, 0.1, 0)
	s.SetSmoothing(1)
	s.ScrollBy(500)
	s.Tick()
	assert.Equal(t, 0.5, s.CurrentProgress())
}
