package sequencer

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInsetClip(t *testing.T) {
	box := image.Rect(100, 50, 500, 250)

	assert.Equal(t, box, Inset{}.Clip(box))
	assert.Equal(t, image.Rect(100, 50, 300, 250), ClipAway(0.5).Clip(box))
	assert.True(t, ClipAway(1).Clip(box).Empty())

	assert.True(t, ClipInFromRight(0).Clip(box).Empty())
	assert.Equal(t, image.Rect(400, 50, 500, 250), ClipInFromRight(0.25).Clip(box))
	assert.Equal(t, box, ClipInFromRight(1).Clip(box))

	assert.Equal(t, image.Rect(100, 200, 500, 250), ClipInUpward(0.25).Clip(box))
	assert.Equal(t, box, Inset{Top: -1, Left: -0.5}.Clip(box), "negative fractions clamp to zero")
	assert.True(t, Inset{Left: 0.6, Right: 0.6}.Clip(box).Empty())
}

func TestStagger(t *testing.T) {
	gap, dur := 80*time.Millisecond, time.Second

	assert.Equal(t, 0.0, Stagger(0, 0, gap, dur))
	assert.InDelta(t, 0.5, Stagger(500*time.Millisecond, 0, gap, dur), 1e-9)
	assert.Equal(t, 0.0, Stagger(80*time.Millisecond, 1, gap, dur), "second line has not started")
	assert.InDelta(t, 0.42, Stagger(500*time.Millisecond, 1, gap, dur), 1e-9)
	assert.Equal(t, 1.0, Stagger(3*time.Second, 2, gap, dur))
	assert.Equal(t, 1.0, Stagger(time.Millisecond, 0, gap, 0))
}
