package responsive

import (
	"testing"
	"time"

	"github.com/automoto/coffeeon/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var desktopHost = Device{MemoryBytes: 16 << 30, CPUs: 8}

func TestClassify(t *testing.T) {
	cfg := config.Breakpoints
	tests := []struct {
		width int
		want  Breakpoint
	}{
		{320, Mobile},
		{767, Mobile},
		{768, Tablet},
		{1023, Tablet},
		{1024, Desktop},
		{2560, Desktop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.width, cfg), "width=%d", tt.width)
	}
}

func TestProfileFor(t *testing.T) {
	cfg := config.Breakpoints

	m := ProfileFor(Mobile, cfg, desktopHost)
	assert.Equal(t, "webp", m.AssetBasePath)
	assert.Equal(t, 10, m.LoadBatchSize)
	assert.Equal(t, 1.5, m.MaxDevicePixelRatio)
	assert.False(t, m.LowEnd)

	d := ProfileFor(Desktop, cfg, desktopHost)
	assert.Equal(t, "images-webp", d.AssetBasePath)
	assert.Equal(t, 688, d.TotalFrames)
	assert.Equal(t, []string{"webp", "png", "jpg", "jpeg"}, d.Extensions)
}

func TestLowEndDegradesProfile(t *testing.T) {
	cfg := config.Breakpoints
	for _, dev := range []Device{{MemoryBytes: 2 << 30, CPUs: 8}, {MemoryBytes: 8 << 30, CPUs: 2}} {
		p := ProfileFor(Desktop, cfg, dev)
		assert.True(t, p.LowEnd)
		assert.Equal(t, 10, p.LoadBatchSize)
		assert.Equal(t, 1.0, p.MaxDevicePixelRatio)
		assert.Equal(t, 60*time.Millisecond, p.BatchDelay)
	}

	p := ProfileFor(Mobile, cfg, Device{CPUs: 1})
	assert.Equal(t, 5, p.LoadBatchSize)

	assert.False(t, Device{}.IsLowEnd(cfg), "unknown hardware is not low-end")
}

func TestObservePublishesOnlyOnClassChange(t *testing.T) {
	r := NewResolver(config.Breakpoints, desktopHost, 1280)
	require.Equal(t, Desktop, r.Current().Breakpoint)
	require.Equal(t, uint64(1), r.Epoch())

	var published []Breakpoint
	r.OnChange(func(p Profile) { published = append(published, p.Breakpoint) })

	for w := 1280; w >= 1024; w-- {
		_, changed := r.Observe(w)
		require.False(t, changed, "width=%d", w)
	}
	assert.Equal(t, uint64(1), r.Epoch())

	p, changed := r.Observe(1000)
	assert.True(t, changed)
	assert.Equal(t, Tablet, p.Breakpoint)

	r.Observe(900)
	r.Observe(500)
	assert.Equal(t, []Breakpoint{Tablet, Mobile}, published)
	assert.Equal(t, uint64(3), r.Epoch())
}

func TestResizeSettlesAfterDelay(t *testing.T) {
	r := NewResolver(config.Breakpoints, desktopHost, 1280)
	t0 := time.Unix(0, 0)

	r.Resize(900, t0)
	r.Resize(700, t0.Add(50*time.Millisecond))

	_, changed := r.Settle(t0.Add(200 * time.Millisecond))
	assert.False(t, changed, "still inside the debounce window")
	assert.Equal(t, Desktop, r.Current().Breakpoint)

	p, changed := r.Settle(t0.Add(260 * time.Millisecond))
	assert.True(t, changed)
	assert.Equal(t, Mobile, p.Breakpoint)

	_, changed = r.Settle(t0.Add(time.Second))
	assert.False(t, changed, "nothing pending")
}
