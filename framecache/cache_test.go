package framecache

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(index int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: uint8(index), A: 255})
	return img
}

type fakeLoader struct {
	mu     sync.Mutex
	calls  map[int][]string
	broken map[int]bool
	// only this extension decodes; empty means any
	good  string
	delay time.Duration
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{calls: make(map[int][]string), broken: make(map[int]bool)}
}

func (f *fakeLoader) Load(ctx context.Context, index int, ext string) (image.Image, error) {
	f.mu.Lock()
	f.calls[index] = append(f.calls[index], ext)
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}
	if f.broken[index] || (f.good != "" && ext != f.good) {
		return nil, errors.New("decode failed")
	}
	return solid(index), nil
}

func (f *fakeLoader) attempts(index int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls[index]...)
}

func TestPriorityIndices(t *testing.T) {
	got := PriorityIndices(688, 3, 3, 10)
	assert.Equal(t, []int{0, 1, 2, 68, 137, 206, 274, 343, 412, 480, 549, 618, 685, 686, 687}, got)

	assert.Equal(t, []int{0, 1}, PriorityIndices(2, 3, 3, 10))
	assert.Nil(t, PriorityIndices(0, 3, 3, 10))
}

func TestBatchesSkipPriority(t *testing.T) {
	b := Batches(10, 3, []int{0, 4, 9})
	assert.Equal(t, [][]int{{1, 2, 3}, {5, 6, 7}, {8}}, b)
}

func TestPreloadLoadsEverything(t *testing.T) {
	fl := newFakeLoader()
	c := New(fl, Options{Frames: 60, Extensions: []string{"webp"}, BatchSize: 7, BatchDelay: time.Millisecond})
	defer c.Close()

	require.NoError(t, c.Preload(context.Background()))

	select {
	case <-c.FirstFrameReady():
	default:
		t.Fatal("first frame signal not fired")
	}
	assert.True(t, c.IsAllLoaded())
	st := c.Stats()
	assert.Equal(t, Stats{Total: 60, Ready: 60}, st)
	assert.Equal(t, 1.0, st.Progress())

	for i := 0; i < 60; i++ {
		require.Len(t, fl.attempts(i), 1, "frame %d loaded once", i)
	}
}

func TestRequestIsIdempotent(t *testing.T) {
	fl := newFakeLoader()
	fl.delay = 5 * time.Millisecond
	c := New(fl, Options{Frames: 10})
	defer c.Close()

	for i := 0; i < 5; i++ {
		c.Request(3)
	}
	c.Wait()
	c.Request(3)
	c.Wait()

	assert.True(t, c.IsReady(3))
	assert.Len(t, fl.attempts(3), 1)
	img, ok := c.Get(3)
	require.True(t, ok)
	assert.NotNil(t, img)

	c.Request(-1)
	c.Request(10)
	c.Wait()
	assert.Equal(t, 1, c.Stats().Ready)
}

func TestFallbackExtensionsAreBounded(t *testing.T) {
	fl := newFakeLoader()
	fl.good = "jpg"
	c := New(fl, Options{Frames: 3, Extensions: []string{"webp", "png", "jpg", "jpeg"}, MaxAttempts: 3})
	defer c.Close()

	c.Request(1)
	c.Wait()
	assert.True(t, c.IsReady(1))
	assert.Equal(t, []string{"webp", "png", "jpg"}, fl.attempts(1))

	fl.good = "jpeg"
	c.Request(2)
	c.Wait()
	assert.True(t, c.IsFailed(2))
	assert.Len(t, fl.attempts(2), 3, "gives up after MaxAttempts")

	// a failed frame is never retried
	c.Request(2)
	c.Wait()
	assert.Len(t, fl.attempts(2), 3)
}

func TestFailedFramesStillCompleteTheSequence(t *testing.T) {
	fl := newFakeLoader()
	fl.broken[5] = true
	fl.broken[6] = true
	c := New(fl, Options{Frames: 10, BatchSize: 4})
	defer c.Close()

	require.NoError(t, c.Preload(context.Background()))
	assert.True(t, c.IsAllLoaded())
	assert.Equal(t, Stats{Total: 10, Ready: 8, Failed: 2}, c.Stats())

	img, idx, ok := c.NearestReady(6)
	require.True(t, ok)
	assert.Equal(t, 4, idx)
	assert.Equal(t, solid(4), img)
}

func TestNearestReadyWithNothingLoaded(t *testing.T) {
	c := New(newFakeLoader(), Options{Frames: 5})
	defer c.Close()
	_, idx, ok := c.NearestReady(3)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestCloseDiscardsPendingDecodes(t *testing.T) {
	var started atomic.Int32
	release := make(chan struct{})
	loader := LoaderFunc(func(ctx context.Context, index int, ext string) (image.Image, error) {
		started.Add(1)
		<-release
		return solid(index), nil
	})
	c := New(loader, Options{Frames: 4})
	c.Request(0)
	c.Request(1)
	require.Eventually(t, func() bool { return started.Load() == 2 }, time.Second, time.Millisecond)

	require.NoError(t, c.Close())
	close(release)
	c.Wait()

	assert.False(t, c.IsReady(0))
	assert.False(t, c.IsReady(1))
	assert.ErrorIs(t, c.Preload(context.Background()), ErrClosed)

	c.Request(2)
	c.Wait()
	assert.Equal(t, 2, int(started.Load()), "closed cache starts nothing")
}

func TestPreloadStopsOnContextCancel(t *testing.T) {
	fl := newFakeLoader()
	fl.delay = 20 * time.Millisecond
	c := New(fl, Options{Frames: 200, BatchSize: 5, BatchDelay: 50 * time.Millisecond})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := c.Preload(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, c.IsAllLoaded())
}
