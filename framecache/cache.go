// Package framecache preloads the flipbook frame sequence. A sparse priority
// set loads first and in parallel so the canvas can paint early; the rest of
// the sequence fills in batches.
package framecache

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by Preload once the cache has been closed
var ErrClosed = errors.New("framecache: closed")

type slotState uint8

const (
	slotAbsent slotState = iota
	slotLoading
	slotReady
	slotFailed
)

// Options tune one cache instance
type Options struct {
	Frames      int
	Extensions  []string
	BatchSize   int
	BatchDelay  time.Duration
	MaxAttempts int
	Head        int
	Tail        int
	Percentiles int
	// Concurrency caps parallel decodes per group; 0 means unlimited
	Concurrency int
}

func (o Options) withDefaults() Options {
	if o.BatchSize <= 0 {
		o.BatchSize = 10
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if len(o.Extensions) == 0 {
		o.Extensions = []string{"webp"}
	}
	if o.Head <= 0 {
		o.Head = 3
	}
	if o.Tail <= 0 {
		o.Tail = 3
	}
	if o.Percentiles <= 0 {
		o.Percentiles = 10
	}
	return o
}

// Stats is a point-in-time view of the cache
type Stats struct {
	Total   int
	Ready   int
	Failed  int
	Loading int
}

// Settled returns the number of frames that will not change state again
func (s Stats) Settled() int { return s.Ready + s.Failed }

// Progress returns the settled fraction in [0,1]
func (s Stats) Progress() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Settled()) / float64(s.Total)
}

// Cache holds decoded frames keyed by index.
type Cache struct {
	opts   Options
	loader Loader
	logger zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	states  []slotState
	images  []image.Image
	ready   int
	failed  int
	loading int
	closed  bool

	generation atomic.Uint64

	firstReady chan struct{}
	firstOnce  sync.Once
	allLoaded  chan struct{}
	allOnce    sync.Once

	wg sync.WaitGroup
}

// New creates an empty cache. Nothing loads until Request or Preload.
func New(loader Loader, opts Options) *Cache {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		opts:       opts,
		loader:     loader,
		logger:     log.With().Str("component", "framecache").Logger(),
		ctx:        ctx,
		cancel:     cancel,
		states:     make([]slotState, opts.Frames),
		images:     make([]image.Image, opts.Frames),
		firstReady: make(chan struct{}),
		allLoaded:  make(chan struct{}),
	}
	if opts.Frames == 0 {
		c.signalFirst()
		c.signalAll()
	}
	return c
}

// Len returns the sequence length
func (c *Cache) Len() int { return c.opts.Frames }

// FirstFrameReady is closed once frame 0 has settled
func (c *Cache) FirstFrameReady() <-chan struct{} { return c.firstReady }

// AllLoaded is closed once every frame has settled, loaded or failed
func (c *Cache) AllLoaded() <-chan struct{} { return c.allLoaded }

// IsAllLoaded reports whether AllLoaded has fired
func (c *Cache) IsAllLoaded() bool {
	select {
	case <-c.allLoaded:
		return true
	default:
		return false
	}
}

// Generation increases every time a frame becomes ready
func (c *Cache) Generation() uint64 { return c.generation.Load() }

// Request starts loading index in the background. It is a no-op when the
// index is out of range, already loading, settled, or the cache is closed.
func (c *Cache) Request(index int) {
	if !c.claim(index) {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.load(c.ctx, index)
	}()
}

// IsReady reports whether index holds a decoded frame
func (c *Cache) IsReady(index int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return index >= 0 && index < len(c.states) && c.states[index] == slotReady
}

// IsFailed reports whether index was given up on
func (c *Cache) IsFailed(index int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return index >= 0 && index < len(c.states) && c.states[index] == slotFailed
}

// Get returns the decoded frame at index
func (c *Cache) Get(index int) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index < 0 || index >= len(c.states) || c.states[index] != slotReady {
		return nil, false
	}
	return c.images[index], true
}

// NearestReady returns index itself if ready, otherwise the closest earlier
// ready frame.
func (c *Cache) NearestReady(index int) (image.Image, int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if index >= len(c.states) {
		index = len(c.states) - 1
	}
	for i := index; i >= 0; i-- {
		if c.states[i] == slotReady {
			return c.images[i], i, true
		}
	}
	return nil, -1, false
}

// Stats returns current counters
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Total: len(c.states), Ready: c.ready, Failed: c.failed, Loading: c.loading}
}

// Preload runs the loading policy: the priority set in parallel, then the
// remaining frames in batches separated by BatchDelay. It blocks until all
// frames are settled, ctx is done, or the cache is closed.
func (c *Cache) Preload(ctx context.Context) error {
	c.mu.RLock()
	closed := c.closed
	c.mu.RUnlock()
	if closed {
		return ErrClosed
	}

	ctx, stop := mergeCancel(ctx, c.ctx)
	defer stop()

	priority := PriorityIndices(c.opts.Frames, c.opts.Head, c.opts.Tail, c.opts.Percentiles)
	start := time.Now()
	if err := c.loadGroup(ctx, priority); err != nil {
		return fmt.Errorf("preload priority frames: %w", err)
	}
	c.logger.Debug().Int("frames", len(priority)).Dur("took", time.Since(start)).Msg("priority frames settled")

	for i, batch := range Batches(c.opts.Frames, c.opts.BatchSize, priority) {
		if i > 0 && c.opts.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("preload batch %d: %w", i, ctx.Err())
			case <-time.After(c.opts.BatchDelay):
			}
		}
		if err := c.loadGroup(ctx, batch); err != nil {
			return fmt.Errorf("preload batch %d: %w", i, err)
		}
	}
	c.logger.Info().Interface("stats", c.Stats()).Dur("took", time.Since(start)).Msg("frame sequence loaded")
	return nil
}

// loadGroup loads indices concurrently and waits for all of them. Frames
// already claimed by Request are skipped.
func (c *Cache) loadGroup(ctx context.Context, indices []int) error {
	g, gctx := errgroup.WithContext(ctx)
	if c.opts.Concurrency > 0 {
		g.SetLimit(c.opts.Concurrency)
	}
	for _, idx := range indices {
		if !c.claim(idx) {
			continue
		}
		g.Go(func() error {
			c.load(gctx, idx)
			return gctx.Err()
		})
	}
	return g.Wait()
}

// Close cancels pending decodes. Completions arriving afterwards are
// discarded.
func (c *Cache) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
	return nil
}

// Wait blocks until background requests have returned
func (c *Cache) Wait() { c.wg.Wait() }

func (c *Cache) claim(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || index < 0 || index >= len(c.states) || c.states[index] != slotAbsent {
		return false
	}
	c.states[index] = slotLoading
	c.loading++
	return true
}

func (c *Cache) load(ctx context.Context, index int) {
	var lastErr error
	for attempt, ext := range c.opts.Extensions {
		if attempt >= c.opts.MaxAttempts {
			break
		}
		if ctx.Err() != nil {
			c.release(index)
			return
		}
		img, err := c.loader.Load(ctx, index, ext)
		if err == nil && img != nil {
			c.commit(index, img)
			return
		}
		if err == nil {
			err = fmt.Errorf("frame %d.%s: empty image", index, ext)
		}
		lastErr = err
	}
	if ctx.Err() != nil {
		c.release(index)
		return
	}
	c.fail(index, lastErr)
}

func (c *Cache) commit(index int, img image.Image) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.states[index] = slotReady
	c.images[index] = img
	c.loading--
	c.ready++
	done := c.ready+c.failed == len(c.states)
	c.mu.Unlock()

	c.generation.Add(1)
	if index == 0 {
		c.signalFirst()
	}
	if done {
		c.signalAll()
	}
}

func (c *Cache) fail(index int, err error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.states[index] = slotFailed
	c.loading--
	c.failed++
	done := c.ready+c.failed == len(c.states)
	c.mu.Unlock()

	c.logger.Warn().Err(err).Int("frame", index).Msg("frame unavailable")
	if index == 0 {
		c.signalFirst()
	}
	if done {
		c.signalAll()
	}
}

// release returns a cancelled slot to absent so a later request can retry
func (c *Cache) release(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.states[index] != slotLoading {
		return
	}
	c.states[index] = slotAbsent
	c.loading--
}

func (c *Cache) signalFirst() { c.firstOnce.Do(func() { close(c.firstReady) }) }
func (c *Cache) signalAll()   { c.allOnce.Do(func() { close(c.allLoaded) }) }

// mergeCancel returns a context cancelled when either parent is
func mergeCancel(a, b context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(a)
	stop := context.AfterFunc(b, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
