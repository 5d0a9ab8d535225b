package responsive

import (
	"sync"
	"time"

	"github.com/automoto/coffeeon/config"
	"github.com/rs/zerolog/log"
)

// Resolver holds the active profile and republishes it only when the
// viewport crosses a breakpoint.
type Resolver struct {
	cfg    config.BreakpointsConfig
	device Device

	mu      sync.RWMutex
	current Profile
	epoch   uint64

	pendingWidth int
	pendingAt    time.Time
	pending      bool

	subs []func(Profile)
}

// NewResolver classifies the initial width and publishes epoch 1
func NewResolver(cfg config.BreakpointsConfig, dev Device, width int) *Resolver {
	r := &Resolver{cfg: cfg, device: dev}
	r.current = ProfileFor(Classify(width, cfg), cfg, dev)
	r.epoch = 1
	return r
}

// Current returns the published profile
func (r *Resolver) Current() Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Epoch increments each time a new profile is published
func (r *Resolver) Epoch() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.epoch
}

// OnChange registers fn to receive newly published profiles
func (r *Resolver) OnChange(fn func(Profile)) {
	r.mu.Lock()
	r.subs = append(r.subs, fn)
	r.mu.Unlock()
}

// Observe classifies width and publishes a new profile if the class changed
func (r *Resolver) Observe(width int) (Profile, bool) {
	bp := Classify(width, r.cfg)

	r.mu.Lock()
	if bp == r.current.Breakpoint {
		p := r.current
		r.mu.Unlock()
		return p, false
	}
	r.current = ProfileFor(bp, r.cfg, r.device)
	r.epoch++
	p, epoch := r.current, r.epoch
	subs := append([]func(Profile){}, r.subs...)
	r.mu.Unlock()

	log.Info().Str("component", "responsive").Stringer("breakpoint", bp).Uint64("epoch", epoch).Int("width", width).Msg("profile changed")
	for _, fn := range subs {
		fn(p)
	}
	return p, true
}

// Resize records a resize without recomputing anything
func (r *Resolver) Resize(width int, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending && r.pendingWidth == width {
		return
	}
	r.pendingWidth = width
	r.pendingAt = now
	r.pending = true
}

// Settle reclassifies once no resize has arrived for SettleDelay
func (r *Resolver) Settle(now time.Time) (Profile, bool) {
	r.mu.Lock()
	if !r.pending || now.Sub(r.pendingAt) < r.cfg.SettleDelay {
		p := r.current
		r.mu.Unlock()
		return p, false
	}
	width := r.pendingWidth
	r.pending = false
	r.mu.Unlock()
	return r.Observe(width)
}
