package systems

import (
	"context"
	"errors"

	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/framecache"
	"github.com/automoto/coffeeon/responsive"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
)

// FrameLoader builds the loader for a profile's asset base path
var FrameLoader = func(p responsive.Profile) framecache.Loader {
	return framecache.NewDirLoader(cfg.FrameCache.AssetRoot, p.AssetBasePath)
}

// CacheOptions derives frame cache options from a profile
func CacheOptions(p responsive.Profile) framecache.Options {
	return framecache.Options{
		Frames:      p.TotalFrames,
		Extensions:  p.Extensions,
		BatchSize:   p.LoadBatchSize,
		BatchDelay:  p.BatchDelay,
		MaxAttempts: cfg.FrameCache.MaxAttempts,
		Head:        cfg.FrameCache.HeadCount,
		Tail:        cfg.FrameCache.TailCount,
		Percentiles: cfg.FrameCache.Percentiles,
	}
}

// StartFrames replaces the canvas frame cache with one for profile and
// starts preloading it in the background.
func StartFrames(c *components.CanvasData, profile responsive.Profile, epoch uint64) {
	StopFrames(c)

	c.Profile = profile
	c.Epoch = epoch
	c.Cache = framecache.New(FrameLoader(profile), CacheOptions(profile))
	c.Playback.Configure(profile.TotalFrames, profile.EasingFactor)
	c.Shown = -1
	c.Generation = 0
	c.Holding = c.FirstPaint

	logger := log.With().Str("component", "frames").Uint64("epoch", epoch).Logger()
	logger.Info().
		Str("breakpoint", profile.Breakpoint.String()).
		Str("base", profile.AssetBasePath).
		Int("frames", profile.TotalFrames).
		Bool("low_end", profile.LowEnd).
		Msg("Loading frame sequence")

	cache := c.Cache
	go func() {
		err := cache.Preload(context.Background())
		switch {
		case errors.Is(err, framecache.ErrClosed):
			return
		case err != nil:
			logger.Error().Err(err).Msg("Frame preload stopped")
		default:
			st := cache.Stats()
			logger.Info().Int("ready", st.Ready).Int("failed", st.Failed).Msg("Frame sequence loaded")
		}
	}()
}

// StopFrames cancels pending decodes and drops GPU copies
func StopFrames(c *components.CanvasData) {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Str("component", "frames").Err(err).Msg("Closing frame cache")
		}
		c.Cache = nil
	}
	if c.Textures != nil {
		c.Textures.Clear()
	}
}

// UpdateFrames advances the playback cursor toward the mapped target and
// redraws the canvas surface only when the shown frame changes.
func UpdateFrames(e *ecs.ECS) {
	entry, ok := components.Canvas.First(e.World)
	if !ok {
		return
	}
	c := components.Canvas.Get(entry)
	if c.Cache == nil {
		return
	}
	vp := getViewport(e)

	if scrollEntry, ok := components.Scroll.First(e.World); ok {
		c.Playback.Retarget(components.Scroll.Get(scrollEntry).Snapshot.TargetFrame)
	}

	live := settleFirstFrame(c)
	if c.FirstPaint && c.FadeTicks < cfg.Renderer.FadeInFrames {
		c.FadeTicks++
	}

	ensureSurface(c, vp)
	if !live {
		return
	}

	// A substitute is on screen and a closer frame has since decoded
	if gen := c.Cache.Generation(); gen != c.Generation {
		c.Generation = gen
		if last := c.Playback.LastDrawn(); last >= 0 {
			if _, idx, ok := c.Cache.NearestReady(last); ok && idx != c.Shown {
				c.Playback.Invalidate()
			}
		}
	}

	frame, draw := c.Playback.Tick()
	if !draw {
		return
	}
	drawFrame(c, frame)
	c.Playback.MarkDrawn(frame)
}

// settleFirstFrame notes the cache's first frame. It reports false while a
// replacement sequence has nothing to show, so the previous picture stays up.
func settleFirstFrame(c *components.CanvasData) bool {
	if c.FirstPaint && !c.Holding {
		return true
	}
	select {
	case <-c.Cache.FirstFrameReady():
		c.FirstPaint = true
		if c.Holding {
			c.Holding = false
			c.Playback.Invalidate()
		}
		return true
	default:
		return !c.Holding
	}
}

func ensureSurface(c *components.CanvasData, vp components.ViewportData) {
	w, h := vp.BackingSize()
	if w <= 0 || h <= 0 {
		return
	}
	old := c.Surface
	if old != nil && old.Bounds().Dx() == w && old.Bounds().Dy() == h {
		return
	}
	next := ebiten.NewImage(w, h)
	if old != nil {
		b := old.Bounds()
		// Stretch the old picture until the next draw replaces it
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
		op.Filter = ebiten.FilterLinear
		next.DrawImage(old, op)
		old.Deallocate()
	}
	c.Surface = next
	c.Playback.Invalidate()
}

// drawFrame paints frame, or the nearest earlier ready frame, onto the
// surface with cover fit. With nothing ready the surface is cleared.
func drawFrame(c *components.CanvasData, frame int) {
	if c.Surface == nil {
		return
	}
	if !c.Cache.IsReady(frame) {
		c.Cache.Request(frame)
	}

	c.Surface.Fill(cfg.Renderer.Background)
	img, idx, ok := c.Cache.NearestReady(frame)
	if !ok {
		c.Shown = -1
		return
	}

	tex, ok := c.Textures.Get(idx)
	if !ok {
		tex = ebiten.NewImageFromImage(img)
		c.Textures.Put(idx, tex)
	}

	sb, ib := c.Surface.Bounds(), tex.Bounds()
	pl := sequencer.CoverFit(float64(sb.Dx()), float64(sb.Dy()), float64(ib.Dx()), float64(ib.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pl.Scale, pl.Scale)
	op.GeoM.Translate(pl.OffsetX, pl.OffsetY)
	op.Filter = ebiten.FilterLinear
	c.Surface.DrawImage(tex, op)
	c.Shown = idx
}

// DrawFrames puts the canvas surface on screen, fading it in after the
// first frame arrives.
func DrawFrames(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Renderer.Background)
	entry, ok := components.Canvas.First(e.World)
	if !ok {
		return
	}
	c := components.Canvas.Get(entry)
	if c.Surface == nil || !c.FirstPaint {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(fadeIn(c.FadeTicks, cfg.Renderer.FadeInFrames)))
	screen.DrawImage(c.Surface, op)
}

func fadeIn(ticks, total int) float64 {
	if total <= 0 || ticks >= total {
		return 1
	}
	return float64(ticks) / float64(total)
}

// getViewport returns the viewport singleton, or the configured window
// size before the first layout.
func getViewport(e *ecs.ECS) components.ViewportData {
	if entry, ok := components.Viewport.First(e.World); ok {
		return *components.Viewport.Get(entry)
	}
	return components.ViewportData{Width: cfg.C.Width, Height: cfg.C.Height, DPR: 1}
}
