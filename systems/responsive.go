package systems

import (
	"time"

	"github.com/automoto/coffeeon/components"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateResponsive feeds window resizes to the resolver and, when a new
// profile is published, rebuilds the frame cache and mapper for it.
func UpdateResponsive(e *ecs.ECS) {
	vpEntry, ok := components.Viewport.First(e.World)
	if !ok {
		return
	}
	vp := components.Viewport.Get(vpEntry)
	if vp.Resolver == nil {
		return
	}

	now := time.Now()
	if vp.Width != vp.Observed {
		vp.Observed = vp.Width
		vp.Resolver.Resize(vp.Width, now)
	}
	vp.Resolver.Settle(now)

	profile := vp.Resolver.Current()
	_, _, vp.DPR = sequencer.BackingSize(vp.Width, vp.Height, ebiten.Monitor().DeviceScaleFactor(), profile.MaxDevicePixelRatio)

	canvasEntry, ok := components.Canvas.First(e.World)
	if !ok {
		return
	}
	c := components.Canvas.Get(canvasEntry)
	epoch := vp.Resolver.Epoch()
	if c.Epoch == epoch {
		return
	}
	StartFrames(c, profile, epoch)

	if scrollEntry, ok := components.Scroll.First(e.World); ok {
		s := components.Scroll.Get(scrollEntry)
		if s.Mapper == nil || s.Mapper.Frames() != profile.TotalFrames {
			s.Mapper = NewShowcaseMapper(profile.TotalFrames)
		}
		s.Local.SetSmoothing(sequencer.ScrubLerp(profile.ScrubSmoothing, ebiten.TPS()))
	}
}
