package factory

import (
	"github.com/automoto/coffeeon/archetypes"
	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/responsive"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// textureSlots bounds the GPU copies of decoded frames
const textureSlots = 8

// CreateCanvas spawns the canvas entity with playback sized for profile.
// The frame cache is attached by the frames system.
func CreateCanvas(ecs *ecs.ECS, profile responsive.Profile) *donburi.Entry {
	canvas := archetypes.Canvas.Spawn(ecs)
	components.Canvas.SetValue(canvas, components.CanvasData{
		Playback: sequencer.NewPlayback(profile.TotalFrames, profile.EasingFactor, cfg.Renderer.Epsilon),
		Profile:  profile,
		Shown:    -1,
		Textures: components.NewTextureCache(textureSlots),
	})
	return canvas
}
