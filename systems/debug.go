package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/fonts"
	"github.com/automoto/coffeeon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DebugLines describes the sequencer state for the stats overlay
func DebugLines(e *ecs.ECS) []string {
	var lines []string
	if entry, ok := components.Scroll.First(e.World); ok {
		s := components.Scroll.Get(entry)
		snap := s.Snapshot
		lines = append(lines, fmt.Sprintf("progress %.3f  target %d", snap.Progress, snap.TargetFrame))
		if s.Remote != nil {
			lines = append(lines, "remote "+s.Remote.State().String())
		}
		if s.Mapper != nil {
			for _, name := range s.Mapper.Names() {
				lines = append(lines, fmt.Sprintf("  %-8s %.3f", name, snap.Local[name]))
			}
		}
	}
	if entry, ok := components.Canvas.First(e.World); ok {
		c := components.Canvas.Get(entry)
		lines = append(lines, fmt.Sprintf("%s epoch %d  dpr %.2f", c.Profile.Breakpoint, c.Epoch, getViewport(e).DPR))
		lines = append(lines, fmt.Sprintf("cursor %.2f  shown %d", c.Playback.Current, c.Shown))
		if c.Cache != nil {
			st := c.Cache.Stats()
			lines = append(lines, fmt.Sprintf("frames %d/%d  failed %d  loading %d", st.Ready, st.Total, st.Failed, st.Loading))
		}
	}
	return lines
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowStats {
		return
	}

	lines := DebugLines(e)
	face := fonts.Small.Get()
	lineH := face.Metrics().Height.Ceil()
	vector.FillRect(screen, 8, 56, 260, float32(lineH*len(lines)+12), cfg.BlackOverlay, false)
	text.Draw(screen, strings.Join(lines, "\n"), face, 14, 56+lineH, cfg.White)

	// Outline hit-test objects
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvCursor) {
			c = color.RGBA{255, 0, 0, 255}
		}
		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
