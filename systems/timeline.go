package systems

import (
	"fmt"

	"github.com/automoto/coffeeon/archetypes"
	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/automoto/coffeeon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildTimelines converts configured timelines into sequencer timelines
// whose windows cover their frame ranges of an n-frame sequence.
func BuildTimelines(cfgs []cfg.TimelineConfig, frames int) []sequencer.Timeline {
	out := make([]sequencer.Timeline, 0, len(cfgs))
	for _, tc := range cfgs {
		tl := sequencer.Timeline{
			Name:   tc.Name,
			Window: sequencer.WindowFromFrames(tc.StartFrame, tc.EndFrame, frames),
			Gated:  tc.Gated,
		}
		for _, ic := range tc.Items {
			item := sequencer.Item{Name: ic.Name}
			for _, pc := range ic.Phases {
				phase := sequencer.Phase{Name: pc.Name, Weight: pc.Weight}
				for _, tw := range pc.Props {
					phase.Props = append(phase.Props, sequencer.Tween{Prop: tw.Prop, From: tw.From, To: tw.To, Ease: tw.Ease})
				}
				item.Phases = append(item.Phases, phase)
			}
			tl.Items = append(tl.Items, item)
		}
		out = append(out, tl)
	}
	return out
}

// NewShowcaseMapper registers every configured timeline window
func NewShowcaseMapper(frames int) *sequencer.Mapper {
	m := sequencer.NewMapper(frames)
	for _, tl := range BuildTimelines(cfg.Timelines, frames) {
		m.Register(tl.Name, tl.Window)
	}
	return m
}

// CreateTimelines compiles the configured timelines into entities
func CreateTimelines(e *ecs.ECS, frames int) error {
	for _, tl := range BuildTimelines(cfg.Timelines, frames) {
		track, err := sequencer.Compile(tl)
		if err != nil {
			return fmt.Errorf("compile timeline: %w", err)
		}
		entry := archetypes.Timeline.Spawn(e)
		data := components.TimelineData{Track: track}
		data.States = track.EvaluateLocal(0)
		components.Timeline.SetValue(entry, data)
	}
	return nil
}

// UpdateTimelines evaluates every timeline at this tick's local progress.
// Gated timelines hold short of their end until every frame has settled.
func UpdateTimelines(e *ecs.ECS) {
	scrollEntry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	snap := components.Scroll.Get(scrollEntry).Snapshot
	ready := framesSettled(e)

	tags.Timeline.Each(e.World, func(entry *donburi.Entry) {
		tl := components.Timeline.Get(entry)
		local := snap.Local[tl.Track.Name]
		if tl.Track.Gated {
			local = sequencer.Gate(local, ready, cfg.Renderer.GateThreshold)
		}
		tl.Local = local
		tl.States = tl.Track.EvaluateLocal(local)
	})
}

// findTimeline returns the named timeline's data
func findTimeline(e *ecs.ECS, name string) (*components.TimelineData, bool) {
	var found *components.TimelineData
	tags.Timeline.Each(e.World, func(entry *donburi.Entry) {
		if tl := components.Timeline.Get(entry); found == nil && tl.Track.Name == name {
			found = tl
		}
	})
	return found, found != nil
}

func framesSettled(e *ecs.ECS) bool {
	entry, ok := components.Canvas.First(e.World)
	if !ok {
		return false
	}
	c := components.Canvas.Get(entry)
	return c.Cache != nil && c.Cache.IsAllLoaded()
}
