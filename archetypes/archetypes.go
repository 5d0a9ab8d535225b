package archetypes

import (
	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Canvas = newArchetype(
		tags.Canvas,
		components.Canvas,
	)
	Scroll = newArchetype(
		components.Scroll,
	)
	Viewport = newArchetype(
		components.Viewport,
	)
	Timeline = newArchetype(
		tags.Timeline,
		components.Timeline,
	)
	Layer = newArchetype(
		tags.Layer,
		components.Layer,
	)
	Card = newArchetype(
		tags.Card,
		components.Layer,
	)
	NavLink = newArchetype(
		tags.NavLink,
		components.NavLink,
		components.Object,
	)
	Footer = newArchetype(
		tags.Footer,
		components.Footer,
		components.Tween,
	)
	Intro = newArchetype(
		components.Intro,
	)
	Space = newArchetype(
		components.Space,
	)
	NavState = newArchetype(
		components.NavState,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
