package factory

import (
	"github.com/automoto/coffeeon/archetypes"
	"github.com/automoto/coffeeon/components"
	"github.com/automoto/coffeeon/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateNavLink spawns a clickable link. Its bounds are laid out each tick
// by the nav system.
func CreateNavLink(ecs *ecs.ECS, target components.NavTarget, label func() string, resolvTag string) *donburi.Entry {
	link := archetypes.NavLink.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, resolvTag)
	obj.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	obj.Data = link // Link for O(1) lookup

	components.Object.SetValue(link, components.ObjectData{Object: obj})
	components.NavLink.SetValue(link, components.NavLinkData{Target: target, Label: label})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return link
}

// CreateCursor spawns the pointer entity used for hit-testing
func CreateCursor(ecs *ecs.ECS) *resolv.Object {
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	obj.SetShape(resolv.NewRectangle(0, 0, 1, 1))
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
