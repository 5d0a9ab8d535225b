package factory

import (
	"image/color"

	"github.com/automoto/coffeeon/archetypes"
	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/fonts"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLayer(ecs *ecs.ECS, layer components.LayerData) *donburi.Entry {
	entry := archetypes.Layer.Spawn(ecs)
	components.Layer.SetValue(entry, layer)
	return entry
}

func CreateCard(ecs *ecs.ECS, index int) *donburi.Entry {
	entry := archetypes.Card.Spawn(ecs)
	components.Layer.SetValue(entry, components.LayerData{
		Kind:     components.LayerCard,
		Timeline: cfg.TimelineCards,
		Item:     "track",
		Index:    index,
		Order:    20,
	})
	return entry
}

func textLayer(timeline, item string, font fonts.FontName, c color.RGBA, ax, ay float64, text func() string) components.LayerData {
	return components.LayerData{
		Kind:     components.LayerText,
		Timeline: timeline,
		Item:     item,
		Text:     text,
		Font:     font,
		Color:    c,
		AnchorX:  ax,
		AnchorY:  ay,
		Order:    30,
	}
}

// CreateShowcaseLayers spawns every layer animated by the showcase timelines
func CreateShowcaseLayers(ecs *ecs.ECS) {
	CreateLayer(ecs, components.LayerData{
		Kind: components.LayerOverlay, Timeline: cfg.TimelineIntro, Item: "overlay", Color: cfg.Ink, Order: 10,
	})
	CreateLayer(ecs, textLayer(cfg.TimelineIntro, "title1", fonts.Display, cfg.White, 0.5, 0.42,
		func() string { return cfg.Text().IntroTitle1 }))
	CreateLayer(ecs, textLayer(cfg.TimelineIntro, "title2", fonts.Title, cfg.Amber, 0.5, 0.56,
		func() string { return cfg.Text().IntroTitle2 }))

	for i := 0; i < 6; i++ {
		CreateLayer(ecs, textLayer(cfg.TimelineMessages, messageItem(i), fonts.Title, cfg.White, 0.5, 0.5,
			func() string {
				msgs := cfg.Text().Messages
				if i >= len(msgs) {
					return ""
				}
				return msgs[i]
			}))
	}

	CreateLayer(ecs, textLayer(cfg.TimelineCards, "track", fonts.Bold, cfg.White, 0.5, 0.2,
		func() string { return cfg.Text().CardsTitle }))
	for i := range cfg.CardParallax {
		CreateCard(ecs, i)
	}

	CreateLayer(ecs, components.LayerData{
		Kind: components.LayerVignette, Timeline: cfg.TimelineOutro, Item: "overlay", Color: cfg.Ink, Order: 40,
	})
	CreateLayer(ecs, components.LayerData{
		Kind: components.LayerOutro, Timeline: cfg.TimelineOutro, Item: "title", Font: fonts.Display,
		Color: cfg.White, AnchorX: 0.5, AnchorY: 0.5, Order: 50,
	})
	CreateLayer(ecs, components.LayerData{
		Kind: components.LayerFooter, Timeline: cfg.TimelineFooter, Item: "footer", Font: fonts.Title,
		Color: cfg.White, Order: 60,
	})
}

func messageItem(i int) string {
	return "msg" + string(rune('0'+i))
}
