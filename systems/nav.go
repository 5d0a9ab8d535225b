package systems

import (
	"image"

	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/fonts"
	"github.com/automoto/coffeeon/systems/factory"
	"github.com/automoto/coffeeon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var navCursor *resolv.Object

// CreateNav spawns the navigation links
func CreateNav(e *ecs.ECS) {
	link := func(i int) func() string {
		return func() string {
			if links := cfg.Text().NavLinks; i < len(links) {
				return links[i]
			}
			return ""
		}
	}
	factory.CreateNavLink(e, components.NavHome, link(0), tags.ResolvNav)
	factory.CreateNavLink(e, components.NavBlog, link(1), tags.ResolvNav)
	factory.CreateNavLink(e, components.NavContact, link(2), tags.ResolvNav)
	factory.CreateNavLink(e, components.NavPartner, link(3), tags.ResolvNav)
	factory.CreateNavLink(e, components.NavFAQ, link(4), tags.ResolvNav)
	factory.CreateNavLink(e, components.NavLanguage, func() string { return cfg.CurrentLang.Toggle().String() }, tags.ResolvNav)
	navCursor = factory.CreateCursor(e)
}

// LayoutNav places links of the given widths in a bar across a
// viewportW-wide screen. Links are right-aligned, or left-aligned when rtl.
func LayoutNav(widths []int, viewportW int, rtl bool) []image.Rectangle {
	n := cfg.Nav
	out := make([]image.Rectangle, len(widths))
	h := int(n.Height)
	if rtl {
		x := int(n.Padding)
		for i, w := range widths {
			out[i] = image.Rect(x, 0, x+w, h)
			x += w + int(n.Spacing)
		}
		return out
	}
	x := viewportW - int(n.Padding)
	for i := len(widths) - 1; i >= 0; i-- {
		out[i] = image.Rect(x-widths[i], 0, x, h)
		x -= widths[i] + int(n.Spacing)
	}
	return out
}

// UpdateNav lays out the links, tracks hover and records clicks. The
// language link toggles and saves the display language directly.
func UpdateNav(e *ecs.ECS) {
	vp := getViewport(e)
	face := fonts.Body.Get()

	var entries []*donburi.Entry
	var widths []int
	tags.NavLink.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
		widths = append(widths, font.MeasureString(face, components.NavLink.Get(entry).Label()).Ceil())
	})
	rects := LayoutNav(widths, vp.Width, cfg.CurrentLang.RTL())
	for i, entry := range entries {
		obj := components.Object.Get(entry)
		r := rects[i]
		obj.X, obj.Y = float64(r.Min.X), float64(r.Min.Y)
		obj.W, obj.H = float64(r.Dx()), float64(r.Dy())
		obj.SetShape(resolv.NewRectangle(0, 0, obj.W, obj.H))
		obj.Update()
		components.NavLink.Get(entry).Hovered = false
	}

	if navCursor == nil || IntroActive(e) {
		return
	}
	mx, my := ebiten.CursorPosition()
	dpr := vp.DPR
	if dpr <= 0 {
		dpr = 1
	}
	navCursor.X, navCursor.Y = float64(mx)/dpr, float64(my)/dpr
	navCursor.Update()

	check := navCursor.Check(0, 0, tags.ResolvNav)
	if check == nil {
		return
	}
	objs := check.ObjectsByTags(tags.ResolvNav)
	if len(objs) == 0 {
		return
	}
	entry, ok := objs[0].Data.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return
	}
	link := components.NavLink.Get(entry)
	link.Hovered = true
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}

	if link.Target == components.NavLanguage {
		ToggleLanguage()
		return
	}
	state := getOrCreateNavState(e)
	state.Pending = link.Target
	state.Activated = true
}

// ToggleLanguage switches the display language and persists it
func ToggleLanguage() {
	cfg.CurrentLang = cfg.CurrentLang.Toggle()
	if err := SavePreferences(SavedPreferences{Lang: cfg.CurrentLang.String()}); err != nil {
		log.Warn().Str("component", "nav").Err(err).Msg("Could not save language")
	}
}

// TakeNavigation returns and clears the last activated link target
func TakeNavigation(e *ecs.ECS) (components.NavTarget, bool) {
	state := getOrCreateNavState(e)
	if !state.Activated {
		return 0, false
	}
	state.Activated = false
	return state.Pending, true
}

// DrawNav renders the navigation bar in CSS pixels
func DrawNav(e *ecs.ECS, screen *ebiten.Image) {
	if IntroActive(e) {
		return
	}
	n := cfg.Nav
	w := float32(screen.Bounds().Dx())
	vector.FillRect(screen, 0, 0, w, float32(n.Height), cfg.BlackOverlay, false)

	face := fonts.Body.Get()
	baseline := int(n.Height)/2 + face.Metrics().Ascent.Ceil()/2
	tags.NavLink.Each(e.World, func(entry *donburi.Entry) {
		link := components.NavLink.Get(entry)
		obj := components.Object.Get(entry)
		c := n.TextColor
		if link.Hovered {
			c = n.HoverText
		}
		text.Draw(screen, link.Label(), face, int(obj.X), baseline, c)
	})
	text.Draw(screen, "CoffeeOn", fonts.Bold.Get(), int(n.Padding)+rtlShift(screen), baseline, cfg.Amber)
}

// rtlShift moves the wordmark to the right edge for right-to-left layouts
func rtlShift(screen *ebiten.Image) int {
	if !cfg.CurrentLang.RTL() {
		return 0
	}
	return screen.Bounds().Dx() - 2*int(cfg.Nav.Padding) - font.MeasureString(fonts.Bold.Get(), "CoffeeOn").Ceil()
}

// getOrCreateNavState returns the singleton NavState component
func getOrCreateNavState(e *ecs.ECS) *components.NavStateData {
	entry, ok := components.NavState.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.NavState))
		components.NavState.SetValue(entry, components.NavStateData{})
	}
	return components.NavState.Get(entry)
}
