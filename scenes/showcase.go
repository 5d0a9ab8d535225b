package scenes

import (
	"sync"

	"github.com/automoto/coffeeon/archetypes"
	"github.com/automoto/coffeeon/assets"
	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/responsive"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/automoto/coffeeon/systems"
	"github.com/automoto/coffeeon/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ShowcaseScene is the scroll-driven home page: the frame canvas with its
// timeline layers, the nav bar and the intro overlay.
type ShowcaseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	env          *Env
	once         sync.Once

	width, height int
	dpr           float64
	overlay       *ebiten.Image
}

func NewShowcaseScene(sc SceneChanger, env *Env) *ShowcaseScene {
	return &ShowcaseScene{
		sceneChanger: sc,
		env:          env,
		width:        cfg.C.Width,
		height:       cfg.C.Height,
		dpr:          1,
	}
}

func (s *ShowcaseScene) Update() {
	s.once.Do(s.configure)

	if entry, ok := components.Viewport.First(s.ecs.World); ok {
		vp := components.Viewport.Get(entry)
		vp.Width, vp.Height = s.width, s.height
	}

	s.ecs.Update()

	if entry, ok := components.Viewport.First(s.ecs.World); ok {
		s.dpr = components.Viewport.Get(entry).DPR
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		systems.ToggleLanguage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.ShowStats = !cfg.Debug.ShowStats
	}

	target, ok := systems.TakeNavigation(s.ecs)
	if !ok {
		return
	}
	switch target {
	case components.NavHome:
		if entry, ok := components.Scroll.First(s.ecs.World); ok {
			components.Scroll.Get(entry).Local.ScrollTo(0)
		}
	case components.NavBlog:
		s.sceneChanger.ChangeScene(NewBlogScene(s.sceneChanger, s.env, s))
	case components.NavContact:
		s.sceneChanger.ChangeScene(NewContactScene(s.sceneChanger, s.env, s))
	case components.NavPartner:
		s.sceneChanger.ChangeScene(NewPartnerScene(s.sceneChanger, s.env, s))
	case components.NavFAQ:
		s.sceneChanger.ChangeScene(NewFAQScene(s.sceneChanger, s.env, s))
	}
}

func (s *ShowcaseScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Renderer.Background)
	if s.ecs == nil {
		return
	}
	s.ecs.DrawLayer(cfg.Default, screen)

	// Layers are laid out in CSS pixels and scaled to the backing store
	if s.overlay == nil || s.overlay.Bounds().Dx() != s.width || s.overlay.Bounds().Dy() != s.height {
		if s.overlay != nil {
			s.overlay.Deallocate()
		}
		s.overlay = ebiten.NewImage(s.width, s.height)
	}
	s.overlay.Clear()
	s.ecs.DrawLayer(cfg.LayerUI, s.overlay)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.dpr, s.dpr)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.overlay, op)
}

// Layout records the CSS size and returns the backing size
func (s *ShowcaseScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.width, s.height = max(1, outsideWidth), max(1, outsideHeight)
	w, h, _ := sequencer.BackingSize(s.width, s.height, s.dpr, 0)
	return w, h
}

// Close releases the frame cache
func (s *ShowcaseScene) Close() {
	if s.ecs == nil {
		return
	}
	if entry, ok := components.Canvas.First(s.ecs.World); ok {
		systems.StopFrames(components.Canvas.Get(entry))
	}
}

func (s *ShowcaseScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Warn().Str("component", "showcase").Err(err).Msg("Shaders unavailable, using flat overlays")
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateResponsive)
	e.AddSystem(systems.NewIntroSystem(s.env.Flag))
	e.AddSystem(systems.UpdateScroll)
	e.AddSystem(systems.UpdateFrames)
	e.AddSystem(systems.UpdateTimelines)
	e.AddSystem(systems.UpdateNav)
	e.AddSystem(systems.UpdateFooter)

	e.AddRenderer(cfg.Default, systems.DrawFrames)
	e.AddRenderer(cfg.LayerUI, systems.DrawLayers)
	e.AddRenderer(cfg.LayerUI, systems.DrawNav)
	e.AddRenderer(cfg.LayerUI, systems.DrawIntro)
	e.AddRenderer(cfg.LayerUI, systems.DrawDebug)

	s.ecs = e

	resolver := responsive.NewResolver(cfg.Breakpoints, s.env.Device, s.width)
	vp := archetypes.Viewport.Spawn(e)
	components.Viewport.SetValue(vp, components.ViewportData{
		Width:    s.width,
		Height:   s.height,
		DPR:      1,
		Resolver: resolver,
		Observed: s.width,
	})
	profile := resolver.Current()

	factory.CreateSpace(e, 8192, 4096, 32, 32)
	factory.CreateCanvas(e, profile)

	mapper := systems.NewShowcaseMapper(profile.TotalFrames)
	scroll := archetypes.Scroll.Spawn(e)
	components.Scroll.SetValue(scroll, components.ScrollData{
		Local:    sequencer.NewScrollSource(cfg.Scroll.Distance, cfg.Scroll.Smoothing, cfg.Scroll.Epsilon),
		Remote:   s.env.Remote,
		Mapper:   mapper,
		Snapshot: mapper.Map(0),
		TouchID:  -1,
	})

	if err := systems.CreateTimelines(e, profile.TotalFrames); err != nil {
		log.Error().Str("component", "showcase").Err(err).Msg("Timelines disabled")
	}
	factory.CreateShowcaseLayers(e)
	systems.CreateNav(e)
	factory.CreateFooter(e, cfg.Footer.SiteURL, cfg.Footer.QRSize, cfg.Footer.GlowPeriod)

	intro := archetypes.Intro.Spawn(e)
	if cfg.Debug.SkipIntro {
		components.Intro.SetValue(intro, components.IntroData{Done: true})
	}
}
