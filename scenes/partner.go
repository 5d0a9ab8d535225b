package scenes

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/framecache"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/automoto/coffeeon/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// PartnerScene is the pinned partner pitch. Scrolling plays the partner
// timeline: the title grows away, the paragraph rises, then the card stack
// swaps through its layers.
type PartnerScene struct {
	sceneChanger SceneChanger
	env          *Env
	back         Scene
	once         sync.Once

	track    *sequencer.Track
	scroll   components.ScrollData
	images   *framecache.Cache
	textures *components.TextureCache
	opened   time.Time
	cancel   context.CancelFunc
}

func NewPartnerScene(sc SceneChanger, env *Env, back Scene) *PartnerScene {
	return &PartnerScene{sceneChanger: sc, env: env, back: back}
}

func (s *PartnerScene) Update() {
	s.once.Do(s.configure)

	systems.ReadScrollInput(&s.scroll)
	s.scroll.Local.Tick()

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		systems.ToggleLanguage()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Close()
		s.sceneChanger.ChangeScene(s.back)
	}
}

func (s *PartnerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Ink)
	if s.track == nil {
		return
	}
	systems.DrawPartner(screen, systems.PartnerView{
		States:  s.track.EvaluateLocal(s.scroll.Local.CurrentProgress()),
		Elapsed: time.Since(s.opened),
		Image:   s.image,
	})
}

func (s *PartnerScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Close stops image loading and drops GPU copies
func (s *PartnerScene) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	if s.images != nil {
		if err := s.images.Close(); err != nil {
			log.Warn().Str("component", "partner").Err(err).Msg("Closing partner images")
		}
	}
	if s.textures != nil {
		s.textures.Clear()
	}
}

func (s *PartnerScene) configure() {
	logger := log.With().Str("component", "partner").Logger()

	track, err := systems.PartnerTrack()
	if err != nil {
		logger.Error().Err(err).Msg("Partner timeline disabled")
	}
	s.track = track
	s.scroll = components.ScrollData{
		Local:   sequencer.NewScrollSource(cfg.Partner.Distance, cfg.Scroll.Smoothing, cfg.Scroll.Epsilon),
		TouchID: -1,
	}
	s.opened = time.Now()

	s.images = framecache.New(
		framecache.NewDirLoader(cfg.FrameCache.AssetRoot, cfg.Partner.ImageBase),
		framecache.Options{
			Frames:      cfg.Partner.Images,
			Extensions:  cfg.Partner.Extensions,
			MaxAttempts: cfg.FrameCache.MaxAttempts,
		},
	)
	s.textures = components.NewTextureCache(cfg.Partner.Images)

	var ctx context.Context
	ctx, s.cancel = context.WithCancel(context.Background())
	images := s.images
	go func() {
		err := images.Preload(ctx)
		switch {
		case err == nil, errors.Is(err, framecache.ErrClosed), errors.Is(err, context.Canceled):
		default:
			logger.Warn().Err(err).Msg("Partner images unavailable")
		}
	}()
}

// image returns the GPU copy of partner image i once it has loaded
func (s *PartnerScene) image(i int) *ebiten.Image {
	if tex, ok := s.textures.Get(i); ok {
		return tex
	}
	img, ok := s.images.Get(i)
	if !ok {
		return nil
	}
	tex := ebiten.NewImageFromImage(img)
	s.textures.Put(i, tex)
	return tex
}
