package scenes

import (
	"sync"

	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/systems"
	"github.com/automoto/coffeeon/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// FAQScene is the questions page
type FAQScene struct {
	sceneChanger SceneChanger
	env          *Env
	back         Scene
	faqUI        *ui.FAQUI
	once         sync.Once
	shouldGoBack bool
	toggleLang   bool
}

func NewFAQScene(sc SceneChanger, env *Env, back Scene) *FAQScene {
	return &FAQScene{sceneChanger: sc, env: env, back: back}
}

func (s *FAQScene) Update() {
	s.once.Do(s.configure)

	s.faqUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		s.toggleLang = true
	}
	if s.toggleLang {
		s.toggleLang = false
		systems.ToggleLanguage()
		s.faqUI.Relabel()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.shouldGoBack = true
	}
	if s.shouldGoBack {
		s.sceneChanger.ChangeScene(s.back)
	}
}

func (s *FAQScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Ink)
	if s.faqUI == nil {
		return
	}
	s.faqUI.UI.Draw(screen)
}

func (s *FAQScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (s *FAQScene) configure() {
	s.faqUI = ui.NewFAQUI(
		func() { s.toggleLang = true },
		func() { s.shouldGoBack = true },
	)
}
