package scenes

import (
	"context"
	"sync"

	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/contact"
	"github.com/automoto/coffeeon/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// ContactScene is the contact form. Messages go to the site API relay.
type ContactScene struct {
	sceneChanger SceneChanger
	env          *Env
	back         Scene
	contactUI    *ui.ContactUI
	once         sync.Once
	shouldGoBack bool
	sending      bool

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sendErr  error
	sendDone bool
}

func NewContactScene(sc SceneChanger, env *Env, back Scene) *ContactScene {
	return &ContactScene{sceneChanger: sc, env: env, back: back}
}

func (s *ContactScene) Update() {
	s.once.Do(s.configure)

	s.contactUI.Update()

	// Apply the send result on the main goroutine
	s.mu.Lock()
	if s.sendDone {
		err := s.sendErr
		s.sendDone = false
		s.sendErr = nil
		s.mu.Unlock()

		s.sending = false
		s.contactUI.SetSending(false)
		s.contactUI.ShowResult(err == nil)
	} else {
		s.mu.Unlock()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.shouldGoBack = true
	}
	if s.shouldGoBack {
		s.cancel()
		s.sceneChanger.ChangeScene(s.back)
	}
}

func (s *ContactScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Ink)
	if s.contactUI == nil {
		return
	}
	s.contactUI.UI.Draw(screen)
}

func (s *ContactScene) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (s *ContactScene) configure() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.contactUI = ui.NewContactUI(
		func(msg contact.Message) { s.onSend(msg) },
		func() { s.shouldGoBack = true },
	)
}

func (s *ContactScene) onSend(msg contact.Message) {
	if s.sending {
		return
	}
	if err := msg.Validate(); err != nil {
		log.Debug().Str("component", "contact").Err(err).Msg("Form incomplete")
		s.contactUI.ShowResult(false)
		return
	}

	s.sending = true
	s.contactUI.SetSending(true)
	go func() {
		ctx, cancel := context.WithTimeout(s.ctx, cfg.Network.HTTPTimeout)
		defer cancel()
		err := s.env.Contact.Send(ctx, msg)
		if err != nil {
			log.Warn().Str("component", "contact").Err(err).Msg("Message not sent")
		}
		s.mu.Lock()
		s.sendErr = err
		s.sendDone = true
		s.mu.Unlock()
	}()
}
