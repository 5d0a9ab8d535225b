package scenes

import (
	"github.com/automoto/coffeeon/blog"
	"github.com/automoto/coffeeon/contact"
	"github.com/automoto/coffeeon/network"
	"github.com/automoto/coffeeon/responsive"
	"github.com/automoto/coffeeon/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Scene is a screen the game can switch to
type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// Env carries the services scenes share
type Env struct {
	Flag    systems.IntroFlag
	Blog    *blog.Client
	Contact *contact.Client
	Remote  *network.ProgressClient // nil unless a remote feed is configured
	Device  responsive.Device
}
