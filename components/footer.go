package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// FooterData holds the footer QR texture and the current glow strength
type FooterData struct {
	QR   *ebiten.Image
	Glow float64
}

var Footer = donburi.NewComponentType[FooterData]()
