package factory

import (
	"github.com/automoto/coffeeon/archetypes"
	"github.com/automoto/coffeeon/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFooter spawns the footer with a QR code for url and its glow tween
func CreateFooter(ecs *ecs.ECS, url string, qrSize int, glowPeriod float64) *donburi.Entry {
	footer := archetypes.Footer.Spawn(ecs)

	data := components.FooterData{}
	if qr, err := qrcode.New(url, qrcode.Medium); err != nil {
		log.Warn().Str("component", "footer").Err(err).Msg("QR code unavailable")
	} else {
		qr.DisableBorder = true
		data.QR = ebiten.NewImageFromImage(qr.Image(qrSize))
	}
	components.Footer.SetValue(footer, data)

	// The glow moves using a *gween.Sequence of tweens, pulsing back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, float32(glowPeriod), ease.InOutSine),
		gween.New(1, 0, float32(glowPeriod), ease.InOutSine),
	)
	components.Tween.Set(footer, tw)

	return footer
}
