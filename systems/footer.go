package systems

import (
	"image"

	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/fonts"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/automoto/coffeeon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// footerHeight is the footer panel height as a fraction of the viewport
const footerHeight = 0.42

// UpdateFooter advances the QR glow, restarting it at the end of each cycle
func UpdateFooter(e *ecs.ECS) {
	entry, ok := tags.Footer.First(e.World)
	if !ok {
		return
	}
	seq := components.Tween.Get(entry)
	v, finished, _ := seq.Update(float32(1.0 / float64(ebiten.TPS())))
	if finished {
		seq.Reset()
	}
	components.Footer.Get(entry).Glow = float64(v)
}

// FooterRect returns the visible footer area for a clip fraction and
// vertical offset in a w×h viewport.
func FooterRect(w, h int, clip, offsetY float64) image.Rectangle {
	panel := float64(h) * footerHeight
	top := float64(h) - panel*sequencer.Clamp01(clip) + offsetY
	return image.Rect(0, int(top), w, h)
}

func drawFooter(e *ecs.ECS, screen *ebiten.Image, l *components.LayerData, st sequencer.ItemState) {
	a := st.Value(cfg.PropOpacity, 0)
	clip := st.Value(cfg.PropClip, 0)
	if a < minVisible || clip <= 0 {
		return
	}
	b := screen.Bounds()
	offsetY := st.Value(cfg.PropY, 0)
	area := FooterRect(b.Dx(), b.Dy(), clip, offsetY)
	if area.Empty() {
		return
	}
	sub := screen.SubImage(area).(*ebiten.Image)

	w, h := float64(b.Dx()), float64(b.Dy())
	top := h - h*footerHeight + offsetY
	vector.FillRect(sub, 0, float32(area.Min.Y), float32(w), float32(area.Dy()), withAlpha(cfg.Ink, a), false)
	vector.FillRect(sub, 0, float32(area.Min.Y), float32(w), 2, withAlpha(cfg.Amber, a), false)

	strs := cfg.Text()
	face := l.Font.Get()
	x := int(w * 0.08)
	y := int(top + h*0.12)
	text.Draw(sub, strs.FooterLead, face, x, y, withAlpha(l.Color, a))
	lead := font.MeasureString(face, strs.FooterLead).Ceil()
	text.Draw(sub, strs.FooterEmph, face, x+lead, y, withAlpha(cfg.Amber, a))

	small := fonts.Small.Get()
	text.Draw(sub, cfg.Footer.InfoEmail, fonts.Body.Get(), x, y+48, withAlpha(l.Color, a))
	text.Draw(sub, strs.SiteBy, small, x, int(h)-16+int(offsetY), withAlpha(cfg.Grey, a))

	entry, ok := tags.Footer.First(e.World)
	if !ok {
		return
	}
	fd := components.Footer.Get(entry)
	if fd.QR == nil {
		return
	}
	qb := fd.QR.Bounds()
	qx := w*0.92 - float64(qb.Dx())
	qy := top + h*0.06
	pad := float32(6)
	vector.FillRect(sub, float32(qx)-pad, float32(qy)-pad, float32(qb.Dx())+2*pad, float32(qb.Dy())+2*pad,
		withAlpha(cfg.Amber, a*(0.25+0.75*fd.Glow)), false)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(qx, qy)
	op.ColorScale.ScaleAlpha(float32(a))
	sub.DrawImage(fd.QR, op)
	text.Draw(sub, cfg.Footer.SiteURL, small, int(qx), int(qy)+qb.Dy()+int(pad)+14, withAlpha(l.Color, a))
}
