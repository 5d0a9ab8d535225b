package systems

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/fonts"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	featureFill = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	featureDesc = color.RGBA{R: 209, G: 213, B: 219, A: 255}
)

// PartnerView is what one frame of the partner page is drawn from
type PartnerView struct {
	States  []sequencer.ItemState
	Elapsed time.Duration             // Since the page opened; drives the title line rises
	Image   func(i int) *ebiten.Image // Returns nil while image i loads
}

// PartnerTrack compiles the configured partner timeline
func PartnerTrack() (*sequencer.Track, error) {
	tls := BuildTimelines([]cfg.TimelineConfig{cfg.PartnerTimeline}, 2)
	track, err := sequencer.Compile(tls[0])
	if err != nil {
		return nil, fmt.Errorf("compile partner timeline: %w", err)
	}
	return track, nil
}

// StageRect places the card stack in a w×h screen: 80% of the width,
// centered, its bottom 5% above the screen's. height is a fraction of the
// screen height; y and scale move it about its center.
func StageRect(w, h int, height, y, scale float64) image.Rectangle {
	sw := float64(w) * 0.8 * scale
	sh := float64(h) * height * scale
	cx := float64(w) / 2
	cy := float64(h)*0.95 - float64(h)*height/2 + y
	return image.Rect(int(cx-sw/2), int(cy-sh/2), int(cx+sw/2), int(cy+sh/2))
}

// GridColumns picks how many columns of cards fit a width, up to most
func GridColumns(width, most int) int {
	cols := 1
	switch {
	case width >= 1000:
		cols = 4
	case width >= 600:
		cols = 2
	}
	return max(1, min(cols, most))
}

// GridCells splits area into n cells laid out in rows of cols, gap apart
func GridCells(area image.Rectangle, n, cols, gap int) []image.Rectangle {
	if n <= 0 || cols <= 0 {
		return nil
	}
	rows := (n + cols - 1) / cols
	cw := (area.Dx() - (cols-1)*gap) / cols
	ch := (area.Dy() - (rows-1)*gap) / rows
	out := make([]image.Rectangle, n)
	for i := range out {
		x := area.Min.X + (i%cols)*(cw+gap)
		y := area.Min.Y + (i/cols)*(ch+gap)
		out[i] = image.Rect(x, y, x+cw, y+ch)
	}
	return out
}

// WrapText breaks s into lines no wider than maxW. A word wider than maxW
// gets a line of its own. Existing "\n" breaks are kept.
func WrapText(s string, face font.Face, maxW int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			next := word
			if line != "" {
				next = line + " " + word
			}
			if line != "" && font.MeasureString(face, next).Ceil() > maxW {
				lines = append(lines, line)
				next = word
			}
			line = next
		}
		lines = append(lines, line)
	}
	return lines
}

// DrawPartner renders the pinned partner section: the split title, the
// paragraph and the stack of clipped card layers.
func DrawPartner(screen *ebiten.Image, v PartnerView) {
	strs := cfg.Text().Partner
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()

	if st, ok := sequencer.Find(v.States, "title"); ok {
		drawPartnerTitle(screen, strs.Title, st, v.Elapsed)
	}
	if st, ok := sequencer.Find(v.States, "para"); ok {
		if a := st.Value(cfg.PropOpacity, 0); a >= minVisible {
			face := fonts.Body.Get()
			lines := WrapText(strs.Para, face, min(900, w-32))
			dy := st.Value(cfg.PropY, 0) * float64(face.Metrics().Height.Ceil())
			drawRich(screen, strings.Join(lines, "\n"), face, float64(w)/2, float64(h)/2+dy, cfg.White, cfg.PartnerYellow, a)
		}
	}

	st, ok := sequencer.Find(v.States, "stage")
	if !ok {
		return
	}
	a := st.Value(cfg.PropOpacity, 0)
	if a < minVisible {
		return
	}
	r := StageRect(w, h, st.Value(cfg.PropHeight, 0.24), st.Value(cfg.PropY, 0), st.Value(cfg.PropScale, 1))
	img := func(i int) *ebiten.Image {
		if v.Image == nil {
			return nil
		}
		return v.Image(i)
	}

	clipped(screen, sequencer.ClipAway(st.Value(cfg.PropYellow, 0)).Clip(r), func(dst *ebiten.Image) {
		drawYellowCard(dst, r, strs, a)
	})
	clipped(screen, sequencer.ClipInFromRight(st.Value(cfg.PropImage1, 0)).Clip(r), func(dst *ebiten.Image) {
		drawPartnerImage(dst, r, img(0), a)
	})
	if d := st.Value(cfg.PropDark, 0); d > 0 {
		slid := r.Add(image.Pt(int((1-d)*float64(r.Dx())), 0))
		clipped(screen, slid.Intersect(r), func(dst *ebiten.Image) {
			drawDarkCard(dst, slid, strs, a)
		})
	}
	clipped(screen, sequencer.ClipInFromRight(st.Value(cfg.PropImage2, 0)).Clip(r), func(dst *ebiten.Image) {
		drawPartnerImage(dst, r, img(1), a)
	})
	clipped(screen, sequencer.ClipInUpward(st.Value(cfg.PropBottom, 0)).Clip(r), func(dst *ebiten.Image) {
		drawAudienceCard(dst, r, strs, a)
	})
	clipped(screen, sequencer.ClipInFromRight(st.Value(cfg.PropImage3, 0)).Clip(r), func(dst *ebiten.Image) {
		drawPartnerImage(dst, r, img(2), a)
	})
	clipped(screen, sequencer.ClipInUpward(st.Value(cfg.PropSmarter, 0)).Clip(r), func(dst *ebiten.Image) {
		drawSmarterCard(dst, r, strs, a)
	})
}

// clipped runs draw against the part of screen inside r
func clipped(screen *ebiten.Image, r image.Rectangle, draw func(dst *ebiten.Image)) {
	r = r.Intersect(screen.Bounds())
	if r.Empty() {
		return
	}
	draw(screen.SubImage(r).(*ebiten.Image))
}

// drawPartnerTitle draws each title line rising into its own line box, the
// whole block scaled about the screen center.
func drawPartnerTitle(screen *ebiten.Image, title string, st sequencer.ItemState, elapsed time.Duration) {
	a := st.Value(cfg.PropOpacity, 1)
	if a < minVisible {
		return
	}
	face := fonts.Display.Get()
	m := face.Metrics()
	lineH, ascent := float64(m.Height.Ceil()), float64(m.Ascent.Ceil())
	b := screen.Bounds()
	scale := st.Value(cfg.PropScale, 1)
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy())/2 + st.Value(cfg.PropY, 0)*float64(b.Dy())
	rise, _ := sequencer.EaseByName("power2.out")

	lines := strings.Split(title, "\n")
	top := -lineH * float64(len(lines)) / 2
	for i, line := range lines {
		lw := float64(font.MeasureString(face, line).Ceil())
		ly := top + float64(i)*lineH
		box := image.Rect(
			int(cx-lw/2*scale), int(cy+ly*scale),
			int(cx+lw/2*scale)+1, int(cy+(ly+lineH)*scale)+1,
		)
		frac := sequencer.Stagger(elapsed, i, cfg.Partner.LineStagger, cfg.Partner.LineRise)
		offset := (1 - float64(rise(float32(frac), 0, 1, 1))) * cfg.Partner.LineOffset * lineH

		clipped(screen, box, func(dst *ebiten.Image) {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-lw/2, ly+ascent+offset)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(cx, cy)
			op.ColorScale.ScaleWithColor(cfg.White)
			op.ColorScale.ScaleAlpha(float32(a))
			text.DrawWithOptions(dst, line, face, op)
		})
	}
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.RGBA, a float64) {
	vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), withAlpha(c, a), false)
}

// drawLines draws lines top-down from y inside box's horizontal extent and
// returns the y below the last line. Lines start at the reading edge
// unless centered.
func drawLines(dst *ebiten.Image, lines []string, face font.Face, box image.Rectangle, y int, center bool, c color.RGBA, a float64) int {
	m := face.Metrics()
	lineH, ascent := m.Height.Ceil(), m.Ascent.Ceil()
	for _, line := range lines {
		lw := font.MeasureString(face, line).Ceil()
		x := box.Min.X
		switch {
		case center:
			x = box.Min.X + (box.Dx()-lw)/2
		case cfg.CurrentLang.RTL():
			x = box.Max.X - lw
		}
		text.Draw(dst, line, face, x, y+ascent, withAlpha(c, a))
		y += lineH
	}
	return y
}

func drawWrapped(dst *ebiten.Image, s string, face font.Face, box image.Rectangle, y int, center bool, c color.RGBA, a float64) int {
	return drawLines(dst, WrapText(s, face, box.Dx()), face, box, y, center, c, a)
}

func drawPartnerImage(dst *ebiten.Image, r image.Rectangle, img *ebiten.Image, a float64) {
	if img == nil {
		fillRect(dst, r, cfg.Grey, a)
		return
	}
	ib := img.Bounds()
	pl := sequencer.CoverFit(float64(r.Dx()), float64(r.Dy()), float64(ib.Dx()), float64(ib.Dy()))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pl.Scale, pl.Scale)
	op.GeoM.Translate(float64(r.Min.X)+pl.OffsetX, float64(r.Min.Y)+pl.OffsetY)
	op.ColorScale.ScaleAlpha(float32(a))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func drawYellowCard(dst *ebiten.Image, r image.Rectangle, s cfg.PartnerStrings, a float64) {
	fillRect(dst, r, cfg.PartnerYellow, a)
	pad := max(16, r.Dx()/16)
	inner := r.Inset(pad)
	y := drawWrapped(dst, s.YellowTitle, fonts.Title.Get(), inner, inner.Min.Y, false, cfg.Ink, a)
	for _, p := range s.YellowBody {
		y = drawWrapped(dst, p, fonts.Body.Get(), inner, y+pad/2, false, cfg.Ink, a)
	}
}

func drawDarkCard(dst *ebiten.Image, r image.Rectangle, s cfg.PartnerStrings, a float64) {
	fillRect(dst, r, cfg.PartnerDark, a)
	pad := max(12, r.Dx()/24)
	inner := r.Inset(pad)
	y := drawWrapped(dst, s.DarkTitle, fonts.Title.Get(), inner, inner.Min.Y, true, cfg.White, a)

	area := image.Rect(inner.Min.X, y+pad/2, inner.Max.X, inner.Max.Y)
	cells := GridCells(area, len(s.Features), GridColumns(area.Dx(), 4), pad/2)
	for i, f := range s.Features {
		c := cells[i]
		fillRect(dst, c, featureFill, a)
		body := c.Inset(8)
		cy := drawWrapped(dst, f.Bold, fonts.Bold.Get(), body, body.Min.Y, true, cfg.White, a)
		drawWrapped(dst, f.Desc, fonts.Small.Get(), body, cy+4, true, featureDesc, a)
	}
}

func drawAudienceCard(dst *ebiten.Image, r image.Rectangle, s cfg.PartnerStrings, a float64) {
	fillRect(dst, r, cfg.PartnerYellow, a)
	pad := max(12, r.Dx()/24)
	inner := r.Inset(pad)
	y := drawWrapped(dst, s.BottomTitle, fonts.Title.Get(), inner, inner.Min.Y, true, cfg.Ink, a)

	area := image.Rect(inner.Min.X, y+pad/2, inner.Max.X, inner.Max.Y)
	cells := GridCells(area, len(s.Cards), GridColumns(area.Dx(), 3), pad/2)
	for i, card := range s.Cards {
		c := cells[i]
		fillRect(dst, c, cfg.White, a)
		body := c.Inset(12)
		cy := drawWrapped(dst, card.Bold, fonts.Bold.Get(), body, body.Min.Y, true, cfg.Ink, a)
		drawWrapped(dst, card.Desc, fonts.Body.Get(), body, cy+6, true, cfg.Grey, a)
	}
}

func drawSmarterCard(dst *ebiten.Image, r image.Rectangle, s cfg.PartnerStrings, a float64) {
	fillRect(dst, r, cfg.PartnerDark, a)
	pad := max(16, r.Dx()/16)
	inner := r.Inset(pad)
	y := drawWrapped(dst, s.SmarterTitle, fonts.Title.Get(), inner, inner.Min.Y, false, cfg.White, a)
	y = drawWrapped(dst, s.SmarterMain, fonts.Body.Get(), inner, y+pad/2, false, cfg.White, a)
	y = drawWrapped(dst, s.SmarterPartner, fonts.Body.Get(), inner, y+pad/2, false, cfg.White, a)

	face := fonts.Bold.Get()
	lines := WrapText(s.SmarterButton, face, inner.Dx()-32)
	bh := face.Metrics().Height.Ceil()*len(lines) + 24
	button := image.Rect(inner.Min.X, y+pad/2, inner.Max.X, y+pad/2+bh)
	fillRect(dst, button, cfg.Ink, a)
	drawLines(dst, lines, face, button, button.Min.Y+12, true, cfg.White, a)
}
