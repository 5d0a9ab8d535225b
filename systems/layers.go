package systems

import (
	"image/color"
	"sort"
	"strings"

	"github.com/automoto/coffeeon/assets"
	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/fonts"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/automoto/coffeeon/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// Layers below this opacity are skipped
const minVisible = 0.01

// DrawLayers renders every timeline-driven layer in CSS pixels
func DrawLayers(e *ecs.ECS, screen *ebiten.Image) {
	var layers []*components.LayerData
	tags.Layer.Each(e.World, func(entry *donburi.Entry) {
		layers = append(layers, components.Layer.Get(entry))
	})
	tags.Card.Each(e.World, func(entry *donburi.Entry) {
		layers = append(layers, components.Layer.Get(entry))
	})
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].Order < layers[j].Order })

	for _, l := range layers {
		tl, ok := findTimeline(e, l.Timeline)
		if !ok {
			continue
		}
		st, ok := tl.Item(l.Item)
		if !ok {
			continue
		}
		switch l.Kind {
		case components.LayerOverlay:
			drawOverlay(screen, l, st)
		case components.LayerVignette:
			drawVignette(screen, st)
		case components.LayerText:
			drawTextLayer(screen, l, st, tl.Local)
		case components.LayerCard:
			drawCard(screen, l, st, tl.Local)
		case components.LayerOutro:
			drawOutro(screen, l, st)
		case components.LayerFooter:
			drawFooter(e, screen, l, st)
		}
	}
}

func drawOverlay(screen *ebiten.Image, l *components.LayerData, st sequencer.ItemState) {
	a := st.Value(cfg.PropOpacity, 0)
	if a < minVisible {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), withAlpha(l.Color, a), false)
}

func drawVignette(screen *ebiten.Image, st sequencer.ItemState) {
	a := st.Value(cfg.PropOpacity, 0)
	if a < minVisible {
		return
	}
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if assets.VignetteShader == nil {
		vector.FillRect(screen, 0, 0, w, h, withAlpha(cfg.BlackOverlay, a), false)
		return
	}
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Alpha":  float32(a),
		"Center": []float32{w / 2, h / 2},
		"Radius": max(w, h) * 0.75,
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.VignetteShader, op)
}

func drawTextLayer(screen *ebiten.Image, l *components.LayerData, st sequencer.ItemState, local float64) {
	a := st.Value(cfg.PropOpacity, 1)
	// Pinned sections only show while their window is in progress
	if l.Timeline == cfg.TimelineCards && (local <= 0 || local >= 1) {
		return
	}
	if a < minVisible || l.Text == nil {
		return
	}
	b := screen.Bounds()
	cx := float64(b.Dx()) * l.AnchorX
	cy := float64(b.Dy())*l.AnchorY + st.Value(cfg.PropY, 0)
	drawRich(screen, l.Text(), l.Font.Get(), cx, cy, l.Color, cfg.Amber, a)
}

// CardRect lays out card i of the horizontal track in a w-wide viewport.
// x runs 0..-1 across the pinned window; at 0 the first card is centered,
// at -1 the last one is.
func CardRect(i, count int, w, h, x float64) (left, top, cw, ch float64) {
	cw = max(220, w*0.28)
	ch = max(280, h*0.5)
	gap := w * 0.04
	distance := float64(count-1) * (cw + gap)
	left = w/2 - cw/2 + float64(i)*(cw+gap) + x*distance
	top = h*0.3 + 20
	return left, top, cw, ch
}

func drawCard(screen *ebiten.Image, l *components.LayerData, st sequencer.ItemState, local float64) {
	if local <= 0 || local >= 1 {
		return
	}
	a := st.Value(cfg.PropOpacity, 1)
	if a < minVisible {
		return
	}
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	left, top, cw, ch := CardRect(l.Index, len(cfg.CardParallax), w, h, st.Value(cfg.PropX, 0))
	if left+cw < 0 || left > w {
		return
	}
	vector.FillRect(screen, float32(left), float32(top), float32(cw), float32(ch), withAlpha(cfg.Grey, a), false)

	// The inner band drifts against the track by the card's parallax offset
	shift := -st.Value("parallax", 0) * cfg.CardParallax[l.Index] * 0.3
	band := cw * 0.6
	bx := left + (cw-band)/2 + shift
	bx = max(left, min(left+cw-band, bx))
	vector.FillRect(screen, float32(bx), float32(top+ch*0.15), float32(band), float32(ch*0.45), withAlpha(cfg.Amber, a*0.85), false)

	label := string([]byte{'0', byte('1' + l.Index)})
	drawRich(screen, label, fonts.Title.Get(), left+cw/2, top+ch*0.8, cfg.White, cfg.White, a)
}

func drawOutro(screen *ebiten.Image, l *components.LayerData, st sequencer.ItemState) {
	a := st.Value(cfg.PropOpacity, 0)
	if a < minVisible {
		return
	}
	s := st.Value(cfg.PropScale, 1)
	strs := cfg.Text()
	face := l.Font.Get()
	lead := font.MeasureString(face, strs.OutroLead).Ceil()
	total := lead + font.MeasureString(face, strs.OutroAccent).Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	b := screen.Bounds()
	cx, cy := float64(b.Dx())*l.AnchorX, float64(b.Dy())*l.AnchorY
	for _, part := range []struct {
		s   string
		dx  int
		col color.RGBA
	}{
		{strs.OutroLead, 0, l.Color},
		{strs.OutroAccent, lead, cfg.Amber},
	} {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(part.dx-total/2), float64(ascent/2))
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(cx, cy)
		op.ColorScale.ScaleWithColor(part.col)
		op.ColorScale.ScaleAlpha(float32(a))
		text.DrawWithOptions(screen, part.s, face, op)
	}
}

// Span is a run of text drawn in one color
type Span struct {
	Text   string
	Accent bool
}

// HighlightSpans splits line into runs, marking the configured highlight
// words. Matching ignores case and surrounding punctuation.
func HighlightSpans(line string, words []string) []Span {
	var out []Span
	for i, w := range strings.Split(line, " ") {
		if i > 0 {
			w = " " + w
		}
		accent := isHighlight(strings.Trim(w, " .,!?;:"), words)
		if n := len(out); n > 0 && out[n-1].Accent == accent {
			out[n-1].Text += w
			continue
		}
		out = append(out, Span{Text: w, Accent: accent})
	}
	return out
}

func isHighlight(word string, words []string) bool {
	for _, h := range words {
		if strings.EqualFold(word, h) {
			return true
		}
	}
	return false
}

// drawRich draws multi-line text centered on (cx, cy) with highlighted words
func drawRich(screen *ebiten.Image, s string, face font.Face, cx, cy float64, base, accent color.RGBA, alpha float64) {
	lines := strings.Split(s, "\n")
	m := face.Metrics()
	lineH := m.Height.Ceil()
	y := int(cy) - lineH*len(lines)/2 + m.Ascent.Ceil()
	for _, line := range lines {
		spans := HighlightSpans(line, cfg.HighlightWords)
		width := 0
		for _, sp := range spans {
			width += font.MeasureString(face, sp.Text).Ceil()
		}
		x := int(cx) - width/2
		for _, sp := range spans {
			c := base
			if sp.Accent {
				c = accent
			}
			text.Draw(screen, sp.Text, face, x, y, withAlpha(c, alpha))
			x += font.MeasureString(face, sp.Text).Ceil()
		}
		y += lineH
	}
}

func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * sequencer.Clamp01(a))}
}
