package systems

import (
	"fmt"
	"time"

	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// AdvanceIntro moves the intro overlay to now. Progress fills over dur,
// then the overlay fades out over fade. It returns true on the tick the
// overlay finishes.
func AdvanceIntro(d *components.IntroData, now time.Time, dur, fade time.Duration) bool {
	if d.Done {
		return false
	}
	if d.Started.IsZero() {
		d.Started = now
	}
	elapsed := now.Sub(d.Started)
	d.Progress = 1
	if dur > 0 && elapsed < dur {
		d.Progress = float64(elapsed) / float64(dur)
	}
	d.Alpha = 1
	if elapsed < dur {
		return false
	}
	if d.FadeStart.IsZero() {
		d.FadeStart = now
	}
	faded := now.Sub(d.FadeStart)
	if fade > 0 && faded < fade {
		d.Alpha = 1 - float64(faded)/float64(fade)
		return false
	}
	d.Alpha = 0
	d.Done = true
	return true
}

// NewIntroSystem returns the intro update system. The overlay is skipped
// when flag reports it was already shown this session, and flag is marked
// once it finishes.
func NewIntroSystem(flag IntroFlag) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Intro.First(e.World)
		if !ok {
			return
		}
		d := components.Intro.Get(entry)
		if d.Started.IsZero() && !d.Done && flag.Shown() {
			d.Done = true
			log.Debug().Str("component", "intro").Msg("Intro already shown this session")
			return
		}
		if AdvanceIntro(d, time.Now(), cfg.Loading.Duration, cfg.Loading.FadeOut) {
			flag.MarkShown()
			log.Debug().Str("component", "intro").Msg("Intro finished")
		}
	}
}

// IntroActive reports whether the intro overlay still covers the showcase
func IntroActive(e *ecs.ECS) bool {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return false
	}
	return !components.Intro.Get(entry).Done
}

// DrawIntro renders the loading overlay: a cup filling with the progress
// and a percentage counter.
func DrawIntro(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Intro.First(e.World)
	if !ok {
		return
	}
	d := components.Intro.Get(entry)
	if d.Done || d.Alpha <= 0 {
		return
	}
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.FillRect(screen, 0, 0, w, h, withAlpha(cfg.Ink, d.Alpha), false)

	size := float32(min(cfg.Loading.CupSize, float64(min(w, h))*0.5))
	cupW, cupH := size*0.7, size*0.8
	x, y := (w-cupW)/2, (h-cupH)/2
	cupAlpha := d.Progress * d.Alpha

	// Cup body, handle and the coffee level
	vector.StrokeRect(screen, x, y, cupW, cupH, 4, withAlpha(cfg.White, cupAlpha), true)
	vector.StrokeRect(screen, x+cupW, y+cupH*0.2, cupW*0.25, cupH*0.4, 4, withAlpha(cfg.White, cupAlpha), true)
	level := cupH * float32(d.Progress)
	vector.FillRect(screen, x+4, y+cupH-level, cupW-8, level-4*float32(d.Progress), withAlpha(cfg.Amber, d.Alpha), false)

	face := fonts.Title.Get()
	label := fmt.Sprintf("%d%%", int(d.Progress*100))
	tw := font.MeasureString(face, label).Ceil()
	text.Draw(screen, label, face, int(w)/2-tw/2, int(y+cupH)+face.Metrics().Height.Ceil()+16, withAlpha(cfg.White, d.Alpha))
}
