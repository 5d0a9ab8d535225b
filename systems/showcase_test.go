package systems

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	"github.com/automoto/coffeeon/archetypes"
	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/framecache"
	"github.com/automoto/coffeeon/responsive"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const showcaseFrames = 688

func TestShowcaseMapperAtStartOfScroll(t *testing.T) {
	m := NewShowcaseMapper(showcaseFrames)
	snap := m.Map(0)

	assert.Equal(t, 0, snap.TargetFrame)
	require.Len(t, snap.Local, len(cfg.Timelines))
	for name, local := range snap.Local {
		assert.Zero(t, local, name)
	}
}

func TestShowcaseMessagesWindowMidpoint(t *testing.T) {
	m := NewShowcaseMapper(showcaseFrames)
	w, ok := m.Window(cfg.TimelineMessages)
	require.True(t, ok)

	assert.InDelta(t, 80.0/687, w.Start, 1e-9)
	assert.InDelta(t, 440.0/687, w.End, 1e-9)
	assert.InDelta(t, 0.5, m.LocalProgress(cfg.TimelineMessages, (w.Start+w.End)/2), 1e-9)
}

func TestConfiguredTimelinesCompile(t *testing.T) {
	for _, tl := range BuildTimelines(cfg.Timelines, showcaseFrames) {
		_, err := sequencer.Compile(tl)
		assert.NoError(t, err, tl.Name)
	}
}

func TestIntroTitleVisibleBeforeScrolling(t *testing.T) {
	var intro sequencer.Timeline
	for _, tl := range BuildTimelines(cfg.Timelines, showcaseFrames) {
		if tl.Name == cfg.TimelineIntro {
			intro = tl
		}
	}
	track, err := sequencer.Compile(intro)
	require.NoError(t, err)

	states := track.Evaluate(0, true)
	title1, _ := sequencer.Find(states, "title1")
	title2, _ := sequencer.Find(states, "title2")
	overlay, _ := sequencer.Find(states, "overlay")
	assert.Equal(t, 1.0, title1.Value(cfg.PropOpacity, 0))
	assert.Equal(t, 0.0, title2.Value(cfg.PropOpacity, 1))
	assert.Equal(t, 1.0, overlay.Value(cfg.PropOpacity, 0))
}

func newShowcaseECS(t *testing.T, p float64, cache *framecache.Cache) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, CreateTimelines(e, showcaseFrames))

	mapper := NewShowcaseMapper(showcaseFrames)
	scroll := archetypes.Scroll.Spawn(e)
	components.Scroll.SetValue(scroll, components.ScrollData{
		Local:    sequencer.NewScrollSource(1000, 1, 0),
		Mapper:   mapper,
		Snapshot: mapper.Map(p),
	})

	canvas := archetypes.Canvas.Spawn(e)
	components.Canvas.SetValue(canvas, components.CanvasData{Cache: cache, Shown: -1})
	t.Cleanup(func() { _ = cache.Close() })
	return e
}

func TestOutroHoldsUntilFramesSettle(t *testing.T) {
	never := framecache.LoaderFunc(func(ctx context.Context, index int, ext string) (image.Image, error) {
		return nil, errors.New("not loaded in this test")
	})
	e := newShowcaseECS(t, 1, framecache.New(never, framecache.Options{Frames: 4}))

	UpdateTimelines(e)
	outro, ok := findTimeline(e, cfg.TimelineOutro)
	require.True(t, ok)
	assert.InDelta(t, cfg.Renderer.GateThreshold, outro.Local, 1e-9)

	footer, ok := findTimeline(e, cfg.TimelineFooter)
	require.True(t, ok)
	assert.Equal(t, 1.0, footer.Local, "ungated timelines run to the end")

	canvas, _ := components.Canvas.First(e.World)
	settled := framecache.New(never, framecache.Options{Frames: 0})
	t.Cleanup(func() { _ = settled.Close() })
	components.Canvas.Get(canvas).Cache = settled

	UpdateTimelines(e)
	assert.Equal(t, 1.0, outro.Local)
}

func TestHighlightSpans(t *testing.T) {
	words := []string{"perfect", "cup", "yours", "24/7"}

	assert.Equal(t, []Span{
		{Text: "Save your", Accent: false},
		{Text: " perfect cup", Accent: true},
	}, HighlightSpans("Save your perfect cup", words))

	assert.Equal(t, []Span{
		{Text: "and make every coffee", Accent: false},
		{Text: " yours.", Accent: true},
	}, HighlightSpans("and make every coffee yours.", words))

	assert.Equal(t, []Span{{Text: "Available", Accent: false}, {Text: " 24/7", Accent: true}},
		HighlightSpans("Available 24/7", words))
}

func TestCardRectCentersFirstAndLastCard(t *testing.T) {
	const w, h = 1280.0, 720.0

	left, _, cw, _ := CardRect(0, 4, w, h, 0)
	assert.InDelta(t, w/2, left+cw/2, 1e-9)

	left, _, cw, _ = CardRect(3, 4, w, h, -1)
	assert.InDelta(t, w/2, left+cw/2, 1e-9)

	first, _, _, _ := CardRect(0, 4, w, h, -0.5)
	second, _, _, _ := CardRect(1, 4, w, h, -0.5)
	assert.Greater(t, second, first)
}

func TestLayoutNav(t *testing.T) {
	rects := LayoutNav([]int{40, 30}, 400, false)
	assert.Equal(t, image.Rect(346, 0, 376, int(cfg.Nav.Height)), rects[1])
	assert.Equal(t, image.Rect(278, 0, 318, int(cfg.Nav.Height)), rects[0])

	rects = LayoutNav([]int{40, 30}, 400, true)
	assert.Equal(t, 24, rects[0].Min.X)
	assert.Equal(t, 92, rects[1].Min.X)
}

func TestAdvanceIntro(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	d := &components.IntroData{}
	dur, fade := 3*time.Second, 700*time.Millisecond

	assert.False(t, AdvanceIntro(d, t0, dur, fade))
	assert.Zero(t, d.Progress)

	AdvanceIntro(d, t0.Add(1500*time.Millisecond), dur, fade)
	assert.InDelta(t, 0.5, d.Progress, 1e-9)
	assert.Equal(t, 1.0, d.Alpha)

	assert.False(t, AdvanceIntro(d, t0.Add(dur), dur, fade))
	assert.Equal(t, 1.0, d.Progress)

	AdvanceIntro(d, t0.Add(dur+350*time.Millisecond), dur, fade)
	assert.InDelta(t, 0.5, d.Alpha, 1e-9)

	assert.True(t, AdvanceIntro(d, t0.Add(dur+fade), dur, fade))
	assert.True(t, d.Done)
	assert.False(t, AdvanceIntro(d, t0.Add(time.Hour), dur, fade), "finishes once")
}

func TestIntroSystemSkipsWhenAlreadyShown(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	archetypes.Intro.Spawn(e)
	flag := NewSessionFlag(NewMemoryStore(), time.Hour)
	flag.MarkShown()

	NewIntroSystem(flag)(e)
	assert.False(t, IntroActive(e))
}

func TestIntroSystemMarksFlagWhenDone(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := archetypes.Intro.Spawn(e)
	flag := NewSessionFlag(NewMemoryStore(), time.Hour)
	update := NewIntroSystem(flag)

	update(e)
	assert.True(t, IntroActive(e))
	assert.False(t, flag.Shown())

	d := components.Intro.Get(entry)
	d.Started = time.Now().Add(-time.Minute)
	update(e)
	d.FadeStart = time.Now().Add(-time.Minute)
	update(e)

	assert.False(t, IntroActive(e))
	assert.True(t, flag.Shown())
}

func TestFooterRect(t *testing.T) {
	assert.True(t, FooterRect(1000, 1000, 0, 0).Empty())
	assert.Equal(t, image.Rect(0, 580, 1000, 1000), FooterRect(1000, 1000, 1, 0))
	assert.Equal(t, 790, FooterRect(1000, 1000, 0.5, 0).Min.Y)
}

func TestFadeIn(t *testing.T) {
	assert.Equal(t, 0.0, fadeIn(0, 30))
	assert.InDelta(t, 0.5, fadeIn(15, 30), 1e-9)
	assert.Equal(t, 1.0, fadeIn(45, 30))
	assert.Equal(t, 1.0, fadeIn(0, 0))
}

func TestBreakpointSwapKeepsOldPictureUntilFirstFrame(t *testing.T) {
	release := make(chan struct{})
	restore := FrameLoader
	FrameLoader = func(responsive.Profile) framecache.Loader {
		return framecache.LoaderFunc(func(ctx context.Context, index int, ext string) (image.Image, error) {
			select {
			case <-release:
				return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})
	}
	t.Cleanup(func() { FrameLoader = restore })

	profile := responsive.ProfileFor(responsive.Classify(1280, cfg.Breakpoints), cfg.Breakpoints, responsive.Device{})
	profile.TotalFrames = 3
	c := &components.CanvasData{
		Playback:   sequencer.NewPlayback(3, 0.2, 0.01),
		FirstPaint: true,
	}
	StartFrames(c, profile, 2)
	t.Cleanup(func() { StopFrames(c) })

	assert.True(t, c.Holding)
	c.Playback.MarkDrawn(2)
	assert.False(t, settleFirstFrame(c), "nothing new to show yet")

	close(release)
	select {
	case <-c.Cache.FirstFrameReady():
	case <-time.After(2 * time.Second):
		t.Fatal("first frame never settled")
	}

	assert.True(t, settleFirstFrame(c))
	assert.False(t, c.Holding)
	assert.True(t, c.Playback.Pending())
	assert.Equal(t, -1, c.Playback.LastDrawn(), "redraw forced once the new frame lands")
	assert.True(t, settleFirstFrame(c))
}
