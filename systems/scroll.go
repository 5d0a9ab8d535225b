package systems

import (
	"github.com/automoto/coffeeon/components"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/network"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Held keys repeat after keyRepeatDelay ticks, every keyRepeatInterval ticks
const (
	keyRepeatDelay    = 20
	keyRepeatInterval = 4
)

// UpdateScroll turns input into progress and maps it for this tick. Input
// is ignored while the intro overlay is up or a remote controller drives
// the showcase.
func UpdateScroll(e *ecs.ECS) {
	entry, ok := components.Scroll.First(e.World)
	if !ok {
		return
	}
	s := components.Scroll.Get(entry)

	if s.Remote != nil {
		s.Remote.Poll()
	}
	remote := s.Remote != nil && s.Remote.State() == network.StateConnected

	if !remote && !IntroActive(e) {
		ReadScrollInput(s)
	}
	s.Local.Tick()
	s.Snapshot = s.Mapper.Map(s.Source().CurrentProgress())
}

// ReadScrollInput moves the local source by this tick's wheel, key and
// drag input
func ReadScrollInput(s *components.ScrollData) {
	sc := cfg.Scroll

	dy := 0.0
	if _, wy := ebiten.Wheel(); wy != 0 {
		dy -= wy * sc.WheelStep
	}
	for key, step := range keySteps(sc) {
		if repeating(key) {
			dy += step
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.Local.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.Local.ScrollTo(1)
	}

	dy += readDrag(s, sc.DragMultiplier)
	if dy != 0 {
		s.Local.ScrollBy(dy)
	}
}

// keySteps maps scroll keys to the pixel distance one press moves
func keySteps(sc cfg.ScrollConfig) map[ebiten.Key]float64 {
	return map[ebiten.Key]float64{
		ebiten.KeyArrowDown: sc.KeyStep,
		ebiten.KeyArrowUp:   -sc.KeyStep,
		ebiten.KeyPageDown:  sc.PageStep,
		ebiten.KeyPageUp:    -sc.PageStep,
		ebiten.KeySpace:     sc.PageStep,
	}
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d > keyRepeatDelay && d%keyRepeatInterval == 0)
}

// readDrag follows a mouse or touch drag. Dragging up scrolls forward.
func readDrag(s *components.ScrollData, mult float64) float64 {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 && !s.Dragging {
		_, y := ebiten.TouchPosition(ids[0])
		s.Dragging, s.TouchID, s.DragLastY = true, int(ids[0]), y
		return 0
	}
	if s.Dragging && s.TouchID >= 0 {
		id := ebiten.TouchID(s.TouchID)
		if inpututil.IsTouchJustReleased(id) {
			s.Dragging = false
			return 0
		}
		_, y := ebiten.TouchPosition(id)
		return dragDelta(&s.DragLastY, y, mult)
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		_, y := ebiten.CursorPosition()
		s.Dragging, s.TouchID, s.DragLastY = true, -1, y
	case s.Dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		_, y := ebiten.CursorPosition()
		return dragDelta(&s.DragLastY, y, mult)
	default:
		s.Dragging = false
	}
	return 0
}

func dragDelta(last *int, y int, mult float64) float64 {
	d := float64(*last-y) * mult
	*last = y
	return d
}
