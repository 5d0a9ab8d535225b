package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTimeline(gated bool) Timeline {
	return Timeline{
		Name:   "outro",
		Window: Window{Start: 0.5, End: 1},
		Gated:  gated,
		Items: []Item{
			{Name: "a", Phases: []Phase{
				{Name: "enter", Weight: 1, Props: []Tween{{Prop: "opacity", From: 0, To: 1, Ease: "none"}}},
				{Name: "exit", Weight: 1, Props: []Tween{{Prop: "opacity", From: 1, To: 0, Ease: "none"}}},
			}},
			{Name: "b", Phases: []Phase{
				{Name: "enter", Weight: 2, Props: []Tween{
					{Prop: "opacity", From: 0, To: 1, Ease: "power2.out"},
					{Prop: "y", From: 40, To: 0, Ease: "none"},
				}},
			}},
		},
	}
}

func TestCompileRejectsBadTimelines(t *testing.T) {
	_, err := Compile(Timeline{Name: "empty"})
	assert.Error(t, err)

	tl := testTimeline(false)
	tl.Items[0].Phases[0].Props[0].Ease = "wobble"
	_, err = Compile(tl)
	assert.Error(t, err)
}

func TestEvaluatePhaseLayout(t *testing.T) {
	tr, err := Compile(testTimeline(false))
	require.NoError(t, err)

	// weights 1,1,2 → a.enter [0,.25], a.exit [.25,.5], b.enter [.5,1]
	states := tr.EvaluateLocal(0)
	a, _ := Find(states, "a")
	b, _ := Find(states, "b")
	assert.Equal(t, 0.0, a.Props["opacity"])
	assert.Equal(t, 0.0, b.Props["opacity"])
	assert.Equal(t, 40.0, b.Props["y"])

	states = tr.EvaluateLocal(0.125)
	a, _ = Find(states, "a")
	assert.InDelta(t, 0.5, a.Props["opacity"], 1e-6)
	assert.Equal(t, "enter", a.Phase)
	assert.True(t, a.Active)

	states = tr.EvaluateLocal(0.25)
	a, _ = Find(states, "a")
	assert.InDelta(t, 1, a.Props["opacity"], 1e-6)

	states = tr.EvaluateLocal(0.75)
	a, _ = Find(states, "a")
	b, _ = Find(states, "b")
	assert.Equal(t, 0.0, a.Props["opacity"], "a finished its exit")
	assert.Equal(t, "exit", a.Phase)
	assert.Greater(t, b.Props["opacity"], 0.5, "out-ease is past halfway at half time")

	states = tr.EvaluateLocal(1)
	b, _ = Find(states, "b")
	assert.Equal(t, 1.0, b.Props["opacity"])
	assert.Equal(t, 0.0, b.Props["y"])
}

func TestEvaluateIsReentrant(t *testing.T) {
	tr, err := Compile(testTimeline(false))
	require.NoError(t, err)

	for _, p := range []float64{0, 0.55, 0.62, 0.8, 1} {
		first := tr.Evaluate(p, true)
		tr.Evaluate(1-p, true)
		tr.Evaluate(0.7, true)
		assert.Equal(t, first, tr.Evaluate(p, true), "p=%v", p)
	}
}

func TestGatedTimelineHoldsUntilReady(t *testing.T) {
	tr, err := Compile(testTimeline(true))
	require.NoError(t, err)

	local := tr.Local(1, false)
	assert.Less(t, local, 1.0)
	assert.LessOrEqual(t, local, 0.999)

	b, _ := Find(tr.Evaluate(1, false), "b")
	assert.Greater(t, b.Props["y"], 0.0, "terminal state deferred")

	assert.Equal(t, 1.0, tr.Local(1, true))
	b, _ = Find(tr.Evaluate(1, true), "b")
	assert.Equal(t, 1.0, b.Props["opacity"])
	assert.Equal(t, 0.0, b.Props["y"])

	// below the threshold the gate changes nothing
	assert.Equal(t, tr.Local(0.75, true), tr.Local(0.75, false))
}

func TestGate(t *testing.T) {
	assert.Equal(t, 0.999, Gate(1, false, 0.999))
	assert.Equal(t, 1.0, Gate(1, true, 0.999))
	assert.Equal(t, 0.4, Gate(0.4, false, 0.999))
	assert.Equal(t, DefaultGateThreshold, Gate(1, false, 0))
}

func TestEaseByName(t *testing.T) {
	for _, name := range []string{"none", "power1.inOut", "POWER2.out", "power3.out", "sine.in", "inOutCubic", ""} {
		fn, ok := EaseByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn)
	}
	fn, ok := EaseByName("nope")
	assert.False(t, ok)
	assert.NotNil(t, fn)
}

func TestCompileAcceptsPlainCurveNames(t *testing.T) {
	tl := testTimeline(false)
	tl.Items[0].Phases[0].Props[0].Ease = "inOutCubic"
	track, err := Compile(tl)
	require.NoError(t, err)

	fn, _ := EaseByName("inOutCubic")
	// a's enter phase spans local [0, 0.25]; 0.125 is its midpoint
	got := track.EvaluateLocal(0.125)[0].Value("opacity", -1)
	assert.InDelta(t, float64(fn(0.5, 0, 1, 1)), got, 1e-4)
	assert.InDelta(t, 0.5, got, 1e-4, "inOutCubic is symmetric about the midpoint")
}
