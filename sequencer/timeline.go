package sequencer

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween interpolates one property between two values
type Tween struct {
	Prop string
	From float64
	To   float64
	Ease string
}

// Phase is a weighted step of an item; its tweens run concurrently
type Phase struct {
	Name   string
	Weight float64
	Props  []Tween
}

// Item is an animated element; its phases run one after another
type Item struct {
	Name   string
	Phases []Phase
}

// Timeline groups items that play sequentially inside a window. A gated
// timeline never reaches its end while its readiness condition is unmet.
type Timeline struct {
	Name   string
	Window Window
	Gated  bool
	Items  []Item
}

// ItemState is the evaluated state of one item
type ItemState struct {
	Name   string
	Phase  string
	Active bool
	Props  map[string]float64
}

// Value returns a property or def if the item never animates it
func (s ItemState) Value(prop string, def float64) float64 {
	if v, ok := s.Props[prop]; ok {
		return v
	}
	return def
}

type compiledTween struct {
	prop  string
	tween *gween.Tween
	from  float64
	to    float64
}

type compiledPhase struct {
	name   string
	start  float64
	end    float64
	tweens []compiledTween
}

type compiledItem struct {
	name   string
	start  float64
	end    float64
	phases []compiledPhase
	// initial value of each prop, taken from the first phase animating it
	initial map[string]float64
	order   []string
}

// Track is a compiled timeline ready for repeated evaluation
type Track struct {
	Timeline
	items []compiledItem
}

// Compile lays phases out on the timeline's local [0,1] axis in proportion
// to their weights and builds one gween tween per property.
func Compile(tl Timeline) (*Track, error) {
	total := 0.0
	for _, it := range tl.Items {
		for _, ph := range it.Phases {
			if ph.Weight < 0 {
				return nil, fmt.Errorf("timeline %q item %q phase %q: negative weight", tl.Name, it.Name, ph.Name)
			}
			total += ph.Weight
		}
	}
	if total <= 0 {
		return nil, fmt.Errorf("timeline %q: no weighted phases", tl.Name)
	}

	tr := &Track{Timeline: tl}
	cursor := 0.0
	for _, it := range tl.Items {
		ci := compiledItem{name: it.Name, start: cursor, initial: make(map[string]float64)}
		for _, ph := range it.Phases {
			span := ph.Weight / total
			cp := compiledPhase{name: ph.Name, start: cursor, end: cursor + span}
			for _, tw := range ph.Props {
				fn, ok := EaseByName(tw.Ease)
				if !ok {
					return nil, fmt.Errorf("timeline %q item %q: unknown ease %q", tl.Name, it.Name, tw.Ease)
				}
				cp.tweens = append(cp.tweens, compiledTween{
					prop:  tw.Prop,
					tween: newUnitTween(tw.From, tw.To, fn),
					from:  tw.From,
					to:    tw.To,
				})
				if _, seen := ci.initial[tw.Prop]; !seen {
					ci.initial[tw.Prop] = tw.From
					ci.order = append(ci.order, tw.Prop)
				}
			}
			ci.phases = append(ci.phases, cp)
			cursor += span
		}
		ci.end = cursor
		tr.items = append(tr.items, ci)
	}
	return tr, nil
}

func newUnitTween(from, to float64, fn ease.TweenFunc) *gween.Tween {
	return gween.New(float32(from), float32(to), 1, fn)
}

// Local returns the timeline's local progress at overall progress p,
// applying the gate when the timeline is gated.
func (t *Track) Local(p float64, ready bool) float64 {
	local := t.Window.Local(Clamp01(p))
	if t.Gated {
		local = Gate(local, ready, DefaultGateThreshold)
	}
	return local
}

// Evaluate returns every item's properties at overall progress p. The
// result depends only on p and ready.
func (t *Track) Evaluate(p float64, ready bool) []ItemState {
	return t.EvaluateLocal(t.Local(p, ready))
}

// EvaluateLocal evaluates at an already-mapped local progress
func (t *Track) EvaluateLocal(local float64) []ItemState {
	local = Clamp01(local)
	out := make([]ItemState, 0, len(t.items))
	for _, ci := range t.items {
		st := ItemState{
			Name:   ci.name,
			Active: local > ci.start && local < ci.end,
			Props:  make(map[string]float64, len(ci.order)),
		}
		for _, prop := range ci.order {
			st.Props[prop] = ci.initial[prop]
		}
		for _, ph := range ci.phases {
			if local < ph.start {
				break
			}
			st.Phase = ph.name
			frac := 1.0
			if span := ph.end - ph.start; span > 0 {
				frac = Clamp01((local - ph.start) / span)
			}
			for _, ct := range ph.tweens {
				st.Props[ct.prop] = ct.value(frac)
			}
		}
		out = append(out, st)
	}
	return out
}

// Find returns the state of the named item, if present
func Find(states []ItemState, name string) (ItemState, bool) {
	for _, s := range states {
		if s.Name == name {
			return s, true
		}
	}
	return ItemState{}, false
}

func (c compiledTween) value(frac float64) float64 {
	switch {
	case frac <= 0:
		return c.from
	case frac >= 1:
		return c.to
	}
	v, _ := c.tween.Set(float32(frac))
	return float64(v)
}
