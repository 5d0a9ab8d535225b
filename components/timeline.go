package components

import (
	"github.com/automoto/coffeeon/sequencer"
	"github.com/yohamta/donburi"
)

// TimelineData is one compiled timeline and its evaluated item states
type TimelineData struct {
	Track  *sequencer.Track
	Local  float64
	States []sequencer.ItemState
}

// Item returns the evaluated state of an item
func (t *TimelineData) Item(name string) (sequencer.ItemState, bool) {
	return sequencer.Find(t.States, name)
}

var Timeline = donburi.NewComponentType[TimelineData]()
