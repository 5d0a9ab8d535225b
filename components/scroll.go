package components

import (
	"github.com/automoto/coffeeon/network"
	"github.com/automoto/coffeeon/sequencer"
	"github.com/yohamta/donburi"
)

// ScrollData is the singleton holding the progress source and the mapped
// snapshot for the current tick
type ScrollData struct {
	Local  *sequencer.ScrollSource
	Remote *network.ProgressClient // Optional; overrides local input while connected
	Mapper *sequencer.Mapper

	Snapshot sequencer.Snapshot

	Dragging  bool
	DragLastY int
	TouchID   int
}

// Source returns the active progress source
func (s *ScrollData) Source() sequencer.ProgressSource {
	if s.Remote != nil && s.Remote.State() == network.StateConnected {
		return s.Remote
	}
	return s.Local
}

var Scroll = donburi.NewComponentType[ScrollData]()
