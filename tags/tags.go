package tags

import "github.com/yohamta/donburi"

var (
	Canvas   = donburi.NewTag().SetName("Canvas")
	Layer    = donburi.NewTag().SetName("Layer")
	Card     = donburi.NewTag().SetName("Card")
	NavLink  = donburi.NewTag().SetName("NavLink")
	Footer   = donburi.NewTag().SetName("Footer")
	Timeline = donburi.NewTag().SetName("Timeline")
)

// Resolv tags for pointer hit-testing
const (
	ResolvNav    = "nav"
	ResolvCursor = "cursor"
)
