package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its hit-test shape
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the resolv space used for pointer hit-testing
var Space = donburi.NewComponentType[resolv.Space]()
