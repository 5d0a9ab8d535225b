package components

import (
	"image/color"

	"github.com/automoto/coffeeon/fonts"
	"github.com/yohamta/donburi"
)

// LayerKind selects how a layer is drawn
type LayerKind int

const (
	LayerText LayerKind = iota
	LayerOverlay
	LayerCard
	LayerFooter
	LayerOutro
	LayerVignette
)

// LayerData is a visual element animated by one timeline item
type LayerData struct {
	Kind     LayerKind
	Timeline string
	Item     string

	// Text is resolved from the active string table every tick
	Text  func() string
	Font  fonts.FontName
	Color color.RGBA

	// Anchor is the layer center as a fraction of the viewport
	AnchorX, AnchorY float64
	// Index orders cards within the track
	Index int
	Order int
}

var Layer = donburi.NewComponentType[LayerData]()
