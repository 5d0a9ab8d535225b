package ui

import (
	"image/color"

	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/fonts"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	panelColor  = color.RGBA{24, 20, 18, 255}
	inputColor  = color.RGBA{48, 42, 38, 255}
	labelColor  = color.RGBA{200, 200, 200, 255}
	mutedColor  = color.RGBA{128, 128, 128, 255}
	buttonColor = color.RGBA{120, 80, 20, 255}
)

// faces are the ebitenui font faces shared by the screens
type faces struct {
	title  text.Face
	normal text.Face
	small  text.Face
}

func loadFaces() faces {
	return faces{
		title:  fonts.UIFace(28),
		normal: fonts.UIFace(16),
		small:  fonts.UIFace(13),
	}
}

func newRoot() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Ink)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
}

func newColumn(padding, spacing int, anchored bool) *widget.Container {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(padding)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	}
	if anchored {
		opts = append(opts, widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		))
	}
	return widget.NewContainer(opts...)
}

func newLabel(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

func newInput(face *text.Face, placeholder string, width int) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 28)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(inputColor),
			Disabled: image.NewNineSliceColor(panelColor),
		}),
		widget.TextInputOpts.Face(face),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.White,
			Disabled:      mutedColor,
			Caret:         cfg.Amber,
			DisabledCaret: mutedColor,
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(6)),
	)
}

func newButton(label string, face *text.Face, minW int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(minW, 30)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(buttonColor),
			Hover:    image.NewNineSliceColor(cfg.Amber),
			Pressed:  image.NewNineSliceColor(color.RGBA{90, 60, 15, 255}),
			Disabled: image.NewNineSliceColor(inputColor),
		}),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{
			Idle:     cfg.White,
			Hover:    cfg.Ink,
			Pressed:  cfg.White,
			Disabled: mutedColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}
