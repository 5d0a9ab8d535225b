package ui

import (
	cfg "github.com/automoto/coffeeon/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// Accordion tracks which FAQ entry is expanded. At most one is.
type Accordion struct {
	open int
}

func NewAccordion() Accordion {
	return Accordion{open: -1}
}

// Toggle expands entry i, or collapses it when it is already expanded
func (a *Accordion) Toggle(i int) {
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

func (a Accordion) IsOpen(i int) bool { return a.open == i }

// entryLabel puts the expand marker at the end of the reading direction
func entryLabel(question string, open, rtl bool) string {
	marker := "+"
	if open {
		marker = "×"
	}
	if rtl {
		return marker + "  " + question
	}
	return question + "  " + marker
}

// FAQUI is the FAQ accordion with its language toggle
type FAQUI struct {
	UI *ebitenui.UI

	OnToggleLang func()
	OnGoBack     func()

	accordion Accordion
	entries   *widget.Container
	dirty     bool

	faces faces
}

func NewFAQUI(onToggleLang, onGoBack func()) *FAQUI {
	ui := &FAQUI{
		OnToggleLang: onToggleLang,
		OnGoBack:     onGoBack,
		accordion:    NewAccordion(),
		faces:        loadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *FAQUI) buildUI() {
	strs := cfg.Text().FAQ
	root := newRoot()
	content := newColumn(16, 8, true)

	header := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
		)),
	)
	header.AddChild(newLabel(strs.Heading, &ui.faces.title, cfg.White))
	header.AddChild(newButton(strs.Toggle, &ui.faces.normal, 120, func() {
		if ui.OnToggleLang != nil {
			ui.OnToggleLang()
		}
	}))
	content.AddChild(header)

	ui.entries = newColumn(0, 6, false)
	ui.showEntries()
	content.AddChild(ui.entries)

	content.AddChild(newButton(strs.Back, &ui.faces.normal, 90, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))
	content.AddChild(newLabel(strs.Copyright, &ui.faces.small, mutedColor))

	root.AddChild(content)
	ui.UI = &ebitenui.UI{Container: root}
}

// showEntries lists the questions, with the answer under the open one
func (ui *FAQUI) showEntries() {
	ui.entries.RemoveChildren()
	rtl := cfg.CurrentLang.RTL()
	for i, e := range cfg.Text().FAQ.Entries {
		open := ui.accordion.IsOpen(i)
		ui.entries.AddChild(newButton(entryLabel(e.Question, open, rtl), &ui.faces.normal, 560, func() {
			ui.accordion.Toggle(i)
			ui.dirty = true
		}))
		if !open {
			continue
		}
		padding := widget.Insets{Top: 6, Bottom: 8, Left: 10, Right: 10}
		panel := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(&padding),
				widget.RowLayoutOpts.Spacing(2),
			)),
		)
		for _, line := range wrap(e.Answer, 70) {
			panel.AddChild(newLabel(line, &ui.faces.small, labelColor))
		}
		ui.entries.AddChild(panel)
	}
}

// Relabel rebuilds the screen in the current language. The open entry
// stays open.
func (ui *FAQUI) Relabel() {
	ui.buildUI()
}

func (ui *FAQUI) Update() {
	ui.UI.Update()
	// Entries are rebuilt outside the click handler that changed them
	if ui.dirty {
		ui.dirty = false
		ui.showEntries()
	}
}
