package ui

import (
	cfg "github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/contact"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// ContactUI is the contact form screen
type ContactUI struct {
	UI *ebitenui.UI

	OnSend   func(msg contact.Message)
	OnGoBack func()

	nameInput    *widget.TextInput
	emailInput   *widget.TextInput
	mobileInput  *widget.TextInput
	messageInput *widget.TextInput
	successLabel *widget.Label
	failLabel    *widget.Label
	sendBtn      *widget.Button

	faces faces
}

func NewContactUI(onSend func(msg contact.Message), onGoBack func()) *ContactUI {
	ui := &ContactUI{
		OnSend:   onSend,
		OnGoBack: onGoBack,
		faces:    loadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *ContactUI) buildUI() {
	strs := cfg.Text().Contact
	root := newRoot()
	content := newColumn(16, 10, true)

	content.AddChild(newLabel(strs.Heading, &ui.faces.title, cfg.White))
	content.AddChild(newLabel(strs.OfficeHours, &ui.faces.small, cfg.Amber))
	content.AddChild(ui.buildForm(strs))

	ui.successLabel = newLabel("", &ui.faces.normal, cfg.SuccessGreen)
	ui.failLabel = newLabel("", &ui.faces.normal, cfg.FailRed)
	content.AddChild(ui.successLabel)
	content.AddChild(ui.failLabel)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	buttons.AddChild(newButton(strs.Back, &ui.faces.normal, 90, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))
	ui.sendBtn = newButton(strs.Send, &ui.faces.normal, 160, func() {
		if ui.OnSend != nil {
			ui.OnSend(ui.Values())
		}
	})
	buttons.AddChild(ui.sendBtn)
	content.AddChild(buttons)

	root.AddChild(content)
	ui.UI = &ebitenui.UI{Container: root}
}

func (ui *ContactUI) buildForm(strs cfg.ContactStrings) *widget.Container {
	padding := widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	field := func(label string, width int) *widget.TextInput {
		panel.AddChild(newLabel(label, &ui.faces.small, labelColor))
		in := newInput(&ui.faces.normal, label, width)
		panel.AddChild(in)
		return in
	}
	ui.nameInput = field(strs.Name, 360)
	ui.emailInput = field(strs.Email, 360)
	ui.mobileInput = field(strs.Mobile, 360)
	ui.messageInput = field(strs.Message, 480)
	return panel
}

// Values returns the form contents with name and mobile sanitized
func (ui *ContactUI) Values() contact.Message {
	return contact.Message{
		Name:    ui.nameInput.GetText(),
		Email:   ui.emailInput.GetText(),
		Mobile:  ui.mobileInput.GetText(),
		Message: ui.messageInput.GetText(),
	}.Sanitized()
}

// sanitizeInputs strips disallowed characters as they are typed
func (ui *ContactUI) sanitizeInputs() {
	if v := ui.nameInput.GetText(); v != contact.SanitizeName(v) {
		ui.nameInput.SetText(contact.SanitizeName(v))
	}
	if v := ui.mobileInput.GetText(); v != contact.SanitizeMobile(v) {
		ui.mobileInput.SetText(contact.SanitizeMobile(v))
	}
}

// SetSending disables the send button while a request is in flight
func (ui *ContactUI) SetSending(sending bool) {
	strs := cfg.Text().Contact
	ui.sendBtn.GetWidget().Disabled = sending
	if sending {
		ui.sendBtn.Text().Label = strs.Sending
		ui.successLabel.Label = ""
		ui.failLabel.Label = ""
	} else {
		ui.sendBtn.Text().Label = strs.Send
	}
}

// ShowResult shows the outcome. Fields are cleared only on success so a
// failed message can be resent.
func (ui *ContactUI) ShowResult(ok bool) {
	strs := cfg.Text().Contact
	if ok {
		ui.successLabel.Label = strs.Success
		ui.failLabel.Label = ""
		for _, in := range []*widget.TextInput{ui.nameInput, ui.emailInput, ui.mobileInput, ui.messageInput} {
			in.SetText("")
		}
		return
	}
	ui.successLabel.Label = ""
	ui.failLabel.Label = strs.Fail
}

func (ui *ContactUI) Update() {
	ui.UI.Update()
	ui.sanitizeInputs()
}
