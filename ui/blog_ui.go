package ui

import (
	"strings"

	"github.com/automoto/coffeeon/blog"
	cfg "github.com/automoto/coffeeon/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// excerptRunes bounds the text shown for one post
const excerptRunes = 600

// BlogUI lists posts and shows one post with similar posts
type BlogUI struct {
	UI *ebitenui.UI

	OnOpen   func(slug string)
	OnGoBack func()

	body        *widget.Container
	statusLabel *widget.Label

	faces faces
}

func NewBlogUI(onOpen func(slug string), onGoBack func()) *BlogUI {
	ui := &BlogUI{
		OnOpen:   onOpen,
		OnGoBack: onGoBack,
		faces:    loadFaces(),
	}
	ui.buildUI()
	return ui
}

func (ui *BlogUI) buildUI() {
	strs := cfg.Text().Blog
	root := newRoot()
	content := newColumn(16, 8, true)

	content.AddChild(newLabel(strs.Heading, &ui.faces.title, cfg.Amber))
	content.AddChild(newLabel(strs.Sub, &ui.faces.small, labelColor))

	ui.statusLabel = newLabel(strs.Loading, &ui.faces.normal, labelColor)
	content.AddChild(ui.statusLabel)

	ui.body = newColumn(0, 6, false)
	content.AddChild(ui.body)

	content.AddChild(newButton(strs.Back, &ui.faces.normal, 90, func() {
		if ui.OnGoBack != nil {
			ui.OnGoBack()
		}
	}))

	root.AddChild(content)
	ui.UI = &ebitenui.UI{Container: root}
}

// SetLoading clears the body and shows the loading text
func (ui *BlogUI) SetLoading() {
	ui.body.RemoveChildren()
	ui.statusLabel.Label = cfg.Text().Blog.Loading
}

// ShowPosts lists posts as buttons. An empty list shows the not found text.
func (ui *BlogUI) ShowPosts(posts []blog.Post) {
	ui.body.RemoveChildren()
	if len(posts) == 0 {
		ui.statusLabel.Label = cfg.Text().Blog.NotFound
		return
	}
	ui.statusLabel.Label = ""
	for _, p := range posts {
		ui.body.AddChild(ui.postButton(p))
	}
}

// ShowPost shows one post followed by similar posts
func (ui *BlogUI) ShowPost(p blog.Post, similar []blog.Post, found bool) {
	ui.body.RemoveChildren()
	if !found {
		ui.statusLabel.Label = cfg.Text().Blog.NotFound
		return
	}
	ui.statusLabel.Label = ""

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	panel.AddChild(newLabel(blog.PlainText(p.Title.Rendered), &ui.faces.normal, cfg.White))
	panel.AddChild(newLabel(postDate(p), &ui.faces.small, mutedColor))
	for _, line := range wrap(truncate(blog.PlainText(p.Content.Rendered), excerptRunes), 80) {
		panel.AddChild(newLabel(line, &ui.faces.small, labelColor))
	}
	ui.body.AddChild(panel)

	for _, s := range similar {
		ui.body.AddChild(ui.postButton(s))
	}
}

func (ui *BlogUI) postButton(p blog.Post) *widget.Button {
	slug := p.Slug
	label := blog.PlainText(p.Title.Rendered)
	if d := postDate(p); d != "" {
		label += "  ·  " + d
	}
	return newButton(label, &ui.faces.normal, 480, func() {
		if ui.OnOpen != nil {
			ui.OnOpen(slug)
		}
	})
}

func postDate(p blog.Post) string {
	t := p.PublishedAt()
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n])) + "…"
}

// wrap breaks s into lines of at most width runes at word boundaries
func wrap(s string, width int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		var line []rune
		for _, word := range strings.Fields(para) {
			w := []rune(word)
			if len(line) > 0 && len(line)+1+len(w) > width {
				lines = append(lines, string(line))
				line = line[:0]
			}
			if len(line) > 0 {
				line = append(line, ' ')
			}
			line = append(line, w...)
		}
		if len(line) > 0 {
			lines = append(lines, string(line))
		}
	}
	return lines
}

func (ui *BlogUI) Update() {
	ui.UI.Update()
}
