// Package blog reads posts from a WordPress REST API.
package blog

import (
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Rendered is a WordPress rendered-HTML field
type Rendered struct {
	Rendered string `json:"rendered"`
}

// MediaSize is one generated size of a media item
type MediaSize struct {
	SourceURL string `json:"source_url"`
}

// Media is an embedded featured-media item
type Media struct {
	SourceURL    string `json:"source_url"`
	MediaDetails struct {
		Sizes map[string]MediaSize `json:"sizes"`
	} `json:"media_details"`
}

// Embedded holds the _embed expansions the reader uses
type Embedded struct {
	FeaturedMedia []Media `json:"wp:featuredmedia"`
}

// Post is a WordPress post as returned with ?_embed
type Post struct {
	ID       int       `json:"id"`
	Slug     string    `json:"slug"`
	Date     string    `json:"date"`
	Title    Rendered  `json:"title"`
	Content  Rendered  `json:"content"`
	Excerpt  Rendered  `json:"excerpt"`
	Embedded *Embedded `json:"_embedded,omitempty"`
}

func (p Post) media() (Media, bool) {
	if p.Embedded == nil || len(p.Embedded.FeaturedMedia) == 0 {
		return Media{}, false
	}
	return p.Embedded.FeaturedMedia[0], true
}

// FeaturedImage picks medium_large, then large, then the original upload,
// then placeholder.
func FeaturedImage(p Post, placeholder string) string {
	return pickImage(p, placeholder, "medium_large", "large")
}

// Thumbnail picks the medium size for cards, then the original upload
func Thumbnail(p Post, placeholder string) string {
	return pickImage(p, placeholder, "medium")
}

func pickImage(p Post, placeholder string, sizes ...string) string {
	m, ok := p.media()
	if !ok {
		return placeholder
	}
	for _, s := range sizes {
		if u := m.MediaDetails.Sizes[s].SourceURL; u != "" {
			return u
		}
	}
	if m.SourceURL != "" {
		return m.SourceURL
	}
	return placeholder
}

// PublishedAt parses the post date; zero time when unparseable
func (p Post) PublishedAt() time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PlainText reduces rendered HTML to its visible text. Script and style
// bodies are dropped; line breaks and block ends start a new line.
func PlainText(rendered string) string {
	z := html.NewTokenizer(strings.NewReader(rendered))
	var b strings.Builder
	hidden := 0
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return joinLines(b.String())
		case html.TextToken:
			if hidden == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch a := atom.Lookup(name); {
			case a == atom.Br:
				b.WriteByte('\n')
			case tt == html.StartTagToken && (a == atom.Script || a == atom.Style):
				hidden++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			switch {
			case a == atom.Script || a == atom.Style:
				if hidden > 0 {
					hidden--
				}
			case blockEnds[a]:
				b.WriteByte('\n')
			}
		}
	}
}

var blockEnds = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Li: true, atom.Blockquote: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Figcaption: true, atom.Pre: true, atom.Tr: true,
}

// joinLines trims each line and drops the empty ones
func joinLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
