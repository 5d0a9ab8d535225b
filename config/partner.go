package config

import (
	"image/color"
	"time"
)

// PartnerConfig tunes the partner page. Images are read from
// {AssetRoot}/{ImageBase}/1000.webp and up. Title lines rise one after
// another, LineStagger apart, from LineOffset line heights below.
type PartnerConfig struct {
	Distance    float64
	ImageBase   string
	Images      int
	Extensions  []string
	LineStagger time.Duration
	LineRise    time.Duration
	LineOffset  float64
}

// Partner layer props, read from item "stage". Each reveal runs 0 to 1:
// the yellow layer clips away to the left, image layers clip in from the
// right, the dark layer slides in from the right edge and the last two
// layers clip in upward.
const (
	PropHeight  = "height"
	PropYellow  = "yellow"
	PropImage1  = "image1"
	PropDark    = "dark"
	PropImage2  = "image2"
	PropBottom  = "bottom"
	PropImage3  = "image3"
	PropSmarter = "smarter"
)

// TimelinePartner names the partner page's scroll timeline
const TimelinePartner = "partner"

var (
	PartnerYellow = color.RGBA{R: 255, G: 216, B: 77, A: 255}
	PartnerDark   = color.RGBA{R: 74, G: 74, B: 74, A: 255}
)

var Partner PartnerConfig

// PartnerTimeline drives the partner section across its whole scroll
// distance. Its frame range is taken over a two-frame axis, so 0..1 covers
// all of it.
var PartnerTimeline TimelineConfig

func reveal(name, prop string, weight float64) PhaseConfig {
	return PhaseConfig{Name: name, Weight: weight, Props: []PropConfig{
		{Prop: prop, From: 0, To: 1, Ease: "none"},
	}}
}

func pause(weight float64) PhaseConfig {
	return PhaseConfig{Name: "pause", Weight: weight}
}

func init() {
	Partner = PartnerConfig{
		Distance:    4200,
		ImageBase:   "partner",
		Images:      3,
		Extensions:  []string{"webp", "jpg", "png"},
		LineStagger: 80 * time.Millisecond,
		LineRise:    time.Second,
		LineOffset:  1.2,
	}

	PartnerTimeline = TimelineConfig{
		Name:       TimelinePartner,
		StartFrame: 0,
		EndFrame:   1,
		Items: []ItemConfig{
			{Name: "title", Phases: []PhaseConfig{
				{Name: "grow", Weight: 2, Props: []PropConfig{
					{Prop: PropScale, From: 1, To: 6, Ease: "power2.inOut"},
					{Prop: PropY, From: 0, To: -0.1, Ease: "power2.inOut"},
					{Prop: PropOpacity, From: 1, To: 1},
				}},
				{Name: "fade", Weight: 0.4, Props: []PropConfig{
					{Prop: PropOpacity, From: 1, To: 0, Ease: "power1.out"},
				}},
			}},
			{Name: "para", Phases: []PhaseConfig{
				{Name: "rise", Weight: 0.8, Props: []PropConfig{
					{Prop: PropOpacity, From: 0, To: 1, Ease: "power2.out"},
					{Prop: PropY, From: 1.2, To: 0, Ease: "power2.out"},
				}},
				{Name: "hold", Weight: 0.2},
				{Name: "fade", Weight: 0.6, Props: []PropConfig{
					{Prop: PropOpacity, From: 1, To: 0, Ease: "none"},
				}},
			}},
			{Name: "stage", Phases: []PhaseConfig{
				{Name: "enter", Weight: 0.5, Props: []PropConfig{
					{Prop: PropOpacity, From: 0, To: 1, Ease: "power2.out"},
					{Prop: PropY, From: 60, To: 0, Ease: "power2.out"},
					{Prop: PropScale, From: 0.96, To: 1, Ease: "power2.out"},
				}},
				{Name: "grow", Weight: 2, Props: []PropConfig{
					{Prop: PropHeight, From: 0.24, To: 0.8, Ease: "none"},
				}},
				{Name: "swap", Weight: 1.5, Props: []PropConfig{
					{Prop: PropYellow, From: 0, To: 1, Ease: "none"},
					{Prop: PropImage1, From: 0, To: 1, Ease: "power1.out"},
				}},
				pause(0.5),
				reveal("dark", PropDark, 1.5),
				pause(0.3),
				reveal("image2", PropImage2, 1),
				pause(0.5),
				reveal("bottom", PropBottom, 1.5),
				pause(0.3),
				reveal("image3", PropImage3, 1),
				pause(0.5),
				reveal("smarter", PropSmarter, 1.5),
			}},
		},
	}
}
