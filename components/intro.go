package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// IntroData drives the loading overlay shown once per session
type IntroData struct {
	Started   time.Time
	Progress  float64 // 0..1 over the intro duration
	FadeStart time.Time
	Alpha     float64
	Done      bool
}

var Intro = donburi.NewComponentType[IntroData]()
