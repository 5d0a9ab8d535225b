// Package responsive classifies the viewport into mobile, tablet or desktop
// and publishes the tuning profile for that class.
package responsive

import (
	"time"

	"github.com/automoto/coffeeon/config"
)

// Breakpoint is a viewport class
type Breakpoint int

const (
	Mobile Breakpoint = iota
	Tablet
	Desktop
)

func (b Breakpoint) String() string {
	switch b {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// Profile is the tuning injected into the frame cache, renderer and
// sequencer for one breakpoint epoch. Treat it as read-only.
type Profile struct {
	Breakpoint          Breakpoint
	AssetBasePath       string
	TotalFrames         int
	LoadBatchSize       int
	MaxDevicePixelRatio float64
	EasingFactor        float64
	ScrubSmoothing      float64
	Extensions          []string
	BatchDelay          time.Duration
	LowEnd              bool
}

// Classify maps a CSS-pixel width to a breakpoint using cfg's bounds
func Classify(width int, cfg config.BreakpointsConfig) Breakpoint {
	switch {
	case width <= cfg.Mobile.MaxWidth:
		return Mobile
	case width <= cfg.Tablet.MaxWidth:
		return Tablet
	default:
		return Desktop
	}
}

// ProfileFor builds the profile of a breakpoint, degraded for low-end devices
func ProfileFor(bp Breakpoint, cfg config.BreakpointsConfig, dev Device) Profile {
	var bc config.BreakpointConfig
	switch bp {
	case Mobile:
		bc = cfg.Mobile
	case Tablet:
		bc = cfg.Tablet
	default:
		bc = cfg.Desktop
	}
	p := Profile{
		Breakpoint:          bp,
		AssetBasePath:       bc.AssetBasePath,
		TotalFrames:         bc.TotalFrames,
		LoadBatchSize:       bc.LoadBatchSize,
		MaxDevicePixelRatio: bc.MaxDevicePixelRatio,
		EasingFactor:        bc.EasingFactor,
		ScrubSmoothing:      bc.ScrubSmoothing,
		Extensions:          append([]string(nil), bc.Extensions...),
		BatchDelay:          bc.BatchDelay,
	}
	if dev.IsLowEnd(cfg) {
		p.LowEnd = true
		p.LoadBatchSize = max(cfg.LowEndMinBatch, p.LoadBatchSize/2)
		if cfg.LowEndMaxDPR > 0 && p.MaxDevicePixelRatio > cfg.LowEndMaxDPR {
			p.MaxDevicePixelRatio = cfg.LowEndMaxDPR
		}
		p.BatchDelay *= 2
	}
	return p
}
