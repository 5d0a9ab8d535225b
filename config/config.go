package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ScrollConfig tunes the virtual scroll that stands in for the page scroll.
type ScrollConfig struct {
	Distance       float64 // Pixels of scroll over which the showcase is pinned
	WheelStep      float64 // Pixels per wheel notch
	KeyStep        float64 // Pixels per arrow key press
	PageStep       float64 // Pixels per page up/down
	DragMultiplier float64 // Touch/mouse drag multiplier
	Smoothing      float64 // Per-tick lerp of position toward target (1 = instant)
	Epsilon        float64 // Position snap threshold in pixels
}

// RendererConfig contains frame renderer constants shared by all breakpoints
type RendererConfig struct {
	Epsilon       float64 // |target-current| below which the cursor snaps and stops redrawing
	Background    color.RGBA
	FadeInFrames  int // Ticks for the canvas layer to fade in after the first frame is ready
	GateThreshold float64
}

// FrameCacheConfig contains loading policy constants
type FrameCacheConfig struct {
	HeadCount   int // Leading indices in the priority set
	TailCount   int // Trailing indices in the priority set
	Percentiles int // Evenly spaced samples through the sequence
	MaxAttempts int // Extensions tried per index before giving up
	AssetRoot   string
}

// LoadingConfig drives the intro loading overlay
type LoadingConfig struct {
	Duration   time.Duration
	FadeOut    time.Duration
	SessionTTL time.Duration
	CupSize    float64
}

// NetworkConfig holds endpoints used by the kiosk
type NetworkConfig struct {
	APIBaseURL  string // Site API (contact relay, blog proxy)
	RemoteURL   string // Optional websocket progress feed
	HTTPTimeout time.Duration
}

// BlogConfig contains blog reader settings
type BlogConfig struct {
	BaseURL     string // WordPress base URL, usually from WORDPRESS_API_URL
	Revalidate  time.Duration
	SimilarSize int
	Placeholder string
}

// NavConfig lays out the navigation bar
type NavConfig struct {
	Height    float64
	Padding   float64
	Spacing   float64
	TextColor color.RGBA
	HoverText color.RGBA
}

// FooterConfig configures the footer reveal
type FooterConfig struct {
	SiteURL    string
	InfoEmail  string
	QRSize     int
	GlowPeriod float64 // Seconds for one glow half-cycle
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipIntro bool
	ShowStats bool
}

// Render layers. Default draws at backing resolution, LayerUI draws in CSS
// pixels and is scaled up when composited.
const (
	Default ecs.LayerID = iota
	LayerUI
)

// Global configuration instances
var C *Config
var Scroll ScrollConfig
var Renderer RendererConfig
var FrameCache FrameCacheConfig
var Loading LoadingConfig
var Network NetworkConfig
var Blog BlogConfig
var Nav NavConfig
var Footer FooterConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Ink          = color.RGBA{R: 1, G: 1, B: 1, A: 255}
	Amber        = color.RGBA{R: 251, G: 191, B: 36, A: 255}
	Grey         = color.RGBA{R: 74, G: 74, B: 74, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SuccessGreen = color.RGBA{R: 100, G: 220, B: 120, A: 255}
	FailRed      = color.RGBA{R: 255, G: 90, B: 90, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "CoffeeOn",
	}

	Scroll = ScrollConfig{
		Distance:       4000,
		WheelStep:      120,
		KeyStep:        60,
		PageStep:       600,
		DragMultiplier: 2,
		Smoothing:      0.18,
		Epsilon:        0.5,
	}

	Renderer = RendererConfig{
		Epsilon:       0.01,
		Background:    Ink,
		FadeInFrames:  30,
		GateThreshold: 0.999,
	}

	FrameCache = FrameCacheConfig{
		HeadCount:   3,
		TailCount:   3,
		Percentiles: 10,
		MaxAttempts: 3,
		AssetRoot:   "public",
	}

	Loading = LoadingConfig{
		Duration:   3 * time.Second,
		FadeOut:    700 * time.Millisecond,
		SessionTTL: 30 * time.Minute,
		CupSize:    300,
	}

	Network = NetworkConfig{
		APIBaseURL:  "http://localhost:8080",
		HTTPTimeout: 5 * time.Second,
	}

	Blog = BlogConfig{
		Revalidate:  60 * time.Second,
		SimilarSize: 3,
		Placeholder: "/placeholder.jpg",
	}

	Nav = NavConfig{
		Height:    48,
		Padding:   24,
		Spacing:   28,
		TextColor: White,
		HoverText: Amber,
	}

	Footer = FooterConfig{
		SiteURL:    "https://coffeeon.com.sa",
		InfoEmail:  "hello@coffeeon.com.sa",
		QRSize:     128,
		GlowPeriod: 2.2,
	}
}
