package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileWindow struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type fileScroll struct {
	Distance  float64 `yaml:"distance"`
	WheelStep float64 `yaml:"wheel_step"`
	Smoothing float64 `yaml:"smoothing"`
}

type fileNetwork struct {
	APIBaseURL string `yaml:"api_base_url"`
	RemoteURL  string `yaml:"remote_url"`
}

type fileBreakpoints struct {
	Mobile  *BreakpointConfig `yaml:"mobile"`
	Tablet  *BreakpointConfig `yaml:"tablet"`
	Desktop *BreakpointConfig `yaml:"desktop"`
}

// File is the on-disk shape of an override file. Absent keys keep defaults.
type File struct {
	Window      *fileWindow      `yaml:"window"`
	Scroll      *fileScroll      `yaml:"scroll"`
	Network     *fileNetwork     `yaml:"network"`
	BlogBaseURL string           `yaml:"blog_base_url"`
	AssetRoot   string           `yaml:"asset_root"`
	Breakpoints *fileBreakpoints `yaml:"breakpoints"`
	Timelines   []TimelineConfig `yaml:"timelines"`
	Partner     *TimelineConfig  `yaml:"partner_timeline"`
}

// LoadFile reads a YAML override file and applies it to the globals
func LoadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	Apply(&f)
	return nil
}

// Apply merges non-zero values of f into the globals
func Apply(f *File) {
	if f.Window != nil {
		if f.Window.Width > 0 {
			C.Width = f.Window.Width
		}
		if f.Window.Height > 0 {
			C.Height = f.Window.Height
		}
		if f.Window.Title != "" {
			C.Title = f.Window.Title
		}
	}
	if f.Scroll != nil {
		Scroll.Distance = firstNonZero(f.Scroll.Distance, Scroll.Distance)
		Scroll.WheelStep = firstNonZero(f.Scroll.WheelStep, Scroll.WheelStep)
		Scroll.Smoothing = firstNonZero(f.Scroll.Smoothing, Scroll.Smoothing)
	}
	if f.Network != nil {
		if f.Network.APIBaseURL != "" {
			Network.APIBaseURL = f.Network.APIBaseURL
		}
		if f.Network.RemoteURL != "" {
			Network.RemoteURL = f.Network.RemoteURL
		}
	}
	if f.BlogBaseURL != "" {
		Blog.BaseURL = f.BlogBaseURL
	}
	if f.AssetRoot != "" {
		FrameCache.AssetRoot = f.AssetRoot
	}
	if f.Breakpoints != nil {
		mergeBreakpoint(&Breakpoints.Mobile, f.Breakpoints.Mobile)
		mergeBreakpoint(&Breakpoints.Tablet, f.Breakpoints.Tablet)
		mergeBreakpoint(&Breakpoints.Desktop, f.Breakpoints.Desktop)
	}
	if len(f.Timelines) > 0 {
		Timelines = f.Timelines
	}
	if f.Partner != nil && len(f.Partner.Items) > 0 {
		PartnerTimeline = *f.Partner
	}
}

// ApplyEnv reads the environment variables the site has always used
func ApplyEnv() {
	if v := os.Getenv("WORDPRESS_API_URL"); v != "" {
		Blog.BaseURL = v
	}
	if v := os.Getenv("COFFEEON_API_URL"); v != "" {
		Network.APIBaseURL = v
	}
	if v := os.Getenv("COFFEEON_REMOTE_URL"); v != "" {
		Network.RemoteURL = v
	}
}

func mergeBreakpoint(dst, src *BreakpointConfig) {
	if src == nil {
		return
	}
	if src.MaxWidth > 0 {
		dst.MaxWidth = src.MaxWidth
	}
	if src.AssetBasePath != "" {
		dst.AssetBasePath = src.AssetBasePath
	}
	if src.TotalFrames > 0 {
		dst.TotalFrames = src.TotalFrames
	}
	if src.LoadBatchSize > 0 {
		dst.LoadBatchSize = src.LoadBatchSize
	}
	dst.MaxDevicePixelRatio = firstNonZero(src.MaxDevicePixelRatio, dst.MaxDevicePixelRatio)
	dst.EasingFactor = firstNonZero(src.EasingFactor, dst.EasingFactor)
	dst.ScrubSmoothing = firstNonZero(src.ScrubSmoothing, dst.ScrubSmoothing)
	if len(src.Extensions) > 0 {
		dst.Extensions = src.Extensions
	}
}

func firstNonZero(v, fallback float64) float64 {
	if v != 0 {
		return v
	}
	return fallback
}
