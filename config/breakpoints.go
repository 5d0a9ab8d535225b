package config

import "time"

// BreakpointConfig holds the tuning constants for one viewport class
type BreakpointConfig struct {
	MaxWidth            int      `yaml:"max_width"` // Inclusive upper bound; 0 means unbounded
	AssetBasePath       string   `yaml:"asset_base_path"`
	TotalFrames         int      `yaml:"total_frames"`
	LoadBatchSize       int      `yaml:"load_batch_size"`
	MaxDevicePixelRatio float64  `yaml:"max_device_pixel_ratio"`
	EasingFactor        float64  `yaml:"easing_factor"`
	ScrubSmoothing      float64  `yaml:"scrub_smoothing"`
	Extensions          []string `yaml:"extensions"`
	BatchDelay          time.Duration
}

// BreakpointsConfig lists the three viewport classes
type BreakpointsConfig struct {
	Mobile  BreakpointConfig `yaml:"mobile"`
	Tablet  BreakpointConfig `yaml:"tablet"`
	Desktop BreakpointConfig `yaml:"desktop"`

	SettleDelay time.Duration // Debounce for resize-settle recomputation

	// Low-end device adjustments
	LowEndMemoryBytes uint64
	LowEndCPUs        int
	LowEndMinBatch    int
	LowEndMaxDPR      float64
}

// Breakpoints is the global breakpoint configuration
var Breakpoints BreakpointsConfig

func init() {
	extensions := []string{"webp", "png", "jpg", "jpeg"}

	Breakpoints = BreakpointsConfig{
		Mobile: BreakpointConfig{
			MaxWidth:            767,
			AssetBasePath:       "webp",
			TotalFrames:         688,
			LoadBatchSize:       10,
			MaxDevicePixelRatio: 1.5,
			EasingFactor:        0.2,
			ScrubSmoothing:      0.5,
			Extensions:          extensions,
			BatchDelay:          60 * time.Millisecond,
		},
		Tablet: BreakpointConfig{
			MaxWidth:            1023,
			AssetBasePath:       "webp",
			TotalFrames:         688,
			LoadBatchSize:       15,
			MaxDevicePixelRatio: 2,
			EasingFactor:        0.15,
			ScrubSmoothing:      0.5,
			Extensions:          extensions,
			BatchDelay:          40 * time.Millisecond,
		},
		Desktop: BreakpointConfig{
			AssetBasePath:       "images-webp",
			TotalFrames:         688,
			LoadBatchSize:       20,
			MaxDevicePixelRatio: 2,
			EasingFactor:        0.12,
			ScrubSmoothing:      0.5,
			Extensions:          extensions,
			BatchDelay:          30 * time.Millisecond,
		},

		SettleDelay: 200 * time.Millisecond,

		LowEndMemoryBytes: 2 << 30,
		LowEndCPUs:        2,
		LowEndMinBatch:    5,
		LowEndMaxDPR:      1,
	}
}
