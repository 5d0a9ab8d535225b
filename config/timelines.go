package config

// PropConfig interpolates one visual property across a phase
type PropConfig struct {
	Prop string  `yaml:"prop"`
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Ease string  `yaml:"ease"`
}

// PhaseConfig is one enter/hold/exit step of an item
type PhaseConfig struct {
	Name   string       `yaml:"name"`
	Weight float64      `yaml:"weight"`
	Props  []PropConfig `yaml:"props"`
}

// ItemConfig is one animated element of a timeline
type ItemConfig struct {
	Name   string        `yaml:"name"`
	Phases []PhaseConfig `yaml:"phases"`
}

// TimelineConfig gates a timeline to a frame range of the showcase
type TimelineConfig struct {
	Name       string       `yaml:"name"`
	StartFrame int          `yaml:"start_frame"`
	EndFrame   int          `yaml:"end_frame"`
	Gated      bool         `yaml:"gated"` // Terminal state waits for every frame to load
	Items      []ItemConfig `yaml:"items"`
}

// Property names understood by the layer renderer
const (
	PropOpacity = "opacity"
	PropX       = "x"
	PropY       = "y"
	PropScale   = "scale"
	PropClip    = "clip"
)

// Timeline names
const (
	TimelineIntro    = "intro"
	TimelineMessages = "messages"
	TimelineCards    = "cards"
	TimelineOutro    = "outro"
	TimelineFooter   = "footer"
)

// Timelines is the ordered list of showcase timelines
var Timelines []TimelineConfig

// CardParallax holds the horizontal parallax offset of each product card
var CardParallax = []float64{150, 250, 350, 450}

func enterHoldExit(name string, enter, hold, exit float64, rise float64) ItemConfig {
	return ItemConfig{
		Name: name,
		Phases: []PhaseConfig{
			{Name: "enter", Weight: enter, Props: []PropConfig{
				{Prop: PropOpacity, From: 0, To: 1, Ease: "power2.out"},
				{Prop: PropY, From: rise, To: 0, Ease: "power2.out"},
			}},
			{Name: "hold", Weight: hold, Props: []PropConfig{
				{Prop: PropOpacity, From: 1, To: 1},
				{Prop: PropY, From: 0, To: 0},
			}},
			{Name: "exit", Weight: exit, Props: []PropConfig{
				{Prop: PropOpacity, From: 1, To: 0, Ease: "power2.in"},
				{Prop: PropY, From: 0, To: -rise, Ease: "power2.in"},
			}},
		},
	}
}

func init() {
	messages := make([]ItemConfig, 0, 6)
	for _, name := range []string{"msg0", "msg1", "msg2", "msg3", "msg4", "msg5"} {
		messages = append(messages, enterHoldExit(name, 1, 1.5, 1, 30))
	}

	Timelines = []TimelineConfig{
		{
			Name:       TimelineIntro,
			StartFrame: 0,
			EndFrame:   80,
			Items: []ItemConfig{
				enterHoldExit("title1", 0, 1, 1, 40),
				enterHoldExit("title2", 0.6, 1, 1, 40),
				{Name: "overlay", Phases: []PhaseConfig{
					{Name: "exit", Weight: 1, Props: []PropConfig{
						{Prop: PropOpacity, From: 1, To: 0, Ease: "none"},
					}},
				}},
			},
		},
		{
			Name:       TimelineMessages,
			StartFrame: 80,
			EndFrame:   440,
			Items:      messages,
		},
		{
			Name:       TimelineCards,
			StartFrame: 400,
			EndFrame:   560,
			Items: []ItemConfig{
				{Name: "track", Phases: []PhaseConfig{
					{Name: "slide", Weight: 1, Props: []PropConfig{
						{Prop: PropX, From: 0, To: -1, Ease: "none"},
						{Prop: "parallax", From: 0, To: 1, Ease: "none"},
						{Prop: PropOpacity, From: 1, To: 1},
					}},
				}},
			},
		},
		{
			Name:       TimelineOutro,
			StartFrame: 540,
			EndFrame:   660,
			Gated:      true,
			Items: []ItemConfig{
				{Name: "overlay", Phases: []PhaseConfig{
					{Name: "enter", Weight: 1, Props: []PropConfig{
						{Prop: PropOpacity, From: 0, To: 1, Ease: "power1.inOut"},
					}},
				}},
				{Name: "title", Phases: []PhaseConfig{
					{Name: "enter", Weight: 1, Props: []PropConfig{
						{Prop: PropOpacity, From: 0, To: 1, Ease: "power3.out"},
						{Prop: PropScale, From: 0.9, To: 1, Ease: "power3.out"},
					}},
					{Name: "hold", Weight: 1, Props: []PropConfig{
						{Prop: PropOpacity, From: 1, To: 1},
						{Prop: PropScale, From: 1, To: 1},
					}},
				}},
			},
		},
		{
			Name:       TimelineFooter,
			StartFrame: 640,
			EndFrame:   687,
			Items: []ItemConfig{
				{Name: "footer", Phases: []PhaseConfig{
					{Name: "reveal", Weight: 1, Props: []PropConfig{
						{Prop: PropClip, From: 0, To: 1, Ease: "power2.out"},
						{Prop: PropY, From: 60, To: 0, Ease: "power2.out"},
						{Prop: PropOpacity, From: 0, To: 1, Ease: "power1.inOut"},
					}},
				}},
			},
		},
	}
}
