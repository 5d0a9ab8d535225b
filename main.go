package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/automoto/coffeeon/blog"
	"github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/contact"
	"github.com/automoto/coffeeon/fonts"
	"github.com/automoto/coffeeon/network"
	"github.com/automoto/coffeeon/responsive"
	"github.com/automoto/coffeeon/scenes"
	"github.com/automoto/coffeeon/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// layouter is implemented by scenes that size their own screen
type layouter interface {
	Layout(outsideWidth, outsideHeight int) (int, int)
}

type Game struct {
	scene    scenes.Scene
	showcase *scenes.ShowcaseScene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(env *scenes.Env) *Game {
	g := &Game{}
	g.showcase = scenes.NewShowcaseScene(g, env)
	g.scene = g.showcase
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	if l, ok := g.scene.(layouter); ok {
		return l.Layout(width, height)
	}
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "Optional YAML override file")
	fontPath := flag.String("font", "", "TTF used for all text; needed for Arabic glyphs")
	remote := flag.String("remote", "", "Progress relay, e.g. ws://host:7373")
	skipIntro := flag.Bool("skip-intro", false, "Skip the intro overlay")
	stats := flag.Bool("stats", false, "Show the sequencer stats overlay (F3 toggles)")
	debug := flag.Bool("debug", false, "Verbose logging")
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; using defaults")
		}
	}
	config.ApplyEnv()
	if *remote != "" {
		config.Network.RemoteURL = *remote
	}
	config.Debug.SkipIntro = *skipIntro
	config.Debug.ShowStats = *stats

	override, err := fonts.ReadOverride(*fontPath)
	if err != nil {
		log.Warn().Err(err).Msg("Using bundled fonts")
	}
	if err := fonts.LoadDefaults(override); err != nil {
		log.Fatal().Err(err).Msg("Could not load fonts")
	}

	// Initialize persistence and load saved preferences
	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("Could not initialize persistence; intro flag kept in memory")
	}
	systems.ApplySavedPreferences(systems.LoadPreferences())

	httpClient := &http.Client{Timeout: config.Network.HTTPTimeout}
	cache := blog.NewCache(config.Blog.Revalidate)
	defer cache.Stop()

	env := &scenes.Env{
		Flag:    systems.DefaultIntroFlag(),
		Blog:    blog.NewClient(config.Blog.BaseURL, httpClient, cache),
		Contact: &contact.Client{BaseURL: config.Network.APIBaseURL, HTTP: httpClient},
		Device:  responsive.DetectDevice(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if config.Network.RemoteURL != "" {
		env.Remote = network.NewProgressClient()
		env.Remote.Connect(ctx, config.Network.RemoteURL)
		defer env.Remote.Disconnect()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := NewGame(env)
	defer game.showcase.Close()
	if err := ebiten.RunGame(game); err != nil {
		log.Error().Err(err).Msg("Game exited")
	}
}
