package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/coffeeon/blog"
	"github.com/automoto/coffeeon/config"
	"github.com/automoto/coffeeon/contact"
	"github.com/automoto/coffeeon/server/api"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	port := flag.Int("port", 8080, "HTTP listen port")
	configPath := flag.String("config", "", "Optional YAML override file")
	revalidate := flag.Duration("revalidate", 0, "Blog cache TTL (default from config)")
	relayPort := flag.Uint("relay-port", 7373, "Progress relay websocket port (0 disables)")
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

	ttl := config.Blog.Revalidate
	if *revalidate > 0 {
		ttl = *revalidate
	}
	cache := blog.NewCache(ttl)
	defer cache.Stop()

	hub := api.NewHub()
	if *relayPort > 0 {
		go func() {
			if err := hub.Start(*relayPort); err != nil {
				log.Error().Err(err).Uint("port", *relayPort).Msg("progress relay stopped")
			}
		}()
	}

	mux := api.NewMux(api.Deps{
		Mailer:      contact.NewSMTPMailer(contact.SMTPConfigFromEnv()),
		Posts:       blog.NewClient(config.Blog.BaseURL, &http.Client{Timeout: config.Network.HTTPTimeout}, cache),
		Hub:         hub,
		SimilarSize: config.Blog.SimilarSize,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("addr", srv.Addr).Dur("revalidate", ttl).Bool("wordpress", config.Blog.BaseURL != "").Msg("starting site api")
	if err := api.Serve(ctx, srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("site api stopped")
	}
	log.Info().Msg("site api shut down")
}
