package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/swarm-scape/internal/store"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/simulation"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/viewer"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON or YAML configuration file")
	fallback := flag.Int("agents", -1, "fallback population size (overrides the configuration)")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *fallback >= 0 {
		cfg.Population.FallbackCount = *fallback
	}

	// run returns only after the engine is stopped
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *simulation.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := golog.DefaultLogger
	engine, err := simulation.NewEngine(cfg, logger)
	if err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := engine.Start(ctx); err != nil {
		return fmt.Errorf("engine start: %w", err)
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := engine.Stop(stopCtx); err != nil {
			log.Printf("engine stop: %v", err)
		}
	}()

	if cfg.Population.StorePath != "" {
		st, err := store.Open(cfg.Population.StorePath)
		if err != nil {
			return fmt.Errorf("store: %w", err)
		}
		defer st.Close()
		done := make(chan struct{})
		go func() {
			defer close(done)
			store.Feed(ctx, st.Watch(ctx, cfg.PollInterval(), logger), engine, logger)
		}()
		// deferred after st.Close, so it runs first
		defer func() {
			cancel()
			<-done
		}()
	}

	adv, err := simulation.NewAdvisor(cfg)
	if err != nil {
		return fmt.Errorf("advisor: %w", err)
	}

	ebiten.SetWindowSize(cfg.Viewer.Width, cfg.Viewer.Height)
	ebiten.SetWindowTitle("SwarmScape")
	ebiten.SetTPS(cfg.Simulation.FrameRate)

	game := viewer.NewGame(ctx, engine, adv, logger)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}
