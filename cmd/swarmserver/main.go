// Command swarmserver runs the simulation headless and streams it to
// websocket observers.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/swarm-scape/internal/recorder"
	"github.com/lao-tseu-is-alive/swarm-scape/internal/store"
	"github.com/lao-tseu-is-alive/swarm-scape/internal/transport/ws"
	"github.com/lao-tseu-is-alive/swarm-scape/pb"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/simulation"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON or YAML configuration file")
	addr := flag.String("addr", "", "listen address (overrides server.addr)")
	recordDir := flag.String("record", "", "directory for density logs (overrides server.recordDir)")
	storePath := flag.String("store", "", "sqlite population store (overrides population.storePath)")
	flag.Parse()

	log.SetPrefix("[server] ")
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configPath); err != nil {
			log.Fatalf("config: %v", err)
		}
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *recordDir != "" {
		cfg.Server.RecordDir = *recordDir
	}
	if *storePath != "" {
		cfg.Population.StorePath = *storePath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
	log.Println("stopped")
}

func run(ctx context.Context, cfg *simulation.Config) error {
	logger := golog.DefaultLogger
	engine, err := simulation.NewEngine(cfg, logger)
	if err != nil {
		return err
	}
	if err := engine.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := engine.Stop(stopCtx); err != nil {
			log.Printf("engine stop: %v", err)
		}
	}()

	// closed last, once every goroutine using them has returned
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Printf("close: %v", err)
			}
		}
	}()
	var wg sync.WaitGroup
	defer wg.Wait()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.Population.StorePath != "" {
		st, err := store.Open(cfg.Population.StorePath)
		if err != nil {
			return err
		}
		closers = append(closers, st)
		events := st.Watch(ctx, cfg.PollInterval(), logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Feed(ctx, events, engine, logger)
		}()
		log.Printf("population synced from %s", cfg.Population.StorePath)
	}

	// the recorder and the hub each get their own copy of the density stream
	hubDensity := engine.Density()
	if cfg.Server.RecordDir != "" {
		rec := recorder.New(cfg.Server.RecordDir)
		closers = append(closers, rec)
		recDensity := make(chan *pb.DensityGrid, 4)
		fanout := make(chan *pb.DensityGrid, 4)
		wg.Add(2)
		go func() {
			defer wg.Done()
			defer close(recDensity)
			defer close(fanout)
			tee(ctx, engine.Density(), recDensity, fanout)
		}()
		go func() {
			defer wg.Done()
			rec.Run(ctx, recDensity, logger)
		}()
		hubDensity = fanout
		log.Printf("recording density to %s", cfg.Server.RecordDir)
	}

	adv, err := simulation.NewAdvisor(cfg)
	if err != nil {
		return err
	}
	hub := ws.NewHub(engine, logger)
	hub.Advice = engine.WithAdvisor(adv)
	// room for the snapshot and the apply around the advisor call itself
	hub.AdviceTimeout = cfg.AdvisorTimeout() + 5*time.Second
	wg.Add(1)
	go func() {
		defer wg.Done()
		hub.Run(ctx, engine.Snapshots(), hubDensity)
	}()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	srv := &http.Server{Addr: cfg.Server.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	if err := engine.RunDriver(ctx); err != nil {
		_ = srv.Close()
		return err
	}

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// tee copies every grid to both outputs, dropping a copy when an output is full.
func tee(ctx context.Context, in <-chan *pb.DensityGrid, a, b chan<- *pb.DensityGrid) {
	for {
		select {
		case <-ctx.Done():
			return
		case g, ok := <-in:
			if !ok {
				return
			}
			for _, out := range []chan<- *pb.DensityGrid{a, b} {
				select {
				case out <- g:
				default:
				}
			}
		}
	}
}
