package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lao-tseu-is-alive/swarm-scape/pb"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

const (
	systemName     = "SwarmScape"
	worldActorName = "world"
	askTimeout     = 2 * time.Second
)

var (
	// ErrNotStarted is returned by calls made before Start or after Stop.
	ErrNotStarted = errors.New("engine is not started")
	// ErrRejected wraps the reason the world gave for refusing a command.
	ErrRejected = errors.New("command rejected by the world")
)

// Engine runs the world actor inside a goakt actor system and exposes it to
// the rest of the program as plain method calls.
type Engine struct {
	cfg    *Config
	logger golog.Logger

	mu     sync.Mutex
	system actor.ActorSystem
	world  *actor.PID
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapshots chan *pb.WorldSnapshot
	density   chan *pb.DensityGrid
}

func NewEngine(cfg *Config, logger golog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Engine{
		cfg:       cfg,
		logger:    logger,
		snapshots: make(chan *pb.WorldSnapshot, 10), // Buffer to avoid blocking
		density:   make(chan *pb.DensityGrid, 4),
	}, nil
}

func (e *Engine) Config() *Config { return e.cfg }

// Snapshots receives one snapshot per frame; frames are dropped while the channel is full.
func (e *Engine) Snapshots() <-chan *pb.WorldSnapshot { return e.snapshots }

// Density receives every published density grid.
func (e *Engine) Density() <-chan *pb.DensityGrid { return e.density }

// Start boots the actor system and spawns the world, which immediately
// populates itself with the fallback swarm.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.system != nil {
		return nil
	}

	worldActor, err := NewWorldActor(e.cfg, e.snapshots, e.density)
	if err != nil {
		return err
	}
	system, err := actor.NewActorSystem(systemName,
		actor.WithLogger(e.logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return fmt.Errorf("failed to start actor system: %w", err)
	}
	pid, err := system.Spawn(ctx, worldActorName, worldActor)
	if err != nil {
		_ = system.Stop(ctx)
		return fmt.Errorf("failed to spawn world: %w", err)
	}
	e.system = system
	e.world = pid
	return nil
}

// RunDriver starts the frame driver in the background. It stops with ctx or Stop.
func (e *Engine) RunDriver(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.system == nil {
		return ErrNotStarted
	}
	if e.cancel != nil {
		return nil
	}
	dctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	driver := NewDriver(e.cfg.FrameInterval(), e.Tick, e.logger)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		driver.Run(dctx)
	}()
	return nil
}

// Stop cancels the driver, waits for it, then shuts the actor system down.
func (e *Engine) Stop(ctx context.Context) error {
	e.mu.Lock()
	cancel, system := e.cancel, e.system
	e.cancel, e.system, e.world = nil, nil, nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
	if system == nil {
		return nil
	}
	if err := system.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop actor system: %w", err)
	}
	return nil
}

func (e *Engine) pid() (*actor.PID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.world == nil {
		return nil, ErrNotStarted
	}
	return e.world, nil
}

// Tick asks the world to run one frame at host time nowMs.
func (e *Engine) Tick(ctx context.Context, nowMs int64) error {
	pid, err := e.pid()
	if err != nil {
		return err
	}
	return actor.Tell(ctx, pid, &pb.Tick{TimeMs: nowMs})
}

// AddAgent inserts a store record; it lands between two frames.
func (e *Engine) AddAgent(ctx context.Context, cfg flock.AgentConfig) error {
	pid, err := e.pid()
	if err != nil {
		return err
	}
	return actor.Tell(ctx, pid, &pb.AgentAdded{Config: ConfigToProto(cfg)})
}

// ChangeAgent updates the color of a store-backed agent.
func (e *Engine) ChangeAgent(ctx context.Context, cfg flock.AgentConfig) error {
	pid, err := e.pid()
	if err != nil {
		return err
	}
	return actor.Tell(ctx, pid, &pb.AgentChanged{Config: ConfigToProto(cfg)})
}

func (e *Engine) RemoveAgent(ctx context.Context, id string) error {
	pid, err := e.pid()
	if err != nil {
		return err
	}
	return actor.Tell(ctx, pid, &pb.AgentRemoved{Id: id})
}

// SetParameters replaces the steering parameters from the next frame on.
// Invalid parameters are refused and the world keeps its current ones.
func (e *Engine) SetParameters(ctx context.Context, p flock.Parameters) error {
	return e.command(ctx, &pb.UpdateParameters{Params: ParametersToProto(p)})
}

// SetWeights replaces the three steering weights and keeps whatever limits
// and perception radius the world holds when the command is handled.
func (e *Engine) SetWeights(ctx context.Context, cohesion, separation, alignment float64) error {
	return e.command(ctx, &pb.UpdateWeights{Cohesion: cohesion, Separation: separation, Alignment: alignment})
}

// SetHeights replaces the heightmap.
func (e *Engine) SetHeights(ctx context.Context, heights []float64) error {
	return e.command(ctx, &pb.SetHeights{Heights: heights})
}

// ResetPopulation respawns every agent; fallbackCount > 0 also resizes the fallback swarm.
func (e *Engine) ResetPopulation(ctx context.Context, fallbackCount int) error {
	return e.command(ctx, &pb.ResetPopulation{FallbackCount: int32(fallbackCount)})
}

// Snapshot returns the state of the world after every message sent so far.
func (e *Engine) Snapshot(ctx context.Context) (*pb.WorldSnapshot, error) {
	pid, err := e.pid()
	if err != nil {
		return nil, err
	}
	reply, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, askTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	snap, ok := reply.(*pb.WorldSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected snapshot reply %T", reply)
	}
	return snap, nil
}

func (e *Engine) command(ctx context.Context, msg proto.Message) error {
	pid, err := e.pid()
	if err != nil {
		return err
	}
	reply, err := actor.Ask(ctx, pid, msg, askTimeout)
	if err != nil {
		return fmt.Errorf("failed to send %T: %w", msg, err)
	}
	a, ok := reply.(*pb.Ack)
	if !ok {
		return fmt.Errorf("unexpected reply %T to %T", reply, msg)
	}
	if !a.GetAccepted() {
		return fmt.Errorf("%w: %s", ErrRejected, a.GetReason())
	}
	return nil
}
