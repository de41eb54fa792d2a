package simulation

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/lao-tseu-is-alive/swarm-scape/pb"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/heightmap"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	golog "github.com/tochemey/goakt/v3/log"
)

// ErrUnknownAgent is returned when a change or removal names an agent that
// did not come from the population source.
var ErrUnknownAgent = errors.New("unknown agent")

// World is the authoritative simulation state: the live population, the
// steering parameters and the heightmap. It is not safe for concurrent use;
// WorldActor serialises every access through its mailbox.
type World struct {
	cfg     *Config
	stepper *flock.Stepper
	spawner *flock.Spawner
	pop     *flock.Population
	params  flock.Parameters
	heights []float64

	// agents announced by the population source, in arrival order
	external      map[string]flock.AgentConfig
	externalOrder []string
	fallbackCount int

	frame       int64
	lastTimeMs  int64
	lastDensity *pb.DensityGrid
	logger      golog.Logger
}

// NewWorld builds an empty world from cfg. Call SpawnFallback to populate it.
func NewWorld(cfg *Config, logger golog.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	order, err := cfg.Order()
	if err != nil {
		return nil, err
	}
	stepper, err := flock.NewStepper(cfg.Map.MapConfig, cfg.DensityInterval(), order)
	if err != nil {
		return nil, fmt.Errorf("failed to create stepper: %w", err)
	}
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if logger == nil {
		logger = golog.DiscardLogger
	}

	heights := heightmap.Flat(cfg.Map.GridSize)
	if cfg.Map.Terrain == TerrainPerlin {
		heights = heightmap.Perlin(cfg.Map.GridSize, cfg.Map.TerrainSeed, 8, heightmap.MinHeight, 4)
	}

	return &World{
		cfg:           cfg,
		stepper:       stepper,
		spawner:       flock.NewSpawner(seed),
		pop:           flock.NewPopulation(),
		params:        cfg.Parameters,
		heights:       heights,
		external:      make(map[string]flock.AgentConfig),
		fallbackCount: cfg.Population.FallbackCount,
		logger:        logger,
	}, nil
}

// SpawnFallback replaces the population with the local fallback swarm, unless
// the population source already provided agents.
func (w *World) SpawnFallback() {
	if len(w.external) > 0 {
		return
	}
	w.pop.Reset()
	for _, a := range w.spawner.Fallback(w.fallbackCount, w.params, w.stepper.Bounds()) {
		_ = w.pop.Add(a)
	}
	w.logger.Infof("spawned %d fallback agents", w.pop.Len())
}

// FallbackActive reports whether the swarm is the local fallback population.
func (w *World) FallbackActive() bool {
	return len(w.external) == 0
}

// Tick advances one frame at host time nowMs and returns the density grid
// when one was published.
func (w *World) Tick(nowMs int64) (*pb.DensityGrid, bool) {
	cells, published := w.stepper.Advance(w.pop.Agents(), w.params, nowMs)
	w.frame++
	w.lastTimeMs = nowMs
	if !published {
		return nil, false
	}
	w.lastDensity = &pb.DensityGrid{
		GridSize: int32(w.stepper.Map().GridSize),
		Cells:    cells,
		TimeMs:   nowMs,
	}
	return w.lastDensity, true
}

// AddAgent spawns an agent from a store record. The first one replaces the
// fallback population; a repeated id is handled as a change.
func (w *World) AddAgent(cfg flock.AgentConfig) error {
	if cfg.ID == "" {
		return fmt.Errorf("%w: empty id", ErrUnknownAgent)
	}
	if _, ok := w.external[cfg.ID]; ok {
		return w.ChangeAgent(cfg)
	}
	if w.FallbackActive() {
		w.pop.Reset()
	}
	w.external[cfg.ID] = cfg
	w.externalOrder = append(w.externalOrder, cfg.ID)
	a := w.spawner.FromConfig(cfg, w.params, w.stepper.Bounds())
	if !w.stepper.Bounds().Contains(a.Position) {
		w.logger.Warnf("agent %q starts outside the world at %v and wraps on its first frame", cfg.ID, a.Position)
	}
	return w.pop.Add(a)
}

// ChangeAgent applies a record update. Only the color is taken into account:
// position and velocity belong to the simulation.
func (w *World) ChangeAgent(cfg flock.AgentConfig) error {
	if _, ok := w.external[cfg.ID]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAgent, cfg.ID)
	}
	w.external[cfg.ID] = cfg
	if a, ok := w.pop.Get(cfg.ID); ok {
		a.Color = cfg.ColorOrDefault()
	}
	return nil
}

// RemoveAgent drops an agent. Removing the last one brings the fallback
// population back.
func (w *World) RemoveAgent(id string) error {
	if _, ok := w.external[id]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAgent, id)
	}
	delete(w.external, id)
	if i := slices.Index(w.externalOrder, id); i >= 0 {
		w.externalOrder = slices.Delete(w.externalOrder, i, i+1)
	}
	w.pop.Remove(id)
	if w.FallbackActive() {
		w.SpawnFallback()
	}
	return nil
}

// Reset respawns the whole population at fresh random positions. A positive
// fallbackCount replaces the configured fallback size.
func (w *World) Reset(fallbackCount int) {
	if fallbackCount > 0 {
		w.fallbackCount = fallbackCount
	}
	if w.FallbackActive() {
		w.SpawnFallback()
		return
	}
	w.pop.Reset()
	for _, id := range w.externalOrder {
		_ = w.pop.Add(w.spawner.FromConfig(w.external[id], w.params, w.stepper.Bounds()))
	}
}

// SetParameters takes effect on the next frame. Invalid values are rejected
// and the current parameters are kept.
func (w *World) SetParameters(p flock.Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.params = p
	return nil
}

// SetWeights changes only the steering weights of the parameters in force
// when it is called. Invalid weights are rejected like in SetParameters.
func (w *World) SetWeights(cohesion, separation, alignment float64) error {
	return w.SetParameters(w.params.WithWeights(cohesion, separation, alignment))
}

func (w *World) Parameters() flock.Parameters {
	return w.params
}

// SetHeights replaces the heightmap; it must have one value per grid cell.
func (w *World) SetHeights(h []float64) error {
	if err := heightmap.Validate(h, w.stepper.Map().GridSize); err != nil {
		return err
	}
	w.heights = slices.Clone(h)
	return nil
}

func (w *World) Heights() []float64 {
	return slices.Clone(w.heights)
}

func (w *World) Len() int {
	return w.pop.Len()
}

func (w *World) Frame() int64 {
	return w.frame
}

// LastDensity is the most recently published grid, or nil before the first one.
func (w *World) LastDensity() *pb.DensityGrid {
	return w.lastDensity
}

// Snapshot copies the current state into a message safe to hand to other goroutines.
func (w *World) Snapshot() *pb.WorldSnapshot {
	agents := w.pop.Agents()
	snap := &pb.WorldSnapshot{
		Agents:  make([]*pb.AgentState, 0, len(agents)),
		Heights: slices.Clone(w.heights),
		Frame:   w.frame,
		Params:  ParametersToProto(w.params),
		TimeMs:  w.lastTimeMs,
	}
	for _, a := range agents {
		snap.Agents = append(snap.Agents, AgentToProto(a))
	}
	if w.lastDensity != nil {
		snap.Density = &pb.DensityGrid{
			GridSize: w.lastDensity.GridSize,
			Cells:    slices.Clone(w.lastDensity.Cells),
			TimeMs:   w.lastDensity.TimeMs,
		}
	}
	return snap
}

// WorldActor owns a World and serialises frames and population changes
// through its mailbox.
type WorldActor struct {
	world      *World
	snapshotCh chan<- *pb.WorldSnapshot
	densityCh  chan<- *pb.DensityGrid

	// --- Benchmark Stats ---
	frameCount   int
	droppedCount int
	lastLogTime  time.Time
}

// NewWorldActor creates the world logic unit. Either channel may be nil.
func NewWorldActor(cfg *Config, snapshotCh chan<- *pb.WorldSnapshot, densityCh chan<- *pb.DensityGrid) (*WorldActor, error) {
	world, err := NewWorld(cfg, golog.DiscardLogger)
	if err != nil {
		return nil, err
	}
	return &WorldActor{
		world:       world,
		snapshotCh:  snapshotCh,
		densityCh:   densityCh,
		lastLogTime: time.Now(),
	}, nil
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	w.world.logger = ctx.ActorSystem().Logger()
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Info("World started, spawning the fallback swarm...")
		w.world.SpawnFallback()

	case *pb.Tick:
		w.logBenchmarks(ctx)
		if grid, ok := w.world.Tick(msg.GetTimeMs()); ok {
			w.pushDensity(grid)
		}
		w.frameCount++
		w.pushSnapshot()

	case *pb.AgentAdded:
		if msg.GetConfig() == nil {
			ctx.Logger().Warnf("agent added without a record, ignored")
			return
		}
		if err := w.world.AddAgent(ConfigFromProto(msg.GetConfig())); err != nil {
			ctx.Logger().Warnf("add agent %q: %v", msg.GetConfig().GetId(), err)
		}

	case *pb.AgentChanged:
		if msg.GetConfig() == nil {
			return
		}
		if err := w.world.ChangeAgent(ConfigFromProto(msg.GetConfig())); err != nil {
			ctx.Logger().Warnf("change agent: %v", err)
		}

	case *pb.AgentRemoved:
		if err := w.world.RemoveAgent(msg.GetId()); err != nil {
			ctx.Logger().Warnf("remove agent: %v", err)
		}

	case *pb.UpdateParameters:
		err := w.world.SetParameters(ParametersFromProto(msg.GetParams()))
		if err != nil {
			ctx.Logger().Warnf("parameters rejected, keeping the current ones: %v", err)
		}
		ctx.Response(ack(err))

	case *pb.UpdateWeights:
		err := w.world.SetWeights(msg.GetCohesion(), msg.GetSeparation(), msg.GetAlignment())
		if err != nil {
			ctx.Logger().Warnf("weights rejected, keeping the current ones: %v", err)
		}
		ctx.Response(ack(err))

	case *pb.SetHeights:
		err := w.world.SetHeights(msg.GetHeights())
		if err != nil {
			ctx.Logger().Warnf("heightmap rejected: %v", err)
		}
		ctx.Response(ack(err))

	case *pb.ResetPopulation:
		w.world.Reset(int(msg.GetFallbackCount()))
		ctx.Logger().Infof("population reset: %d agents", w.world.Len())
		ctx.Response(ack(nil))

	case *pb.GetSnapshot:
		ctx.Response(w.world.Snapshot())

	default:
		ctx.Unhandled()
	}
}

func ack(err error) *pb.Ack {
	if err != nil {
		return &pb.Ack{Accepted: false, Reason: err.Error()}
	}
	return &pb.Ack{Accepted: true}
}

func (w *WorldActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 FRAME RATE: %d/sec (dropped snapshots: %d) | Agents: %d",
			w.frameCount, w.droppedCount, w.world.Len())
		w.frameCount = 0
		w.droppedCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.world.Snapshot():
	default:
		// consumer busy, skip frame
		w.droppedCount++
	}
}

func (w *WorldActor) pushDensity(grid *pb.DensityGrid) {
	if w.densityCh == nil {
		return
	}
	select {
	case w.densityCh <- grid:
	default:
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Info("World is shutdown...")
	return nil
}
