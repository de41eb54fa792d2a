package flock

import (
	"fmt"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/geometry"
)

// AgentConfig is an agent record from the configuration store.
// Nil fields are resolved to random defaults when the agent is spawned.
type AgentConfig struct {
	ID       string   `json:"id"`
	InitialX *float64 `json:"initialX,omitempty"`
	InitialY *float64 `json:"initialY,omitempty"`
	InitialZ *float64 `json:"initialZ,omitempty"`
	Color    *string  `json:"color,omitempty"`
}

// ColorOrDefault returns the record color or DefaultColor.
func (c AgentConfig) ColorOrDefault() string {
	if c.Color == nil || *c.Color == "" {
		return DefaultColor
	}
	return *c.Color
}

// Spawner creates agents from an injectable random source, so a seeded spawner
// always produces the same swarm.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner returns a spawner backed by a PCG source seeded with seed.
func NewSpawner(seed uint64) *Spawner {
	return NewSpawnerFrom(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSpawnerFrom wraps an existing random source.
func NewSpawnerFrom(src rand.Source) *Spawner {
	return &Spawner{rng: rand.New(src)}
}

func (s *Spawner) between(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// RandomPosition picks a uniform point inside b.
func (s *Spawner) RandomPosition(b Bounds) geometry.Vector3D {
	return geometry.Vector3D{
		X: s.between(b.XMin, b.XMax),
		Y: s.between(b.YMin, b.YMax),
		Z: s.between(b.ZMin, b.ZMax),
	}
}

// RandomVelocity picks a random direction with a speed in [speedLimit/2, speedLimit].
func (s *Spawner) RandomVelocity(speedLimit float64) geometry.Vector3D {
	dir := geometry.Vector3D{
		X: s.between(-1, 1),
		Y: s.between(-1, 1),
		Z: s.between(-1, 1),
	}
	return dir.SetLength(s.between(speedLimit/2, speedLimit))
}

// FromConfig spawns the agent described by cfg. Missing coordinates are drawn
// inside b and a missing color becomes DefaultColor; a record is never rejected.
func (s *Spawner) FromConfig(cfg AgentConfig, p Parameters, b Bounds) *Agent {
	pos := s.RandomPosition(b)
	if cfg.InitialX != nil {
		pos.X = *cfg.InitialX
	}
	if cfg.InitialY != nil {
		pos.Y = *cfg.InitialY
	}
	if cfg.InitialZ != nil {
		pos.Z = *cfg.InitialZ
	}
	return &Agent{
		ID:       cfg.ID,
		Position: pos,
		Velocity: s.RandomVelocity(p.SpeedLimit),
		Color:    cfg.ColorOrDefault(),
	}
}

// FallbackID names the i-th agent of the local fallback population.
func FallbackID(i int) string {
	return fmt.Sprintf("local-%d", i)
}

// Fallback spawns n agents with ids local-0 .. local-(n-1) at random positions.
func (s *Spawner) Fallback(n int, p Parameters, b Bounds) []*Agent {
	agents := make([]*Agent, 0, max(n, 0))
	for i := 0; i < n; i++ {
		agents = append(agents, &Agent{
			ID:       FallbackID(i),
			Position: s.RandomPosition(b),
			Velocity: s.RandomVelocity(p.SpeedLimit),
			Color:    DefaultColor,
		})
	}
	return agents
}
