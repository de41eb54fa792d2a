package simulation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/heightmap"
)

func testConfig(fallback int) *Config {
	cfg := DefaultConfig()
	cfg.Simulation.Seed = 7
	cfg.Population.FallbackCount = fallback
	return cfg
}

func newTestWorld(t *testing.T, fallback int) *World {
	t.Helper()
	w, err := NewWorld(testConfig(fallback), nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	w.SpawnFallback()
	return w
}

func ptr[T any](v T) *T { return &v }

func TestWorld_Fallback(t *testing.T) {
	w := newTestWorld(t, 100)
	if w.Len() != 100 || !w.FallbackActive() {
		t.Fatalf("Len = %d, fallback = %v; want 100 fallback agents", w.Len(), w.FallbackActive())
	}
	snap := w.Snapshot()
	bounds := testConfig(0).Map.Bounds()
	for i, a := range snap.GetAgents() {
		if a.GetId() != fmt.Sprintf("local-%d", i) {
			t.Errorf("agent %d id = %q", i, a.GetId())
		}
		if a.GetColor() != flock.DefaultColor {
			t.Errorf("agent %d color = %q", i, a.GetColor())
		}
		if !bounds.Contains(AgentFromProto(a).Position) {
			t.Errorf("agent %d spawned outside the world: %v", i, a.GetPosition())
		}
	}
}

func TestWorld_PopulationSource(t *testing.T) {
	w := newTestWorld(t, 10)

	if err := w.AddAgent(flock.AgentConfig{ID: "a", InitialX: ptr(1.0), InitialY: ptr(2.0), InitialZ: ptr(3.0)}); err != nil {
		t.Fatalf("AddAgent(a): %v", err)
	}
	if w.Len() != 1 || w.FallbackActive() {
		t.Fatalf("Len = %d; the first store agent must replace the fallback swarm", w.Len())
	}
	a := AgentFromProto(w.Snapshot().GetAgents()[0])
	if a.ID != "a" || a.Position.X != 1 || a.Position.Y != 2 || a.Position.Z != 3 {
		t.Errorf("agent = %+v; want a at (1, 2, 3)", a)
	}
	if a.Color != flock.DefaultColor {
		t.Errorf("color = %q; want default", a.Color)
	}

	if err := w.AddAgent(flock.AgentConfig{ID: "b", Color: ptr("#FF0000")}); err != nil {
		t.Fatalf("AddAgent(b): %v", err)
	}
	if w.Len() != 2 {
		t.Fatalf("Len = %d; want 2", w.Len())
	}

	t.Run("change only recolors", func(t *testing.T) {
		before := w.Snapshot().GetAgents()[0]
		if err := w.ChangeAgent(flock.AgentConfig{ID: "a", InitialX: ptr(-9.0), Color: ptr("#00FF00")}); err != nil {
			t.Fatalf("ChangeAgent: %v", err)
		}
		after := w.Snapshot().GetAgents()[0]
		if after.GetColor() != "#00FF00" {
			t.Errorf("color = %q; want #00FF00", after.GetColor())
		}
		if after.GetPosition().GetX() != before.GetPosition().GetX() {
			t.Errorf("position moved from %v to %v on a change", before.GetPosition(), after.GetPosition())
		}
	})

	t.Run("duplicate add is a change", func(t *testing.T) {
		if err := w.AddAgent(flock.AgentConfig{ID: "b", Color: ptr("#0000FF")}); err != nil {
			t.Fatalf("AddAgent(b again): %v", err)
		}
		if w.Len() != 2 {
			t.Errorf("Len = %d; want 2", w.Len())
		}
	})

	t.Run("unknown ids", func(t *testing.T) {
		if err := w.ChangeAgent(flock.AgentConfig{ID: "zz"}); !errors.Is(err, ErrUnknownAgent) {
			t.Errorf("ChangeAgent(zz) = %v; want ErrUnknownAgent", err)
		}
		if err := w.RemoveAgent("local-0"); !errors.Is(err, ErrUnknownAgent) {
			t.Errorf("RemoveAgent(local-0) = %v; want ErrUnknownAgent", err)
		}
		if err := w.AddAgent(flock.AgentConfig{}); err == nil {
			t.Error("AddAgent accepted an empty id")
		}
	})

	t.Run("removing the last agent restores the fallback", func(t *testing.T) {
		if err := w.RemoveAgent("a"); err != nil {
			t.Fatalf("RemoveAgent(a): %v", err)
		}
		if w.Len() != 1 {
			t.Fatalf("Len = %d; want 1", w.Len())
		}
		if err := w.RemoveAgent("b"); err != nil {
			t.Fatalf("RemoveAgent(b): %v", err)
		}
		if w.Len() != 10 || !w.FallbackActive() {
			t.Errorf("Len = %d; want the 10 fallback agents back", w.Len())
		}
	})
}

func TestWorld_Tick(t *testing.T) {
	w := newTestWorld(t, 50)

	if _, ok := w.Tick(1000); ok {
		t.Error("density published at exactly one interval")
	}
	grid, ok := w.Tick(1001)
	if !ok {
		t.Fatal("density not published after the interval")
	}
	if int(grid.GetGridSize()) != 20 || len(grid.GetCells()) != 400 {
		t.Fatalf("grid size %d with %d cells", grid.GetGridSize(), len(grid.GetCells()))
	}
	var total int32
	for _, c := range grid.GetCells() {
		total += c
	}
	if total > 50 {
		t.Errorf("density sum %d exceeds the population", total)
	}
	if _, ok := w.Tick(1500); ok {
		t.Error("density published twice within one interval")
	}
	if w.Frame() != 3 {
		t.Errorf("Frame = %d; want 3", w.Frame())
	}

	snap := w.Snapshot()
	if snap.GetDensity() == nil || snap.GetDensity().GetTimeMs() != 1001 {
		t.Errorf("snapshot density = %v; want the grid published at 1001", snap.GetDensity())
	}
	snap.GetDensity().Cells[0] = 99
	if w.LastDensity().GetCells()[0] == 99 {
		t.Error("snapshot shares the density buffer with the world")
	}

	speed := w.Parameters().SpeedLimit
	for _, a := range snap.GetAgents() {
		if v := AgentFromProto(a).Velocity.Len(); v > speed+1e-12 {
			t.Errorf("agent %s speed %v above the limit %v", a.GetId(), v, speed)
		}
	}
}

func TestWorld_Deterministic(t *testing.T) {
	a := newTestWorld(t, 30)
	b := newTestWorld(t, 30)
	for i := int64(1); i <= 20; i++ {
		a.Tick(i * 16)
		b.Tick(i * 16)
	}
	sa, sb := a.Snapshot().GetAgents(), b.Snapshot().GetAgents()
	for i := range sa {
		posA, posB := AgentFromProto(sa[i]).Position, AgentFromProto(sb[i]).Position
		if !posA.Eq(posB) {
			t.Fatalf("agent %d diverged: %v vs %v", i, posA, posB)
		}
	}
}

func TestWorld_Parameters(t *testing.T) {
	w := newTestWorld(t, 1)
	good := flock.DefaultParameters().WithWeights(3, 0.5, 2)
	if err := w.SetParameters(good); err != nil {
		t.Fatalf("SetParameters: %v", err)
	}
	bad := good
	bad.SpeedLimit = 0
	if err := w.SetParameters(bad); !errors.Is(err, flock.ErrInvalidParameters) {
		t.Errorf("SetParameters(bad) = %v; want ErrInvalidParameters", err)
	}
	if w.Parameters() != good {
		t.Errorf("Parameters = %+v; want the last valid set %+v", w.Parameters(), good)
	}
	if got := ParametersFromProto(w.Snapshot().GetParams()); got != good {
		t.Errorf("snapshot params = %+v", got)
	}
}

func TestWorld_Heights(t *testing.T) {
	w := newTestWorld(t, 1)
	for i, h := range w.Heights() {
		if h != heightmap.DefaultHeight {
			t.Fatalf("initial height %d = %v; want flat map", i, h)
		}
	}
	if err := w.SetHeights(make([]float64, 10)); !errors.Is(err, heightmap.ErrSize) {
		t.Errorf("SetHeights(10 cells) = %v; want ErrSize", err)
	}
	h := heightmap.Flat(20)
	h[5] = 7
	if err := w.SetHeights(h); err != nil {
		t.Fatalf("SetHeights: %v", err)
	}
	h[5] = 0
	if got := w.Snapshot().GetHeights()[5]; got != 7 {
		t.Errorf("height 5 = %v; want 7 (world keeps its own copy)", got)
	}
}

func TestWorld_PerlinTerrain(t *testing.T) {
	cfg := testConfig(1)
	cfg.Map.Terrain = TerrainPerlin
	cfg.Map.TerrainSeed = 3
	w, err := NewWorld(cfg, nil)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	lo, hi := w.Heights()[0], w.Heights()[0]
	for _, h := range w.Heights() {
		lo, hi = min(lo, h), max(hi, h)
	}
	if lo < heightmap.MinHeight-1e-9 || hi > heightmap.MaxHeight || lo == hi {
		t.Errorf("perlin terrain spans [%v, %v]", lo, hi)
	}
}

func TestWorld_Reset(t *testing.T) {
	w := newTestWorld(t, 5)
	w.Reset(8)
	if w.Len() != 8 {
		t.Errorf("Len = %d; want 8 after resizing the fallback", w.Len())
	}
	_ = w.AddAgent(flock.AgentConfig{ID: "x"})
	_ = w.AddAgent(flock.AgentConfig{ID: "y"})
	w.Reset(0)
	agents := w.Snapshot().GetAgents()
	if len(agents) != 2 || agents[0].GetId() != "x" || agents[1].GetId() != "y" {
		t.Errorf("agents after reset = %v; want x, y", agents)
	}
}

func BenchmarkWorld_Tick(b *testing.B) {
	w, err := NewWorld(testConfig(500), nil)
	if err != nil {
		b.Fatal(err)
	}
	w.SpawnFallback()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Tick(int64(i) * 16)
	}
}
