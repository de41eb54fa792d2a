package flock

import (
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/geometry"
)

func cloneAgents(agents []*Agent) []*Agent {
	out := make([]*Agent, len(agents))
	for i, a := range agents {
		c := *a
		out[i] = &c
	}
	return out
}

func sum(grid []int32) int {
	total := 0
	for _, c := range grid {
		total += int(c)
	}
	return total
}

func TestDensity(t *testing.T) {
	m := DefaultMapConfig()

	t.Run("centre agent", func(t *testing.T) {
		grid := Density([]*Agent{still("a", 0, 3, 0)}, m)
		if len(grid) != 400 {
			t.Fatalf("len = %d; want 400", len(grid))
		}
		if grid[10*20+10] != 1 || sum(grid) != 1 {
			t.Errorf("centre cell = %d, sum = %d; want 1, 1", grid[210], sum(grid))
		}
	})

	t.Run("corners and out of range", func(t *testing.T) {
		agents := []*Agent{
			still("min", -20, 0, -20),
			still("last", 19.99, 0, 19.99),
			still("edge", 20, 0, 0),
			still("far", 25, 0, 0),
			still("behind", 0, 0, -20.5),
		}
		grid := Density(agents, m)
		if grid[0] != 1 {
			t.Errorf("cell 0 = %d; want 1", grid[0])
		}
		if grid[399] != 1 {
			t.Errorf("cell 399 = %d; want 1", grid[399])
		}
		if sum(grid) != 2 {
			t.Errorf("sum = %d; want 2 (out-of-range agents dropped)", sum(grid))
		}
	})

	t.Run("idempotent and bounded by population", func(t *testing.T) {
		agents := NewSpawner(3).Fallback(250, DefaultParameters(), m.Bounds())
		a := Density(agents, m)
		b := Density(agents, m)
		for i := range a {
			if a[i] != b[i] {
				t.Fatalf("cell %d differs between calls: %d vs %d", i, a[i], b[i])
			}
		}
		if sum(a) > len(agents) {
			t.Errorf("sum %d exceeds agent count %d", sum(a), len(agents))
		}
	})

	t.Run("empty swarm", func(t *testing.T) {
		if got := sum(Density(nil, m)); got != 0 {
			t.Errorf("sum = %d; want 0", got)
		}
	})
}

func TestStepper_DensityInterval(t *testing.T) {
	s, err := NewStepper(DefaultMapConfig(), time.Second, OrderSimultaneous)
	if err != nil {
		t.Fatalf("NewStepper: %v", err)
	}
	p := DefaultParameters()
	steps := []struct {
		now  int64
		want bool
	}{
		{0, false},
		{500, false},
		{1000, false},
		{1001, true},
		{1500, false},
		{2001, false},
		{2002, true},
	}
	for _, st := range steps {
		grid, published := s.Advance(nil, p, st.now)
		if published != st.want {
			t.Errorf("Advance at %dms published = %v; want %v", st.now, published, st.want)
		}
		if published && (len(grid) != 400 || sum(grid) != 0) {
			t.Errorf("empty swarm grid: len %d sum %d", len(grid), sum(grid))
		}
	}
}

func TestStepper_InvalidMap(t *testing.T) {
	if _, err := NewStepper(MapConfig{GridSize: -1, CellSize: 1}, 0, OrderSimultaneous); err == nil {
		t.Error("NewStepper accepted a negative grid")
	}
}

func TestStep_Invariants(t *testing.T) {
	m := DefaultMapConfig()
	b := m.Bounds()
	p := DefaultParameters()
	p.Cohesion, p.Separation, p.Alignment = 5, 5, 5

	for _, order := range []UpdateOrder{OrderSimultaneous, OrderSequential} {
		t.Run(order.String(), func(t *testing.T) {
			agents := NewSpawner(11).Fallback(120, p, b)
			for frame := 0; frame < 200; frame++ {
				Step(agents, p, b, order)
				for _, a := range agents {
					if a.Velocity.Len() > p.SpeedLimit+tolerance {
						t.Fatalf("frame %d: %s speed %v > %v", frame, a.ID, a.Velocity.Len(), p.SpeedLimit)
					}
					if !b.Contains(a.Position) {
						t.Fatalf("frame %d: %s escaped to %v", frame, a.ID, a.Position)
					}
					if !a.Acceleration.Eq(geometry.Zero) {
						t.Fatalf("frame %d: %s acceleration not reset", frame, a.ID)
					}
				}
			}
		})
	}
}

func TestStep_GridMatchesAllPairs(t *testing.T) {
	m := DefaultMapConfig()
	b := m.Bounds()
	p := DefaultParameters()
	agents := NewSpawner(5).Fallback(200, p, b)
	naive := cloneAgents(agents)
	indexed := cloneAgents(agents)

	Step(naive, p, b, OrderSimultaneous)
	stepWith(indexed, p, b, OrderSimultaneous, newNeighborGrid())

	for i := range naive {
		if !naive[i].Position.Eq(indexed[i].Position) || !naive[i].Velocity.Eq(indexed[i].Velocity) {
			t.Fatalf("agent %s: all-pairs %v/%v, indexed %v/%v", naive[i].ID,
				naive[i].Position, naive[i].Velocity, indexed[i].Position, indexed[i].Velocity)
		}
	}
}

func TestStep_SimultaneousIgnoresOrder(t *testing.T) {
	p := DefaultParameters()
	b := DefaultMapConfig().Bounds()
	agents := NewSpawner(9).Fallback(40, p, b)
	forward := cloneAgents(agents)
	backward := cloneAgents(agents)
	for i, j := 0, len(backward)-1; i < j; i, j = i+1, j-1 {
		backward[i], backward[j] = backward[j], backward[i]
	}

	Step(forward, p, b, OrderSimultaneous)
	Step(backward, p, b, OrderSimultaneous)

	byID := make(map[string]*Agent, len(backward))
	for _, a := range backward {
		byID[a.ID] = a
	}
	for _, a := range forward {
		other := byID[a.ID]
		if !a.Position.Eq(other.Position) {
			t.Fatalf("%s: %v vs %v depending on list order", a.ID, a.Position, other.Position)
		}
	}
}

func TestStepper_Deterministic(t *testing.T) {
	run := func() []*Agent {
		m := DefaultMapConfig()
		s, err := NewStepper(m, time.Second, OrderSimultaneous)
		if err != nil {
			t.Fatalf("NewStepper: %v", err)
		}
		p := DefaultParameters()
		agents := NewSpawner(42).Fallback(100, p, s.Bounds())
		for frame := int64(0); frame < 120; frame++ {
			s.Advance(agents, p, frame*16)
		}
		return agents
	}

	a, b := run(), run()
	for i := range a {
		if a[i].Position != b[i].Position || a[i].Velocity != b[i].Velocity {
			t.Fatalf("agent %s diverged: %v vs %v", a[i].ID, a[i].Position, b[i].Position)
		}
	}
}

func TestParseUpdateOrder(t *testing.T) {
	tests := []struct {
		in      string
		want    UpdateOrder
		wantErr bool
	}{
		{"", OrderSimultaneous, false},
		{"Simultaneous", OrderSimultaneous, false},
		{" sequential ", OrderSequential, false},
		{"random", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseUpdateOrder(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseUpdateOrder(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestSpawner(t *testing.T) {
	p := DefaultParameters()
	b := DefaultMapConfig().Bounds()
	s := NewSpawner(1)

	t.Run("fallback ids and speeds", func(t *testing.T) {
		agents := s.Fallback(5, p, b)
		for i, a := range agents {
			if a.ID != FallbackID(i) {
				t.Errorf("agent %d id = %q", i, a.ID)
			}
			speed := a.Velocity.Len()
			if speed < p.SpeedLimit/2-tolerance || speed > p.SpeedLimit+tolerance {
				t.Errorf("%s speed %v outside [%v, %v]", a.ID, speed, p.SpeedLimit/2, p.SpeedLimit)
			}
			if !b.Contains(a.Position) {
				t.Errorf("%s spawned outside bounds at %v", a.ID, a.Position)
			}
			if a.Color != DefaultColor {
				t.Errorf("%s color = %q", a.ID, a.Color)
			}
		}
		if got := s.Fallback(0, p, b); len(got) != 0 {
			t.Errorf("Fallback(0) = %d agents", len(got))
		}
	})

	t.Run("config fields are honoured", func(t *testing.T) {
		x, z, color := 3.5, -7.0, "#ff0000"
		a := s.FromConfig(AgentConfig{ID: "db-1", InitialX: &x, InitialZ: &z, Color: &color}, p, b)
		if a.ID != "db-1" || a.Position.X != x || a.Position.Z != z || a.Color != color {
			t.Errorf("FromConfig = %+v", a)
		}
		if a.Position.Y < b.YMin || a.Position.Y > b.YMax {
			t.Errorf("missing Y resolved outside bounds: %v", a.Position.Y)
		}
	})

	t.Run("empty record gets defaults", func(t *testing.T) {
		a := s.FromConfig(AgentConfig{ID: "bare"}, p, b)
		if a.Color != DefaultColor || !b.Contains(a.Position) {
			t.Errorf("FromConfig defaults = %+v", a)
		}
	})
}

func BenchmarkStep(b *testing.B) {
	p := DefaultParameters()
	m := DefaultMapConfig()
	s, _ := NewStepper(m, time.Second, OrderSimultaneous)
	agents := NewSpawner(1).Fallback(500, p, s.Bounds())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Advance(agents, p, int64(i))
	}
}

func BenchmarkDensity(b *testing.B) {
	m := DefaultMapConfig()
	agents := NewSpawner(1).Fallback(1000, DefaultParameters(), m.Bounds())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Density(agents, m)
	}
}
