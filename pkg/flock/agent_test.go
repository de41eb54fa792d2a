package flock

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/geometry"
)

const tolerance = 1e-12

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func vecEquals(a, b geometry.Vector3D) bool {
	return floatEquals(a.X, b.X) && floatEquals(a.Y, b.Y) && floatEquals(a.Z, b.Z)
}

func still(id string, x, y, z float64) *Agent {
	return &Agent{ID: id, Position: geometry.Vector3D{X: x, Y: y, Z: z}}
}

func TestAgent_Separation(t *testing.T) {
	p := DefaultParameters()

	t.Run("pushes away from a close neighbour", func(t *testing.T) {
		me := still("me", 0, 0, 0)
		got := me.Separation([]*Agent{still("other", 1, 0, 0)}, p)
		want := geometry.Vector3D{X: -p.ForceLimit}
		if !vecEquals(got, want) {
			t.Errorf("Separation = %v; want %v", got, want)
		}
	})

	t.Run("ignores neighbours beyond half the radius", func(t *testing.T) {
		me := still("me", 0, 0, 0)
		got := me.Separation([]*Agent{still("other", 3, 0, 0)}, p)
		if !got.Eq(geometry.Zero) {
			t.Errorf("Separation = %v; want zero", got)
		}
	})

	t.Run("ignores coincident agents", func(t *testing.T) {
		me := still("me", 1, 1, 1)
		got := me.Separation([]*Agent{still("other", 1, 1, 1)}, p)
		if !got.Eq(geometry.Zero) {
			t.Errorf("Separation = %v; want zero", got)
		}
	})

	t.Run("pushes away from a neighbour closer than the vector tolerance", func(t *testing.T) {
		me := still("me", 0, 0, 0)
		got := me.Separation([]*Agent{still("other", 1e-10, 0, 0)}, p)
		want := geometry.Vector3D{X: -p.ForceLimit}
		if !vecEquals(got, want) {
			t.Errorf("Separation = %v; want %v", got, want)
		}
	})

	t.Run("symmetric neighbours cancel out", func(t *testing.T) {
		me := still("me", 0, 0, 0)
		got := me.Separation([]*Agent{still("a", 1, 0, 0), still("b", -1, 0, 0)}, p)
		if !got.Eq(geometry.Zero) {
			t.Errorf("Separation = %v; want zero", got)
		}
	})
}

func TestAgent_Alignment(t *testing.T) {
	p := DefaultParameters()
	me := still("me", 0, 0, 0)
	other := still("other", 2, 0, 0)
	other.Velocity = geometry.Vector3D{X: 0.1}

	got := me.Alignment([]*Agent{other}, p)
	want := geometry.Vector3D{X: p.ForceLimit}
	if !vecEquals(got, want) {
		t.Errorf("Alignment = %v; want %v", got, want)
	}

	if got := me.Alignment(nil, p); !got.Eq(geometry.Zero) {
		t.Errorf("Alignment with no neighbours = %v; want zero", got)
	}
}

func TestAgent_Cohesion(t *testing.T) {
	p := DefaultParameters()
	me := still("me", 0, 0, 0)
	got := me.Cohesion([]*Agent{still("a", 4, 0, 0), still("b", 4, 0, 2), still("c", 4, 0, -2)}, p)
	want := geometry.Vector3D{X: p.ForceLimit}
	if !vecEquals(got, want) {
		t.Errorf("Cohesion = %v; want %v", got, want)
	}
}

func TestAgent_Seek(t *testing.T) {
	p := DefaultParameters()
	me := still("me", 0, 0, 0)
	me.Velocity = geometry.Vector3D{X: p.SpeedLimit}

	// Already heading at full speed towards the target: nothing to correct.
	if got := me.Seek(geometry.Vector3D{X: 10}, p); !vecEquals(got, geometry.Zero) {
		t.Errorf("Seek ahead = %v; want zero", got)
	}
	// Target behind: steer backwards, capped by the force limit.
	got := me.Seek(geometry.Vector3D{X: -10}, p)
	if !floatEquals(got.Len(), p.ForceLimit) || got.X >= 0 {
		t.Errorf("Seek behind = %v; want length %v pointing to -X", got, p.ForceLimit)
	}
}

func TestAgent_SelfExclusion(t *testing.T) {
	p := DefaultParameters()
	me := still("me", 0, 0, 0)
	// A stale copy of the same agent must not be treated as a neighbour.
	ghost := still("me", 1, 0, 0)
	ghost.Velocity = geometry.Vector3D{Z: 0.1}

	me.Flock([]*Agent{me, ghost}, p)
	if !me.Acceleration.Eq(geometry.Zero) {
		t.Errorf("Acceleration = %v; want zero when only self is present", me.Acceleration)
	}
}

func TestAgent_OutOfRadiusExertsNoForce(t *testing.T) {
	p := DefaultParameters()
	me := still("me", 0, 0, 0)
	far := still("far", p.PerceptionRadius, 0, 0)
	far.Velocity = geometry.Vector3D{Y: 0.1}

	me.Flock([]*Agent{far}, p)
	if !me.Acceleration.Eq(geometry.Zero) {
		t.Errorf("Acceleration = %v; want zero for an agent at exactly the perception radius", me.Acceleration)
	}
}

func TestAgent_ForcesAreBounded(t *testing.T) {
	p := DefaultParameters()
	s := NewSpawner(7)
	b := DefaultMapConfig().Bounds()
	// Pack the agents so most of them see each other.
	b.XMin, b.XMax, b.ZMin, b.ZMax = -3, 3, -3, 3
	agents := s.Fallback(60, p, b)

	for _, a := range agents {
		forces := map[string]geometry.Vector3D{
			"separation": a.Separation(agents, p),
			"alignment":  a.Alignment(agents, p),
			"cohesion":   a.Cohesion(agents, p),
		}
		for name, f := range forces {
			if f.Len() > p.ForceLimit+tolerance {
				t.Fatalf("%s force of %s = %v exceeds %v", name, a.ID, f.Len(), p.ForceLimit)
			}
		}
	}
}

func TestAgent_Integrate(t *testing.T) {
	p := DefaultParameters()
	b := DefaultMapConfig().Bounds()

	t.Run("speed is capped", func(t *testing.T) {
		a := still("a", 0, 1, 0)
		a.Velocity = geometry.Vector3D{X: p.SpeedLimit}
		a.Acceleration = geometry.Vector3D{X: 1}
		a.Integrate(p, b)
		if !floatEquals(a.Velocity.Len(), p.SpeedLimit) {
			t.Errorf("speed = %v; want %v", a.Velocity.Len(), p.SpeedLimit)
		}
		if !a.Acceleration.Eq(geometry.Zero) {
			t.Errorf("acceleration not reset: %v", a.Acceleration)
		}
		if !floatEquals(a.Position.X, p.SpeedLimit) {
			t.Errorf("position.X = %v; want %v", a.Position.X, p.SpeedLimit)
		}
	})

	t.Run("lone agent moves in a straight line", func(t *testing.T) {
		a := still("lone", 0, 1, 0)
		a.Velocity = geometry.Vector3D{X: 0.1, Z: -0.05}
		v0 := a.Velocity
		for i := 0; i < 10; i++ {
			a.Update([]*Agent{a}, p, b)
		}
		if !vecEquals(a.Velocity, v0) {
			t.Errorf("velocity drifted: %v; want %v", a.Velocity, v0)
		}
		want := geometry.Vector3D{X: 1, Y: 1, Z: -0.5}
		if !a.Position.Eq(want) {
			t.Errorf("position = %v; want %v", a.Position, want)
		}
	})
}

func TestBounds_Wrap(t *testing.T) {
	b := Bounds{XMin: -20, XMax: 20, YMin: 0, YMax: 10, ZMin: -20, ZMax: 20}
	tests := []struct {
		name string
		in   geometry.Vector3D
		want geometry.Vector3D
	}{
		{"inside untouched", geometry.Vector3D{X: 1, Y: 2, Z: 3}, geometry.Vector3D{X: 1, Y: 2, Z: 3}},
		{"on the edge untouched", geometry.Vector3D{X: 20, Y: 0, Z: -20}, geometry.Vector3D{X: 20, Y: 0, Z: -20}},
		{"past xMax goes to xMin", geometry.Vector3D{X: 20.1, Y: 5, Z: 0}, geometry.Vector3D{X: -20, Y: 5, Z: 0}},
		{"below xMin goes to xMax", geometry.Vector3D{X: -20.1, Y: 5, Z: 0}, geometry.Vector3D{X: 20, Y: 5, Z: 0}},
		{"below ground goes to ceiling", geometry.Vector3D{X: 0, Y: -0.01, Z: 0}, geometry.Vector3D{X: 0, Y: 10, Z: 0}},
		{"several axes at once", geometry.Vector3D{X: 25, Y: 11, Z: -21}, geometry.Vector3D{X: -20, Y: 0, Z: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Wrap(tt.in); !got.Eq(tt.want) {
				t.Errorf("Wrap(%v) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFacing(t *testing.T) {
	prev := geometry.Vector3D{Z: 1}
	tests := []struct {
		name     string
		velocity geometry.Vector3D
		want     geometry.Vector3D
	}{
		{"moving faces velocity", geometry.Vector3D{X: 0.1}, geometry.Vector3D{X: 1}},
		{"slow keeps previous", geometry.Vector3D{X: 0.005}, prev},
		{"stopped keeps previous", geometry.Vector3D{}, prev},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Facing(tt.velocity, prev); !got.Eq(tt.want) {
				t.Errorf("Facing(%v) = %v; want %v", tt.velocity, got, tt.want)
			}
		})
	}
}
