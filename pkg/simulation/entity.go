package simulation

import (
	"github.com/lao-tseu-is-alive/swarm-scape/pb"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/geometry"
)

func vecToProto(v geometry.Vector3D) *pb.Vec3 {
	return &pb.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

func vecFromProto(v *pb.Vec3) geometry.Vector3D {
	return geometry.NewVector(v.GetX(), v.GetY(), v.GetZ())
}

// AgentToProto converts an agent into its snapshot envelope.
func AgentToProto(a *flock.Agent) *pb.AgentState {
	return &pb.AgentState{
		Id:       a.ID,
		Position: vecToProto(a.Position),
		Velocity: vecToProto(a.Velocity),
		Color:    a.Color,
	}
}

// AgentFromProto rebuilds an agent from a snapshot entry; acceleration is zero.
func AgentFromProto(s *pb.AgentState) *flock.Agent {
	return &flock.Agent{
		ID:       s.GetId(),
		Position: vecFromProto(s.GetPosition()),
		Velocity: vecFromProto(s.GetVelocity()),
		Color:    s.GetColor(),
	}
}

// ParametersToProto converts steering parameters for the wire.
func ParametersToProto(p flock.Parameters) *pb.Parameters {
	return &pb.Parameters{
		Cohesion:         p.Cohesion,
		Separation:       p.Separation,
		Alignment:        p.Alignment,
		SpeedLimit:       p.SpeedLimit,
		ForceLimit:       p.ForceLimit,
		PerceptionRadius: p.PerceptionRadius,
	}
}

func ParametersFromProto(p *pb.Parameters) flock.Parameters {
	return flock.Parameters{
		Cohesion:         p.GetCohesion(),
		Separation:       p.GetSeparation(),
		Alignment:        p.GetAlignment(),
		SpeedLimit:       p.GetSpeedLimit(),
		ForceLimit:       p.GetForceLimit(),
		PerceptionRadius: p.GetPerceptionRadius(),
	}
}

// ConfigToProto keeps unset optional fields unset.
func ConfigToProto(c flock.AgentConfig) *pb.AgentConfig {
	return &pb.AgentConfig{
		Id:       c.ID,
		InitialX: c.InitialX,
		InitialY: c.InitialY,
		InitialZ: c.InitialZ,
		Color:    c.Color,
	}
}

func ConfigFromProto(c *pb.AgentConfig) flock.AgentConfig {
	cfg := flock.AgentConfig{ID: c.GetId()}
	if c.InitialX != nil {
		x := *c.InitialX
		cfg.InitialX = &x
	}
	if c.InitialY != nil {
		y := *c.InitialY
		cfg.InitialY = &y
	}
	if c.InitialZ != nil {
		z := *c.InitialZ
		cfg.InitialZ = &z
	}
	if c.Color != nil {
		col := *c.Color
		cfg.Color = &col
	}
	return cfg
}
