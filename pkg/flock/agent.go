package flock

import (
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/geometry"
)

// DefaultColor is used for agents whose record carries no color.
const DefaultColor = "#64B5F6"

// facingThresholdSq is the squared speed under which an agent keeps its previous facing.
const facingThresholdSq = 1e-4

// Agent is one member of the swarm. Acceleration only carries a value between
// Flock and Integrate inside a frame; it is zero at every frame boundary.
type Agent struct {
	ID           string
	Position     geometry.Vector3D
	Velocity     geometry.Vector3D
	Acceleration geometry.Vector3D
	Color        string
}

// isSelf excludes an agent from its own neighbourhood, by pointer and by identity.
func (a *Agent) isSelf(other *Agent) bool {
	return other == a || other.ID == a.ID
}

// Separation steers away from neighbours closer than half the perception radius.
// Each contribution is the unit vector away from the neighbour divided by the
// distance, so nearer neighbours push harder.
func (a *Agent) Separation(neighbors []*Agent, p Parameters) geometry.Vector3D {
	limit := p.PerceptionRadius / 2
	var steer geometry.Vector3D
	count := 0
	for _, other := range neighbors {
		if a.isSelf(other) {
			continue
		}
		d := a.Position.DistanceTo(other.Position)
		if d > 0 && d < limit {
			diff := a.Position.Sub(other.Position).Normalize().Mul(1 / d)
			steer = steer.Add(diff)
			count++
		}
	}
	if count > 0 {
		steer = steer.Mul(1 / float64(count))
	}
	if steer.LenSqr() > 0 {
		steer = steer.SetLength(p.SpeedLimit).Sub(a.Velocity).ClampLength(0, p.ForceLimit)
	}
	return steer
}

// Alignment steers towards the average heading of neighbours inside the perception radius.
func (a *Agent) Alignment(neighbors []*Agent, p Parameters) geometry.Vector3D {
	var sum geometry.Vector3D
	count := 0
	for _, other := range neighbors {
		if a.isSelf(other) {
			continue
		}
		d := a.Position.DistanceTo(other.Position)
		if d > 0 && d < p.PerceptionRadius {
			sum = sum.Add(other.Velocity)
			count++
		}
	}
	if count == 0 {
		return geometry.Zero
	}
	sum = sum.Mul(1 / float64(count))
	return sum.SetLength(p.SpeedLimit).Sub(a.Velocity).ClampLength(0, p.ForceLimit)
}

// Cohesion steers towards the centroid of neighbours inside the perception radius.
func (a *Agent) Cohesion(neighbors []*Agent, p Parameters) geometry.Vector3D {
	var sum geometry.Vector3D
	count := 0
	for _, other := range neighbors {
		if a.isSelf(other) {
			continue
		}
		d := a.Position.DistanceTo(other.Position)
		if d > 0 && d < p.PerceptionRadius {
			sum = sum.Add(other.Position)
			count++
		}
	}
	if count == 0 {
		return geometry.Zero
	}
	return a.Seek(sum.Mul(1/float64(count)), p)
}

// Seek returns the steering force that turns the agent towards target at full speed.
func (a *Agent) Seek(target geometry.Vector3D, p Parameters) geometry.Vector3D {
	desired := target.Sub(a.Position).SetLength(p.SpeedLimit)
	return desired.Sub(a.Velocity).ClampLength(0, p.ForceLimit)
}

// Flock accumulates the three weighted steering forces into the acceleration.
func (a *Agent) Flock(neighbors []*Agent, p Parameters) {
	sep := a.Separation(neighbors, p).Mul(p.Separation)
	ali := a.Alignment(neighbors, p).Mul(p.Alignment)
	coh := a.Cohesion(neighbors, p).Mul(p.Cohesion)
	a.Acceleration = a.Acceleration.Add(sep).Add(ali).Add(coh)
}

// Integrate applies the accumulated acceleration with a unit time step,
// caps the speed, moves the agent and wraps it back into the bounds.
func (a *Agent) Integrate(p Parameters, b Bounds) {
	a.Velocity = a.Velocity.Add(a.Acceleration).ClampLength(0, p.SpeedLimit)
	a.Position = b.Wrap(a.Position.Add(a.Velocity))
	a.Acceleration = geometry.Zero
}

// Update runs one full frame for this agent against the given neighbours.
func (a *Agent) Update(neighbors []*Agent, p Parameters, b Bounds) {
	a.Flock(neighbors, p)
	a.Integrate(p, b)
}

// Facing returns the direction a renderer should point the agent at.
// Slow agents keep the previous facing so they do not spin on noise.
func Facing(velocity, previous geometry.Vector3D) geometry.Vector3D {
	if velocity.LenSqr() > facingThresholdSq {
		return velocity.Normalize()
	}
	return previous
}
