// Package flock implements the boids steering model, the frame stepper and
// the density aggregation that summarises a swarm on a 2D grid.
package flock

import (
	"errors"
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/geometry"
)

var (
	// ErrInvalidParameters is wrapped by Parameters.Validate.
	ErrInvalidParameters = errors.New("invalid simulation parameters")
	// ErrInvalidBounds is wrapped by Bounds.Validate and MapConfig.Validate.
	ErrInvalidBounds = errors.New("invalid bounds")
)

// Parameters holds the steering weights and motion limits applied to every agent.
// Parameters are passed by value to each step so a change lands on a frame boundary.
type Parameters struct {
	Cohesion         float64 `json:"cohesion"`
	Separation       float64 `json:"separation"`
	Alignment        float64 `json:"alignment"`
	SpeedLimit       float64 `json:"speedLimit"`
	ForceLimit       float64 `json:"forceLimit"`
	PerceptionRadius float64 `json:"perceptionRadius"`
}

// DefaultParameters returns the reference tuning of the swarm.
func DefaultParameters() Parameters {
	return Parameters{
		Cohesion:         1.0,
		Separation:       1.5,
		Alignment:        1.0,
		SpeedLimit:       0.15,
		ForceLimit:       0.005,
		PerceptionRadius: 5,
	}
}

// Validate checks that every value is finite, the weights and the perception
// radius are non-negative, and both limits are strictly positive.
func (p Parameters) Validate() error {
	values := []struct {
		name string
		v    float64
	}{
		{"cohesion", p.Cohesion},
		{"separation", p.Separation},
		{"alignment", p.Alignment},
		{"speedLimit", p.SpeedLimit},
		{"forceLimit", p.ForceLimit},
		{"perceptionRadius", p.PerceptionRadius},
	}
	for _, f := range values {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameters, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %g", ErrInvalidParameters, f.name, f.v)
		}
	}
	if p.SpeedLimit == 0 {
		return fmt.Errorf("%w: speedLimit must be > 0", ErrInvalidParameters)
	}
	if p.ForceLimit == 0 {
		return fmt.Errorf("%w: forceLimit must be > 0", ErrInvalidParameters)
	}
	return nil
}

// WithWeights returns a copy of p with the three steering weights replaced.
func (p Parameters) WithWeights(cohesion, separation, alignment float64) Parameters {
	p.Cohesion = cohesion
	p.Separation = separation
	p.Alignment = alignment
	return p
}

// Bounds is the axis-aligned box agents live in. Leaving it on one side
// re-enters on the opposite side.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// Validate requires min < max on every axis.
func (b Bounds) Validate() error {
	if !(b.XMin < b.XMax) || !(b.YMin < b.YMax) || !(b.ZMin < b.ZMax) {
		return fmt.Errorf("%w: min must be < max on every axis, got %+v", ErrInvalidBounds, b)
	}
	return nil
}

// Wrap applies the toroidal rule per axis: below min jumps to max, above max
// jumps to min. Positions already inside are untouched.
func (b Bounds) Wrap(p geometry.Vector3D) geometry.Vector3D {
	p.X = wrapAxis(p.X, b.XMin, b.XMax)
	p.Y = wrapAxis(p.Y, b.YMin, b.YMax)
	p.Z = wrapAxis(p.Z, b.ZMin, b.ZMax)
	return p
}

func wrapAxis(v, min, max float64) float64 {
	if v < min {
		return max
	}
	if v > max {
		return min
	}
	return v
}

// Contains reports whether p lies inside the closed box.
func (b Bounds) Contains(p geometry.Vector3D) bool {
	return p.X >= b.XMin && p.X <= b.XMax &&
		p.Y >= b.YMin && p.Y <= b.YMax &&
		p.Z >= b.ZMin && p.Z <= b.ZMax
}

// MapConfig describes the square ground grid under the swarm.
type MapConfig struct {
	GridSize int     `json:"gridSize"`
	CellSize float64 `json:"cellSize"`
}

// DefaultMapConfig is a 20x20 grid of 2 unit cells.
func DefaultMapConfig() MapConfig {
	return MapConfig{GridSize: 20, CellSize: 2}
}

// Validate requires a positive grid size and cell size.
func (m MapConfig) Validate() error {
	if m.GridSize <= 0 {
		return fmt.Errorf("%w: gridSize must be > 0, got %d", ErrInvalidBounds, m.GridSize)
	}
	if !(m.CellSize > 0) || math.IsInf(m.CellSize, 0) {
		return fmt.Errorf("%w: cellSize must be a positive number, got %g", ErrInvalidBounds, m.CellSize)
	}
	return nil
}

// Dimension is the world edge length: GridSize * CellSize.
func (m MapConfig) Dimension() float64 {
	return float64(m.GridSize) * m.CellSize
}

// Cells is the number of cells in the grid.
func (m MapConfig) Cells() int {
	return m.GridSize * m.GridSize
}

// Bounds derives the world box from the map: x and z span [-dim/2, dim/2],
// y spans [0, dim/4].
func (m MapConfig) Bounds() Bounds {
	half := m.Dimension() / 2
	return Bounds{
		XMin: -half, XMax: half,
		YMin: 0, YMax: m.Dimension() / 4,
		ZMin: -half, ZMax: half,
	}
}
