package flock

import (
	"fmt"
	"strings"
	"time"
)

// UpdateOrder selects how agents observe each other within one frame.
type UpdateOrder int

const (
	// OrderSimultaneous computes every steering force against the frame as it
	// was before anyone moved, then integrates all agents.
	OrderSimultaneous UpdateOrder = iota
	// OrderSequential flocks and integrates agents one after another, so later
	// agents see the already-moved positions of earlier ones.
	OrderSequential
)

func (o UpdateOrder) String() string {
	switch o {
	case OrderSimultaneous:
		return "simultaneous"
	case OrderSequential:
		return "sequential"
	}
	return fmt.Sprintf("UpdateOrder(%d)", int(o))
}

// ParseUpdateOrder accepts "simultaneous" or "sequential" (case-insensitive).
// An empty string selects the default.
func ParseUpdateOrder(s string) (UpdateOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "simultaneous":
		return OrderSimultaneous, nil
	case "sequential":
		return OrderSequential, nil
	}
	return 0, fmt.Errorf("unknown update order %q", s)
}

// DefaultDensityInterval is how often Stepper.Advance rebuilds the density grid.
const DefaultDensityInterval = time.Second

// Step advances every agent by one frame.
func Step(agents []*Agent, p Parameters, b Bounds, order UpdateOrder) {
	stepWith(agents, p, b, order, nil)
}

func stepWith(agents []*Agent, p Parameters, b Bounds, order UpdateOrder, grid *neighborGrid) {
	if len(agents) == 0 {
		return
	}
	if order == OrderSequential {
		for _, a := range agents {
			a.Update(agents, p, b)
		}
		return
	}
	if grid == nil {
		for _, a := range agents {
			a.Flock(agents, p)
		}
	} else {
		grid.rebuild(agents, p.PerceptionRadius)
		for _, a := range agents {
			a.Flock(grid.around(a), p)
		}
	}
	for _, a := range agents {
		a.Integrate(p, b)
	}
}

// Stepper owns the per-frame bookkeeping around Step: the world bounds derived
// from the map, the neighbour index and the density publication timer.
type Stepper struct {
	mapCfg        MapConfig
	bounds        Bounds
	interval      time.Duration
	order         UpdateOrder
	lastPublished int64
	grid          *neighborGrid
}

// NewStepper validates the map and returns a stepper whose density timer starts at zero.
// A non-positive interval falls back to DefaultDensityInterval.
func NewStepper(m MapConfig, interval time.Duration, order UpdateOrder) (*Stepper, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if interval <= 0 {
		interval = DefaultDensityInterval
	}
	return &Stepper{
		mapCfg:   m,
		bounds:   m.Bounds(),
		interval: interval,
		order:    order,
		grid:     newNeighborGrid(),
	}, nil
}

// Map returns the grid layout used for density.
func (s *Stepper) Map() MapConfig { return s.mapCfg }

// Bounds returns the world box agents wrap around.
func (s *Stepper) Bounds() Bounds { return s.bounds }

// Order returns the configured update order.
func (s *Stepper) Order() UpdateOrder { return s.order }

// Advance runs one frame. When more than the interval has elapsed since the
// last publication (nowMs is the host clock in milliseconds), it also rebuilds
// the density grid and returns it with published set to true.
func (s *Stepper) Advance(agents []*Agent, p Parameters, nowMs int64) (grid []int32, published bool) {
	stepWith(agents, p, s.bounds, s.order, s.grid)
	if nowMs-s.lastPublished > s.interval.Milliseconds() {
		s.lastPublished = nowMs
		return Density(agents, s.mapCfg), true
	}
	return nil, false
}
