package flock

import "math"

type cellKey struct {
	x, y, z int
}

// neighborGrid is a spatial hash with cells as wide as the perception radius,
// so every agent within range of a position sits in the 3x3x3 block around it.
// Slices are truncated instead of reallocated between frames.
type neighborGrid struct {
	cellSize float64
	cells    map[cellKey][]*Agent
	scratch  []*Agent
}

func newNeighborGrid() *neighborGrid {
	return &neighborGrid{cells: make(map[cellKey][]*Agent)}
}

func (g *neighborGrid) key(a *Agent) cellKey {
	return cellKey{
		x: int(math.Floor(a.Position.X / g.cellSize)),
		y: int(math.Floor(a.Position.Y / g.cellSize)),
		z: int(math.Floor(a.Position.Z / g.cellSize)),
	}
}

// rebuild indexes agents by cell. A non-positive radius leaves the grid empty.
func (g *neighborGrid) rebuild(agents []*Agent, radius float64) {
	if radius != g.cellSize || len(g.cells) > 8*len(agents)+64 {
		clear(g.cells)
	}
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}
	g.cellSize = radius
	if radius <= 0 {
		return
	}
	for _, a := range agents {
		k := g.key(a)
		g.cells[k] = append(g.cells[k], a)
	}
}

// around returns the candidates near a. The result is reused by the next call.
func (g *neighborGrid) around(a *Agent) []*Agent {
	g.scratch = g.scratch[:0]
	if g.cellSize <= 0 {
		return g.scratch
	}
	c := g.key(a)
	for dz := -1; dz <= 1; dz++ {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				g.scratch = append(g.scratch, g.cells[cellKey{c.x + dx, c.y + dy, c.z + dz}]...)
			}
		}
	}
	return g.scratch
}
