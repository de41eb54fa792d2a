package flock

import "math"

// CellIndex maps a ground position to its row-major grid index
// (gridZ*GridSize + gridX). ok is false when the position falls outside the grid.
func (m MapConfig) CellIndex(x, z float64) (index int, ok bool) {
	half := m.Dimension() / 2
	gx := int(math.Floor((x + half) / m.CellSize))
	gz := int(math.Floor((z + half) / m.CellSize))
	if gx < 0 || gx >= m.GridSize || gz < 0 || gz >= m.GridSize {
		return 0, false
	}
	return gz*m.GridSize + gx, true
}

// Density counts agents per ground cell into a fresh grid. Agents outside the
// grid are dropped, so the sum never exceeds the number of agents.
func Density(agents []*Agent, m MapConfig) []int32 {
	grid := make([]int32, m.Cells())
	for _, a := range agents {
		if i, ok := m.CellIndex(a.Position.X, a.Position.Z); ok {
			grid[i]++
		}
	}
	return grid
}
