// Package heightmap holds the per-cell terrain heights drawn under the swarm
// and the helpers used to build and reshape them.
package heightmap

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	perlin "github.com/aquilax/go-perlin"
)

const (
	// MinHeight is the lowest height a cell is drawn with.
	MinHeight = 0.1
	// MaxHeight is the top of the display range.
	MaxHeight = 10.0
	// DefaultHeight is the flat starting terrain.
	DefaultHeight = 1.0
)

// ErrSize is wrapped when a heightmap does not have gridSize*gridSize cells.
var ErrSize = errors.New("heightmap size mismatch")

// Flat returns a gridSize x gridSize map filled with DefaultHeight.
func Flat(gridSize int) []float64 {
	h := make([]float64, gridSize*gridSize)
	for i := range h {
		h[i] = DefaultHeight
	}
	return h
}

// Perlin builds rolling terrain from 2D Perlin noise, scaled into [lo, hi].
// scale is the number of cells per noise period; the same seed gives the same map.
func Perlin(gridSize int, seed int64, scale, lo, hi float64) []float64 {
	if scale <= 0 {
		scale = 8
	}
	noise := perlin.NewPerlin(2, 2, 3, seed)
	h := make([]float64, gridSize*gridSize)
	for z := 0; z < gridSize; z++ {
		for x := 0; x < gridSize; x++ {
			h[z*gridSize+x] = noise.Noise2D(float64(x)/scale, float64(z)/scale)
		}
	}
	return Normalize(h, lo, hi)
}

// Normalize linearly maps values onto [lo, hi]. A constant input maps to the midpoint.
func Normalize(values []float64, lo, hi float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	span := maxV - minV
	for i, v := range values {
		if span == 0 {
			out[i] = (lo + hi) / 2
			continue
		}
		out[i] = lo + (v-minV)/span*(hi-lo)
	}
	return out
}

// Smooth applies a 3x3 box blur over a width x depth map, averaging each cell
// with the neighbours that exist.
func Smooth(values []float64, width, depth int) []float64 {
	out := make([]float64, len(values))
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			total, n := 0.0, 0
			for dz := -1; dz <= 1; dz++ {
				for dx := -1; dx <= 1; dx++ {
					nx, nz := x+dx, z+dz
					if nx < 0 || nx >= width || nz < 0 || nz >= depth {
						continue
					}
					total += values[nz*width+nx]
					n++
				}
			}
			out[z*width+x] = total / float64(n)
		}
	}
	return out
}

// Blend returns (1-t)*from + t*to cell by cell.
func Blend(from, to []float64, t float64) []float64 {
	out := make([]float64, len(from))
	for i := range from {
		out[i] = from[i]*(1-t) + to[i]*t
	}
	return out
}

// Validate checks the cell count and that every height is finite.
func Validate(heights []float64, gridSize int) error {
	if len(heights) != gridSize*gridSize {
		return fmt.Errorf("%w: got %d cells, want %d", ErrSize, len(heights), gridSize*gridSize)
	}
	for i, h := range heights {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return fmt.Errorf("height %d is not finite", i)
		}
	}
	return nil
}

// Display returns the height a cell is drawn with: missing or tiny heights
// become DefaultHeight or MinHeight.
func Display(h float64) float64 {
	if h == 0 || math.IsNaN(h) {
		h = DefaultHeight
	}
	return math.Max(MinHeight, h)
}

// Hue maps a display height onto a hue in [0, 0.6]: low cells are blue, high cells red.
func Hue(h float64) float64 {
	t := (Display(h) - MinHeight) / (MaxHeight - MinHeight)
	t = math.Max(0, math.Min(1, t))
	return 0.6 * (1 - t)
}

// Color is the tile colour of a cell: Hue at saturation 0.8 and lightness 0.5.
func Color(h float64) color.RGBA {
	const s, l = 0.8, 0.5
	c := (1 - math.Abs(2*l-1)) * s
	hp := Hue(h) * 6
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	var r, g, b float64
	switch {
	case hp < 1:
		r, g = c, x
	case hp < 2:
		r, g = x, c
	case hp < 3:
		g, b = c, x
	case hp < 4:
		g, b = x, c
	case hp < 5:
		r, b = x, c
	default:
		r, b = c, x
	}
	m := l - c/2
	// l-c/2 lands a hair under the exact channel value, so half-way
	// channels would round down without the nudge
	to8 := func(v float64) uint8 { return uint8(math.Round((v+m)*255 + 1e-9)) }
	return color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255}
}
