package viewer

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	minZoom = 0.25
	maxZoom = 8
	panStep = 6.0
)

// camera projects the x/z ground plane onto the screen, looking straight down.
type camera struct {
	// centre of the viewport in screen pixels
	cx, cy float64
	// pixels per world unit at zoom 1
	baseScale float64
	zoom      float64
	panX      float64
	panY      float64
}

func newCamera(cx, cy, baseScale float64) camera {
	return camera{cx: cx, cy: cy, baseScale: baseScale, zoom: 1}
}

func (c *camera) reset() {
	c.zoom = 1
	c.panX, c.panY = 0, 0
}

func (c *camera) scale() float64 { return c.baseScale * c.zoom }

func (c *camera) project(x, z float64) (float64, float64) {
	s := c.scale()
	return c.cx + c.panX + x*s, c.cy + c.panY + z*s
}

func (c *camera) zoomBy(f float64) {
	c.zoom = math.Max(minZoom, math.Min(maxZoom, c.zoom*f))
}

// update applies arrow keys, Q/E and the wheel. The wheel is ignored when
// the cursor is over the control panel.
func (c *camera) update(overPanel bool) {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c.panX += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c.panX -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		c.panY += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		c.panY -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		c.zoomBy(0.98)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		c.zoomBy(1.02)
	}
	if _, dy := ebiten.Wheel(); dy != 0 && !overPanel {
		c.zoomBy(math.Pow(1.1, dy))
	}
}
