package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox toggles a display option. Its label is drawn to the right of the
// box and clicking either one toggles it.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64
	Width float64
}

// NewCheckbox creates a checkbox whose clickable row spans width pixels.
func NewCheckbox(x, y, width float64, label string, value bool) *Checkbox {
	return &Checkbox{
		Label: label,
		Value: value,
		X:     x,
		Y:     y,
		Size:  14,
		Width: width,
	}
}

// Update toggles on the frame the button goes down over the row.
func (c *Checkbox) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if float64(mx) >= c.X && float64(mx) <= c.X+max(c.Width, c.Size) &&
		float64(my) >= c.Y && float64(my) <= c.Y+c.Size {
		c.Value = !c.Value
	}
}

// Draw renders the box, a filled square when checked, and the label.
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		1,
		color.RGBA{R: 200, G: 200, B: 200, A: 255},
		true)
	if c.Value {
		vector.FillRect(screen,
			float32(c.X+3), float32(c.Y+3),
			float32(c.Size-6), float32(c.Size-6),
			color.RGBA{R: 100, G: 181, B: 246, A: 255},
			true)
	}
	if c.Label != "" {
		ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y-1))
	}
}
