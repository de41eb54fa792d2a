package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button runs OnClick once per press. A disabled button ignores clicks and
// is drawn greyed out.
type Button struct {
	Label    string
	X, Y     float64
	Width    float64
	Height   float64
	Disabled bool
	OnClick  func()

	pressed bool

	BGColor       color.RGBA
	HoverColor    color.RGBA
	DisabledColor color.RGBA
}

func NewButton(x, y, width, height float64, label string, onClick func()) *Button {
	return &Button{
		Label:         label,
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		OnClick:       onClick,
		BGColor:       color.RGBA{R: 80, G: 120, B: 180, A: 255},
		HoverColor:    color.RGBA{R: 100, G: 150, B: 220, A: 255},
		DisabledColor: color.RGBA{R: 70, G: 70, B: 75, A: 255},
	}
}

func (b *Button) hover() bool {
	mx, my := ebiten.CursorPosition()
	return float64(mx) >= b.X && float64(mx) <= b.X+b.Width &&
		float64(my) >= b.Y && float64(my) <= b.Y+b.Height
}

func (b *Button) Update() {
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if !down {
		b.pressed = false
		return
	}
	if b.pressed || b.Disabled || !b.hover() {
		return
	}
	b.pressed = true
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BGColor
	switch {
	case b.Disabled:
		bg = b.DisabledColor
	case b.hover():
		bg = b.HoverColor
	}

	vector.FillRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bg, true)
	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	// DebugPrint glyphs are 6x16
	tx := b.X + (b.Width-float64(6*len(b.Label)))/2
	ty := b.Y + (b.Height-16)/2
	ebitenutil.DebugPrintAt(screen, b.Label, int(tx), int(ty))
}
