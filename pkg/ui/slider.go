package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider edits a float value in [Min, Max] by dragging.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	// Step rounds the value; 0 keeps it continuous.
	Step float64
	X, Y float64
	W, H float64

	dragging bool
	changed  bool
}

func NewSlider(x, y, w float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     w,
		H:     14,
	}
	s.SetValue(value)
	s.changed = false
	return s
}

// SetValue clamps v into range, rounds it to Step and flags a change.
func (s *Slider) SetValue(v float64) {
	v = math.Max(s.Min, math.Min(s.Max, v))
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
		v = math.Min(s.Max, v)
	}
	if v != s.Value {
		s.Value = v
		s.changed = true
	}
}

// Changed reports whether the value moved since the last call.
func (s *Slider) Changed() bool {
	c := s.changed
	s.changed = false
	return c
}

func (s *Slider) contains(mx, my int) bool {
	return float64(mx) >= s.X && float64(mx) <= s.X+s.W &&
		float64(my) >= s.Y && float64(my) <= s.Y+s.H
}

func (s *Slider) Update() {
	mx, my := ebiten.CursorPosition()
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
		return
	}
	// a drag keeps following the cursor once started inside the track
	if !s.dragging && !s.contains(mx, my) {
		return
	}
	s.dragging = true
	p := (float64(mx) - s.X) / s.W
	s.SetValue(s.Min + p*(s.Max-s.Min))
}

func (s *Slider) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	bar := color.RGBA{R: 100, G: 181, B: 246, A: 255}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), bar, true)

	ebitenutil.DebugPrintAt(screen, s.format(), int(s.X+s.W-50), int(s.Y-15))
}

func (s *Slider) format() string {
	switch {
	case s.Max-s.Min >= 50:
		return fmt.Sprintf("%6.0f", s.Value)
	case s.Max-s.Min >= 1:
		return fmt.Sprintf("%6.2f", s.Value)
	default:
		return fmt.Sprintf("%6.4f", s.Value)
	}
}
