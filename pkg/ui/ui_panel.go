package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
)

// UIWidget is anything the panel can lay out.
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	place(y float64)
}

type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64 { return s.H + 25 }
func (s *SliderWrapper) place(y float64)    { s.Y = y + 15 }

type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64 { return c.Size + 10 }
func (c *CheckboxWrapper) place(y float64)    { c.Y = y + 3 }

type TextInputWrapper struct {
	*TextInput
}

func (t *TextInputWrapper) GetHeight() float64 { return t.Height + 8 }
func (t *TextInputWrapper) place(y float64)    { t.Y = y }

type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64 { return b.Height + 8 }
func (b *ButtonWrapper) place(y float64)    { b.Y = y }

// PanelSection groups the widgets in [StartIndex, EndIndex) under a header.
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

// UIPanel stacks widgets in titled sections and scrolls with the wheel.
type UIPanel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	Widgets       []UIWidget
	Labels        []string
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

func (p *UIPanel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   -1,
	})
}

func (p *UIPanel) EndSection() {
	if n := len(p.sections); n > 0 && p.sections[n-1].EndIndex < 0 {
		p.sections[n-1].EndIndex = len(p.Widgets)
	}
}

func (p *UIPanel) add(w UIWidget, label string) {
	if len(p.sections) == 0 {
		p.AddSection("")
	}
	p.Widgets = append(p.Widgets, w)
	p.Labels = append(p.Labels, label)
	p.layout()
}

func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{s}, label)
	return s
}

func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, p.Width-20, label, value)
	// the checkbox draws its own label
	p.add(&CheckboxWrapper{c}, "")
	return c
}

func (p *UIPanel) AddTextInput(placeholder string, onSubmit func(string)) *TextInput {
	t := NewTextInput(p.X+10, 0, p.Width-20, placeholder, onSubmit)
	p.add(&TextInputWrapper{t}, "")
	return t
}

func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, p.Width-20, 24, label, onClick)
	p.add(&ButtonWrapper{b}, "")
	return b
}

// Contains reports whether the cursor position lies over the panel.
func (p *UIPanel) Contains(mx, my int) bool {
	return float64(mx) >= p.X && float64(mx) <= p.X+p.Width &&
		float64(my) >= p.Y && float64(my) <= p.Y+p.Height
}

// layout walks sections in order and places every widget at its scrolled y.
func (p *UIPanel) layout() {
	y := p.Y + titleHeight - p.ScrollOffset
	for _, sec := range p.sections {
		y += sectionHeight
		end := sec.EndIndex
		if end < 0 {
			end = len(p.Widgets)
		}
		for i := sec.StartIndex; i < end; i++ {
			p.Widgets[i].place(y)
			y += p.Widgets[i].GetHeight()
		}
	}
}

func (p *UIPanel) contentHeight() float64 {
	h := titleHeight + float64(len(p.sections))*sectionHeight
	for _, w := range p.Widgets {
		h += w.GetHeight()
	}
	return h
}

func (p *UIPanel) Update() {
	mx, my := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 && p.Contains(mx, my) {
		p.ScrollOffset -= dy * 20
		maxScroll := max(p.contentHeight()-p.Height+10, 0)
		p.ScrollOffset = min(max(p.ScrollOffset, 0), maxScroll)
	}
	p.layout()
	for _, w := range p.Widgets {
		w.Update()
	}
}

func (p *UIPanel) visible(y, h float64) bool {
	return y+h >= p.Y+titleHeight && y <= p.Y+p.Height
}

func (p *UIPanel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	y := p.Y + titleHeight - p.ScrollOffset
	header := color.RGBA{R: 60, G: 60, B: 70, A: 255}
	for _, sec := range p.sections {
		if p.visible(y, 20) {
			vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20, header, true)
			ebitenutil.DebugPrintAt(screen, sec.Title, int(p.X+10), int(y+2))
		}
		y += sectionHeight
		end := sec.EndIndex
		if end < 0 {
			end = len(p.Widgets)
		}
		for i := sec.StartIndex; i < end; i++ {
			w := p.Widgets[i]
			if p.visible(y, w.GetHeight()) {
				if p.Labels[i] != "" {
					ebitenutil.DebugPrintAt(screen, p.Labels[i], int(p.X+10), int(y))
				}
				w.Draw(screen)
			}
			y += w.GetHeight()
		}
	}
}
