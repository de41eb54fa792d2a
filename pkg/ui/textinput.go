package ui

import (
	"image/color"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// charWidth is the advance of the ebitenutil debug font.
const charWidth = 6

// TextInput is a single line text field. It takes the keyboard while
// focused; a click outside or Escape releases it.
type TextInput struct {
	Text        string
	Placeholder string
	MaxLength   int
	X, Y        float64
	Width       float64
	Height      float64
	// OnSubmit runs on Enter with the trimmed text.
	OnSubmit func(text string)

	focused bool
	blink   int
	runes   []rune
}

func NewTextInput(x, y, width float64, placeholder string, onSubmit func(string)) *TextInput {
	return &TextInput{
		Placeholder: placeholder,
		MaxLength:   120,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      20,
		OnSubmit:    onSubmit,
	}
}

// Focused reports whether key presses currently go to the field.
func (t *TextInput) Focused() bool { return t.focused }

func (t *TextInput) contains(mx, my int) bool {
	return float64(mx) >= t.X && float64(mx) <= t.X+t.Width &&
		float64(my) >= t.Y && float64(my) <= t.Y+t.Height
}

func (t *TextInput) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		t.focused = t.contains(ebiten.CursorPosition())
	}
	if !t.focused {
		return
	}
	t.blink++

	t.runes = ebiten.AppendInputChars(t.runes[:0])
	for _, r := range t.runes {
		if unicode.IsPrint(r) && len([]rune(t.Text)) < t.MaxLength {
			t.Text += string(r)
		}
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) && t.Text != "" {
		rs := []rune(t.Text)
		t.Text = string(rs[:len(rs)-1])
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		if text := strings.TrimSpace(t.Text); text != "" && t.OnSubmit != nil {
			t.OnSubmit(text)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		t.focused = false
	}
}

// repeatingKeyPressed fires once on press, then repeats while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= delay && (d-delay)%interval == 0)
}

func (t *TextInput) Draw(screen *ebiten.Image) {
	border := color.RGBA{R: 100, G: 100, B: 110, A: 255}
	if t.focused {
		border = color.RGBA{R: 100, G: 181, B: 246, A: 255}
	}
	vector.FillRect(screen, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height),
		color.RGBA{R: 25, G: 25, B: 30, A: 255}, true)
	vector.StrokeRect(screen, float32(t.X), float32(t.Y), float32(t.Width), float32(t.Height),
		1, border, true)

	// show the tail when the text is wider than the field
	visible := int((t.Width - 10) / charWidth)
	text := []rune(t.Text)
	if len(text) > visible {
		text = text[len(text)-visible:]
	}
	switch {
	case len(text) > 0:
		ebitenutil.DebugPrintAt(screen, string(text), int(t.X+5), int(t.Y+2))
	case !t.focused:
		ebitenutil.DebugPrintAt(screen, t.Placeholder, int(t.X+5), int(t.Y+2))
	}
	if t.focused && t.blink/30%2 == 0 {
		cx := float32(t.X + 5 + float64(len(text)*charWidth))
		vector.StrokeLine(screen, cx, float32(t.Y+4), cx, float32(t.Y+t.Height-4), 1, color.White, true)
	}
}
