// internal/ui/label.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Label — строка текста, привязанная к левому верхнему углу.
type Label struct {
	X, Y   int
	Face   font.Face
	Color  color.Color
	Text   string
	ascent int
}

func NewLabel(x, y int, face font.Face, clr color.Color) *Label {
	return &Label{
		X:      x,
		Y:      y,
		Face:   face,
		Color:  clr,
		ascent: face.Metrics().Ascent.Ceil(),
	}
}

// Draw рисует текст; text.Draw принимает базовую линию, поэтому сдвигаем на ascent.
func (l *Label) Draw(screen *ebiten.Image) {
	if l.Text == "" {
		return
	}
	text.Draw(screen, l.Text, l.Face, l.X, l.Y+l.ascent, l.Color)
}
