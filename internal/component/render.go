package component

import "image/color"

type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
)

// Renderable — компонент отрисовки
type Renderable struct {
	Shape Shape
	Color color.RGBA
}
