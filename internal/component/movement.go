// component/movement.go
package component

// Position — компонент позиции (левый верхний угол фигуры)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	DX, DY float64
}
