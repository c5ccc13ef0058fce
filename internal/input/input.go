// Package input описывает снимок ввода за один тик, независимо от движка.
package input

// Direction — направление движения самолёта
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// State — состояние клавиш на текущем тике.
type State struct {
	Up, Down, Left, Right bool
	Restart               bool // нажата только что, а не удерживается
}

// Direction возвращает одно направление за тик.
// Приоритет: вверх, вниз, влево, вправо.
func (s State) Direction() Direction {
	switch {
	case s.Up:
		return Up
	case s.Down:
		return Down
	case s.Left:
		return Left
	case s.Right:
		return Right
	default:
		return None
	}
}
