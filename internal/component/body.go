package component

// Body описывает форму сущности и её опорную точку для столкновений.
type Body struct {
	Width, Height float64 // для прямоугольника
	Radius        float64 // для круга, 0 — не круг
	AnchorX       float64
	AnchorY       float64
}

// Anchor возвращает опорную точку в мировых координатах.
func (b Body) Anchor(pos Position) (float64, float64) {
	return pos.X + b.AnchorX, pos.Y + b.AnchorY
}

// Plane — маркер самолёта игрока
type Plane struct{}

// Missile — маркер самонаводящейся ракеты
type Missile struct {
	Index int
}
