package render

import (
	"plane-apocalypse/internal/component"
	"plane-apocalypse/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ShapeRenderer рисует сущности ECS простыми фигурами.
type ShapeRenderer struct {
	colors SceneColors
}

func NewShapeRenderer(colors SceneColors) *ShapeRenderer {
	return &ShapeRenderer{colors: colors}
}

// Draw очищает кадр и рисует все видимые сущности.
// При dimmed фигуры затемняются (используется под сообщением о поражении).
func (r *ShapeRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, dimmed bool) {
	screen.Fill(r.colors.BackgroundColor)

	for id, renderable := range ecs.Renderables {
		pos, hasPos := ecs.Positions[id]
		body, hasBody := ecs.Bodies[id]
		if !hasPos || !hasBody {
			continue
		}
		clr := renderable.Color
		if dimmed {
			clr = DarkenColor(clr)
		}

		switch renderable.Shape {
		case component.ShapeRect:
			vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), float32(body.Width), float32(body.Height), clr, false)
		case component.ShapeCircle:
			// Позиция — левый верхний угол описанного квадрата
			cx := float32(pos.X + body.Radius)
			cy := float32(pos.Y + body.Radius)
			vector.DrawFilledCircle(screen, cx, cy, float32(body.Radius), clr, true)
		}
	}
}
