// internal/system/player_system.go
package system

import (
	"plane-apocalypse/internal/config"
	"plane-apocalypse/internal/entity"
	"plane-apocalypse/internal/input"
)

// PlayerSystem двигает самолёт по вводу игрока.
type PlayerSystem struct {
	ecs *entity.ECS
}

func NewPlayerSystem(ecs *entity.ECS) *PlayerSystem {
	return &PlayerSystem{ecs: ecs}
}

// Update применяет одно направление за тик; границы проверяются до шага.
func (s *PlayerSystem) Update(in input.State) {
	id, ok := s.ecs.PlaneID()
	if !ok {
		return
	}
	pos := s.ecs.Positions[id]
	body := s.ecs.Bodies[id]

	switch in.Direction() {
	case input.Up:
		if pos.Y > 0 {
			pos.Y -= config.PlaneSpeed
		}
	case input.Down:
		if pos.Y < config.ScreenHeight-body.Height {
			pos.Y += config.PlaneSpeed
		}
	case input.Left:
		if pos.X > 0 {
			pos.X -= config.PlaneSpeed
		}
	case input.Right:
		if pos.X < config.ScreenWidth-body.Width {
			pos.X += config.PlaneSpeed
		}
	}
}
