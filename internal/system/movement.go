// internal/system/movement.go
package system

import (
	"plane-apocalypse/internal/entity"
	"plane-apocalypse/internal/utils"
)

// HomingSystem наводит ракеты на текущую позицию самолёта.
type HomingSystem struct {
	ecs *entity.ECS
}

func NewHomingSystem(ecs *entity.ECS) *HomingSystem {
	return &HomingSystem{ecs: ecs}
}

func (s *HomingSystem) Update() {
	planeID, ok := s.ecs.PlaneID()
	if !ok {
		return
	}
	target := s.ecs.Positions[planeID]
	speed := s.ecs.GameState.MissileSpeed

	for id := range s.ecs.Missiles {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]

		nx, ny, ok := utils.Normalize(target.X-pos.X, target.Y-pos.Y)
		if !ok {
			// Ракета уже в точке самолёта, направление не определено
			vel.DX, vel.DY = 0, 0
			continue
		}
		vel.DX = nx * speed
		vel.DY = ny * speed
		pos.X += vel.DX
		pos.Y += vel.DY
	}
}
