package system

import (
	"plane-apocalypse/internal/config"
	"plane-apocalypse/internal/entity"
	"plane-apocalypse/internal/utils"
)

// CollisionSystem проверяет, догнала ли самолёт хотя бы одна ракета.
type CollisionSystem struct {
	ecs *entity.ECS
}

func NewCollisionSystem(ecs *entity.ECS) *CollisionSystem {
	return &CollisionSystem{ecs: ecs}
}

// Check возвращает true, если расстояние между опорными точками самолёта
// и любой ракеты меньше config.CollisionDistance.
func (s *CollisionSystem) Check() bool {
	planeID, ok := s.ecs.PlaneID()
	if !ok {
		return false
	}
	px, py := s.ecs.Bodies[planeID].Anchor(*s.ecs.Positions[planeID])

	for id := range s.ecs.Missiles {
		mx, my := s.ecs.Bodies[id].Anchor(*s.ecs.Positions[id])
		if utils.Distance(px, py, mx, my) < config.CollisionDistance {
			return true
		}
	}
	return false
}
