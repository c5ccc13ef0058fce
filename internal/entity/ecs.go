// internal/entity/ecs.go
package entity

import (
	"plane-apocalypse/internal/component"
	"plane-apocalypse/internal/config"
	"plane-apocalypse/internal/types"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Bodies      map[types.EntityID]*component.Body
	Renderables map[types.EntityID]*component.Renderable
	Planes      map[types.EntityID]*component.Plane
	Missiles    map[types.EntityID]*component.Missile
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Bodies:      make(map[types.EntityID]*component.Body),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Planes:      make(map[types.EntityID]*component.Plane),
		Missiles:    make(map[types.EntityID]*component.Missile),
		GameState: &component.GameState{
			Phase:        component.PlayingPhase,
			MissileSpeed: config.InitialMissileSpeed,
		},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// PlaneID возвращает сущность самолёта. Предполагаем, что он только один.
func (ecs *ECS) PlaneID() (types.EntityID, bool) {
	for id := range ecs.Planes {
		return id, true
	}
	return 0, false
}
