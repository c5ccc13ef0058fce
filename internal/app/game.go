// internal/app/game.go
package app

import (
	"plane-apocalypse/internal/component"
	"plane-apocalypse/internal/config"
	"plane-apocalypse/internal/entity"
	"plane-apocalypse/internal/event"
	"plane-apocalypse/internal/highscore"
	"plane-apocalypse/internal/input"
	"plane-apocalypse/internal/system"
	"plane-apocalypse/internal/types"
	"plane-apocalypse/internal/utils"
)

// Game holds the main game state and logic.
type Game struct {
	ECS             *entity.ECS
	PlayerSystem    *system.PlayerSystem
	HomingSystem    *system.HomingSystem
	CollisionSystem *system.CollisionSystem
	ScoreSystem     *system.ScoreSystem
	EventDispatcher *event.Dispatcher
	HighScore       *highscore.Tracker
	Rng             *utils.PRNGService

	PlaneID    types.EntityID
	MissileIDs []types.EntityID
}

// NewGame initializes a new game instance.
func NewGame(store highscore.Store, rng *utils.PRNGService) *Game {
	if store == nil {
		panic("high score store cannot be nil")
	}
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		PlayerSystem:    system.NewPlayerSystem(ecs),
		HomingSystem:    system.NewHomingSystem(ecs),
		CollisionSystem: system.NewCollisionSystem(ecs),
		ScoreSystem:     system.NewScoreSystem(ecs, eventDispatcher),
		EventDispatcher: eventDispatcher,
		HighScore:       highscore.NewTracker(store, eventDispatcher),
		Rng:             rng,
	}
	g.createPlaneEntity()
	g.createMissileEntities()
	return g
}

func (g *Game) createPlaneEntity() {
	id := g.ECS.NewEntity()
	g.ECS.Planes[id] = &component.Plane{}
	g.ECS.Positions[id] = &component.Position{
		X: config.ScreenWidth / 2.0,
		Y: config.ScreenHeight / 2.0,
	}
	g.ECS.Bodies[id] = &component.Body{
		Width:   config.PlaneWidth,
		Height:  config.PlaneHeight,
		AnchorX: config.PlaneAnchorX,
		AnchorY: config.PlaneAnchorY,
	}
	g.ECS.Renderables[id] = &component.Renderable{Shape: component.ShapeRect, Color: config.PlaneColor}
	g.PlaneID = id
}

func (g *Game) createMissileEntities() {
	for i := 0; i < config.MissileCount; i++ {
		id := g.ECS.NewEntity()
		x, y := g.Rng.PointIn(config.ScreenWidth, config.ScreenHeight)
		g.ECS.Missiles[id] = &component.Missile{Index: i}
		g.ECS.Positions[id] = &component.Position{X: x, Y: y}
		g.ECS.Velocities[id] = &component.Velocity{}
		g.ECS.Bodies[id] = &component.Body{
			Radius:  config.MissileRadius,
			AnchorX: config.MissileAnchorX,
			AnchorY: config.MissileAnchorY,
		}
		g.ECS.Renderables[id] = &component.Renderable{Shape: component.ShapeCircle, Color: config.MissileColor}
		g.MissileIDs = append(g.MissileIDs, id)
	}
}

// HandleInput применяет ввод: движение — только в игре, рестарт — только после поражения.
func (g *Game) HandleInput(in input.State) {
	if g.IsGameOver() {
		if in.Restart {
			g.Restart()
		}
		return
	}
	g.PlayerSystem.Update(in)
}

// Update продвигает игру на один тик.
func (g *Game) Update() {
	if g.IsGameOver() {
		return
	}
	g.HomingSystem.Update()
	if g.CollisionSystem.Check() {
		g.ScoreSystem.Crash()
		return
	}
	g.ScoreSystem.Survive()
}

// Restart возвращает самолёт в центр, разбрасывает ракеты и обнуляет счёт.
func (g *Game) Restart() {
	plane := g.ECS.Positions[g.PlaneID]
	plane.X = config.ScreenWidth / 2.0
	plane.Y = config.ScreenHeight / 2.0
	for _, id := range g.MissileIDs {
		pos := g.ECS.Positions[id]
		pos.X, pos.Y = g.Rng.PointIn(config.ScreenWidth, config.ScreenHeight)
		vel := g.ECS.Velocities[id]
		vel.DX, vel.DY = 0, 0
	}
	g.ScoreSystem.Reset()
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

func (g *Game) Phase() component.GamePhase {
	return g.ECS.GameState.Phase
}

func (g *Game) IsGameOver() bool {
	return g.ECS.GameState.Phase == component.GameOverPhase
}

func (g *Game) Score() int {
	return g.ECS.GameState.Score
}

func (g *Game) MissileSpeed() float64 {
	return g.ECS.GameState.MissileSpeed
}

func (g *Game) HighScoreValue() int {
	return g.HighScore.Best()
}

func (g *Game) PlanePosition() component.Position {
	return *g.ECS.Positions[g.PlaneID]
}

func (g *Game) MissilePositions() []component.Position {
	positions := make([]component.Position, 0, len(g.MissileIDs))
	for _, id := range g.MissileIDs {
		positions = append(positions, *g.ECS.Positions[id])
	}
	return positions
}
