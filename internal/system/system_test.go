package system

import (
	"math"
	"testing"

	"plane-apocalypse/internal/component"
	"plane-apocalypse/internal/config"
	"plane-apocalypse/internal/entity"
	"plane-apocalypse/internal/event"
	"plane-apocalypse/internal/input"
	"plane-apocalypse/internal/types"
)

func newWorld(planeX, planeY float64, missiles ...component.Position) (*entity.ECS, types.EntityID, []types.EntityID) {
	ecs := entity.NewECS()
	planeID := ecs.NewEntity()
	ecs.Planes[planeID] = &component.Plane{}
	ecs.Positions[planeID] = &component.Position{X: planeX, Y: planeY}
	ecs.Bodies[planeID] = &component.Body{
		Width: config.PlaneWidth, Height: config.PlaneHeight,
		AnchorX: config.PlaneAnchorX, AnchorY: config.PlaneAnchorY,
	}

	var ids []types.EntityID
	for i, m := range missiles {
		id := ecs.NewEntity()
		pos := m
		ecs.Missiles[id] = &component.Missile{Index: i}
		ecs.Positions[id] = &pos
		ecs.Velocities[id] = &component.Velocity{}
		ecs.Bodies[id] = &component.Body{
			Radius:  config.MissileRadius,
			AnchorX: config.MissileAnchorX, AnchorY: config.MissileAnchorY,
		}
		ids = append(ids, id)
	}
	return ecs, planeID, ids
}

func TestCollisionThreshold(t *testing.T) {
	// Опорная точка самолёта в (520, 310); ракета с позицией (x, y) имеет опорную точку (x+10, y+10).
	tests := []struct {
		name    string
		missile component.Position
		want    bool
	}{
		{"Exactly on anchor", component.Position{X: 510, Y: 300}, true},
		{"Just inside", component.Position{X: 539.999, Y: 300}, true},
		{"Exactly at threshold", component.Position{X: 540, Y: 300}, false},
		{"Far away", component.Position{X: 0, Y: 0}, false},
		{"Diagonal inside", component.Position{X: 510 + 21, Y: 300 + 21}, true},
		{"Diagonal outside", component.Position{X: 510 + 22, Y: 300 + 22}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs, _, _ := newWorld(500, 300, tt.missile, component.Position{X: 0, Y: 700})
			if got := NewCollisionSystem(ecs).Check(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCollisionSecondMissile(t *testing.T) {
	ecs, _, _ := newWorld(500, 300, component.Position{X: 0, Y: 0}, component.Position{X: 510, Y: 300})
	if !NewCollisionSystem(ecs).Check() {
		t.Error("Expected the second missile to collide")
	}
}

func TestHomingMovesBySpeed(t *testing.T) {
	ecs, _, ids := newWorld(300, 400, component.Position{X: 0, Y: 0})
	ecs.GameState.MissileSpeed = 5

	NewHomingSystem(ecs).Update()

	pos := ecs.Positions[ids[0]]
	if math.Abs(pos.X-3) > 1e-9 || math.Abs(pos.Y-4) > 1e-9 {
		t.Errorf("Expected (3, 4), got (%v, %v)", pos.X, pos.Y)
	}
	vel := ecs.Velocities[ids[0]]
	if math.Abs(math.Hypot(vel.DX, vel.DY)-5) > 1e-9 {
		t.Errorf("Expected velocity magnitude 5, got %v", math.Hypot(vel.DX, vel.DY))
	}
}

func TestHomingSkipsZeroDirection(t *testing.T) {
	ecs, _, ids := newWorld(100, 100, component.Position{X: 100, Y: 100})

	NewHomingSystem(ecs).Update()

	pos := ecs.Positions[ids[0]]
	if pos.X != 100 || pos.Y != 100 {
		t.Errorf("Expected missile to stay put, got (%v, %v)", pos.X, pos.Y)
	}
	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
		t.Error("Position became NaN")
	}
}

func TestPlayerBounds(t *testing.T) {
	tests := []struct {
		name         string
		start        component.Position
		in           input.State
		wantX, wantY float64
	}{
		{"Up inside", component.Position{X: 100, Y: 100}, input.State{Up: true}, 100, 95},
		{"Up at top", component.Position{X: 100, Y: 0}, input.State{Up: true}, 100, 0},
		{"Down at bottom", component.Position{X: 100, Y: config.ScreenHeight - config.PlaneHeight}, input.State{Down: true}, 100, config.ScreenHeight - config.PlaneHeight},
		{"Left at edge", component.Position{X: 0, Y: 100}, input.State{Left: true}, 0, 100},
		{"Right at edge", component.Position{X: config.ScreenWidth - config.PlaneWidth, Y: 100}, input.State{Right: true}, config.ScreenWidth - config.PlaneWidth, 100},
		{"Right inside", component.Position{X: 100, Y: 100}, input.State{Right: true}, 105, 100},
		{"One direction per tick", component.Position{X: 100, Y: 100}, input.State{Up: true, Right: true}, 100, 95},
		{"No input", component.Position{X: 100, Y: 100}, input.State{}, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs, planeID, _ := newWorld(tt.start.X, tt.start.Y)
			NewPlayerSystem(ecs).Update(tt.in)
			pos := ecs.Positions[planeID]
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, pos.X, pos.Y)
			}
		})
	}
}

type recorder struct {
	got []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.got = append(r.got, e) }

func TestScoreSystem(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.Subscribe(event.PlaneDestroyed, rec)
	s := NewScoreSystem(ecs, d)

	s.Survive()
	s.Survive()
	s.Crash()
	s.Survive()
	s.Crash()

	if ecs.GameState.Score != 2 {
		t.Errorf("Expected score 2, got %d", ecs.GameState.Score)
	}
	if ecs.GameState.Phase != component.GameOverPhase {
		t.Errorf("Expected GameOver, got %v", ecs.GameState.Phase)
	}
	if len(rec.got) != 1 || rec.got[0].Data.(int) != 2 {
		t.Errorf("Expected a single PlaneDestroyed with score 2, got %v", rec.got)
	}

	s.Reset()
	if ecs.GameState.Score != 0 || ecs.GameState.MissileSpeed != config.InitialMissileSpeed || ecs.GameState.Phase != component.PlayingPhase {
		t.Errorf("Expected reset state, got %+v", *ecs.GameState)
	}
}
