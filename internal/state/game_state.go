// internal/state/game_state.go
package state

import (
	"log"

	game "plane-apocalypse/internal/app"
	"plane-apocalypse/internal/config"
	"plane-apocalypse/internal/event"
	"plane-apocalypse/internal/input"
	"plane-apocalypse/internal/ui"
	"plane-apocalypse/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

// GameState — экран игры: опрос клавиатуры, тик логики и отрисовка.
type GameState struct {
	sm       *StateMachine
	game     *game.Game
	renderer *render.ShapeRenderer
	hud      *ui.HUD
}

func NewGameState(sm *StateMachine, gameLogic *game.Game, hud *ui.HUD) *GameState {
	gs := &GameState{
		sm:       sm,
		game:     gameLogic,
		renderer: render.NewShapeRenderer(render.SceneColors{BackgroundColor: config.BackgroundColor}),
		hud:      hud,
	}
	gameLogic.EventDispatcher.Subscribe(event.PlaneDestroyed, gs)
	gameLogic.EventDispatcher.Subscribe(event.NewHighScore, gs)
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update() error {
	g.game.HandleInput(pollKeyboard())
	g.game.Update()
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS, g.game.IsGameOver())
	g.hud.Draw(screen, g.game.Score(), g.game.HighScoreValue(), g.game.IsGameOver())
}

func (g *GameState) Exit() {
	g.game.EventDispatcher.Unsubscribe(event.PlaneDestroyed, g)
	g.game.EventDispatcher.Unsubscribe(event.NewHighScore, g)
}

// OnEvent пишет в лог итоги партии.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlaneDestroyed:
		log.Printf("plane destroyed, score %v", e.Data)
	case event.NewHighScore:
		log.Printf("new high score %v", e.Data)
	}
}

// pollKeyboard снимает состояние клавиш: направления удерживаются, рестарт — по нажатию.
func pollKeyboard() input.State {
	return input.State{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}
