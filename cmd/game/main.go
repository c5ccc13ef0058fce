// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	game "plane-apocalypse/internal/app"
	"plane-apocalypse/internal/assets"
	"plane-apocalypse/internal/config"
	"plane-apocalypse/internal/highscore"
	"plane-apocalypse/internal/state"
	"plane-apocalypse/internal/ui"
	"plane-apocalypse/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings := config.LoadSettings()

	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	fonts, err := assets.LoadFontManager(settings.FontPath)
	if err != nil {
		log.Fatal(err)
	}
	labelFace, err := fonts.Face(config.LabelFontSize)
	if err != nil {
		log.Fatal(err)
	}
	gameOverFace, err := fonts.Face(config.GameOverFontSize)
	if err != nil {
		log.Fatal(err)
	}

	gameLogic := game.NewGame(
		highscore.NewFileStore(settings.HighScoreFile),
		utils.NewPRNGService(settings.Seed),
	)

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewGameState(sm, gameLogic, ui.NewHUD(labelFace, gameOverFace)))

	app := &AppGame{stateMachine: sm}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
