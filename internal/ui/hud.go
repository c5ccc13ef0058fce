package ui

import (
	"fmt"

	"plane-apocalypse/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// HUD показывает счёт, рекорд и сообщение о поражении.
type HUD struct {
	score     *Label
	highScore *Label
	gameOver  *Label
}

func NewHUD(labelFace, gameOverFace font.Face) *HUD {
	gameOver := NewLabel(config.GameOverLabelX, config.GameOverLabelY, gameOverFace, config.TextColor)
	gameOver.Text = config.GameOverMessage
	return &HUD{
		score:     NewLabel(config.ScoreLabelX, config.ScoreLabelY, labelFace, config.TextColor),
		highScore: NewLabel(config.HighScoreLabelX, config.HighScoreLabelY, labelFace, config.TextColor),
		gameOver:  gameOver,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, score, highScore int, isGameOver bool) {
	h.score.Text = fmt.Sprintf("Score: %d", score)
	h.highScore.Text = fmt.Sprintf("High Score: %d", highScore)
	h.score.Draw(screen)
	h.highScore.Draw(screen)
	if isGameOver {
		h.gameOver.Draw(screen)
	}
}
