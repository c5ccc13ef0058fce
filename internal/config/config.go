// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	WindowTitle  = "Plane Apocalypse"

	PlaneSpeed  = 5.0 // пикселей за тик
	PlaneWidth  = 40.0
	PlaneHeight = 20.0

	MissileCount          = 2
	MissileRadius         = 10.0
	InitialMissileSpeed   = 2.0
	MissileSpeedIncrement = 0.001 // прирост скорости за тик

	CollisionDistance = 30.0

	// Опорные точки для проверки столкновения (примерно центры фигур)
	PlaneAnchorX   = 20.0
	PlaneAnchorY   = 10.0
	MissileAnchorX = 10.0
	MissileAnchorY = 10.0

	LabelFontSize    = 20
	GameOverFontSize = 30
	ScoreLabelX      = 10
	ScoreLabelY      = 10
	HighScoreLabelX  = 10
	HighScoreLabelY  = 40
	GameOverLabelX   = ScreenWidth / 4
	GameOverLabelY   = ScreenHeight / 2

	GameOverMessage = "Game Over! Press R to Restart"
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	PlaneColor      = color.RGBA{255, 255, 255, 255}
	MissileColor    = color.RGBA{255, 0, 0, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
)
