package system

import (
	"plane-apocalypse/internal/component"
	"plane-apocalypse/internal/config"
	"plane-apocalypse/internal/entity"
	"plane-apocalypse/internal/event"
)

// ScoreSystem ведёт счёт и сложность, а также переключает фазы партии.
type ScoreSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewScoreSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ScoreSystem {
	return &ScoreSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Survive засчитывает тик без столкновения.
func (s *ScoreSystem) Survive() {
	gs := s.ecs.GameState
	if gs.Phase != component.PlayingPhase {
		return
	}
	gs.Score++
	gs.MissileSpeed += config.MissileSpeedIncrement
}

// Crash переводит игру в GameOver и сообщает итоговый счёт подписчикам.
func (s *ScoreSystem) Crash() {
	gs := s.ecs.GameState
	if gs.Phase != component.PlayingPhase {
		return
	}
	gs.Phase = component.GameOverPhase
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlaneDestroyed, Data: gs.Score})
}

// Reset возвращает счёт и скорость к начальным значениям.
func (s *ScoreSystem) Reset() {
	gs := s.ecs.GameState
	gs.Phase = component.PlayingPhase
	gs.Score = 0
	gs.MissileSpeed = config.InitialMissileSpeed
}
