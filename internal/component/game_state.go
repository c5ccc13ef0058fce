package component

// GamePhase — фаза игрового цикла
type GamePhase int

const (
	PlayingPhase GamePhase = iota
	GameOverPhase
)

func (p GamePhase) String() string {
	switch p {
	case PlayingPhase:
		return "Playing"
	case GameOverPhase:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState — компонент для хранения состояния партии
type GameState struct {
	Phase        GamePhase
	Score        int
	MissileSpeed float64
}
